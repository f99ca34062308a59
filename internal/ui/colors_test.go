package ui

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotateHue(t *testing.T) {
	got, err := RotateHue("#ff0000", 120)
	require.NoError(t, err)
	assert.Equal(t, "#00ff00", got)

	got, err = RotateHue("#ff0000", -120)
	require.NoError(t, err)
	assert.Equal(t, "#0000ff", got)

	got, err = RotateHue("#ff0000", 360)
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", got)
}

func TestRotateHueKeepsSaturationAndValue(t *testing.T) {
	in, err := colorful.Hex("#ff6030")
	require.NoError(t, err)
	_, s0, v0 := in.Hsv()

	hex, err := RotateHue("#ff6030", 45)
	require.NoError(t, err)
	out, err := colorful.Hex(hex)
	require.NoError(t, err)
	_, s1, v1 := out.Hsv()

	assert.InDelta(t, s0, s1, 0.01)
	assert.InDelta(t, v0, v1, 0.01)
}

func TestRotateHueRejectsGarbage(t *testing.T) {
	_, err := RotateHue("nope", 10)
	assert.Error(t, err)
}
