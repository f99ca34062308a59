package galaxy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"galaxy/internal/core"
)

func TestSummarizeBranchesAndRanges(t *testing.T) {
	params := testParams()
	params.Count = 1000
	params.Branches = 4
	s := Summarize(BuildAttributes(params, core.NewRNG(3)), params)

	assert.Equal(t, 1000, s.Count)
	assert.Equal(t, []int{250, 250, 250, 250}, s.BranchCount)
	assert.Less(t, s.MaxRadius, params.Radius+1e-5)
	assert.InDelta(t, params.Radius/2, s.MeanRadius, 0.3)
	assert.InDelta(t, 0.5, s.MeanScale, 0.05)
	assert.LessOrEqual(t, s.MaxJitter, params.Randomness*params.Radius+1e-5)
}

func TestSummarizeEmpty(t *testing.T) {
	params := testParams()
	params.Count = 0
	s := Summarize(BuildAttributes(params, core.NewRNG(3)), params)
	assert.Zero(t, s.Count)
	assert.Zero(t, s.MeanRadius)
	assert.Len(t, s.BranchCount, params.Branches)
}
