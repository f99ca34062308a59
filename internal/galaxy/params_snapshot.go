package galaxy

import (
	"strconv"

	"galaxy/internal/core"
)

// Parameter keys shared by FromMap, the snapshot and the HUD controls.
const (
	KeyCount           = "count"
	KeyRadius          = "radius"
	KeyBranches        = "branches"
	KeyRandomness      = "randomness"
	KeyRandomnessPower = "randomness_power"
	KeyInsideColor     = "inside_color"
	KeyOutsideColor    = "outside_color"
)

func (s *Store) Parameters() core.ParameterSnapshot {
	p := s.params
	groups := []core.ParameterGroup{
		{
			Name: "Shape",
			Params: []core.Parameter{
				intParam(KeyCount, "Count", p.Count),
				floatParam(KeyRadius, "Radius", p.Radius),
				intParam(KeyBranches, "Branches", p.Branches),
			},
		},
		{
			Name: "Scatter",
			Params: []core.Parameter{
				floatParam(KeyRandomness, "Randomness", p.Randomness),
				floatParam(KeyRandomnessPower, "Randomness power", p.RandomnessPower),
			},
		},
		{
			Name: "Color",
			Params: []core.Parameter{
				colorParam(KeyInsideColor, "Inside color", p.InsideColor.Hex()),
				colorParam(KeyOutsideColor, "Outside color", p.OutsideColor.Hex()),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD controls with their clamps.
func (s *Store) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: KeyCount, Label: "Count", Type: core.ParamTypeInt, Step: 100, Min: 100, Max: 200000, HasMin: true, HasMax: true},
		{Key: KeyRadius, Label: "Radius", Type: core.ParamTypeFloat, Step: 0.01, Min: 0.01, Max: 20, HasMin: true, HasMax: true},
		{Key: KeyBranches, Label: "Branches", Type: core.ParamTypeInt, Step: 1, Min: 3, Max: 20, HasMin: true, HasMax: true},
		{Key: KeyRandomness, Label: "Randomness", Type: core.ParamTypeFloat, Step: 0.001, Min: 0, Max: 2, HasMin: true, HasMax: true},
		{Key: KeyRandomnessPower, Label: "Randomness power", Type: core.ParamTypeFloat, Step: 0.001, Min: 1, Max: 10, HasMin: true, HasMax: true},
		{Key: KeyInsideColor, Label: "Inside color", Type: core.ParamTypeColor, Step: 5},
		{Key: KeyOutsideColor, Label: "Outside color", Type: core.ParamTypeColor, Step: 5},
	}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func colorParam(key, label, hex string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeColor,
		Value: hex,
	}
}
