package core

import "math"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeColor denotes RGB colors encoded as "#rrggbb".
	ParamTypeColor ParamType = "color"
)

// Parameter describes a single tunable value exposed by a generator.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name    string
	Params  []Parameter
	Summary string
}

// ParameterSnapshot captures the current set of tunables.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup returns the parameter stored under key.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, group := range s.Groups {
		for _, param := range group.Params {
			if param.Key == key {
				return param, true
			}
		}
	}
	return Parameter{}, false
}

// ParameterControl describes an adjustable parameter that should be exposed on
// the HUD. Steps and bounds are optional and interpreted based on the
// parameter type. For colors Step is a hue rotation in degrees.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Step float64

	Min    float64
	Max    float64
	HasMin bool
	HasMax bool
}

// StepInt applies direction*step to value and clamps the result to the
// control bounds.
func (c ParameterControl) StepInt(value, direction int) int {
	step := int(math.Round(c.Step))
	if step <= 0 {
		step = 1
	}
	target := value + direction*step
	if c.HasMin {
		if min := int(math.Round(c.Min)); target < min {
			target = min
		}
	}
	if c.HasMax {
		if max := int(math.Round(c.Max)); target > max {
			target = max
		}
	}
	return target
}

// StepFloat applies direction*step to value and clamps the result to the
// control bounds. The result is snapped to the step grid so repeated
// adjustments do not accumulate rounding drift.
func (c ParameterControl) StepFloat(value float64, direction int) float64 {
	step := c.Step
	if step <= 0 {
		step = 0.05
	}
	target := value + float64(direction)*step
	target = math.Round(target/step) * step
	if c.HasMin && target < c.Min {
		target = c.Min
	}
	if c.HasMax && target > c.Max {
		target = c.Max
	}
	return target
}

// ParameterControlsProvider exposes the list of HUD-adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// ParameterProvider exposes the current parameter values.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// IntParameterSetter allows HUD interactions to update integer parameters.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}

// FloatParameterSetter allows HUD interactions to update floating point
// parameters.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}

// ColorParameterSetter allows HUD interactions to update color parameters
// given as "#rrggbb".
type ColorParameterSetter interface {
	SetColorParameter(key string, hex string) bool
}

// ParameterCommitter is notified when the user finishes an edit.
type ParameterCommitter interface {
	CommitParameters()
}
