package galaxy

import "galaxy/internal/core"

// Store holds the shared parameter record. Setters edit it in place without
// notifying anyone; Commit tells every listener the user finished an edit.
type Store struct {
	params    Params
	listeners []func(Params)
}

// NewStore returns a store seeded with params.
func NewStore(params Params) *Store {
	return &Store{params: params}
}

// Params returns a copy of the current record.
func (s *Store) Params() Params { return s.params }

// Update applies fn to the record without notifying listeners.
func (s *Store) Update(fn func(*Params)) {
	if fn != nil {
		fn(&s.params)
	}
}

// OnCommit registers fn to run on every commit, after previously registered
// listeners.
func (s *Store) OnCommit(fn func(Params)) {
	if fn == nil {
		return
	}
	s.listeners = append(s.listeners, fn)
}

// Commit notifies listeners with the current record.
func (s *Store) Commit() {
	for _, fn := range s.listeners {
		fn(s.params)
	}
}

// CommitParameters satisfies core.ParameterCommitter.
func (s *Store) CommitParameters() { s.Commit() }

// SetIntParameter updates an integer field. It reports false for unknown keys.
func (s *Store) SetIntParameter(key string, value int) bool {
	switch key {
	case KeyCount:
		s.params.Count = value
	case KeyBranches:
		s.params.Branches = value
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a float field. It reports false for unknown keys.
func (s *Store) SetFloatParameter(key string, value float64) bool {
	switch key {
	case KeyRadius:
		s.params.Radius = value
	case KeyRandomness:
		s.params.Randomness = value
	case KeyRandomnessPower:
		s.params.RandomnessPower = value
	default:
		return false
	}
	return true
}

// SetColorParameter updates a color field from "#rrggbb". It reports false for
// unknown keys and malformed colors.
func (s *Store) SetColorParameter(key string, hex string) bool {
	c, err := ParseColor(hex)
	if err != nil {
		return false
	}
	switch key {
	case KeyInsideColor:
		s.params.InsideColor = c
	case KeyOutsideColor:
		s.params.OutsideColor = c
	default:
		return false
	}
	return true
}

var (
	_ core.ParameterProvider         = (*Store)(nil)
	_ core.ParameterControlsProvider = (*Store)(nil)
	_ core.IntParameterSetter        = (*Store)(nil)
	_ core.FloatParameterSetter      = (*Store)(nil)
	_ core.ColorParameterSetter      = (*Store)(nil)
	_ core.ParameterCommitter        = (*Store)(nil)
)
