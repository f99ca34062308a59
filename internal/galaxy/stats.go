package galaxy

import "math"

// Summary aggregates an attribute set for headless inspection.
type Summary struct {
	Count       int
	MeanRadius  float64
	MaxRadius   float64
	MeanJitter  [3]float64
	MaxJitter   float64
	MeanScale   float64
	BranchCount []int
}

// Summarize computes a Summary of attrs generated with params.
func Summarize(attrs Attributes, params Params) Summary {
	branches := params.Branches
	if branches < 1 {
		branches = 1
	}
	s := Summary{Count: attrs.Len(), BranchCount: make([]int, branches)}
	if s.Count == 0 {
		return s
	}
	for i := 0; i < s.Count; i++ {
		i3 := i * 3
		r := math.Hypot(float64(attrs.Positions[i3]), float64(attrs.Positions[i3+2]))
		s.MeanRadius += r
		s.MaxRadius = math.Max(s.MaxRadius, r)
		for axis := 0; axis < 3; axis++ {
			j := math.Abs(float64(attrs.Randomness[i3+axis]))
			s.MeanJitter[axis] += j
			s.MaxJitter = math.Max(s.MaxJitter, j)
		}
		s.MeanScale += float64(attrs.Scales[i])
		s.BranchCount[i%branches]++
	}
	n := float64(s.Count)
	s.MeanRadius /= n
	s.MeanScale /= n
	for axis := range s.MeanJitter {
		s.MeanJitter[axis] /= n
	}
	return s
}
