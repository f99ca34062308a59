package core

import (
	"math"
	"testing"
	"time"
)

func TestStepIntClamps(t *testing.T) {
	ctrl := ParameterControl{Key: "branches", Type: ParamTypeInt, Step: 1, Min: 3, Max: 20, HasMin: true, HasMax: true}

	if got := ctrl.StepInt(3, -1); got != 3 {
		t.Fatalf("StepInt below min = %d, want 3", got)
	}
	if got := ctrl.StepInt(20, 1); got != 20 {
		t.Fatalf("StepInt above max = %d, want 20", got)
	}
	if got := ctrl.StepInt(7, 1); got != 8 {
		t.Fatalf("StepInt = %d, want 8", got)
	}

	noStep := ParameterControl{Type: ParamTypeInt}
	if got := noStep.StepInt(5, -1); got != 4 {
		t.Fatalf("StepInt with zero step = %d, want 4", got)
	}
}

func TestStepFloatSnapsToGrid(t *testing.T) {
	ctrl := ParameterControl{Type: ParamTypeFloat, Step: 0.01, Min: 0.01, Max: 20, HasMin: true, HasMax: true}

	v := 5.0
	for i := 0; i < 30; i++ {
		v = ctrl.StepFloat(v, 1)
	}
	if math.Abs(v-5.3) > 1e-9 {
		t.Fatalf("30 steps of 0.01 from 5 = %v, want 5.3", v)
	}
	if got := ctrl.StepFloat(0.01, -1); got != 0.01 {
		t.Fatalf("StepFloat below min = %v, want 0.01", got)
	}
	if got := ctrl.StepFloat(19.995, 1); got != 20 {
		t.Fatalf("StepFloat above max = %v, want 20", got)
	}
}

func TestSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "a", Params: []Parameter{{Key: "x", Value: "1"}}},
		{Name: "b", Params: []Parameter{{Key: "y", Value: "2"}}},
	}}
	p, ok := snap.Lookup("y")
	if !ok || p.Value != "2" {
		t.Fatalf("Lookup(y) = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("z"); ok {
		t.Fatal("Lookup(z) should miss")
	}
}

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("draw %d differs for identical seeds", i)
		}
	}
	for i := 0; i < 100; i++ {
		if s := a.Sign(); s != 1 && s != -1 {
			t.Fatalf("Sign returned %v", s)
		}
	}
}

func TestClockNeverGoesBackwards(t *testing.T) {
	base := time.Unix(1000, 0)
	offsets := []time.Duration{0, time.Second, 3 * time.Second, 2 * time.Second, 5 * time.Second}
	i := 0
	clock := NewClockWithSource(func() time.Time {
		now := base.Add(offsets[i])
		if i < len(offsets)-1 {
			i++
		}
		return now
	})
	clock.Start()

	prev := -1.0
	for range offsets[1:] {
		got := clock.Elapsed()
		if got < prev {
			t.Fatalf("Elapsed went backwards: %v after %v", got, prev)
		}
		prev = got
	}
	if prev != 5 {
		t.Fatalf("final elapsed = %v, want 5", prev)
	}
}
