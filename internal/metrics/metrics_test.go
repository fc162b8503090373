package metrics

import (
	"math"
	"testing"
)

func TestPeak(t *testing.T) {
	m := NewPeak()
	for i, y := range []float64{1, 5, math.NaN(), 3} {
		m.Observe(float64(i), y)
	}
	if m.Value() != 5 {
		t.Errorf("expected peak 5, got %f", m.Value())
	}

	m.Reset()
	if !math.IsNaN(m.Value()) {
		t.Error("expected NaN after reset")
	}
}

func TestArgPeak(t *testing.T) {
	m := NewArgPeak()
	xs := []float64{10, 20, 30, 40}
	ys := []float64{-2, 7, 7, 1}
	for i := range xs {
		m.Observe(xs[i], ys[i])
	}
	if m.Value() != 20 {
		t.Errorf("expected first maximum at 20, got %f", m.Value())
	}

	m.Reset()
	m.Observe(3, -1)
	if m.Value() != 3 {
		t.Errorf("expected 3, got %f", m.Value())
	}
}

func TestRelativeChange(t *testing.T) {
	m := NewRelativeChange()
	m.Observe(0, 2)
	m.Observe(1, 10)
	m.Observe(2, 3)
	if math.Abs(m.Value()-0.5) > 1e-12 {
		t.Errorf("expected 0.5, got %f", m.Value())
	}

	m.Reset()
	m.Observe(0, 0)
	if !math.IsNaN(m.Value()) {
		t.Error("expected NaN for a zero start")
	}
}

func TestSummarize(t *testing.T) {
	got := Summarize("N2", []float64{0, 1, 2}, []float64{1, 4, 2})

	want := map[string]float64{"N2.peak": 4, "N2.argpeak": 1, "N2.change": 1}
	if len(got) != len(want) {
		t.Fatalf("expected %d metrics, got %v", len(want), got)
	}
	for k, v := range want {
		if math.Abs(got[k]-v) > 1e-12 {
			t.Errorf("%s: expected %f, got %f", k, v, got[k])
		}
	}
}

func TestSummarizeDropsUndefined(t *testing.T) {
	got := Summarize("e", []float64{0, 1}, []float64{0, 0})
	if _, ok := got["e.change"]; ok {
		t.Error("expected no change metric for a zero start")
	}
	if got["e.peak"] != 0 {
		t.Errorf("expected zero peak, got %f", got["e.peak"])
	}
}
