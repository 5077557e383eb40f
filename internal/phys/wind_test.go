package phys

import (
	"errors"
	"math"
	"testing"

	"github.com/jksalcedo/physlab/internal/sim"
)

func TestWindPowerKnownValue(t *testing.T) {
	w := &WindTurbine{Density: 1.225, Area: 100, Speed: 10, Cp: 0.5}

	// 0.5 * 1.225 * 100 * 1000 * 0.5
	expected := 30625.0
	if got := w.Power(); math.Abs(got-expected) > 1e-9 {
		t.Errorf("expected power %f, got %f", expected, got)
	}
}

func TestWindPowerZeroSpeed(t *testing.T) {
	w := NewWindTurbine()
	w.Speed = 0

	if got := w.Power(); got != 0 {
		t.Errorf("expected zero power at zero speed, got %f", got)
	}
}

func TestWindPowerMonotonic(t *testing.T) {
	w := NewWindTurbine()
	base := w.Power()

	if base < 0 {
		t.Errorf("power must be non-negative, got %f", base)
	}

	for _, param := range []string{"density", "area", "speed", "cp"} {
		m := NewWindTurbine()
		val := m.GetParams()[param]
		if err := m.SetParam(param, val*1.1); err != nil {
			t.Fatalf("SetParam(%s): %v", param, err)
		}
		if got := m.Power(); got < base {
			t.Errorf("power decreased when increasing %s: %f < %f", param, got, base)
		}
	}
}

func TestWindValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*WindTurbine)
		wantErr error
	}{
		{"negative area", func(w *WindTurbine) { w.Area = -1 }, sim.ErrNegativeInput},
		{"negative speed", func(w *WindTurbine) { w.Speed = -5 }, sim.ErrNegativeInput},
		{"negative density", func(w *WindTurbine) { w.Density = -0.1 }, sim.ErrNegativeInput},
		{"cp above one", func(w *WindTurbine) { w.Cp = 1.2 }, sim.ErrFractionBounds},
		{"cp negative", func(w *WindTurbine) { w.Cp = -0.1 }, sim.ErrFractionBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWindTurbine()
			tt.mutate(w)
			err := w.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if _, err := w.Evaluate(); err == nil {
				t.Error("Evaluate should reject invalid inputs")
			}
		})
	}
}

func TestWindCurveMatchesFormula(t *testing.T) {
	w := NewWindTurbine()
	curve, err := w.Curve()
	if err != nil {
		t.Fatalf("curve failed: %v", err)
	}

	if len(curve.Points) != curveSamples {
		t.Errorf("expected %d samples, got %d", curveSamples, len(curve.Points))
	}

	last := curve.Points[len(curve.Points)-1]
	expected := 0.5 * w.Density * w.Area * last.X * last.X * last.X * w.Cp / 1000
	if math.Abs(last.Y-expected) > 1e-9 {
		t.Errorf("curve endpoint %f, formula gives %f", last.Y, expected)
	}
}

func TestSweptArea(t *testing.T) {
	if got := SweptArea(50); math.Abs(got-math.Pi*2500) > 1e-9 {
		t.Errorf("SweptArea(50) = %f, want %f", got, math.Pi*2500)
	}
}
