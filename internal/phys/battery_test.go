package phys

import (
	"errors"
	"math"
	"testing"

	"github.com/jksalcedo/physlab/internal/sim"
)

func TestBatteryDepletedFloorsAtZero(t *testing.T) {
	// 60 kWh pack, 0.2 kWh/km over 400 km consumes 80 kWh
	b := &EVBattery{Capacity: 60, Rate: 0.2, Distance: 400}

	if got := b.Consumed(); math.Abs(got-80) > 1e-9 {
		t.Errorf("expected consumed 80 kWh, got %f", got)
	}
	if got := b.Remaining(); got != 0 {
		t.Errorf("expected remaining 0, got %f", got)
	}
}

func TestBatteryRemaining(t *testing.T) {
	b := &EVBattery{Capacity: 75, Rate: 0.18, Distance: 100}

	expected := 75 - 18.0
	if got := b.Remaining(); math.Abs(got-expected) > 1e-9 {
		t.Errorf("expected remaining %f, got %f", expected, got)
	}
}

func TestBatteryNeverNegative(t *testing.T) {
	b := NewEVBattery()
	for d := 0.0; d <= 2000; d += 50 {
		b.Distance = d
		if got := b.Remaining(); got < 0 {
			t.Fatalf("remaining negative at distance %f: %f", d, got)
		}
	}
}

func TestBatteryEstRange(t *testing.T) {
	b := &EVBattery{Capacity: 60, Rate: 0.2}
	if got := b.EstRange(); math.Abs(got-300) > 1e-9 {
		t.Errorf("expected range 300 km, got %f", got)
	}

	b.Rate = 0
	if !math.IsInf(b.EstRange(), 1) {
		t.Error("expected infinite range at zero consumption")
	}
}

func TestBatteryValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*EVBattery)
	}{
		{"negative capacity", func(b *EVBattery) { b.Capacity = -1 }},
		{"negative rate", func(b *EVBattery) { b.Rate = -0.1 }},
		{"negative distance", func(b *EVBattery) { b.Distance = -10 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewEVBattery()
			tt.mutate(b)
			if err := b.Validate(); !errors.Is(err, sim.ErrNegativeInput) {
				t.Errorf("expected ErrNegativeInput, got %v", err)
			}
		})
	}
}

func TestBatteryChargePercent(t *testing.T) {
	b := &EVBattery{Capacity: 100, Rate: 0.25, Distance: 200}
	outputs, err := b.Evaluate()
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}

	var charge float64
	for _, o := range outputs {
		if o.Name == "charge" {
			charge = o.Value
		}
	}
	if math.Abs(charge-50) > 1e-9 {
		t.Errorf("expected 50%% charge, got %f", charge)
	}
}

func TestBatteryCurveShowsFloor(t *testing.T) {
	b := &EVBattery{Capacity: 60, Rate: 0.2, Distance: 100}
	curve, err := b.Curve()
	if err != nil {
		t.Fatalf("curve failed: %v", err)
	}

	// Curve extends past the estimated range, so the tail must sit at zero.
	last := curve.Points[len(curve.Points)-1]
	if last.X <= b.EstRange() {
		t.Errorf("curve should extend past range %f, ends at %f", b.EstRange(), last.X)
	}
	if last.Y != 0 {
		t.Errorf("expected zero remaining at curve end, got %f", last.Y)
	}
	for _, p := range curve.Points {
		if p.Y < 0 {
			t.Fatalf("negative remaining at distance %f: %f", p.X, p.Y)
		}
	}
}
