package sim

import (
	"errors"
	"math"
	"testing"
)

// linear is a minimal model: output = gain * input.
type linear struct {
	Gain  float64
	Input float64
}

func (l *linear) Name() string     { return "linear" }
func (l *linear) Describe() string { return "test model" }

func (l *linear) Params() []Param {
	return []Param{
		{Name: "gain", Min: 0, Max: 10, Step: 0.1, Default: 2},
		{Name: "input", Unit: "m", Min: 0, Max: 100, Step: 1, Default: 1},
	}
}

func (l *linear) GetParams() map[string]float64 {
	return map[string]float64{"gain": l.Gain, "input": l.Input}
}

func (l *linear) SetParam(name string, value float64) error {
	switch name {
	case "gain":
		l.Gain = value
	case "input":
		l.Input = value
	default:
		return &InputError{Model: l.Name(), Param: name, Value: value, Wrapped: ErrUnknownParam}
	}
	return nil
}

func (l *linear) Validate() error { return nil }

func (l *linear) Evaluate() ([]Output, error) {
	return []Output{{Name: "output", Unit: "m", Value: l.Gain * l.Input}}, nil
}

func (l *linear) Curve() (*Curve, error) { return &Curve{}, nil }

func TestSweepLinearModel(t *testing.T) {
	m := &linear{Gain: 2, Input: 1}

	curve, err := Sweep(m, "input", 0, 10, 11)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	if len(curve.Points) != 11 {
		t.Fatalf("expected 11 samples, got %d", len(curve.Points))
	}
	for i, p := range curve.Points {
		x := float64(i)
		if math.Abs(p.X-x) > 1e-9 || math.Abs(p.Y-2*x) > 1e-9 {
			t.Errorf("sample %d: got (%f, %f), want (%f, %f)", i, p.X, p.Y, x, 2*x)
		}
	}
	if curve.XLabel != "input (m)" {
		t.Errorf("unexpected x label %q", curve.XLabel)
	}
}

func TestSweepRestoresParam(t *testing.T) {
	m := &linear{Gain: 2, Input: 7}

	if _, err := Sweep(m, "input", 0, 10, 5); err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if m.Input != 7 {
		t.Errorf("sweep mutated parameter: input = %f, want 7", m.Input)
	}
}

func TestSweepUnknownParam(t *testing.T) {
	m := &linear{}

	_, err := Sweep(m, "frequency", 0, 10, 5)
	if !errors.Is(err, ErrUnknownParam) {
		t.Errorf("expected ErrUnknownParam, got %v", err)
	}
}

func TestSweepTooFewSamples(t *testing.T) {
	m := &linear{}

	if _, err := Sweep(m, "input", 0, 10, 1); err == nil {
		t.Error("expected error for single-sample sweep")
	}
}
