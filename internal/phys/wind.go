package phys

import (
	"math"

	"github.com/jksalcedo/physlab/internal/sim"
)

// Physical constants shared across models.
const (
	AirDensity = 1.225 // kg/m^3 at sea level
	Gravity    = 9.81  // m/s^2
)

// SweptArea returns the rotor disc area for a given blade length.
func SweptArea(bladeLength float64) float64 {
	return math.Pi * bladeLength * bladeLength
}

// WindTurbine models instantaneous power extracted from wind:
// P = 0.5 * rho * A * V^3 * Cp.
type WindTurbine struct {
	Density float64 // kg/m^3
	Area    float64 // m^2, rotor swept area
	Speed   float64 // m/s
	Cp      float64 // power coefficient, 0..1
}

func NewWindTurbine() *WindTurbine {
	return &WindTurbine{
		Density: AirDensity,
		Area:    SweptArea(50.0),
		Speed:   10.0,
		Cp:      0.4,
	}
}

func (w *WindTurbine) Name() string { return "wind" }

func (w *WindTurbine) Describe() string { return "wind turbine power" }

func (w *WindTurbine) Params() []sim.Param {
	return []sim.Param{
		{Name: "density", Unit: "kg/m³", Min: 0, Max: 2.0, Step: 0.025, Default: AirDensity},
		{Name: "area", Unit: "m²", Min: 0, Max: 20000, Step: 100, Default: SweptArea(50.0)},
		{Name: "speed", Unit: "m/s", Min: 0, Max: 40, Step: 0.5, Default: 10.0},
		{Name: "cp", Unit: "", Min: 0, Max: 1, Step: 0.01, Default: 0.4},
	}
}

func (w *WindTurbine) GetParams() map[string]float64 {
	return map[string]float64{
		"density": w.Density,
		"area":    w.Area,
		"speed":   w.Speed,
		"cp":      w.Cp,
	}
}

func (w *WindTurbine) SetParam(name string, value float64) error {
	switch name {
	case "density":
		w.Density = value
	case "area":
		w.Area = value
	case "speed":
		w.Speed = value
	case "cp":
		w.Cp = value
	default:
		return newInputError(w.Name(), name, value, sim.ErrUnknownParam)
	}
	return nil
}

func (w *WindTurbine) Validate() error {
	if w.Density < 0 {
		return newInputError(w.Name(), "density", w.Density, sim.ErrNegativeInput)
	}
	if w.Area < 0 {
		return newInputError(w.Name(), "area", w.Area, sim.ErrNegativeInput)
	}
	if w.Speed < 0 {
		return newInputError(w.Name(), "speed", w.Speed, sim.ErrNegativeInput)
	}
	if w.Cp < 0 || w.Cp > 1 {
		return newInputError(w.Name(), "cp", w.Cp, sim.ErrFractionBounds)
	}
	return nil
}

// Power returns the instantaneous output in watts.
func (w *WindTurbine) Power() float64 {
	return 0.5 * w.Density * w.Area * w.Speed * w.Speed * w.Speed * w.Cp
}

func (w *WindTurbine) Evaluate() ([]sim.Output, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	p := w.Power()
	return []sim.Output{
		{Name: "power", Unit: "W", Value: p},
		{Name: "power_kw", Unit: "kW", Value: p / 1000},
	}, nil
}

// Curve plots power against wind speed from calm up to twice the current
// speed, so the operating point sits mid-chart.
func (w *WindTurbine) Curve() (*sim.Curve, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	maxSpeed := 2*w.Speed + 5
	curve := &sim.Curve{
		Title:  "power vs wind speed",
		XLabel: "wind speed (m/s)",
		YLabel: "power (kW)",
		Points: make([]sim.Point, 0, curveSamples),
	}
	for i := 0; i < curveSamples; i++ {
		v := maxSpeed * float64(i) / float64(curveSamples-1)
		p := 0.5 * w.Density * w.Area * v * v * v * w.Cp
		curve.Points = append(curve.Points, sim.Point{X: v, Y: p / 1000})
	}
	return curve, nil
}
