package phys

import "github.com/jksalcedo/physlab/internal/sim"

// SolarPanel models energy produced over a duration:
// E = area * irradiance * efficiency * hours, reported in watt-hours.
type SolarPanel struct {
	Area       float64 // m^2
	Irradiance float64 // W/m^2
	Efficiency float64 // 0..1
	Hours      float64 // hours of sunlight
}

func NewSolarPanel() *SolarPanel {
	return &SolarPanel{
		Area:       20.0,
		Irradiance: 1000.0,
		Efficiency: 0.18,
		Hours:      1.0,
	}
}

func (s *SolarPanel) Name() string { return "solar" }

func (s *SolarPanel) Describe() string { return "solar panel energy" }

func (s *SolarPanel) Params() []sim.Param {
	return []sim.Param{
		{Name: "area", Unit: "m²", Min: 0, Max: 200, Step: 0.5, Default: 20.0},
		{Name: "irradiance", Unit: "W/m²", Min: 0, Max: 1400, Step: 50, Default: 1000.0},
		{Name: "efficiency", Unit: "", Min: 0, Max: 1, Step: 0.01, Default: 0.18},
		{Name: "hours", Unit: "h", Min: 0, Max: 24, Step: 0.5, Default: 1.0},
	}
}

func (s *SolarPanel) GetParams() map[string]float64 {
	return map[string]float64{
		"area":       s.Area,
		"irradiance": s.Irradiance,
		"efficiency": s.Efficiency,
		"hours":      s.Hours,
	}
}

func (s *SolarPanel) SetParam(name string, value float64) error {
	switch name {
	case "area":
		s.Area = value
	case "irradiance":
		s.Irradiance = value
	case "efficiency":
		s.Efficiency = value
	case "hours":
		s.Hours = value
	default:
		return newInputError(s.Name(), name, value, sim.ErrUnknownParam)
	}
	return nil
}

func (s *SolarPanel) Validate() error {
	if s.Area < 0 {
		return newInputError(s.Name(), "area", s.Area, sim.ErrNegativeInput)
	}
	if s.Irradiance < 0 {
		return newInputError(s.Name(), "irradiance", s.Irradiance, sim.ErrNegativeInput)
	}
	if s.Efficiency < 0 || s.Efficiency > 1 {
		return newInputError(s.Name(), "efficiency", s.Efficiency, sim.ErrFractionBounds)
	}
	if s.Hours < 0 {
		return newInputError(s.Name(), "hours", s.Hours, sim.ErrNegativeInput)
	}
	return nil
}

// Energy returns watt-hours produced over the configured duration.
func (s *SolarPanel) Energy() float64 {
	return s.Area * s.Irradiance * s.Efficiency * s.Hours
}

func (s *SolarPanel) Evaluate() ([]sim.Output, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []sim.Output{
		{Name: "energy", Unit: "Wh", Value: s.Energy()},
	}, nil
}

// Curve plots energy against irradiance over the full terrestrial range.
func (s *SolarPanel) Curve() (*sim.Curve, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	const maxIrradiance = 1400.0
	curve := &sim.Curve{
		Title:  "energy vs irradiance",
		XLabel: "irradiance (W/m²)",
		YLabel: "energy (Wh)",
		Points: make([]sim.Point, 0, curveSamples),
	}
	for i := 0; i < curveSamples; i++ {
		g := maxIrradiance * float64(i) / float64(curveSamples-1)
		curve.Points = append(curve.Points, sim.Point{X: g, Y: s.Area * g * s.Efficiency * s.Hours})
	}
	return curve, nil
}
