package phys

import (
	"math"

	"github.com/jksalcedo/physlab/internal/sim"
)

// EVBattery models linear battery drain over distance. Remaining capacity is
// floored at zero: a depleted pack reads empty, never negative.
type EVBattery struct {
	Capacity float64 // kWh
	Rate     float64 // kWh per km
	Distance float64 // km driven
}

func NewEVBattery() *EVBattery {
	return &EVBattery{
		Capacity: 75.0,
		Rate:     0.18,
		Distance: 150.0,
	}
}

func (b *EVBattery) Name() string { return "battery" }

func (b *EVBattery) Describe() string { return "ev battery drain" }

func (b *EVBattery) Params() []sim.Param {
	return []sim.Param{
		{Name: "capacity", Unit: "kWh", Min: 0, Max: 200, Step: 1, Default: 75.0},
		{Name: "rate", Unit: "kWh/km", Min: 0, Max: 1, Step: 0.005, Default: 0.18},
		{Name: "distance", Unit: "km", Min: 0, Max: 1000, Step: 5, Default: 150.0},
	}
}

func (b *EVBattery) GetParams() map[string]float64 {
	return map[string]float64{
		"capacity": b.Capacity,
		"rate":     b.Rate,
		"distance": b.Distance,
	}
}

func (b *EVBattery) SetParam(name string, value float64) error {
	switch name {
	case "capacity":
		b.Capacity = value
	case "rate":
		b.Rate = value
	case "distance":
		b.Distance = value
	default:
		return newInputError(b.Name(), name, value, sim.ErrUnknownParam)
	}
	return nil
}

func (b *EVBattery) Validate() error {
	if b.Capacity < 0 {
		return newInputError(b.Name(), "capacity", b.Capacity, sim.ErrNegativeInput)
	}
	if b.Rate < 0 {
		return newInputError(b.Name(), "rate", b.Rate, sim.ErrNegativeInput)
	}
	if b.Distance < 0 {
		return newInputError(b.Name(), "distance", b.Distance, sim.ErrNegativeInput)
	}
	return nil
}

// Consumed returns the energy drawn over the configured distance.
func (b *EVBattery) Consumed() float64 {
	return b.Rate * b.Distance
}

// Remaining returns capacity left after driving, floored at zero.
func (b *EVBattery) Remaining() float64 {
	return math.Max(0, b.Capacity-b.Consumed())
}

// EstRange returns the distance at which the pack reads empty.
func (b *EVBattery) EstRange() float64 {
	if b.Rate == 0 {
		return math.Inf(1)
	}
	return b.Capacity / b.Rate
}

func (b *EVBattery) Evaluate() ([]sim.Output, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	remaining := b.Remaining()
	pct := 0.0
	if b.Capacity > 0 {
		pct = remaining / b.Capacity * 100
	}
	return []sim.Output{
		{Name: "remaining", Unit: "kWh", Value: remaining},
		{Name: "consumed", Unit: "kWh", Value: b.Consumed()},
		{Name: "charge", Unit: "%", Value: pct},
	}, nil
}

// Curve plots remaining capacity against distance out to 20% past the
// estimated range, so the zero floor is visible.
func (b *EVBattery) Curve() (*sim.Curve, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	const samples = 100
	maxDist := b.EstRange() * 1.2
	if math.IsInf(maxDist, 1) || maxDist == 0 {
		maxDist = 2*b.Distance + 100
	}
	curve := &sim.Curve{
		Title:  "remaining capacity vs distance",
		XLabel: "distance (km)",
		YLabel: "remaining (kWh)",
		Points: make([]sim.Point, 0, samples),
	}
	for i := 0; i < samples; i++ {
		d := maxDist * float64(i) / float64(samples-1)
		curve.Points = append(curve.Points, sim.Point{X: d, Y: math.Max(0, b.Capacity-b.Rate*d)})
	}
	return curve, nil
}
