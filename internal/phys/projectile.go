package phys

import (
	"math"

	"github.com/jksalcedo/physlab/internal/sim"
)

// Projectile models ideal ballistic flight launched from ground level.
// Angle is held in degrees; kinematics follow the standard drag-free
// equations.
type Projectile struct {
	Speed    float64 // m/s, initial speed
	AngleDeg float64 // degrees, 0..90
	Gravity  float64 // m/s^2, > 0
}

func NewProjectile() *Projectile {
	return &Projectile{
		Speed:    50.0,
		AngleDeg: 45.0,
		Gravity:  Gravity,
	}
}

func (p *Projectile) Name() string { return "projectile" }

func (p *Projectile) Describe() string { return "projectile motion" }

func (p *Projectile) Params() []sim.Param {
	return []sim.Param{
		{Name: "speed", Unit: "m/s", Min: 0, Max: 200, Step: 1, Default: 50.0},
		{Name: "angle", Unit: "°", Min: 0, Max: 90, Step: 1, Default: 45.0},
		{Name: "gravity", Unit: "m/s²", Min: 0.1, Max: 30, Step: 0.1, Default: Gravity},
	}
}

func (p *Projectile) GetParams() map[string]float64 {
	return map[string]float64{
		"speed":   p.Speed,
		"angle":   p.AngleDeg,
		"gravity": p.Gravity,
	}
}

func (p *Projectile) SetParam(name string, value float64) error {
	switch name {
	case "speed":
		p.Speed = value
	case "angle":
		p.AngleDeg = value
	case "gravity":
		p.Gravity = value
	default:
		return newInputError(p.Name(), name, value, sim.ErrUnknownParam)
	}
	return nil
}

func (p *Projectile) Validate() error {
	if p.Speed < 0 {
		return newInputError(p.Name(), "speed", p.Speed, sim.ErrNegativeInput)
	}
	if p.AngleDeg < 0 || p.AngleDeg > 90 {
		return newInputError(p.Name(), "angle", p.AngleDeg, sim.ErrAngleBounds)
	}
	if p.Gravity <= 0 {
		return newInputError(p.Name(), "gravity", p.Gravity, sim.ErrNonPositive)
	}
	return nil
}

// TimeOfFlight returns the airborne duration back to launch height.
func (p *Projectile) TimeOfFlight() float64 {
	theta := p.AngleDeg * math.Pi / 180
	return 2 * p.Speed * math.Sin(theta) / p.Gravity
}

// MaxHeight returns the apex height above launch.
func (p *Projectile) MaxHeight() float64 {
	theta := p.AngleDeg * math.Pi / 180
	vy := p.Speed * math.Sin(theta)
	return vy * vy / (2 * p.Gravity)
}

// Range returns the horizontal distance covered at landing.
func (p *Projectile) Range() float64 {
	theta := p.AngleDeg * math.Pi / 180
	return p.Speed * p.Speed * math.Sin(2*theta) / p.Gravity
}

// Trajectory samples the flight path at n points over [0, TimeOfFlight].
// Degenerate launches (zero speed or zero angle) yield the single origin
// point rather than an error.
func (p *Projectile) Trajectory(n int) []sim.Point {
	tof := p.TimeOfFlight()
	if tof == 0 || n < 2 {
		return []sim.Point{{X: 0, Y: 0}}
	}

	theta := p.AngleDeg * math.Pi / 180
	vx := p.Speed * math.Cos(theta)
	vy := p.Speed * math.Sin(theta)

	points := make([]sim.Point, 0, n)
	for i := 0; i < n; i++ {
		t := tof * float64(i) / float64(n-1)
		points = append(points, sim.Point{
			X: vx * t,
			Y: vy*t - 0.5*p.Gravity*t*t,
		})
	}
	return points
}

func (p *Projectile) Evaluate() ([]sim.Output, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return []sim.Output{
		{Name: "range", Unit: "m", Value: p.Range()},
		{Name: "max_height", Unit: "m", Value: p.MaxHeight()},
		{Name: "time_of_flight", Unit: "s", Value: p.TimeOfFlight()},
	}, nil
}

// Curve is the trajectory itself: height against horizontal distance.
func (p *Projectile) Curve() (*sim.Curve, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &sim.Curve{
		Title:  "trajectory",
		XLabel: "horizontal distance (m)",
		YLabel: "height (m)",
		Points: p.Trajectory(trajectorySamples),
	}, nil
}
