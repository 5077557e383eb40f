package sim

import "math"

// Param describes one adjustable model input and its physically valid range.
// Step is the slider increment used by interactive surfaces.
type Param struct {
	Name    string
	Unit    string
	Min     float64
	Max     float64
	Step    float64
	Default float64
}

// Clamp constrains v to the parameter's valid range.
func (p Param) Clamp(v float64) float64 {
	return Clamp(v, p.Min, p.Max)
}

// Output is a single computed result with its display unit.
type Output struct {
	Name  string
	Unit  string
	Value float64
}

// Point is one sample of a plotted curve.
type Point struct {
	X float64
	Y float64
}

// Curve is an ordered sequence of samples plus axis labels for rendering.
type Curve struct {
	Title  string
	XLabel string
	YLabel string
	Points []Point
}

// Ys returns the y values in sample order, ready for plotting.
func (c *Curve) Ys() []float64 {
	ys := make([]float64, len(c.Points))
	for i, p := range c.Points {
		ys[i] = p.Y
	}
	return ys
}

// Bounds returns the min and max y value over all samples.
func (c *Curve) Bounds() (float64, float64) {
	if len(c.Points) == 0 {
		return 0, 0
	}
	lo, hi := c.Points[0].Y, c.Points[0].Y
	for _, p := range c.Points[1:] {
		if p.Y < lo {
			lo = p.Y
		}
		if p.Y > hi {
			hi = p.Y
		}
	}
	return lo, hi
}

// IsValid reports whether every sample is finite.
func (c *Curve) IsValid() bool {
	for _, p := range c.Points {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			return false
		}
	}
	return true
}

// Model is a closed-form calculator: a pure mapping from its current
// parameter values to scalar outputs and a signature curve. Implementations
// hold parameters as struct fields and must not keep hidden state between
// evaluations.
type Model interface {
	Name() string
	Describe() string
	Params() []Param
	GetParams() map[string]float64
	SetParam(name string, value float64) error
	Validate() error
	Evaluate() ([]Output, error)
	Curve() (*Curve, error)
}

// Clamp constrains v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
