package phys

import (
	"sort"

	"github.com/jksalcedo/physlab/internal/sim"
)

// Sampling resolution for generated curves; dense enough for a smooth render.
const (
	curveSamples      = 50
	trajectorySamples = 100
)

type Registry struct {
	models map[string]func() sim.Model
}

func NewRegistry() *Registry {
	r := &Registry{models: make(map[string]func() sim.Model)}

	r.models["wind"] = func() sim.Model { return NewWindTurbine() }
	r.models["solar"] = func() sim.Model { return NewSolarPanel() }
	r.models["battery"] = func() sim.Model { return NewEVBattery() }
	r.models["projectile"] = func() sim.Model { return NewProjectile() }

	return r
}

// GetModel returns a fresh model instance with default parameters.
func (r *Registry) GetModel(name string) (sim.Model, error) {
	fn, ok := r.models[name]
	if !ok {
		return nil, &sim.InputError{Model: name, Wrapped: sim.ErrUnknownModel}
	}
	return fn(), nil
}

func (r *Registry) ListModels() []string {
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newInputError(model, param string, value float64, wrapped error) *sim.InputError {
	return &sim.InputError{Model: model, Param: param, Value: value, Wrapped: wrapped}
}
