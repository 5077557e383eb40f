package phys

import (
	"errors"
	"testing"

	"github.com/jksalcedo/physlab/internal/sim"
)

func TestRegistryModels(t *testing.T) {
	r := NewRegistry()

	names := r.ListModels()
	if len(names) != 4 {
		t.Fatalf("expected 4 models, got %d", len(names))
	}

	for _, name := range names {
		m, err := r.GetModel(name)
		if err != nil {
			t.Fatalf("GetModel(%s): %v", name, err)
		}
		if m.Name() != name {
			t.Errorf("model %s reports name %s", name, m.Name())
		}
		if err := m.Validate(); err != nil {
			t.Errorf("default %s invalid: %v", name, err)
		}
		if _, err := m.Evaluate(); err != nil {
			t.Errorf("default %s failed to evaluate: %v", name, err)
		}
	}
}

func TestRegistryUnknownModel(t *testing.T) {
	r := NewRegistry()

	_, err := r.GetModel("warpdrive")
	if !errors.Is(err, sim.ErrUnknownModel) {
		t.Errorf("expected ErrUnknownModel, got %v", err)
	}
}

func TestRegistryReturnsFreshInstances(t *testing.T) {
	r := NewRegistry()

	m1, _ := r.GetModel("wind")
	m2, _ := r.GetModel("wind")

	m1.SetParam("speed", 99)
	if m2.GetParams()["speed"] == 99 {
		t.Error("registry instances share state")
	}
}

func TestParamSpecsMatchDefaults(t *testing.T) {
	r := NewRegistry()

	for _, name := range r.ListModels() {
		m, _ := r.GetModel(name)
		values := m.GetParams()
		for _, p := range m.Params() {
			val, ok := values[p.Name]
			if !ok {
				t.Errorf("%s: param %s missing from GetParams", name, p.Name)
				continue
			}
			if val != p.Default {
				t.Errorf("%s: param %s default %f, model holds %f", name, p.Name, p.Default, val)
			}
			if p.Clamp(val) != val {
				t.Errorf("%s: default %s=%f outside declared range", name, p.Name, val)
			}
		}
	}
}
