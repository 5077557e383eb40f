package sim

import "fmt"

// Sweep evaluates the model's primary output while varying one parameter
// linearly over [from, to]. The parameter is restored to its original value
// afterwards, so sweeping never mutates the caller's configuration.
func Sweep(m Model, param string, from, to float64, samples int) (*Curve, error) {
	if samples < 2 {
		return nil, fmt.Errorf("sweep needs at least 2 samples, got %d", samples)
	}

	orig, ok := m.GetParams()[param]
	if !ok {
		return nil, &InputError{Model: m.Name(), Param: param, Wrapped: ErrUnknownParam}
	}
	defer m.SetParam(param, orig)

	var pdef Param
	for _, p := range m.Params() {
		if p.Name == param {
			pdef = p
			break
		}
	}

	curve := &Curve{
		XLabel: param,
		Points: make([]Point, 0, samples),
	}
	if pdef.Unit != "" {
		curve.XLabel = fmt.Sprintf("%s (%s)", param, pdef.Unit)
	}

	step := (to - from) / float64(samples-1)
	for i := 0; i < samples; i++ {
		v := from + step*float64(i)
		if err := m.SetParam(param, v); err != nil {
			return nil, err
		}
		outputs, err := m.Evaluate()
		if err != nil {
			return nil, err
		}
		if len(outputs) == 0 {
			return nil, fmt.Errorf("model %s produced no outputs", m.Name())
		}
		if i == 0 {
			curve.Title = fmt.Sprintf("%s vs %s", outputs[0].Name, param)
			curve.YLabel = fmt.Sprintf("%s (%s)", outputs[0].Name, outputs[0].Unit)
		}
		curve.Points = append(curve.Points, Point{X: v, Y: outputs[0].Value})
	}

	return curve, nil
}
