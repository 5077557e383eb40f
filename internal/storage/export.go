package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/jksalcedo/physlab/internal/sim"
)

type ExportData struct {
	ID      string             `json:"id"`
	Model   string             `json:"model"`
	Params  map[string]float64 `json:"params"`
	Outputs map[string]float64 `json:"outputs"`
	Title   string             `json:"title,omitempty"`
	XLabel  string             `json:"x_label,omitempty"`
	YLabel  string             `json:"y_label,omitempty"`
	X       []float64          `json:"x"`
	Y       []float64          `json:"y"`
}

func exportJSON(w io.Writer, meta *RunMetadata, curve *sim.Curve) error {
	data := ExportData{
		ID:      meta.ID,
		Model:   meta.Model,
		Params:  meta.Params,
		Outputs: meta.Outputs,
	}
	if curve != nil {
		data.Title = curve.Title
		data.XLabel = curve.XLabel
		data.YLabel = curve.YLabel
		data.X = make([]float64, len(curve.Points))
		data.Y = make([]float64, len(curve.Points))
		for i, p := range curve.Points {
			data.X[i] = p.X
			data.Y[i] = p.Y
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportJSON writes a run with its curve samples to a file.
func ExportJSON(path string, meta *RunMetadata, curve *sim.Curve) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return exportJSON(f, meta, curve)
}

// ExportJSONStdout writes a run with its curve samples to stdout.
func ExportJSONStdout(meta *RunMetadata, curve *sim.Curve) error {
	return exportJSON(os.Stdout, meta, curve)
}
