package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jksalcedo/physlab/internal/sim"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Model     string             `json:"model"`
	Timestamp time.Time          `json:"timestamp"`
	Params    map[string]float64 `json:"params"`
	Outputs   map[string]float64 `json:"outputs"`
	Curve     CurveMetadata      `json:"curve"`
}

type CurveMetadata struct {
	Title  string `json:"title"`
	XLabel string `json:"x_label"`
	YLabel string `json:"y_label"`
	Points int    `json:"points"`
}

// Save writes one calculation as a run directory: metadata.json plus the
// curve samples as curve.csv. Returns the generated run id.
func (s *Store) Save(model string, params map[string]float64, outputs []sim.Output, curve *sim.Curve) (string, error) {
	runID := fmt.Sprintf("%s_%d", model, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	outs := make(map[string]float64, len(outputs))
	for _, o := range outputs {
		outs[o.Name] = o.Value
	}

	meta := RunMetadata{
		ID:        runID,
		Model:     model,
		Timestamp: time.Now(),
		Params:    params,
		Outputs:   outs,
	}
	if curve != nil {
		meta.Curve = CurveMetadata{
			Title:  curve.Title,
			XLabel: curve.XLabel,
			YLabel: curve.YLabel,
			Points: len(curve.Points),
		}
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if curve == nil {
		return runID, nil
	}

	csvPath := filepath.Join(runDir, "curve.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"x", "y"}); err != nil {
		return "", err
	}
	for _, p := range curve.Points {
		row := []string{
			strconv.FormatFloat(p.X, 'f', 6, 64),
			strconv.FormatFloat(p.Y, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadCurve reads the stored samples back as a Curve, restoring labels from
// metadata when present.
func (s *Store) LoadCurve(runID string) (*sim.Curve, error) {
	csvPath := filepath.Join(s.baseDir, runID, "curve.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	curve := &sim.Curve{}
	if meta, err := s.Load(runID); err == nil {
		curve.Title = meta.Curve.Title
		curve.XLabel = meta.Curve.XLabel
		curve.YLabel = meta.Curve.YLabel
	}

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 2 {
			continue
		}
		x, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		y, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		curve.Points = append(curve.Points, sim.Point{X: x, Y: y})
	}

	return curve, nil
}
