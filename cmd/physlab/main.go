package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/jksalcedo/physlab/internal/config"
	"github.com/jksalcedo/physlab/internal/export"
	"github.com/jksalcedo/physlab/internal/phys"
	"github.com/jksalcedo/physlab/internal/sim"
	"github.com/jksalcedo/physlab/internal/storage"
	"github.com/jksalcedo/physlab/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir string
	// wind
	density float64
	area    float64
	speed   float64
	cp      float64
	blades  float64
	// solar
	irradiance float64
	efficiency float64
	hours      float64
	// battery
	capacity float64
	rate     float64
	distance float64
	// projectile
	v0      float64
	angle   float64
	gravity float64
	// common
	configFile string
	preset     string
	saveRun    bool
	samples    int
	sweepFrom  float64
	sweepTo    float64
	outFile    string
)

// flagParams maps CLI flag names to model parameter names per model.
var flagParams = map[string][][2]string{
	"wind":       {{"density", "density"}, {"area", "area"}, {"speed", "speed"}, {"cp", "cp"}},
	"solar":      {{"area", "area"}, {"irradiance", "irradiance"}, {"efficiency", "efficiency"}, {"hours", "hours"}},
	"battery":    {{"capacity", "capacity"}, {"rate", "rate"}, {"distance", "distance"}},
	"projectile": {{"v0", "speed"}, {"angle", "angle"}, {"gravity", "gravity"}},
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "physlab",
		Short: "interactive physics and engineering calculators",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to interactive mode when no command given
			return viz.RunInteractive(dataDir)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".physlab", "data directory")

	calcCmd := &cobra.Command{
		Use:   "calc [model]",
		Short: "evaluate a model once",
		Args:  cobra.ExactArgs(1),
		RunE:  runCalc,
	}
	addModelFlags(calcCmd)
	calcCmd.Flags().BoolVar(&saveRun, "save", false, "save the run to the data directory")

	curveCmd := &cobra.Command{
		Use:   "curve [model]",
		Short: "plot the model's signature curve",
		Args:  cobra.ExactArgs(1),
		RunE:  runCurve,
	}
	addModelFlags(curveCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep [model] [param]",
		Short: "sweep one parameter and plot the primary output",
		Args:  cobra.ExactArgs(2),
		RunE:  runSweep,
	}
	addModelFlags(sweepCmd)
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0, "sweep start")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 0, "sweep end (required)")
	sweepCmd.Flags().IntVar(&samples, "samples", 50, "number of samples")
	sweepCmd.MarkFlagRequired("to")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run's curve",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "print run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run curve to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export run curve to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&outFile, "out", "", "output path (default <run_id>.svg)")

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list available presets for a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for model: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "list available models",
		Run: func(cmd *cobra.Command, args []string) {
			r := phys.NewRegistry()
			for _, name := range r.ListModels() {
				m, _ := r.GetModel(name)
				fmt.Printf("  %-12s %s\n", name, m.Describe())
			}
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive terminal mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.RunInteractive(dataDir)
		},
	}

	rootCmd.AddCommand(calcCmd, curveCmd, sweepCmd, listCmd, plotCmd, showCmd,
		exportCSVCmd, exportJSONCmd, exportSVGCmd, presetsCmd, modelsCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addModelFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&density, "density", config.DefaultDensity, "air density (kg/m³)")
	cmd.Flags().Float64Var(&area, "area", 0, "area (m²): rotor swept area or panel area")
	cmd.Flags().Float64Var(&blades, "blades", config.DefaultBladeLength, "blade length (m), sets swept area")
	cmd.Flags().Float64Var(&speed, "speed", config.DefaultWindSpeed, "wind speed (m/s)")
	cmd.Flags().Float64Var(&cp, "cp", config.DefaultCp, "power coefficient (0..1)")
	cmd.Flags().Float64Var(&irradiance, "irradiance", config.DefaultIrradiance, "solar irradiance (W/m²)")
	cmd.Flags().Float64Var(&efficiency, "efficiency", config.DefaultEfficiency, "panel efficiency (0..1)")
	cmd.Flags().Float64Var(&hours, "hours", config.DefaultHours, "hours of sunlight")
	cmd.Flags().Float64Var(&capacity, "capacity", config.DefaultCapacity, "battery capacity (kWh)")
	cmd.Flags().Float64Var(&rate, "rate", config.DefaultRate, "consumption rate (kWh/km)")
	cmd.Flags().Float64Var(&distance, "distance", config.DefaultDistance, "distance driven (km)")
	cmd.Flags().Float64Var(&v0, "v0", config.DefaultSpeed, "initial speed (m/s)")
	cmd.Flags().Float64Var(&angle, "angle", config.DefaultAngle, "launch angle (degrees)")
	cmd.Flags().Float64Var(&gravity, "gravity", config.DefaultGravity, "gravitational acceleration (m/s²)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

func flagValue(flag string) float64 {
	switch flag {
	case "density":
		return density
	case "area":
		return area
	case "speed":
		return speed
	case "cp":
		return cp
	case "irradiance":
		return irradiance
	case "efficiency":
		return efficiency
	case "hours":
		return hours
	case "capacity":
		return capacity
	case "rate":
		return rate
	case "distance":
		return distance
	case "v0":
		return v0
	case "angle":
		return angle
	case "gravity":
		return gravity
	}
	return 0
}

// buildModel constructs a model applying, in order of precedence: CLI flags,
// config file, preset, model defaults.
func buildModel(cmd *cobra.Command, name string) (sim.Model, error) {
	registry := phys.NewRegistry()
	m, err := registry.GetModel(name)
	if err != nil {
		return nil, err
	}

	if preset != "" {
		cfg := config.GetPreset(name, preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(name))
		}
		for param, val := range cfg.Values(name) {
			if err := m.SetParam(param, val); err != nil {
				return nil, err
			}
		}
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		vals := cfg.Values(name)
		for _, fp := range flagParams[name] {
			if !cmd.Flags().Changed(fp[0]) {
				if err := m.SetParam(fp[1], vals[fp[1]]); err != nil {
					return nil, err
				}
			}
		}
	}

	for _, fp := range flagParams[name] {
		if cmd.Flags().Changed(fp[0]) {
			if err := m.SetParam(fp[1], flagValue(fp[0])); err != nil {
				return nil, err
			}
		}
	}
	if name == "wind" && cmd.Flags().Changed("blades") && !cmd.Flags().Changed("area") {
		if err := m.SetParam("area", phys.SweptArea(blades)); err != nil {
			return nil, err
		}
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func runCalc(cmd *cobra.Command, args []string) error {
	m, err := buildModel(cmd, args[0])
	if err != nil {
		return err
	}

	outputs, err := m.Evaluate()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "OUTPUT\tVALUE\tUNIT")
	for _, o := range outputs {
		fmt.Fprintf(w, "%s\t%.4f\t%s\n", o.Name, o.Value, o.Unit)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if saveRun {
		curve, err := m.Curve()
		if err != nil {
			return err
		}
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(m.Name(), m.GetParams(), outputs, curve)
		if err != nil {
			return err
		}
		fmt.Printf("\nrun id: %s\n", runID)
	}

	return nil
}

func runCurve(cmd *cobra.Command, args []string) error {
	m, err := buildModel(cmd, args[0])
	if err != nil {
		return err
	}

	curve, err := m.Curve()
	if err != nil {
		return err
	}

	printCurve(curve)
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	m, err := buildModel(cmd, args[0])
	if err != nil {
		return err
	}

	curve, err := sim.Sweep(m, args[1], sweepFrom, sweepTo, samples)
	if err != nil {
		return err
	}

	printCurve(curve)
	return nil
}

func printCurve(curve *sim.Curve) {
	if len(curve.Points) < 2 {
		fmt.Println("no curve to plot (degenerate inputs)")
		return
	}
	graph := asciigraph.Plot(curve.Ys(),
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(curve.Title),
	)
	fmt.Println(graph)
	fmt.Printf("\nx: %s  [%.2f .. %.2f]\n", curve.XLabel,
		curve.Points[0].X, curve.Points[len(curve.Points)-1].X)
	fmt.Printf("y: %s\n", curve.YLabel)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODEL\tTIME\tPOINTS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n",
			run.ID,
			run.Model,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Curve.Points,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	curve, err := st.LoadCurve(args[0])
	if err != nil {
		return err
	}
	printCurve(curve)
	return nil
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "id\t%s\n", meta.ID)
	fmt.Fprintf(w, "model\t%s\n", meta.Model)
	fmt.Fprintf(w, "time\t%s\n", meta.Timestamp.Format("2006-01-02 15:04:05"))
	for name, val := range meta.Params {
		fmt.Fprintf(w, "param %s\t%.4f\n", name, val)
	}
	for name, val := range meta.Outputs {
		fmt.Fprintf(w, "output %s\t%.4f\n", name, val)
	}
	return w.Flush()
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	curve, err := st.LoadCurve(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"x", "y"}); err != nil {
		return err
	}
	for _, p := range curve.Points {
		row := []string{
			strconv.FormatFloat(p.X, 'f', 6, 64),
			strconv.FormatFloat(p.Y, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	curve, err := st.LoadCurve(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSONStdout(meta, curve)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	curve, err := st.LoadCurve(args[0])
	if err != nil {
		return err
	}

	path := outFile
	if path == "" {
		path = args[0] + ".svg"
	}
	if err := export.WriteSVG(path, curve, 640, 400); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
