package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/jksalcedo/physlab/internal/export"
	"github.com/jksalcedo/physlab/internal/phys"
	"github.com/jksalcedo/physlab/internal/sim"
	"github.com/jksalcedo/physlab/internal/storage"
)

var modelInfo = map[string]string{
	"wind":       "rotor power from wind speed",
	"solar":      "panel energy over daylight",
	"battery":    "ev charge left after a drive",
	"projectile": "ballistic flight path",
}

const (
	stateMenu = iota
	stateParams
	stateResult
)

type app struct {
	state, cursor int
	registry      *phys.Registry
	names         []string
	model         sim.Model
	params        []sim.Param
	paramCursor   int
	editing       bool
	editBuf       string
	outputs       []sim.Output
	curve         *sim.Curve
	calcErr       error
	status        string
	dataDir       string
	width, height int
}

func NewApp(dataDir string) *app {
	r := phys.NewRegistry()
	return &app{
		state:    stateMenu,
		registry: r,
		names:    r.ListModels(),
		dataDir:  dataDir,
		width:    80, height: 24,
	}
}

func (a app) Init() tea.Cmd { return nil }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
	}
	return a, nil
}

func (a app) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.state {
	case stateMenu:
		return a.menuKey(msg)
	case stateParams:
		return a.paramsKey(msg)
	case stateResult:
		return a.resultKey(msg)
	}
	return a, nil
}

func (a app) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.names)-1 {
			a.cursor++
		}
	case "enter", " ":
		m, err := a.registry.GetModel(a.names[a.cursor])
		if err != nil {
			return a, nil
		}
		a.model = m
		a.params = m.Params()
		a.state, a.paramCursor = stateParams, 0
		a.status = ""
	}
	return a, nil
}

func (a app) paramsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.editing {
		switch msg.String() {
		case "enter":
			var val float64
			if _, err := fmt.Sscanf(a.editBuf, "%f", &val); err == nil {
				p := a.params[a.paramCursor]
				a.model.SetParam(p.Name, p.Clamp(val))
			}
			a.editing, a.editBuf = false, ""
		case "esc", "escape":
			a.editing, a.editBuf = false, ""
		case "backspace":
			if len(a.editBuf) > 0 {
				a.editBuf = a.editBuf[:len(a.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' {
					a.editBuf += string(c)
				}
			}
		}
		return a, nil
	}
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "esc", "escape":
		a.state = stateMenu
	case "up", "k":
		if a.paramCursor > 0 {
			a.paramCursor--
		}
	case "down", "j":
		if a.paramCursor < len(a.params)-1 {
			a.paramCursor++
		}
	case "enter":
		p := a.params[a.paramCursor]
		a.editing = true
		a.editBuf = fmt.Sprintf("%.2f", a.model.GetParams()[p.Name])
	case "left", "h":
		a.adjustParam(-1)
	case "right", "l":
		a.adjustParam(1)
	case "s", " ":
		a.compute()
		a.state = stateResult
	}
	return a, nil
}

func (a app) resultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "esc", "escape":
		a.state = stateParams
		a.status = ""
	case "tab", "down", "j":
		a.paramCursor = (a.paramCursor + 1) % len(a.params)
	case "up", "k":
		a.paramCursor = (a.paramCursor - 1 + len(a.params)) % len(a.params)
	case "left", "h":
		a.adjustParam(-1)
		a.compute()
	case "right", "l":
		a.adjustParam(1)
		a.compute()
	case "r":
		for _, p := range a.params {
			a.model.SetParam(p.Name, p.Default)
		}
		a.compute()
	case "w":
		a.saveRun()
	case "e":
		a.exportSVG()
	}
	return a, nil
}

// adjustParam nudges the selected parameter by one slider step, clamped to
// its valid range so the model never sees an out-of-range value.
func (a *app) adjustParam(dir int) {
	p := a.params[a.paramCursor]
	val := a.model.GetParams()[p.Name]
	a.model.SetParam(p.Name, p.Clamp(val+float64(dir)*p.Step))
}

func (a *app) compute() {
	a.outputs, a.calcErr = a.model.Evaluate()
	if a.calcErr != nil {
		a.curve = nil
		return
	}
	a.curve, a.calcErr = a.model.Curve()
}

func (a *app) saveRun() {
	st := storage.New(a.dataDir)
	if err := st.Init(); err != nil {
		a.status = errorStyle.Render(err.Error())
		return
	}
	runID, err := st.Save(a.model.Name(), a.model.GetParams(), a.outputs, a.curve)
	if err != nil {
		a.status = errorStyle.Render(err.Error())
		return
	}
	a.status = statusStyle.Render("saved run " + runID)
}

func (a *app) exportSVG() {
	if a.curve == nil {
		return
	}
	path := a.model.Name() + ".svg"
	if err := export.WriteSVG(path, a.curve, 640, 400); err != nil {
		a.status = errorStyle.Render(err.Error())
		return
	}
	a.status = statusStyle.Render("wrote " + path)
}

func (a app) View() string {
	switch a.state {
	case stateMenu:
		return a.viewMenu()
	case stateParams:
		return a.viewParams()
	case stateResult:
		return a.viewResult()
	}
	return ""
}

func (a app) viewMenu() string {
	var b strings.Builder
	b.WriteString("\n\n    " + headerStyle.Render("PHYSLAB") + "\n    " +
		subtleStyle.Render("physics & engineering calculators") + "\n    " +
		subtleStyle.Render("─────────────────────────") + "\n\n")
	for i, name := range a.names {
		desc := modelInfo[name]
		if i == a.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n",
				cursorStyle.Render("▸"),
				selectedStyle.Render(fmt.Sprintf("%-12s", name)),
				accentStyle.Render(desc)))
		} else {
			b.WriteString(fmt.Sprintf("    %s  %s\n",
				dimStyle.Render(fmt.Sprintf("  %-12s", name)),
				dimmerStyle.Render(desc)))
		}
	}
	b.WriteString("\n    " + keyStyle.Render("j/k") + dimStyle.Render(" navigate  ") +
		keyStyle.Render("enter") + dimStyle.Render(" select  ") +
		keyStyle.Render("q") + dimStyle.Render(" quit") + "\n")
	return b.String()
}

func (a app) viewParams() string {
	var b strings.Builder
	b.WriteString("\n\n    " + headerStyle.Render(strings.ToUpper(a.model.Name())) + "\n    " +
		subtleStyle.Render(a.model.Describe()) + "\n    " +
		subtleStyle.Render("─────────────────────────") + "\n\n")
	values := a.model.GetParams()
	for i, p := range a.params {
		val := values[p.Name]
		valStr := fmt.Sprintf("%10.3f", val)
		if a.editing && i == a.paramCursor {
			valStr = fmt.Sprintf("%10s", a.editBuf+"_")
		}
		slider := SliderBar(val, p.Min, p.Max, 14)
		unit := p.Unit
		if i == a.paramCursor {
			b.WriteString(fmt.Sprintf("    %s %s %s %s %s\n",
				cursorStyle.Render("▸"),
				selectedStyle.Render(fmt.Sprintf("%-12s", p.Name)),
				slider,
				accentStyle.Render(valStr),
				dimStyle.Render(unit)))
		} else {
			b.WriteString(fmt.Sprintf("      %s %s %s %s\n",
				dimStyle.Render(fmt.Sprintf("%-12s", p.Name)),
				dimmerStyle.Render(slider),
				dimmerStyle.Render(valStr),
				dimmerStyle.Render(unit)))
		}
	}
	b.WriteString("\n    " + keyStyle.Render("j/k") + dimStyle.Render(" select  ") +
		keyStyle.Render("h/l") + dimStyle.Render(" adjust  ") +
		keyStyle.Render("enter") + dimStyle.Render(" edit  ") +
		keyStyle.Render("s") + dimStyle.Render(" compute  ") +
		keyStyle.Render("esc") + dimStyle.Render(" back") + "\n")
	return b.String()
}

func (a app) viewResult() string {
	var b strings.Builder
	b.WriteString("\n  " + headerStyle.Render(strings.ToUpper(a.model.Name())) + "  " +
		subtleStyle.Render(a.model.Describe()) + "\n\n")

	if a.calcErr != nil {
		b.WriteString("  " + errorStyle.Render(a.calcErr.Error()) + "\n")
		b.WriteString("\n  " + keyStyle.Render("esc") + dimStyle.Render(" back") + "\n")
		return b.String()
	}

	for _, o := range a.outputs {
		line := labelStyle.Render(fmt.Sprintf("  %-16s", o.Name)) +
			valueStyle.Render(fmt.Sprintf("%12.2f", o.Value)) + " " +
			dimStyle.Render(o.Unit)
		b.WriteString(line)
		if a.model.Name() == "battery" && o.Name == "charge" {
			b.WriteString("  " + ProgressBar(o.Value/100, 20))
		}
		b.WriteString("\n")
	}

	if a.curve != nil && len(a.curve.Points) > 1 {
		chartWidth := a.width - 20
		if chartWidth > 70 {
			chartWidth = 70
		}
		if chartWidth < 30 {
			chartWidth = 30
		}
		chart := asciigraph.Plot(a.curve.Ys(),
			asciigraph.Height(10),
			asciigraph.Width(chartWidth),
			asciigraph.Caption(a.curve.Title),
		)
		b.WriteString(graphStyle.Render(chart) + "\n")
	}

	p := a.params[a.paramCursor]
	val := a.model.GetParams()[p.Name]
	b.WriteString("\n  " + Separator(40) + "\n")
	b.WriteString(fmt.Sprintf("  %s %s %s %s\n",
		cursorStyle.Render("▸"),
		selectedStyle.Render(fmt.Sprintf("%-12s", p.Name)),
		SliderBar(val, p.Min, p.Max, 14),
		accentStyle.Render(fmt.Sprintf("%.3f %s", val, p.Unit))))

	if a.status != "" {
		b.WriteString("\n  " + a.status + "\n")
	}
	b.WriteString("\n  " + keyStyle.Render("tab") + dimStyle.Render(" param  ") +
		keyStyle.Render("h/l") + dimStyle.Render(" adjust  ") +
		keyStyle.Render("r") + dimStyle.Render(" reset  ") +
		keyStyle.Render("w") + dimStyle.Render(" save  ") +
		keyStyle.Render("e") + dimStyle.Render(" svg  ") +
		keyStyle.Render("esc") + dimStyle.Render(" back") + "\n")
	return b.String()
}

// RunInteractive starts the TUI; runs saved with `w` land in dataDir.
func RunInteractive(dataDir string) error {
	_, err := tea.NewProgram(NewApp(dataDir), tea.WithAltScreen()).Run()
	return err
}
