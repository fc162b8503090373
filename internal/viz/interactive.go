package viz

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/haot/internal/config"
	"github.com/san-kum/haot/internal/optics"
	"github.com/san-kum/haot/internal/quantum"
	"github.com/san-kum/haot/internal/species"
	"github.com/san-kum/haot/internal/units"
)

const (
	temperatureStep = 50.0
	temperatureMax  = 5000.0
	wavelengthStep  = 10.0
	wavelengthMin   = 200.0
	wavelengthMax   = 2000.0
	curvePoints     = 41
)

var moleculeInfo = map[string]string{
	"Air": "dry air mixture",
	"H2":  "hydrogen",
	"N2":  "nitrogen",
	"O2":  "oxygen",
}

// reading is what the explorer shows for the current selection.
type reading struct {
	kerl       float64 // A^3
	thermal    float64 // A^3, NaN without Buldakov derivatives
	population []float64
	curve      []float64
	err        error
}

type model struct {
	cursor        int
	molecules     []string
	temperature   float64
	wavelength    float64
	static        bool
	energy        quantum.EnergyModel
	vmax, jmax    int
	theme         int
	width, height int
	reading       reading
}

// NewExplorer starts at cfg's molecule, wavelength and first temperature.
// An empty theme selects the first one.
func NewExplorer(cfg *config.Config, theme string) (*model, error) {
	energy, err := cfg.Model()
	if err != nil {
		return nil, err
	}
	themeIdx := 0
	if theme != "" {
		i, ok := themeIndex(theme)
		if !ok {
			return nil, fmt.Errorf("unknown theme %q (available: %s)", theme, strings.Join(ThemeNames(), ", "))
		}
		themeIdx = i
	}
	m := &model{
		molecules:   species.Molecules("kerl"),
		temperature: cfg.Temperature.Start,
		wavelength:  cfg.WavelengthNM,
		energy:      energy,
		vmax:        cfg.VibrationalMax,
		jmax:        cfg.RotationalMax,
		theme:       themeIdx,
		width:       80,
		height:      24,
	}
	for i, mol := range m.molecules {
		if mol == cfg.Molecule {
			m.cursor = i
		}
	}
	m.evaluate()
	return m, nil
}

func (m *model) molecule() string { return m.molecules[m.cursor] }

func (m *model) wavelengthNM() float64 {
	if m.static {
		return math.Inf(1)
	}
	return m.wavelength
}

func angstromCubed(m3 float64) float64 {
	return m3 / units.AngstromCubedToCubicMeter(1)
}

// cutoffs clamps the configured quantum numbers to the molecule ladders.
func (m *model) cutoffs(mol string) (int, int, error) {
	vmax, err := quantum.MaxVibrational(mol)
	if err != nil {
		return 0, 0, err
	}
	jmax, err := quantum.MaxRotational(mol)
	if err != nil {
		return 0, 0, err
	}
	return min(m.vmax, vmax), min(m.jmax, jmax), nil
}

func (m *model) evaluate() {
	mol := m.molecule()
	r := reading{thermal: math.NaN()}

	a, err := optics.KerlPolarizability(m.temperature, mol, m.wavelengthNM())
	if err != nil {
		m.reading = reading{err: err}
		return
	}
	r.kerl = angstromCubed(a)

	r.curve = make([]float64, curvePoints)
	for i := range r.curve {
		t := temperatureMax * float64(i) / float64(curvePoints-1)
		a, err := optics.KerlPolarizability(t, mol, m.wavelengthNM())
		if err != nil {
			m.reading = reading{err: err}
			return
		}
		r.curve[i] = angstromCubed(a)
	}

	if _, err := species.PolarizabilityDerivatives(mol); err == nil && m.temperature > 0 {
		vmax, jmax, err := m.cutoffs(mol)
		if err == nil {
			if avg, err := optics.BuldakovThermalAverage(m.temperature, mol, vmax, jmax, m.energy); err == nil {
				r.thermal = angstromCubed(avg)
			}
			r.population, _ = quantum.RotationalDistribution(m.temperature, mol, vmax, jmax, m.energy)
		}
	}
	m.reading = r
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.molecules)-1 {
			m.cursor++
		}
	case "left", "h":
		m.temperature = math.Max(0, m.temperature-temperatureStep)
	case "right", "l":
		m.temperature = math.Min(temperatureMax, m.temperature+temperatureStep)
	case "[":
		m.wavelength = math.Max(wavelengthMin, m.wavelength-wavelengthStep)
	case "]":
		m.wavelength = math.Min(wavelengthMax, m.wavelength+wavelengthStep)
	case "s":
		m.static = !m.static
	case "t":
		m.theme = (m.theme + 1) % len(Themes)
		return m, nil
	default:
		return m, nil
	}
	m.evaluate()
	return m, nil
}

func (m model) View() string {
	st := newStyles(Themes[m.theme])
	theme := Themes[m.theme]

	var b strings.Builder
	b.WriteString("\n  " + GradientText("HAOT", theme.Title, theme.Accent) + "  " +
		st.muted.Render("aero-optics polarizability explorer") + "\n  " + separator(st.muted, 40) + "\n\n")

	for i, mol := range m.molecules {
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("  %s %s %s\n", st.accent.Render("▸"), st.text.Render(fmt.Sprintf("%-5s", mol)), st.accent.Render(moleculeInfo[mol])))
		} else {
			b.WriteString(fmt.Sprintf("    %s %s\n", st.muted.Render(fmt.Sprintf("%-5s", mol)), st.muted.Render(moleculeInfo[mol])))
		}
	}
	b.WriteString("\n")

	wl := fmt.Sprintf("%.0f nm", m.wavelength)
	if m.static {
		wl = "static"
	}
	lines := []string{
		st.muted.Render("temperature  ") + st.value.Render(fmt.Sprintf("%.0f K", m.temperature)),
		st.muted.Render("wavelength   ") + st.value.Render(wl),
	}
	if m.reading.err != nil {
		lines = append(lines, st.warning.Render(m.reading.err.Error()))
	} else {
		lines = append(lines, st.muted.Render("kerl         ")+st.value.Render(fmt.Sprintf("%.5f A^3", m.reading.kerl)))
		thermal := "n/a"
		if !math.IsNaN(m.reading.thermal) {
			thermal = fmt.Sprintf("%.5f A^3", m.reading.thermal)
		}
		lines = append(lines, st.muted.Render("buldakov     ")+st.value.Render(thermal))
		if len(m.reading.population) > 0 {
			lines = append(lines, st.muted.Render("population J ")+SparklineChart(m.reading.population, 40))
		}
	}
	b.WriteString(st.panel.Render(strings.Join(lines, "\n")) + "\n\n")

	if len(m.reading.curve) > 1 {
		plotWidth := m.width - 12
		if plotWidth < 20 {
			plotWidth = 20
		}
		b.WriteString(asciigraph.Plot(m.reading.curve,
			asciigraph.Height(8),
			asciigraph.Width(plotWidth),
			asciigraph.Caption(fmt.Sprintf("kerl polarizability [A^3], 0 to %.0f K", temperatureMax)),
		) + "\n\n")
	}

	b.WriteString("  " + st.key.Render("j/k") + st.muted.Render(" molecule  ") +
		st.key.Render("h/l") + st.muted.Render(" temperature  ") +
		st.key.Render("[/]") + st.muted.Render(" wavelength  ") +
		st.key.Render("s") + st.muted.Render(" static  ") +
		st.key.Render("t") + st.muted.Render(" theme  ") +
		st.key.Render("q") + st.muted.Render(" quit") + "\n")
	return b.String()
}

func RunExplorer(cfg *config.Config, theme string) error {
	m, err := NewExplorer(cfg, theme)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(*m, tea.WithAltScreen()).Run()
	return err
}
