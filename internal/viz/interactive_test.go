package viz

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/haot/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m model, keys ...string) model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(model)
	}
	return m
}

func newExplorer(t *testing.T) model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Temperature.Start = 300
	m, err := NewExplorer(cfg, "")
	require.NoError(t, err)
	return *m
}

func TestExplorerStartsOnConfiguredMolecule(t *testing.T) {
	m := newExplorer(t)
	assert.Equal(t, "N2", m.molecule())
	require.NoError(t, m.reading.err)
	assert.InDelta(t, 1.77, m.reading.kerl, 0.02)
	assert.False(t, math.IsNaN(m.reading.thermal))
	assert.NotEmpty(t, m.reading.population)
	assert.Len(t, m.reading.curve, curvePoints)
}

func TestExplorerKeys(t *testing.T) {
	m := newExplorer(t)

	m = press(t, m, "l", "l")
	assert.Equal(t, 400.0, m.temperature)

	m = press(t, m, "]")
	assert.Equal(t, 643.0, m.wavelength)

	before := m.reading.kerl
	m = press(t, m, "s")
	assert.True(t, m.static)
	assert.Less(t, m.reading.kerl, before, "dispersion raises the optical polarizability")

	for i := 0; i < 200; i++ {
		m = press(t, m, "h")
	}
	assert.Equal(t, 0.0, m.temperature)
	assert.True(t, math.IsNaN(m.reading.thermal))

	m = press(t, m, "t")
	assert.Equal(t, 1, m.theme)
}

func TestExplorerMoleculeSelection(t *testing.T) {
	m := newExplorer(t)

	for i := 0; i < len(m.molecules); i++ {
		m = press(t, m, "up")
	}
	assert.Equal(t, 0, m.cursor)
	assert.Equal(t, "Air", m.molecule())
	assert.True(t, math.IsNaN(m.reading.thermal), "no Buldakov derivatives for air")

	m = press(t, m, "down")
	assert.Equal(t, "H2", m.molecule())
	require.NoError(t, m.reading.err)
	assert.False(t, math.IsNaN(m.reading.thermal))
}

func TestExplorerView(t *testing.T) {
	m := newExplorer(t)
	view := m.View()
	for _, want := range []string{"N2", "300 K", "633 nm", "A^3", "quit"} {
		assert.True(t, strings.Contains(view, want), "view is missing %q", want)
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, next.(model).width)
}

func TestExplorerQuit(t *testing.T) {
	m := newExplorer(t)
	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestSparklineChart(t *testing.T) {
	assert.Equal(t, strings.Repeat("─", 5), SparklineChart(nil, 5))

	out := SparklineChart([]float64{0, 1, math.NaN(), 2}, 10)
	assert.Contains(t, out, "█")
	assert.Contains(t, out, "▁")
	assert.Contains(t, out, " ")
}

func TestThemes(t *testing.T) {
	assert.Equal(t, []string{"plasma", "schlieren", "minimal"}, ThemeNames())
}

func TestExplorerTheme(t *testing.T) {
	cfg := config.DefaultConfig()

	m, err := NewExplorer(cfg, "minimal")
	require.NoError(t, err)
	assert.Equal(t, 2, m.theme)
	assert.Contains(t, m.View(), "quit")

	_, err = NewExplorer(cfg, "sepia")
	assert.ErrorContains(t, err, "plasma, schlieren, minimal")
}
