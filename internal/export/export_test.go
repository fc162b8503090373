package export

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/haot/internal/experiment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func result() *experiment.Result {
	return &experiment.Result{
		Name:    "partition",
		XLabel:  "temperature [K]",
		YLabel:  "partition function",
		X:       []float64{100, 200, 300, 400},
		Columns: []string{"total", "rotational"},
		Series: [][]float64{
			{1, 2, math.NaN(), 4},
			{0.5, 1, 1.5, 2},
		},
		Metrics: map[string]float64{"total.peak": 4, "bad": math.Inf(1)},
	}
}

func TestResultToSVG(t *testing.T) {
	svg := ResultToSVG(result(), 400, 200)

	assert.True(t, strings.HasPrefix(svg, "<?xml"))
	assert.True(t, strings.HasSuffix(svg, "</svg>"))
	assert.Equal(t, 2, strings.Count(svg, "<path"))
	assert.Contains(t, svg, Palette[0])
	assert.Contains(t, svg, Palette[1])
	assert.Contains(t, svg, "temperature [K]")
	assert.Contains(t, svg, ">rotational<")

	// the NaN sample splits the first line in two
	first := svg[strings.Index(svg, "<path"):]
	first = first[:strings.Index(first, "/>")]
	assert.Equal(t, 2, strings.Count(first, "M"))
}

func TestResultToSVGEmpty(t *testing.T) {
	r := result()
	r.Series = [][]float64{{math.NaN()}}
	assert.Empty(t, ResultToSVG(r, 400, 200))
	assert.Empty(t, ResultToSVG(result(), 0, 200))
}

func TestResultToSVGFlatSeries(t *testing.T) {
	r := &experiment.Result{
		Name:    "flat",
		X:       []float64{0, 1},
		Columns: []string{"c"},
		Series:  [][]float64{{3, 3}},
	}
	svg := ResultToSVG(r, 100, 100)
	assert.NotContains(t, svg, "NaN")
	assert.NotContains(t, svg, "Inf")
}

func TestResultToJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partition.json")
	require.NoError(t, ResultToJSON(path, result()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var got struct {
		Samples int                `json:"samples"`
		Series  [][]*float64       `json:"series"`
		Metrics map[string]float64 `json:"metrics"`
	}
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, 4, got.Samples)
	assert.Nil(t, got.Series[0][2])
	require.NotNil(t, got.Series[1][2])
	assert.Equal(t, 1.5, *got.Series[1][2])
	assert.Equal(t, map[string]float64{"total.peak": 4}, got.Metrics)
}
