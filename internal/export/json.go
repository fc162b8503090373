package export

import (
	"encoding/json"
	"os"

	"github.com/san-kum/haot/internal/experiment"
)

type ExportData struct {
	Name    string             `json:"name"`
	XLabel  string             `json:"x_label"`
	YLabel  string             `json:"y_label"`
	Samples int                `json:"samples"`
	X       []float64          `json:"x"`
	Labels  []string           `json:"labels,omitempty"`
	Columns []string           `json:"columns"`
	Series  [][]*float64       `json:"series"`
	Metrics map[string]float64 `json:"metrics"`
}

func nullable(s []float64) []*float64 {
	out := make([]*float64, len(s))
	for i := range s {
		if finite(s[i]) {
			out[i] = &s[i]
		}
	}
	return out
}

// NewExportData converts r for encoding. Non-finite samples become null
// and non-finite metrics are dropped.
func NewExportData(r *experiment.Result) ExportData {
	data := ExportData{
		Name:    r.Name,
		XLabel:  r.XLabel,
		YLabel:  r.YLabel,
		Samples: len(r.X),
		X:       r.X,
		Labels:  r.Labels,
		Columns: r.Columns,
		Series:  make([][]*float64, len(r.Series)),
		Metrics: make(map[string]float64, len(r.Metrics)),
	}
	for i, s := range r.Series {
		data.Series[i] = nullable(s)
	}
	for k, v := range r.Metrics {
		if finite(v) {
			data.Metrics[k] = v
		}
	}
	return data
}

func ResultToJSON(path string, r *experiment.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewExportData(r))
}
