package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/haot/internal/config"
	"github.com/san-kum/haot/internal/metrics"
)

// Analysis evaluates one experiment for cfg.
type Analysis func(ctx context.Context, cfg *config.Config) (*Result, error)

// Result is a family of curves sharing one abscissa. Series[i] belongs to
// Columns[i] and has one value per X.
type Result struct {
	Name    string             `json:"name"`
	XLabel  string             `json:"x_label"`
	YLabel  string             `json:"y_label"`
	X       []float64          `json:"x"`
	Labels  []string           `json:"labels,omitempty"`
	Columns []string           `json:"columns"`
	Series  [][]float64        `json:"series"`
	Metrics map[string]float64 `json:"metrics"`
}

func newResult(name, xLabel, yLabel string, x []float64) *Result {
	return &Result{
		Name:    name,
		XLabel:  xLabel,
		YLabel:  yLabel,
		X:       x,
		Metrics: make(map[string]float64),
	}
}

// Add appends a column.
func (r *Result) Add(column string, values []float64) {
	r.Columns = append(r.Columns, column)
	r.Series = append(r.Series, values)
}

// Column returns the series named column.
func (r *Result) Column(column string) ([]float64, error) {
	for i, c := range r.Columns {
		if c == column {
			return r.Series[i], nil
		}
	}
	return nil, fmt.Errorf("result %s has no column %s", r.Name, column)
}

// Summarize adds the default metrics of every column.
func (r *Result) Summarize() {
	for i, c := range r.Columns {
		for k, v := range metrics.Summarize(c, r.X, r.Series[i]) {
			r.Metrics[k] = v
		}
	}
}

// sweep evaluates f at every x, stopping early if ctx is done.
func sweep(ctx context.Context, xs []float64, f func(x float64) (float64, error)) ([]float64, error) {
	out := make([]float64, len(xs))
	for i, x := range xs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		y, err := f(x)
		if err != nil {
			return nil, err
		}
		out[i] = y
	}
	return out, nil
}

func intRange(n int) []float64 {
	out := make([]float64, n+1)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}
