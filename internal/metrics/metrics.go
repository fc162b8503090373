// Package metrics summarizes a sampled curve y(x) while it is produced.
package metrics

import "math"

// Metric observes the points of one series in order.
type Metric interface {
	Name() string
	Observe(x, y float64)
	Value() float64
	Reset()
}

// Defaults returns a fresh set of the summaries attached to every series.
func Defaults() []Metric {
	return []Metric{NewPeak(), NewArgPeak(), NewRelativeChange()}
}

// Summarize runs metrics over the series and keys the values as
// "<prefix>.<metric>". Undefined values are left out.
func Summarize(prefix string, x, y []float64, metrics ...Metric) map[string]float64 {
	if len(metrics) == 0 {
		metrics = Defaults()
	}
	out := make(map[string]float64, len(metrics))
	for _, m := range metrics {
		m.Reset()
		for i := range y {
			if i < len(x) {
				m.Observe(x[i], y[i])
			}
		}
		if v := m.Value(); !math.IsNaN(v) {
			out[prefix+"."+m.Name()] = v
		}
	}
	return out
}

type Peak struct {
	max  float64
	seen bool
}

func NewPeak() *Peak { return &Peak{} }

func (p *Peak) Name() string { return "peak" }

func (p *Peak) Observe(x, y float64) {
	if math.IsNaN(y) {
		return
	}
	if !p.seen || y > p.max {
		p.max = y
		p.seen = true
	}
}

func (p *Peak) Value() float64 {
	if !p.seen {
		return math.NaN()
	}
	return p.max
}

func (p *Peak) Reset() { *p = Peak{} }

// ArgPeak reports the first x at which y is largest.
type ArgPeak struct {
	peak Peak
	at   float64
}

func NewArgPeak() *ArgPeak { return &ArgPeak{} }

func (a *ArgPeak) Name() string { return "argpeak" }

func (a *ArgPeak) Observe(x, y float64) {
	before := a.peak.Value()
	a.peak.Observe(x, y)
	if a.peak.seen && (math.IsNaN(before) || a.peak.max > before) {
		a.at = x
	}
}

func (a *ArgPeak) Value() float64 {
	if !a.peak.seen {
		return math.NaN()
	}
	return a.at
}

func (a *ArgPeak) Reset() { *a = ArgPeak{} }

// RelativeChange is (last − first)/|first|.
type RelativeChange struct {
	first, last float64
	samples     int
}

func NewRelativeChange() *RelativeChange { return &RelativeChange{} }

func (r *RelativeChange) Name() string { return "change" }

func (r *RelativeChange) Observe(x, y float64) {
	if r.samples == 0 {
		r.first = y
	}
	r.last = y
	r.samples++
}

func (r *RelativeChange) Value() float64 {
	if r.samples == 0 || r.first == 0 {
		return math.NaN()
	}
	return (r.last - r.first) / math.Abs(r.first)
}

func (r *RelativeChange) Reset() { *r = RelativeChange{} }
