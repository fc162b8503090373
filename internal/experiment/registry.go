package experiment

import (
	"context"
	"fmt"
	"sort"

	"github.com/san-kum/haot/internal/config"
	log "github.com/sirupsen/logrus"
)

type Registry struct {
	analyses     map[string]Analysis
	descriptions map[string]string
}

func NewRegistry() *Registry {
	r := &Registry{
		analyses:     make(map[string]Analysis),
		descriptions: make(map[string]string),
	}

	r.register("kerl", "Kerl polarizability versus temperature", Kerl)
	r.register("buldakov", "Buldakov polarizability of each (v, J) level", Buldakov)
	r.register("distribution", "rotational population per temperature", Distribution)
	r.register("partition", "partition functions versus temperature", Partition)
	r.register("thermal", "Boltzmann-averaged polarizability versus temperature", Thermal)
	r.register("atmosphere", "standard atmosphere refractivity versus altitude", Atmosphere)
	r.register("gladstone", "Gladstone-Dale constant of every species", Gladstone)

	return r
}

func (r *Registry) register(name, description string, a Analysis) {
	r.analyses[name] = a
	r.descriptions[name] = description
}

func (r *Registry) Get(name string) (Analysis, error) {
	a, ok := r.analyses[name]
	if !ok {
		return nil, fmt.Errorf("unknown experiment: %s", name)
	}
	return a, nil
}

func (r *Registry) Describe(name string) string {
	return r.descriptions[name]
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.analyses))
	for name := range r.analyses {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run evaluates cfg.Experiment and attaches the series metrics.
func (r *Registry) Run(ctx context.Context, cfg *config.Config) (*Result, error) {
	a, err := r.Get(cfg.Experiment)
	if err != nil {
		return nil, err
	}

	logger := log.WithFields(log.Fields{
		"experiment": cfg.Experiment,
		"molecule":   cfg.Molecule,
	})
	logger.Debug("running experiment")

	res, err := a(ctx, cfg)
	if err != nil {
		return nil, err
	}
	res.Summarize()

	logger.WithField("columns", len(res.Columns)).Debug("experiment finished")
	return res, nil
}
