package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/san-kum/haot/internal/config"
	"github.com/san-kum/haot/internal/experiment"
)

const (
	metadataFile = "metadata.json"
	seriesFile   = "series.csv"
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
	ID           string             `json:"id"`
	Experiment   string             `json:"experiment"`
	Timestamp    time.Time          `json:"timestamp"`
	Molecule     string             `json:"molecule,omitempty"`
	WavelengthNM float64            `json:"wavelength_nm,omitempty"`
	EnergyModel  string             `json:"energy_model,omitempty"`
	XLabel       string             `json:"x_label"`
	YLabel       string             `json:"y_label"`
	Labels       []string           `json:"labels,omitempty"`
	Columns      []string           `json:"columns"`
	Samples      int                `json:"samples"`
	Metrics      map[string]float64 `json:"metrics"`
}

// Save writes result under a new run directory. cfg may be nil for
// dataset profiles.
func (s *Store) Save(result *experiment.Result, cfg *config.Config) (string, error) {
	now := time.Now()
	if err := s.Init(); err != nil {
		return "", err
	}
	runID, err := s.newRunDir(fmt.Sprintf("%s_%d", result.Name, now.UnixNano()))
	if err != nil {
		return "", err
	}
	runDir := filepath.Join(s.baseDir, runID)

	meta := RunMetadata{
		ID:         runID,
		Experiment: result.Name,
		Timestamp:  now,
		XLabel:     result.XLabel,
		YLabel:     result.YLabel,
		Labels:     result.Labels,
		Columns:    result.Columns,
		Samples:    len(result.X),
		Metrics:    result.Metrics,
	}
	if cfg != nil {
		meta.Molecule = cfg.Molecule
		meta.WavelengthNM = cfg.WavelengthNM
		meta.EnergyModel = cfg.EnergyModel
	}

	if err := writeMetadata(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", errors.Wrapf(err, "save run %s", runID)
	}
	if err := writeSeries(filepath.Join(runDir, seriesFile), result); err != nil {
		return "", errors.Wrapf(err, "save run %s", runID)
	}
	return runID, nil
}

// newRunDir creates the run directory, suffixing the id on collision.
func (s *Store) newRunDir(id string) (string, error) {
	runID := id
	for i := 1; ; i++ {
		err := os.Mkdir(filepath.Join(s.baseDir, runID), 0755)
		if err == nil {
			return runID, nil
		}
		if !os.IsExist(err) {
			return "", err
		}
		runID = fmt.Sprintf("%s_%d", id, i)
	}
}

func writeMetadata(path string, meta RunMetadata) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func writeSeries(path string, result *experiment.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(append([]string{"x"}, result.Columns...)); err != nil {
		return err
	}
	for i, x := range result.X {
		row := make([]string, 0, len(result.Columns)+1)
		row = append(row, formatFloat(x))
		for _, s := range result.Series {
			if i < len(s) {
				row = append(row, formatFloat(s[i]))
			} else {
				row = append(row, "NaN")
			}
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns the stored runs, oldest first.
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
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, errors.Wrapf(err, "run %s metadata", runID)
	}
	return &meta, nil
}

// LoadResult rebuilds the stored result.
func (s *Store) LoadResult(runID string) (*experiment.Result, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(s.baseDir, runID, seriesFile))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "run %s series", runID)
	}
	if len(records) == 0 {
		return nil, errors.Newf("run %s series has no header", runID)
	}

	columns := records[0][1:]
	res := &experiment.Result{
		Name:    meta.Experiment,
		XLabel:  meta.XLabel,
		YLabel:  meta.YLabel,
		Labels:  meta.Labels,
		Columns: columns,
		X:       make([]float64, 0, len(records)-1),
		Series:  make([][]float64, len(columns)),
		Metrics: meta.Metrics,
	}
	for i := range res.Series {
		res.Series[i] = make([]float64, 0, len(records)-1)
	}

	for line, record := range records[1:] {
		values := make([]float64, len(record))
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "run %s series line %d", runID, line+2)
			}
			values[j] = v
		}
		res.X = append(res.X, values[0])
		for j := range columns {
			res.Series[j] = append(res.Series[j], values[j+1])
		}
	}
	return res, nil
}
