package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/ndlife/internal/config"
	"github.com/san-kum/ndlife/internal/sim"
)

const (
	metadataFile   = "metadata.json"
	populationFile = "population.csv"
	configFile     = "config.yaml"
)

var populationHeader = []string{"generation", "population", "births", "deaths"}

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
	ID          string             `json:"id"`
	Rule        string             `json:"rule"`
	Dimensions  int                `json:"dimensions"`
	Size        int                `json:"size"`
	Timestamp   time.Time          `json:"timestamp"`
	Seed        int64              `json:"seed"`
	Density     float64            `json:"density"`
	Pattern     string             `json:"pattern,omitempty"`
	Generations int                `json:"generations"`
	CycleStart  int                `json:"cycle_start"`
	Period      int                `json:"period"`
	Metrics     map[string]float64 `json:"metrics"`
}

func (s *Store) Save(cfg *config.Config, result *sim.Result) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%dd_%d", cfg.Rule, cfg.Dimensions, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:          runID,
		Rule:        cfg.Rule,
		Dimensions:  cfg.Dimensions,
		Size:        cfg.Size,
		Timestamp:   now,
		Seed:        cfg.Seed,
		Density:     cfg.Density,
		Pattern:     cfg.Pattern,
		Generations: result.Generations,
		CycleStart:  result.CycleStart,
		Period:      result.Period,
		Metrics:     result.Metrics,
	}

	err := writeFile(filepath.Join(runDir, metadataFile), func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	})
	if err == nil {
		err = writeFile(filepath.Join(runDir, populationFile), func(w io.Writer) error {
			return WriteCSV(w, result.Samples)
		})
	}
	if err == nil {
		err = config.Save(filepath.Join(runDir, configFile), cfg)
	}
	if err != nil {
		os.RemoveAll(runDir)
		return "", err
	}

	return runID, nil
}

// writeFile creates path, fills it with write and reports the first error,
// including one from Close.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteCSV writes samples with a header row.
func WriteCSV(w io.Writer, samples []sim.Sample) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(populationHeader); err != nil {
		return err
	}
	for _, smp := range samples {
		row := []string{
			strconv.Itoa(smp.Generation),
			strconv.Itoa(smp.Population),
			strconv.Itoa(smp.Births),
			strconv.Itoa(smp.Deaths),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// List returns every readable run, oldest first.
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
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadSamples(runID string) ([]sim.Sample, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, populationFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(populationHeader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []sim.Sample{}, nil
	}

	samples := make([]sim.Sample, 0, len(records)-1)
	for i, record := range records[1:] {
		var vals [4]int
		for j, field := range record {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("%s line %d: %w", populationFile, i+2, err)
			}
			vals[j] = v
		}
		samples = append(samples, sim.Sample{
			Generation: vals[0],
			Population: vals[1],
			Births:     vals[2],
			Deaths:     vals[3],
		})
	}

	return samples, nil
}
