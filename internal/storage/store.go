package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/gezhuang0717/FYS4150-Project-4/internal/stats"
)

// Run kinds.
const (
	KindRun    = "run"
	KindSweep  = "sweep"
	KindBurnIn = "burnin"
)

const metadataFile = "metadata.json"

var (
	// ErrWrongKind is returned when a run lacks the artifact asked for.
	ErrWrongKind = errors.New("storage: run has no such artifact")

	// ErrNonFinite is returned for metadata holding NaN or ±Inf, which
	// metadata.json cannot represent.
	ErrNonFinite = errors.New("storage: non-finite value in metadata")
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

// Dir returns the directory holding run id.
func (s *Store) Dir(id string) string {
	return filepath.Join(s.baseDir, id)
}

type RunMetadata struct {
	ID            string             `json:"id"`
	Kind          string             `json:"kind"`
	Timestamp     time.Time          `json:"timestamp"`
	Size          int                `json:"size"`
	Temperature   float64            `json:"temperature,omitempty"`
	TMin          float64            `json:"t_min,omitempty"`
	TMax          float64            `json:"t_max,omitempty"`
	Steps         int                `json:"steps,omitempty"`
	Seed          int64              `json:"seed"`
	Init          string             `json:"init"`
	Generator     string             `json:"generator"`
	BurnIn        int                `json:"burn_in"`
	Samples       int                `json:"samples"`
	Magnetization string             `json:"magnetization,omitempty"`
	Elapsed       float64            `json:"elapsed_seconds"`
	Estimates     *stats.Estimates   `json:"estimates,omitempty"`
	Metrics       map[string]float64 `json:"metrics,omitempty"`
}

// create makes a fresh run directory for meta and writes its metadata. The
// id is <kind>_L<size>_<unix>, suffixed when that directory already exists.
func (s *Store) create(meta *RunMetadata) (string, error) {
	if err := meta.checkFinite(); err != nil {
		return "", err
	}
	if err := s.Init(); err != nil {
		return "", err
	}
	meta.Timestamp = time.Now()
	base := fmt.Sprintf("%s_L%d_%d", meta.Kind, meta.Size, meta.Timestamp.Unix())

	id := base
	for i := 1; ; i++ {
		err := os.Mkdir(s.Dir(id), 0755)
		if err == nil {
			break
		}
		if !os.IsExist(err) {
			return "", err
		}
		id = fmt.Sprintf("%s_%d", base, i)
	}
	meta.ID = id

	if err := s.writeMetadata(meta); err != nil {
		return "", s.discard(id, err)
	}
	return id, nil
}

// discard removes the partly written run id and returns err.
func (s *Store) discard(id string, err error) error {
	if rmErr := os.RemoveAll(s.Dir(id)); rmErr != nil {
		return fmt.Errorf("%w (cleanup of %s failed: %v)", err, id, rmErr)
	}
	return err
}

func (m *RunMetadata) checkFinite() error {
	fields := map[string]float64{
		"temperature":     m.Temperature,
		"t_min":           m.TMin,
		"t_max":           m.TMax,
		"elapsed_seconds": m.Elapsed,
	}
	if e := m.Estimates; e != nil {
		fields["estimates.temperature"] = e.Temperature
		fields["estimates.expected_epsilon"] = e.Epsilon
		fields["estimates.expected_m"] = e.Magnetization
		fields["estimates.C_v"] = e.SpecificHeat
		fields["estimates.chi"] = e.Susceptibility
	}
	for name, v := range m.Metrics {
		fields["metrics."+name] = v
	}

	names := make([]string, 0, len(fields))
	for name, v := range fields {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			names = append(names, name)
		}
	}
	if len(names) > 0 {
		sort.Strings(names)
		return fmt.Errorf("%w: %v", ErrNonFinite, names)
	}
	return nil
}

func (s *Store) writeMetadata(meta *RunMetadata) error {
	f, err := os.Create(filepath.Join(s.Dir(meta.ID), metadataFile))
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

// List returns the metadata of every run, oldest first. Directories without
// readable metadata are skipped.
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

	sort.SliceStable(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(id string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.Dir(id), metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s: %w", id, err)
	}
	return &meta, nil
}
