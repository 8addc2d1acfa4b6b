package storage

import (
	"encoding/json"
	"io"

	"github.com/gezhuang0717/FYS4150-Project-4/internal/ising"
	"github.com/gezhuang0717/FYS4150-Project-4/internal/metrics"
	"github.com/gezhuang0717/FYS4150-Project-4/internal/stats"
	"github.com/gezhuang0717/FYS4150-Project-4/internal/sweep"
)

type ExportData struct {
	Metadata     *RunMetadata         `json:"metadata"`
	Energy       []int                `json:"energy,omitempty"`
	Magnet       []int                `json:"magnetization,omitempty"`
	Distribution []stats.Bucket       `json:"distribution,omitempty"`
	Spins        [][]int              `json:"spins,omitempty"`
	Points       []sweep.Point        `json:"points,omitempty"`
	Trace        []metrics.TracePoint `json:"trace,omitempty"`
}

// Export gathers everything stored for run id.
func (s *Store) Export(id string) (*ExportData, error) {
	meta, err := s.Load(id)
	if err != nil {
		return nil, err
	}
	data := &ExportData{Metadata: meta}

	switch meta.Kind {
	case KindRun:
		var samples *ising.Samples
		if samples, err = s.LoadSamples(id); err != nil {
			return nil, err
		}
		data.Energy, data.Magnet = samples.Energy, samples.Magnetization
		if data.Distribution, err = s.LoadDistribution(id); err != nil {
			return nil, err
		}
		if data.Spins, err = s.LoadSpins(id); err != nil {
			return nil, err
		}
	case KindSweep:
		if data.Points, err = s.LoadSweep(id); err != nil {
			return nil, err
		}
	case KindBurnIn:
		if data.Trace, err = s.LoadTrace(id); err != nil {
			return nil, err
		}
	}
	return data, nil
}

// ExportJSON writes Export(id) to w as indented JSON.
func (s *Store) ExportJSON(w io.Writer, id string) error {
	data, err := s.Export(id)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// CopyCSV writes the primary CSV artifact of run id to w.
func (s *Store) CopyCSV(w io.Writer, id string) error {
	meta, err := s.Load(id)
	if err != nil {
		return err
	}

	name := samplesFile
	switch meta.Kind {
	case KindSweep:
		name = sweepFile
	case KindBurnIn:
		name = traceFile
	}

	f, err := openArtifact(s.Dir(id), name)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(w, f)
	return err
}
