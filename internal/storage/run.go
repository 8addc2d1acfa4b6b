package storage

import (
	"fmt"
	"strconv"

	"github.com/gezhuang0717/FYS4150-Project-4/internal/ising"
	"github.com/gezhuang0717/FYS4150-Project-4/internal/stats"
)

const (
	samplesFile      = "samples.csv"
	distributionFile = "distribution.csv"
	spinsFile        = "spins.csv"
)

// SaveRun stores a single-temperature run: its samples, the probability
// distribution of ε and the final lattice. meta.Kind, ID and Timestamp are
// filled in.
func (s *Store) SaveRun(meta RunMetadata, samples *ising.Samples, spins [][]int) (string, error) {
	meta.Kind = KindRun
	id, err := s.create(&meta)
	if err != nil {
		return "", err
	}

	rows := make([][]string, samples.Len())
	for i := range rows {
		rows[i] = []string{
			strconv.Itoa(meta.BurnIn + i + 1),
			strconv.Itoa(samples.Energy[i]),
			strconv.Itoa(samples.Magnetization[i]),
		}
	}
	if err := s.writeCSV(id, samplesFile, []string{"sweep", "energy", "magnetization"}, rows); err != nil {
		return "", s.discard(id, err)
	}

	if samples.Len() > 0 {
		sites := meta.Size * meta.Size
		dist, err := stats.NewDistribution(samples.Energy, stats.Scaled[int](1/float64(sites)))
		if err != nil {
			return "", s.discard(id, err)
		}
		buckets := dist.Buckets()
		rows = make([][]string, len(buckets))
		for i, b := range buckets {
			rows[i] = []string{formatFloat(b.Value), formatFloat(b.Probability)}
		}
		if err := s.writeCSV(id, distributionFile, []string{"value", "probability"}, rows); err != nil {
			return "", s.discard(id, err)
		}
	}

	rows = make([][]string, len(spins))
	header := make([]string, len(spins))
	for i, row := range spins {
		header[i] = fmt.Sprintf("c%d", i)
		rows[i] = make([]string, len(row))
		for j, v := range row {
			rows[i][j] = strconv.Itoa(v)
		}
	}
	if err := s.writeCSV(id, spinsFile, header, rows); err != nil {
		return "", s.discard(id, err)
	}

	return id, nil
}

// LoadSamples reads the energy and magnetization samples of a run.
func (s *Store) LoadSamples(id string) (*ising.Samples, error) {
	records, err := s.readCSV(id, samplesFile, 3)
	if err != nil {
		return nil, err
	}

	samples := &ising.Samples{
		Energy:        make([]int, 0, len(records)),
		Magnetization: make([]int, 0, len(records)),
	}
	for line, record := range records {
		v, err := parseInts(record[:3])
		if err != nil {
			return nil, fmt.Errorf("%s/%s line %d: %w", id, samplesFile, line+2, err)
		}
		samples.Energy = append(samples.Energy, v[1])
		samples.Magnetization = append(samples.Magnetization, v[2])
	}
	return samples, nil
}

// LoadDistribution reads the ε distribution of a run.
func (s *Store) LoadDistribution(id string) ([]stats.Bucket, error) {
	records, err := s.readCSV(id, distributionFile, 2)
	if err != nil {
		return nil, err
	}

	buckets := make([]stats.Bucket, 0, len(records))
	for line, record := range records {
		v, err := parseFloats(record[:2])
		if err != nil {
			return nil, fmt.Errorf("%s/%s line %d: %w", id, distributionFile, line+2, err)
		}
		buckets = append(buckets, stats.Bucket{Value: v[0], Probability: v[1]})
	}
	return buckets, nil
}

// LoadSpins reads the final lattice of a run.
func (s *Store) LoadSpins(id string) ([][]int, error) {
	records, err := s.readCSV(id, spinsFile, 1)
	if err != nil {
		return nil, err
	}

	spins := make([][]int, len(records))
	for i, record := range records {
		row, err := parseInts(record)
		if err != nil {
			return nil, fmt.Errorf("%s/%s line %d: %w", id, spinsFile, i+2, err)
		}
		spins[i] = row
	}
	return spins, nil
}
