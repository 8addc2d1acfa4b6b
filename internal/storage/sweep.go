package storage

import (
	"fmt"

	"github.com/gezhuang0717/FYS4150-Project-4/internal/stats"
	"github.com/gezhuang0717/FYS4150-Project-4/internal/sweep"
)

const sweepFile = "sweep.csv"

var sweepHeader = []string{"temperature", "expected_epsilon", "expected_m_abs", "C_v", "chi", "acceptance_rate"}

// SaveSweep stores the points of a temperature sweep.
func (s *Store) SaveSweep(meta RunMetadata, points []sweep.Point) (string, error) {
	meta.Kind = KindSweep
	id, err := s.create(&meta)
	if err != nil {
		return "", err
	}

	rows := make([][]string, len(points))
	for i, p := range points {
		rows[i] = []string{
			formatFloat(p.Temperature),
			formatFloat(p.Epsilon),
			formatFloat(p.Magnetization),
			formatFloat(p.SpecificHeat),
			formatFloat(p.Susceptibility),
			formatFloat(p.AcceptanceRate),
		}
	}
	if err := s.writeCSV(id, sweepFile, sweepHeader, rows); err != nil {
		return "", s.discard(id, err)
	}
	return id, nil
}

// LoadSweep reads the points of a sweep run, sorted by temperature.
func (s *Store) LoadSweep(id string) ([]sweep.Point, error) {
	meta, err := s.Load(id)
	if err != nil {
		return nil, err
	}
	records, err := s.readCSV(id, sweepFile, 5)
	if err != nil {
		return nil, err
	}

	points := make([]sweep.Point, 0, len(records))
	for line, record := range records {
		v, err := parseFloats(record)
		if err != nil {
			return nil, fmt.Errorf("%s/%s line %d: %w", id, sweepFile, line+2, err)
		}
		p := sweep.Point{Estimates: stats.Estimates{
			Temperature:    v[0],
			Samples:        meta.Samples,
			Epsilon:        v[1],
			Magnetization:  v[2],
			SpecificHeat:   v[3],
			Susceptibility: v[4],
		}}
		if len(v) > 5 {
			p.AcceptanceRate = v[5]
		}
		points = append(points, p)
	}
	sweep.SortByTemperature(points)
	return points, nil
}
