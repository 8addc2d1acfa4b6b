package storage

import (
	"fmt"
	"strconv"

	"github.com/gezhuang0717/FYS4150-Project-4/internal/metrics"
)

const traceFile = "trace.csv"

// SaveTrace stores a burn-in trace of running means.
func (s *Store) SaveTrace(meta RunMetadata, points []metrics.TracePoint) (string, error) {
	meta.Kind = KindBurnIn
	id, err := s.create(&meta)
	if err != nil {
		return "", err
	}

	rows := make([][]string, len(points))
	for i, p := range points {
		rows[i] = []string{strconv.Itoa(p.N), formatFloat(p.Epsilon), formatFloat(p.AbsMagnetization)}
	}
	if err := s.writeCSV(id, traceFile, []string{"N", "expected_E", "expected_M"}, rows); err != nil {
		return "", s.discard(id, err)
	}
	return id, nil
}

// LoadTrace reads a burn-in trace.
func (s *Store) LoadTrace(id string) ([]metrics.TracePoint, error) {
	records, err := s.readCSV(id, traceFile, 3)
	if err != nil {
		return nil, err
	}

	points := make([]metrics.TracePoint, 0, len(records))
	for line, record := range records {
		n, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, fmt.Errorf("%s/%s line %d: %w", id, traceFile, line+2, err)
		}
		v, err := parseFloats(record[1:3])
		if err != nil {
			return nil, fmt.Errorf("%s/%s line %d: %w", id, traceFile, line+2, err)
		}
		points = append(points, metrics.TracePoint{N: n, Epsilon: v[0], AbsMagnetization: v[1]})
	}
	return points, nil
}
