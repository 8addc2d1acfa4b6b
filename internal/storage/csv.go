package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// writeCSV writes header followed by rows to file name in run id.
func (s *Store) writeCSV(id, name string, header []string, rows [][]string) error {
	f, err := os.Create(filepath.Join(s.Dir(id), name))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return f.Close()
}

// readCSV returns the data rows of file name in run id, checking every
// record has at least columns fields. A missing file is reported as ErrWrongKind.
func (s *Store) readCSV(id, name string, columns int) ([][]string, error) {
	f, err := openArtifact(s.Dir(id), name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s/%s: %w", id, name, err)
	}
	if len(records) == 0 {
		return [][]string{}, nil
	}
	for line, record := range records {
		if len(record) < columns {
			return nil, fmt.Errorf("%s/%s line %d: expected %d columns, got %d", id, name, line+1, columns, len(record))
		}
	}
	return records[1:], nil
}

func parseFloats(record []string) ([]float64, error) {
	out := make([]float64, len(record))
	for i, field := range record {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func parseInts(record []string) ([]int, error) {
	out := make([]int, len(record))
	for i, field := range record {
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func openArtifact(dir, name string) (*os.File, error) {
	f, err := os.Open(filepath.Join(dir, name))
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrWrongKind, filepath.Join(dir, name))
	}
	return f, err
}
