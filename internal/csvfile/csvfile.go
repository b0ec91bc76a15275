// Package csvfile provides helpers for reading header-keyed CSV files.
// All catalog data is stored as CSV, one file per topic.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadRows reads a CSV stream into header-keyed row maps. Rows shorter than
// the header leave the missing columns absent.
func ReadRows(r io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	var rows []map[string]string
	for {
		record, readErr := reader.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return rows, fmt.Errorf("failed to read CSV row: %w", readErr)
		}

		row := make(map[string]string, len(header))
		for idx, name := range header {
			if idx < len(record) {
				row[strings.TrimSpace(name)] = record[idx]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ReadFileRows opens a CSV file and reads it into header-keyed row maps.
func ReadFileRows(path string) ([]map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()
	return ReadRows(file)
}

// CountRows counts the data rows in a CSV file, excluding the header.
func CountRows(path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	// Skip the header row.
	if _, err = reader.Read(); err != nil {
		if err == io.EOF {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read header of %s: %w", path, err)
	}

	count := 0
	for {
		_, err = reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, fmt.Errorf("failed to read row of %s: %w", path, err)
		}
		count++
	}
	return count, nil
}
