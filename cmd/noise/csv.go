package main

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// loadCSV loads data from a CSV file (no header, numeric values only).
// Rows may have different lengths.
func loadCSV(filename string) ([][]float64, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, errors.New("empty file")
	}

	data := make([][]float64, len(records))
	for i, record := range records {
		data[i] = make([]float64, len(record))
		for j, val := range record {
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "row %d, col %d", i, j)
			}
			data[i][j] = f
		}
	}

	return data, nil
}

// saveCSV writes rows with full float64 precision.
func saveCSV(filename string, rows [][]float64) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	for _, row := range rows {
		record := make([]string, len(row))
		for j, val := range row {
			record[j] = formatFloat(val)
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func flatten(rows [][]float64) ([]float64, []int) {
	var flat []float64
	shape := make([]int, len(rows))
	for i, row := range rows {
		shape[i] = len(row)
		flat = append(flat, row...)
	}
	return flat, shape
}

func reshape(flat []float64, shape []int) [][]float64 {
	rows := make([][]float64, len(shape))
	off := 0
	for i, n := range shape {
		rows[i] = flat[off : off+n]
		off += n
	}
	return rows
}
