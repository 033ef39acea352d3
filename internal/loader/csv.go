// Package loader writes clean records to the output CSV.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"

	"fashion-studio-etl/internal/models"
	"fashion-studio-etl/internal/observability"
)

// ErrCreateFile indicates the destination path could not be opened for
// writing.
var ErrCreateFile = errors.New("cannot open destination")

// header is the fixed output contract. The price column carries the IDR
// value; the name stays "price" for downstream compatibility.
var header = []string{"title", "price", "rating", "colors", "size", "gender"}

// WriteCSV serializes the records in their given order, overwriting any
// existing file at path. Numeric fields render as plain decimal text.
func WriteCSV(records []models.CleanRecord, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCreateFile, path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.Title,
			strconv.FormatFloat(r.PriceIDR, 'f', -1, 64),
			strconv.FormatFloat(r.Rating, 'f', -1, 64),
			strconv.Itoa(r.Colors),
			r.Size,
			r.Gender,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	observability.RowsWritten.Add(float64(len(records)))
	return nil
}
