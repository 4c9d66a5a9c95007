// Package ioexport writes the accumulated long-format table to persistent
// outputs: a CSV file and, optionally, a SQLite database.
package ioexport

import (
	"encoding/csv"
	"log/slog"
	"os"

	"github.com/gnames/gntraits/pkg/traits"
)

// WriteCSV writes the table to path with the fixed column order
// species, set_type, set_id, value.
func WriteCSV(path string, table *traits.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return CSVError(path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(traits.Headers()); err != nil {
		return CSVError(path, err)
	}
	for _, row := range table.Rows() {
		if err := w.Write(row.Values()); err != nil {
			return CSVError(path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return CSVError(path, err)
	}

	slog.Info("Wrote CSV output", "file", path, "rows", table.Len())
	return nil
}
