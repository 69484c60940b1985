// Package outwriter has output and writer logic.
package outwriter

import (
	"fmt"
	"io"
	"time"

	"github.com/huangsam/githistory/internal/contract"
	"github.com/huangsam/githistory/internal/parquet"
	"github.com/huangsam/githistory/schema"
)

// WriteAuthorReport outputs the ordered author records, dispatching based on
// the output format configured. now anchors the activity labels.
func WriteAuthorReport(authors []schema.AuthorRecord, cfg *contract.Config, now time.Time, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAuthorsJSON(w, authors, now)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAuthorsCSV(w, authors, now)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires --output-file")
		}
		rows := parquet.ConvertAuthorRecords(authors, func(last time.Time) string {
			return contract.GetPlainLabel(last, now)
		})
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return parquet.WriteAuthorsParquet(w, rows)
		}, "Wrote Parquet"); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAuthorTable(w, authors, cfg, now, duration)
		}, "Wrote table")
	}
	return nil
}
