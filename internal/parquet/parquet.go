// Package parquet provides data structures and functions for exporting author
// statistics to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"time"

	"github.com/huangsam/githistory/schema"
	"github.com/parquet-go/parquet-go"
)

// AuthorRow represents one author of the report with rank and activity label.
type AuthorRow struct {
	// Rank is the 1-based position of the author in the report order
	Rank int32 `parquet:"rank,snappy"`

	// Email is the author's email, the identity key of the report
	Email string `parquet:"email,snappy"`

	// Name is the most recently seen display name for the email
	Name string `parquet:"name,snappy"`

	// Commits is the number of commits authored
	Commits int32 `parquet:"commits,snappy"`

	// FirstCommit is the earliest commit time (stored as TIMESTAMP with nanosecond precision)
	FirstCommit time.Time `parquet:"first_commit,snappy"`

	// LastCommit is the latest commit time (stored as TIMESTAMP with nanosecond precision)
	LastCommit time.Time `parquet:"last_commit,snappy"`

	// DaysBetween is the whole number of days from first to last commit
	DaysBetween int32 `parquet:"days_between,snappy"`

	// Status is the activity label (Active, Recent, Dormant)
	Status string `parquet:"status,snappy"`
}

// ConvertAuthorRecords converts ordered author records into Parquet rows.
// label computes the activity label for a last-commit time.
func ConvertAuthorRecords(authors []schema.AuthorRecord, label func(time.Time) string) []AuthorRow {
	rows := make([]AuthorRow, len(authors))
	for i, a := range authors {
		rows[i] = AuthorRow{
			Rank:        int32(i + 1),
			Email:       a.Email,
			Name:        a.Name,
			Commits:     int32(a.Commits),
			FirstCommit: a.FirstCommit.UTC(),
			LastCommit:  a.LastCommit.UTC(),
			DaysBetween: int32(a.DaysBetween),
			Status:      label(a.LastCommit),
		}
	}
	return rows
}

// WriteAuthorsParquet writes a slice of AuthorRow structs to w.
func WriteAuthorsParquet(w io.Writer, data []AuthorRow) error {
	// The schema is automatically derived from the AuthorRow struct tags
	writer := parquet.NewGenericWriter[AuthorRow](w)

	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	// Close flushes the footer; without it the file is unreadable
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// ReadAuthorsParquet reads back every AuthorRow of a Parquet file of the given size.
func ReadAuthorsParquet(r io.ReaderAt, size int64) ([]AuthorRow, error) {
	rows, err := parquet.Read[AuthorRow](r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to read parquet data: %w", err)
	}
	return rows, nil
}
