package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/githistory/internal/contract"
	"github.com/huangsam/githistory/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// writeAuthorTable generates and writes the human-readable table.
func writeAuthorTable(w io.Writer, authors []schema.AuthorRecord, cfg *contract.Config, now time.Time, duration time.Duration) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Email", "Name", "Commits", "First", "Last", "Days", "Status"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	emailWidth := GetMaxTableEmailWidth(cfg)
	var data [][]string
	totalCommits := 0
	for i, a := range authors {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncateText(a.Email, emailWidth),
			schema.AbbreviateName(a.Name),
			strconv.Itoa(a.Commits),
			schema.FormatDay(a.FirstCommit),
			schema.FormatDay(a.LastCommit),
			strconv.Itoa(a.DaysBetween),
			contract.GetColorLabel(a.LastCommit, now),
		})
		totalCommits += a.Commits
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Showing %d authors (total commits: %d)\n", len(authors), totalCommits); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Report completed in %v using source %s\n", duration.Round(time.Millisecond), cfg.Source)
	return err
}

// writeAuthorsCSV writes the author records in CSV format.
func writeAuthorsCSV(w io.Writer, authors []schema.AuthorRecord, now time.Time) error {
	header := []string{
		"rank",
		"email",
		"name",
		"commits",
		"first_commit",
		"last_commit",
		"days_between",
		"status",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for i, a := range authors {
			rec := []string{
				strconv.Itoa(i + 1),
				a.Email,
				a.Name,
				strconv.Itoa(a.Commits),
				a.FirstCommit.Format(time.DateOnly),
				a.LastCommit.Format(time.DateOnly),
				strconv.Itoa(a.DaysBetween),
				contract.GetPlainLabel(a.LastCommit, now),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeAuthorsJSON writes the author records in JSON format.
func writeAuthorsJSON(w io.Writer, authors []schema.AuthorRecord, now time.Time) error {
	type JSONAuthorResult struct {
		Status string `json:"status"`
		schema.EnrichedAuthorRecord
	}

	enriched := schema.EnrichAuthors(authors)
	output := make([]JSONAuthorResult, len(enriched))
	for i, e := range enriched {
		output[i] = JSONAuthorResult{
			Status:               contract.GetPlainLabel(e.LastCommit, now),
			EnrichedAuthorRecord: e,
		}
	}
	return writeJSON(w, output)
}
