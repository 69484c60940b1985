package tui

import (
	"fmt"
	"strconv"

	"github.com/huangsam/githistory/core/heatmap"
	"github.com/huangsam/githistory/internal/contract"
	"github.com/huangsam/githistory/schema"
)

// Display strings of the explorer.
const (
	explorerTitle   = "Git History Explorer"
	activityTitle   = "Commit Activity"
	noCommitsFound  = "No commit data found"
	noActivityFound = "No commit data available"
)

var tableColumns = []schema.Column{
	{Title: "Email", Key: schema.SortEmail},
	{Title: "Commits", Key: schema.SortCommits},
	{Title: "First", Key: schema.SortFirstCommit},
	{Title: "Last", Key: schema.SortLastCommit},
	{Title: "Days", Key: schema.SortDaysBetween},
}

// Snapshot derives the draw request for s. year selects the heatmap calendar.
func Snapshot(data *schema.Dataset, s State, repoPath string, year int) schema.Frame {
	if data == nil {
		data = schema.EmptyDataset()
	}
	visible := s.Visible(data)

	return schema.Frame{
		Header: schema.HeaderView{
			Title:        explorerTitle,
			RepoPath:     contract.FormatRepoPath(repoPath),
			AuthorCount:  len(visible),
			TotalCommits: data.TotalCommits,
			Pinned:       s.Pinned,
			Filter:       s.Filter,
		},
		Heatmap: heatmapView(data, s.Pinned, year),
		Table:   tableView(data, s, visible),
		Footer:  footerView(s),
	}
}

func heatmapView(data *schema.Dataset, pinned string, year int) schema.HeatmapView {
	source := data.Activity.Overall
	title := activityTitle + " (all authors)"
	if pinned != "" {
		source = data.Activity.ForAuthor(pinned)
		title = fmt.Sprintf("%s: %s", activityTitle, pinned)
	}

	view := schema.HeatmapView{
		Title:  title,
		Grid:   heatmap.Build(source, year),
		Months: heatmap.MonthLabels(year),
	}
	if view.Grid.IsEmpty() {
		view.Message = noActivityFound
	}
	return view
}

func tableView(data *schema.Dataset, s State, visible []schema.AuthorRecord) schema.TableView {
	columns := make([]schema.Column, len(tableColumns))
	for i, c := range tableColumns {
		c.Sorted = c.Key == s.Sort.Key
		c.Descending = c.Sorted && s.Sort.Reverse
		columns[i] = c
	}

	view := schema.TableView{Columns: columns, Highlighted: -1}
	switch {
	case data.Len() == 0:
		view.Message = noCommitsFound
		return view
	case len(visible) == 0:
		view.Message = fmt.Sprintf("No authors match %q", s.Filter)
		return view
	}

	view.Highlighted = min(max(s.Highlighted, 0), len(visible)-1)
	view.Rows = make([]schema.TableRow, len(visible))
	for i, a := range visible {
		view.Rows[i] = schema.TableRow{
			Email: a.Email,
			Cells: []string{
				a.Email,
				strconv.Itoa(a.Commits),
				schema.FormatDay(a.FirstCommit),
				schema.FormatDay(a.LastCommit),
				strconv.Itoa(a.DaysBetween),
			},
			Highlighted: i == view.Highlighted,
			Pinned:      a.Email == s.Pinned,
		}
	}
	return view
}

func footerView(s State) schema.FooterView {
	if s.Mode == ModeFiltering {
		return schema.FooterView{
			Filtering:  true,
			FilterText: s.Filter,
			Hints:      hintsFor(filterKeys.ShortHelp()),
		}
	}
	return schema.FooterView{Hints: hintsFor(browseKeys.ShortHelp())}
}
