package screen

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/huangsam/githistory/core/heatmap"
	"github.com/huangsam/githistory/schema"
	"github.com/stretchr/testify/assert"
)

func sampleFrame(rows int, highlighted int) schema.Frame {
	activity := schema.DailyActivity{
		time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC): 1,
		time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC): 5,
	}
	table := schema.TableView{
		Columns: []schema.Column{
			{Title: "Email", Key: schema.SortEmail},
			{Title: "Commits", Key: schema.SortCommits, Sorted: true, Descending: true},
			{Title: "First", Key: schema.SortFirstCommit},
			{Title: "Last", Key: schema.SortLastCommit},
			{Title: "Days", Key: schema.SortDaysBetween},
		},
		Highlighted: highlighted,
	}
	for i := range rows {
		email := fmt.Sprintf("user%02d@x.com", i)
		table.Rows = append(table.Rows, schema.TableRow{
			Email:       email,
			Cells:       []string{email, "3", "01/01/2020", "06/10/2020", "161"},
			Highlighted: i == highlighted,
			Pinned:      i == 1,
		})
	}
	return schema.Frame{
		Header: schema.HeaderView{Title: "Git History Explorer", RepoPath: "/tmp/repo", AuthorCount: rows, TotalCommits: 3 * rows},
		Heatmap: schema.HeatmapView{
			Title:  "Commit Activity (all authors)",
			Grid:   heatmap.Build(activity, 2024),
			Months: heatmap.MonthLabels(2024),
		},
		Table:  table,
		Footer: schema.FooterView{Hints: []schema.KeyHint{{Key: "q", Desc: "quit"}, {Key: "/", Desc: "search"}}},
	}
}

func TestRender_Regions(t *testing.T) {
	out := Render(sampleFrame(3, 0), 120, 40)

	for _, want := range []string{
		"Git History Explorer",
		"Repository: /tmp/repo",
		"Authors: 3",
		"Commit Activity (all authors)",
		"Jan", "Dec", "Mon", "Wed", "Fri",
		"Less", "More",
		"Commits↓",
		"user02@x.com",
		"quit",
	} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, out, pinnedMarker+"user01@x.com", "pinned row is marked")
	assert.NotContains(t, out, "Search:")
}

func TestRender_Messages(t *testing.T) {
	f := sampleFrame(0, -1)
	f.Heatmap.Message = "No commit data available"
	f.Table.Message = "No commit data found"

	out := Render(f, 0, 0)
	assert.Contains(t, out, "No commit data available")
	assert.Contains(t, out, "No commit data found")
	assert.NotContains(t, out, "Less", "no grid without data")
}

func TestRender_FilteringFooter(t *testing.T) {
	f := sampleFrame(2, 0)
	f.Footer = schema.FooterView{Filtering: true, FilterText: "y.com"}
	assert.Contains(t, Render(f, 100, 30), "Search: y.com_")
}

func TestRender_KeepsHighlightVisible(t *testing.T) {
	out := Render(sampleFrame(60, 45), 120, 30)
	assert.Contains(t, out, "user45@x.com")
	assert.NotContains(t, out, "user00@x.com", "rows above the window are not drawn")
}

func TestTableWindow(t *testing.T) {
	tests := []struct {
		name                  string
		highlighted, total, n int
		wantStart, wantEnd    int
	}{
		{"fits", 2, 5, 10, 0, 5},
		{"top", 0, 50, 10, 0, 10},
		{"scrolled", 25, 50, 10, 16, 26},
		{"last", 49, 50, 10, 40, 50},
		{"none highlighted", -1, 5, 3, 0, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := tableWindow(tt.highlighted, tt.total, tt.n)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestHeatmapLayout(t *testing.T) {
	tests := []struct {
		width, weeks        int
		wantCell, wantShown int
	}{
		{200, 53, 2, 53},
		{60, 53, 1, 53},
		{30, 53, 1, 26},
		{2, 53, 1, 0},
	}
	for _, tt := range tests {
		cell, shown := heatmapLayout(tt.weeks, tt.width)
		assert.Equal(t, tt.wantCell, cell, "width %d", tt.width)
		assert.Equal(t, tt.wantShown, shown, "width %d", tt.width)
	}
}

func TestMonthHeader(t *testing.T) {
	line := monthHeader(heatmap.MonthLabels(2024), 1, 53)
	fields := strings.Fields(line)
	assert.Equal(t, "Jan", fields[0])
	for _, f := range fields {
		assert.Len(t, f, 3, "names never run together")
	}
	assert.True(t, strings.HasPrefix(line, strings.Repeat(" ", dayLabelCols)+"Jan"))
}
