// Package screen turns a schema.Frame into terminal text with lipgloss.
package screen

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/huangsam/githistory/internal/contract"
	"github.com/huangsam/githistory/schema"
)

// Fallback viewport used before the first resize event.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Table column widths, besides the email column which takes the rest.
const (
	markerWidth  = 2
	commitsWidth = 8
	dateWidth    = 11
	daysWidth    = 6
	minEmail     = 10
	dayLabelCols = 4
)

const (
	cellGlyph    = "■"
	absentGlyph  = "·"
	pinnedMarker = "● "
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	sortedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	columnStyle = lipgloss.NewStyle().Bold(true)
	cursorStyle = lipgloss.NewStyle().Reverse(true).Bold(true)
	searchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	levelStyles = [schema.LevelCount]lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("#0e4429")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#006d32")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#26a641")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#39d353")),
	}

	weekdayLabels = [7]string{"", "Mon", "", "Wed", "", "Fri", ""}
)

// Render draws f for a viewport of width by height cells. Regions are stacked
// top to bottom; the author table gets whatever height is left.
func Render(f schema.Frame, width, height int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	header := renderHeader(f.Header, width)
	heat := renderHeatmap(f.Heatmap, width)
	footer := renderFooter(f.Footer, width)

	// The table title and its column header take two lines.
	used := lipgloss.Height(header) + lipgloss.Height(heat) + lipgloss.Height(footer) + 2
	rows := max(height-used, 3)

	return lipgloss.JoinVertical(lipgloss.Left, header, heat, renderTable(f.Table, width, rows), footer)
}

func renderHeader(h schema.HeaderView, width int) string {
	info := fmt.Sprintf("%s%d  %s%d", labelStyle.Render("Authors: "), h.AuthorCount, labelStyle.Render("Commits: "), h.TotalCommits)
	if h.Pinned != "" {
		info += " | " + searchStyle.Render("Selected: ") + h.Pinned
	}
	if h.Filter != "" {
		info += " | " + labelStyle.Render("Filter: ") + h.Filter
	}
	lines := []string{
		titleStyle.Render(h.Title),
		labelStyle.Render("Repository: ") + contract.TruncateText(h.RepoPath, width-12),
		info,
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(strings.Join(lines, "\n"))
}

// heatmapLayout picks the cell width and the number of week columns that fit.
func heatmapLayout(weeks, width int) (cellWidth, shown int) {
	cellWidth = 2
	if dayLabelCols+weeks*cellWidth > width {
		cellWidth = 1
	}
	shown = min(weeks, max((width-dayLabelCols)/cellWidth, 0))
	return cellWidth, shown
}

func renderHeatmap(v schema.HeatmapView, width int) string {
	lines := []string{"", titleStyle.Render(v.Title)}
	if v.Message != "" {
		lines = append(lines, mutedStyle.Render(v.Message))
		return strings.Join(lines, "\n")
	}

	cellWidth, shown := heatmapLayout(len(v.Grid.Weeks), width)
	lines = append(lines, monthHeader(v.Months, cellWidth, shown))

	for wd := range 7 {
		var b strings.Builder
		_, _ = fmt.Fprintf(&b, "%-*s", dayLabelCols, weekdayLabels[wd])
		for w := range shown {
			b.WriteString(cellText(v.Grid.Weeks[w][wd]))
			if cellWidth == 2 {
				b.WriteByte(' ')
			}
		}
		lines = append(lines, strings.TrimRight(b.String(), " "))
	}
	lines = append(lines, legend())
	return strings.Join(lines, "\n")
}

// monthHeader places month names above the week in which each month starts,
// skipping names that would overlap the previous one.
func monthHeader(months []schema.MonthLabel, cellWidth, shown int) string {
	line := []rune(strings.Repeat(" ", dayLabelCols+shown*cellWidth))
	next := 0
	for _, m := range months {
		if m.Week >= shown {
			break
		}
		pos := dayLabelCols + m.Week*cellWidth
		if pos < next || pos+len(m.Name) > len(line) {
			continue
		}
		copy(line[pos:], []rune(m.Name))
		next = pos + len(m.Name) + 1
	}
	return strings.TrimRight(string(line), " ")
}

func cellText(c schema.HeatmapCell) string {
	switch {
	case !c.InYear:
		return " "
	case c.Level == schema.LevelAbsent:
		return mutedStyle.Render(absentGlyph)
	default:
		return levelStyles[c.Level].Render(cellGlyph)
	}
}

func legend() string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", dayLabelCols))
	b.WriteString(mutedStyle.Render("Less "))
	for _, s := range levelStyles {
		b.WriteString(s.Render(cellGlyph))
	}
	b.WriteString(mutedStyle.Render(" More"))
	return b.String()
}

func emailWidth(width int) int {
	return max(width-markerWidth-commitsWidth-2*dateWidth-daysWidth-4, minEmail)
}

// tableWindow returns the slice of rows to draw so that the highlight stays visible.
func tableWindow(highlighted, total, rows int) (start, end int) {
	if highlighted >= rows {
		start = highlighted - rows + 1
	}
	return start, min(start+rows, total)
}

func renderTable(t schema.TableView, width, rows int) string {
	lines := []string{"", titleStyle.Render("Authors")}
	if t.Message != "" {
		lines = append(lines, errorStyle.Render(t.Message))
		return strings.Join(lines, "\n")
	}

	ew := emailWidth(width)
	widths := []int{ew, commitsWidth, dateWidth, dateWidth, daysWidth}

	header := strings.Repeat(" ", markerWidth)
	for i, c := range t.Columns {
		title := c.Title
		style := columnStyle
		if c.Sorted {
			style = sortedStyle
			if c.Descending {
				title += "↓"
			} else {
				title += "↑"
			}
		}
		header += style.Render(align(title, widths[i], i == 0)) + " "
	}
	lines = append(lines, strings.TrimRight(header, " "))

	start, end := tableWindow(t.Highlighted, len(t.Rows), rows)
	for _, r := range t.Rows[start:end] {
		marker := strings.Repeat(" ", markerWidth)
		if r.Pinned {
			marker = pinnedMarker
		}
		cells := make([]string, len(r.Cells))
		for i, c := range r.Cells {
			cells[i] = align(c, widths[i], i == 0)
		}
		row := strings.Join(cells, " ")
		if r.Highlighted {
			row = cursorStyle.Render(row)
		}
		lines = append(lines, marker+row)
	}
	return strings.Join(lines, "\n")
}

// align fits s into width cells, left-aligned or right-aligned.
func align(s string, width int, left bool) string {
	s = contract.TruncateText(s, width)
	if left {
		return contract.PadText(s, width)
	}
	return fmt.Sprintf("%*s", width, s)
}

func renderFooter(f schema.FooterView, width int) string {
	if f.Filtering {
		return "\n" + searchStyle.Render("Search: ") + f.FilterText + "_"
	}
	bindings := make([]key.Binding, len(f.Hints))
	for i, h := range f.Hints {
		bindings[i] = key.NewBinding(key.WithKeys(h.Key), key.WithHelp(h.Key, h.Desc))
	}
	hm := help.New()
	hm.Width = width
	return "\n" + hm.ShortHelpView(bindings)
}
