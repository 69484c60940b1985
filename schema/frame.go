package schema

// Frame is the draw request handed to a renderer after every event.
// It is derived from state and never stored.
type Frame struct {
	Header  HeaderView
	Heatmap HeatmapView
	Table   TableView
	Footer  FooterView
}

// HeaderView describes the top region.
type HeaderView struct {
	Title        string
	RepoPath     string
	AuthorCount  int
	TotalCommits int
	Pinned       string // Empty in overview mode
	Filter       string
}

// MonthLabel places a month name above a heatmap week column.
type MonthLabel struct {
	Week int
	Name string
}

// HeatmapView describes the heatmap region.
type HeatmapView struct {
	Title   string
	Grid    HeatmapGrid
	Months  []MonthLabel
	Message string // Shown instead of the grid when set
}

// Column is a table header cell.
type Column struct {
	Title      string
	Key        SortKey
	Sorted     bool
	Descending bool
}

// TableRow is a pre-formatted author row.
type TableRow struct {
	Email       string
	Cells       []string
	Highlighted bool
	Pinned      bool
}

// TableView describes the author table region.
type TableView struct {
	Columns     []Column
	Rows        []TableRow
	Highlighted int
	Message     string // Shown instead of rows when set
}

// KeyHint is one entry of the key legend.
type KeyHint struct {
	Key  string
	Desc string
}

// FooterView describes the bottom region.
type FooterView struct {
	Filtering  bool
	FilterText string
	Hints      []KeyHint
}
