package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the report output.
	OutputMode string

	// SourceBackend represents how commits are read from a repository.
	SourceBackend string
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All commit source backends supported.
const (
	GitBinarySource SourceBackend = "git" // default
	GoGitSource     SourceBackend = "go-git"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidSourceBackends lists all valid commit source backends.
var ValidSourceBackends = map[SourceBackend]struct{}{
	GitBinarySource: {},
	GoGitSource:     {},
}

// SortKey identifies the column the author list is ordered by.
type SortKey int

// Sort keys. SortDefault means no explicit sort was chosen.
const (
	SortDefault SortKey = iota
	SortEmail
	SortCommits
	SortFirstCommit
	SortLastCommit
	SortDaysBetween
)

// sortKeyNames maps sort keys to their names on the command line.
var sortKeyNames = map[SortKey]string{
	SortDefault:     "default",
	SortEmail:       "email",
	SortCommits:     "commits",
	SortFirstCommit: "first",
	SortLastCommit:  "last",
	SortDaysBetween: "days",
}

// String returns the command line name of the sort key.
func (k SortKey) String() string {
	if name, ok := sortKeyNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseSortKey converts a command line name into a SortKey.
func ParseSortKey(s string) (SortKey, bool) {
	for k, name := range sortKeyNames {
		if name == s {
			return k, true
		}
	}
	return SortDefault, false
}

// SortKeyForDigit maps the interactive digit keys 1-5 to a sort key.
func SortKeyForDigit(r rune) (SortKey, bool) {
	if r < '1' || r > '5' {
		return SortDefault, false
	}
	return SortKey(r-'1') + SortEmail, true
}

// DateLayout is how civil days are displayed in tables and reports.
const DateLayout = "01/02/2006"
