package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// Activity label constants, assigned by time since an author's last commit.
const (
	ActiveValue  = "Active"  // Active value
	RecentValue  = "Recent"  // Recent value
	DormantValue = "Dormant" // Dormant value
)

// Activity label windows.
const (
	ActiveWindowDays = 30
	RecentWindowDays = 180
)

// Color variables for console output.
var (
	ActiveColor  = color.New(color.FgGreen, color.Bold) // ActiveColor marks authors committing this month.
	RecentColor  = color.New(color.FgYellow)            // RecentColor marks authors seen this half year.
	DormantColor = color.New(color.FgHiBlack)           // DormantColor marks everyone else.

	fatalColor = color.New(color.FgRed, color.Bold)
	warnColor  = color.New(color.FgYellow, color.Bold)
)

// maxRepoPathWidth is the widest repository path shown verbatim in headers.
const maxRepoPathWidth = 50

// GetPlainLabel returns a plain activity label for an author whose last
// commit was on lastCommit, as seen from now.
func GetPlainLabel(lastCommit, now time.Time) string {
	days := int(now.Sub(lastCommit).Hours() / 24)
	switch {
	case days <= ActiveWindowDays:
		return ActiveValue
	case days <= RecentWindowDays:
		return RecentValue
	default:
		return DormantValue
	}
}

// GetColorLabel returns the activity label colored for console output.
func GetColorLabel(lastCommit, now time.Time) string {
	text := GetPlainLabel(lastCommit, now)

	switch text {
	case ActiveValue:
		return ActiveColor.Sprint(text)
	case RecentValue:
		return RecentColor.Sprint(text)
	default:
		return DormantColor.Sprint(text)
	}
}

// SetColorEnabled turns colored console output on or off globally.
func SetColorEnabled(enabled bool) {
	color.NoColor = !enabled
}

// SelectOutputFile returns the appropriate file handle for output.
// An empty path selects os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "%s %s: %v\n", fatalColor.Sprint("Fatal"), msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "%s %s: %v\n", warnColor.Sprint("Warn"), msg, err)
}

// FormatRepoPath returns the repository path as shown in headers.
// The current directory is spelled out and long paths collapse to their base name.
func FormatRepoPath(path string) string {
	switch {
	case path == "" || path == ".":
		return "Current Directory"
	case runewidth.StringWidth(path) > maxRepoPathWidth:
		return filepath.Base(filepath.Clean(path))
	default:
		return path
	}
}

// TruncateText shortens s to at most maxWidth terminal cells, marking the cut with an ellipsis.
func TruncateText(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxWidth, "…")
}

// PadText truncates or right-pads s to exactly width terminal cells.
func PadText(s string, width int) string {
	return runewidth.FillRight(TruncateText(s, width), width)
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
