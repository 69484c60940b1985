package outwriter

import (
	"os"

	"github.com/huangsam/githistory/internal/contract"
	"golang.org/x/term"
)

// Bounds for the email column of the text report.
const (
	minEmailWidth = 15
	maxEmailWidth = 60
)

// GetMaxTableEmailWidth calculates the maximum width for emails in table output
// based on terminal width and the fixed columns of the author table.
func GetMaxTableEmailWidth(cfg *contract.Config) int {
	termWidth := cfg.Width
	if termWidth == 0 {
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Rank + Name + Commits + First + Last + Days + Status, with borders and padding
	baseWidth := 6 + 14 + 9 + 13 + 13 + 7 + 10 + 8

	available := termWidth - baseWidth
	if available < minEmailWidth {
		return minEmailWidth
	}
	if available > maxEmailWidth {
		return maxEmailWidth
	}
	return available
}
