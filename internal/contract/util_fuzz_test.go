package contract

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

// FuzzParseCommitLine fuzzes parseCommitLine with arbitrary log lines.
func FuzzParseCommitLine(f *testing.F) {
	seeds := []string{
		"a@x.com\x00Alice\x002024-01-01T10:00:00+09:00",
		"b@y.com\x00Bob | Builder\x002024-02-01T23:30:00-05:00",
		"\x00\x00",
		"no separators at all",
		"",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, line string) {
		rec, err := parseCommitLine(line)
		if err != nil {
			return
		}
		if strings.Contains(rec.AuthorEmail, logFieldSep) {
			t.Errorf("email of %q keeps a field separator", line)
		}
	})
}

// FuzzTruncateText checks that truncation never exceeds the requested width.
func FuzzTruncateText(f *testing.F) {
	f.Add("averylongemail@example.com", 10)
	f.Add("张三李四王五", 5)
	f.Add("", 3)

	f.Fuzz(func(t *testing.T, s string, width int) {
		if width < 0 || width > 200 {
			return
		}
		got := TruncateText(s, width)
		if w := runewidth.StringWidth(got); w > width {
			t.Errorf("TruncateText(%q, %d) has width %d", s, width, w)
		}
	})
}
