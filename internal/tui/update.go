package tui

import (
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/huangsam/githistory/schema"
)

// Update applies one event to s and returns the next state. It performs no
// I/O, so a recorded event script always replays to the same state.
func Update(data *schema.Dataset, s State, ev Event) State {
	if s.Mode == ModeTerminal {
		return s
	}
	if ev.Kind == ResizeEvent {
		s.Width, s.Height = ev.Width, ev.Height
		return s
	}

	switch s.Mode {
	case ModeFiltering:
		s = updateFiltering(data, s, ev)
	default:
		s = updateBrowsing(data, s, ev)
	}
	s.Pinned = validPin(data, s.Pinned)
	return s
}

func updateBrowsing(data *schema.Dataset, s State, ev Event) State {
	visible := s.Visible(data)
	n := len(visible)

	switch {
	case key.Matches(ev, browseKeys.Quit):
		s.Mode = ModeTerminal
	case key.Matches(ev, browseKeys.Up):
		s.Highlighted = MoveHighlight(s.Highlighted, -1, n)
	case key.Matches(ev, browseKeys.Down):
		s.Highlighted = MoveHighlight(s.Highlighted, 1, n)
	case key.Matches(ev, browseKeys.PageUp):
		s.Highlighted = MoveHighlight(s.Highlighted, -pageSize, n)
	case key.Matches(ev, browseKeys.PageDown):
		s.Highlighted = MoveHighlight(s.Highlighted, pageSize, n)
	case key.Matches(ev, browseKeys.Home):
		s.Highlighted = MoveHighlight(s.Highlighted, -n, n)
	case key.Matches(ev, browseKeys.End):
		s.Highlighted = MoveHighlight(s.Highlighted, n, n)
	case key.Matches(ev, browseKeys.Pin):
		s.Pinned = TogglePin(s.Pinned, visible, s.Highlighted)
	case key.Matches(ev, browseKeys.Sort):
		if k, ok := schema.SortKeyForDigit([]rune(ev.Key)[0]); ok {
			s = reorder(data, s, func(s State) State {
				s.Sort = s.Sort.SetSort(k)
				return s
			})
		}
	case key.Matches(ev, browseKeys.Reverse):
		s = reorder(data, s, func(s State) State {
			s.Sort = s.Sort.ToggleReverse()
			return s
		})
	case key.Matches(ev, browseKeys.Search):
		s.Mode = ModeFiltering
		s.PriorFilter = s.Filter
	}
	return s
}

func updateFiltering(data *schema.Dataset, s State, ev Event) State {
	switch {
	case key.Matches(ev, filterKeys.Quit):
		s.Mode = ModeTerminal
	case key.Matches(ev, filterKeys.Commit):
		s.Mode = ModeBrowsing
		s.PriorFilter = ""
	case key.Matches(ev, filterKeys.Cancel):
		prior := s.PriorFilter
		s = reorder(data, s, func(s State) State {
			s.Filter = prior
			return s
		})
		s.Mode = ModeBrowsing
		s.PriorFilter = ""
	case key.Matches(ev, filterKeys.Erase):
		if s.Filter != "" {
			_, size := utf8.DecodeLastRuneInString(s.Filter)
			trimmed := s.Filter[:len(s.Filter)-size]
			s = reorder(data, s, func(s State) State {
				s.Filter = trimmed
				return s
			})
		}
	default:
		if r, ok := printableRune(ev.Key); ok {
			s = reorder(data, s, func(s State) State {
				s.Filter += string(r)
				return s
			})
		}
	}
	return s
}

// reorder applies a sort or filter change and reconciles the highlight with
// the new visible list.
func reorder(data *schema.Dataset, s State, change func(State) State) State {
	prevEmail := s.highlightedEmail(s.Visible(data))
	next := change(s)
	next.Highlighted = Reconcile(prevEmail, s.Highlighted, next.Visible(data))
	return next
}

// printableRune reports whether k is a single printable character.
func printableRune(k string) (rune, bool) {
	if utf8.RuneCountInString(k) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(k)
	return r, unicode.IsPrint(r)
}
