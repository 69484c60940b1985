// Package tui has the interactive explorer: an explicit state, a pure
// transition function and the bubbletea program that drives them.
package tui

import (
	"github.com/huangsam/githistory/core"
	"github.com/huangsam/githistory/schema"
)

// Mode is the input mode of the explorer.
type Mode int

// Explorer modes. ModeTerminal is absorbing.
const (
	ModeBrowsing Mode = iota
	ModeFiltering
	ModeTerminal
)

func (m Mode) String() string {
	switch m {
	case ModeFiltering:
		return "filtering"
	case ModeTerminal:
		return "terminal"
	default:
		return "browsing"
	}
}

// State is everything the explorer knows besides the dataset.
// While filtering, Filter holds the text being typed and is applied live;
// PriorFilter is restored when the search is cancelled.
type State struct {
	Mode        Mode
	Sort        core.SortState
	Filter      string
	PriorFilter string
	Highlighted int    // Index into the visible list; meaningless when it is empty
	Pinned      string // Email of the pinned author, or empty for overview
	Width       int
	Height      int
}

// NewState returns the initial browsing state: default order, no filter,
// first row highlighted, overview mode.
func NewState() State {
	return State{Mode: ModeBrowsing, Sort: core.SortState{Key: schema.SortDefault}}
}

// Visible returns the authors shown for s, in display order.
func (s State) Visible(data *schema.Dataset) []schema.AuthorRecord {
	if data == nil {
		return nil
	}
	return core.ComputeVisible(data.Authors, s.Sort, s.Filter)
}

// highlightedEmail returns the email under the highlight, or "".
func (s State) highlightedEmail(visible []schema.AuthorRecord) string {
	if s.Highlighted < 0 || s.Highlighted >= len(visible) {
		return ""
	}
	return visible[s.Highlighted].Email
}

// EventKind distinguishes input events.
type EventKind int

// Event kinds.
const (
	KeyEvent EventKind = iota
	ResizeEvent
)

// Event is one input to the explorer. Key uses the names of the bubbletea
// key strings ("up", "pgdown", "ctrl+c", "k", ...).
type Event struct {
	Kind   EventKind
	Key    string
	Width  int
	Height int
}

// String implements fmt.Stringer so that events match key bindings.
func (e Event) String() string { return e.Key }

// Key builds a key event.
func Key(k string) Event { return Event{Kind: KeyEvent, Key: k} }

// Resize builds a resize event.
func Resize(width, height int) Event {
	return Event{Kind: ResizeEvent, Width: width, Height: height}
}
