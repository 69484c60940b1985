package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/huangsam/githistory/schema"
)

// pageSize is how far PgUp and PgDn move the highlight.
const pageSize = 10

type browseKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Pin      key.Binding
	Sort     key.Binding
	Reverse  key.Binding
	Search   key.Binding
	Quit     key.Binding
}

// ShortHelp is the footer legend while browsing.
func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Pin, k.Sort, k.Reverse, k.Search, k.Quit}
}

// FullHelp lists every browsing binding.
func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
		{k.Pin, k.Sort, k.Reverse, k.Search, k.Quit},
	}
}

var browseKeys = browseKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑↓", "navigate"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "page down"),
	),
	Home: key.NewBinding(
		key.WithKeys("home"),
		key.WithHelp("home", "first"),
	),
	End: key.NewBinding(
		key.WithKeys("end"),
		key.WithHelp("end", "last"),
	),
	Pin: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Sort: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5"),
		key.WithHelp("1-5", "sort"),
	),
	Reverse: key.NewBinding(
		key.WithKeys("r", "R"),
		key.WithHelp("r", "reverse"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "Q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type filterKeyMap struct {
	Commit key.Binding
	Cancel key.Binding
	Erase  key.Binding
	Quit   key.Binding
}

// ShortHelp is the footer legend while filtering.
func (k filterKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Commit, k.Cancel}
}

// FullHelp lists every filtering binding.
func (k filterKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Commit, k.Cancel, k.Erase, k.Quit}}
}

var filterKeys = filterKeyMap{
	Commit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "apply"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Erase: key.NewBinding(
		key.WithKeys("backspace"),
		key.WithHelp("backspace", "erase"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// hintsFor converts the short help of a key map into footer hints.
func hintsFor(bindings []key.Binding) []schema.KeyHint {
	hints := make([]schema.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, schema.KeyHint{Key: h.Key, Desc: h.Desc})
	}
	return hints
}
