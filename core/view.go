package core

import (
	"github.com/huangsam/githistory/core/algo"
	"github.com/huangsam/githistory/schema"
)

// SortState is the active sort key and direction.
type SortState struct {
	Key     schema.SortKey
	Reverse bool
}

// SetSort selects a sort key. Choosing the active key again leaves the state
// unchanged; a different key resets the direction to ascending.
func (s SortState) SetSort(key schema.SortKey) SortState {
	if key == s.Key {
		return s
	}
	return SortState{Key: key}
}

// ToggleReverse flips the sort direction.
func (s SortState) ToggleReverse() SortState {
	s.Reverse = !s.Reverse
	return s
}

// ComputeVisible returns the authors that pass filter, in display order.
func ComputeVisible(authors []schema.AuthorRecord, sort SortState, filter string) []schema.AuthorRecord {
	return algo.RankAuthors(authors, sort.Key, sort.Reverse, filter)
}
