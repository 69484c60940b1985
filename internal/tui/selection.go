package tui

import "github.com/huangsam/githistory/schema"

// MoveHighlight moves index by delta and clamps it into [0, n-1].
// It is a no-op on an empty list.
func MoveHighlight(index, delta, n int) int {
	if n == 0 {
		return index
	}
	return min(max(index+delta, 0), n-1)
}

// TogglePin unpins the highlighted author when it is the pinned one and pins
// it otherwise. With nothing highlighted the pin is unchanged.
func TogglePin(pinned string, visible []schema.AuthorRecord, index int) string {
	if index < 0 || index >= len(visible) {
		return pinned
	}
	email := visible[index].Email
	if email == pinned {
		return ""
	}
	return email
}

// Reconcile returns the highlight after the visible list changed. The author
// that was highlighted keeps the highlight when still visible; otherwise the
// previous index is kept, capped to the new length.
func Reconcile(prevEmail string, prevIndex int, visible []schema.AuthorRecord) int {
	if len(visible) == 0 {
		return 0
	}
	if prevEmail != "" {
		for i, a := range visible {
			if a.Email == prevEmail {
				return i
			}
		}
	}
	return min(max(prevIndex, 0), len(visible)-1)
}

// validPin drops a pin whose author is not in the dataset.
func validPin(data *schema.Dataset, pinned string) string {
	if pinned != "" && !data.HasAuthor(pinned) {
		return ""
	}
	return pinned
}
