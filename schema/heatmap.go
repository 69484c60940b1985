package schema

import "time"

// Level is the intensity bucket of a heatmap cell.
type Level int8

// Intensity buckets. LevelAbsent marks a day without commits and is distinct
// from Level0, the lowest non-empty bucket.
const (
	LevelAbsent Level = -1
	Level0      Level = 0
	Level1      Level = 1
	Level2      Level = 2
	Level3      Level = 3
)

// LevelCount is the number of non-empty intensity buckets.
const LevelCount = 4

// HeatmapCell is one day of the calendar grid.
type HeatmapCell struct {
	Date   time.Time // Civil day at midnight UTC
	InYear bool      // False for padding days before Jan 1 or after Dec 31
	Count  int
	Level  Level
}

// HeatmapWeek is one grid column, indexed by weekday with Sunday at 0.
type HeatmapWeek [7]HeatmapCell

// HeatmapGrid is a calendar year laid out week by week. It has 53 columns,
// or 54 when a leap year starts on a Saturday.
type HeatmapGrid struct {
	Year     int
	Weeks    []HeatmapWeek
	MaxCount int
}

// IsEmpty reports whether every cell of the grid is absent.
func (g HeatmapGrid) IsEmpty() bool {
	for _, w := range g.Weeks {
		for _, c := range w {
			if c.Level != LevelAbsent {
				return false
			}
		}
	}
	return true
}

// Levels returns the set of non-empty buckets used by the grid.
func (g HeatmapGrid) Levels() map[Level]int {
	used := make(map[Level]int)
	for _, w := range g.Weeks {
		for _, c := range w {
			if c.Level != LevelAbsent {
				used[c.Level]++
			}
		}
	}
	return used
}
