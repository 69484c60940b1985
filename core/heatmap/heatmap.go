// Package heatmap lays daily commit counts out on a calendar-year grid.
package heatmap

import (
	"slices"
	"time"

	"github.com/huangsam/githistory/schema"
)

// WeekCount returns the number of week columns needed for year, counting
// from the Sunday on or before Jan 1.
func WeekCount(year int) int {
	lead := int(jan1(year).Weekday())
	return (lead + daysIn(year) + 6) / 7
}

func jan1(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// gridStart is the Sunday on or before Jan 1.
func gridStart(year int) time.Time {
	first := jan1(year)
	return first.AddDate(0, 0, -int(first.Weekday()))
}

func daysIn(year int) int {
	return schema.DaysBetween(jan1(year), jan1(year+1))
}

func isLeap(year int) bool {
	return daysIn(year) == 366
}

// Project folds every day of activity onto the same month and day of year,
// summing the counts of all years. Feb 29 folds into Feb 28 when year is
// not a leap year.
func Project(activity schema.DailyActivity, year int) map[time.Time]int {
	leap := isLeap(year)
	out := make(map[time.Time]int, len(activity))
	for day, n := range activity {
		if n <= 0 {
			continue
		}
		m, d := day.Month(), day.Day()
		if m == time.February && d == 29 && !leap {
			d = 28
		}
		out[time.Date(year, m, d, 0, 0, 0, 0, time.UTC)] += n
	}
	return out
}

// Bucketer maps a count to an intensity level. The distinct non-zero counts
// are ranked and split into schema.LevelCount equal groups by rank, which is
// monotonic and fills every level once there are at least that many distinct
// counts.
type Bucketer struct {
	rank     map[int]int
	distinct int
}

// NewBucketer builds a Bucketer from the counts of one source mapping.
func NewBucketer(counts map[time.Time]int) Bucketer {
	var values []int
	for _, n := range counts {
		if n > 0 {
			values = append(values, n)
		}
	}
	slices.Sort(values)
	values = slices.Compact(values)

	rank := make(map[int]int, len(values))
	for i, v := range values {
		rank[v] = i
	}
	return Bucketer{rank: rank, distinct: len(values)}
}

// Level returns the bucket of count, or schema.LevelAbsent for zero.
func (b Bucketer) Level(count int) schema.Level {
	r, ok := b.rank[count]
	if count <= 0 || !ok {
		return schema.LevelAbsent
	}
	return schema.Level(r * schema.LevelCount / b.distinct)
}

// Build lays activity out on the grid of year. Overview and single-author
// grids go through the same procedure; only the source mapping differs.
func Build(activity schema.DailyActivity, year int) schema.HeatmapGrid {
	counts := Project(activity, year)
	bucket := NewBucketer(counts)

	weeks := make([]schema.HeatmapWeek, WeekCount(year))
	start := gridStart(year)
	maxCount := 0
	for w := range weeks {
		for wd := range weeks[w] {
			date := start.AddDate(0, 0, w*7+wd)
			cell := schema.HeatmapCell{Date: date, Level: schema.LevelAbsent}
			if date.Year() == year {
				cell.InYear = true
				cell.Count = counts[date]
				cell.Level = bucket.Level(cell.Count)
				maxCount = max(maxCount, cell.Count)
			}
			weeks[w][wd] = cell
		}
	}
	return schema.HeatmapGrid{Year: year, Weeks: weeks, MaxCount: maxCount}
}

// MonthLabels returns the week column in which each month of year begins.
func MonthLabels(year int) []schema.MonthLabel {
	start := gridStart(year)
	labels := make([]schema.MonthLabel, 0, 12)
	for m := time.January; m <= time.December; m++ {
		first := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
		week := schema.DaysBetween(start, first) / 7
		labels = append(labels, schema.MonthLabel{Week: week, Name: m.String()[:3]})
	}
	return labels
}
