package main

import (
	"sort"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
)

// labelCount is one row of a frequency table.
type labelCount struct {
	Label string
	Count int
}

// yearCount is one point of a yearly time series.
type yearCount struct {
	Year  int
	Count int
}

// All aggregations below are pure functions over a loaded table. They
// are total: an all-null or missing column yields a zero, an empty
// slice, or the "N/A" sentinel, never a panic.

func rowCount(df dataframe.DataFrame) int {
	return df.Nrow()
}

// columnMode returns the most frequent non-null value of a column, or
// "N/A" when the column has no non-null values. Ties go to the
// lexicographically smallest value so repeated runs agree.
func columnMode(df dataframe.DataFrame, col string) string {
	best := ""
	bestCount := 0
	for _, lc := range valueCounts(df, col) {
		if lc.Count > bestCount || (lc.Count == bestCount && lc.Label < best) {
			best, bestCount = lc.Label, lc.Count
		}
	}
	if bestCount == 0 {
		return "N/A"
	}
	return best
}

// categoryCount counts rows whose column equals target, ignoring case.
// Null cells never match, so an all-null column counts zero.
func categoryCount(df dataframe.DataFrame, col, target string) int {
	target = strings.ToLower(strings.TrimSpace(target))
	n := 0
	s := df.Col(col)
	for i := 0; i < s.Len(); i++ {
		v := s.Elem(i).String()
		if isNull(v) {
			continue
		}
		if strings.ToLower(strings.TrimSpace(v)) == target {
			n++
		}
	}
	return n
}

// valueCounts builds a frequency table over the union of one or more
// columns (e.g. Team 1 + Team 2 folded into a single team series).
// Entries appear in first-appearance order; nulls are skipped.
func valueCounts(df dataframe.DataFrame, cols ...string) []labelCount {
	idx := make(map[string]int)
	var counts []labelCount
	for _, col := range cols {
		s := df.Col(col)
		for i := 0; i < s.Len(); i++ {
			v := strings.TrimSpace(s.Elem(i).String())
			if isNull(v) {
				continue
			}
			if j, ok := idx[v]; ok {
				counts[j].Count++
			} else {
				idx[v] = len(counts)
				counts = append(counts, labelCount{Label: v, Count: 1})
			}
		}
	}
	return counts
}

// topCounts sorts a frequency table by descending count and truncates it
// to k entries (k <= 0 means all). The sort is stable, so equal counts
// keep their first-appearance order.
func topCounts(counts []labelCount, k int) []labelCount {
	out := make([]labelCount, len(counts))
	copy(out, counts)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if k > 0 && len(out) > k {
		out = out[:k]
	}
	return out
}

// countByYear groups rows by the year of a canonical date column,
// ascending. Rows with a null date are left out entirely; if every date
// is null the result is empty.
func countByYear(df dataframe.DataFrame, col string) []yearCount {
	byYear := make(map[int]int)
	s := df.Col(col)
	for i := 0; i < s.Len(); i++ {
		v := strings.TrimSpace(s.Elem(i).String())
		if isNull(v) {
			continue
		}
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			continue
		}
		byYear[t.Year()]++
	}

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	out := make([]yearCount, 0, len(years))
	for _, y := range years {
		out = append(out, yearCount{Year: y, Count: byYear[y]})
	}
	return out
}
