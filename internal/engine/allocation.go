// Package engine contains the pure computation core of the retirement
// dashboard: portfolio synthesis, allocation normalization, performance
// series generation, retirement goal projection, and baseline-vs-projection
// diffing. Every function is deterministic and side-effect free.
package engine

import "math"

// allocationPalette is the fixed chart palette. Colors are assigned
// cyclically by input position.
var allocationPalette = []string{
	"#4F8EF7", // blue
	"#34C77B", // green
	"#F7B34F", // amber
	"#9B6EF7", // purple
	"#F76E6E", // red
	"#3FC1C9", // teal
	"#F78EDB", // pink
	"#A3B86C", // olive
}

// AllocationInput is one weighted item to normalize, typically a holding
// with its dollar value as the raw weight.
type AllocationInput struct {
	Label  string
	Weight float64
}

// AllocationSlice is the normalized output: display weight in percent
// (one decimal place) plus an assigned palette color.
type AllocationSlice struct {
	Label  string
	Weight float64
	Color  string
}

// NormalizeAllocations rescales raw weights so the displayed percentages sum
// to exactly 100.0. Each weight is rounded to one decimal place, then any
// rounding drift of at least 0.05 is added in full to the first item, so at
// most one item differs from its plainly rounded value. Input order and
// count are preserved.
func NormalizeAllocations(items []AllocationInput) []AllocationSlice {
	if len(items) == 0 {
		return []AllocationSlice{}
	}

	total := 0.0
	for _, it := range items {
		total += it.Weight
	}
	if total == 0 {
		total = 1
	}

	scale := 100 / total
	out := make([]AllocationSlice, len(items))
	sum := 0.0
	for i, it := range items {
		w := round1(it.Weight * scale)
		out[i] = AllocationSlice{
			Label:  it.Label,
			Weight: w,
			Color:  allocationPalette[i%len(allocationPalette)],
		}
		sum += w
	}

	drift := round1(100 - sum)
	if math.Abs(drift) >= 0.05 {
		out[0].Weight = round1(out[0].Weight + drift)
	}

	return out
}

// round1 rounds to one decimal place.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// round2 rounds to two decimal places.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
