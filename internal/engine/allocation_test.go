package engine

import (
	"math"
	"testing"
)

// TestNormalizeAllocations tests the display-weight normalizer.
//
// WHY: Every allocation chart relies on the displayed percentages summing to
// exactly 100.0 after rounding, with only the first item absorbing drift.
func TestNormalizeAllocations(t *testing.T) {
	sum := func(slices []AllocationSlice) float64 {
		s := 0.0
		for _, sl := range slices {
			s += sl.Weight
		}
		return s
	}

	t.Run("sums to exactly 100 for uneven weights", func(t *testing.T) {
		items := []AllocationInput{
			{Label: "A", Weight: 1},
			{Label: "B", Weight: 1},
			{Label: "C", Weight: 1},
		}

		out := NormalizeAllocations(items)

		if len(out) != 3 {
			t.Fatalf("Expected 3 slices, got %d", len(out))
		}
		if got := sum(out); math.Abs(got-100) > 0.0001 {
			t.Errorf("Expected sum 100.0, got %v", got)
		}
	})

	t.Run("preserves input order", func(t *testing.T) {
		items := []AllocationInput{
			{Label: "bonds", Weight: 40},
			{Label: "stocks", Weight: 35},
			{Label: "cash", Weight: 25},
		}

		out := NormalizeAllocations(items)

		for i, want := range []string{"bonds", "stocks", "cash"} {
			if out[i].Label != want {
				t.Errorf("Slice %d: expected label %q, got %q", i, want, out[i].Label)
			}
		}
	})

	t.Run("drift is absorbed by the first item only", func(t *testing.T) {
		// Seven equal weights round to 14.3 each (sum 100.1); the -0.1
		// drift must land entirely on the first slice.
		items := make([]AllocationInput, 7)
		for i := range items {
			items[i] = AllocationInput{Label: "x", Weight: 1}
		}

		out := NormalizeAllocations(items)

		if got := sum(out); math.Abs(got-100) > 0.0001 {
			t.Errorf("Expected sum 100.0, got %v", got)
		}
		if out[0].Weight == out[1].Weight {
			t.Errorf("Expected first slice to absorb drift, got %v == %v", out[0].Weight, out[1].Weight)
		}
		for i := 1; i < len(out); i++ {
			if out[i].Weight != out[1].Weight {
				t.Errorf("Slice %d: expected untouched weight %v, got %v", i, out[1].Weight, out[i].Weight)
			}
		}
	})

	t.Run("single item yields exactly 100", func(t *testing.T) {
		out := NormalizeAllocations([]AllocationInput{{Label: "only", Weight: 42.17}})

		if len(out) != 1 {
			t.Fatalf("Expected 1 slice, got %d", len(out))
		}
		if out[0].Weight != 100.0 {
			t.Errorf("Expected 100.0, got %v", out[0].Weight)
		}
	})

	t.Run("zero total does not divide by zero", func(t *testing.T) {
		out := NormalizeAllocations([]AllocationInput{
			{Label: "a", Weight: 0},
			{Label: "b", Weight: 0},
		})

		if len(out) != 2 {
			t.Fatalf("Expected 2 slices, got %d", len(out))
		}
		for i, sl := range out {
			if math.IsNaN(sl.Weight) || math.IsInf(sl.Weight, 0) {
				t.Errorf("Slice %d: expected finite weight, got %v", i, sl.Weight)
			}
		}
	})

	t.Run("colors cycle through the palette", func(t *testing.T) {
		items := make([]AllocationInput, len(allocationPalette)+2)
		for i := range items {
			items[i] = AllocationInput{Label: "x", Weight: 1}
		}

		out := NormalizeAllocations(items)

		if out[0].Color != out[len(allocationPalette)].Color {
			t.Errorf("Expected color to repeat after palette exhaustion, got %q and %q",
				out[0].Color, out[len(allocationPalette)].Color)
		}
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		if out := NormalizeAllocations(nil); len(out) != 0 {
			t.Errorf("Expected empty slice, got %d items", len(out))
		}
	})
}
