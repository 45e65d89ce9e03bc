package game

import "testing"

func TestGenerateNumbers_Layout(t *testing.T) {
	rng := NewSeededRand(42)

	for i := 0; i < 500; i++ {
		numbers := GenerateNumbers(rng)

		if len(numbers) != GridSize*GridSize {
			t.Fatalf("expected %d cells, got %d", GridSize*GridSize, len(numbers))
		}

		freeCount := 0
		for idx, n := range numbers {
			if n == FreeCell {
				freeCount++
				if idx != FreeCellIndex {
					t.Fatalf("free cell at index %d, want %d", idx, FreeCellIndex)
				}
			}
		}
		if freeCount != 1 {
			t.Fatalf("expected exactly one free cell, got %d", freeCount)
		}

		for col := 0; col < GridSize; col++ {
			low := col*ColumnSpan + 1
			high := col*ColumnSpan + ColumnSpan
			seen := make(map[int]bool)
			for row := 0; row < GridSize; row++ {
				n := numbers[col*GridSize+row]
				if n == FreeCell {
					continue
				}
				if n < low || n > high {
					t.Fatalf("column %d cell %d out of range [%d,%d]", col, n, low, high)
				}
				if seen[n] {
					t.Fatalf("duplicate %d in column %d", n, col)
				}
				seen[n] = true
			}
		}
	}
}

func TestGenerateNumbers_Deterministic(t *testing.T) {
	a := GenerateNumbers(NewSeededRand(7))
	b := GenerateNumbers(NewSeededRand(7))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different cards at index %d: %d vs %d", i, a[i], b[i])
		}
	}
}
