package game

// winPatterns are the twelve winning index groups over the flat card layout:
// one per column, one per row, plus the two diagonals. Built from the grid
// constants rather than hardcoded literals.
var winPatterns = buildWinPatterns()

func buildWinPatterns() [][]int {
	patterns := make([][]int, 0, 2*GridSize+2)

	// columns (consecutive cells in column-major storage)
	for col := 0; col < GridSize; col++ {
		p := make([]int, 0, GridSize)
		for row := 0; row < GridSize; row++ {
			p = append(p, col*GridSize+row)
		}
		patterns = append(patterns, p)
	}

	// rows
	for row := 0; row < GridSize; row++ {
		p := make([]int, 0, GridSize)
		for col := 0; col < GridSize; col++ {
			p = append(p, col*GridSize+row)
		}
		patterns = append(patterns, p)
	}

	// diagonals
	diag1 := make([]int, 0, GridSize)
	diag2 := make([]int, 0, GridSize)
	for i := 0; i < GridSize; i++ {
		diag1 = append(diag1, i*GridSize+i)
		diag2 = append(diag2, i*GridSize+(GridSize-1-i))
	}
	patterns = append(patterns, diag1, diag2)

	return patterns
}

// HasBingo reports whether any winning pattern is fully covered: each of its
// cells either holds the free marker or a number already drawn.
func HasBingo(numbers []int, drawn []int) bool {
	drawnSet := make(map[int]bool, len(drawn))
	for _, n := range drawn {
		drawnSet[n] = true
	}

	for _, pattern := range winPatterns {
		covered := true
		for _, idx := range pattern {
			n := numbers[idx]
			if n != FreeCell && !drawnSet[n] {
				covered = false
				break
			}
		}
		if covered {
			return true
		}
	}
	return false
}
