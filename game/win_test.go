package game

import "testing"

// fixedCardNumbers lays out a known card, column-major:
// B: 1..5, I: 16..20, N: 31,32,free,34,35, G: 46..50, O: 61..65.
func fixedCardNumbers() []int {
	return []int{
		1, 2, 3, 4, 5,
		16, 17, 18, 19, 20,
		31, 32, FreeCell, 34, 35,
		46, 47, 48, 49, 50,
		61, 62, 63, 64, 65,
	}
}

func TestHasBingo(t *testing.T) {
	cases := []struct {
		name  string
		drawn []int
		want  bool
	}{
		{"no draws", nil, false},
		{"column complete", []int{1, 2, 3, 4, 5}, true},
		{"column missing one", []int{1, 2, 3, 4}, false},
		{"row complete", []int{1, 16, 31, 46, 61}, true},
		{"diagonal through free cell", []int{1, 17, 49, 65}, true},
		{"anti-diagonal through free cell", []int{5, 19, 47, 61}, true},
		{"scattered non-win", []int{1, 17, 33, 49, 62, 70}, false},
		{"four corners is not a pattern", []int{1, 5, 61, 65}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HasBingo(fixedCardNumbers(), tc.drawn); got != tc.want {
				t.Fatalf("HasBingo(%v) = %v, want %v", tc.drawn, got, tc.want)
			}
		})
	}
}

func TestWinPatterns_Count(t *testing.T) {
	if len(winPatterns) != 2*GridSize+2 {
		t.Fatalf("expected %d patterns, got %d", 2*GridSize+2, len(winPatterns))
	}
	for _, p := range winPatterns {
		if len(p) != GridSize {
			t.Fatalf("pattern %v has %d cells, want %d", p, len(p), GridSize)
		}
	}
}
