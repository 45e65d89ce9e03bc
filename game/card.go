package game

import "github.com/google/uuid"

// Grid shape of a card. The win patterns and the free-cell position are all
// derived from these, so a different grid only needs new constants here.
const (
	GridSize   = 5                       // cells per row/column
	ColumnSpan = 15                      // candidate numbers per column
	BallCount  = GridSize * ColumnSpan   // 75
	FreeCell   = 0                       // marker stored in the free cell
	freeColumn = GridSize / 2            // middle column carries the free space
	freeRow    = GridSize / 2            // at its vertical center
	// FreeCellIndex is the flat position of the free space (12 on a 5x5 grid).
	FreeCellIndex = freeColumn*GridSize + freeRow
)

// Card is one player's grid in one room. Numbers are stored column-major
// (B, I, N, G, O), 25 cells with the free space at FreeCellIndex.
// Immutable after creation except for IsWinner, set at settlement.
type Card struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	RoomID   string `json:"room_id"`
	Numbers  []int  `json:"numbers"`
	IsWinner bool   `json:"is_winner"`
}

func newCard(rng Rand, userID, roomID string) *Card {
	return &Card{
		ID:      uuid.NewString(),
		UserID:  userID,
		RoomID:  roomID,
		Numbers: GenerateNumbers(rng),
	}
}

// GenerateNumbers produces the 25 cells of a fresh card. Column k draws
// distinct values from [15k+1, 15k+15]; the middle column draws one fewer and
// gets the free marker at its center, keeping the others in draw order.
// Cards are not globally unique and don't need to be.
func GenerateNumbers(rng Rand) []int {
	numbers := make([]int, 0, GridSize*GridSize)
	for col := 0; col < GridSize; col++ {
		low := col*ColumnSpan + 1
		count := GridSize
		if col == freeColumn {
			count--
		}
		drawn := sampleColumn(rng, low, count)
		if col == freeColumn {
			cells := make([]int, 0, GridSize)
			cells = append(cells, drawn[:freeRow]...)
			cells = append(cells, FreeCell)
			cells = append(cells, drawn[freeRow:]...)
			drawn = cells
		}
		numbers = append(numbers, drawn...)
	}
	return numbers
}

// sampleColumn draws count distinct values uniformly from [low, low+ColumnSpan-1].
func sampleColumn(rng Rand, low, count int) []int {
	pool := make([]int, ColumnSpan)
	for i := range pool {
		pool[i] = low + i
	}
	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		j := rng.Intn(len(pool))
		out = append(out, pool[j])
		pool[j] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]
	}
	return out
}
