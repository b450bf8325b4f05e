package game

import (
	"fmt"
	"math/rand"
)

// Generate places mineCount mines on a fresh board, none of them on
// firstClick or its neighbors, so the first reveal always cascades. The
// layout is a pure function of the board bounds, mineCount, firstClick and
// seed. The board is left untouched when an error is returned.
func Generate(board *Board, mineCount int, firstClick Coord, seed int64) error {
	if board.generated || board.numRevealed > 0 {
		return ErrAlreadyGenerated
	}
	if mineCount < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMineCount, mineCount)
	}
	if !board.bounds.Contains(firstClick) {
		return fmt.Errorf("%w: first click %v", ErrCoordinateOutOfBounds, firstClick)
	}

	safeZone := make(map[int]struct{}, maxNeighbors+1)
	safeZone[board.bounds.index(firstClick)] = struct{}{}
	for _, neighbor := range Neighbors(firstClick, board.bounds) {
		safeZone[board.bounds.index(neighbor)] = struct{}{}
	}

	// Store candidate cell indexes, to partially shuffle and fill mines
	candidates := make([]int, 0, len(board.cells)-len(safeZone))
	for idx := range board.cells {
		if _, isSafe := safeZone[idx]; !isSafe {
			candidates = append(candidates, idx)
		}
	}

	if mineCount > len(candidates) {
		return fmt.Errorf(
			"%w: %d mines do not fit in %d cells outside the safe zone around %v",
			ErrTooManyMines, mineCount, len(candidates), firstClick,
		)
	}

	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < mineCount; i++ {
		j := i + rng.Intn(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
		board.setMine(board.bounds.coordAt(candidates[i]))
	}

	board.generated = true
	board.computeAdjacency()
	return nil
}
