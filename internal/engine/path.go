package engine

import "github.com/lgbarn/tilechess-go/internal/chess"

// isDiagonalClear checks that every square strictly between start and end
// on a diagonal is empty. Non-diagonal input is never clear.
func isDiagonalClear(b *chess.Board, startRow, startCol, endRow, endCol int) bool {
	if abs(endRow-startRow) != abs(endCol-startCol) {
		return false
	}
	return isLineClear(b, startRow, startCol, endRow, endCol)
}

// isStraightClear checks that every square strictly between start and end
// on a row or column is empty. Input that is not on one line is never clear.
func isStraightClear(b *chess.Board, startRow, startCol, endRow, endCol int) bool {
	if startRow != endRow && startCol != endCol {
		return false
	}
	return isLineClear(b, startRow, startCol, endRow, endCol)
}

func isLineClear(b *chess.Board, startRow, startCol, endRow, endCol int) bool {
	rowDir := sign(endRow - startRow)
	colDir := sign(endCol - startCol)

	row := startRow + rowDir
	col := startCol + colDir

	for row != endRow || col != endCol {
		if !b.InBounds(row, col) {
			return false
		}
		if b.Occupied(row, col) {
			return false
		}
		row += rowDir
		col += colDir
	}

	return true
}

// abs and sign work on grid deltas.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
