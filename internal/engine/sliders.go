package engine

import "github.com/lgbarn/tilechess-go/internal/chess"

// Bishop slides any distance along a diagonal.
type Bishop struct{ base }

// NewBishop creates an unplaced bishop.
func NewBishop(color chess.Color) *Bishop {
	return &Bishop{base: newBase(chess.Bishop, color)}
}

func (p *Bishop) IsValidMove(b *chess.Board, startRow, startCol, endRow, endCol int) bool {
	return validMove(p, b, startRow, startCol, endRow, endCol, diagonal)
}

func (p *Bishop) VerifyPath(b *chess.Board, startRow, startCol, endRow, endCol int) bool {
	return isDiagonalClear(b, startRow, startCol, endRow, endCol)
}

func (p *Bishop) CanMove(b *chess.Board) bool { return canMove(p, b, diagonalProbes) }

func (p *Bishop) MovePiece(b *chess.Board, startRow, startCol, endRow, endCol int) bool {
	return movePiece(p, b, startRow, startCol, endRow, endCol)
}

func (p *Bishop) Clone() chess.Piece {
	c := *p
	return &c
}

// Rook slides any distance along a row or column.
type Rook struct{ base }

// NewRook creates an unplaced rook.
func NewRook(color chess.Color) *Rook {
	return &Rook{base: newBase(chess.Rook, color)}
}

func (p *Rook) IsValidMove(b *chess.Board, startRow, startCol, endRow, endCol int) bool {
	return validMove(p, b, startRow, startCol, endRow, endCol, straight)
}

func (p *Rook) VerifyPath(b *chess.Board, startRow, startCol, endRow, endCol int) bool {
	return isStraightClear(b, startRow, startCol, endRow, endCol)
}

func (p *Rook) CanMove(b *chess.Board) bool { return canMove(p, b, orthogonalProbes) }

func (p *Rook) MovePiece(b *chess.Board, startRow, startCol, endRow, endCol int) bool {
	return movePiece(p, b, startRow, startCol, endRow, endCol)
}

func (p *Rook) Clone() chess.Piece {
	c := *p
	return &c
}

// Queen moves as a bishop or a rook.
type Queen struct{ base }

// NewQueen creates an unplaced queen.
func NewQueen(color chess.Color) *Queen {
	return &Queen{base: newBase(chess.Queen, color)}
}

func (p *Queen) IsValidMove(b *chess.Board, startRow, startCol, endRow, endCol int) bool {
	return validMove(p, b, startRow, startCol, endRow, endCol, func(dr, dc int) bool {
		return diagonal(dr, dc) || straight(dr, dc)
	})
}

// VerifyPath dispatches on the shape of the move.
func (p *Queen) VerifyPath(b *chess.Board, startRow, startCol, endRow, endCol int) bool {
	if startRow == endRow || startCol == endCol {
		return isStraightClear(b, startRow, startCol, endRow, endCol)
	}
	return isDiagonalClear(b, startRow, startCol, endRow, endCol)
}

func (p *Queen) CanMove(b *chess.Board) bool { return canMove(p, b, neighbourProbes) }

func (p *Queen) MovePiece(b *chess.Board, startRow, startCol, endRow, endCol int) bool {
	return movePiece(p, b, startRow, startCol, endRow, endCol)
}

func (p *Queen) Clone() chess.Piece {
	c := *p
	return &c
}

// King steps one square in any direction.
type King struct{ base }

// NewKing creates an unplaced king.
func NewKing(color chess.Color) *King {
	return &King{base: newBase(chess.King, color)}
}

func (p *King) IsValidMove(b *chess.Board, startRow, startCol, endRow, endCol int) bool {
	return validMove(p, b, startRow, startCol, endRow, endCol, func(dr, dc int) bool {
		return max(abs(dr), abs(dc)) == 1
	})
}

// VerifyPath is vacuous: a king only reaches adjacent squares.
func (p *King) VerifyPath(b *chess.Board, startRow, startCol, endRow, endCol int) bool {
	return true
}

func (p *King) CanMove(b *chess.Board) bool { return canMove(p, b, neighbourProbes) }

func (p *King) MovePiece(b *chess.Board, startRow, startCol, endRow, endCol int) bool {
	return movePiece(p, b, startRow, startCol, endRow, endCol)
}

func (p *King) Clone() chess.Piece {
	c := *p
	return &c
}

func diagonal(dr, dc int) bool {
	return dr != 0 && abs(dr) == abs(dc)
}

func straight(dr, dc int) bool {
	return (dr == 0) != (dc == 0)
}
