package engine

import "github.com/lgbarn/tilechess-go/internal/chess"

// Pawn moves toward the opponent's back rank: black toward increasing rows,
// white toward decreasing rows. It advances one square, or two from its home
// rank, onto empty squares only, and captures one square diagonally forward.
type Pawn struct {
	base
	hasMoved bool
}

// NewPawn creates an unplaced pawn.
func NewPawn(color chess.Color) *Pawn {
	return &Pawn{base: newBase(chess.Pawn, color)}
}

// HasMoved reports whether the pawn has completed a move.
func (p *Pawn) HasMoved() bool { return p.hasMoved }

// direction returns the row delta of one forward step.
func (p *Pawn) direction() int {
	if p.color == chess.Black {
		return 1
	}
	return -1
}

func (p *Pawn) homeRank() int {
	if p.color == chess.Black {
		return chess.BlackPawnRank
	}
	return chess.WhitePawnRank
}

// IsValidMove implements chess.Piece.
func (p *Pawn) IsValidMove(b *chess.Board, startRow, startCol, endRow, endCol int) bool {
	return validMove(p, b, startRow, startCol, endRow, endCol, func(dr, dc int) bool {
		dir := p.direction()
		switch {
		case dc == 0 && dr == dir:
			return !b.Occupied(endRow, endCol)
		case dc == 0 && dr == 2*dir:
			return startRow == p.homeRank() && !b.Occupied(endRow, endCol)
		case abs(dc) == 1 && dr == dir:
			return targetIsEnemy(b, p.color, endRow, endCol)
		}
		return false
	})
}

// VerifyPath checks the square passed over by a two-square advance.
// Diagonal captures have no intervening squares.
func (p *Pawn) VerifyPath(b *chess.Board, startRow, startCol, endRow, endCol int) bool {
	if startCol != endCol {
		return true
	}
	return isStraightClear(b, startRow, startCol, endRow, endCol)
}

// CanMove probes the six squares one row away in either direction.
func (p *Pawn) CanMove(b *chess.Board) bool {
	return canMove(p, b, []offset{
		{-1, -1}, {-1, 0}, {-1, 1},
		{1, -1}, {1, 0}, {1, 1},
	})
}

// MovePiece implements chess.Piece. The first completed move marks the pawn
// as moved.
func (p *Pawn) MovePiece(b *chess.Board, startRow, startCol, endRow, endCol int) bool {
	if !movePiece(p, b, startRow, startCol, endRow, endCol) {
		return false
	}
	p.hasMoved = true
	return true
}

// Clone implements chess.Piece.
func (p *Pawn) Clone() chess.Piece {
	c := *p
	return &c
}
