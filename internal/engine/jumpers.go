package engine

import "github.com/lgbarn/tilechess-go/internal/chess"

// Knight jumps one square on one axis and two on the other.
type Knight struct{ base }

// NewKnight creates an unplaced knight.
func NewKnight(color chess.Color) *Knight {
	return &Knight{base: newBase(chess.Knight, color)}
}

func (p *Knight) IsValidMove(b *chess.Board, startRow, startCol, endRow, endCol int) bool {
	return validMove(p, b, startRow, startCol, endRow, endCol, func(dr, dc int) bool {
		return jump(dr, dc, 1, 2)
	})
}

// VerifyPath is vacuous: knights jump.
func (p *Knight) VerifyPath(b *chess.Board, startRow, startCol, endRow, endCol int) bool {
	return true
}

func (p *Knight) CanMove(b *chess.Board) bool { return canMove(p, b, knightProbes) }

func (p *Knight) MovePiece(b *chess.Board, startRow, startCol, endRow, endCol int) bool {
	return movePiece(p, b, startRow, startCol, endRow, endCol)
}

func (p *Knight) Clone() chess.Piece {
	c := *p
	return &c
}

// Leaper jumps exactly two squares along a row or column.
type Leaper struct{ base }

// NewLeaper creates an unplaced leaper.
func NewLeaper(color chess.Color) *Leaper {
	return &Leaper{base: newBase(chess.Leaper, color)}
}

func (p *Leaper) IsValidMove(b *chess.Board, startRow, startCol, endRow, endCol int) bool {
	return validMove(p, b, startRow, startCol, endRow, endCol, func(dr, dc int) bool {
		return jump(dr, dc, 0, 2)
	})
}

func (p *Leaper) VerifyPath(b *chess.Board, startRow, startCol, endRow, endCol int) bool {
	return true
}

func (p *Leaper) CanMove(b *chess.Board) bool { return canMove(p, b, leaperProbes) }

func (p *Leaper) MovePiece(b *chess.Board, startRow, startCol, endRow, endCol int) bool {
	return movePiece(p, b, startRow, startCol, endRow, endCol)
}

func (p *Leaper) Clone() chess.Piece {
	c := *p
	return &c
}

// NightRider jumps one square on one axis and three on the other.
type NightRider struct{ base }

// NewNightRider creates an unplaced night rider.
func NewNightRider(color chess.Color) *NightRider {
	return &NightRider{base: newBase(chess.NightRider, color)}
}

func (p *NightRider) IsValidMove(b *chess.Board, startRow, startCol, endRow, endCol int) bool {
	return validMove(p, b, startRow, startCol, endRow, endCol, func(dr, dc int) bool {
		return jump(dr, dc, 1, 3)
	})
}

func (p *NightRider) VerifyPath(b *chess.Board, startRow, startCol, endRow, endCol int) bool {
	return true
}

func (p *NightRider) CanMove(b *chess.Board) bool { return canMove(p, b, nightRiderProbes) }

func (p *NightRider) MovePiece(b *chess.Board, startRow, startCol, endRow, endCol int) bool {
	return movePiece(p, b, startRow, startCol, endRow, endCol)
}

func (p *NightRider) Clone() chess.Piece {
	c := *p
	return &c
}

// jump reports whether the absolute deltas are (short, long) in either order.
func jump(dr, dc, short, long int) bool {
	r, c := abs(dr), abs(dc)
	return (r == short && c == long) || (r == long && c == short)
}
