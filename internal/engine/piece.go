// Package engine implements the piece variants and the rules that run on a
// chess.Board: move legality, attacks, check, checkmate and stalemate, the
// starting layouts, and FEN interchange.
package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/lgbarn/tilechess-go/internal/chess"
)

// offset is a (row, col) delta.
type offset struct{ dr, dc int }

// Probe sets used by CanMove.
var (
	neighbourProbes = []offset{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}
	diagonalProbes   = []offset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	orthogonalProbes = []offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	knightProbes     = []offset{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
		{1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
	leaperProbes     = []offset{{-2, 0}, {2, 0}, {0, -2}, {0, 2}}
	nightRiderProbes = []offset{
		{-3, -1}, {-3, 1}, {-1, -3}, {-1, 3},
		{1, -3}, {1, 3}, {3, -1}, {3, 1},
	}
)

// base carries the state every variant shares. Coordinates are only ever
// written by Tile.SetPiece through SetLocation.
type base struct {
	kind  chess.Kind
	color chess.Color
	row   int
	col   int
}

func newBase(kind chess.Kind, color chess.Color) base {
	return base{kind: kind, color: color, row: -1, col: -1}
}

func (p *base) Kind() chess.Kind   { return p.kind }
func (p *base) Color() chess.Color { return p.color }
func (p *base) Row() int           { return p.row }
func (p *base) Col() int           { return p.col }

func (p *base) SetLocation(row, col int) {
	p.row = row
	p.col = col
}

// targetIsAlly reports whether (row, col) holds a piece of color.
func targetIsAlly(b *chess.Board, color chess.Color, row, col int) bool {
	other := b.Piece(row, col)
	return other != nil && other.Color() == color
}

// targetIsEnemy reports whether (row, col) holds a piece of the other color.
func targetIsEnemy(b *chess.Board, color chess.Color, row, col int) bool {
	other := b.Piece(row, col)
	return other != nil && other.Color() != color
}

// validMove runs the shared legality pipeline: bounds, ally occupancy,
// geometry, path. The first failing stage decides.
func validMove(p chess.Piece, b *chess.Board, startRow, startCol, endRow, endCol int, geometry func(dr, dc int) bool) bool {
	if !b.InBounds(endRow, endCol) {
		return false
	}
	if targetIsAlly(b, p.Color(), endRow, endCol) {
		return false
	}
	if !geometry(endRow-startRow, endCol-startCol) {
		return false
	}
	return p.VerifyPath(b, startRow, startCol, endRow, endCol)
}

// canMove reports whether any probe from the piece's square is legal.
func canMove(p chess.Piece, b *chess.Board, probes []offset) bool {
	row, col := p.Row(), p.Col()
	for _, o := range probes {
		if p.IsValidMove(b, row, col, row+o.dr, col+o.dc) {
			return true
		}
	}
	return false
}

// movePiece commits a legal move as one unit. The start tile must hold p.
func movePiece(p chess.Piece, b *chess.Board, startRow, startCol, endRow, endCol int) bool {
	if b.Piece(startRow, startCol) != p {
		logrus.Tracef("%s not on %d,%d", chess.Code(p), startRow, startCol)
		return false
	}
	if !p.IsValidMove(b, startRow, startCol, endRow, endCol) {
		logrus.Tracef("%s %d,%d -> %d,%d rejected", chess.Code(p), startRow, startCol, endRow, endCol)
		return false
	}
	b.Relocate(startRow, startCol, endRow, endCol)
	return true
}

// NewPiece constructs an unplaced piece of the given kind and color.
func NewPiece(kind chess.Kind, color chess.Color) chess.Piece {
	switch kind {
	case chess.Pawn:
		return NewPawn(color)
	case chess.Knight:
		return NewKnight(color)
	case chess.Bishop:
		return NewBishop(color)
	case chess.Rook:
		return NewRook(color)
	case chess.Queen:
		return NewQueen(color)
	case chess.King:
		return NewKing(color)
	case chess.Leaper:
		return NewLeaper(color)
	case chess.NightRider:
		return NewNightRider(color)
	}
	return nil
}
