package engine

import (
	"strings"

	"github.com/lgbarn/tilechess-go/internal/chess"
	"github.com/lgbarn/tilechess-go/internal/errors"
)

// Layout selects a starting position.
type Layout int

const (
	LayoutStandard Layout = iota
	LayoutSpecial
)

func (l Layout) String() string {
	if l == LayoutSpecial {
		return "special"
	}
	return "standard"
}

// ParseLayout converts "standard" or "special" (any case) to a Layout.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard", "":
		return LayoutStandard, nil
	case "special":
		return LayoutSpecial, nil
	}
	return LayoutStandard, errors.Wrapf(errors.ErrInvalidLayout, "%q", s)
}

// backRank is the piece order on both back ranks, column 0 first.
var backRank = [chess.BoardSize]chess.Kind{
	chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
	chess.King, chess.Bishop, chess.Knight, chess.Rook,
}

// SetupStandard places the standard starting position on b.
func SetupStandard(b *chess.Board) {
	for col := 0; col < chess.BoardSize; col++ {
		b.Place(NewPiece(backRank[col], chess.Black), chess.BlackBackRank, col)
		b.Place(NewPawn(chess.Black), chess.BlackPawnRank, col)
		b.Place(NewPawn(chess.White), chess.WhitePawnRank, col)
		b.Place(NewPiece(backRank[col], chess.White), chess.WhiteBackRank, col)
	}
}

// SetupSpecial places the standard position, then swaps the outer pawns of
// each pawn row for a Leaper and a NightRider.
func SetupSpecial(b *chess.Board) {
	SetupStandard(b)
	last := chess.BoardSize - 1
	b.Place(NewLeaper(chess.Black), chess.BlackPawnRank, 0)
	b.Place(NewNightRider(chess.Black), chess.BlackPawnRank, last)
	b.Place(NewNightRider(chess.White), chess.WhitePawnRank, 0)
	b.Place(NewLeaper(chess.White), chess.WhitePawnRank, last)
}

// NewStandardBoard returns a board in the standard position, white to move.
func NewStandardBoard() *chess.Board {
	b := chess.NewBoard()
	SetupStandard(b)
	return b
}

// NewSpecialBoard returns a board in the special position, white to move.
func NewSpecialBoard() *chess.Board {
	b := chess.NewBoard()
	SetupSpecial(b)
	return b
}

// NewLayoutBoard returns a fresh board for l.
func NewLayoutBoard(l Layout) *chess.Board {
	if l == LayoutSpecial {
		return NewSpecialBoard()
	}
	return NewStandardBoard()
}
