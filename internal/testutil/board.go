package testutil

import (
	"fmt"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/tilechess-go/internal/chess"
)

// Placement puts Piece on (Row, Col).
type Placement struct {
	Piece chess.Piece
	Row   int
	Col   int
}

// At is shorthand for a Placement.
func At(p chess.Piece, row, col int) Placement {
	return Placement{Piece: p, Row: row, Col: col}
}

// NewBoard returns an empty board holding only the given placements.
func NewBoard(placements ...Placement) *chess.Board {
	b := chess.NewBoard()
	for _, pl := range placements {
		b.Place(pl.Piece, pl.Row, pl.Col)
	}
	return b
}

// Snapshot is a comparable record of a board's tiles, rosters and counts.
type Snapshot struct {
	Tiles      [chess.BoardSize][chess.BoardSize]string
	Black      []string
	White      []string
	BlackCount int
	WhiteCount int
	ToMove     string
}

// TakeSnapshot records b. Roster entries are "code@row,col", sorted.
func TakeSnapshot(b *chess.Board) Snapshot {
	var s Snapshot
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if p := b.Piece(row, col); p != nil {
				s.Tiles[row][col] = chess.Code(p)
			}
		}
	}
	roster := func(color chess.Color) []string {
		var out []string
		for _, p := range b.Pieces(color) {
			out = append(out, fmt.Sprintf("%s@%d,%d", chess.Code(p), p.Row(), p.Col()))
		}
		slices.Sort(out)
		return out
	}
	s.Black = roster(chess.Black)
	s.White = roster(chess.White)
	s.BlackCount = b.Count(chess.Black)
	s.WhiteCount = b.Count(chess.White)
	s.ToMove = b.CurrentPlayer().Color().String()
	return s
}

// AssertUnchanged fails if b no longer matches before.
func AssertUnchanged(t *testing.T, before Snapshot, b *chess.Board, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(before, TakeSnapshot(b)); diff != "" {
		report(t, fmt.Sprintf("board changed (-before +after):\n%s", diff), msgAndArgs...)
	}
}
