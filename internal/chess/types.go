// Package chess provides the board data model: colors, piece kinds, tiles,
// the board with its two rosters, and the players that take turns on it.
package chess

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/tilechess-go/internal/errors"
)

// Color is the side a piece or player belongs to.
type Color int

const (
	Black Color = iota
	White
)

// String returns the upper-case color token.
func (c Color) String() string {
	switch c {
	case White:
		return "WHITE"
	case Black:
		return "BLACK"
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

// Valid reports whether c is one of the two recognized colors.
func (c Color) Valid() bool {
	return c == White || c == Black
}

// Opposite returns the other color.
func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

// Letter returns the first letter of the dump code for a piece of this color.
func (c Color) Letter() byte {
	if c == White {
		return 'W'
	}
	return 'B'
}

// ParseColor converts "white"/"black" (any case) to a Color.
func ParseColor(s string) (Color, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "WHITE", "W":
		return White, nil
	case "BLACK", "B":
		return Black, nil
	}
	return Black, errors.Wrapf(errors.ErrInvalidColor, "%q", s)
}

// Kind identifies a piece variant. It is fixed when the piece is built.
type Kind int

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	Leaper
	NightRider
)

// String returns the name of the kind.
func (k Kind) String() string {
	names := []string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King", "Leaper", "NightRider"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the second letter of the dump code for the kind.
func (k Kind) Letter() byte {
	letters := []byte{'P', 'N', 'B', 'R', 'Q', 'K', 'L', 'X'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Constants for board dimensions and home ranks.
const (
	BoardSize = 8

	BlackBackRank = 0
	BlackPawnRank = 1
	WhitePawnRank = BoardSize - 2
	WhiteBackRank = BoardSize - 1
)

// Pos is a (row, col) coordinate on the grid. Row 0 is black's back rank.
type Pos struct {
	Row int
	Col int
}

// InBounds reports whether the position lies on an 8x8 board.
func (p Pos) InBounds() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// String renders the position as "row,col".
func (p Pos) String() string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}

// Algebraic renders the position as a file letter and rank digit (row 0 is rank 8).
func (p Pos) Algebraic() string {
	if !p.InBounds() {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+p.Col, BoardSize-p.Row)
}

// ParsePos accepts either "row,col" or an algebraic square such as "e2".
func ParsePos(s string) (Pos, error) {
	s = strings.TrimSpace(s)
	var p Pos
	if strings.Contains(s, ",") {
		row, col, _ := strings.Cut(s, ",")
		r, err := strconv.Atoi(strings.TrimSpace(row))
		if err != nil {
			return p, errors.Wrapf(errors.ErrInvalidSquare, "%q", s)
		}
		c, err := strconv.Atoi(strings.TrimSpace(col))
		if err != nil {
			return p, errors.Wrapf(errors.ErrInvalidSquare, "%q", s)
		}
		p = Pos{Row: r, Col: c}
	} else {
		if len(s) != 2 {
			return p, errors.Wrapf(errors.ErrInvalidSquare, "%q", s)
		}
		file := strings.ToLower(s)[0]
		rank := s[1]
		if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
			return p, errors.Wrapf(errors.ErrInvalidSquare, "%q", s)
		}
		p = Pos{Row: BoardSize - int(rank-'0'), Col: int(file - 'a')}
	}
	if !p.InBounds() {
		return p, errors.Wrapf(errors.ErrInvalidSquare, "%q is off the board", s)
	}
	return p, nil
}

// Piece is the capability set shared by every piece variant. Movement
// geometry differs per variant; the rest of the contract is uniform.
type Piece interface {
	Kind() Kind
	Color() Color
	Row() int
	Col() int

	// SetLocation records the tile coordinates. Only Tile.SetPiece calls it.
	SetLocation(row, col int)

	// IsValidMove is the legality oracle: bounds, ally occupancy, geometry
	// and path, checked in that order.
	IsValidMove(b *Board, startRow, startCol, endRow, endCol int) bool

	// VerifyPath reports whether every square strictly between start and
	// end is empty. Jumping variants always return true.
	VerifyPath(b *Board, startRow, startCol, endRow, endCol int) bool

	// CanMove reports whether at least one probe square is a legal destination.
	CanMove(b *Board) bool

	// MovePiece applies the move when legal and reports whether it happened.
	MovePiece(b *Board, startRow, startCol, endRow, endCol int) bool

	// Clone returns a copy carrying the same coordinates and per-piece state.
	Clone() Piece
}

// Code returns the 2-letter dump code for a piece, e.g. "WK" or "BX".
func Code(p Piece) string {
	return string([]byte{p.Color().Letter(), p.Kind().Letter()})
}
