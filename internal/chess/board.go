package chess

import (
	"slices"
	"strings"
)

// Board owns the 8x8 tile grid, one roster of live pieces per color, the
// live piece counts and the two players.
//
// A Board is not safe for concurrent use. Check and mate detection mutate
// it transiently, so a caller must hold the board exclusively for the whole
// duration of any query or command.
type Board struct {
	tiles [BoardSize][BoardSize]*Tile

	blackPieces []Piece
	whitePieces []Piece
	blackCount  int
	whiteCount  int

	blackPlayer *Player
	whitePlayer *Player
}

// NewBoard creates an empty board with white to move.
func NewBoard() *Board {
	b := &Board{
		blackPlayer: NewPlayer(Black),
		whitePlayer: NewPlayer(White),
	}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			b.tiles[row][col] = NewTile(row, col)
		}
	}
	return b
}

// Size returns the number of rows (and columns) on the board.
func (b *Board) Size() int {
	return BoardSize
}

// InBounds reports whether (row, col) lies on the board.
func (b *Board) InBounds(row, col int) bool {
	return Pos{Row: row, Col: col}.InBounds()
}

// Tile returns the tile at (row, col), or nil when off the board.
func (b *Board) Tile(row, col int) *Tile {
	if !b.InBounds(row, col) {
		return nil
	}
	return b.tiles[row][col]
}

// Piece returns the piece at (row, col), or nil.
func (b *Board) Piece(row, col int) Piece {
	t := b.Tile(row, col)
	if t == nil {
		return nil
	}
	return t.Piece()
}

// Occupied reports whether the tile at (row, col) holds a piece.
func (b *Board) Occupied(row, col int) bool {
	t := b.Tile(row, col)
	return t != nil && t.Occupied()
}

// Pieces returns a copy of the roster for color.
func (b *Board) Pieces(color Color) []Piece {
	if color == White {
		return slices.Clone(b.whitePieces)
	}
	return slices.Clone(b.blackPieces)
}

// Count returns the live piece count for color.
func (b *Board) Count(color Color) int {
	if color == White {
		return b.whiteCount
	}
	return b.blackCount
}

// King returns color's king from its roster, or nil.
func (b *Board) King(color Color) Piece {
	roster := b.blackPieces
	if color == White {
		roster = b.whitePieces
	}
	for _, p := range roster {
		if p.Kind() == King {
			return p
		}
	}
	return nil
}

// Place puts p on (row, col) and enrolls it in its color's roster. Any piece
// already there is evicted first.
func (b *Board) Place(p Piece, row, col int) {
	t := b.Tile(row, col)
	if t == nil || p == nil {
		return
	}
	if t.Occupied() {
		b.Evict(row, col)
	}
	t.SetPiece(p)
	b.enroll(p)
}

// Evict removes the piece at (row, col) from both the tile and its roster.
func (b *Board) Evict(row, col int) Piece {
	t := b.Tile(row, col)
	if t == nil || !t.Occupied() {
		return nil
	}
	p := t.Piece()
	b.DecreasePieceCount(t)
	t.RemovePiece()
	return p
}

// DecreasePieceCount evicts the tile's piece from its owner's roster and
// decrements that color's live count. The tile itself is left untouched.
func (b *Board) DecreasePieceCount(t *Tile) {
	p := t.Piece()
	if p == nil {
		return
	}
	roster, count := &b.blackPieces, &b.blackCount
	if p.Color() == White {
		roster, count = &b.whitePieces, &b.whiteCount
	}
	if i := slices.Index(*roster, p); i >= 0 {
		*roster = slices.Delete(*roster, i, i+1)
		*count--
	}
}

// Relocate moves the piece on the start tile to the end tile, capturing any
// piece found there. Capture, placement and vacating the start tile happen
// together; no caller observes a partial state. Legality is the caller's
// concern.
func (b *Board) Relocate(startRow, startCol, endRow, endCol int) {
	from := b.Tile(startRow, startCol)
	to := b.Tile(endRow, endCol)
	if from == nil || to == nil || !from.Occupied() || from == to {
		return
	}
	moving := from.Piece()
	if to.Occupied() {
		b.DecreasePieceCount(to)
		to.RemovePiece()
	}
	to.SetPiece(moving)
	from.RemovePiece()
}

// Lift empties the tile at (row, col) without touching the rosters and
// returns a func that puts the same piece back. Hypothetical queries defer
// the restore so every exit path leaves the board as it found it.
func (b *Board) Lift(row, col int) (restore func()) {
	t := b.Tile(row, col)
	if t == nil || !t.Occupied() {
		return func() {}
	}
	p := t.Piece()
	t.RemovePiece()
	return func() { t.SetPiece(p) }
}

func (b *Board) enroll(p Piece) {
	roster, count := &b.blackPieces, &b.blackCount
	if p.Color() == White {
		roster, count = &b.whitePieces, &b.whiteCount
	}
	if slices.Contains(*roster, p) {
		return
	}
	*roster = append(*roster, p)
	*count++
}

// Player returns the player for color.
func (b *Board) Player(color Color) *Player {
	if color == White {
		return b.whitePlayer
	}
	return b.blackPlayer
}

// CurrentPlayer returns the player whose turn it is.
func (b *Board) CurrentPlayer() *Player {
	if b.blackPlayer.HasTurn() {
		return b.blackPlayer
	}
	return b.whitePlayer
}

// UpdateCurrentPlayer passes the turn to the other player.
func (b *Board) UpdateCurrentPlayer() {
	b.blackPlayer.UpdateTurn()
	b.whitePlayer.UpdateTurn()
}

// SetToMove gives the turn to color.
func (b *Board) SetToMove(color Color) {
	if b.CurrentPlayer().Color() != color {
		b.UpdateCurrentPlayer()
	}
}

// Clone returns a deep copy: fresh tiles, cloned pieces, rebuilt rosters
// and the same turn. Roster order is preserved.
func (b *Board) Clone() *Board {
	nb := NewBoard()
	copyRoster := func(roster []Piece) {
		for _, p := range roster {
			t := b.Tile(p.Row(), p.Col())
			if t == nil || t.Piece() != p {
				continue
			}
			nb.Place(p.Clone(), p.Row(), p.Col())
		}
	}
	copyRoster(b.blackPieces)
	copyRoster(b.whitePieces)
	nb.SetToMove(b.CurrentPlayer().Color())
	return nb
}

// Layout renders the board one row per line: each occupied tile as its
// 2-letter code followed by a space, each empty tile as " + ". A blank line
// closes the dump. It is a debugging aid, not a stable format.
func (b *Board) Layout() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			t := b.tiles[row][col]
			if t.Occupied() {
				sb.WriteString(Code(t.Piece()))
				sb.WriteByte(' ')
			} else {
				sb.WriteString(" + ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	return sb.String()
}

// String implements fmt.Stringer with the layout dump.
func (b *Board) String() string {
	return b.Layout()
}
