package chess

// Player holds the turn for one color. Exactly one of a board's two players
// has the turn at any time.
type Player struct {
	color Color
	turn  bool
}

// NewPlayer creates a player. White starts with the turn.
func NewPlayer(color Color) *Player {
	return &Player{color: color, turn: color == White}
}

// Color returns the player's color.
func (p *Player) Color() Color { return p.color }

// HasTurn reports whether it is this player's turn.
func (p *Player) HasTurn() bool { return p.turn }

// UpdateTurn flips the player's turn flag.
func (p *Player) UpdateTurn() { p.turn = !p.turn }

// MovePiece asks piece to move to (endRow, endCol). Nil pieces and pieces of
// the other color are ignored. It reports whether the piece relocated; the
// turn is not advanced here.
func (p *Player) MovePiece(b *Board, piece Piece, endRow, endCol int) bool {
	if piece == nil || piece.Color() != p.color {
		return false
	}
	return piece.MovePiece(b, piece.Row(), piece.Col(), endRow, endCol)
}
