package chess

// Tile is a single grid cell. It is a passive container: the tile a piece
// sits on is the source of truth for that piece's coordinates.
type Tile struct {
	row      int
	col      int
	occupied bool
	piece    Piece
}

// NewTile creates an empty tile at the given coordinates.
func NewTile(row, col int) *Tile {
	return &Tile{row: row, col: col}
}

// Row returns the tile's row.
func (t *Tile) Row() int { return t.row }

// Col returns the tile's column.
func (t *Tile) Col() int { return t.col }

// Pos returns the tile's coordinates.
func (t *Tile) Pos() Pos { return Pos{Row: t.row, Col: t.col} }

// Occupied reports whether a piece is bound to the tile.
func (t *Tile) Occupied() bool { return t.occupied }

// Piece returns the bound piece, or nil.
func (t *Tile) Piece() Piece { return t.piece }

// Light reports the display color of the tile.
func (t *Tile) Light() bool { return (t.row+t.col)%2 == 0 }

// SetPiece binds p to the tile and moves p's coordinates onto it.
func (t *Tile) SetPiece(p Piece) {
	if p == nil {
		t.RemovePiece()
		return
	}
	t.piece = p
	t.occupied = true
	p.SetLocation(t.row, t.col)
}

// RemovePiece clears the tile. The removed piece keeps its last coordinates.
func (t *Tile) RemovePiece() {
	t.piece = nil
	t.occupied = false
}
