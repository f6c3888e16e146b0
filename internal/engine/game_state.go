package engine

import (
	"slices"

	"github.com/lgbarn/tilechess-go/internal/chess"
)

// kingMobility returns the king's escape squares and its block tiles. The
// caller must have lifted the king off its tile so it does not shadow squares
// behind it.
func kingMobility(b *chess.Board, king chess.Piece, opponent chess.Color) (escapes, blocks []chess.Pos) {
	row, col := king.Row(), king.Col()
	for _, o := range neighbourProbes {
		r, c := row+o.dr, col+o.dc
		if !b.InBounds(r, c) || b.Occupied(r, c) {
			continue
		}
		sq := chess.Pos{Row: r, Col: c}
		if IsSquareAttacked(b, r, c, opponent) {
			blocks = append(blocks, sq)
			continue
		}
		escapes = append(escapes, sq)
	}
	return escapes, blocks
}

// resolveDefenders folds back every block tile a friendly non-king piece can
// reach and drops every attacker some friendly piece can capture.
func resolveDefenders(b *chess.Board, user chess.Color, escapes, blocks, attackers []chess.Pos) ([]chess.Pos, []chess.Pos) {
	defenders := b.Pieces(user)
	reaches := func(p chess.Piece, sq chess.Pos) bool {
		return p.IsValidMove(b, p.Row(), p.Col(), sq.Row, sq.Col)
	}

	for _, sq := range blocks {
		for _, p := range defenders {
			if p.Kind() != chess.King && reaches(p, sq) {
				escapes = append(escapes, sq)
				break
			}
		}
	}

	attackers = slices.DeleteFunc(slices.Clone(attackers), func(sq chess.Pos) bool {
		for _, p := range defenders {
			if reaches(p, sq) {
				return true
			}
		}
		return false
	})
	return escapes, attackers
}

// Checkmate returns true if user's king is in check, has no escape square,
// and at least one attacker can be neither blocked nor captured.
func Checkmate(b *chess.Board, user, opponent chess.Color) bool {
	if !Check(b, user, opponent) {
		return false
	}
	king := b.King(user)
	// Attackers are taken with the king on its tile: a pawn only attacks
	// an occupied square.
	attackers := AttackingTiles(b, opponent, king.Row(), king.Col())

	// The king stays off the board until the verdict, so defenders may
	// move through its square.
	restore := b.Lift(king.Row(), king.Col())
	defer restore()

	escapes, blocks := kingMobility(b, king, opponent)
	escapes, attackers = resolveDefenders(b, user, escapes, blocks, attackers)
	return len(escapes) == 0 && len(attackers) > 0
}

// Stalemate returns true if color is not in check, its king has no escape
// square, and none of its other pieces can move.
func Stalemate(b *chess.Board, color chess.Color) bool {
	if !color.Valid() {
		validColors(color, color.Opposite())
		return false
	}
	opponent := color.Opposite()
	king := b.King(color)
	if king == nil || Check(b, color, opponent) {
		return false
	}

	if kingEscapes(b, king, color, opponent) {
		return false
	}
	// The other pieces are probed with the king back on its tile.
	for _, p := range b.Pieces(color) {
		if p.Kind() != chess.King && p.CanMove(b) {
			return false
		}
	}
	return true
}

// kingEscapes runs the mobility and defender phases with the king lifted.
func kingEscapes(b *chess.Board, king chess.Piece, color, opponent chess.Color) bool {
	restore := b.Lift(king.Row(), king.Col())
	defer restore()

	escapes, blocks := kingMobility(b, king, opponent)
	escapes, _ = resolveDefenders(b, color, escapes, blocks, nil)
	return len(escapes) > 0
}

// WhiteStalemate returns true if white is stalemated.
func WhiteStalemate(b *chess.Board) bool {
	return Stalemate(b, chess.White)
}

// BlackStalemate returns true if black is stalemated.
func BlackStalemate(b *chess.Board) bool {
	return Stalemate(b, chess.Black)
}

// IsCheckmate returns true if the side to move is checkmated.
func IsCheckmate(b *chess.Board) bool {
	color := b.CurrentPlayer().Color()
	return Checkmate(b, color, color.Opposite())
}

// IsStalemate returns true if either side is stalemated.
func IsStalemate(b *chess.Board) bool {
	return WhiteStalemate(b) || BlackStalemate(b)
}
