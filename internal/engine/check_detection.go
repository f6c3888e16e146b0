package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/lgbarn/tilechess-go/internal/chess"
)

// AttackingTiles returns the squares of every opponent piece that could
// legally move onto (row, col) right now.
func AttackingTiles(b *chess.Board, opponent chess.Color, row, col int) []chess.Pos {
	var attackers []chess.Pos
	for _, p := range b.Pieces(opponent) {
		if p.IsValidMove(b, p.Row(), p.Col(), row, col) {
			attackers = append(attackers, chess.Pos{Row: p.Row(), Col: p.Col()})
		}
	}
	return attackers
}

// IsSquareAttacked returns true if any piece of byColor could legally move
// onto (row, col).
func IsSquareAttacked(b *chess.Board, row, col int, byColor chess.Color) bool {
	for _, p := range b.Pieces(byColor) {
		if p.IsValidMove(b, p.Row(), p.Col(), row, col) {
			return true
		}
	}
	return false
}

// Check returns true if user's king is attacked by opponent. Unrecognized
// colors, or the same color on both sides, are logged and reported as not
// in check. A board without user's king is never in check.
func Check(b *chess.Board, user, opponent chess.Color) bool {
	if !validColors(user, opponent) {
		return false
	}
	king := b.King(user)
	if king == nil {
		return false
	}
	return len(AttackingTiles(b, opponent, king.Row(), king.Col())) > 0
}

// IsInCheck returns true if the given color's king is in check.
func IsInCheck(b *chess.Board, color chess.Color) bool {
	return Check(b, color, color.Opposite())
}

func validColors(user, opponent chess.Color) bool {
	if !user.Valid() || !opponent.Valid() || user == opponent {
		logrus.WithFields(logrus.Fields{
			"user":     user,
			"opponent": opponent,
		}).Warn("invalid color pair")
		return false
	}
	return true
}
