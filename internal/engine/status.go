package engine

import "github.com/lgbarn/tilechess-go/internal/chess"

// Status summarizes a position for the side to move.
type Status int

const (
	WhiteToMove Status = iota
	BlackToMove
	WhiteInCheck
	BlackInCheck
	WhiteCheckmated
	BlackCheckmated
	StalemateStatus
)

func (s Status) String() string {
	switch s {
	case WhiteToMove:
		return "white to move"
	case BlackToMove:
		return "black to move"
	case WhiteInCheck:
		return "white in check"
	case BlackInCheck:
		return "black in check"
	case WhiteCheckmated:
		return "white checkmated"
	case BlackCheckmated:
		return "black checkmated"
	case StalemateStatus:
		return "stalemate"
	}
	return "unknown"
}

// Terminal reports whether the game is over.
func (s Status) Terminal() bool {
	return s == WhiteCheckmated || s == BlackCheckmated || s == StalemateStatus
}

// Winner returns the winning color of a checkmate. ok is false for every
// other status, stalemate included.
func (s Status) Winner() (winner chess.Color, ok bool) {
	switch s {
	case WhiteCheckmated:
		return chess.Black, true
	case BlackCheckmated:
		return chess.White, true
	}
	return chess.Black, false
}

// Classify evaluates, in order: white mated, black mated, stalemate on
// either side, black in check, white in check, and otherwise the side to
// move.
func Classify(b *chess.Board) Status {
	switch {
	case Checkmate(b, chess.White, chess.Black):
		return WhiteCheckmated
	case Checkmate(b, chess.Black, chess.White):
		return BlackCheckmated
	case WhiteStalemate(b), BlackStalemate(b):
		return StalemateStatus
	case Check(b, chess.Black, chess.White):
		return BlackInCheck
	case Check(b, chess.White, chess.Black):
		return WhiteInCheck
	}
	if b.CurrentPlayer().Color() == chess.White {
		return WhiteToMove
	}
	return BlackToMove
}
