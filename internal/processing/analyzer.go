// Package processing builds position analyses from engine queries and
// replays move lists against a board.
package processing

import (
	"fmt"
	"strings"

	"github.com/lgbarn/tilechess-go/internal/chess"
	"github.com/lgbarn/tilechess-go/internal/engine"
	"github.com/lgbarn/tilechess-go/internal/errors"
)

// SideAnalysis holds the per-color verdicts for one position.
type SideAnalysis struct {
	InCheck    bool
	Checkmated bool
	Stalemated bool
	Attackers  []chess.Pos // opposing pieces that reach this side's king
	Pieces     int
}

// PositionAnalysis holds the result of analyzing one position.
type PositionAnalysis struct {
	Board  *chess.Board
	ToMove chess.Color
	Status engine.Status
	White  SideAnalysis
	Black  SideAnalysis
}

// Side returns the analysis for color.
func (pa *PositionAnalysis) Side(color chess.Color) SideAnalysis {
	if color == chess.White {
		return pa.White
	}
	return pa.Black
}

// AnalyzePosition runs every detection query on b. b must not be shared
// with another goroutine while this runs.
func AnalyzePosition(b *chess.Board) *PositionAnalysis {
	return &PositionAnalysis{
		Board:  b,
		ToMove: b.CurrentPlayer().Color(),
		Status: engine.Classify(b),
		White:  analyzeSide(b, chess.White),
		Black:  analyzeSide(b, chess.Black),
	}
}

func analyzeSide(b *chess.Board, color chess.Color) SideAnalysis {
	opponent := color.Opposite()
	side := SideAnalysis{
		InCheck:    engine.Check(b, color, opponent),
		Checkmated: engine.Checkmate(b, color, opponent),
		Stalemated: engine.Stalemate(b, color),
		Pieces:     b.Count(color),
	}
	if king := b.King(color); king != nil {
		side.Attackers = engine.AttackingTiles(b, opponent, king.Row(), king.Col())
	}
	return side
}

// AnalyzeFEN decodes fen and analyzes the resulting position.
func AnalyzeFEN(fen string) (*PositionAnalysis, error) {
	b, err := engine.BoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return AnalyzePosition(b), nil
}

// MoveSpec is one move in a move list.
type MoveSpec struct {
	From chess.Pos
	To   chess.Pos
	Text string
}

// ParseMoves splits a whitespace separated list of moves. Each move is
// two squares joined by '-', e.g. "e2-e4" or "6,4-4,4".
func ParseMoves(s string) ([]MoveSpec, error) {
	var moves []MoveSpec
	pos := 0
	for _, field := range strings.Fields(s) {
		start := strings.Index(s[pos:], field) + pos
		pos = start + len(field)
		col := start + 1
		from, to, ok := strings.Cut(field, "-")
		if !ok {
			return nil, &errors.ParseError{Err: errors.ErrInvalidSquare, Column: col, Expected: "from-to", Got: field}
		}
		fromPos, err := chess.ParsePos(from)
		if err != nil {
			return nil, &errors.ParseError{Err: err, Column: col, Got: from}
		}
		toPos, err := chess.ParsePos(to)
		if err != nil {
			return nil, &errors.ParseError{Err: err, Column: col + len(from) + 1, Got: to}
		}
		moves = append(moves, MoveSpec{From: fromPos, To: toPos, Text: field})
	}
	return moves, nil
}

// ValidationResult holds the result of replaying a move list.
type ValidationResult struct {
	Valid    bool
	Plies    int
	ErrorPly int
	ErrorMsg string
}

// ReplayMoves plays moves on b, alternating sides from the side to move.
// It stops at the first move the engine refuses.
func ReplayMoves(b *chess.Board, moves []MoveSpec) *ValidationResult {
	result := &ValidationResult{Valid: true}
	for i, m := range moves {
		player := b.CurrentPlayer()
		if !player.MovePiece(b, b.Piece(m.From.Row, m.From.Col), m.To.Row, m.To.Col) {
			result.Valid = false
			result.ErrorPly = i + 1
			result.ErrorMsg = fmt.Sprintf("illegal move at ply %d: %s", i+1, m.Text)
			return result
		}
		b.UpdateCurrentPlayer()
		result.Plies++
		if engine.Classify(b).Terminal() && i < len(moves)-1 {
			result.Valid = false
			result.ErrorPly = i + 2
			result.ErrorMsg = fmt.Sprintf("move after game end at ply %d: %s", i+2, moves[i+1].Text)
			return result
		}
	}
	return result
}
