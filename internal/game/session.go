// Package game runs a two-player session on top of the engine: named
// players, turn taking, a one-move undo, forfeits and a running score.
package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lgbarn/tilechess-go/internal/chess"
	"github.com/lgbarn/tilechess-go/internal/engine"
	"github.com/lgbarn/tilechess-go/internal/errors"
)

// Default player names.
const (
	DefaultWhiteName = "PLAYER ONE"
	DefaultBlackName = "PLAYER TWO"
)

// Score counts finished games between the same two players.
type Score struct {
	WhiteWins int `json:"white_wins"`
	BlackWins int `json:"black_wins"`
	Draws     int `json:"draws"`
}

// Record adds one finished game. A nil winner records a draw.
func (s *Score) Record(winner *chess.Color) {
	switch {
	case winner == nil:
		s.Draws++
	case *winner == chess.White:
		s.WhiteWins++
	default:
		s.BlackWins++
	}
}

// Ending says how a game finished.
type Ending string

const (
	EndingCheckmate Ending = "checkmate"
	EndingStalemate Ending = "stalemate"
	EndingForfeit   Ending = "forfeit"
)

// Result describes a finished game.
type Result struct {
	SessionID  string    `json:"session_id"`
	GameID     string    `json:"game_id"`
	White      string    `json:"white"`
	Black      string    `json:"black"`
	Layout     string    `json:"layout"`
	Winner     string    `json:"winner,omitempty"`
	Ending     Ending    `json:"ending"`
	Plies      int       `json:"plies"`
	FinishedAt time.Time `json:"finished_at"`
}

// MoveOutcome reports a completed move.
type MoveOutcome struct {
	From     chess.Pos
	To       chess.Pos
	Piece    chess.Kind
	Captured *chess.Kind
	Status   engine.Status
}

// Session is one sitting between two named players. It may span several
// games; the score carries over between them. A Session is not safe for
// concurrent use.
type Session struct {
	ID uuid.UUID

	white  string
	black  string
	layout engine.Layout

	gameID  uuid.UUID
	board   *chess.Board
	prev    *chess.Board
	status  engine.Status
	ply     int
	invalid bool

	over   bool
	ending Ending
	winner *chess.Color
	end    time.Time

	score Score
}

// NewSession starts a session and its first game. Blank names fall back to
// the defaults; names are upper-cased.
func NewSession(white, black string, layout engine.Layout) *Session {
	s := &Session{
		ID:    uuid.New(),
		white: playerName(white, DefaultWhiteName),
		black: playerName(black, DefaultBlackName),
	}
	s.Restart(layout)
	return s
}

// PlayerName normalizes a display name for color: trimmed, upper-cased,
// with the default name when blank.
func PlayerName(color chess.Color, name string) string {
	if color == chess.White {
		return playerName(name, DefaultWhiteName)
	}
	return playerName(name, DefaultBlackName)
}

func playerName(name, fallback string) string {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		return fallback
	}
	return name
}

// Restart begins a new game with layout. The score is kept.
func (s *Session) Restart(layout engine.Layout) {
	s.layout = layout
	s.gameID = uuid.New()
	s.board = engine.NewLayoutBoard(layout)
	s.prev = nil
	s.status = engine.WhiteToMove
	s.ply = 0
	s.invalid = false
	s.over = false
	s.ending = ""
	s.winner = nil
	s.end = time.Time{}

	logrus.WithFields(logrus.Fields{
		"session": s.ID,
		"game":    s.gameID,
		"layout":  layout,
	}).Debug("new game")
}

// Board returns the live board. Callers must not mutate it.
func (s *Session) Board() *chess.Board { return s.board }

// Layout returns the layout of the current game.
func (s *Session) Layout() engine.Layout { return s.layout }

// Status returns the status after the last move.
func (s *Session) Status() engine.Status { return s.status }

// Score returns the running score.
func (s *Session) Score() Score { return s.score }

// SetScore seeds the running score, e.g. from storage.
func (s *Session) SetScore(score Score) { s.score = score }

// Over reports whether the current game has finished.
func (s *Session) Over() bool { return s.over }

// Ply returns the number of moves played in the current game.
func (s *Session) Ply() int { return s.ply }

// Name returns the player name for color.
func (s *Session) Name(color chess.Color) string {
	if color == chess.White {
		return s.white
	}
	return s.black
}

// ToMove returns the color whose turn it is.
func (s *Session) ToMove() chess.Color {
	return s.board.CurrentPlayer().Color()
}

// Move plays from -> to for the side to move. A refused move leaves the
// board untouched and is reported as ErrIllegalMove.
func (s *Session) Move(from, to chess.Pos) (MoveOutcome, error) {
	if s.over {
		return MoveOutcome{}, errors.ErrGameOver
	}
	mover := s.ToMove()
	moveErr := func(err error) error {
		s.invalid = true
		logrus.WithFields(logrus.Fields{
			"player": mover,
			"from":   from.Algebraic(),
			"to":     to.Algebraic(),
		}).Debug("move rejected")
		return &errors.MoveError{
			Err:    err,
			Ply:    s.ply + 1,
			Player: mover.String(),
			From:   from.Algebraic(),
			To:     to.Algebraic(),
		}
	}

	if !from.InBounds() || !to.InBounds() {
		return MoveOutcome{}, moveErr(errors.ErrInvalidSquare)
	}
	piece := s.board.Piece(from.Row, from.Col)
	if piece == nil {
		return MoveOutcome{}, moveErr(errors.ErrEmptySquare)
	}
	if from == to || piece.Color() != mover {
		return MoveOutcome{}, moveErr(errors.ErrIllegalMove)
	}

	outcome := MoveOutcome{From: from, To: to, Piece: piece.Kind()}
	if victim := s.board.Piece(to.Row, to.Col); victim != nil {
		k := victim.Kind()
		outcome.Captured = &k
	}

	snapshot := s.board.Clone()
	if !s.board.CurrentPlayer().MovePiece(s.board, piece, to.Row, to.Col) {
		return MoveOutcome{}, moveErr(errors.ErrIllegalMove)
	}

	s.prev = snapshot
	s.ply++
	s.invalid = false
	s.board.UpdateCurrentPlayer()
	s.status = engine.Classify(s.board)
	outcome.Status = s.status

	if s.status.Terminal() {
		ending := EndingStalemate
		var winner *chess.Color
		if w, ok := s.status.Winner(); ok {
			ending = EndingCheckmate
			winner = &w
		}
		s.finish(ending, winner)
	}
	return outcome, nil
}

// Undo takes back the last move. Only one move can be taken back, and not
// once the game has ended.
func (s *Session) Undo() error {
	if s.over {
		return errors.ErrGameOver
	}
	if s.prev == nil {
		return errors.ErrNothingToUndo
	}
	s.board = s.prev
	s.prev = nil
	s.ply--
	s.invalid = false
	s.status = engine.Classify(s.board)
	return nil
}

// Forfeit ends the game in favour of the player not on move and returns
// the winner.
func (s *Session) Forfeit() (chess.Color, error) {
	if s.over {
		return chess.Black, errors.ErrGameOver
	}
	winner := s.ToMove().Opposite()
	s.finish(EndingForfeit, &winner)
	return winner, nil
}

func (s *Session) finish(ending Ending, winner *chess.Color) {
	s.over = true
	s.ending = ending
	s.winner = winner
	s.end = time.Now().UTC()
	s.prev = nil
	s.score.Record(winner)

	fields := logrus.Fields{"game": s.gameID, "ending": ending, "plies": s.ply}
	if winner != nil {
		fields["winner"] = s.Name(*winner)
	}
	logrus.WithFields(fields).Info("game over")
}

// Result returns the finished game. ok is false while the game is running.
func (s *Session) Result() (r Result, ok bool) {
	if !s.over {
		return Result{}, false
	}
	r = Result{
		SessionID:  s.ID.String(),
		GameID:     s.gameID.String(),
		White:      s.white,
		Black:      s.black,
		Layout:     s.layout.String(),
		Ending:     s.ending,
		Plies:      s.ply,
		FinishedAt: s.end,
	}
	if s.winner != nil {
		r.Winner = s.winner.String()
	}
	return r, true
}

// StatusMessage renders the state of the game for display.
func (s *Session) StatusMessage() string {
	if s.over {
		switch s.ending {
		case EndingForfeit:
			return fmt.Sprintf("%s FORFEITS. %s WINS.", s.Name(s.winner.Opposite()), s.Name(*s.winner))
		case EndingCheckmate:
			return fmt.Sprintf("CHECKMATE. %s WINS", s.Name(*s.winner))
		default:
			return "STALEMATE."
		}
	}

	turn := fmt.Sprintf("%s'S TURN", s.Name(s.ToMove()))
	switch {
	case s.invalid:
		return "INVALID MOVE. " + turn
	case s.status == engine.WhiteInCheck:
		return fmt.Sprintf("CHECK ON %s. %s", s.white, turn)
	case s.status == engine.BlackInCheck:
		return fmt.Sprintf("CHECK ON %s. %s", s.black, turn)
	}
	return turn
}

// ScoreMessage renders the running score.
func (s *Session) ScoreMessage() string {
	return FormatScore(s.white, s.black, s.score)
}

// FormatScore renders a score between two named players. Draws are shown
// only once there is one.
func FormatScore(white, black string, score Score) string {
	msg := fmt.Sprintf("%s WINS: %d, %s WINS: %d",
		PlayerName(chess.White, white), score.WhiteWins,
		PlayerName(chess.Black, black), score.BlackWins)
	if score.Draws > 0 {
		msg += fmt.Sprintf(", DRAWS: %d", score.Draws)
	}
	return msg
}
