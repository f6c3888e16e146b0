package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/sirupsen/logrus"

	"github.com/lgbarn/tilechess-go/internal/chess"
	"github.com/lgbarn/tilechess-go/internal/engine"
	"github.com/lgbarn/tilechess-go/internal/errors"
	"github.com/lgbarn/tilechess-go/internal/game"
	"github.com/lgbarn/tilechess-go/internal/processing"
)

var errQuit = errors.New("quit")

// recorder persists finished games.
type recorder interface {
	RecordGame(r game.Result, score game.Score) error
}

// command is one REPL command.
type command struct {
	name        string
	usage       string
	description string
	handler     func(args []string) error
}

type repl struct {
	sess     *game.Session
	store    recorder
	out      io.Writer
	commands map[string]*command
	order    []*command
}

func newREPL(sess *game.Session, out io.Writer) *repl {
	r := &repl{
		sess:     sess,
		out:      out,
		commands: make(map[string]*command),
	}

	r.register(&command{"move", "move <from> <to>", "Move a piece, e.g. move e2 e4 or move 6,4 4,4", r.move})
	r.register(&command{"undo", "undo", "Take back the last move", r.undo})
	r.register(&command{"forfeit", "forfeit", "Give up the current game", r.forfeit})
	r.register(&command{"new", "new", "Start a new game with the standard layout", r.restart(engine.LayoutStandard)})
	r.register(&command{"special", "special", "Start a new game with the special layout", r.restart(engine.LayoutSpecial)})
	r.register(&command{"score", "score", "Show the running score", r.score})
	r.register(&command{"board", "board", "Show the board", r.board})
	r.register(&command{"help", "help", "Show available commands", r.help})
	r.register(&command{"quit", "quit", "Leave the game", func([]string) error { return errQuit }})

	// Aliases
	r.commands["exit"] = r.commands["quit"]
	r.commands["m"] = r.commands["move"]

	return r
}

func (r *repl) register(c *command) {
	r.commands[c.name] = c
	r.order = append(r.order, c)
}

// run reads commands until quit or end of input.
func (r *repl) run(lines lineReader) error {
	r.showBoard()
	for {
		line, err := lines.Readline()
		if err == io.EOF {
			return nil
		}
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			return err
		}

		err = r.execute(line)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			logrus.WithError(err).Debug("command failed")
			fmt.Fprintf(r.out, "error: %v\n", err)
		}
	}
}

// execute runs one input line.
func (r *repl) execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	c, ok := r.commands[strings.ToLower(fields[0])]
	if !ok {
		return errors.Wrapf(errors.ErrUnknownCommand, "%q (type help)", fields[0])
	}
	return c.handler(fields[1:])
}

func (r *repl) move(args []string) error {
	from, to, err := parseMoveArgs(args)
	if err != nil {
		return err
	}

	out, err := r.sess.Move(from, to)
	if err != nil {
		if !errors.Is(err, errors.ErrGameOver) {
			fmt.Fprintln(r.out, r.sess.StatusMessage())
		}
		return err
	}

	if out.Captured != nil {
		fmt.Fprintf(r.out, "%s takes %s on %s\n", strings.ToLower(out.Piece.String()),
			strings.ToLower(out.Captured.String()), out.To.Algebraic())
	}
	r.showBoard()
	r.recordIfOver()
	return nil
}

// parseMoveArgs accepts "from to" or a single "from-to".
func parseMoveArgs(args []string) (from, to chess.Pos, err error) {
	switch len(args) {
	case 1:
		moves, err := processing.ParseMoves(args[0])
		if err != nil {
			return from, to, err
		}
		return moves[0].From, moves[0].To, nil
	case 2:
		if from, err = chess.ParsePos(args[0]); err != nil {
			return from, to, &errors.ParseError{Err: err, Column: 1, Got: args[0]}
		}
		if to, err = chess.ParsePos(args[1]); err != nil {
			return from, to, &errors.ParseError{Err: err, Column: 2, Got: args[1]}
		}
		return from, to, nil
	}
	return from, to, &errors.ParseError{Err: errors.ErrInvalidSquare, Expected: "move <from> <to>"}
}

func (r *repl) undo([]string) error {
	if err := r.sess.Undo(); err != nil {
		return err
	}
	r.showBoard()
	return nil
}

func (r *repl) forfeit([]string) error {
	if _, err := r.sess.Forfeit(); err != nil {
		return err
	}
	fmt.Fprintln(r.out, r.sess.StatusMessage())
	r.recordIfOver()
	return nil
}

func (r *repl) restart(layout engine.Layout) func([]string) error {
	return func([]string) error {
		r.sess.Restart(layout)
		r.showBoard()
		return nil
	}
}

func (r *repl) score([]string) error {
	fmt.Fprintln(r.out, r.sess.ScoreMessage())
	return nil
}

func (r *repl) board([]string) error {
	r.showBoard()
	return nil
}

func (r *repl) help([]string) error {
	fmt.Fprintln(r.out, "Commands:")
	for _, c := range r.order {
		fmt.Fprintf(r.out, "  %-18s %s\n", c.usage, c.description)
	}
	return nil
}

func (r *repl) showBoard() {
	fmt.Fprint(r.out, r.sess.Board().Layout())
	fmt.Fprintln(r.out, r.sess.StatusMessage())
}

// recordIfOver saves a finished game and prints the score.
func (r *repl) recordIfOver() {
	result, ok := r.sess.Result()
	if !ok {
		return
	}
	if r.store != nil {
		if err := r.store.RecordGame(result, r.sess.Score()); err != nil {
			logrus.WithError(err).Error("could not save game")
		}
	}
	fmt.Fprintln(r.out, r.sess.ScoreMessage())
}
