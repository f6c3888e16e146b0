package main

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lgbarn/tilechess-go/internal/chess"
	"github.com/lgbarn/tilechess-go/internal/config"
	"github.com/lgbarn/tilechess-go/internal/engine"
	"github.com/lgbarn/tilechess-go/internal/game"
)

// Play runs an interactive two-player game.
func Play(cfg *config.Config) *cobra.Command {
	var special bool

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a two-player game at the terminal",
		Long: heredoc.Doc(`
			play starts an interactive game between two players sharing the
			terminal. Squares are given as algebraic names (e2) or as row,col
			pairs (6,4) where row 0 is black's back rank.

			The running score between the two named players is kept in the
			data directory unless --no-store is given. Type help for commands.
		`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			if special {
				cfg.Players.Layout = engine.LayoutSpecial.String()
			}
			layout, err := engine.ParseLayout(cfg.Players.Layout)
			if err != nil {
				return err
			}

			sess := game.NewSession(cfg.Players.White, cfg.Players.Black, layout)
			r := newREPL(sess, cfg.Output.Writer)

			store, ok, err := openStore(cfg)
			if err != nil {
				return err
			}
			if ok {
				defer store.Close()
				score, err := store.LoadScore(sess.Name(chess.White), sess.Name(chess.Black))
				if err != nil {
					return err
				}
				sess.SetScore(score)
				r.store = store
			}

			lines, err := newLineReader(cfg)
			if err != nil {
				return err
			}
			defer lines.Close()

			return r.run(lines)
		},
	}

	cmd.Flags().BoolVarP(&special, "special", "s", false, "Start with the special layout")
	cmd.Flags().StringVar(&cfg.Players.White, "white", "", "Name of the white player")
	cmd.Flags().StringVar(&cfg.Players.Black, "black", "", "Name of the black player")

	return cmd
}

// lineReader is the part of *readline.Instance the REPL uses.
type lineReader interface {
	Readline() (string, error)
	Close() error
}

// newLineReader uses readline when input is a terminal and plain line
// scanning otherwise (pipes, tests).
func newLineReader(cfg *config.Config) (lineReader, error) {
	if f, ok := cfg.Input.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		history := ""
		if !cfg.Storage.Disabled {
			history = filepath.Join(cfg.Storage.DataDir, "history")
		}
		rl, err := readline.NewEx(&readline.Config{
			Prompt:          "tilechess> ",
			HistoryFile:     history,
			InterruptPrompt: "^C",
			EOFPrompt:       "quit",
		})
		if err != nil {
			return nil, err
		}
		return rl, nil
	}
	return &scanReader{sc: bufio.NewScanner(cfg.Input)}, nil
}

type scanReader struct {
	sc *bufio.Scanner
}

func (s *scanReader) Readline() (string, error) {
	if s.sc.Scan() {
		return s.sc.Text(), nil
	}
	if err := s.sc.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (s *scanReader) Close() error { return nil }
