package main

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/lgbarn/tilechess-go/internal/chess"
	"github.com/lgbarn/tilechess-go/internal/config"
	"github.com/lgbarn/tilechess-go/internal/engine"
	"github.com/lgbarn/tilechess-go/internal/errors"
	"github.com/lgbarn/tilechess-go/internal/output"
	"github.com/lgbarn/tilechess-go/internal/processing"
)

// Show prints a position and its status.
func Show(cfg *config.Config) *cobra.Command {
	var (
		special bool
		fen     string
		moves   string
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a position and its status",
		Long: heredoc.Doc(`
			show prints the board dump of a starting layout or a FEN position,
			followed by its status. With --moves the given moves are played
			first, alternating sides from the side to move.
		`),
		Example: heredoc.Doc(`
			$ tilechess show --special
			$ tilechess show --fen "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1"
			$ tilechess show --moves "f2-f3 e7-e5 g2-g4 d8-h4"
		`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			if special && fen != "" {
				return errors.Wrap(errors.ErrInvalidConfig, "--special and --fen are exclusive")
			}
			if asJSON {
				cfg.Output.Format = config.JSONFormat
			}

			b, source, err := startingBoard(special, fen)
			if err != nil {
				return err
			}

			if moves != "" {
				specs, err := processing.ParseMoves(moves)
				if err != nil {
					return err
				}
				if v := processing.ReplayMoves(b, specs); !v.Valid {
					return errors.Wrap(errors.ErrIllegalMove, v.ErrorMsg)
				}
				source += " after " + moves
			}

			w := output.NewWriter(cfg.Output)
			if err := w.WriteReport(&output.Report{Source: source, Analysis: processing.AnalyzePosition(b)}); err != nil {
				return err
			}
			return w.Close()
		},
	}

	cmd.Flags().BoolVarP(&special, "special", "s", false, "Use the special layout")
	cmd.Flags().StringVar(&fen, "fen", "", "Start from a FEN position")
	cmd.Flags().StringVarP(&moves, "moves", "m", "", "Moves to play first, e.g. \"e2-e4 e7-e5\"")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Write the report as JSON")

	return cmd
}

func startingBoard(special bool, fen string) (*chess.Board, string, error) {
	switch {
	case fen != "":
		b, err := engine.BoardFromFEN(fen)
		return b, fen, err
	case special:
		return engine.NewSpecialBoard(), engine.LayoutSpecial.String(), nil
	}
	return engine.NewStandardBoard(), engine.LayoutStandard.String(), nil
}
