package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lgbarn/tilechess-go/internal/chess"
	"github.com/lgbarn/tilechess-go/internal/config"
	"github.com/lgbarn/tilechess-go/internal/errors"
	"github.com/lgbarn/tilechess-go/internal/game"
)

// Score prints the stored score between two players.
func Score(cfg *config.Config) *cobra.Command {
	var games int

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Show the stored score between two players",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			store, ok, err := openStore(cfg)
			if err != nil {
				return err
			}
			if !ok {
				return errors.Wrap(errors.ErrInvalidConfig, "score needs storage; drop --no-store")
			}
			defer store.Close()

			white := game.PlayerName(chess.White, cfg.Players.White)
			black := game.PlayerName(chess.Black, cfg.Players.Black)
			score, err := store.LoadScore(white, black)
			if err != nil {
				return err
			}
			fmt.Fprintln(cfg.Output.Writer, game.FormatScore(white, black, score))

			if games <= 0 {
				return nil
			}
			results, err := store.ListGames(games)
			if err != nil {
				return err
			}
			for _, r := range results {
				winner := "-"
				if r.Winner != "" {
					winner = r.Winner
				}
				fmt.Fprintf(cfg.Output.Writer, "%s  %-9s %-5s %-8s %s vs %s (%d plies)\n",
					r.FinishedAt.Format("2006-01-02 15:04"), r.Ending, winner, r.Layout, r.White, r.Black, r.Plies)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&cfg.Players.White, "white", "", "Name of the white player")
	cmd.Flags().StringVar(&cfg.Players.Black, "black", "", "Name of the black player")
	cmd.Flags().IntVarP(&games, "games", "g", 0, "Also list the most recent games")

	return cmd
}
