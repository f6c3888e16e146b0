package main

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lgbarn/tilechess-go/internal/config"
	"github.com/lgbarn/tilechess-go/internal/errors"
	"github.com/lgbarn/tilechess-go/internal/storage"
)

// Root builds the command tree. Flags write straight into cfg.
func Root(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "tilechess",
		Short: "Play and analyze tilechess positions",
		Long: heredoc.Doc(`
			tilechess is a two-player chess variant on an 8x8 board. Besides the
			usual pieces it has the Leaper, which jumps two squares straight, and
			the NightRider, which jumps one by three.

			There is no castling, en passant or promotion. A game ends in
			checkmate, stalemate or a forfeit.
		`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			level, err := logrus.ParseLevel(cfg.LogLevel)
			if err != nil {
				return errors.Wrap(errors.ErrInvalidConfig, err.Error())
			}
			logrus.SetLevel(level)

			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}
			return nil
		},
	}

	// global flags
	flags := root.PersistentFlags()
	flags.BoolP("trace", "t", false, "Show Trace Information")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Logging level (error, warn, info, debug, trace)")
	flags.StringVar(&cfg.Storage.DataDir, "data-dir", cfg.Storage.DataDir, "Directory for scores and game records")
	flags.BoolVar(&cfg.Storage.Disabled, "no-store", false, "Do not read or write scores")

	root.Version = programVersion
	root.SetVersionTemplate("tilechess version {{.Version}}\n")

	// Register the various commands.
	root.AddCommand(Play(cfg))
	root.AddCommand(Show(cfg))
	root.AddCommand(Classify(cfg))
	root.AddCommand(Score(cfg))
	root.AddCommand(Version(cfg))

	return root
}

// Version prints the program version.
func Version(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cfg.Output.Writer, "tilechess version %s\n", programVersion)
			return err
		},
	}
}

// openStore opens the configured store. ok is false when persistence is
// disabled.
func openStore(cfg *config.Config) (store *storage.Store, ok bool, err error) {
	if cfg.Storage.Disabled {
		return nil, false, nil
	}
	store, err = storage.Open(cfg.Storage.DataDir)
	if err != nil {
		return nil, false, err
	}
	return store, true, nil
}
