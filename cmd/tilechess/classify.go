package main

import (
	"bufio"
	"io"
	"os"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lgbarn/tilechess-go/internal/config"
	"github.com/lgbarn/tilechess-go/internal/errors"
	"github.com/lgbarn/tilechess-go/internal/output"
	"github.com/lgbarn/tilechess-go/internal/worker"
)

// SPIN is the spinner charset shown while classifying.
const SPIN = 14

// Classify reports the status of every FEN in a file.
func Classify(cfg *config.Config) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "classify [file]",
		Short: "Classify a list of FEN positions",
		Long: heredoc.Doc(`
			classify reads one FEN per line from file, or standard input when no
			file is given, and reports check, checkmate and stalemate for each.
			Blank lines and lines starting with # are skipped. Positions are
			analyzed in parallel and reported in input order.
		`),
		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			if asJSON {
				cfg.Output.Format = config.JSONFormat
			}

			name, in := "<stdin>", cfg.Input
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				name, in = args[0], f
			}

			positions, err := readPositions(in)
			if err != nil {
				return err
			}
			logrus.WithFields(logrus.Fields{
				"source":    name,
				"positions": len(positions),
				"workers":   cfg.Workers,
			}).Debug("classifying")

			fens := make([]string, len(positions))
			for i, p := range positions {
				fens[i] = p.fen
			}

			s := spinner.New(spinner.CharSets[SPIN], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
			if term.IsTerminal(int(os.Stderr.Fd())) {
				s.Start()
			}
			results := worker.AnalyzeAll(fens, worker.WithWorkers(cfg.Workers))
			s.Stop()

			w := output.NewWriter(cfg.Output)
			failed := 0
			for _, r := range results {
				report := &output.Report{Index: r.Index, Source: r.FEN, Analysis: r.Analysis}
				if r.Error != nil {
					failed++
					report.Err = &errors.ParseError{Err: r.Error, File: name, Line: positions[r.Index].line}
				}
				if err := w.WriteReport(report); err != nil {
					return err
				}
			}
			if err := w.Close(); err != nil {
				return err
			}

			if failed > 0 {
				return errors.Wrapf(errors.ErrInvalidFEN, "%d of %d positions in %s", failed, len(results), name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Write reports as JSON")
	cmd.Flags().IntVarP(&cfg.Workers, "workers", "w", cfg.Workers, "Number of positions analyzed in parallel")

	return cmd
}

type position struct {
	fen  string
	line int
}

func readPositions(r io.Reader) ([]position, error) {
	var positions []position
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		positions = append(positions, position{fen: text, line: line})
	}
	return positions, sc.Err()
}
