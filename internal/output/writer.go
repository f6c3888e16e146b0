// Package output writes position reports as text or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/tilechess-go/internal/chess"
	"github.com/lgbarn/tilechess-go/internal/config"
	"github.com/lgbarn/tilechess-go/internal/processing"
)

// Report is one analyzed position, or the error that prevented analysis.
type Report struct {
	Index    int
	Source   string // FEN or layout name
	Analysis *processing.PositionAnalysis
	Err      error
}

// ReportWriter is the interface for writing reports to output.
type ReportWriter interface {
	// WriteReport writes a single report to the output.
	WriteReport(r *Report) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer selected by cfg.Format.
func NewWriter(cfg *config.OutputConfig) ReportWriter {
	if cfg.Format == config.JSONFormat {
		return NewJSONWriter(cfg.Writer)
	}
	return NewTextWriter(cfg.Writer, cfg.ShowAttackers)
}

// TextWriter writes the layout dump followed by a status line.
type TextWriter struct {
	w             io.Writer
	showAttackers bool
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, showAttackers bool) *TextWriter {
	return &TextWriter{w: w, showAttackers: showAttackers}
}

// WriteReport writes a report immediately.
func (tw *TextWriter) WriteReport(r *Report) error {
	var sb strings.Builder
	if r.Source != "" {
		fmt.Fprintf(&sb, "[%d] %s\n", r.Index+1, r.Source)
	}
	if r.Err != nil {
		fmt.Fprintf(&sb, "error: %v\n\n", r.Err)
		_, err := io.WriteString(tw.w, sb.String())
		return err
	}

	pa := r.Analysis
	sb.WriteString(pa.Board.Layout())
	fmt.Fprintf(&sb, "status: %s\n", pa.Status)
	if tw.showAttackers {
		for _, color := range []chess.Color{chess.White, chess.Black} {
			side := pa.Side(color)
			if len(side.Attackers) == 0 {
				continue
			}
			fmt.Fprintf(&sb, "%s king attacked from: %s\n",
				strings.ToLower(color.String()), joinSquares(side.Attackers))
		}
	}
	sb.WriteByte('\n')
	_, err := io.WriteString(tw.w, sb.String())
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

func joinSquares(squares []chess.Pos) string {
	names := make([]string, len(squares))
	for i, sq := range squares {
		names[i] = sq.Algebraic()
	}
	return strings.Join(names, " ")
}

// JSONWriter writes reports in JSON format.
// It buffers reports and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	reports []*JSONReport
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:       w,
		reports: make([]*JSONReport, 0),
	}
}

// WriteReport buffers a report for JSON output.
func (jw *JSONWriter) WriteReport(r *Report) error {
	jw.reports = append(jw.reports, ReportToJSON(r))
	return nil
}

// Flush writes all buffered reports as a JSON array.
func (jw *JSONWriter) Flush() error {
	if len(jw.reports) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Reports: jw.reports})

	// Clear buffer after writing
	jw.reports = jw.reports[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
