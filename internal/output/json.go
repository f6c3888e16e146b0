package output

import (
	"strings"

	"github.com/lgbarn/tilechess-go/internal/chess"
	"github.com/lgbarn/tilechess-go/internal/engine"
	"github.com/lgbarn/tilechess-go/internal/processing"
)

// JSONReport represents a position report in JSON format.
type JSONReport struct {
	Index  int       `json:"index"`
	Source string    `json:"source,omitempty"`
	FEN    string    `json:"fen,omitempty"`
	ToMove string    `json:"toMove,omitempty"`
	Status string    `json:"status,omitempty"`
	Rows   []string  `json:"rows,omitempty"`
	White  *JSONSide `json:"white,omitempty"`
	Black  *JSONSide `json:"black,omitempty"`
	Error  string    `json:"error,omitempty"`
}

// JSONSide represents one color's verdicts.
type JSONSide struct {
	InCheck    bool     `json:"inCheck"`
	Checkmated bool     `json:"checkmated"`
	Stalemated bool     `json:"stalemated"`
	Attackers  []string `json:"attackers,omitempty"`
	Pieces     int      `json:"pieces"`
}

// JSONOutput holds multiple reports for array output.
type JSONOutput struct {
	Reports []*JSONReport `json:"reports"`
}

// ReportToJSON converts a report to JSON form.
func ReportToJSON(r *Report) *JSONReport {
	jr := &JSONReport{Index: r.Index, Source: r.Source}
	if r.Err != nil {
		jr.Error = r.Err.Error()
		return jr
	}

	pa := r.Analysis
	jr.ToMove = strings.ToLower(pa.ToMove.String())
	jr.Status = pa.Status.String()
	jr.Rows = rows(pa.Board)
	// Placement fails only for pieces FEN cannot name.
	if fen, err := engine.PositionFEN(pa.Board); err == nil {
		jr.FEN = fen
	}
	jr.White = sideToJSON(pa.White)
	jr.Black = sideToJSON(pa.Black)
	return jr
}

func sideToJSON(side processing.SideAnalysis) *JSONSide {
	js := &JSONSide{
		InCheck:    side.InCheck,
		Checkmated: side.Checkmated,
		Stalemated: side.Stalemated,
		Pieces:     side.Pieces,
	}
	for _, sq := range side.Attackers {
		js.Attackers = append(js.Attackers, sq.Algebraic())
	}
	return js
}

// rows splits the layout dump into its eight rows.
func rows(b *chess.Board) []string {
	return strings.Split(strings.TrimRight(b.Layout(), "\n"), "\n")
}
