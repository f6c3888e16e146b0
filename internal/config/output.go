package config

import (
	"io"
	"os"
)

// ReportFormat selects how position reports are written.
type ReportFormat string

const (
	TextFormat ReportFormat = "text"
	JSONFormat ReportFormat = "json"
)

// OutputConfig holds settings related to report output.
type OutputConfig struct {
	// Format is text (board dump plus status line) or json.
	Format ReportFormat `validate:"oneof=text json"`

	// ShowAttackers lists the tiles checking each king in text reports
	ShowAttackers bool

	// Writer is the report stream
	Writer io.Writer `validate:"-"`
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:        TextFormat,
		ShowAttackers: true,
		Writer:        os.Stdout,
	}
}
