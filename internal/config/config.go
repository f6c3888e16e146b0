// Package config provides configuration for tilechess.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/lgbarn/tilechess-go/internal/errors"
)

var validate = validator.New()

// Config holds all program configuration.
type Config struct {
	// LogLevel is a logrus level name.
	LogLevel string `validate:"oneof=panic fatal error warn warning info debug trace"`

	// Workers is the number of goroutines used to classify positions.
	Workers int `validate:"min=1,max=256"`

	Output  *OutputConfig  `validate:"required"`
	Players *PlayerConfig  `validate:"required"`
	Storage *StorageConfig `validate:"required"`

	// Input stream for interactive play
	Input io.Reader `validate:"-"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		LogLevel: "warn",
		Workers:  1,
		Output:   NewOutputConfig(),
		Players:  NewPlayerConfig(),
		Storage:  NewStorageConfig(),
		Input:    os.Stdin,
	}
}

// SetOutput sets the report stream.
func (c *Config) SetOutput(w io.Writer) {
	c.Output.Writer = w
}

// Validate checks every field against its constraints. Failures wrap
// ErrInvalidConfig.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Wrap(errors.ErrInvalidConfig, err.Error())
	}
	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			details = append(details, fmt.Sprintf("%s is required", fe.Namespace()))
		case "oneof":
			details = append(details, fmt.Sprintf("%s must be one of [%s]", fe.Namespace(), fe.Param()))
		case "min":
			details = append(details, fmt.Sprintf("%s must be at least %s", fe.Namespace(), fe.Param()))
		case "max":
			details = append(details, fmt.Sprintf("%s must be at most %s", fe.Namespace(), fe.Param()))
		default:
			details = append(details, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
		}
	}
	return errors.Wrap(errors.ErrInvalidConfig, strings.Join(details, "; "))
}
