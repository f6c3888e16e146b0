package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	tests := []struct {
		name     string
		sentinel error
	}{
		{"ErrInvalidColor", ErrInvalidColor},
		{"ErrInvalidSquare", ErrInvalidSquare},
		{"ErrIllegalMove", ErrIllegalMove},
		{"ErrEmptySquare", ErrEmptySquare},
		{"ErrGameOver", ErrGameOver},
		{"ErrNothingToUndo", ErrNothingToUndo},
		{"ErrInvalidFEN", ErrInvalidFEN},
		{"ErrUnsupportedPiece", ErrUnsupportedPiece},
		{"ErrInvalidLayout", ErrInvalidLayout},
		{"ErrInvalidConfig", ErrInvalidConfig},
		{"ErrUnknownCommand", ErrUnknownCommand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("outer: %w", tt.sentinel)
			if !errors.Is(wrapped, tt.sentinel) {
				t.Errorf("errors.Is(wrapped, %v) = false, want true", tt.sentinel)
			}
		})
	}
}

func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
		want     string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:    ErrIllegalMove,
				Ply:    7,
				Player: "WHITE",
				From:   "e2",
				To:     "e5",
			},
			contains: []string{"ply 7", "white", "e2-e5", "illegal move"},
		},
		{
			name: "no context",
			err:  &MoveError{Err: ErrEmptySquare},
			want: "no piece on square",
		},
		{
			name: "no underlying error",
			err:  &MoveError{},
			want: "move error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			if tt.want != "" && msg != tt.want {
				t.Errorf("MoveError.Error() = %q, want %q", msg, tt.want)
			}
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{Err: ErrIllegalMove, Ply: 3}
	wrapped := fmt.Errorf("session: %w", moveErr)

	var extracted *MoveError
	if !As(wrapped, &extracted) {
		t.Fatal("As(wrapped, *MoveError) = false, want true")
	}
	if extracted.Ply != 3 {
		t.Errorf("Ply = %d, want 3", extracted.Ply)
	}
	if !Is(wrapped, ErrIllegalMove) {
		t.Error("Is(wrapped, ErrIllegalMove) = false, want true")
	}
}

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			name: "file line column",
			err:  &ParseError{Err: ErrInvalidFEN, File: "positions.txt", Line: 4, Column: 2},
			want: "positions.txt:4:2: invalid FEN string",
		},
		{
			name: "line only with expected and got",
			err:  &ParseError{Line: 2, Expected: "square", Got: "z9"},
			want: "line 2: expected square, got z9",
		},
		{
			name: "got only",
			err:  &ParseError{Got: "jump"},
			want: "unexpected jump",
		},
		{
			name: "empty",
			err:  &ParseError{},
			want: "parse error",
		},
		{
			name: "underlying only",
			err:  &ParseError{Err: ErrUnknownCommand},
			want: "unknown command",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ParseError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseError_Unwrap(t *testing.T) {
	err := &ParseError{Err: ErrInvalidSquare, Line: 1}
	if !errors.Is(err, ErrInvalidSquare) {
		t.Error("errors.Is(ParseError, ErrInvalidSquare) = false, want true")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}

	err := Wrapf(ErrInvalidLayout, "layout %q", "hexagonal")
	if !errors.Is(err, ErrInvalidLayout) {
		t.Error("Wrapf result does not wrap ErrInvalidLayout")
	}
	if want := `layout "hexagonal": invalid layout`; err.Error() != want {
		t.Errorf("Wrapf() = %q, want %q", err.Error(), want)
	}
}
