package engine

import (
	"testing"

	"github.com/lgbarn/tilechess-go/internal/chess"
	"github.com/lgbarn/tilechess-go/internal/testutil"
)

// positions shared by the checkmate, stalemate and classification tests.
var (
	twoRooksMate = []func() testutil.Placement{
		func() testutil.Placement { return testutil.At(NewKing(chess.White), 7, 2) },
		func() testutil.Placement { return testutil.At(NewRook(chess.Black), 7, 0) },
		func() testutil.Placement { return testutil.At(NewRook(chess.Black), 6, 0) },
	}
	rookQueenMate = []func() testutil.Placement{
		func() testutil.Placement { return testutil.At(NewKing(chess.Black), 7, 2) },
		func() testutil.Placement { return testutil.At(NewRook(chess.White), 7, 0) },
		func() testutil.Placement { return testutil.At(NewQueen(chess.White), 6, 0) },
	}
	backRankMate = []func() testutil.Placement{
		func() testutil.Placement { return testutil.At(NewKing(chess.Black), 0, 6) },
		func() testutil.Placement { return testutil.At(NewPawn(chess.Black), 1, 5) },
		func() testutil.Placement { return testutil.At(NewPawn(chess.Black), 1, 6) },
		func() testutil.Placement { return testutil.At(NewPawn(chess.Black), 1, 7) },
		func() testutil.Placement { return testutil.At(NewRook(chess.White), 0, 0) },
		func() testutil.Placement { return testutil.At(NewKing(chess.White), 7, 6) },
	}
	queenStalemate = []func() testutil.Placement{
		func() testutil.Placement { return testutil.At(NewKing(chess.Black), 0, 0) },
		func() testutil.Placement { return testutil.At(NewQueen(chess.White), 2, 1) },
		func() testutil.Placement { return testutil.At(NewKing(chess.White), 7, 7) },
	}
)

// build places fresh pieces so parallel tests never share them.
func build(position []func() testutil.Placement, extra ...testutil.Placement) *chess.Board {
	placements := make([]testutil.Placement, 0, len(position)+len(extra))
	for _, f := range position {
		placements = append(placements, f())
	}
	return testutil.NewBoard(append(placements, extra...)...)
}

func TestCheckmate(t *testing.T) {
	tests := []struct {
		name  string
		board func() *chess.Board
		user  chess.Color
		want  bool
	}{
		{
			name:  "two rooks against white king",
			board: func() *chess.Board { return build(twoRooksMate) },
			user:  chess.White,
			want:  true,
		},
		{
			name:  "rook and queen against black king",
			board: func() *chess.Board { return build(rookQueenMate) },
			user:  chess.Black,
			want:  true,
		},
		{
			name:  "back rank",
			board: func() *chess.Board { return build(backRankMate) },
			user:  chess.Black,
			want:  true,
		},
		{
			name: "back rank with luft",
			board: func() *chess.Board {
				b := build(backRankMate)
				b.Evict(1, 7)
				return b
			},
			user: chess.Black,
			want: false,
		},
		{
			name: "attacker can be captured",
			board: func() *chess.Board {
				return build(backRankMate, testutil.At(NewRook(chess.Black), 3, 0))
			},
			user: chess.Black,
			want: false,
		},
		{
			name: "check can be blocked",
			board: func() *chess.Board {
				return build(backRankMate, testutil.At(NewBishop(chess.Black), 1, 4))
			},
			user: chess.Black,
			want: false,
		},
		{
			name: "king escapes",
			board: func() *chess.Board {
				return testutil.NewBoard(
					testutil.At(NewKing(chess.White), 7, 4),
					testutil.At(NewRook(chess.Black), 7, 0),
				)
			},
			user: chess.White,
			want: false,
		},
		{
			name: "king captures lone attacker",
			board: func() *chess.Board {
				return testutil.NewBoard(
					testutil.At(NewKing(chess.White), 7, 0),
					testutil.At(NewQueen(chess.Black), 6, 1),
					testutil.At(NewPawn(chess.White), 6, 0),
					testutil.At(NewPawn(chess.White), 7, 1),
				)
			},
			user: chess.White,
			want: false,
		},
		{
			name: "defender reaches through the king square",
			board: func() *chess.Board {
				return testutil.NewBoard(
					testutil.At(NewKing(chess.White), 6, 4),
					testutil.At(NewRook(chess.White), 7, 4),
					testutil.At(NewBishop(chess.White), 7, 3),
					testutil.At(NewBishop(chess.White), 7, 5),
					testutil.At(NewRook(chess.Black), 0, 4),
					testutil.At(NewRook(chess.Black), 4, 3),
					testutil.At(NewRook(chess.Black), 4, 5),
					testutil.At(NewKing(chess.Black), 0, 0),
				)
			},
			user: chess.White,
			want: false,
		},
		{
			name:  "not in check",
			board: NewStandardBoard,
			user:  chess.White,
			want:  false,
		},
		{
			name:  "stalemate is not mate",
			board: func() *chess.Board { return build(queenStalemate) },
			user:  chess.Black,
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := tt.board()
			before := testutil.TakeSnapshot(b)
			if got := Checkmate(b, tt.user, tt.user.Opposite()); got != tt.want {
				t.Errorf("Checkmate(%s) = %v, want %v", tt.user, got, tt.want)
			}
			testutil.AssertUnchanged(t, before, b, "Checkmate must restore the board")
		})
	}
}

// TestCheckmate_PawnCheck covers a check given only by a pawn: the pawn is
// collected as an attacker with the king still on its tile, and the king
// itself can take it.
func TestCheckmate_PawnCheck(t *testing.T) {
	b := testutil.NewBoard(
		testutil.At(NewKing(chess.Black), 0, 0),
		testutil.At(NewPawn(chess.White), 1, 1),
		testutil.At(NewKnight(chess.White), 2, 2),
		testutil.At(NewKing(chess.White), 7, 7),
	)
	before := testutil.TakeSnapshot(b)

	testutil.AssertEqual(t, AttackingTiles(b, chess.White, 0, 0), []chess.Pos{{Row: 1, Col: 1}})
	testutil.AssertTrue(t, Check(b, chess.Black, chess.White), "pawn gives check")
	testutil.AssertFalse(t, Checkmate(b, chess.Black, chess.White), "king can take the pawn")
	testutil.AssertUnchanged(t, before, b)
}

func TestStalemate(t *testing.T) {
	tests := []struct {
		name  string
		board func() *chess.Board
		color chess.Color
		want  bool
	}{
		{
			name:  "queen boxes king in corner",
			board: func() *chess.Board { return build(queenStalemate) },
			color: chess.Black,
			want:  true,
		},
		{
			name: "blocked pawn cannot help",
			board: func() *chess.Board {
				return build(queenStalemate,
					testutil.At(NewPawn(chess.Black), 5, 7),
					testutil.At(NewPawn(chess.White), 6, 7),
				)
			},
			color: chess.Black,
			want:  true,
		},
		{
			name: "free pawn breaks stalemate",
			board: func() *chess.Board {
				return build(queenStalemate, testutil.At(NewPawn(chess.Black), 3, 7))
			},
			color: chess.Black,
			want:  false,
		},
		{
			name: "rook reaches block tile through the king square",
			board: func() *chess.Board {
				return testutil.NewBoard(
					testutil.At(NewKing(chess.Black), 0, 1),
					testutil.At(NewRook(chess.Black), 0, 0),
					testutil.At(NewPawn(chess.Black), 1, 0),
					testutil.At(NewBishop(chess.White), 2, 0),
					testutil.At(NewRook(chess.White), 7, 2),
					testutil.At(NewKing(chess.White), 7, 7),
				)
			},
			color: chess.Black,
			want:  false,
		},
		{
			name:  "other side is not stalemated",
			board: func() *chess.Board { return build(queenStalemate) },
			color: chess.White,
			want:  false,
		},
		{
			name:  "in check is never stalemate",
			board: func() *chess.Board { return build(twoRooksMate) },
			color: chess.White,
			want:  false,
		},
		{
			name:  "opening position",
			board: NewStandardBoard,
			color: chess.White,
			want:  false,
		},
		{
			name:  "no king",
			board: func() *chess.Board { return testutil.NewBoard(testutil.At(NewPawn(chess.Black), 4, 4)) },
			color: chess.White,
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := tt.board()
			before := testutil.TakeSnapshot(b)
			if got := Stalemate(b, tt.color); got != tt.want {
				t.Errorf("Stalemate(%s) = %v, want %v", tt.color, got, tt.want)
			}
			testutil.AssertUnchanged(t, before, b, "Stalemate must restore the board")
		})
	}
}

func TestColorStalemateHelpers(t *testing.T) {
	b := build(queenStalemate)
	testutil.AssertTrue(t, BlackStalemate(b), "BlackStalemate")
	testutil.AssertFalse(t, WhiteStalemate(b), "WhiteStalemate")
	testutil.AssertTrue(t, IsStalemate(b), "IsStalemate")
}

// TestCheckmateStalemateExclusive verifies no position is both checkmate and
// stalemate for the same side.
func TestCheckmateStalemateExclusive(t *testing.T) {
	boards := map[string]func() *chess.Board{
		"standard":    NewStandardBoard,
		"special":     NewSpecialBoard,
		"two rooks":   func() *chess.Board { return build(twoRooksMate) },
		"rook queen":  func() *chess.Board { return build(rookQueenMate) },
		"back rank":   func() *chess.Board { return build(backRankMate) },
		"stalemate":   func() *chess.Board { return build(queenStalemate) },
		"bare kings":  func() *chess.Board { return testutil.NewBoard(testutil.At(NewKing(chess.White), 7, 7), testutil.At(NewKing(chess.Black), 0, 0)) },
		"rook checks": func() *chess.Board { return testutil.NewBoard(testutil.At(NewKing(chess.White), 5, 5), testutil.At(NewRook(chess.Black), 5, 0)) },
	}

	for name, newBoard := range boards {
		t.Run(name, func(t *testing.T) {
			b := newBoard()
			for _, c := range []chess.Color{chess.White, chess.Black} {
				if Checkmate(b, c, c.Opposite()) && Stalemate(b, c) {
					t.Errorf("%s is both checkmated and stalemated", c)
				}
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		board      func() *chess.Board
		want       Status
		terminal   bool
		winner     chess.Color
		haveWinner bool
	}{
		{"opening", NewStandardBoard, WhiteToMove, false, chess.Black, false},
		{"black to move", func() *chess.Board {
			b := NewStandardBoard()
			b.UpdateCurrentPlayer()
			return b
		}, BlackToMove, false, chess.Black, false},
		{"white mated", func() *chess.Board { return build(twoRooksMate) }, WhiteCheckmated, true, chess.Black, true},
		{"black mated", func() *chess.Board { return build(rookQueenMate) }, BlackCheckmated, true, chess.White, true},
		{"stalemate", func() *chess.Board { return build(queenStalemate) }, StalemateStatus, true, chess.Black, false},
		{"white in check", func() *chess.Board {
			return testutil.NewBoard(testutil.At(NewKing(chess.White), 5, 5), testutil.At(NewRook(chess.Black), 5, 0))
		}, WhiteInCheck, false, chess.Black, false},
		{"black in check", func() *chess.Board {
			return testutil.NewBoard(testutil.At(NewKing(chess.Black), 7, 2), testutil.At(NewBishop(chess.White), 5, 0))
		}, BlackInCheck, false, chess.Black, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Classify(tt.board())
			if got != tt.want {
				t.Fatalf("Classify() = %v, want %v", got, tt.want)
			}
			testutil.AssertEqual(t, got.Terminal(), tt.terminal, "Terminal()")
			winner, ok := got.Winner()
			testutil.AssertEqual(t, ok, tt.haveWinner, "Winner() ok")
			if ok {
				testutil.AssertEqual(t, winner, tt.winner, "Winner()")
			}
		})
	}
}

func TestStatus_String(t *testing.T) {
	tests := []struct {
		s    Status
		want string
	}{
		{WhiteToMove, "white to move"},
		{BlackInCheck, "black in check"},
		{WhiteCheckmated, "white checkmated"},
		{StalemateStatus, "stalemate"},
		{Status(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", int(tt.s), got, tt.want)
		}
	}
}
