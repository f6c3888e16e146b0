package engine

import (
	"testing"

	"github.com/lgbarn/tilechess-go/internal/chess"
	"github.com/lgbarn/tilechess-go/internal/testutil"
)

// TestIsValidMove_Geometry checks every destination from the centre of an
// otherwise empty board against each variant's movement table.
func TestIsValidMove_Geometry(t *testing.T) {
	tests := []struct {
		name string
		kind chess.Kind
		want func(dr, dc int) bool
	}{
		{"knight", chess.Knight, func(dr, dc int) bool { return jump(dr, dc, 1, 2) }},
		{"leaper", chess.Leaper, func(dr, dc int) bool { return jump(dr, dc, 0, 2) }},
		{"nightrider", chess.NightRider, func(dr, dc int) bool { return jump(dr, dc, 1, 3) }},
		{"bishop", chess.Bishop, func(dr, dc int) bool { return dr != 0 && abs(dr) == abs(dc) }},
		{"rook", chess.Rook, func(dr, dc int) bool { return (dr == 0) != (dc == 0) }},
		{"queen", chess.Queen, func(dr, dc int) bool {
			return (dr != 0 && abs(dr) == abs(dc)) || (dr == 0) != (dc == 0)
		}},
		{"king", chess.King, func(dr, dc int) bool { return max(abs(dr), abs(dc)) == 1 }},
	}

	const row, col = 3, 4
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := NewPiece(tt.kind, chess.White)
			b := testutil.NewBoard(testutil.At(p, row, col))

			for er := -1; er <= chess.BoardSize; er++ {
				for ec := -1; ec <= chess.BoardSize; ec++ {
					inBounds := er >= 0 && er < chess.BoardSize && ec >= 0 && ec < chess.BoardSize
					want := inBounds && tt.want(er-row, ec-col)
					if got := p.IsValidMove(b, row, col, er, ec); got != want {
						t.Errorf("IsValidMove(%d,%d -> %d,%d) = %v, want %v", row, col, er, ec, got, want)
					}
				}
			}
		})
	}
}

func TestIsValidMove_AllyAndEnemyTargets(t *testing.T) {
	tests := []struct {
		name   string
		mover  chess.Piece
		target chess.Color
		want   bool
	}{
		{"rook onto ally", NewRook(chess.White), chess.White, false},
		{"rook onto enemy", NewRook(chess.White), chess.Black, true},
		{"knight onto ally", NewKnight(chess.Black), chess.Black, false},
		{"knight onto enemy", NewKnight(chess.Black), chess.White, true},
		{"leaper onto ally", NewLeaper(chess.White), chess.White, false},
		{"nightrider onto enemy", NewNightRider(chess.White), chess.Black, true},
		{"king onto ally", NewKing(chess.Black), chess.Black, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			// Every variant under test reaches (4,3) from (2,3) or (3,2)
			// geometrically; pick the start that fits.
			start := chess.Pos{Row: 2, Col: 3}
			switch tt.mover.Kind() {
			case chess.Knight:
				start = chess.Pos{Row: 2, Col: 2}
			case chess.NightRider:
				start = chess.Pos{Row: 3, Col: 0}
			case chess.King:
				start = chess.Pos{Row: 3, Col: 3}
			}
			b := testutil.NewBoard(
				testutil.At(tt.mover, start.Row, start.Col),
				testutil.At(NewPawn(tt.target), 4, 3),
			)
			got := tt.mover.IsValidMove(b, start.Row, start.Col, 4, 3)
			if got != tt.want {
				t.Errorf("IsValidMove(%v -> 4,3) = %v, want %v", start, got, tt.want)
			}
		})
	}
}

func TestIsValidMove_PathBlocking(t *testing.T) {
	tests := []struct {
		name     string
		mover    chess.Piece
		from, to chess.Pos
		blocker  chess.Pos
		want     bool
	}{
		{"rook blocked", NewRook(chess.White), chess.Pos{Row: 0, Col: 0}, chess.Pos{Row: 0, Col: 5}, chess.Pos{Row: 0, Col: 3}, false},
		{"rook clear beyond blocker", NewRook(chess.White), chess.Pos{Row: 0, Col: 0}, chess.Pos{Row: 0, Col: 2}, chess.Pos{Row: 0, Col: 3}, true},
		{"rook column blocked", NewRook(chess.Black), chess.Pos{Row: 7, Col: 7}, chess.Pos{Row: 1, Col: 7}, chess.Pos{Row: 4, Col: 7}, false},
		{"bishop blocked", NewBishop(chess.White), chess.Pos{Row: 0, Col: 0}, chess.Pos{Row: 5, Col: 5}, chess.Pos{Row: 2, Col: 2}, false},
		{"bishop anti-diagonal blocked", NewBishop(chess.Black), chess.Pos{Row: 7, Col: 0}, chess.Pos{Row: 2, Col: 5}, chess.Pos{Row: 4, Col: 3}, false},
		{"queen diagonal blocked", NewQueen(chess.White), chess.Pos{Row: 4, Col: 4}, chess.Pos{Row: 1, Col: 1}, chess.Pos{Row: 3, Col: 3}, false},
		{"queen straight blocked", NewQueen(chess.White), chess.Pos{Row: 4, Col: 4}, chess.Pos{Row: 4, Col: 0}, chess.Pos{Row: 4, Col: 1}, false},
		{"knight jumps", NewKnight(chess.White), chess.Pos{Row: 4, Col: 4}, chess.Pos{Row: 2, Col: 5}, chess.Pos{Row: 3, Col: 4}, true},
		{"leaper jumps", NewLeaper(chess.White), chess.Pos{Row: 4, Col: 4}, chess.Pos{Row: 4, Col: 6}, chess.Pos{Row: 4, Col: 5}, true},
		{"nightrider jumps", NewNightRider(chess.White), chess.Pos{Row: 4, Col: 4}, chess.Pos{Row: 5, Col: 7}, chess.Pos{Row: 4, Col: 5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			for _, blockerColor := range []chess.Color{chess.White, chess.Black} {
				b := testutil.NewBoard(
					testutil.At(tt.mover.Clone(), tt.from.Row, tt.from.Col),
					testutil.At(NewKnight(blockerColor), tt.blocker.Row, tt.blocker.Col),
				)
				p := b.Piece(tt.from.Row, tt.from.Col)
				got := p.IsValidMove(b, tt.from.Row, tt.from.Col, tt.to.Row, tt.to.Col)
				if got != tt.want {
					t.Errorf("%s blocker: IsValidMove(%v -> %v) = %v, want %v", blockerColor, tt.from, tt.to, got, tt.want)
				}
			}
		})
	}
}

func TestPawn_IsValidMove(t *testing.T) {
	type place struct {
		color    chess.Color
		row, col int
	}
	tests := []struct {
		name   string
		pawn   chess.Color
		from   chess.Pos
		to     chess.Pos
		others []place
		want   bool
	}{
		{"black single step", chess.Black, chess.Pos{Row: 1, Col: 3}, chess.Pos{Row: 2, Col: 3}, nil, true},
		{"black double step from home", chess.Black, chess.Pos{Row: 1, Col: 3}, chess.Pos{Row: 3, Col: 3}, nil, true},
		{"black triple step", chess.Black, chess.Pos{Row: 1, Col: 3}, chess.Pos{Row: 4, Col: 3}, nil, false},
		{"black backwards", chess.Black, chess.Pos{Row: 2, Col: 3}, chess.Pos{Row: 1, Col: 3}, nil, false},
		{"black double step off home", chess.Black, chess.Pos{Row: 2, Col: 3}, chess.Pos{Row: 4, Col: 3}, nil, false},
		{"black double step jumps piece", chess.Black, chess.Pos{Row: 1, Col: 3}, chess.Pos{Row: 3, Col: 3}, []place{{chess.White, 2, 3}}, false},
		{"black straight onto enemy", chess.Black, chess.Pos{Row: 1, Col: 3}, chess.Pos{Row: 2, Col: 3}, []place{{chess.White, 2, 3}}, false},
		{"black diagonal onto empty", chess.Black, chess.Pos{Row: 1, Col: 3}, chess.Pos{Row: 2, Col: 4}, nil, false},
		{"black diagonal capture", chess.Black, chess.Pos{Row: 1, Col: 3}, chess.Pos{Row: 2, Col: 4}, []place{{chess.White, 2, 4}}, true},
		{"black diagonal onto ally", chess.Black, chess.Pos{Row: 1, Col: 3}, chess.Pos{Row: 2, Col: 2}, []place{{chess.Black, 2, 2}}, false},
		{"black sideways", chess.Black, chess.Pos{Row: 3, Col: 3}, chess.Pos{Row: 3, Col: 4}, nil, false},
		{"white single step", chess.White, chess.Pos{Row: 6, Col: 0}, chess.Pos{Row: 5, Col: 0}, nil, true},
		{"white double step from home", chess.White, chess.Pos{Row: 6, Col: 0}, chess.Pos{Row: 4, Col: 0}, nil, true},
		{"white backwards", chess.White, chess.Pos{Row: 6, Col: 0}, chess.Pos{Row: 7, Col: 0}, nil, false},
		{"white diagonal capture", chess.White, chess.Pos{Row: 4, Col: 4}, chess.Pos{Row: 3, Col: 3}, []place{{chess.Black, 3, 3}}, true},
		{"white backwards capture", chess.White, chess.Pos{Row: 4, Col: 4}, chess.Pos{Row: 5, Col: 3}, []place{{chess.Black, 5, 3}}, false},
		{"white off the board", chess.White, chess.Pos{Row: 0, Col: 0}, chess.Pos{Row: -1, Col: 0}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pawn := NewPawn(tt.pawn)
			b := testutil.NewBoard(testutil.At(pawn, tt.from.Row, tt.from.Col))
			for _, o := range tt.others {
				b.Place(NewRook(o.color), o.row, o.col)
			}
			got := pawn.IsValidMove(b, tt.from.Row, tt.from.Col, tt.to.Row, tt.to.Col)
			if got != tt.want {
				t.Errorf("IsValidMove(%v -> %v) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestPawn_MovePieceMarksMoved(t *testing.T) {
	pawn := NewPawn(chess.White)
	b := testutil.NewBoard(testutil.At(pawn, chess.WhitePawnRank, 2))

	testutil.AssertFalse(t, pawn.HasMoved(), "fresh pawn")
	testutil.AssertFalse(t, pawn.MovePiece(b, 6, 2, 3, 2), "three-square advance")
	testutil.AssertFalse(t, pawn.HasMoved(), "after rejected move")
	testutil.AssertTrue(t, pawn.MovePiece(b, 6, 2, 4, 2), "double step")
	testutil.AssertTrue(t, pawn.HasMoved(), "after double step")
	testutil.AssertEqual(t, chess.Pos{Row: pawn.Row(), Col: pawn.Col()}, chess.Pos{Row: 4, Col: 2})
}

func TestMovePiece_Capture(t *testing.T) {
	rook := NewRook(chess.White)
	victim := NewBishop(chess.Black)
	b := testutil.NewBoard(
		testutil.At(rook, 7, 0),
		testutil.At(victim, 2, 0),
		testutil.At(NewKing(chess.Black), 0, 4),
	)

	if !rook.MovePiece(b, 7, 0, 2, 0) {
		t.Fatal("MovePiece(7,0 -> 2,0) = false, want true")
	}
	testutil.AssertTrue(t, b.Piece(2, 0) == rook, "rook on destination")
	testutil.AssertFalse(t, b.Occupied(7, 0), "source vacated")
	testutil.AssertEqual(t, b.Count(chess.Black), 1)
	testutil.AssertEqual(t, len(b.Pieces(chess.Black)), 1)
	testutil.AssertEqual(t, b.Count(chess.White), 1)
}

// TestMovePiece_RejectedLeavesBoardUnchanged covers every way a move can be
// refused: bad geometry, blocked path, ally target, off-board target and a
// start tile that does not hold the piece.
func TestMovePiece_RejectedLeavesBoardUnchanged(t *testing.T) {
	tests := []struct {
		name           string
		startR, startC int
		endR, endC     int
	}{
		{"bad geometry", 7, 1, 4, 1},
		{"blocked path", 7, 0, 4, 0},
		{"ally target", 7, 1, 6, 3},
		{"off board", 7, 1, 8, 2},
		{"wrong start tile", 6, 4, 4, 4},
		{"same square", 7, 1, 7, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := NewStandardBoard()
			p := b.Piece(tt.startR, tt.startC)
			if tt.name == "wrong start tile" {
				p = b.Piece(7, 6)
			}
			before := testutil.TakeSnapshot(b)

			if p.MovePiece(b, tt.startR, tt.startC, tt.endR, tt.endC) {
				t.Fatalf("MovePiece(%d,%d -> %d,%d) = true, want false", tt.startR, tt.startC, tt.endR, tt.endC)
			}
			testutil.AssertUnchanged(t, before, b)
		})
	}
}

func TestCanMove(t *testing.T) {
	tests := []struct {
		name  string
		setup func() (*chess.Board, chess.Piece)
		want  bool
	}{
		{
			name: "pawn free to advance",
			setup: func() (*chess.Board, chess.Piece) {
				p := NewPawn(chess.Black)
				return testutil.NewBoard(testutil.At(p, 3, 3)), p
			},
			want: true,
		},
		{
			name: "pawn blocked head on",
			setup: func() (*chess.Board, chess.Piece) {
				p := NewPawn(chess.Black)
				return testutil.NewBoard(testutil.At(p, 3, 3), testutil.At(NewPawn(chess.White), 4, 3)), p
			},
			want: false,
		},
		{
			name: "pawn blocked but can capture",
			setup: func() (*chess.Board, chess.Piece) {
				p := NewPawn(chess.Black)
				return testutil.NewBoard(
					testutil.At(p, 3, 3),
					testutil.At(NewPawn(chess.White), 4, 3),
					testutil.At(NewPawn(chess.White), 4, 4),
				), p
			},
			want: true,
		},
		{
			name: "rook boxed in by allies",
			setup: func() (*chess.Board, chess.Piece) {
				b := NewStandardBoard()
				return b, b.Piece(7, 0)
			},
			want: false,
		},
		{
			name: "knight in opening",
			setup: func() (*chess.Board, chess.Piece) {
				b := NewStandardBoard()
				return b, b.Piece(7, 1)
			},
			want: true,
		},
		{
			name: "bishop boxed in by pawns",
			setup: func() (*chess.Board, chess.Piece) {
				b := NewStandardBoard()
				return b, b.Piece(0, 2)
			},
			want: false,
		},
		{
			name: "leaper in corner",
			setup: func() (*chess.Board, chess.Piece) {
				p := NewLeaper(chess.White)
				return testutil.NewBoard(testutil.At(p, 0, 0)), p
			},
			want: true,
		},
		{
			name: "nightrider in special opening",
			setup: func() (*chess.Board, chess.Piece) {
				b := NewSpecialBoard()
				return b, b.Piece(6, 0)
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, p := tt.setup()
			if got := p.CanMove(b); got != tt.want {
				t.Errorf("CanMove() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClone_CopiesState(t *testing.T) {
	pawn := NewPawn(chess.Black)
	b := testutil.NewBoard(testutil.At(pawn, 1, 1))
	testutil.AssertTrue(t, pawn.MovePiece(b, 1, 1, 2, 1))

	c, ok := pawn.Clone().(*Pawn)
	if !ok {
		t.Fatalf("Clone() returned %T, want *Pawn", pawn.Clone())
	}
	testutil.AssertTrue(t, c != pawn, "clone is a new value")
	testutil.AssertTrue(t, c.HasMoved(), "clone keeps moved flag")
	testutil.AssertEqual(t, c.Color(), chess.Black)
	testutil.AssertEqual(t, chess.Pos{Row: c.Row(), Col: c.Col()}, chess.Pos{Row: 2, Col: 1}, "clone keeps coordinates")
}

func TestNewPiece(t *testing.T) {
	for k := chess.Pawn; k <= chess.NightRider; k++ {
		p := NewPiece(k, chess.White)
		if p == nil {
			t.Fatalf("NewPiece(%v) = nil", k)
		}
		testutil.AssertEqual(t, p.Kind(), k)
		testutil.AssertEqual(t, p.Color(), chess.White)
	}
	testutil.AssertTrue(t, NewPiece(chess.Kind(42), chess.White) == nil, "unknown kind")
}
