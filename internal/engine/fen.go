package engine

import (
	notnil "github.com/notnil/chess"

	"github.com/lgbarn/tilechess-go/internal/chess"
	"github.com/lgbarn/tilechess-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var fromFENKind = map[notnil.PieceType]chess.Kind{
	notnil.Pawn:   chess.Pawn,
	notnil.Knight: chess.Knight,
	notnil.Bishop: chess.Bishop,
	notnil.Rook:   chess.Rook,
	notnil.Queen:  chess.Queen,
	notnil.King:   chess.King,
}

var toFENKind = map[chess.Kind]notnil.PieceType{
	chess.Pawn:   notnil.Pawn,
	chess.Knight: notnil.Knight,
	chess.Bishop: notnil.Bishop,
	chess.Rook:   notnil.Rook,
	chess.Queen:  notnil.Queen,
	chess.King:   notnil.King,
}

// squareFromRowCol maps grid coordinates to a square. Row 0 is rank 8.
func squareFromRowCol(row, col int) notnil.Square {
	return notnil.NewSquare(notnil.File(col), notnil.Rank(chess.BoardSize-1-row))
}

func rowColFromSquare(sq notnil.Square) (row, col int) {
	return chess.BoardSize - 1 - int(sq.Rank()), int(sq.File())
}

// BoardFromFEN builds a board from a FEN string. Castling, en passant and
// the move counters are accepted but ignored. Pawns off their home rank are
// marked as moved.
func BoardFromFEN(fen string) (*chess.Board, error) {
	opt, err := notnil.FEN(fen)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidFEN, "%q: %v", fen, err)
	}
	pos := notnil.NewGame(opt).Position()

	b := chess.NewBoard()
	board := pos.Board()
	for sq := notnil.A1; sq <= notnil.H8; sq++ {
		piece := board.Piece(sq)
		if piece == notnil.NoPiece {
			continue
		}
		color := chess.White
		if piece.Color() == notnil.Black {
			color = chess.Black
		}
		p := NewPiece(fromFENKind[piece.Type()], color)
		row, col := rowColFromSquare(sq)
		if pawn, ok := p.(*Pawn); ok {
			pawn.hasMoved = row != pawn.homeRank()
		}
		b.Place(p, row, col)
	}

	if pos.Turn() == notnil.Black {
		b.SetToMove(chess.Black)
	}
	return b, nil
}

// PlacementFEN returns the piece placement field for b. Leapers and night
// riders have no FEN letter.
func PlacementFEN(b *chess.Board) (string, error) {
	squares := make(map[notnil.Square]notnil.Piece)
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := b.Piece(row, col)
			if p == nil {
				continue
			}
			kind, ok := toFENKind[p.Kind()]
			if !ok {
				return "", errors.Wrapf(errors.ErrUnsupportedPiece, "%s at %s", p.Kind(), chess.Pos{Row: row, Col: col}.Algebraic())
			}
			color := notnil.White
			if p.Color() == chess.Black {
				color = notnil.Black
			}
			squares[squareFromRowCol(row, col)] = notnil.NewPiece(kind, color)
		}
	}
	return notnil.NewBoard(squares).String(), nil
}

// PositionFEN returns a full FEN for b with the side to move and no castling
// or en passant rights.
func PositionFEN(b *chess.Board) (string, error) {
	placement, err := PlacementFEN(b)
	if err != nil {
		return "", err
	}
	turn := "w"
	if b.CurrentPlayer().Color() == chess.Black {
		turn = "b"
	}
	return placement + " " + turn + " - - 0 1", nil
}
