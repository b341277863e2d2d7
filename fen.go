/*
fen.go implements conversions between Forsyth-Edwards Notation (FEN) strings
and [Position] values. Functions in this file expect the passed FEN strings
to be well-formed, and may panic if they are not -- callers validating
untrusted input should do so before calling ParseFEN.
*/

package chego

import (
	"strconv"
	"strings"
)

// InitialPositionFEN is the FEN of the standard chess starting position.
const InitialPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewInitialPosition builds the standard starting [Position].
func NewInitialPosition() Position {
	return ParseFEN(InitialPositionFEN)
}

/*
ParseFEN parses fen into a [Position]. A FEN string has six space-separated
fields: piece placement, active color, castling rights, en passant target
square, halfmove clock, and fullmove number.
*/
func ParseFEN(fen string) Position {
	var p Position
	p.EPTarget = -1
	p.KingSquare = [2]Square{-1, -1}

	fields := strings.SplitN(fen, " ", 6)

	placePiecesFromFEN(&p, fields[0])

	if len(fields) > 1 && fields[1] == "b" {
		p.ActiveColor = ColorBlack
	}

	if len(fields) > 2 {
		for i := 0; i < len(fields[2]); i++ {
			switch fields[2][i] {
			case 'K':
				p.CastlingRights |= CastlingWhiteShort
			case 'Q':
				p.CastlingRights |= CastlingWhiteLong
			case 'k':
				p.CastlingRights |= CastlingBlackShort
			case 'q':
				p.CastlingRights |= CastlingBlackLong
			}
		}
	}

	if len(fields) > 3 {
		p.EPTarget = string2Square(fields[3])
	}

	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			panic("chego: cannot parse halfmove counter from FEN string")
		}
		p.HalfmoveCnt = n
	}

	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			panic("chego: cannot parse fullmove counter from FEN string")
		}
		p.FullmoveCnt = n
	} else {
		p.FullmoveCnt = 1
	}

	p.Hash = p.computeHash()
	return p
}

func placePiecesFromFEN(p *Position, piecePlacement string) {
	for i := range p.Grid.data {
		p.Grid.data[i] = 0xFF // both nibbles empty.
	}

	square := 56
	for i := 0; i < len(piecePlacement); i++ {
		char := piecePlacement[i]

		switch {
		case char == '/':
			square -= 16
		case char >= '1' && char <= '8':
			square += int(char - '0')
		default:
			piece := fenCharToPiece(char)
			p.placePiece(square, piece)
			square++
		}
	}
}

func fenCharToPiece(char byte) Piece {
	switch char {
	case 'P':
		return PieceWPawn
	case 'N':
		return PieceWKnight
	case 'B':
		return PieceWBishop
	case 'R':
		return PieceWRook
	case 'Q':
		return PieceWQueen
	case 'K':
		return PieceWKing
	case 'p':
		return PieceBPawn
	case 'n':
		return PieceBKnight
	case 'b':
		return PieceBBishop
	case 'r':
		return PieceBRook
	case 'q':
		return PieceBQueen
	case 'k':
		return PieceBKing
	}
	panic("chego: invalid piece character in FEN string: " + string(char))
}

// SerializeFEN serializes p into a FEN string.
func SerializeFEN(p Position) string {
	var fen strings.Builder
	fen.Grow(64)

	fen.WriteString(serializeBoard(&p))

	if p.ActiveColor == ColorWhite {
		fen.WriteString(" w ")
	} else {
		fen.WriteString(" b ")
	}

	cnt := 0
	if p.CastlingRights&CastlingWhiteShort != 0 {
		fen.WriteByte('K')
		cnt++
	}
	if p.CastlingRights&CastlingWhiteLong != 0 {
		fen.WriteByte('Q')
		cnt++
	}
	if p.CastlingRights&CastlingBlackShort != 0 {
		fen.WriteByte('k')
		cnt++
	}
	if p.CastlingRights&CastlingBlackLong != 0 {
		fen.WriteByte('q')
		cnt++
	}
	if cnt == 0 {
		fen.WriteByte('-')
	}
	fen.WriteByte(' ')

	if p.EPTarget < 0 {
		fen.WriteString("- ")
	} else {
		fen.WriteString(Square2String[p.EPTarget])
		fen.WriteByte(' ')
	}

	fen.WriteString(strconv.Itoa(p.HalfmoveCnt))
	fen.WriteByte(' ')
	fen.WriteString(strconv.Itoa(p.FullmoveCnt))

	return fen.String()
}

func serializeBoard(p *Position) string {
	var b strings.Builder
	b.Grow(20)

	emptySquares := byte(0)
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			sq := rank*8 + file
			piece := p.Grid.Get(sq)

			if piece == PieceNone {
				emptySquares++
			} else {
				if emptySquares > 0 {
					b.WriteByte('0' + emptySquares)
					emptySquares = 0
				}
				b.WriteByte(PieceSymbols[piece])
			}
		}
		if emptySquares > 0 {
			b.WriteByte('0' + emptySquares)
			emptySquares = 0
		}
		if rank != 0 {
			b.WriteByte('/')
		}
	}

	return b.String()
}

// string2Square parses a square string ("e4") into a scalar [Square],
// or -1 for "-".
func string2Square(str string) int {
	if str[0] == '-' {
		return -1
	}
	file := int(str[0] - 'a')
	rank := int(str[1]-'0') - 1
	return rank*8 + file
}
