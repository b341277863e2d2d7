/*
Package render draws a [chego.Position] to the terminal: white pieces
bright, black pieces dim, and the squares touched by the last move
highlighted -- the out-of-scope terminal UI collaborator, kept deliberately
thin.
*/
package render

import (
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/halvardk/chego"
)

var (
	whitePiece     = color.New(color.FgHiWhite, color.Bold)
	blackPiece     = color.New(color.FgHiBlack, color.Bold)
	lastMoveSquare = color.New(color.BgYellow, color.FgBlack)
	emptySquare    = color.New(color.Faint)
)

// Board renders p as an 8x8 grid with rank and file labels, from White's
// point of view. lastMove, if non-zero, has its origin and destination
// squares highlighted.
func Board(p *chego.Position, lastMove chego.Move) string {
	var touched map[int]bool
	if lastMove != 0 {
		touched = map[int]bool{lastMove.From(): true, lastMove.To(): true}
	}

	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		b.WriteString(strconv.Itoa(rank + 1))
		b.WriteByte(' ')
		for file := 0; file < 8; file++ {
			sq := rank*8 + file
			piece := p.GetPieceFromSquare(sq)
			glyph := pieceGlyph(piece)

			switch {
			case touched[sq]:
				b.WriteString(lastMoveSquare.Sprint(glyph))
			case piece == chego.PieceNone:
				b.WriteString(emptySquare.Sprint(glyph))
			case chego.PieceColor(piece) == chego.ColorWhite:
				b.WriteString(whitePiece.Sprint(glyph))
			default:
				b.WriteString(blackPiece.Sprint(glyph))
			}
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	b.WriteString("  a b c d e f g h\n")
	return b.String()
}

func pieceGlyph(piece chego.Piece) string {
	if piece == chego.PieceNone {
		return "."
	}
	return string(chego.PieceSymbols[piece])
}
