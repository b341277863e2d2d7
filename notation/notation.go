/*
Package notation implements UCI long algebraic notation only (e.g. "e2e4",
"e7e8q") -- the minimal human-readable form the cmd/chego sketch needs to
print and read moves. Full SAN/PGN generation (disambiguation, check and
mate suffixes) is out of scope; that remains a terminal/notation concern
this module doesn't take on.
*/
package notation

import (
	"fmt"
	"strings"

	"github.com/halvardk/chego"
)

// Format renders m as a UCI long algebraic string.
func Format(m chego.Move) string {
	var b strings.Builder
	b.Grow(5)
	b.WriteString(chego.Square2String[m.From()])
	b.WriteString(chego.Square2String[m.To()])
	if m.Type() == chego.MovePromotion {
		b.WriteByte(promoLetter(m.PromoPiece()))
	}
	return b.String()
}

func promoLetter(f chego.PromotionFlag) byte {
	switch f {
	case chego.PromotionKnight:
		return 'n'
	case chego.PromotionBishop:
		return 'b'
	case chego.PromotionRook:
		return 'r'
	default:
		return 'q'
	}
}

// Parse resolves a UCI long algebraic string into a concrete [chego.Move]
// given the position it's played in, inferring castling and en-passant move
// types from context the way the move encoding requires; a promotion is
// taken from the fifth letter.
func Parse(p *chego.Position, s string) (chego.Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return 0, fmt.Errorf("notation: malformed UCI move %q", s)
	}
	from, ok := parseSquare(s[0:2])
	if !ok {
		return 0, fmt.Errorf("notation: invalid origin square in %q", s)
	}
	to, ok := parseSquare(s[2:4])
	if !ok {
		return 0, fmt.Errorf("notation: invalid destination square in %q", s)
	}

	if len(s) == 5 {
		flag, ok := parsePromoLetter(s[4])
		if !ok {
			return 0, fmt.Errorf("notation: invalid promotion letter in %q", s)
		}
		return chego.NewPromotionMove(to, from, flag), nil
	}

	moved := p.GetPieceFromSquare(from)
	if chego.PieceSpecies(moved) == chego.SpeciesKing {
		kingHome := map[int]bool{4: true, 60: true}
		if kingHome[from] && (to == from+2 || to == from-2) {
			return chego.NewMove(to, from, chego.MoveCastling), nil
		}
	}
	if chego.PieceSpecies(moved) == chego.SpeciesPawn && to == p.EPTarget && p.GetPieceFromSquare(to) == chego.PieceNone {
		return chego.NewMove(to, from, chego.MoveEnPassant), nil
	}
	return chego.NewMove(to, from, chego.MoveNormal), nil
}

func parseSquare(s string) (int, bool) {
	if len(s) != 2 {
		return 0, false
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return 0, false
	}
	return int(rank-'1')*8 + int(file-'a'), true
}

func parsePromoLetter(c byte) (chego.PromotionFlag, bool) {
	switch c {
	case 'n':
		return chego.PromotionKnight, true
	case 'b':
		return chego.PromotionBishop, true
	case 'r':
		return chego.PromotionRook, true
	case 'q':
		return chego.PromotionQueen, true
	}
	return 0, false
}
