/*
transcript.go implements the external game-transcript format: a
semicolon-separated sequence of tokens, each either "CastleKingside",
"CastleQueenside", "<square>:<square>" for an ordinary move, or
"<square>:<square>:<p>" for a promotion, where p is one of
q/Q/r/R/b/B/k/K (k/K meaning Knight, to avoid colliding with King). Squares
use the conventional uppercase file letter (A-H) followed by the rank digit,
e.g. "E2:E4".
*/

package chego

import (
	"fmt"
	"strings"
)

// TranscriptError reports why a transcript token was rejected: malformed
// syntax, or a well-formed move that isn't legal in the position it was
// applied to.
type TranscriptError struct {
	Token string
	Msg   string
}

func (e *TranscriptError) Error() string {
	return fmt.Sprintf("chego: transcript token %q: %s", e.Token, e.Msg)
}

const (
	tokenCastleKingside  = "CastleKingside"
	tokenCastleQueenside = "CastleQueenside"
)

// FormatTranscript renders a completed sequence of moves (each applied to
// the position it was legal in, in order starting from initial) into the
// external transcript format.
func FormatTranscript(initial Position, moves []Move) string {
	p := initial
	tokens := make([]string, 0, len(moves))
	for _, m := range moves {
		tokens = append(tokens, formatTranscriptToken(m))
		p.MakeMove(m)
	}
	return strings.Join(tokens, ";")
}

func formatTranscriptToken(m Move) string {
	if m.Type() == MoveCastling {
		switch m.To() {
		case SG1, SG8:
			return tokenCastleKingside
		case SC1, SC8:
			return tokenCastleQueenside
		}
	}
	token := strings.ToUpper(Square2String[m.From()]) + ":" + strings.ToUpper(Square2String[m.To()])
	if m.Type() == MovePromotion {
		token += ":" + promoLetter(m.PromoPiece())
	}
	return token
}

func promoLetter(f PromotionFlag) string {
	switch f {
	case PromotionKnight:
		return "k"
	case PromotionBishop:
		return "b"
	case PromotionRook:
		return "r"
	default:
		return "q"
	}
}

func promoFlagFromLetter(c byte) (PromotionFlag, bool) {
	switch c {
	case 'k', 'K':
		return PromotionKnight, true
	case 'b', 'B':
		return PromotionBishop, true
	case 'r', 'R':
		return PromotionRook, true
	case 'q', 'Q':
		return PromotionQueen, true
	}
	return 0, false
}

/*
ApplyTranscript parses transcript and pushes every move it describes onto
g, in order, stopping and returning a *TranscriptError at the first token
that is malformed or not legal in the position it's applied to. Moves
already pushed before the failing token remain applied.
*/
func ApplyTranscript(g *Game, transcript string) error {
	if transcript == "" {
		return nil
	}
	for _, tok := range strings.Split(transcript, ";") {
		m, err := resolveTranscriptToken(&g.Position, tok)
		if err != nil {
			return err
		}
		if !g.IsLegal(m) {
			return &TranscriptError{Token: tok, Msg: "not a legal move in this position"}
		}
		if err := g.Push(m); err != nil {
			return &TranscriptError{Token: tok, Msg: err.Error()}
		}
	}
	return nil
}

// resolveTranscriptToken turns one token into a concrete Move given p's
// current state, resolving the move-type ambiguity a bare square pair
// leaves (castling and promotion are explicit tokens; en passant is inferred
// from context).
func resolveTranscriptToken(p *Position, tok string) (Move, error) {
	switch tok {
	case tokenCastleKingside:
		if p.ActiveColor == ColorWhite {
			return NewMove(SG1, SE1, MoveCastling), nil
		}
		return NewMove(SG8, SE8, MoveCastling), nil
	case tokenCastleQueenside:
		if p.ActiveColor == ColorWhite {
			return NewMove(SC1, SE1, MoveCastling), nil
		}
		return NewMove(SC8, SE8, MoveCastling), nil
	}

	parts := strings.Split(tok, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, &TranscriptError{Token: tok, Msg: "expected <square>:<square> or <square>:<square>:<promo>"}
	}
	from, ok1 := parseSquareName(parts[0])
	to, ok2 := parseSquareName(parts[1])
	if !ok1 || !ok2 {
		return 0, &TranscriptError{Token: tok, Msg: "invalid square name"}
	}

	if len(parts) == 3 {
		if len(parts[2]) != 1 {
			return 0, &TranscriptError{Token: tok, Msg: "invalid promotion piece"}
		}
		flag, ok := promoFlagFromLetter(parts[2][0])
		if !ok {
			return 0, &TranscriptError{Token: tok, Msg: "invalid promotion piece"}
		}
		return NewPromotionMove(to, from, flag), nil
	}

	moved := p.Grid.Get(from)
	if PieceSpecies(moved) == SpeciesPawn && to == p.EPTarget && p.Grid.Get(to) == PieceNone {
		return NewMove(to, from, MoveEnPassant), nil
	}
	return NewMove(to, from, MoveNormal), nil
}

// parseSquareName parses the conventional uppercase file-letter-and-rank
// square name (e.g. "E4"), accepting a lowercase file letter too since
// FormatTranscript's own square constants are lowercase internally.
func parseSquareName(s string) (Square, bool) {
	if len(s) != 2 {
		return 0, false
	}
	file := s[0]
	if file >= 'a' && file <= 'h' {
		file -= 'a' - 'A'
	}
	rank := s[1]
	if file < 'A' || file > 'H' || rank < '1' || rank > '8' {
		return 0, false
	}
	return int(rank-'1')*8 + int(file-'A'), true
}
