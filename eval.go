/*
eval.go implements the search's leaf evaluation -- terminal detection
(checkmate, stalemate, the 50-move rule, threefold repetition via
repetition.go) ahead of a 4x material balance shaped by a castle-rights
term -- and the position's other terminal conditions used elsewhere in
search: insufficient material.
*/

package chego

// materialWeight scales the pieceWeights material balance up so the
// castle-rights term below can move the score by whole points without
// being lost to integer rounding against a single pawn.
const materialWeight = 4

// castleBonusCastled rewards a color that has already completed a castling
// move; castleBonusPerRight rewards each castling right still retained,
// so a side that has neither castled nor lost its rights yet still scores
// above a side that has forfeited them without castling.
const (
	castleBonusCastled  = 2
	castleBonusPerRight = 1
)

// ShallowEval scores p from the perspective of the side to move: positive
// favors the mover, negative favors the opponent.
//
// If the mover has no legal moves, the game is over at this node: a
// checkmate scores MinScore, a stalemate scores 0. A position already
// drawn by the 50-move rule or threefold repetition also scores 0. Otherwise
// the score is material balance, weighted and combined with a term
// rewarding castling rights retained or already exercised; it is
// deliberately not a positional evaluation function beyond that.
func ShallowEval(p *Position) int16 {
	legal := GenLegalMoves(p)
	if legal.LastMoveIndex == 0 {
		if InCheck(p, p.ActiveColor) {
			return MinScore
		}
		return 0
	}

	if IsFiftyMoveDraw(p) || IsThreefoldRepetition(p) {
		return 0
	}

	score := 0
	for species := SpeciesPawn; species <= SpeciesQueen; species++ {
		weight := pieceWeights[species*2]
		white := CountBits(p.Bitboards[MakePiece(species, ColorWhite)])
		black := CountBits(p.Bitboards[MakePiece(species, ColorBlack)])
		score += weight * (white - black)
	}
	score *= materialWeight
	score += castleBonus(p, ColorWhite) - castleBonus(p, ColorBlack)

	if p.ActiveColor == ColorBlack {
		score = -score
	}
	return int16(score)
}

// castleBonus returns the castle-rights term for c: castleBonusCastled if c
// has already castled, otherwise one castleBonusPerRight for each castling
// right c still retains.
func castleBonus(p *Position, c Color) int {
	if p.Castled[c] {
		return castleBonusCastled
	}
	bonus := 0
	short, long := CastlingWhiteShort, CastlingWhiteLong
	if c == ColorBlack {
		short, long = CastlingBlackShort, CastlingBlackLong
	}
	if p.CastlingRights&short != 0 {
		bonus += castleBonusPerRight
	}
	if p.CastlingRights&long != 0 {
		bonus += castleBonusPerRight
	}
	return bonus
}

// IsCheckmate reports whether the side to move has no legal moves and is
// currently in check.
func IsCheckmate(p *Position, legal MoveList) bool {
	return legal.LastMoveIndex == 0 && InCheck(p, p.ActiveColor)
}

// IsStalemate reports whether the side to move has no legal moves and is
// not in check.
func IsStalemate(p *Position, legal MoveList) bool {
	return legal.LastMoveIndex == 0 && !InCheck(p, p.ActiveColor)
}

// IsFiftyMoveDraw reports whether the halfmove clock has reached the
// 50-move-rule threshold.
func IsFiftyMoveDraw(p *Position) bool {
	return p.HalfmoveCnt >= 100
}

// IsInsufficientMaterial reports whether neither side has enough material
// to deliver checkmate by any sequence of legal moves: king-only, king and
// a single minor piece, or king and one bishop on each side with both
// bishops on same-colored squares.
func IsInsufficientMaterial(p *Position) bool {
	if p.Bitboards[PieceWPawn]|p.Bitboards[PieceBPawn] != 0 {
		return false
	}
	if p.Bitboards[PieceWRook]|p.Bitboards[PieceBRook] != 0 {
		return false
	}
	if p.Bitboards[PieceWQueen]|p.Bitboards[PieceBQueen] != 0 {
		return false
	}

	whiteMinors := CountBits(p.Bitboards[PieceWKnight]) + CountBits(p.Bitboards[PieceWBishop])
	blackMinors := CountBits(p.Bitboards[PieceBKnight]) + CountBits(p.Bitboards[PieceBBishop])
	if whiteMinors == 0 && blackMinors == 0 {
		return true
	}
	if whiteMinors+blackMinors == 1 {
		return true
	}
	// King and bishop vs king and bishop, same-colored squares, is a draw;
	// any other two-minor combination can still force mate.
	if whiteMinors == 1 && blackMinors == 1 &&
		p.Bitboards[PieceWKnight] == 0 && p.Bitboards[PieceBKnight] == 0 {
		wSq := bitScan(p.Bitboards[PieceWBishop])
		bSq := bitScan(p.Bitboards[PieceBBishop])
		return squareColor(wSq) == squareColor(bSq)
	}
	return false
}

func squareColor(sq Square) int { return (rankOf(sq) + fileOf(sq)) % 2 }

// IsDraw reports whether the position is drawn by any rule other than
// threefold repetition, which requires the move log and is checked by
// IsThreefoldRepetition in repetition.go.
func IsDraw(p *Position, legal MoveList) bool {
	return IsStalemate(p, legal) || IsFiftyMoveDraw(p) || IsInsufficientMaterial(p)
}
