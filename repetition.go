/*
repetition.go implements threefold repetition detection by replaying the
move log backward from the current position, counting hash matches, and
stopping at the first irreversible move (a capture, a pawn move, or a
castling-rights change) since no position before that point can ever recur.
*/

package chego

// IsThreefoldRepetition reports whether the current position has occurred
// at least three times (counting the current occurrence), looking no
// further back than the most recent irreversible move.
func IsThreefoldRepetition(p *Position) bool {
	count := 1
	hash := p.Hash
	rights := p.CastlingRights

	for i := len(p.log) - 1; i >= 0; i-- {
		rec := p.log[i]
		if rec.captured != PieceNone || PieceSpecies(rec.moved) == SpeciesPawn {
			break
		}
		if rec.prevCastling != rights {
			break
		}
		if rec.prevHash == hash {
			count++
			if count >= 3 {
				return true
			}
		}
	}
	return false
}
