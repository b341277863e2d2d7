/*
zobrist.go implements Zobrist hashing: a position's hash is the XOR of
independent random keys for every (square, piece) pair currently occupied,
the active castling rights, the en passant file (if any), and the side to
move. MakeMove/UnmakeMove maintain it incrementally by XORing the changed
keys in and out; computeHash recomputes it from scratch, used once when a position
is first built.
*/

package chego

import "math/rand"

var (
	// zobristPiece[piece][square] keys one (square, piece) occupancy.
	zobristPiece [12][64]uint64
	// zobristEPFile[0..7] keys "en passant capturable on this file";
	// zobristEPFile[8] is the "no en passant target" key (used in place of a
	// file key when there is no target, so exactly one of the nine is active
	// at a time).
	zobristEPFile [9]uint64
	// zobristCastling[rights] keys one of the 16 possible castling-rights
	// combinations.
	zobristCastling [16]uint64
	// zobristSideToMove is XORed in whenever it's Black to move.
	zobristSideToMove uint64
)

// defaultZobristSeed has the same value as config.Default's ZobristSeed; no
// code in this package reads it.
const defaultZobristSeed = 0x5A3B1F9E2C7D4861

/*
InitZobristKeys populates the Zobrist key tables from a seeded PRNG. Call it
once, before any position is built; InitEngine does this with the seed it is
given, used as is (a zero seed is not replaced by [defaultZobristSeed]).
*/
func InitZobristKeys(seed uint64) {
	r := rand.New(rand.NewSource(int64(seed)))

	for piece := PieceWPawn; piece <= PieceBKing; piece++ {
		for square := range 64 {
			zobristPiece[piece][square] = r.Uint64()
		}
	}
	for file := range 9 {
		zobristEPFile[file] = r.Uint64()
	}
	for rights := range 16 {
		zobristCastling[rights] = r.Uint64()
	}
	zobristSideToMove = r.Uint64()
}

// computeHash computes the position's Zobrist key from scratch. Position.Hash
// is maintained incrementally after this initial computation; call
// computeHash only when constructing a position (e.g. from FEN), not on
// every move.
func (p *Position) computeHash() uint64 {
	var key uint64
	for piece := PieceWPawn; piece <= PieceBKing; piece++ {
		bb := p.Bitboards[piece]
		for bb != 0 {
			key ^= zobristPiece[piece][popLSB(&bb)]
		}
	}
	key ^= zobristEPFile[epFileIndex(p.EPTarget)]
	key ^= zobristCastling[p.CastlingRights]
	if p.ActiveColor == ColorBlack {
		key ^= zobristSideToMove
	}
	return key
}
