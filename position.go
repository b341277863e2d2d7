/*
position.go defines the Position structure: the incrementally maintained
board state (bitboards, piece grid, castling rights, en passant target,
move counters, Zobrist hash) plus MakeMove/UnmakeMove, which mutate it in
place and are exact inverses of each other.
*/

package chego

// PieceGrid stores one piece per square, packed two squares to a byte (one
// nibble each), mirroring the square-indexed occupant lookup a position
// needs for capture detection and move-sort material lookups without
// scanning all twelve bitboards.
type PieceGrid struct {
	data [32]byte
}

// pieceGridEmpty is the nibble value meaning "no piece on this square".
const pieceGridEmpty = 0xF

func (g *PieceGrid) Get(sq Square) Piece {
	b := g.data[sq/2]
	if sq%2 == 0 {
		b &= 0x0F
	} else {
		b >>= 4
	}
	if b == pieceGridEmpty {
		return PieceNone
	}
	return Piece(b)
}

func (g *PieceGrid) Set(sq Square, piece Piece) {
	idx := sq / 2
	if sq%2 == 0 {
		g.data[idx] = (g.data[idx] & 0xF0) | byte(piece)
	} else {
		g.data[idx] = (g.data[idx] & 0x0F) | byte(piece)<<4
	}
}

func (g *PieceGrid) Clear(sq Square) { g.Set(sq, pieceGridEmpty) }

/*
Position represents a chessboard state that can be converted to or parsed
from a FEN string. Bitboards holds one occupancy bitboard per [Piece]
constant (species*2+color); Allies holds the combined White/Black occupancy;
Occ is the combined all-pieces occupancy. Allies and Occ are kept as
[MDBitboard] so slider queries never need to re-derive a traversal ordering.
*/
type Position struct {
	Bitboards      [12]uint64
	Allies         [2]MDBitboard
	Occ            MDBitboard
	Grid           PieceGrid
	KingSquare     [2]Square
	ActiveColor    Color
	CastlingRights CastlingRights
	Castled        [2]bool // whether each color has completed a castling move.
	EPTarget       int     // -1 if none.
	HalfmoveCnt    int
	FullmoveCnt    int
	Hash           uint64

	log []undoRecord
}

// undoRecord is one entry of the append-only move log MakeMove pushes to
// and UnmakeMove pops from; it carries everything MakeMove could not derive
// back out of the resulting position.
type undoRecord struct {
	move         Move
	moved        Piece
	captured     Piece // PieceNone if the move captured nothing.
	capturedAt   Square
	prevCastling CastlingRights
	prevCastled  bool // the mover's Castled flag before this move.
	prevEP       int
	prevHalfmove int
	prevHash     uint64
}

// placePiece places piece on sq, updating every maintained view of the
// board (per-piece bitboard, per-color occupancy, combined occupancy, piece
// grid, hash) in lockstep.
func (p *Position) placePiece(sq Square, piece Piece) {
	p.Bitboards[piece] |= 1 << uint(sq)
	color := PieceColor(piece)
	p.Allies[color].Set(sq)
	p.Occ.Set(sq)
	p.Grid.Set(sq, piece)
	p.Hash ^= zobristPiece[piece][sq]
	if PieceSpecies(piece) == SpeciesKing {
		p.KingSquare[color] = sq
	}
}

// removePiece is placePiece's inverse.
func (p *Position) removePiece(sq Square, piece Piece) {
	p.Bitboards[piece] &^= 1 << uint(sq)
	p.Allies[PieceColor(piece)].Unset(sq)
	p.Occ.Unset(sq)
	p.Grid.Clear(sq)
	p.Hash ^= zobristPiece[piece][sq]
}

// GetPieceFromSquare returns the piece occupying sq, or [PieceNone].
func (p *Position) GetPieceFromSquare(sq Square) Piece {
	return p.Grid.Get(sq)
}

/*
MakeMove applies m to the position in place, pushing an undo record onto the
move log so UnmakeMove can reverse it exactly. The caller must have already
determined m is at least pseudo-legal; MakeMove does not validate it.
*/
func (p *Position) MakeMove(m Move) {
	from, to := m.From(), m.To()
	moved := p.Grid.Get(from)
	captured := PieceNone
	capturedAt := to

	if m.Type() == MoveEnPassant {
		if PieceColor(moved) == ColorWhite {
			capturedAt = to - 8
		} else {
			capturedAt = to + 8
		}
		captured = p.Grid.Get(capturedAt)
	} else {
		captured = p.Grid.Get(to)
	}

	rec := undoRecord{
		move:         m,
		moved:        moved,
		captured:     captured,
		capturedAt:   capturedAt,
		prevCastling: p.CastlingRights,
		prevCastled:  p.Castled[PieceColor(moved)],
		prevEP:       p.EPTarget,
		prevHalfmove: p.HalfmoveCnt,
		prevHash:     p.Hash,
	}
	p.log = append(p.log, rec)

	p.removePiece(from, moved)
	if captured != PieceNone {
		p.removePiece(capturedAt, captured)
	}

	p.HalfmoveCnt++
	if captured != PieceNone || PieceSpecies(moved) == SpeciesPawn {
		p.HalfmoveCnt = 0
	}

	switch m.Type() {
	case MoveNormal, MoveEnPassant:
		p.placePiece(to, moved)

	case MoveCastling:
		p.placePiece(to, moved)
		switch to {
		case SG1:
			p.removePiece(SH1, PieceWRook)
			p.placePiece(SF1, PieceWRook)
		case SG8:
			p.removePiece(SH8, PieceBRook)
			p.placePiece(SF8, PieceBRook)
		case SC1:
			p.removePiece(SA1, PieceWRook)
			p.placePiece(SD1, PieceWRook)
		case SC8:
			p.removePiece(SA8, PieceBRook)
			p.placePiece(SD8, PieceBRook)
		}
		p.Castled[PieceColor(moved)] = true

	case MovePromotion:
		p.placePiece(to, MakePiece(promoSpecies(m.PromoPiece()), p.ActiveColor))
	}

	p.EPTarget = -1
	if PieceSpecies(moved) == SpeciesPawn {
		if to-from == 16 {
			p.EPTarget = from + 8
		} else if from-to == 16 {
			p.EPTarget = from - 8
		}
	}

	p.CastlingRights &^= castlingLoss[from]
	p.CastlingRights &^= castlingLoss[to]

	if p.ActiveColor == ColorBlack {
		p.FullmoveCnt++
	}
	p.ActiveColor = OppositeColor(p.ActiveColor)
	p.Hash ^= zobristSideToMove
	p.Hash ^= zobristCastling[rec.prevCastling] ^ zobristCastling[p.CastlingRights]
	p.Hash ^= zobristEPFile[epFileIndex(rec.prevEP)] ^ zobristEPFile[epFileIndex(p.EPTarget)]
}

// UnmakeMove reverses the most recent MakeMove call. Calling it with no
// prior MakeMove call is a programming error.
func (p *Position) UnmakeMove() {
	n := len(p.log)
	rec := p.log[n-1]
	p.log = p.log[:n-1]

	m := rec.move
	from, to := m.From(), m.To()

	p.ActiveColor = OppositeColor(p.ActiveColor)
	if p.ActiveColor == ColorBlack {
		p.FullmoveCnt--
	}

	switch m.Type() {
	case MoveNormal, MoveEnPassant:
		p.removePiece(to, rec.moved)

	case MoveCastling:
		p.removePiece(to, rec.moved)
		switch to {
		case SG1:
			p.removePiece(SF1, PieceWRook)
			p.placePiece(SH1, PieceWRook)
		case SG8:
			p.removePiece(SF8, PieceBRook)
			p.placePiece(SH8, PieceBRook)
		case SC1:
			p.removePiece(SD1, PieceWRook)
			p.placePiece(SA1, PieceWRook)
		case SC8:
			p.removePiece(SD8, PieceBRook)
			p.placePiece(SA8, PieceBRook)
		}

	case MovePromotion:
		p.removePiece(to, MakePiece(promoSpecies(m.PromoPiece()), p.ActiveColor))
	}

	if rec.captured != PieceNone {
		p.placePiece(rec.capturedAt, rec.captured)
	}
	p.placePiece(from, rec.moved)

	p.CastlingRights = rec.prevCastling
	p.Castled[PieceColor(rec.moved)] = rec.prevCastled
	p.EPTarget = rec.prevEP
	p.HalfmoveCnt = rec.prevHalfmove
	p.Hash = rec.prevHash
}

func promoSpecies(f PromotionFlag) Species {
	switch f {
	case PromotionKnight:
		return SpeciesKnight
	case PromotionBishop:
		return SpeciesBishop
	case PromotionRook:
		return SpeciesRook
	default:
		return SpeciesQueen
	}
}

func epFileIndex(ep int) int {
	if ep < 0 {
		return 8
	}
	return fileOf(ep)
}

/*
canCastle reports whether the king of color c can legally castle towards
side (one of the CastlingX constants): the right hasn't been lost, the
squares between king and rook are empty, and the squares the king passes
through (including its origin) aren't attacked.
*/
func (p *Position) canCastle(side CastlingRights, c Color) bool {
	if p.CastlingRights&side == 0 {
		return false
	}
	idx := bitScan(uint64(side))
	if p.Occ.Canonical()&castlingEmptyPath[idx] != 0 {
		return false
	}
	opponent := OppositeColor(c)
	path := castlingKingPath[idx]
	for path != 0 {
		sq := popLSB(&path)
		if IsAttacked(p, sq, opponent) {
			return false
		}
	}
	return true
}

// calculateMaterial sums non-king piece values for both sides.
func (p *Position) calculateMaterial() (material int) {
	for piece := 0; piece < PieceWKing; piece++ {
		material += CountBits(p.Bitboards[piece]) * pieceWeights[piece]
	}
	return material
}
