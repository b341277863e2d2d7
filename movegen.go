/*
movegen.go generates moves: genPseudoLegal produces every pseudo-legal move
(a move that's well-formed for the piece and target square, but may leave
the mover's own king in check); GenLegalMoves filters that list down to
moves that don't. Sliding-piece moves are derived from the lane tables in
mdbitboard.go rather than magic bitboards.
*/

package chego

/*
GenLegalMoves generates every legal move available to the side to move in
p. It generates the pseudo-legal list first, then plays each move on p and
discards it if it leaves the mover's own king attacked, undoing afterwards
so p is left unchanged.

When the side to move is in check by two or more pieces, only king moves
are pseudo-legal-filtered this way: every other piece is skipped outright,
since no single non-king move can resolve a double check.
*/
func GenLegalMoves(p *Position) MoveList {
	pseudo := genPseudoLegal(p)

	var legal MoveList
	checkers := CheckerCount(p, p.ActiveColor)
	mover := p.ActiveColor
	for i := byte(0); i < pseudo.LastMoveIndex; i++ {
		m := pseudo.Moves[i]
		if checkers >= 2 && PieceSpecies(p.Grid.Get(m.From())) != SpeciesKing {
			continue
		}
		p.MakeMove(m)
		if !InCheck(p, mover) {
			legal.Push(m)
		}
		p.UnmakeMove()
	}
	return legal
}

// genPseudoLegal generates every pseudo-legal move for the side to move.
func genPseudoLegal(p *Position) MoveList {
	var list MoveList
	genPseudoLegalInto(p, &list)
	return list
}

// genPseudoLegalInto fills list with every pseudo-legal move for the side to
// move, resetting it first. Used by the search, which keeps one MoveList
// per recursion depth in a [moveArena] instead of allocating a fresh
// 218-move list at every node.
func genPseudoLegalInto(p *Position, list *MoveList) {
	list.LastMoveIndex = 0
	color := p.ActiveColor
	genPawnMoves(p, color, list)
	genLeaperMoves(p, color, SpeciesKnight, knightAttacks[:], list)
	genSliderMoves(p, color, SpeciesBishop, list)
	genSliderMoves(p, color, SpeciesRook, list)
	genSliderMoves(p, color, SpeciesQueen, list)
	genLeaperMoves(p, color, SpeciesKing, kingAttacks[:], list)
	genCastlingMoves(p, color, list)
}

func genLeaperMoves(p *Position, color Color, species Species, table []uint64, list *MoveList) {
	piece := MakePiece(species, color)
	bb := p.Bitboards[piece]
	own := p.Allies[color].Canonical()
	for bb != 0 {
		from := popLSB(&bb)
		targets := table[from] &^ own
		for targets != 0 {
			to := popLSB(&targets)
			list.Push(NewMove(to, from, MoveNormal))
		}
	}
}

func genSliderMoves(p *Position, color Color, species Species, list *MoveList) {
	piece := MakePiece(species, color)
	bb := p.Bitboards[piece]
	own := p.Allies[color].Canonical()
	for bb != 0 {
		from := popLSB(&bb)
		var attacks uint64
		switch species {
		case SpeciesBishop:
			attacks = BishopAttacks(p.Occ, from)
		case SpeciesRook:
			attacks = RookAttacks(p.Occ, from)
		case SpeciesQueen:
			attacks = QueenAttacks(p.Occ, from)
		}
		targets := attacks &^ own
		for targets != 0 {
			to := popLSB(&targets)
			list.Push(NewMove(to, from, MoveNormal))
		}
	}
}

const (
	rank2 = 0x000000000000FF00
	rank7 = 0x00FF000000000000
)

func genPawnMoves(p *Position, color Color, list *MoveList) {
	piece := MakePiece(SpeciesPawn, color)
	bb := p.Bitboards[piece]
	occ := p.Occ.Canonical()
	enemy := p.Allies[OppositeColor(color)].Canonical()

	var startRank, promoRank uint64
	var push, doublePush int
	if color == ColorWhite {
		startRank, promoRank, push, doublePush = rank2, rank7, 8, 16
	} else {
		startRank, promoRank, push, doublePush = rank7, rank2, -8, -16
	}

	for bb != 0 {
		from := popLSB(&bb)
		fromBit := uint64(1) << uint(from)
		to := from + push
		if to >= 0 && to < 64 && occ&(1<<uint(to)) == 0 {
			pushPawnMove(from, to, fromBit&promoRank != 0, list)
			to2 := from + doublePush
			if fromBit&startRank != 0 && occ&(1<<uint(to2)) == 0 {
				list.Push(NewMove(to2, from, MoveNormal))
			}
		}
		left, right := pawnCaptureSquares(from, color)
		for _, cap := range [2]int{left, right} {
			if cap < 0 || cap >= 64 {
				continue
			}
			if enemy&(1<<uint(cap)) != 0 {
				pushPawnMove(from, cap, fromBit&promoRank != 0, list)
			} else if cap == p.EPTarget {
				list.Push(NewMove(cap, from, MoveEnPassant))
			}
		}
	}
}

// pawnCaptureSquares returns the (up to two) diagonal squares a pawn of
// color on from could capture onto; -1 where the board edge rules a side
// out.
func pawnCaptureSquares(from Square, color Color) (left, right int) {
	f := fileOf(from)
	dir := 8
	if color == ColorBlack {
		dir = -8
	}
	left, right = -1, -1
	if f > 0 {
		left = from + dir - 1
	}
	if f < 7 {
		right = from + dir + 1
	}
	return left, right
}

func pushPawnMove(from, to Square, promotion bool, list *MoveList) {
	if !promotion {
		list.Push(NewMove(to, from, MoveNormal))
		return
	}
	list.Push(NewPromotionMove(to, from, PromotionQueen))
	list.Push(NewPromotionMove(to, from, PromotionRook))
	list.Push(NewPromotionMove(to, from, PromotionBishop))
	list.Push(NewPromotionMove(to, from, PromotionKnight))
}

func genCastlingMoves(p *Position, color Color, list *MoveList) {
	if InCheck(p, color) {
		return
	}
	if color == ColorWhite {
		if p.canCastle(CastlingWhiteShort, color) {
			list.Push(NewMove(SG1, SE1, MoveCastling))
		}
		if p.canCastle(CastlingWhiteLong, color) {
			list.Push(NewMove(SC1, SE1, MoveCastling))
		}
	} else {
		if p.canCastle(CastlingBlackShort, color) {
			list.Push(NewMove(SG8, SE8, MoveCastling))
		}
		if p.canCastle(CastlingBlackLong, color) {
			list.Push(NewMove(SC8, SE8, MoveCastling))
		}
	}
}
