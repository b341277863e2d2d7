/*
search.go implements the time-bounded search: negamax with alpha-beta
pruning, iterative deepening to a wall-clock deadline, and move ordering
driven by a transposition-table hint plus a cheap MVV-LVA-style heuristic.
Scores are oriented negamax-style: a positive score always favors the side
to move at that node.
*/

package chego

import (
	"errors"
	"time"

	"go.uber.org/zap"
)

// MinScore and MaxScore bound every score the search can return, leaving
// headroom below/above the int16 extremes so mate-distance adjustments
// (MinScore+ply, MaxScore-ply) never overflow.
const (
	MinScore int16 = -32766 // math.MinInt16 + 2
	MaxScore int16 = 32766  // math.MaxInt16 - 1
)

// ErrDeadlineElapsed is returned up the recursion the instant the search's
// wall-clock budget runs out; it is not a real error, just a cut signal.
var ErrDeadlineElapsed = errors.New("chego: search deadline elapsed")

// Engine holds everything a search call reuses across iterative-deepening
// iterations and across moves in a game: the transposition table and the
// move-list arena. The zero value is not usable; construct with
// [NewEngine].
type Engine struct {
	TT     *TranspositionTable
	arena  *moveArena
	logger *zap.SugaredLogger

	nodes    uint64
	deadline time.Time
}

// NewEngine builds an Engine backed by tt. tt may be shared across engines
// that never run concurrently; it is not safe for concurrent search calls.
func NewEngine(tt *TranspositionTable) *Engine {
	return &Engine{TT: tt, arena: newMoveArena()}
}

// WithLogger attaches a logger used for depth-completion diagnostics. A nil
// logger (the default) disables all logging.
func (e *Engine) WithLogger(l *zap.SugaredLogger) *Engine {
	e.logger = l
	return e
}

// Search runs iterative deepening from depth 1 until deadline passes,
// returning the best move and score found by the last depth that completed.
// It always returns a move if the position has at least one legal move,
// even if the deadline elapses during depth 1.
func (e *Engine) Search(p *Position, deadline time.Time) (Move, int16) {
	e.deadline = deadline
	e.nodes = 0
	start := time.Now()

	legal := GenLegalMoves(p)
	if legal.LastMoveIndex == 0 {
		return 0, ShallowEval(p)
	}

	bestMove := legal.Moves[0]
	bestScore := ShallowEval(p)

	for depth := 1; ; depth++ {
		move, score, err := e.searchRoot(p, depth)
		if errors.Is(err, ErrDeadlineElapsed) {
			break
		}
		bestMove, bestScore = move, score
		if e.logger != nil {
			e.logger.Debugw("search depth complete",
				"depth", depth, "score", score, "nodes", e.nodes,
				"elapsed", time.Since(start))
		}
		if !time.Now().Before(deadline) {
			break
		}
	}
	return bestMove, bestScore
}

func (e *Engine) searchRoot(p *Position, depth int) (Move, int16, error) {
	list := e.arena.at(0)
	genPseudoLegalInto(p, list)
	e.orderMoves(p, list)

	checkers := CheckerCount(p, p.ActiveColor)
	mover := p.ActiveColor

	best := Move(0)
	bestScore := MinScore
	alpha, beta := MinScore, MaxScore
	haveLegal := false

	for i := byte(0); i < list.LastMoveIndex; i++ {
		m := list.Moves[i]
		if checkers >= 2 && PieceSpecies(p.Grid.Get(m.From())) != SpeciesKing {
			continue
		}
		p.MakeMove(m)
		if InCheck(p, mover) {
			p.UnmakeMove()
			continue
		}
		haveLegal = true
		score, err := e.negamax(p, depth-1, negScore(beta), negScore(alpha), 1)
		p.UnmakeMove()
		if err != nil {
			return best, bestScore, err
		}
		score = negScore(score)
		if score > bestScore || best == 0 {
			bestScore = score
			best = m
		}
		if score > alpha {
			alpha = score
		}
	}
	if !haveLegal {
		return 0, ShallowEval(p), nil
	}
	if e.TT != nil {
		e.TT.Update(p.Hash, depth, bestScore, best, ttBoundExact)
	}
	return best, bestScore, nil
}

func (e *Engine) negamax(p *Position, depth int, alpha, beta int16, ply int) (int16, error) {
	if e.nodes&1023 == 0 && !time.Now().Before(e.deadline) {
		return 0, ErrDeadlineElapsed
	}
	e.nodes++

	if ply > 0 && (IsFiftyMoveDraw(p) || IsInsufficientMaterial(p) || IsThreefoldRepetition(p)) {
		return 0, nil
	}

	origAlpha := alpha
	if e.TT != nil {
		if entry, ok := e.TT.LookupAtLeast(p.Hash, depth); ok {
			switch entry.bound {
			case ttBoundExact:
				return entry.score, nil
			case ttBoundLower:
				if entry.score > alpha {
					alpha = entry.score
				}
			case ttBoundUpper:
				if entry.score < beta {
					beta = entry.score
				}
			}
			if alpha >= beta {
				return entry.score, nil
			}
		}
	}

	if depth == 0 {
		return ShallowEval(p), nil
	}

	list := e.arena.at(ply)
	genPseudoLegalInto(p, list)
	e.orderMoves(p, list)

	checkers := CheckerCount(p, p.ActiveColor)
	mover := p.ActiveColor

	best := MinScore
	var bestMove Move
	legalCount := 0

	for i := byte(0); i < list.LastMoveIndex; i++ {
		m := list.Moves[i]
		if checkers >= 2 && PieceSpecies(p.Grid.Get(m.From())) != SpeciesKing {
			continue
		}
		p.MakeMove(m)
		if InCheck(p, mover) {
			p.UnmakeMove()
			continue
		}
		legalCount++
		score, err := e.negamax(p, depth-1, negScore(beta), negScore(alpha), ply+1)
		p.UnmakeMove()
		if err != nil {
			return 0, err
		}
		score = negScore(score)
		if score > best {
			best = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}

	if legalCount == 0 {
		if checkers > 0 {
			return MinScore + int16(ply), nil
		}
		return 0, nil
	}

	if e.TT != nil {
		bound := ttBoundExact
		switch {
		case best <= origAlpha:
			bound = ttBoundUpper
		case best >= beta:
			bound = ttBoundLower
		}
		e.TT.Update(p.Hash, depth, best, bestMove, bound)
	}
	return best, nil
}

// negScore negates a score, saturating instead of overflowing at the
// sentinel extremes (negating MinScore naively could overflow int16).
func negScore(s int16) int16 {
	if s == MinScore {
		return MaxScore
	}
	if s == MaxScore {
		return MinScore
	}
	return -s
}

// orderMoves sorts list in place, highest-priority first: the
// transposition table's best-move hint, then winning/equal captures, then
// quiet promotions, then castling, then pawn advances, then losing
// captures, then everything else -- a cheap approximation of MVV-LVA whose
// only allocation is one key slice per call.
func (e *Engine) orderMoves(p *Position, list *MoveList) {
	var hint Move
	if e.TT != nil {
		if entry, ok := e.TT.LookupAny(p.Hash); ok {
			hint = entry.best
		}
	}

	n := int(list.LastMoveIndex)
	keys := make([]int, n)
	for i := 0; i < n; i++ {
		keys[i] = moveOrderKey(p, list.Moves[i], hint)
	}
	// Insertion sort: move lists rarely exceed a few dozen entries at deep
	// plies, and this needs no allocation beyond the key slice above.
	for i := 1; i < n; i++ {
		k, m := keys[i], list.Moves[i]
		j := i - 1
		for j >= 0 && keys[j] < k {
			keys[j+1] = keys[j]
			list.Moves[j+1] = list.Moves[j]
			j--
		}
		keys[j+1] = k
		list.Moves[j+1] = m
	}
}

func moveOrderKey(p *Position, m Move, hint Move) int {
	if hint != 0 && m == hint {
		return 1000
	}
	switch m.Type() {
	case MoveCastling:
		return 300
	case MoveEnPassant:
		return 400
	}
	captured := p.Grid.Get(m.To())
	if m.Type() == MovePromotion {
		if captured != PieceNone {
			return 400
		}
		return 350
	}
	if captured != PieceNone {
		attacker := p.Grid.Get(m.From())
		attackerWeight := 0 // a capturing king counts as weight 0.
		if PieceSpecies(attacker) != SpeciesKing {
			attackerWeight = pieceWeights[attacker]
		}
		if pieceWeights[captured] >= attackerWeight {
			return 400
		}
		return 150
	}
	moved := p.Grid.Get(m.From())
	if PieceSpecies(moved) == SpeciesPawn {
		return 200
	}
	return 100
}
