/*
game.go implements Game, the external-facing wrapper around a Position that
tracks legal moves and game-ending results as moves are pushed, and
optionally drives an [Engine] to pick the reply.
*/

package chego

import (
	"errors"
	"time"

	"go.uber.org/zap"
)

// ErrIllegalMove is returned by Push when the move isn't in the current
// legal move list.
var ErrIllegalMove = errors.New("chego: illegal move")

// Game bundles a Position with its legal moves and terminal result,
// keeping them in sync as moves are pushed. It is not safe for concurrent
// use.
type Game struct {
	Position Position
	Legal    MoveList
	Result   Result

	engine *Engine
	logger *zap.SugaredLogger
}

// NewGame starts a Game from the standard initial position.
func NewGame() *Game {
	g := &Game{Position: NewInitialPosition()}
	g.Legal = GenLegalMoves(&g.Position)
	return g
}

// NewGameFromFEN starts a Game from an arbitrary FEN string.
func NewGameFromFEN(fen string) *Game {
	g := &Game{Position: ParseFEN(fen)}
	g.Legal = GenLegalMoves(&g.Position)
	g.updateResult()
	return g
}

// WithEngine attaches the engine SearchMove uses to pick replies.
func (g *Game) WithEngine(e *Engine) *Game {
	g.engine = e
	return g
}

// WithLogger attaches a logger; nil (the default) disables logging.
func (g *Game) WithLogger(l *zap.SugaredLogger) *Game {
	g.logger = l
	return g
}

// IsLegal reports whether m matches an entry of the current legal move
// list, comparing origin, destination, move type and promotion piece.
func (g *Game) IsLegal(m Move) bool {
	for i := byte(0); i < g.Legal.LastMoveIndex; i++ {
		lm := g.Legal.Moves[i]
		if lm.From() == m.From() && lm.To() == m.To() &&
			lm.Type() == m.Type() && lm.PromoPiece() == m.PromoPiece() {
			return true
		}
	}
	return false
}

// Push applies m, which must be legal, regenerates the legal move list for
// the next side to move, and recomputes Result. It returns ErrIllegalMove
// without modifying the game if m is not currently legal.
func (g *Game) Push(m Move) error {
	if !g.IsLegal(m) {
		return ErrIllegalMove
	}
	g.Position.MakeMove(m)
	g.Legal = GenLegalMoves(&g.Position)
	g.updateResult()
	if g.logger != nil && g.Result != ResultUnscored {
		g.logger.Infow("game finished", "result", g.Result, "fen", SerializeFEN(g.Position))
	}
	return nil
}

func (g *Game) updateResult() {
	switch {
	case IsCheckmate(&g.Position, g.Legal):
		g.Result = ResultCheckmate
	case IsStalemate(&g.Position, g.Legal):
		g.Result = ResultStalemate
	case IsFiftyMoveDraw(&g.Position):
		g.Result = ResultFiftyMove
	case IsThreefoldRepetition(&g.Position):
		g.Result = ResultThreefoldRepetition
	case IsInsufficientMaterial(&g.Position):
		g.Result = ResultInsufficientMaterial
	default:
		g.Result = ResultUnscored
	}
}

// Over reports whether the game has reached a terminal Result.
func (g *Game) Over() bool { return g.Result != ResultUnscored }

/*
SearchMove asks the attached engine for a move in the current position,
bounded by deadline. It panics if no engine was attached via [Game.WithEngine].
*/
func (g *Game) SearchMove(deadline time.Time) (Move, int16) {
	if g.engine == nil {
		panic("chego: SearchMove called on a Game with no engine attached")
	}
	return g.engine.Search(&g.Position, deadline)
}
