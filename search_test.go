package chego

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSearchReturnsLegalMoveWithinDeadline(t *testing.T) {
	setupTest()
	p := NewInitialPosition()
	engine := NewEngine(NewTranspositionTable(1))

	m, _ := engine.Search(&p, time.Now().Add(50*time.Millisecond))
	require.NotZero(t, m)

	legal := GenLegalMoves(&p)
	found := false
	for i := byte(0); i < legal.LastMoveIndex; i++ {
		if legal.Moves[i] == m {
			found = true
			break
		}
	}
	require.True(t, found, "search must return a currently legal move")
}

func TestSearchFindsMateInOne(t *testing.T) {
	setupTest()
	// Classic back-rank mate: Ra1-a8# with the black king boxed in by its
	// own pawns on f7/g7/h7.
	p := ParseFEN("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	engine := NewEngine(NewTranspositionTable(1))

	m, score := engine.Search(&p, time.Now().Add(200*time.Millisecond))
	require.NotZero(t, m)

	p.MakeMove(m)
	legal := GenLegalMoves(&p)
	require.True(t, IsCheckmate(&p, legal), "expected the search to find the mating move")
	require.Greater(t, score, int16(0))
}

func TestNegScoreSaturatesAtSentinels(t *testing.T) {
	require.Equal(t, MaxScore, negScore(MinScore))
	require.Equal(t, MinScore, negScore(MaxScore))
	require.EqualValues(t, -5, negScore(5))
}
