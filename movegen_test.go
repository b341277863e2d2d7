package chego

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Known-good leaf counts from the standard opening position; see
// https://www.chessprogramming.org/Perft_Results.
func TestPerftStartingPosition(t *testing.T) {
	setupTest()
	cases := []struct {
		depth int
		nodes uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
	}
	for _, c := range cases {
		p := NewInitialPosition()
		require.Equal(t, c.nodes, Perft(&p, c.depth), "depth %d", c.depth)
	}
}

func TestGenLegalMovesStartingPositionCount(t *testing.T) {
	setupTest()
	p := NewInitialPosition()
	legal := GenLegalMoves(&p)
	require.EqualValues(t, 20, legal.LastMoveIndex)
}

func TestDoubleCheckOnlyAllowsKingMoves(t *testing.T) {
	setupTest()
	// White king on e1 checked by a rook on h1 along the first rank and a
	// bishop on the a5-e1 diagonal; only the king may move.
	p := ParseFEN("4k3/8/8/b7/8/8/8/R3K2r w - - 0 1")
	require.Equal(t, 2, CheckerCount(&p, ColorWhite))

	legal := GenLegalMoves(&p)
	for i := byte(0); i < legal.LastMoveIndex; i++ {
		moved := p.Grid.Get(legal.Moves[i].From())
		require.Equal(t, SpeciesKing, PieceSpecies(moved))
	}
}

func TestPinnedPieceCannotMove(t *testing.T) {
	setupTest()
	// Black rook on e8 pins the white knight on e2 to the white king on e1.
	p := ParseFEN("4r2k/8/8/8/8/8/4N3/4K3 w - - 0 1")
	legal := GenLegalMoves(&p)
	for i := byte(0); i < legal.LastMoveIndex; i++ {
		require.NotEqual(t, SE2, legal.Moves[i].From(), "pinned knight must not move")
	}
}

func TestCastlingBlockedWhenSquaresAttacked(t *testing.T) {
	setupTest()
	// Black rook on f8 covers f1, so white cannot castle kingside.
	p := ParseFEN("r3kr2/8/8/8/8/8/8/R3K2R w KQq - 0 1")
	legal := GenLegalMoves(&p)
	for i := byte(0); i < legal.LastMoveIndex; i++ {
		m := legal.Moves[i]
		if m.Type() == MoveCastling {
			require.NotEqual(t, SG1, m.To(), "kingside castle should be illegal through an attacked square")
		}
	}
}
