package chego

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShallowEvalStartingPositionIsBalanced(t *testing.T) {
	setupTest()
	p := NewInitialPosition()
	require.Zero(t, ShallowEval(&p))
}

func TestShallowEvalFavorsMaterialForMover(t *testing.T) {
	setupTest()
	// White is up a queen; it's White's move, so the score should be positive.
	p := ParseFEN("4k3/8/8/8/8/8/8/4K2Q w - - 0 1")
	require.Greater(t, ShallowEval(&p), int16(0))
}

func TestShallowEvalReturnsMinScoreOnCheckmate(t *testing.T) {
	setupTest()
	// Back-rank mate: Black to move, rook on a8 checks along the 8th rank
	// and f7/g7/h7 are blocked by Black's own pawns.
	p := ParseFEN("R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1")
	require.Equal(t, MinScore, ShallowEval(&p))
}

func TestShallowEvalReturnsZeroOnStalemate(t *testing.T) {
	setupTest()
	p := ParseFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.Zero(t, ShallowEval(&p))
}

func TestShallowEvalZeroOnFiftyMoveDraw(t *testing.T) {
	setupTest()
	p := ParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 100 60")
	require.Zero(t, ShallowEval(&p))
}

func TestShallowEvalRewardsCastledOverUncastled(t *testing.T) {
	setupTest()
	p := ParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	uncastled := ShallowEval(&p)

	castled := p
	castled.Castled[ColorWhite] = true
	require.Greater(t, ShallowEval(&castled), uncastled)
}

func TestShallowEvalRewardsRetainedCastlingRights(t *testing.T) {
	setupTest()
	bare := ParseFEN("4k3/8/8/8/8/8/8/R3K2R w - - 0 1")
	withRights := ParseFEN("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	require.Greater(t, ShallowEval(&withRights), ShallowEval(&bare))
}

func TestIsInsufficientMaterialKingsOnly(t *testing.T) {
	setupTest()
	p := ParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.True(t, IsInsufficientMaterial(&p))
}

func TestIsInsufficientMaterialKingAndMinorVsKing(t *testing.T) {
	setupTest()
	p := ParseFEN("4k3/8/8/8/8/8/8/3NK3 w - - 0 1")
	require.True(t, IsInsufficientMaterial(&p))
}

func TestIsInsufficientMaterialSameColoredBishops(t *testing.T) {
	setupTest()
	p := ParseFEN("4k1b1/8/8/8/8/8/8/4KB2 w - - 0 1")
	require.True(t, IsInsufficientMaterial(&p))
}

func TestIsInsufficientMaterialFalseWithRook(t *testing.T) {
	setupTest()
	p := ParseFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	require.False(t, IsInsufficientMaterial(&p))
}

func TestIsFiftyMoveDraw(t *testing.T) {
	setupTest()
	p := ParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 100 60")
	require.True(t, IsFiftyMoveDraw(&p))
}
