package chego

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsAttackedByPawn(t *testing.T) {
	setupTest()
	p := ParseFEN("4k3/8/8/3p4/8/8/8/4K3 w - - 0 1")
	require.True(t, IsAttacked(&p, SC4, ColorBlack))
	require.True(t, IsAttacked(&p, SE4, ColorBlack))
	require.False(t, IsAttacked(&p, SD4, ColorBlack), "pawns don't attack straight ahead")
}

func TestIsAttackedByKnight(t *testing.T) {
	setupTest()
	p := ParseFEN("4k3/8/8/8/3N4/8/8/4K3 w - - 0 1")
	require.True(t, IsAttacked(&p, SF5, ColorWhite))
	require.True(t, IsAttacked(&p, SB3, ColorWhite))
	require.False(t, IsAttacked(&p, SD5, ColorWhite))
}

func TestInCheckDetectsSliderCheck(t *testing.T) {
	setupTest()
	p := ParseFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	require.False(t, InCheck(&p, ColorWhite))

	p2 := ParseFEN("4k3/8/8/8/8/8/8/4K2r w - - 0 1")
	require.True(t, InCheck(&p2, ColorWhite))
}

func TestCheckerCountDetectsDoubleCheck(t *testing.T) {
	setupTest()
	p := ParseFEN("4k3/8/8/b7/8/8/8/R3K2r w - - 0 1")
	require.Equal(t, 2, CheckerCount(&p, ColorWhite))
}
