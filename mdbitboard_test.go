package chego

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMDBitboardSetUnsetKeepsPlanesConsistent(t *testing.T) {
	setupTest()
	var b MDBitboard
	b.Set(SD4)
	require.Equal(t, uint64(1)<<SD4, b.Canonical())

	b.Unset(SD4)
	require.Zero(t, b.Canonical())
}

func TestRookAttacksStopsAtFirstBlocker(t *testing.T) {
	setupTest()
	var occ MDBitboard
	occ.Set(SD4)
	occ.Set(SD6)
	occ.Set(SF4)

	attacks := RookAttacks(occ, SD4)
	require.NotZero(t, attacks&(1<<SD5))
	require.NotZero(t, attacks&(1<<SD6), "the blocker square itself is attacked")
	require.Zero(t, attacks&(1<<SD7), "squares beyond the blocker are not attacked")
	require.NotZero(t, attacks&(1<<SE4))
	require.NotZero(t, attacks&(1<<SF4))
	require.Zero(t, attacks&(1<<SG4))
}

func TestBishopAttacksAlongBothDiagonals(t *testing.T) {
	setupTest()
	var occ MDBitboard
	occ.Set(SD4)

	attacks := BishopAttacks(occ, SD4)
	require.NotZero(t, attacks&(1<<SC3))
	require.NotZero(t, attacks&(1<<SA1))
	require.NotZero(t, attacks&(1<<SE5))
	require.NotZero(t, attacks&(1<<SH8))
	require.NotZero(t, attacks&(1<<SC5))
	require.NotZero(t, attacks&(1<<SA7))
	require.Zero(t, attacks&(1<<SD5), "a bishop never attacks along a file")
}

func TestQueenAttacksIsRookUnionBishop(t *testing.T) {
	setupTest()
	var occ MDBitboard
	occ.Set(SD4)
	require.Equal(t, RookAttacks(occ, SD4)|BishopAttacks(occ, SD4), QueenAttacks(occ, SD4))
}
