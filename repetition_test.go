package chego

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestThreefoldRepetitionByShufflingKnights(t *testing.T) {
	setupTest()
	p := NewInitialPosition()
	require.False(t, IsThreefoldRepetition(&p))

	shuffle := []Move{
		NewMove(SA3, SB1, MoveNormal),
		NewMove(SA6, SB8, MoveNormal),
		NewMove(SB1, SA3, MoveNormal),
		NewMove(SB8, SA6, MoveNormal),
		NewMove(SA3, SB1, MoveNormal),
		NewMove(SA6, SB8, MoveNormal),
		NewMove(SB1, SA3, MoveNormal),
		NewMove(SB8, SA6, MoveNormal),
	}
	for i, m := range shuffle {
		p.MakeMove(m)
		if i == len(shuffle)-1 {
			require.True(t, IsThreefoldRepetition(&p), "starting position should have recurred three times")
		}
	}
}

func TestThreefoldRepetitionResetsOnIrreversibleMove(t *testing.T) {
	setupTest()
	p := NewInitialPosition()
	p.MakeMove(NewMove(SA3, SB1, MoveNormal))
	p.MakeMove(NewMove(SA6, SB8, MoveNormal))
	p.MakeMove(NewMove(SB1, SA3, MoveNormal))
	p.MakeMove(NewMove(SB8, SA6, MoveNormal))
	require.False(t, IsThreefoldRepetition(&p))

	// A pawn push is irreversible and should clear the repetition window:
	// shuffling the knights back to this same position once more should not
	// count as a third occurrence.
	p.MakeMove(NewMove(SH3, SH2, MoveNormal))
	p.MakeMove(NewMove(SA6, SB8, MoveNormal))
	p.MakeMove(NewMove(SA3, SB1, MoveNormal))
	p.MakeMove(NewMove(SB8, SA6, MoveNormal))
	p.MakeMove(NewMove(SB1, SA3, MoveNormal))
	require.False(t, IsThreefoldRepetition(&p))
}
