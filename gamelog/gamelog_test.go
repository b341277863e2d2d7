package gamelog_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/halvardk/chego/gamelog"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	rec := gamelog.Record{
		InitialFEN: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		Transcript: "e2:e4;e7:e5",
		Result:     "checkmate",
		Moves: []gamelog.MoveEntry{
			{Move: "e2:e4", Elapsed: 120 * time.Millisecond, Depth: 6},
			{Move: "e7:e5", Elapsed: 90 * time.Millisecond, Depth: 5},
		},
	}

	require.NoError(t, gamelog.Save(path, rec))

	loaded, err := gamelog.Load(path)
	require.NoError(t, err)
	require.Equal(t, rec, loaded)
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	_, err := gamelog.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
