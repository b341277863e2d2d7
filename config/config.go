/*
Package config loads EngineConfig from a TOML file, falling back to
documented defaults when no file is given -- every engine retrieved
alongside this one ships some config file format, even though the move
engine itself has no mandated one.
*/
package config

import (
	"time"

	"github.com/BurntSushi/toml"
)

// EngineConfig controls the transposition table size, the default
// per-move search deadline, and the Zobrist key seed.
type EngineConfig struct {
	// TranspositionMB is the transposition table's size budget, in
	// megabytes.
	TranspositionMB int `toml:"transposition_mb"`
	// MoveDeadline is how long the engine searches a single move for
	// when the caller doesn't supply its own deadline.
	MoveDeadline time.Duration `toml:"move_deadline"`
	// ZobristSeed seeds the Zobrist key generator; fixing it makes hashes
	// (and therefore search traces) reproducible across runs.
	ZobristSeed uint64 `toml:"zobrist_seed"`
}

// Default returns the configuration used when no config file is supplied:
// a 64 MiB transposition table, a five-second move deadline, and a fixed
// Zobrist seed.
func Default() EngineConfig {
	return EngineConfig{
		TranspositionMB: 64,
		MoveDeadline:    5 * time.Second,
		ZobristSeed:     0x5A3B1F9E2C7D4861,
	}
}

// Load reads an EngineConfig from the TOML file at path, starting from
// [Default] so a partial file only overrides the fields it sets.
func Load(path string) (EngineConfig, error) {
	cfg := Default()
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return EngineConfig{}, err
	}
	return cfg, nil
}
