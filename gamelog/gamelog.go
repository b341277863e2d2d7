/*
Package gamelog persists a finished game to a YAML debug log: the starting
FEN, the transcript string (see the root package's transcript format), the
result, and per-move wall-clock time and search depth. The transcript format
itself is the external move representation; this package only adds the
persistence spec.md leaves unspecified.
*/
package gamelog

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// MoveEntry records one ply's timing and search depth.
type MoveEntry struct {
	Move    string        `yaml:"move"`
	Elapsed time.Duration `yaml:"elapsed"`
	Depth   int           `yaml:"depth"`
}

// Record is one completed (or in-progress) game's debug log.
type Record struct {
	InitialFEN string      `yaml:"initial_fen"`
	Transcript string      `yaml:"transcript"`
	Result     string      `yaml:"result"`
	Moves      []MoveEntry `yaml:"moves"`
}

// Save writes rec to path as YAML, creating or truncating the file.
func Save(path string, rec Record) error {
	data, err := yaml.Marshal(rec)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Load reads a Record previously written by Save.
func Load(path string) (Record, error) {
	var rec Record
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, err
	}
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}
