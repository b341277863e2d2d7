/*
Command chego is the thin terminal sketch around the chego engine package:
an interactive game against the search (play), a move-generator self-check
(perft), and a transcript file viewer (replay).
*/
package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/halvardk/chego"
	"github.com/halvardk/chego/config"
	"github.com/halvardk/chego/gamelog"
	"github.com/halvardk/chego/internal/render"
	"github.com/halvardk/chego/notation"
)

func main() {
	app := &cli.App{
		Name:  "chego",
		Usage: "a small complete-information chess engine",
		Commands: []*cli.Command{
			playCommand(),
			perftCommand(),
			replayCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func playCommand() *cli.Command {
	return &cli.Command{
		Name:  "play",
		Usage: "play an interactive game against the engine from the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "path to a TOML engine config file"},
			&cli.StringFlag{Name: "fen", Usage: "starting position (defaults to the standard opening)"},
			&cli.StringFlag{Name: "log", Usage: "path to write a YAML debug game log to when the game ends"},
		},
		Action: func(c *cli.Context) error {
			cfg := loadConfig(c.String("config"))
			chego.InitEngine(cfg.ZobristSeed)

			logger, _ := zap.NewDevelopment()
			defer logger.Sync()
			sugar := logger.Sugar()

			g := chego.NewGame()
			if fen := c.String("fen"); fen != "" {
				g = chego.NewGameFromFEN(fen)
			}
			tt := chego.NewTranspositionTable(cfg.TranspositionMB)
			engine := chego.NewEngine(tt).WithLogger(sugar)
			g.WithEngine(engine).WithLogger(sugar)

			var moves []chego.Move
			initial := g.Position
			scanner := bufio.NewScanner(os.Stdin)

			for !g.Over() {
				fmt.Print(render.Board(&g.Position, lastMove(moves)))
				if g.Position.ActiveColor == chego.ColorWhite {
					fmt.Print("your move (UCI, e.g. e2e4): ")
					if !scanner.Scan() {
						break
					}
					m, err := notation.Parse(&g.Position, scanner.Text())
					if err != nil {
						fmt.Println(err)
						continue
					}
					if err := g.Push(m); err != nil {
						fmt.Println(err)
						continue
					}
					moves = append(moves, m)
				} else {
					m, score := g.SearchMove(time.Now().Add(cfg.MoveDeadline))
					fmt.Printf("engine plays %s (score %d)\n", notation.Format(m), score)
					if err := g.Push(m); err != nil {
						return err
					}
					moves = append(moves, m)
				}
			}

			fmt.Print(render.Board(&g.Position, lastMove(moves)))
			fmt.Printf("result: %s\n", resultName(g.Result))

			if logPath := c.String("log"); logPath != "" {
				return gamelog.Save(logPath, gamelog.Record{
					InitialFEN: chego.SerializeFEN(initial),
					Transcript: chego.FormatTranscript(initial, moves),
					Result:     resultName(g.Result),
				})
			}
			return nil
		},
	}
}

func perftCommand() *cli.Command {
	return &cli.Command{
		Name:  "perft",
		Usage: "count leaf nodes reachable from a position to a given depth",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "fen", Usage: "position to search from (defaults to the standard opening)"},
			&cli.IntFlag{Name: "depth", Value: 4},
		},
		Action: func(c *cli.Context) error {
			chego.InitEngine(0)
			pos := chego.NewInitialPosition()
			if fen := c.String("fen"); fen != "" {
				pos = chego.ParseFEN(fen)
			}
			start := time.Now()
			nodes := chego.Perft(&pos, c.Int("depth"))
			fmt.Printf("depth %d: %d nodes (%s)\n", c.Int("depth"), nodes, time.Since(start))
			return nil
		},
	}
}

func replayCommand() *cli.Command {
	return &cli.Command{
		Name:      "replay",
		Usage:     "apply a transcript file and print the final position",
		ArgsUsage: "<transcript-file>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "fen", Usage: "starting position (defaults to the standard opening)"},
		},
		Action: func(c *cli.Context) error {
			chego.InitEngine(0)
			if c.Args().Len() != 1 {
				return fmt.Errorf("replay: expected exactly one transcript file argument")
			}
			data, err := os.ReadFile(c.Args().First())
			if err != nil {
				return err
			}
			g := chego.NewGame()
			if fen := c.String("fen"); fen != "" {
				g = chego.NewGameFromFEN(fen)
			}
			if err := chego.ApplyTranscript(g, string(data)); err != nil {
				return err
			}
			fmt.Print(render.Board(&g.Position, 0))
			fmt.Printf("result: %s\n", resultName(g.Result))
			return nil
		},
	}
}

func loadConfig(path string) config.EngineConfig {
	if path == "" {
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not load config %q: %v\n", path, err)
		return config.Default()
	}
	return cfg
}

func lastMove(moves []chego.Move) chego.Move {
	if len(moves) == 0 {
		return 0
	}
	return moves[len(moves)-1]
}

func resultName(r chego.Result) string {
	switch r {
	case chego.ResultCheckmate:
		return "checkmate"
	case chego.ResultStalemate:
		return "stalemate"
	case chego.ResultFiftyMove:
		return "fifty-move rule"
	case chego.ResultThreefoldRepetition:
		return "threefold repetition"
	case chego.ResultInsufficientMaterial:
		return "insufficient material"
	default:
		return "unscored"
	}
}
