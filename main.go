package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"snake-game/audio"
	"snake-game/game"
	"snake-game/game/types"
	"snake-game/ui"

	"github.com/golang/glog"
)

func main() {
	defaults := game.DefaultConfig()

	speed := flag.Int("speed", defaults.TicksPerAdvance, "Frames per snake move (lower = faster)")
	fps := flag.Int("fps", 60, "Frame rate")
	cols := flag.Int("cols", defaults.Arena.Cols, "Arena width in cells")
	rows := flag.Int("rows", defaults.Arena.Rows, "Arena height in cells")
	cell := flag.Int("cell", defaults.Arena.CellSize, "Cell size in pixels")
	length := flag.Int("length", defaults.InitialLength, "Initial snake length")
	heading := flag.String("heading", defaults.InitialHeading.String(), "Initial heading: up, right, down or left")
	seed := flag.Uint64("seed", 0, "Apple placement seed (0 = random)")
	term := flag.Bool("term", false, "Play in the terminal instead of a window")
	sound := flag.Bool("sound", false, "Enable sound effects")
	flag.Parse()
	defer glog.Flush()

	h, ok := types.ParseHeading(*heading)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown heading %q\n", *heading)
		os.Exit(2)
	}

	cfg := defaults
	cfg.TicksPerAdvance = *speed
	cfg.Arena.Cols = *cols
	cfg.Arena.Rows = *rows
	cfg.Arena.CellSize = *cell
	cfg.Start = cfg.Arena.Cell(2, 2)
	cfg.InitialLength = *length
	cfg.InitialHeading = h
	cfg.Seed = *seed

	if err := run(cfg, *fps, *term, *sound); err != nil {
		glog.Errorf("snake: %v", err)
		glog.Flush()
		os.Exit(1)
	}
}

func run(cfg game.Config, fps int, term, sound bool) error {
	g, err := game.NewGame(cfg)
	if err != nil {
		return err
	}

	if sound {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			glog.Warningf("sound disabled: %v", err)
		} else {
			defer sm.Cleanup()
			g.SetObserver(sm)
		}
	}

	var fe game.Frontend
	if term {
		t, err := ui.NewTerminal(fps)
		if err != nil {
			return err
		}
		fe = t
	} else {
		fe = ui.NewWindow("Snake", cfg.Arena, fps)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = g.Run(ctx, fe)
	if cerr := fe.Close(); cerr != nil {
		glog.Warningf("close frontend: %v", cerr)
	}
	if types.IsTerminal(err) {
		// Game over is a normal end of play
		fmt.Printf("Game over: %v (length %d)\n", err, g.GetSnake().Len())
		return nil
	}
	return err
}
