package game

import (
	"context"
	"time"

	"snake-game/game/entity"
	"snake-game/game/manager"
	"snake-game/game/types"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// Game owns all mutable state of one play session: the snake, the apple, the
// direction buffer, the frame counter and the random source. It is driven
// from a single goroutine.
type Game struct {
	UUID      string
	StartTime time.Time
	Seed      uint64

	cfg          Config
	snake        entity.Snake
	apple        types.Point
	heading      types.Heading
	frame        int
	ticks        int
	over         bool
	err          error
	observer     Observer
	directions   *manager.DirectionManager
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
}

// NewGame validates cfg, places the initial snake and spawns the first apple.
func NewGame(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	collisionMgr := manager.NewCollisionManager(cfg.Arena)
	g := &Game{
		UUID:         uuid.New().String(),
		StartTime:    time.Now(),
		Seed:         seed,
		cfg:          cfg,
		snake:        entity.NewSnake(cfg.Start, cfg.InitialHeading, cfg.InitialLength, cfg.Arena.CellSize),
		heading:      cfg.InitialHeading,
		directions:   manager.NewDirectionManager(cfg.InitialHeading),
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(cfg.Arena, rng, collisionMgr),
		stateMgr:     manager.NewStateManager(cfg.Arena, collisionMgr),
	}

	apple, err := g.foodMgr.Spawn(g.snake.Occupied())
	if err != nil {
		return nil, errors.Wrap(err, "spawn first apple")
	}
	g.apple = apple

	glog.Infof("game %s: arena %dx%d cells of %d, seed %d, apple at %v",
		g.UUID, cfg.Arena.Cols, cfg.Arena.Rows, cfg.Arena.CellSize, seed, apple)
	return g, nil
}

// SetObserver registers o for eat and game over notifications.
func (g *Game) SetObserver(o Observer) {
	g.observer = o
}

// Input buffers a heading until the next tick. Ignored once the game is over.
func (g *Game) Input(h types.Heading) {
	if g.over {
		return
	}
	g.directions.Push(h)
}

// Frame counts one rendered frame and advances the snake every
// cfg.TicksPerAdvance frames. It returns the terminal error once the game is over.
func (g *Game) Frame() error {
	if g.over {
		return g.err
	}
	g.frame++
	if g.frame < g.cfg.TicksPerAdvance {
		return nil
	}
	g.frame = 0
	return g.Tick()
}

// Tick resolves the buffered heading and advances the snake one cell.
// A growing move is followed by a new apple placed off the new body.
func (g *Game) Tick() error {
	if g.over {
		return g.err
	}

	heading, err := g.directions.Resolve()
	if err != nil {
		return g.end(errors.Wrap(err, "resolve heading"))
	}

	out, err := g.stateMgr.Advance(g.snake, heading, g.apple)
	if err != nil {
		return g.end(errors.Wrapf(err, "tick %d moving %v from %v", g.ticks+1, heading, g.snake.GetHead()))
	}

	g.snake = out.Snake
	g.heading = heading
	g.ticks++
	g.directions.Reset(heading)

	if glog.V(2) {
		glog.Infof("game %s: tick %d head %v length %d", g.UUID, g.ticks, g.snake.GetHead(), g.snake.Len())
	}

	if !out.Grew {
		return nil
	}

	eaten := g.apple
	apple, err := g.foodMgr.Spawn(g.snake.Occupied())
	if err != nil {
		return g.end(errors.Wrapf(err, "respawn apple at length %d", g.snake.Len()))
	}
	g.apple = apple
	glog.V(1).Infof("game %s: ate apple at %v, length %d, next apple at %v", g.UUID, eaten, g.snake.Len(), apple)

	if g.observer != nil {
		g.observer.AppleEaten(eaten)
	}
	return nil
}

func (g *Game) end(err error) error {
	g.over = true
	g.err = err
	glog.Infof("game %s: over after %d ticks at length %d: %v", g.UUID, g.ticks, g.snake.Len(), err)
	if g.observer != nil {
		g.observer.GameOver(err)
	}
	return err
}

// Snapshot copies the state a frontend needs to draw a frame.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Segments: g.snake.Cells(),
		Apple:    g.apple,
		Arena:    g.cfg.Arena,
		Heading:  g.heading,
		Ticks:    g.ticks,
		Over:     g.over,
		Reason:   g.err,
	}
}

func (g *Game) GetSnake() entity.Snake {
	return entity.FromBody(g.snake.Body...)
}

func (g *Game) GetApple() types.Point {
	return g.apple
}

func (g *Game) Over() bool {
	return g.over
}

// Err is the reason the game ended, nil while it is running.
func (g *Game) Err() error {
	return g.err
}

// ElapsedTime is the wall time since the game was created.
func (g *Game) ElapsedTime() time.Duration {
	return time.Since(g.StartTime)
}

// Run drives the game with frames from fe until the player quits, ctx is
// cancelled or the game ends. The terminal error is returned in the last case,
// after the final frame has been presented.
func (g *Game) Run(ctx context.Context, fe Frontend) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		for _, ev := range fe.PollEvents() {
			switch ev.Kind {
			case EventQuit:
				glog.Infof("game %s: quit after %v", g.UUID, g.ElapsedTime().Round(time.Millisecond))
				return nil
			case EventDirection:
				g.Input(ev.Heading)
			}
		}

		frameErr := g.Frame()

		if err := fe.Present(g.Snapshot()); err != nil {
			return errors.Wrap(err, "present frame")
		}
		if frameErr != nil {
			return frameErr
		}
	}
}
