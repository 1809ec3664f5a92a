package ui

import (
	"fmt"

	"snake-game/game"
	"snake-game/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// windowKeys maps raylib key codes onto headings
var windowKeys = map[int32]types.Heading{
	rl.KeyUp:    types.Up,
	rl.KeyW:     types.Up,
	rl.KeyRight: types.Right,
	rl.KeyD:     types.Right,
	rl.KeyDown:  types.Down,
	rl.KeyS:     types.Down,
	rl.KeyLeft:  types.Left,
	rl.KeyA:     types.Left,
}

// Window is a raylib frontend. Arena units map 1:1 onto pixels and the window
// is sized so the arena sits centered with its origin as margin.
type Window struct {
	screenWidth  int32
	screenHeight int32
	fontSize     int32
}

// NewWindow opens the window. fps caps the frame rate, which is also what
// paces the game's ticks.
func NewWindow(title string, arena types.Arena, fps int) *Window {
	w, h := arena.Size()
	r := &Window{
		screenWidth:  int32(w + 2*arena.Origin.X),
		screenHeight: int32(h + 2*arena.Origin.Y),
	}
	r.fontSize = r.screenHeight / 20

	rl.InitWindow(r.screenWidth, r.screenHeight, title)
	rl.SetTargetFPS(int32(fps))
	return r
}

// PollEvents drains the key queue in press order.
func (r *Window) PollEvents() []game.Event {
	var events []game.Event
	if rl.WindowShouldClose() || rl.IsKeyPressed(rl.KeyQ) {
		events = append(events, game.Quit())
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if h, ok := windowKeys[key]; ok {
			events = append(events, game.Direction(h))
		}
	}
	return events
}

// Present draws the frame; EndDrawing waits for the target frame time.
func (r *Window) Present(s game.Snapshot) error {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	for _, p := range s.Segments {
		seg := s.Arena.SegmentRect(p)
		rl.DrawRectangleLines(int32(seg.X), int32(seg.Y), int32(seg.W), int32(seg.H), rl.Green)
	}

	bounds := s.Arena.Bounds()
	rl.DrawRectangleLines(int32(bounds.X), int32(bounds.Y), int32(bounds.W), int32(bounds.H), rl.Red)

	apple := s.Arena.AppleRect(s.Apple)
	rl.DrawRectangle(int32(apple.X), int32(apple.Y), int32(apple.W), int32(apple.H), rl.Red)

	if s.Over {
		text := fmt.Sprintf("Game Over! Length %d", s.Length())
		textWidth := rl.MeasureText(text, r.fontSize)
		rl.DrawText(text, (r.screenWidth-textWidth)/2, r.screenHeight/2-r.fontSize/2, r.fontSize, rl.White)
	}

	rl.EndDrawing()
	return nil
}

func (r *Window) Close() error {
	rl.CloseWindow()
	return nil
}
