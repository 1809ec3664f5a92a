package ui

import (
	"fmt"
	"time"

	"snake-game/game"
	"snake-game/game/types"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

var terminalKeys = map[tcell.Key]types.Heading{
	tcell.KeyUp:    types.Up,
	tcell.KeyRight: types.Right,
	tcell.KeyDown:  types.Down,
	tcell.KeyLeft:  types.Left,
}

var terminalRunes = map[rune]types.Heading{
	'k': types.Up,
	'l': types.Right,
	'j': types.Down,
	'h': types.Left,
}

var (
	snakeStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	headStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	appleStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Terminal is a tcell frontend. Each arena cell is drawn two columns wide so
// the board looks square.
type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event
	ticker *time.Ticker
}

// NewTerminal takes over the terminal. fps sets the frame rate.
func NewTerminal(fps int) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "problem creating screen")
	}
	return newTerminal(screen, fps)
}

func newTerminal(screen tcell.Screen, fps int) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "init problem")
	}
	screen.HideCursor()
	screen.Clear()

	t := &Terminal{
		screen: screen,
		events: make(chan tcell.Event, 100),
		ticker: time.NewTicker(time.Second / time.Duration(fps)),
	}
	go t.pump()
	return t, nil
}

// pump forwards screen events until the screen is finalized.
func (t *Terminal) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			close(t.events)
			return
		}
		t.events <- ev
	}
}

// PollEvents drains the buffered events without blocking.
func (t *Terminal) PollEvents() []game.Event {
	var events []game.Event
	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				return append(events, game.Quit())
			}
			if e, ok := translate(ev); ok {
				events = append(events, e)
			}
		default:
			return events
		}
	}
}

func translate(ev tcell.Event) (game.Event, bool) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return game.Event{}, false
	}
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.Quit(), true
	case tcell.KeyRune:
		if key.Rune() == 'q' {
			return game.Quit(), true
		}
		if h, ok := terminalRunes[key.Rune()]; ok {
			return game.Direction(h), true
		}
		return game.Event{}, false
	}
	if h, ok := terminalKeys[key.Key()]; ok {
		return game.Direction(h), true
	}
	return game.Event{}, false
}

// cellPosition maps an arena point onto screen coordinates inside the border.
func cellPosition(a types.Arena, p types.Point) (x, y int) {
	col := (p.X - a.Origin.X) / a.CellSize
	row := (p.Y - a.Origin.Y) / a.CellSize
	return 1 + col*2, 1 + row
}

func (t *Terminal) drawBorder(a types.Arena) {
	right := 1 + a.Cols*2
	bottom := 1 + a.Rows
	for x := 1; x < right; x++ {
		t.screen.SetContent(x, 0, tcell.RuneHLine, nil, borderStyle)
		t.screen.SetContent(x, bottom, tcell.RuneHLine, nil, borderStyle)
	}
	for y := 1; y < bottom; y++ {
		t.screen.SetContent(0, y, tcell.RuneVLine, nil, borderStyle)
		t.screen.SetContent(right, y, tcell.RuneVLine, nil, borderStyle)
	}
	t.screen.SetContent(0, 0, tcell.RuneULCorner, nil, borderStyle)
	t.screen.SetContent(right, 0, tcell.RuneURCorner, nil, borderStyle)
	t.screen.SetContent(0, bottom, tcell.RuneLLCorner, nil, borderStyle)
	t.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, borderStyle)
}

func (t *Terminal) drawText(x, y int, text string) {
	for _, r := range text {
		t.screen.SetContent(x, y, r, nil, textStyle)
		x++
	}
}

// Present draws the frame and waits for the next frame time.
func (t *Terminal) Present(s game.Snapshot) error {
	t.screen.Clear()
	t.drawBorder(s.Arena)

	x, y := cellPosition(s.Arena, s.Apple)
	t.screen.SetContent(x, y, '(', nil, appleStyle)
	t.screen.SetContent(x+1, y, ')', nil, appleStyle)

	for i := len(s.Segments) - 1; i >= 0; i-- {
		style := snakeStyle
		if i == 0 {
			style = headStyle
		}
		x, y := cellPosition(s.Arena, s.Segments[i])
		t.screen.SetContent(x, y, '█', nil, style)
		t.screen.SetContent(x+1, y, '█', nil, style)
	}

	if s.Over {
		t.drawText(2, 2+s.Arena.Rows, fmt.Sprintf("Game Over! Length %d", s.Length()))
	}

	t.screen.Show()
	<-t.ticker.C
	return nil
}

func (t *Terminal) Close() error {
	t.ticker.Stop()
	t.screen.Fini()
	return nil
}
