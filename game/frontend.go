package game

import (
	"snake-game/game/types"
)

type EventKind int

const (
	EventDirection EventKind = iota
	EventQuit
)

// Event is an abstract input produced by a frontend.
type Event struct {
	Kind    EventKind
	Heading types.Heading
}

// Direction builds a direction-pressed event.
func Direction(h types.Heading) Event {
	return Event{Kind: EventDirection, Heading: h}
}

// Quit builds a quit event.
func Quit() Event {
	return Event{Kind: EventQuit}
}

// Frontend is the window or terminal the game is played in.
//
// PollEvents returns the inputs received since the previous call without
// blocking. Present draws one frame and may block until the frame is due.
type Frontend interface {
	PollEvents() []Event
	Present(Snapshot) error
	Close() error
}

// Observer is notified of game events. Used for sound.
type Observer interface {
	AppleEaten(apple types.Point)
	GameOver(reason error)
}

// Snapshot is the plain geometric state handed to frontends once per frame.
type Snapshot struct {
	Segments []types.Point // Head first
	Apple    types.Point
	Arena    types.Arena
	Heading  types.Heading
	Ticks    int
	Over     bool
	Reason   error
}

// Length is the number of snake segments.
func (s Snapshot) Length() int {
	return len(s.Segments)
}
