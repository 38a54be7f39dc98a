// Package hotkey listens for a global key combo that gates push-to-talk
// dictation. Hold mode records while the combo is down; toggle mode
// flips recording on each press.
package hotkey

import (
	"fmt"
	"sync"

	hook "github.com/robotn/gohook"
)

type EventType int

const (
	EventStart EventType = iota
	EventStop
)

type Event struct {
	Type EventType
}

type Mode string

const (
	ModeHold   Mode = "hold"
	ModeToggle Mode = "toggle"
)

// ParseMode validates a mode string from config or flags.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeHold, ModeToggle:
		return Mode(s), nil
	case "":
		return ModeHold, nil
	default:
		return "", fmt.Errorf("unknown hotkey mode %q (hold or toggle)", s)
	}
}

// Listener owns the global hook loop. Run blocks, so start it in a
// goroutine and read Events until the channel closes.
type Listener struct {
	keys []string
	mode Mode
	ch   chan Event
	done chan struct{}
	once sync.Once
}

func NewListener(keys []string, mode Mode) *Listener {
	return &Listener{
		keys: keys,
		mode: mode,
		ch:   make(chan Event, 16),
		done: make(chan struct{}),
	}
}

func (l *Listener) Events() <-chan Event {
	return l.ch
}

func (l *Listener) Run() {
	if l.mode == ModeToggle {
		l.runToggle()
		return
	}
	l.runHold()
}

func (l *Listener) runHold() {
	hook.Register(hook.KeyDown, l.keys, func(hook.Event) {
		l.emit(EventStart)
	})
	hook.Register(hook.KeyUp, l.keys, func(hook.Event) {
		l.emit(EventStop)
	})

	l.pump()
}

func (l *Listener) runToggle() {
	var mu sync.Mutex
	recording := false

	hook.Register(hook.KeyDown, l.keys, func(hook.Event) {
		mu.Lock()
		defer mu.Unlock()
		if recording {
			l.emit(EventStop)
		} else {
			l.emit(EventStart)
		}
		recording = !recording
	})

	l.pump()
}

func (l *Listener) pump() {
	evChan := hook.Start()
	go func() {
		<-l.done
		hook.End()
	}()
	<-hook.Process(evChan)
	close(l.ch)
}

func (l *Listener) emit(t EventType) {
	select {
	case l.ch <- Event{Type: t}:
	default:
		// a stuck consumer must not wedge the hook loop
	}
}

// Stop ends the hook loop. Safe to call more than once.
func (l *Listener) Stop() {
	l.once.Do(func() {
		close(l.done)
	})
}
