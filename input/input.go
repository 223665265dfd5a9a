// Package input turns keyboard events into presses of the badge-style
// buttons the shader views listen to.
package input

import "shaderbox/hal"

// Button identifies one of the physical (or emulated) buttons.
type Button uint8

const (
	ButtonNone Button = iota
	ButtonCentre
	ButtonA
	ButtonB
	ButtonUp
	ButtonDown
)

func (b Button) String() string {
	switch b {
	case ButtonCentre:
		return "centre"
	case ButtonA:
		return "a"
	case ButtonB:
		return "b"
	case ButtonUp:
		return "up"
	case ButtonDown:
		return "down"
	default:
		return "none"
	}
}

// ButtonFor maps a key press to a button. Releases map to ButtonNone.
func ButtonFor(ev hal.KeyEvent) Button {
	if !ev.Press {
		return ButtonNone
	}
	switch ev.Code {
	case hal.KeyEnter:
		return ButtonCentre
	case hal.KeyUp:
		return ButtonUp
	case hal.KeyDown:
		return ButtonDown
	case hal.KeyF1:
		return ButtonA
	case hal.KeyF2, hal.KeyEscape:
		return ButtonB
	}
	switch ev.Rune {
	case ' ':
		return ButtonCentre
	case 'a', 'A':
		return ButtonA
	case 'b', 'B':
		return ButtonB
	}
	return ButtonNone
}

type handler struct {
	fn func()
}

// Service dispatches button presses to handlers.
//
// Handlers registered for the same button form a stack: only the most recent
// one fires, and removing it re-exposes the previous one. This lets a view
// pushed on top of another temporarily take over its buttons.
type Service struct {
	events   <-chan hal.KeyEvent
	handlers map[Button][]*handler
}

// New returns a service reading from kbd. kbd may be nil; presses can still
// be injected with Press.
func New(kbd hal.Keyboard) *Service {
	s := &Service{handlers: make(map[Button][]*handler)}
	if kbd != nil {
		s.events = kbd.Events()
	}
	return s
}

// OnPress registers fn for b and returns a function that unregisters it.
func (s *Service) OnPress(b Button, fn func()) (remove func()) {
	h := &handler{fn: fn}
	s.handlers[b] = append(s.handlers[b], h)
	return func() {
		hs := s.handlers[b]
		for i := range hs {
			if hs[i] != h {
				continue
			}
			copy(hs[i:], hs[i+1:])
			hs[len(hs)-1] = nil
			s.handlers[b] = hs[:len(hs)-1]
			return
		}
	}
}

// Press invokes the active handler for b and reports whether one existed.
func (s *Service) Press(b Button) bool {
	hs := s.handlers[b]
	if len(hs) == 0 {
		return false
	}
	h := hs[len(hs)-1]
	if h.fn != nil {
		h.fn()
	}
	return true
}

// Poll drains pending keyboard events without blocking and dispatches the
// presses. It returns the number of events consumed.
func (s *Service) Poll() int {
	if s.events == nil {
		return 0
	}
	n := 0
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				s.events = nil
				return n
			}
			n++
			if b := ButtonFor(ev); b != ButtonNone {
				s.Press(b)
			}
		default:
			return n
		}
	}
}
