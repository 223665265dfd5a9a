// Package ui holds the view stack and the shader picker menu.
package ui

import "shaderbox/hal"

// View is a full-screen activity. A view owns the display and its button
// handlers only while it is on top of the stack.
type View interface {
	// Activate is called when the view becomes the top of the stack.
	Activate() error
	// Deactivate is called when another view covers it or it is popped.
	Deactivate()
}

// Stack is a stack of views; only the top one is active.
type Stack struct {
	// Logger receives errors from views reactivated by Push or Pop.
	Logger hal.Logger

	views []View
}

func (s *Stack) Len() int { return len(s.views) }

// Top returns the active view, or nil when the stack is empty.
func (s *Stack) Top() View {
	if len(s.views) == 0 {
		return nil
	}
	return s.views[len(s.views)-1]
}

// Push deactivates the current top and activates v. If v fails to activate
// it is not pushed and the previous top is reactivated.
func (s *Stack) Push(v View) error {
	prev := s.Top()
	if prev != nil {
		prev.Deactivate()
	}
	s.views = append(s.views, v)
	if err := v.Activate(); err != nil {
		s.views = s.views[:len(s.views)-1]
		s.reactivate(prev)
		return err
	}
	return nil
}

// Pop removes the top view, deactivates it and reactivates the view below.
// The popped view is already off the stack while it deactivates.
func (s *Stack) Pop() View {
	v := s.Top()
	if v == nil {
		return nil
	}
	s.views[len(s.views)-1] = nil
	s.views = s.views[:len(s.views)-1]
	v.Deactivate()
	s.reactivate(s.Top())
	return v
}

func (s *Stack) reactivate(v View) {
	if v == nil {
		return
	}
	if err := v.Activate(); err != nil && s.Logger != nil {
		s.Logger.WriteLineString("ui: reactivate: " + err.Error())
	}
}
