// Package router keeps the stack of open screens. The dashboard sits at the
// root and the module, ecosystem and tutor screens open on top of it.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cloudquest/internal/screen"
)

// PushScreenMsg opens Screen above the active one.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg closes the active screen. The root is never closed.
type PopScreenMsg struct{}

// ReplaceScreenMsg swaps the active screen for Screen.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// HomeMsg closes every screen above the root.
type HomeMsg struct{}

// Router owns the screen stack and routes messages to the active screen.
type Router struct {
	stack []screen.Screen
}

// New creates a Router whose root is root.
func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

// Push opens s and returns its Init command.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop closes the active screen unless it is the root.
func (r *Router) Pop() {
	r.truncate(len(r.stack) - 1)
}

// Home closes everything above the root.
func (r *Router) Home() {
	r.truncate(1)
}

// Replace swaps the active screen for s and returns its Init command.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	r.stack[len(r.stack)-1] = s
	return s.Init()
}

func (r *Router) truncate(depth int) {
	if depth < 1 {
		depth = 1
	}
	if depth < len(r.stack) {
		clear(r.stack[depth:])
		r.stack = r.stack[:depth]
	}
}

// Active returns the screen on top.
func (r *Router) Active() screen.Screen {
	return r.stack[len(r.stack)-1]
}

// Depth is the number of open screens, one when only the root is shown.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Trail lists the titles of the open screens from the root up.
func (r *Router) Trail() []string {
	titles := make([]string, len(r.stack))
	for i, s := range r.stack {
		titles[i] = s.Title()
	}
	return titles
}

// Update applies navigation messages and hands everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	case PopScreenMsg:
		r.Pop()
		return nil
	case HomeMsg:
		r.Home()
		return nil
	}

	updated, cmd := r.Active().Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View renders the active screen into the content area.
func (r *Router) View(width, height int) string {
	return r.Active().View(width, height)
}
