// Package ui defines the minimal contract shared by everything that can be
// drawn inside the coach-mark popover.
package ui

// Renderable is anything that renders itself to a terminal string.
type Renderable interface {
	View() string
}

// Text adapts a plain string to Renderable.
type Text string

// View implements Renderable.
func (t Text) View() string { return string(t) }

// RenderFunc adapts a function to Renderable.
type RenderFunc func() string

// View implements Renderable.
func (f RenderFunc) View() string {
	if f == nil {
		return ""
	}
	return f()
}
