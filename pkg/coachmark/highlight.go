package coachmark

import (
	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/coachmark/internal/anchor"
	"github.com/alexisbeaulieu97/coachmark/internal/ui"
)

// Highlight describes one stop of the tour: the region to spotlight and what
// the popover next to it says.
//
// Highlights are rebuilt on every render pass. Two highlights are the same
// stop only when their IDs match; identical visible fields with different
// IDs are different highlights.
type Highlight struct {
	ID           uuid.UUID
	Order        int
	Anchor       anchor.ID
	Title        string
	Description  string
	Content      ui.Renderable
	CornerRadius float64
	ScaleEffect  float64
	Background   string
}

// HighlightOption customises a Highlight at its declaration site.
type HighlightOption func(*Highlight)

// Title sets the popover title.
func Title(title string) HighlightOption {
	return func(h *Highlight) { h.Title = title }
}

// Description sets the popover body text.
func Description(text string) HighlightOption {
	return func(h *Highlight) { h.Description = text }
}

// CustomContent replaces the title/description block with arbitrary content.
// A description, when also set, takes precedence.
func CustomContent(content ui.Renderable) HighlightOption {
	return func(h *Highlight) { h.Content = content }
}

// CornerRadius rounds the spotlight cutout.
func CornerRadius(r float64) HighlightOption {
	return func(h *Highlight) { h.CornerRadius = r }
}

// ScaleEffect grows (>1) or shrinks (<1) the cutout around the target.
func ScaleEffect(s float64) HighlightOption {
	return func(h *Highlight) { h.ScaleEffect = s }
}

// Background sets the popover surface colour (hex or ANSI code).
func Background(color string) HighlightOption {
	return func(h *Highlight) { h.Background = color }
}

// NewHighlight builds a highlight with a fresh identity.
func NewHighlight(order int, opts ...HighlightOption) Highlight {
	h := Highlight{
		ID:          uuid.New(),
		Order:       order,
		ScaleEffect: DefaultScaleEffect,
		Background:  DefaultBackground,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&h)
		}
	}
	return h
}

// Equal reports whether h and o are the same highlight instance.
func (h Highlight) Equal(o Highlight) bool {
	return h.ID == o.ID
}

// HasDescription reports whether the popover uses the text layout.
func (h Highlight) HasDescription() bool {
	return h.Description != ""
}

// HasCustomContent reports whether the popover shows host content instead of
// the text layout.
func (h Highlight) HasCustomContent() bool {
	return !h.HasDescription() && h.Content != nil
}
