package coachmark

import "time"

// Timing.
const (
	// DefaultAutoTransitionDuration is how long each stop stays on screen in
	// auto-transition mode.
	DefaultAutoTransitionDuration = 2 * time.Second

	// InitialShowDelay lets the first frame settle before the first popover
	// appears, so it never flashes against stale geometry.
	InitialShowDelay = 100 * time.Millisecond

	// HideAnimationDuration is the length of the exit animation and of the
	// spotlight grow tween.
	HideAnimationDuration = 250 * time.Millisecond

	// ShowDelay separates hiding one popover from showing the next. It is
	// longer than HideAnimationDuration so the old popover is gone before the
	// next target's geometry is read.
	ShowDelay = 600 * time.Millisecond

	animationFrame = time.Second / 60
)

// Geometry, in cells.
const (
	// scrimMargin extends the scrim past the viewport to cover frames that
	// are taller or wider than the last reported window size.
	scrimMargin = 2

	// maskSpacing is added to the target size before scaling; maskOffset
	// recentres the grown cutout on the target.
	maskSpacing = 2.0
	maskOffset  = maskSpacing / 2

	// popoverSpacing is the larger margin around the target that the
	// popover keeps clear of.
	popoverSpacing = 4.0
	popoverOffset  = popoverSpacing / 2

	// scrollOffset is the room reserved for title, controls and border when
	// deciding whether the description must scroll.
	scrollOffset = 8

	popoverMaxWidth = 48
	popoverMinWidth = 16

	// minScrollHeight keeps a scrolling description usable when the room
	// below the target is tiny.
	minScrollHeight = 3
)

// Highlight defaults.
const (
	DefaultScaleEffect = 1.2
	DefaultBackground  = "#FFFFFF"
)
