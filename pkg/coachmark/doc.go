// Package coachmark walks a user through marked regions of a Bubble Tea
// screen: the background is dimmed, the current region is cut out of the
// scrim and a popover next to it explains what the region does.
//
// A host embeds a Model, marks targets while rendering and passes its frame
// through the overlay:
//
//	func (s screen) View() string {
//		reg := s.overlay.Registry()
//		inbox := reg.Mark(0, s.inbox.View(),
//			coachmark.Title("Inbox"),
//			coachmark.Description("Every message lands here first."),
//		)
//		return s.overlay.View(lipgloss.JoinVertical(lipgloss.Left, s.header(), inbox))
//	}
//
// Marks are ordered by their integer order; equal orders resolve last write
// wins. The sequence itself is a small state machine (see Sequence) whose
// deferred callbacks run as tea.Tick messages, so every transition happens
// on the program's event loop.
//
// Navigation comes from the popover's controls (keys and mouse), from an
// EventSource the host triggers from its own widgets, or from the exported
// NextMsg, BackMsg, DoneMsg and SkipMsg messages.
package coachmark
