// Package components is a small lipgloss component library for the popover
// and the screens that host it.
//
// Every component renders through a RenderContext carrying the width bound
// and the surface colour it is drawn on; components that leave their own
// background unset pick up the surface, so text and buttons inside a tinted
// popover never punch holes in it:
//
//	ctx := components.DefaultContext().WithMaxWidth(40).WithSurface(lipgloss.Color("#FFFFFF"))
//	body := components.VStack(
//		components.NewText("Inbox").WithStyle(titleStyle),
//		components.HorizontalDivider(),
//		components.NewText(description),
//	).WithGap(1)
//	out := body.ViewWithContext(ctx)
//
// Text, Button, Badge and Divider are leaves; Stack arranges children
// vertically or horizontally with a gap and cross-axis alignment.
package components
