package coachmark

import "github.com/charmbracelet/lipgloss"

// Weight is a font weight. Terminals only distinguish faint, normal and
// bold, so the finer steps collapse when rendered.
type Weight string

const (
	WeightUltraLight Weight = "ultralight"
	WeightThin       Weight = "thin"
	WeightLight      Weight = "light"
	WeightRegular    Weight = "regular"
	WeightMedium     Weight = "medium"
	WeightSemibold   Weight = "semibold"
	WeightBold       Weight = "bold"
	WeightHeavy      Weight = "heavy"
	WeightBlack      Weight = "black"
)

// Weights lists every recognised weight.
var Weights = []Weight{
	WeightUltraLight, WeightThin, WeightLight, WeightRegular, WeightMedium,
	WeightSemibold, WeightBold, WeightHeavy, WeightBlack,
}

func (w Weight) bold() bool {
	switch w {
	case WeightSemibold, WeightBold, WeightHeavy, WeightBlack:
		return true
	}
	return false
}

func (w Weight) faint() bool {
	switch w {
	case WeightUltraLight, WeightThin, WeightLight:
		return true
	}
	return false
}

// bodySize is the default description size; larger text renders bold.
const bodySize = 17

// TextStyle styles the popover title or description.
type TextStyle struct {
	Color  string
	Size   float64
	Family string
	Weight Weight
}

// ButtonStyle styles one navigation control.
type ButtonStyle struct {
	Text       string
	Color      string
	Background string
	Size       float64
	Family     string
	Weight     Weight
}

// OverlayStyle styles the scrim.
type OverlayStyle struct {
	Color   string
	Opacity float64
}

// Config is the complete styling payload. It is a value: every With method
// returns an updated copy and leaves the receiver untouched.
type Config struct {
	Title       TextStyle
	Description TextStyle
	Overlay     OverlayStyle
	Next        ButtonStyle
	Back        ButtonStyle
	Done        ButtonStyle
	Skip        ButtonStyle
}

func defaultButton(text string) ButtonStyle {
	return ButtonStyle{
		Text:       text,
		Color:      "#FFFFFF",
		Background: "#EF5366",
		Size:       12,
		Weight:     WeightRegular,
	}
}

// DefaultConfig returns the built-in styling.
func DefaultConfig() Config {
	return Config{
		Title:       TextStyle{Color: "#000000", Size: 18, Weight: WeightSemibold},
		Description: TextStyle{Color: "#000000", Size: bodySize, Weight: WeightRegular},
		Overlay:     OverlayStyle{Color: "#000000", Opacity: 0.7},
		Next:        defaultButton("Next"),
		Back:        defaultButton("Back"),
		Done:        defaultButton("Done"),
		Skip:        defaultButton("Skip CoachMark"),
	}
}

// TextOption changes one field of a TextStyle.
type TextOption func(*TextStyle)

// TextColor sets the text colour (hex or ANSI index).
func TextColor(c string) TextOption { return func(s *TextStyle) { s.Color = c } }

// TextSize sets the point size; sizes above the body size render bold.
func TextSize(size float64) TextOption { return func(s *TextStyle) { s.Size = size } }

// TextFamily sets the font family name.
func TextFamily(f string) TextOption { return func(s *TextStyle) { s.Family = f } }

// TextWeight sets the font weight.
func TextWeight(w Weight) TextOption { return func(s *TextStyle) { s.Weight = w } }

// ButtonOption changes one field of a ButtonStyle.
type ButtonOption func(*ButtonStyle)

// ButtonText sets the button label.
func ButtonText(t string) ButtonOption { return func(s *ButtonStyle) { s.Text = t } }

// ButtonColor sets the label colour.
func ButtonColor(c string) ButtonOption { return func(s *ButtonStyle) { s.Color = c } }

// ButtonBackground sets the button fill colour.
func ButtonBackground(c string) ButtonOption { return func(s *ButtonStyle) { s.Background = c } }

// ButtonSize sets the label point size.
func ButtonSize(size float64) ButtonOption { return func(s *ButtonStyle) { s.Size = size } }

// ButtonFamily sets the label font family.
func ButtonFamily(f string) ButtonOption { return func(s *ButtonStyle) { s.Family = f } }

// ButtonWeight sets the label weight.
func ButtonWeight(w Weight) ButtonOption { return func(s *ButtonStyle) { s.Weight = w } }

// OverlayOption changes one field of an OverlayStyle.
type OverlayOption func(*OverlayStyle)

// OverlayColor sets the scrim colour.
func OverlayColor(c string) OverlayOption { return func(s *OverlayStyle) { s.Color = c } }

// OverlayOpacity sets the scrim opacity, clamped to [0, 1].
func OverlayOpacity(o float64) OverlayOption {
	return func(s *OverlayStyle) { s.Opacity = min(max(o, 0), 1) }
}

func applyText(s TextStyle, opts []TextOption) TextStyle {
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}

func applyButton(s ButtonStyle, opts []ButtonOption) ButtonStyle {
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}

// WithTitleStyle returns a copy with the title style changed by opts.
func (c Config) WithTitleStyle(opts ...TextOption) Config {
	c.Title = applyText(c.Title, opts)
	return c
}

// WithDescriptionStyle returns a copy with the description style changed by opts.
func (c Config) WithDescriptionStyle(opts ...TextOption) Config {
	c.Description = applyText(c.Description, opts)
	return c
}

// WithOverlayStyle returns a copy with the scrim style changed by opts.
func (c Config) WithOverlayStyle(opts ...OverlayOption) Config {
	for _, opt := range opts {
		if opt != nil {
			opt(&c.Overlay)
		}
	}
	return c
}

// WithNextButtonStyle returns a copy with the next button changed by opts.
func (c Config) WithNextButtonStyle(opts ...ButtonOption) Config {
	c.Next = applyButton(c.Next, opts)
	return c
}

// WithBackButtonStyle returns a copy with the back button changed by opts.
func (c Config) WithBackButtonStyle(opts ...ButtonOption) Config {
	c.Back = applyButton(c.Back, opts)
	return c
}

// WithDoneButtonStyle returns a copy with the done button changed by opts.
func (c Config) WithDoneButtonStyle(opts ...ButtonOption) Config {
	c.Done = applyButton(c.Done, opts)
	return c
}

// WithSkipButtonStyle returns a copy with the skip button changed by opts.
func (c Config) WithSkipButtonStyle(opts ...ButtonOption) Config {
	c.Skip = applyButton(c.Skip, opts)
	return c
}

func colorOf(s string) lipgloss.TerminalColor {
	if s == "" {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(s)
}

func emphasis(style lipgloss.Style, w Weight, size float64) lipgloss.Style {
	return style.Bold(w.bold() || size > bodySize).Faint(w.faint())
}

func (s TextStyle) style() lipgloss.Style {
	return emphasis(lipgloss.NewStyle().Foreground(colorOf(s.Color)), s.Weight, s.Size)
}

func (s ButtonStyle) style() lipgloss.Style {
	style := lipgloss.NewStyle().
		Foreground(colorOf(s.Color)).
		Background(colorOf(s.Background))
	return emphasis(style, s.Weight, s.Size)
}
