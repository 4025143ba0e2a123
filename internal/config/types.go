package config

import "time"

// Tour is a coach-mark tour document: the styling of the overlay and the
// regions of the host screen to walk through.
type Tour struct {
	Version        string        `yaml:"version" validate:"required,semver"`
	Name           string        `yaml:"name" validate:"required,min=1,max=100"`
	Description    string        `yaml:"description,omitempty"`
	AutoTransition time.Duration `yaml:"auto_transition,omitempty" validate:"omitempty,min=100ms,max=10m"`
	Animate        *bool         `yaml:"animate,omitempty"`
	Style          Style         `yaml:"style,omitempty"`
	Marks          []Mark        `yaml:"marks" validate:"required,min=1,dive"`
}

// Style overrides the built-in overlay styling. Omitted sections and fields
// keep their defaults.
type Style struct {
	Title       *TextStyle    `yaml:"title,omitempty"`
	Description *TextStyle    `yaml:"description,omitempty"`
	Overlay     *OverlayStyle `yaml:"overlay,omitempty"`
	Buttons     ButtonStyles  `yaml:"buttons,omitempty"`
}

// TextStyle mirrors the popover title and description styling.
type TextStyle struct {
	Color  string  `yaml:"color,omitempty" validate:"omitempty,term_color"`
	Size   float64 `yaml:"size,omitempty" validate:"omitempty,gt=0,lte=96"`
	Family string  `yaml:"family,omitempty" validate:"omitempty,max=64"`
	Weight string  `yaml:"weight,omitempty" validate:"omitempty,weight"`
}

// ButtonStyles groups the four navigation controls.
type ButtonStyles struct {
	Next *ButtonStyle `yaml:"next,omitempty"`
	Back *ButtonStyle `yaml:"back,omitempty"`
	Done *ButtonStyle `yaml:"done,omitempty"`
	Skip *ButtonStyle `yaml:"skip,omitempty"`
}

// ButtonStyle mirrors one navigation control's styling.
type ButtonStyle struct {
	Text       string  `yaml:"text,omitempty" validate:"omitempty,max=40"`
	Color      string  `yaml:"color,omitempty" validate:"omitempty,term_color"`
	Background string  `yaml:"background,omitempty" validate:"omitempty,term_color"`
	Size       float64 `yaml:"size,omitempty" validate:"omitempty,gt=0,lte=96"`
	Family     string  `yaml:"family,omitempty" validate:"omitempty,max=64"`
	Weight     string  `yaml:"weight,omitempty" validate:"omitempty,weight"`
}

// OverlayStyle mirrors the scrim styling.
type OverlayStyle struct {
	Color   string   `yaml:"color,omitempty" validate:"omitempty,term_color"`
	Opacity *float64 `yaml:"opacity,omitempty" validate:"omitempty,gte=0,lte=1"`
}

// Mark highlights one named region of the host screen.
type Mark struct {
	Target       string  `yaml:"target" validate:"required,target_id"`
	Order        int     `yaml:"order"`
	Title        string  `yaml:"title,omitempty" validate:"omitempty,max=120"`
	Description  string  `yaml:"description,omitempty"`
	CornerRadius float64 `yaml:"corner_radius,omitempty" validate:"gte=0,lte=16"`
	ScaleEffect  float64 `yaml:"scale_effect,omitempty" validate:"omitempty,gte=0.5,lte=3"`
	Background   string  `yaml:"background,omitempty" validate:"omitempty,term_color"`
}
