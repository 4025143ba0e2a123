package config

import (
	"strings"

	"github.com/alexisbeaulieu97/coachmark/pkg/coachmark"
)

// CoachmarkConfig layers the tour's style overrides onto the defaults.
func (t *Tour) CoachmarkConfig() coachmark.Config {
	cfg := coachmark.DefaultConfig()
	if t == nil {
		return cfg
	}

	s := t.Style
	if s.Title != nil {
		cfg = cfg.WithTitleStyle(s.Title.options()...)
	}
	if s.Description != nil {
		cfg = cfg.WithDescriptionStyle(s.Description.options()...)
	}
	if s.Overlay != nil {
		var opts []coachmark.OverlayOption
		if s.Overlay.Color != "" {
			opts = append(opts, coachmark.OverlayColor(s.Overlay.Color))
		}
		if s.Overlay.Opacity != nil {
			opts = append(opts, coachmark.OverlayOpacity(*s.Overlay.Opacity))
		}
		cfg = cfg.WithOverlayStyle(opts...)
	}
	if b := s.Buttons.Next; b != nil {
		cfg = cfg.WithNextButtonStyle(b.options()...)
	}
	if b := s.Buttons.Back; b != nil {
		cfg = cfg.WithBackButtonStyle(b.options()...)
	}
	if b := s.Buttons.Done; b != nil {
		cfg = cfg.WithDoneButtonStyle(b.options()...)
	}
	if b := s.Buttons.Skip; b != nil {
		cfg = cfg.WithSkipButtonStyle(b.options()...)
	}
	return cfg
}

// Options returns the overlay options the tour implies.
func (t *Tour) Options() []coachmark.Option {
	if t == nil {
		return nil
	}
	opts := []coachmark.Option{coachmark.WithConfig(t.CoachmarkConfig())}
	if t.AutoTransition > 0 {
		opts = append(opts, coachmark.AutoTransition(t.AutoTransition))
	}
	if t.Animate != nil {
		opts = append(opts, coachmark.WithAnimation(*t.Animate))
	}
	return opts
}

// MarkFor returns the mark targeting the named region.
func (t *Tour) MarkFor(target string) (Mark, bool) {
	if t == nil {
		return Mark{}, false
	}
	for _, m := range t.Marks {
		if m.Target == target {
			return m, true
		}
	}
	return Mark{}, false
}

// HighlightOptions converts the mark into highlight options. Zero fields keep
// the highlight defaults.
func (m Mark) HighlightOptions() []coachmark.HighlightOption {
	var opts []coachmark.HighlightOption
	if m.Title != "" {
		opts = append(opts, coachmark.Title(m.Title))
	}
	if m.Description != "" {
		opts = append(opts, coachmark.Description(m.Description))
	}
	if m.CornerRadius > 0 {
		opts = append(opts, coachmark.CornerRadius(m.CornerRadius))
	}
	if m.ScaleEffect > 0 {
		opts = append(opts, coachmark.ScaleEffect(m.ScaleEffect))
	}
	if m.Background != "" {
		opts = append(opts, coachmark.Background(m.Background))
	}
	return opts
}

func (s *TextStyle) options() []coachmark.TextOption {
	var opts []coachmark.TextOption
	if s.Color != "" {
		opts = append(opts, coachmark.TextColor(s.Color))
	}
	if s.Size > 0 {
		opts = append(opts, coachmark.TextSize(s.Size))
	}
	if s.Family != "" {
		opts = append(opts, coachmark.TextFamily(s.Family))
	}
	if s.Weight != "" {
		opts = append(opts, coachmark.TextWeight(weight(s.Weight)))
	}
	return opts
}

func (s *ButtonStyle) options() []coachmark.ButtonOption {
	var opts []coachmark.ButtonOption
	if s.Text != "" {
		opts = append(opts, coachmark.ButtonText(s.Text))
	}
	if s.Color != "" {
		opts = append(opts, coachmark.ButtonColor(s.Color))
	}
	if s.Background != "" {
		opts = append(opts, coachmark.ButtonBackground(s.Background))
	}
	if s.Size > 0 {
		opts = append(opts, coachmark.ButtonSize(s.Size))
	}
	if s.Family != "" {
		opts = append(opts, coachmark.ButtonFamily(s.Family))
	}
	if s.Weight != "" {
		opts = append(opts, coachmark.ButtonWeight(weight(s.Weight)))
	}
	return opts
}

func weight(s string) coachmark.Weight {
	return coachmark.Weight(strings.ToLower(s))
}
