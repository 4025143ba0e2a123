package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/coachmark/pkg/coachmark"
)

func TestCoachmarkConfigLayersOverrides(t *testing.T) {
	t.Parallel()

	opacity := 0.4
	tour := &Tour{
		Style: Style{
			Title:   &TextStyle{Color: "#333333", Weight: "Bold"},
			Overlay: &OverlayStyle{Opacity: &opacity},
			Buttons: ButtonStyles{
				Next: &ButtonStyle{Text: "Continue", Family: "Mono"},
				Skip: &ButtonStyle{Background: "240"},
			},
		},
	}

	cfg := tour.CoachmarkConfig()
	def := coachmark.DefaultConfig()

	assert.Equal(t, "#333333", cfg.Title.Color)
	assert.Equal(t, coachmark.WeightBold, cfg.Title.Weight)
	assert.Equal(t, def.Title.Size, cfg.Title.Size)
	assert.Equal(t, def.Description, cfg.Description)
	assert.Equal(t, 0.4, cfg.Overlay.Opacity)
	assert.Equal(t, def.Overlay.Color, cfg.Overlay.Color)
	assert.Equal(t, "Continue", cfg.Next.Text)
	assert.Equal(t, "Mono", cfg.Next.Family)
	assert.Equal(t, def.Next.Background, cfg.Next.Background)
	assert.Equal(t, "240", cfg.Skip.Background)
	assert.Equal(t, def.Done, cfg.Done)
}

func TestNilTourUsesDefaults(t *testing.T) {
	t.Parallel()

	var tour *Tour
	assert.Equal(t, coachmark.DefaultConfig(), tour.CoachmarkConfig())
	assert.Nil(t, tour.Options())
	_, ok := tour.MarkFor("inbox")
	assert.False(t, ok)
}

func TestTourOptions(t *testing.T) {
	t.Parallel()

	animate := false
	tour := validTour()
	tour.AutoTransition = time.Second
	tour.Animate = &animate

	m, err := coachmark.New(tour.Options()...)
	require.NoError(t, err)
	assert.True(t, m.Sequence().AutoTransition())

	manual, err := coachmark.New(validTour().Options()...)
	require.NoError(t, err)
	assert.False(t, manual.Sequence().AutoTransition())
}

func TestMarkHighlightOptions(t *testing.T) {
	t.Parallel()

	tour := validTour()
	tour.Marks[0].Background = "#EEEEEE"
	tour.Marks[0].ScaleEffect = 1.4

	mark, ok := tour.MarkFor("inbox")
	require.True(t, ok)

	h := coachmark.NewHighlight(mark.Order, mark.HighlightOptions()...)
	assert.Equal(t, "Inbox", h.Title)
	assert.Equal(t, "#EEEEEE", h.Background)
	assert.Equal(t, 1.4, h.ScaleEffect)
	assert.False(t, h.HasDescription())

	compose, ok := tour.MarkFor("compose")
	require.True(t, ok)
	h = coachmark.NewHighlight(compose.Order, compose.HighlightOptions()...)
	assert.Equal(t, coachmark.DefaultScaleEffect, h.ScaleEffect)
	assert.Equal(t, coachmark.DefaultBackground, h.Background)
	assert.True(t, h.HasDescription())
}
