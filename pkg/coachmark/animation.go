package coachmark

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

type frameMsg struct {
	id  int
	gen uint64
}

// spotlight animates the cutout growing into place whenever the highlighted
// order changes. Progress runs from 0 (no hole) to 1 (final size).
type spotlight struct {
	id       int
	enabled  bool
	tween    *gween.Tween
	progress float64
	order    int
	started  bool
	gen      uint64
}

func newSpotlight(id int, enabled bool) spotlight {
	return spotlight{id: id, enabled: enabled, progress: 1}
}

// retarget restarts the animation when order differs from the animated one.
func (s *spotlight) retarget(order int) tea.Cmd {
	if s.started && s.order == order {
		return nil
	}
	s.started = true
	s.order = order
	s.gen++
	if !s.enabled {
		s.tween = nil
		s.progress = 1
		return nil
	}
	s.tween = gween.New(0, 1, float32(HideAnimationDuration.Seconds()), ease.OutQuad)
	s.progress = 0
	return frameCmd(s.id, s.gen)
}

func (s *spotlight) frame(msg frameMsg) tea.Cmd {
	if msg.id != s.id || msg.gen != s.gen || s.tween == nil {
		return nil
	}
	v, done := s.tween.Update(float32(animationFrame.Seconds()))
	s.progress = float64(v)
	if done {
		s.tween = nil
		s.progress = 1
		return nil
	}
	return frameCmd(s.id, s.gen)
}

// scale applies the animation progress to a highlight's scale effect.
func (s spotlight) scale(target float64) float64 {
	return target * s.progress
}

func frameCmd(id int, gen uint64) tea.Cmd {
	return tea.Tick(animationFrame, func(time.Time) tea.Msg {
		return frameMsg{id: id, gen: gen}
	})
}
