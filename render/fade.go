package render

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Fade is the black overlay shown around a respawn. It darkens quickly, then
// clears over the configured duration.
type Fade struct {
	tween  *gween.Tween
	alpha  float32
	active bool
}

// NewFade returns an idle fade that clears over duration seconds.
func NewFade(duration float32) *Fade {
	return &Fade{tween: gween.New(1, 0, duration, ease.OutQuad)}
}

// Start shows the overlay fully opaque and begins clearing it.
func (f *Fade) Start() {
	f.tween.Reset()
	f.alpha = 1
	f.active = true
}

// Update advances the fade by dt seconds and returns the overlay alpha.
func (f *Fade) Update(dt float32) float32 {
	if !f.active {
		return 0
	}
	alpha, done := f.tween.Update(dt)
	f.alpha = alpha
	if done {
		f.alpha = 0
		f.active = false
	}
	return f.alpha
}

func (f *Fade) Alpha() float32 {
	return f.alpha
}

func (f *Fade) Active() bool {
	return f.active
}
