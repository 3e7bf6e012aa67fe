package letterbox

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// glideAnim holds active re-layout tweens for the frame node's offset and
// scale.
type glideAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	tweenS *gween.Tween
	doneX  bool
	doneY  bool
	doneS  bool
}

// GlideTo animates the binding's frame node from its current offset/scale
// to the given Solution over duration seconds. Useful after an orientation
// change when a hard snap would be jarring. A subsequent sync (View.Update
// or a re-apply) cancels the glide and snaps instead.
func (b *Binding) GlideTo(sol Solution, duration float32, easeFn ease.TweenFunc) {
	b.glide = &glideAnim{
		tweenX: gween.New(float32(b.frame.X), float32(sol.XOffset), duration, easeFn),
		tweenY: gween.New(float32(b.frame.Y), float32(sol.YOffset), duration, easeFn),
		tweenS: gween.New(float32(b.frame.ScaleX), float32(sol.Scale), duration, easeFn),
	}
}

// Advance steps the active glide by dt seconds, applying the interpolated
// offset and scale to the frame node. Returns true when no glide is active
// or the glide just finished. Call once per update tick while gliding.
func (b *Binding) Advance(dt float32) bool {
	g := b.glide
	if g == nil {
		return true
	}
	if !g.doneX {
		val, done := g.tweenX.Update(dt)
		b.frame.X = float64(val)
		g.doneX = done
	}
	if !g.doneY {
		val, done := g.tweenY.Update(dt)
		b.frame.Y = float64(val)
		g.doneY = done
	}
	if !g.doneS {
		val, done := g.tweenS.Update(dt)
		s := float64(val)
		b.frame.ScaleX = s
		b.frame.ScaleY = s
		g.doneS = done
	}
	b.frame.MarkDirty()
	if g.doneX && g.doneY && g.doneS {
		b.glide = nil
		return true
	}
	return false
}

// Gliding reports whether a glide is in progress.
func (b *Binding) Gliding() bool {
	return b.glide != nil
}

// UpdateSmooth recomputes the Solution like Update, but instead of snapping
// each bound scene's frame node it starts a glide toward the new layout.
// Coordinate converters reflect the new Solution immediately; only the
// visual transition is animated.
func (v *View) UpdateSmooth(duration float32, easeFn ease.TweenFunc) error {
	w, h := v.display.DisplaySize()
	sol, err := Solve(w, h, v.cfg)
	if err != nil {
		return err
	}
	v.sol = sol
	for _, b := range v.bindings {
		b.GlideTo(sol, duration, easeFn)
	}
	return nil
}
