package letterbox

import (
	"fmt"
	"math"
)

// solveState carries the working scale/extent values through the adjustment
// pipeline. displayW/H are always the raw display size; the fit targets may
// differ when an override is set (in which case the pipeline is skipped).
type solveState struct {
	cfg                Config
	displayW, displayH float64

	scale      float64
	axis       Axis
	effW, effH float64

	snapped bool // NearestMultiple applied and not abandoned
	forced  bool // ForceScale applied
}

// adjustment is one step of the scale-adjustment pipeline. Each step is
// pure: it returns the next state and never touches anything else.
type adjustment func(solveState) solveState

// adjustments run in this fixed order. Precedence between the policies is
// exactly this sequence: a successful integer snap disables ForceScale, and
// a ForceScale that ran disables both clamps. The width clamp runs before
// the height clamp, so the height clamp can see an already-reduced scale
// (last-applied-wins, not a simultaneous solve).
var adjustments = []adjustment{
	snapToMultiple,
	forceCoverage,
	clampMaxWidth,
	clampMaxHeight,
}

// Solve computes the user-to-window mapping for the given display size and
// configuration. It is pure: no state is read or written.
//
// The controlling axis is the one with the smaller display/user ratio; its
// extent (before any adjustment) equals the fit target on that axis, and
// the other axis's extent is scale*userSize, never exceeding its target.
// When cfg sets a window override, the override is the fit target and the
// adjustment pipeline is skipped entirely; offsets are always centered
// against the raw display size.
//
// Returns an error wrapping ErrInvalidConfig when any user or display
// dimension is not positive.
func Solve(displayW, displayH float64, cfg Config) (Solution, error) {
	if cfg.UserWidth <= 0 || cfg.UserHeight <= 0 {
		return Solution{}, fmt.Errorf("%w: user space %gx%g (dimensions must be positive)",
			ErrInvalidConfig, cfg.UserWidth, cfg.UserHeight)
	}
	if displayW <= 0 || displayH <= 0 {
		return Solution{}, fmt.Errorf("%w: display %gx%g (dimensions must be positive)",
			ErrInvalidConfig, displayW, displayH)
	}

	targetW, targetH := displayW, displayH
	override := cfg.WindowOverrideWidth > 0 && cfg.WindowOverrideHeight > 0
	if override {
		targetW = cfg.WindowOverrideWidth
		targetH = cfg.WindowOverrideHeight
	}

	s := solveState{cfg: cfg, displayW: displayW, displayH: displayH}

	// Base aspect-preserving fit: the tighter axis wins. Cross-multiplied
	// form of targetW/targetH < userW/userH to keep the comparison exact.
	if targetW*cfg.UserHeight < cfg.UserWidth*targetH {
		s.axis = AxisWidth
		s.scale = targetW / cfg.UserWidth
		s.effW = targetW
		s.effH = s.scale * cfg.UserHeight
	} else {
		s.axis = AxisHeight
		s.scale = targetH / cfg.UserHeight
		s.effW = s.scale * cfg.UserWidth
		s.effH = targetH
	}

	if !override {
		for _, adjust := range adjustments {
			s = adjust(s)
		}
	}

	return Solution{
		Scale:           s.scale,
		Axis:            s.axis,
		EffectiveWidth:  s.effW,
		EffectiveHeight: s.effH,
		XOffset:         (displayW - s.effW) / 2,
		YOffset:         (displayH - s.effH) / 2,
	}, nil
}

// controllingExtents returns the effective and display extents on the
// controlling axis.
func (s solveState) controllingExtents() (eff, display float64) {
	if s.axis == AxisWidth {
		return s.effW, s.displayW
	}
	return s.effH, s.displayH
}

// rescale sets a new uniform scale and recomputes both effective extents
// from it.
func (s solveState) rescale(scale float64) solveState {
	s.scale = scale
	s.effW = scale * s.cfg.UserWidth
	s.effH = scale * s.cfg.UserHeight
	return s
}

// snapToMultiple floors the scale to an integer for pixel-perfect
// rendering. The snap is abandoned (scale reverts, later steps may run)
// when flooring would reach zero, or when IgnoreMultipleIfTooSmall is set
// and the snapped extent covers too little of the display on the
// controlling axis.
func snapToMultiple(s solveState) solveState {
	if !s.cfg.NearestMultiple {
		return s
	}
	preSnap := s.scale
	floored := math.Floor(s.scale)
	if floored < 1 {
		// Display smaller than user space: an integer snap would collapse
		// the scale to zero. Treat as a failed snap rather than producing
		// a degenerate solution.
		return s
	}
	s = s.rescale(floored)
	if threshold := s.cfg.IgnoreMultipleIfTooSmall; threshold > 0 {
		eff, display := s.controllingExtents()
		if eff/display < threshold {
			return s.rescale(preSnap)
		}
	}
	s.snapped = true
	return s
}

// forceCoverage sets the covered fraction of the controlling axis to
// ForceScale. Skipped when unset or when an integer snap already succeeded.
func forceCoverage(s solveState) solveState {
	if s.cfg.ForceScale == 0 || s.snapped {
		return s
	}
	_, display := s.controllingExtents()
	userExtent := s.cfg.UserWidth
	if s.axis == AxisHeight {
		userExtent = s.cfg.UserHeight
	}
	s = s.rescale(s.cfg.ForceScale * display / userExtent)
	s.forced = true
	return s
}

// clampMaxWidth limits the effective width to MaxScreenWidth*displayW.
// Skipped when ForceScale ran.
func clampMaxWidth(s solveState) solveState {
	if s.cfg.MaxScreenWidth == 0 || s.forced {
		return s
	}
	if limit := s.cfg.MaxScreenWidth * s.displayW; s.effW > limit {
		s = s.rescale(limit / s.cfg.UserWidth)
	}
	return s
}

// clampMaxHeight limits the effective height to MaxScreenHeight*displayH.
// Runs after the width clamp; skipped when ForceScale ran.
func clampMaxHeight(s solveState) solveState {
	if s.cfg.MaxScreenHeight == 0 || s.forced {
		return s
	}
	if limit := s.cfg.MaxScreenHeight * s.displayH; s.effH > limit {
		s = s.rescale(limit / s.cfg.UserHeight)
	}
	return s
}
