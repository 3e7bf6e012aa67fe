package letterbox

// TouchPhase identifies where a touch is in its lifecycle.
type TouchPhase uint8

const (
	PhaseBegan TouchPhase = iota // finger made contact
	PhaseMoved                   // finger moved while in contact
	PhaseEnded                   // finger lifted
)

// String returns "began", "moved", or "ended".
func (p TouchPhase) String() string {
	switch p {
	case PhaseBegan:
		return "began"
	case PhaseMoved:
		return "moved"
	default:
		return "ended"
	}
}

// TouchEvent is a mutable touch event as host engines deliver them: the
// same instance may be mutated and re-dispatched across a propagation tree
// and, for the moved phase, reused across consecutive delivery cycles.
// X and Y start in window space; after passing through a rewriting
// dispatcher they are in user space.
type TouchEvent struct {
	Name   string
	Phase  TouchPhase
	X, Y   float64
	Target *Node // nil for system-wide events

	// Rewrite bookkeeping, owned by the rewriting dispatcher. markPhase
	// records the phase the event was last rewritten for; the cycle fields
	// disambiguate moved-phase reuse (see rewrite).
	marked       bool
	markPhase    TouchPhase
	movedCycle   uint64
	movedTargets map[*Node]uint64
}

// Dispatcher delivers a touch event to its listeners. The host engine's
// dispatch entry point has this shape; rewriting is layered on as a
// middleware that takes the next Dispatcher and returns a new one.
type Dispatcher func(*TouchEvent)

// CycleSource reports the current delivery-cycle id. The dispatch
// collaborator owns the cycle boundary (one cycle per update tick) and must
// advance the id exactly once per tick; this package never guesses where a
// cycle starts.
type CycleSource func() uint64

// RewriteTouches returns a Dispatcher that rewrites event coordinates from
// window space to user space using the view's current Solution, then calls
// next. Each event is rewritten exactly once per delivery cycle:
//
//   - began/ended events are single-shot per cycle, so a phase mark on the
//     event suffices — deliveries after the first in the same chain skip
//     the rewrite.
//   - moved events are reused across consecutive cycles, so a matching
//     phase mark alone cannot distinguish "already rewritten this cycle"
//     from "stale mark from the previous cycle". The rewriter records the
//     cycle id of the last rewrite — one id for a system-wide event (nil
//     Target), one per target identity otherwise — and rewrites again when
//     the id is stale.
func (v *View) RewriteTouches(cycle CycleSource, next Dispatcher) Dispatcher {
	if cycle == nil {
		panic("letterbox: nil cycle source")
	}
	if next == nil {
		panic("letterbox: nil next dispatcher")
	}
	return func(e *TouchEvent) {
		v.rewrite(e, cycle())
		next(e)
	}
}

// rewrite applies the once-per-cycle coordinate rewrite state machine.
func (v *View) rewrite(e *TouchEvent, cycle uint64) {
	if !e.marked || e.markPhase != e.Phase {
		// First delivery for this phase: rewrite and mark.
		v.rewriteCoords(e)
		e.marked = true
		e.markPhase = e.Phase
		if e.Phase == PhaseMoved {
			e.recordMovedCycle(cycle)
		}
		return
	}
	if e.Phase != PhaseMoved {
		// began/ended: already rewritten this delivery chain.
		return
	}
	// Moved event with a matching mark: reused object. Rewrite only when
	// the recorded cycle id is stale for this event/target.
	if e.Target == nil {
		if e.movedCycle != cycle+1 {
			v.rewriteCoords(e)
			e.movedCycle = cycle + 1
		}
		return
	}
	if e.movedTargets[e.Target] != cycle+1 {
		v.rewriteCoords(e)
		e.recordMovedCycle(cycle)
	}
}

func (v *View) rewriteCoords(e *TouchEvent) {
	e.X = v.sol.UserX(e.X)
	e.Y = v.sol.UserY(e.Y)
}

// recordMovedCycle stores the delivery cycle of the last moved-phase
// rewrite, offset by one so the zero value always means "never rewritten"
// whatever id the host's cycle counter starts at.
func (e *TouchEvent) recordMovedCycle(cycle uint64) {
	if e.Target == nil {
		e.movedCycle = cycle + 1
		return
	}
	if e.movedTargets == nil {
		e.movedTargets = make(map[*Node]uint64)
	}
	e.movedTargets[e.Target] = cycle + 1
}

// --- Installed dispatch chain ---

// SetDispatcher registers the host engine's dispatch entry point and cycle
// source with the view. The original dispatcher is saved exactly once;
// events flow through Dispatch, which forwards either directly or through
// the rewriting middleware depending on ScaleTouchEvents.
func (v *View) SetDispatcher(base Dispatcher, cycle CycleSource) {
	if base == nil {
		panic("letterbox: nil dispatcher")
	}
	v.base = base
	v.cycle = cycle
	v.scaling = false
	v.dispatch = base
}

// ScaleTouchEvents toggles touch-coordinate rewriting on the installed
// dispatch chain. Idempotent: enabling twice wraps the saved original
// exactly once, never the already-wrapped chain.
func (v *View) ScaleTouchEvents(on bool) {
	if v.base == nil {
		panic("letterbox: no dispatcher installed: call SetDispatcher first")
	}
	if on == v.scaling {
		return
	}
	if on {
		if v.cycle == nil {
			panic("letterbox: no cycle source installed: call SetDispatcher first")
		}
		v.dispatch = v.RewriteTouches(v.cycle, v.base)
	} else {
		v.dispatch = v.base
	}
	v.scaling = on
}

// TouchScalingEnabled reports whether the rewriting middleware is installed.
func (v *View) TouchScalingEnabled() bool {
	return v.scaling
}

// Dispatch delivers an event through the current chain: the rewriting
// middleware when ScaleTouchEvents is on, the saved original otherwise.
func (v *View) Dispatch(e *TouchEvent) {
	if v.dispatch == nil {
		panic("letterbox: no dispatcher installed: call SetDispatcher first")
	}
	v.dispatch(e)
}

// SetDispatcher registers a dispatch entry point on the default view.
// Panics before Init.
func SetDispatcher(base Dispatcher, cycle CycleSource) {
	active().SetDispatcher(base, cycle)
}

// ScaleTouchEvents toggles touch rewriting on the default view.
// Panics before Init.
func ScaleTouchEvents(on bool) {
	active().ScaleTouchEvents(on)
}
