package letterbox

import "fmt"

// View owns one virtual-resolution context: the configuration, the display
// provider, the last-computed Solution, and the scene bindings and touch
// dispatch chain built on top of it. Multiple independent Views can coexist
// (e.g. a game view and an editor preview).
//
// Views are single-threaded, like the host engine's update loop. A View's
// Solution is replaced wholesale on Update, so code re-entered from within
// an operation (e.g. a node callback fired during ApplyToScene) never sees
// a mixed scale/offset pair.
type View struct {
	cfg     Config
	display DisplaySizer
	sol     Solution

	bindings map[Scene]*Binding

	// Touch dispatch chain (touch.go). base is saved exactly once by
	// SetDispatcher; dispatch is either base or the rewriting wrapper.
	base     Dispatcher
	dispatch Dispatcher
	cycle    CycleSource
	scaling  bool
}

// New creates a View for the given configuration and display provider and
// computes the initial Solution. Returns an error wrapping ErrInvalidConfig
// when the configuration or the provided display size is degenerate.
func New(cfg Config, display DisplaySizer) (*View, error) {
	if display == nil {
		return nil, fmt.Errorf("%w: nil display provider", ErrInvalidConfig)
	}
	v := &View{
		cfg:      cfg,
		display:  display,
		bindings: make(map[Scene]*Binding),
	}
	if err := v.Update(); err != nil {
		return nil, err
	}
	return v, nil
}

// Update re-reads the display size, recomputes the Solution, and re-syncs
// the frame node of every bound scene in place. On error the previous
// Solution and all bindings are left untouched.
func (v *View) Update() error {
	w, h := v.display.DisplaySize()
	sol, err := Solve(w, h, v.cfg)
	if err != nil {
		return err
	}
	v.sol = sol
	for _, b := range v.bindings {
		b.sync()
	}
	return nil
}

// Config returns the configuration this View was created with.
func (v *View) Config() Config {
	return v.cfg
}

// Solution returns the last-computed mapping.
func (v *View) Solution() Solution {
	return v.sol
}

// --- Coordinate converters ---

// UserX converts a window-space X coordinate to user space.
func (v *View) UserX(winX float64) float64 { return v.sol.UserX(winX) }

// UserY converts a window-space Y coordinate to user space.
func (v *View) UserY(winY float64) float64 { return v.sol.UserY(winY) }

// WinX converts a user-space X coordinate to window space.
func (v *View) WinX(userX float64) float64 { return v.sol.WinX(userX) }

// WinY converts a user-space Y coordinate to window space.
func (v *View) WinY(userY float64) float64 { return v.sol.WinY(userY) }

// UserToWinSize converts a user-space length to window space.
func (v *View) UserToWinSize(size float64) float64 { return v.sol.UserToWinSize(size) }

// WinToUserSize converts a window-space length to user space.
func (v *View) WinToUserSize(size float64) float64 { return v.sol.WinToUserSize(size) }

// --- Package-level default view ---

// defaultView backs the package-level convenience API for games with a
// single virtual resolution.
var defaultView *View

// Init creates the package-level default view. Subsequent Init calls
// replace it (existing bindings on the old view keep working).
func Init(cfg Config, display DisplaySizer) error {
	v, err := New(cfg, display)
	if err != nil {
		return err
	}
	defaultView = v
	return nil
}

// Default returns the package-level default view, or nil before Init.
func Default() *View {
	return defaultView
}

// active returns the default view, panicking when Init has not been called.
// Use before Init is an integration bug, so this fails fast rather than
// guessing a scale.
func active() *View {
	if defaultView == nil {
		panic(ErrNotInitialised)
	}
	return defaultView
}

// Update recomputes the default view. Panics before Init.
func Update() error { return active().Update() }

// UserX converts window-space X to user space on the default view.
func UserX(winX float64) float64 { return active().UserX(winX) }

// UserY converts window-space Y to user space on the default view.
func UserY(winY float64) float64 { return active().UserY(winY) }

// WinX converts user-space X to window space on the default view.
func WinX(userX float64) float64 { return active().WinX(userX) }

// WinY converts user-space Y to window space on the default view.
func WinY(userY float64) float64 { return active().WinY(userY) }

// UserToWinSize converts a user-space length on the default view.
func UserToWinSize(size float64) float64 { return active().UserToWinSize(size) }

// WinToUserSize converts a window-space length on the default view.
func WinToUserSize(size float64) float64 { return active().WinToUserSize(size) }

// ApplyToScene binds a scene on the default view. Panics before Init.
func ApplyToScene(scene Scene) *Binding { return active().ApplyToScene(scene) }

// ReleaseScene releases a scene on the default view. Panics before Init.
func ReleaseScene(scene Scene, keepChildren bool) error {
	return active().ReleaseScene(scene, keepChildren)
}
