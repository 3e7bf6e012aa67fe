package letterbox

import "errors"

// Sentinel errors returned (or wrapped) by letterbox operations.
// All of them indicate integration bugs in the caller, not transient
// runtime conditions; nothing in this package retries or falls back.
var (
	// ErrInvalidConfig reports a configuration with non-positive user or
	// display dimensions.
	ErrInvalidConfig = errors.New("letterbox: invalid configuration")

	// ErrNotInitialised reports use of the package-level default view
	// before Init.
	ErrNotInitialised = errors.New("letterbox: not initialised")

	// ErrNoBinding reports ReleaseScene on a scene that was never bound
	// (or was already released).
	ErrNoBinding = errors.New("letterbox: scene has no binding")
)

// Axis identifies which window axis constrains the uniform scale.
type Axis uint8

const (
	AxisWidth  Axis = iota // window/user width ratio is the smaller one
	AxisHeight             // window/user height ratio is the smaller one
)

// String returns "width" or "height".
func (a Axis) String() string {
	if a == AxisWidth {
		return "width"
	}
	return "height"
}

// Config holds the virtual-resolution policy. UserWidth and UserHeight are
// required; every other field is optional and its zero value means unset.
type Config struct {
	// UserWidth and UserHeight are the logical coordinate-space extent the
	// game is authored against. Must be positive.
	UserWidth  float64
	UserHeight float64

	// WindowOverrideWidth and WindowOverrideHeight, when both set, bypass
	// the display-size provider for the fit computation. Offsets are still
	// centered against the real display, so an override larger than the
	// display produces negative offsets (content is clipped, not an error).
	WindowOverrideWidth  float64
	WindowOverrideHeight float64

	// NearestMultiple snaps the scale down to the largest integer not
	// exceeding the computed scale, for pixel-perfect rendering.
	NearestMultiple bool

	// IgnoreMultipleIfTooSmall, a fraction in (0, 1], abandons
	// NearestMultiple snapping for an update when the snapped extent on the
	// controlling axis covers less than this fraction of the display.
	IgnoreMultipleIfTooSmall float64

	// ForceScale, a fraction in (0, 1], sets the covered fraction of the
	// controlling axis explicitly. It yields to a successful
	// NearestMultiple snap and overrides the max-coverage clamps.
	ForceScale float64

	// MaxScreenWidth and MaxScreenHeight, fractions in (0, 1], clamp the
	// effective extent on each axis independently. Applied width first,
	// then height, so the height clamp sees a scale the width clamp may
	// already have reduced.
	MaxScreenWidth  float64
	MaxScreenHeight float64
}

// Solution is the computed mapping between user space and window space.
// All fields are derived together by Solve; a View replaces its Solution
// wholesale so readers never observe a mixed scale/offset pair.
type Solution struct {
	// Scale is the uniform user-to-window scale factor. Always positive.
	Scale float64

	// Axis is the controlling axis: the one whose fit determined Scale.
	Axis Axis

	// EffectiveWidth and EffectiveHeight are the window-space extent the
	// user space maps onto after all policy adjustments.
	EffectiveWidth  float64
	EffectiveHeight float64

	// XOffset and YOffset are the letterbox half-margins, measured against
	// the raw display size. Negative when an override forces a window
	// larger than the display.
	XOffset float64
	YOffset float64
}

// UserX converts a window-space X coordinate to user space.
func (s Solution) UserX(winX float64) float64 {
	return (winX - s.XOffset) / s.Scale
}

// UserY converts a window-space Y coordinate to user space.
func (s Solution) UserY(winY float64) float64 {
	return (winY - s.YOffset) / s.Scale
}

// WinX converts a user-space X coordinate to window space.
func (s Solution) WinX(userX float64) float64 {
	return userX*s.Scale + s.XOffset
}

// WinY converts a user-space Y coordinate to window space.
func (s Solution) WinY(userY float64) float64 {
	return userY*s.Scale + s.YOffset
}

// UserToWinSize converts a user-space length to window space.
func (s Solution) UserToWinSize(size float64) float64 {
	return size * s.Scale
}

// WinToUserSize converts a window-space length to user space.
func (s Solution) WinToUserSize(size float64) float64 {
	return size / s.Scale
}
