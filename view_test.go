package letterbox

import (
	"errors"
	"testing"
)

// resizableDisplay is a DisplaySizer whose size can change between updates.
type resizableDisplay struct {
	w, h float64
}

func (d *resizableDisplay) DisplaySize() (float64, float64) {
	return d.w, d.h
}

func newTestView(t *testing.T, cfg Config, w, h float64) (*View, *resizableDisplay) {
	t.Helper()
	d := &resizableDisplay{w: w, h: h}
	v, err := New(cfg, d)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return v, d
}

func TestNewComputesInitialSolution(t *testing.T) {
	v, _ := newTestView(t, Config{UserWidth: 480, UserHeight: 640}, 1200, 1280)
	sol := v.Solution()
	assertNear(t, "Scale", sol.Scale, 2)
	assertNear(t, "XOffset", sol.XOffset, 120)
}

func TestNewInvalidConfig(t *testing.T) {
	_, err := New(Config{UserWidth: 0, UserHeight: 640}, FixedDisplay{W: 960, H: 1280})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("New error = %v, want ErrInvalidConfig", err)
	}
	_, err = New(Config{UserWidth: 480, UserHeight: 640}, nil)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("New(nil display) error = %v, want ErrInvalidConfig", err)
	}
}

func TestUpdateTracksResize(t *testing.T) {
	v, d := newTestView(t, Config{UserWidth: 480, UserHeight: 640}, 960, 1280)
	assertNear(t, "initial Scale", v.Solution().Scale, 2)

	d.w, d.h = 480, 640
	if err := v.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	assertNear(t, "resized Scale", v.Solution().Scale, 1)
	assertNear(t, "resized XOffset", v.Solution().XOffset, 0)
}

func TestUpdateFailureLeavesSolutionUntouched(t *testing.T) {
	v, d := newTestView(t, Config{UserWidth: 480, UserHeight: 640}, 960, 1280)
	before := v.Solution()

	d.w = 0 // display provider goes bad
	err := v.Update()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Update error = %v, want ErrInvalidConfig", err)
	}
	if v.Solution() != before {
		t.Errorf("Solution changed after failed Update: %+v -> %+v", before, v.Solution())
	}
}

func TestViewConverters(t *testing.T) {
	v, _ := newTestView(t, Config{UserWidth: 480, UserHeight: 640}, 1200, 1280)
	// scale 2, xOffset 120, yOffset 0
	assertNear(t, "UserX", v.UserX(120), 0)
	assertNear(t, "UserX center", v.UserX(600), 240)
	assertNear(t, "UserY", v.UserY(640), 320)
	assertNear(t, "WinX", v.WinX(240), 600)
	assertNear(t, "WinY", v.WinY(320), 640)
	assertNear(t, "UserToWinSize", v.UserToWinSize(10), 20)
	assertNear(t, "WinToUserSize", v.WinToUserSize(20), 10)
}

// --- Package-level default view ---

func TestDefaultViewPanicsBeforeInit(t *testing.T) {
	defaultView = nil
	assertPanics(t, "UserX before Init", func() { UserX(0) })
	assertPanics(t, "Update before Init", func() { _ = Update() })
	assertPanics(t, "ApplyToScene before Init", func() { ApplyToScene(NewStage()) })
}

func TestDefaultViewAfterInit(t *testing.T) {
	defaultView = nil
	if err := Init(Config{UserWidth: 480, UserHeight: 640}, FixedDisplay{W: 1200, H: 1280}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(func() { defaultView = nil })

	assertNear(t, "UserX", UserX(600), 240)
	assertNear(t, "WinY", WinY(320), 640)
	assertNear(t, "UserToWinSize", UserToWinSize(5), 10)
	if Default() == nil {
		t.Error("Default() = nil after Init")
	}

	stage := NewStage()
	b := ApplyToScene(stage)
	if b == nil || b.Frame().Parent != stage.Root() {
		t.Fatal("ApplyToScene did not bind through the default view")
	}
	if err := ReleaseScene(stage, true); err != nil {
		t.Errorf("ReleaseScene: %v", err)
	}
}

func TestInitRejectsInvalidConfig(t *testing.T) {
	defaultView = nil
	err := Init(Config{UserWidth: -1, UserHeight: 640}, FixedDisplay{W: 960, H: 1280})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Init error = %v, want ErrInvalidConfig", err)
	}
	if defaultView != nil {
		t.Error("failed Init installed a default view")
	}
}
