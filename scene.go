package letterbox

// Scene is the binder's view of a host scene: anything owning a root
// container node. Implementations must be comparable (pointer receivers
// are), since a View keys bindings by scene identity.
type Scene interface {
	Root() *Node
}

// Stage is the trivial Scene shipped with the package. Host engines with
// their own scene type only need to satisfy the Scene interface.
type Stage struct {
	root *Node
}

// NewStage creates a stage with a pre-created root container.
func NewStage() *Stage {
	return &Stage{root: NewContainer("root")}
}

// Root returns the stage's root container node.
func (s *Stage) Root() *Node {
	return s.root
}

// Binding connects one scene to a View. It owns the scene's frame node (the
// transform node carrying the computed offset and scale) and is the scene's
// redirected insertion entry point: AddChild parents content under the
// frame node so it is scaled and offset automatically, AddChildUnscaled is
// the preserved original path straight onto the scene root.
//
// The frame node is created once per scene and mutated in place afterward;
// recreating it would orphan its children.
type Binding struct {
	view  *View
	scene Scene
	frame *Node

	glide *glideAnim // active smooth re-layout, nil when idle
}

// ApplyToScene binds scene to this view. The first call creates the frame
// node with the current Solution's offset and scale and inserts it through
// the scene's unscaled path. Calling again for the same scene is idempotent:
// it only re-syncs the existing frame node to the current Solution and
// returns the same Binding, never a second frame node or a double-wrapped
// insertion path.
func (v *View) ApplyToScene(scene Scene) *Binding {
	if scene == nil {
		panic("letterbox: cannot bind nil scene")
	}
	if b, ok := v.bindings[scene]; ok {
		b.sync()
		return b
	}
	frame := NewContainer("letterbox-frame")
	frame.SetPosition(v.sol.XOffset, v.sol.YOffset)
	frame.SetScale(v.sol.Scale, v.sol.Scale)
	scene.Root().AddChild(frame)
	b := &Binding{view: v, scene: scene, frame: frame}
	v.bindings[scene] = b
	return b
}

// ReleaseScene unbinds scene, restoring direct insertion and removing the
// frame node. With keepChildren, the frame node's children are first
// reparented onto the scene root with their world-space position, scale,
// and rotation preserved (removing the scale transform without compensating
// would visually snap them). Without keepChildren the children are disposed
// along with the frame node.
//
// Returns ErrNoBinding when scene is not bound to this view.
func (v *View) ReleaseScene(scene Scene, keepChildren bool) error {
	b, ok := v.bindings[scene]
	if !ok {
		return ErrNoBinding
	}
	if keepChildren {
		b.reparentChildren()
	}
	b.frame.Dispose()
	b.glide = nil
	delete(v.bindings, scene)
	return nil
}

// Bound reports whether scene is currently bound to this view.
func (v *View) Bound(scene Scene) bool {
	_, ok := v.bindings[scene]
	return ok
}

// AddChild inserts child into the scene's scaled space (under the frame
// node). This is the redirected insertion entry point: user-space
// coordinates on child come out scaled and letterboxed on screen.
func (b *Binding) AddChild(child *Node) {
	b.frame.AddChild(child)
}

// AddChildUnscaled inserts child directly onto the scene root, bypassing
// the frame node — the preserved original insertion path, for content
// positioned in raw window space (e.g. letterbox bars or debug overlays).
func (b *Binding) AddChildUnscaled(child *Node) {
	b.scene.Root().AddChild(child)
}

// Frame returns the binding's frame node.
func (b *Binding) Frame() *Node {
	return b.frame
}

// Scene returns the bound scene.
func (b *Binding) Scene() Scene {
	return b.scene
}

// sync snaps the frame node to the view's current Solution, cancelling any
// active glide.
func (b *Binding) sync() {
	b.glide = nil
	sol := b.view.sol
	b.frame.SetPosition(sol.XOffset, sol.YOffset)
	b.frame.SetScale(sol.Scale, sol.Scale)
}

// reparentChildren moves every child of the frame node onto the scene root,
// folding the frame's offset and scale into each child's local transform so
// world-space placement is unchanged. The frame node never rotates, so the
// fold is exact: position maps through the frame's transform, scale
// multiplies through.
func (b *Binding) reparentChildren() {
	root := b.scene.Root()
	fx, fy := b.frame.X, b.frame.Y
	fsx, fsy := b.frame.ScaleX, b.frame.ScaleY

	// AddChild mutates frame.children; iterate over a snapshot.
	children := append([]*Node(nil), b.frame.Children()...)
	for _, child := range children {
		child.X = fx + fsx*child.X
		child.Y = fy + fsy*child.Y
		child.ScaleX *= fsx
		child.ScaleY *= fsy
		child.MarkDirty()
		root.AddChild(child)
	}
}
