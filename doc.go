// Package letterbox provides resolution-independent rendering for 2D
// scene-graph games built on [Ebitengine].
//
// Game logic is authored against a fixed logical coordinate space (the
// "user space"), while the physical window varies in size and aspect ratio
// across devices. Letterbox computes the uniform scale and centering
// offsets that fit user space into the window, letterboxing on the looser
// axis, and redirects scene-graph insertion so every node added to a bound
// scene is scaled and offset without call sites knowing about scaling.
//
// # Quick start
//
//	view, err := letterbox.New(letterbox.Config{
//		UserWidth:  480,
//		UserHeight: 640,
//	}, letterbox.WindowDisplay{})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	stage := letterbox.NewStage()
//	binding := view.ApplyToScene(stage)
//
//	player := letterbox.NewContainer("player")
//	player.SetPosition(240, 320) // user-space coordinates
//	binding.AddChild(player)
//
// On a window resize or orientation change, call [View.Update]: the
// binding's frame node is mutated in place and everything under it follows.
//
// # Scaling policies
//
// [Config] carries optional policies applied in a fixed order after the
// base aspect-fit solve: nearest-integer-multiple snapping (pixel-perfect
// scaling, optionally abandoned when the result covers too little of the
// display), forced fractional coverage, and per-axis maximum-coverage
// clamps. See [Solve] for the exact pipeline.
//
// # Touch coordinates
//
// [View.ScaleTouchEvents] installs a dispatcher middleware that rewrites
// touch-event coordinates from window space to user space exactly once per
// delivery cycle, even though the host engine reuses and mutates event
// objects across a propagation tree. The delivery-cycle boundary is owned
// by the host's dispatch loop and injected as a [CycleSource].
//
// A package-level default view ([Init], [Update], [UserX], ...) is
// provided for games that only ever need one virtual resolution.
//
// [Ebitengine]: https://ebitengine.org
package letterbox
