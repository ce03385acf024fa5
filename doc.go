// Package sway is a property-tweening engine for [willow] and [Ebitengine].
//
// Sway animates named properties of arbitrary Go objects — and the transform,
// tint, and position of [willow.Node] trees — from a start value to an end
// value over a duration, with easing, delay, repeat, yoyo playback, lifecycle
// callbacks, and conflict resolution between competing tweens on the same
// target.
//
// # Quick start
//
// Create a [Manager], advance it once per frame, and build tweens fluently:
//
//	tweens := sway.NewManager()
//
//	// In your game's Update:
//	tweens.StepFrame()
//
//	// Slide a sprite to (200, 80) over 400ms, ease out, then fade it.
//	tweens.Add(hero, 400).
//		Move(200, 80).
//		Ease(ease.OutCubic).
//		OnComplete(func() {
//			tweens.Add(hero, 250).Tint(willow.Color{R: 1, G: 1, B: 1, A: 0})
//		})
//
// Easing curves come from [gween/ease]; any ease.TweenFunc works, including
// your own.
//
// # Generic properties
//
// Any exported numeric field (or Name/SetName method pair) on any target can
// be tweened by name. The get/set binding is discovered by reflection once
// per (property, type) pair and cached for the life of the process:
//
//	tweens.Add(camera, 1000).To("Zoom", 2.5)
//	tweens.Add(stats, 800).From("Health", 0) // count up from 0 to current
//
// Binding a property that does not exist, or whose type is not numeric, is a
// programmer error and panics at the builder call.
//
// # Transforms, tints, and paths
//
// Tweens whose target is a *[willow.Node] can use the bundled transform
// procedure (Move, Scale, Rotate, optionally pivoted via AroundPoint), the
// tint procedure (Tint, TintFrom), and path following (Follow) along linear,
// quadratic, or cubic Bézier paths. Writes mark the node dirty; disposed
// nodes are skipped.
//
// # Overwriting
//
// When a new tween starts on a target that other tweens are already
// animating, its [OverwritePolicy] decides what happens to them: nothing,
// invalidate overlapping properties, or end them outright. See the policy
// constants for the exact rules.
//
// Sway is single-threaded and cooperative, like willow itself: call
// [Manager.Update] (or [Manager.StepFrame]) from exactly one goroutine, once
// per frame.
//
// [willow]: https://github.com/phanxgames/willow
// [Ebitengine]: https://ebitengine.org
// [gween/ease]: https://github.com/tanema/gween
package sway
