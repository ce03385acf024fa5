package sway

// tweenState tracks where a tween is in its lifecycle.
type tweenState uint8

const (
	stateDelay    tweenState = iota // waiting out the initial delay
	stateStart                      // about to run its first update
	stateUpdate                     // actively interpolating
	stateComplete                   // finished; removed at the next compaction
)

// OverwritePolicy decides what happens to other tweens animating the same
// target when this tween (re)starts. Policies other than OverwriteAll fire
// once, at the tween's start transition, and then reset to OverwriteNone.
type OverwritePolicy uint8

const (
	// OverwriteNone leaves other tweens alone.
	OverwriteNone OverwritePolicy = iota

	// OverwriteAll ends every other tween of the same target on every tick,
	// including while this tween is still delaying. It is the only policy that
	// acts before the start transition, and it stays in force for the tween's
	// whole lifetime.
	OverwriteAll

	// OverwriteDefault invalidates the overlapping properties of other
	// actively-updating tweens of the same target. Tweens whose properties do
	// not overlap are untouched, as are tweens still delaying.
	OverwriteDefault

	// OverwriteConcurrent ends other actively-updating tweens of the same
	// target outright, regardless of property overlap.
	OverwriteConcurrent

	// OverwriteAllOnStart ends every other tween of the same target,
	// regardless of state or properties.
	OverwriteAllOnStart

	// OverwritePreexisting ends tweens of the same target that were added to
	// the manager before this one.
	OverwritePreexisting
)

// lerp interpolates between a and b by t. t is not clamped; easing curves
// such as ease.OutBack intentionally overshoot [0, 1].
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
