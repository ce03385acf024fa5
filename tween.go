package sway

import (
	"fmt"

	"github.com/phanxgames/willow"
	"github.com/tanema/gween/ease"
)

// RepeatForever makes a tween repeat until it is ended explicitly.
const RepeatForever = -1

// Tween is one animation instance: a target, an ordered set of procedures,
// timing and lifecycle state. Create tweens with [Manager.Add] or
// [Manager.AddFrames] and configure them fluently; every builder method
// returns the tween.
//
// Wall-time tweens measure duration and delay in milliseconds. Frame tweens
// advance by exactly one unit per manager update, regardless of the manager's
// speed multiplier. Duration is fixed at creation.
type Tween struct {
	manager *Manager
	target  any
	order   uint64 // manager insertion order, for OverwritePreexisting

	duration  float64
	elapsed   float64
	delay     float64
	repeat    int // -1 = forever, 0 = none, N = N more passes
	yoyo      bool
	paused    bool
	useFrames bool
	state     tweenState
	disposed  bool

	easing    ease.TweenFunc
	overwrite OverwritePolicy

	procs     []procedure
	transform *transformProc // shared by Move/Scale/Rotate/AroundPoint

	onStart    func()
	onUpdate   func()
	onRepeat   func()
	onComplete func()
}

func newTween(m *Manager, target any, duration float64, useFrames bool) *Tween {
	return &Tween{
		manager:   m,
		target:    target,
		duration:  duration,
		useFrames: useFrames,
		state:     stateStart,
		easing:    ease.Linear,
	}
}

// --- Procedure builders ---

// To animates the named numeric property from its current value to end.
// Panics if the property cannot be bound on the target's type.
func (t *Tween) To(property string, end float64) *Tween {
	debugCheckTween(t, "To")
	t.procs = append(t.procs, newPropertyProc(t.cache(), t.target, property, end, true))
	return t
}

// From animates the named numeric property from start to its current value.
// The start value is applied immediately. Panics if the property cannot be
// bound on the target's type.
func (t *Tween) From(property string, start float64) *Tween {
	debugCheckTween(t, "From")
	t.procs = append(t.procs, newPropertyProc(t.cache(), t.target, property, start, false))
	return t
}

// Move animates the node's position from its current value to (toX, toY).
func (t *Tween) Move(toX, toY float64) *Tween {
	n := t.spatialNode("Move")
	p := t.transformBundle()
	p.setMove(n.X, n.Y, toX, toY)
	p.update(0)
	return t
}

// MoveFrom animates the node's position from (fromX, fromY) to its current
// value. The start position is applied immediately.
func (t *Tween) MoveFrom(fromX, fromY float64) *Tween {
	n := t.spatialNode("MoveFrom")
	p := t.transformBundle()
	p.setMove(fromX, fromY, n.X, n.Y)
	p.update(0)
	return t
}

// Scale animates the node's non-uniform scale to (toX, toY).
func (t *Tween) Scale(toX, toY float64) *Tween {
	n := t.spatialNode("Scale")
	p := t.transformBundle()
	p.setScale(n.ScaleX, n.ScaleY, toX, toY)
	p.update(0)
	return t
}

// ScaleFrom animates the node's non-uniform scale from (fromX, fromY) to its
// current value.
func (t *Tween) ScaleFrom(fromX, fromY float64) *Tween {
	n := t.spatialNode("ScaleFrom")
	p := t.transformBundle()
	p.setScale(fromX, fromY, n.ScaleX, n.ScaleY)
	p.update(0)
	return t
}

// Rotate animates the node's rotation (radians) to the given value.
func (t *Tween) Rotate(to float64) *Tween {
	n := t.spatialNode("Rotate")
	p := t.transformBundle()
	p.setRotate(n.Rotation, to)
	p.update(0)
	return t
}

// RotateFrom animates the node's rotation from the given value (radians) to
// its current value.
func (t *Tween) RotateFrom(from float64) *Tween {
	n := t.spatialNode("RotateFrom")
	p := t.transformBundle()
	p.setRotate(from, n.Rotation)
	p.update(0)
	return t
}

// AroundPoint pins the local point (px, py) in place while this tween's
// Rotate/Scale channels run: each update translates the node to compensate
// for where the point would otherwise drift.
func (t *Tween) AroundPoint(px, py float64) *Tween {
	t.spatialNode("AroundPoint")
	t.transformBundle().setPivot(px, py)
	return t
}

// Tint animates the target's color to the given value. The target must be a
// *willow.Node or, for detached color computation, a *willow.Color.
func (t *Tween) Tint(to willow.Color) *Tween {
	debugCheckTween(t, "Tint")
	t.procs = append(t.procs, t.newTint("Tint", to, true))
	return t
}

// TintFrom animates the target's color from the given value to its current
// value. The start color is applied immediately.
func (t *Tween) TintFrom(from willow.Color) *Tween {
	debugCheckTween(t, "TintFrom")
	t.procs = append(t.procs, t.newTint("TintFrom", from, false))
	return t
}

func (t *Tween) newTint(op string, value willow.Color, toEnd bool) *tintProc {
	switch target := t.target.(type) {
	case *willow.Node:
		return newTintProc(target, &target.Color, value, toEnd)
	case *willow.Color:
		return newTintProc(nil, target, value, toEnd)
	default:
		panic(fmt.Sprintf("sway: %s requires a *willow.Node or *willow.Color target, got %T", op, t.target))
	}
}

// Follow moves the node along the parametric path as the tween progresses.
// The node snaps to the path's start immediately.
func (t *Tween) Follow(path Path) *Tween {
	n := t.spatialNode("Follow")
	p := &pathProc{node: n, path: path}
	p.update(0)
	t.procs = append(t.procs, p)
	return t
}

// transformBundle returns the tween's single transform bundle, creating it
// on first use.
func (t *Tween) transformBundle() *transformProc {
	if t.transform == nil {
		t.transform = &transformProc{node: t.target.(*willow.Node)}
		t.procs = append(t.procs, t.transform)
	}
	return t.transform
}

// spatialNode asserts that the target is a live *willow.Node. Transform-only
// builder operations have nothing to derive a node from otherwise, which is a
// programmer error.
func (t *Tween) spatialNode(op string) *willow.Node {
	debugCheckTween(t, op)
	n, ok := t.target.(*willow.Node)
	if !ok || n == nil {
		panic(fmt.Sprintf("sway: %s requires a *willow.Node target, got %T", op, t.target))
	}
	return n
}

// --- Configuration builders ---

// Delay postpones the tween's start by the given amount (milliseconds for
// wall-time tweens, ticks for frame tweens). Only meaningful before the
// tween's first update.
func (t *Tween) Delay(amount float64) *Tween {
	if amount > 0 && t.state == stateStart {
		t.delay = amount
		t.state = stateDelay
	}
	return t
}

// Ease sets the easing curve. The default is ease.Linear.
func (t *Tween) Ease(fn ease.TweenFunc) *Tween {
	if fn != nil {
		t.easing = fn
	}
	return t
}

// Repeat makes the tween run count extra passes after the first
// (RepeatForever to repeat until ended).
func (t *Tween) Repeat(count int) *Tween {
	t.repeat = count
	return t
}

// Yoyo reverses every procedure's direction at each repeat boundary instead
// of restarting from the beginning. The easing curve is swapped for its
// registered reverse pair; curves without a pair are kept as-is.
func (t *Tween) Yoyo(yoyo bool) *Tween {
	t.yoyo = yoyo
	return t
}

// Overwrite sets the conflict policy applied against other tweens of the same
// target. See the OverwritePolicy constants.
func (t *Tween) Overwrite(policy OverwritePolicy) *Tween {
	t.overwrite = policy
	return t
}

// OnStart sets the callback invoked once, when the tween leaves its delay and
// runs its first update.
func (t *Tween) OnStart(fn func()) *Tween { t.onStart = fn; return t }

// OnUpdate sets the callback invoked after every tick's values are applied.
func (t *Tween) OnUpdate(fn func()) *Tween { t.onUpdate = fn; return t }

// OnRepeat sets the callback invoked at each repeat boundary.
func (t *Tween) OnRepeat(fn func()) *Tween { t.onRepeat = fn; return t }

// OnComplete sets the callback invoked when the tween completes. Not invoked
// when the tween is ended with fireComplete=false or overwritten.
func (t *Tween) OnComplete(fn func()) *Tween { t.onComplete = fn; return t }

// --- Playback control ---

// Pause freezes the tween; Update becomes a no-op until Unpause.
func (t *Tween) Pause() { t.paused = true }

// Unpause resumes a paused tween.
func (t *Tween) Unpause() { t.paused = false }

// IsPaused reports whether the tween is paused.
func (t *Tween) IsPaused() bool { return t.paused }

// IsComplete reports whether the tween has finished (or been ended).
func (t *Tween) IsComplete() bool { return t.state == stateComplete }

// Target returns the tween's target, or nil after disposal.
func (t *Tween) Target() any { return t.target }

// Duration returns the tween's fixed duration.
func (t *Tween) Duration() float64 { return t.duration }

// Elapsed returns the time accumulated in the current pass.
func (t *Tween) Elapsed() float64 { return t.elapsed }

// Progress returns the current eased progress in [0, 1] (easing overshoot
// aside). Zero before the first update.
func (t *Tween) Progress() float64 {
	if t.state == stateDelay {
		return 0
	}
	return t.progressAt(t.elapsed)
}

// End forces the tween to complete immediately. When snapToEnd is true,
// elapsed is snapped to the duration and values are applied one last time so
// every procedure lands exactly on its end value. fireComplete controls
// whether the completion callback runs.
func (t *Tween) End(snapToEnd, fireComplete bool) {
	if t.state == stateComplete {
		return
	}
	if snapToEnd {
		t.elapsed = t.duration
		t.repeat = 0
		t.apply()
	}
	t.state = stateComplete
	if fireComplete && t.onComplete != nil {
		t.onComplete()
	}
}

// Dispose ends the tween without firing callbacks, releases the target, and
// disposes every owned procedure. Safe to call more than once.
func (t *Tween) Dispose() {
	if t.disposed {
		return
	}
	t.disposed = true
	t.state = stateComplete
	t.onStart = nil
	t.onUpdate = nil
	t.onRepeat = nil
	t.onComplete = nil
	for _, p := range t.procs {
		p.dispose()
	}
	t.procs = nil
	t.transform = nil
	t.target = nil
	t.manager = nil
}

// IsDisposed reports whether the tween has been disposed.
func (t *Tween) IsDisposed() bool { return t.disposed }

// --- State machine ---

// step advances the tween by dt (already speed-scaled; a fixed 1 for frame
// tweens). Called by the owning manager once per frame.
func (t *Tween) step(dt float64) {
	if t.paused || t.state == stateComplete {
		return
	}

	// OverwriteAll is the only policy that acts before the start transition,
	// and it acts on every tick.
	if t.overwrite == OverwriteAll && t.manager != nil {
		t.manager.endOthers(t, false)
	}

	t.elapsed += dt

	if t.state == stateDelay {
		if t.elapsed < t.delay {
			return
		}
		t.delay = 0
		t.elapsed = 0
		t.state = stateStart
	}

	if t.state == stateStart {
		if t.manager != nil {
			t.manager.resolveOverwrite(t)
		}
		if t.onStart != nil {
			t.onStart()
		}
		t.state = stateUpdate
	}

	t.apply()
	if t.onUpdate != nil {
		t.onUpdate()
	}

	if t.elapsed >= t.duration {
		if t.repeat != 0 {
			t.elapsed = 0
			if t.repeat > 0 {
				t.repeat--
			}
			if t.onRepeat != nil {
				t.onRepeat()
			}
			if t.yoyo {
				for _, p := range t.procs {
					p.reverse()
				}
				if rev, ok := ReverseEase(t.easing); ok {
					t.easing = rev
				}
			}
		} else {
			t.state = stateComplete
			if t.onComplete != nil {
				t.onComplete()
			}
		}
	}
}

// apply computes eased progress from the clamped elapsed time and forwards it
// to every procedure.
func (t *Tween) apply() {
	p := t.progressAt(t.elapsed)
	for _, proc := range t.procs {
		proc.update(p)
	}
}

func (t *Tween) progressAt(elapsed float64) float64 {
	if t.duration <= 0 {
		return 1
	}
	if elapsed > t.duration {
		elapsed = t.duration
	}
	return float64(t.easing(float32(elapsed), 0, 1, float32(t.duration)))
}

// --- Overwrite support ---

// propertySet collects the property identifiers of every live procedure.
func (t *Tween) propertySet() map[string]bool {
	set := make(map[string]bool, len(t.procs))
	for _, p := range t.procs {
		for _, name := range p.propertyNames() {
			set[name] = true
		}
	}
	return set
}

// invalidateMatching invalidates procedures whose property identifiers
// overlap the given set. Procedures with disjoint properties keep running.
func (t *Tween) invalidateMatching(props map[string]bool) {
	for _, p := range t.procs {
		for _, name := range p.propertyNames() {
			if props[name] {
				p.invalidate()
				break
			}
		}
	}
}

func (t *Tween) cache() *accessorCache {
	if t.manager != nil {
		return t.manager.accessors
	}
	return sharedAccessors
}
