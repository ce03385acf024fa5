package sway

import "github.com/hajimehoshi/ebiten/v2"

// compactInterval is the accumulated time (seconds) between sweeps that
// remove finished tweens from a manager's list.
const compactInterval = 2.0

// Manager owns the live tweens for one animation scope and drives them once
// per frame. Tweens update in insertion order. Finished tweens stay in the
// list until the next compaction pass so the update loop never mutates the
// slice mid-iteration.
//
// Create as many managers as needed, or use [Default] for a process-wide one.
type Manager struct {
	tweens    []*Tween
	accessors *accessorCache
	speed     float64
	paused    bool
	disposed  bool

	sinceCompact float64
	nextOrder    uint64
}

// NewManager creates an empty manager with speed 1.
func NewManager() *Manager {
	return &Manager{accessors: sharedAccessors, speed: 1}
}

// defaultManager is created lazily. Plain global, no lock — sway is
// single-threaded.
var defaultManager *Manager

// Default returns the process-wide manager, creating it on first use. The
// caller is still responsible for driving it via Update or StepFrame.
func Default() *Manager {
	if defaultManager == nil || defaultManager.disposed {
		defaultManager = NewManager()
	}
	return defaultManager
}

// Add creates a wall-time tween on target lasting duration milliseconds and
// appends it to the manager. Targets are compared by interface equality for
// overwrite resolution, so they should be pointers.
func (m *Manager) Add(target any, duration float64) *Tween {
	return m.add(target, duration, false)
}

// AddFrames creates a frame-unit tween on target lasting duration ticks: it
// advances by exactly 1 per manager update, unaffected by the speed
// multiplier.
func (m *Manager) AddFrames(target any, duration float64) *Tween {
	return m.add(target, duration, true)
}

func (m *Manager) add(target any, duration float64, useFrames bool) *Tween {
	debugCheckManager(m, "Add")
	tw := newTween(m, target, duration, useFrames)
	tw.order = m.nextOrder
	m.nextOrder++
	m.tweens = append(m.tweens, tw)
	debugCheckTweenCount(m)
	return tw
}

// Update advances every live tween by dt seconds of wall time, scaled by the
// manager's speed multiplier. Callbacks may add tweens (picked up this same
// pass) or dispose the manager (iteration aborts immediately).
func (m *Manager) Update(dt float64) {
	if m.disposed || m.paused {
		return
	}
	scaled := dt * 1000 * m.speed // tween time is in milliseconds
	for i := 0; i < len(m.tweens); i++ {
		tw := m.tweens[i]
		if tw.state == stateComplete {
			continue
		}
		if tw.useFrames {
			tw.step(1)
		} else {
			tw.step(scaled)
		}
		// A callback may have disposed this manager out from under us.
		if m.disposed {
			return
		}
	}

	m.sinceCompact += dt
	if m.sinceCompact >= compactInterval {
		m.sinceCompact = 0
		m.compact()
	}
}

// StepFrame advances the manager by one frame of wall time derived from
// Ebitengine's current ticks-per-second. Call from your game's Update.
func (m *Manager) StepFrame() {
	m.Update(1.0 / float64(ebiten.TPS()))
}

// compact removes finished tweens, sweeping from the tail so index shifts
// never skip an entry. Runs only between update passes.
func (m *Manager) compact() {
	for i := len(m.tweens) - 1; i >= 0; i-- {
		tw := m.tweens[i]
		if tw.state != stateComplete {
			continue
		}
		copy(m.tweens[i:], m.tweens[i+1:])
		m.tweens[len(m.tweens)-1] = nil
		m.tweens = m.tweens[:len(m.tweens)-1]
		tw.Dispose()
	}
}

// SetSpeed sets the wall-time speed multiplier. Non-positive values are
// coerced to 1.
func (m *Manager) SetSpeed(speed float64) {
	if speed <= 0 {
		speed = 1
	}
	m.speed = speed
}

// Speed returns the wall-time speed multiplier.
func (m *Manager) Speed() float64 { return m.speed }

// Pause freezes the whole manager; Update becomes a no-op until Unpause.
func (m *Manager) Pause() { m.paused = true }

// Unpause resumes a paused manager.
func (m *Manager) Unpause() { m.paused = false }

// IsPaused reports whether the manager is paused.
func (m *Manager) IsPaused() bool { return m.paused }

// Count returns the number of tweens that have not yet finished.
func (m *Manager) Count() int {
	count := 0
	for _, tw := range m.tweens {
		if tw.state != stateComplete {
			count++
		}
	}
	return count
}

// KillTweensOf ends every live tween of the given target. snapToEnd applies
// final values first; fireComplete runs completion callbacks.
func (m *Manager) KillTweensOf(target any, snapToEnd, fireComplete bool) {
	for _, tw := range m.tweens {
		if tw.target == target && tw.state != stateComplete {
			tw.End(snapToEnd, fireComplete)
		}
	}
}

// KillAllTweens ends every live tween in the manager. snapToEnd applies final
// values first; fireComplete runs completion callbacks.
func (m *Manager) KillAllTweens(snapToEnd, fireComplete bool) {
	for _, tw := range m.tweens {
		if tw.state != stateComplete {
			tw.End(snapToEnd, fireComplete)
		}
	}
}

// Dispose disposes every live tween and detaches the manager from updates.
// Safe to call from a tween callback; the active update pass aborts.
func (m *Manager) Dispose() {
	if m.disposed {
		return
	}
	m.disposed = true
	for _, tw := range m.tweens {
		tw.Dispose()
	}
	m.tweens = nil
}

// IsDisposed reports whether the manager has been disposed.
func (m *Manager) IsDisposed() bool { return m.disposed }

// --- Overwrite resolution ---

// endOthers ends every other tween sharing t's target. With activeOnly, only
// tweens already in their update phase are ended. No snap, no callbacks.
func (m *Manager) endOthers(t *Tween, activeOnly bool) {
	for _, other := range m.tweens {
		if other == t || other.target != t.target || other.state == stateComplete {
			continue
		}
		if activeOnly && other.state != stateUpdate {
			continue
		}
		other.End(false, false)
	}
}

// resolveOverwrite applies t's declared one-shot policy at its start
// transition, then resets the policy so it cannot fire again. OverwriteAll is
// handled per-tick in Tween.step and is left in force.
func (m *Manager) resolveOverwrite(t *Tween) {
	switch t.overwrite {
	case OverwriteNone, OverwriteAll:
		return
	case OverwriteDefault:
		props := t.propertySet()
		for _, other := range m.tweens {
			if other == t || other.target != t.target || other.state != stateUpdate {
				continue
			}
			other.invalidateMatching(props)
		}
	case OverwriteConcurrent:
		m.endOthers(t, true)
	case OverwriteAllOnStart:
		m.endOthers(t, false)
	case OverwritePreexisting:
		for _, other := range m.tweens {
			if other == t || other.target != t.target || other.state == stateComplete {
				continue
			}
			if other.order < t.order {
				other.End(false, false)
			}
		}
	}
	t.overwrite = OverwriteNone
}
