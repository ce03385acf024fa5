package sway

import (
	"fmt"
	"os"
)

// swayDebug enables misuse checks that are too expensive or too noisy for
// release builds. Mirrors willow's debug mode: panics on disposed-object use,
// stderr warnings past sanity thresholds.
var swayDebug bool

// SetDebugMode enables or disables debug mode. When enabled, builder calls on
// disposed tweens and Add on disposed managers panic with a descriptive
// message, and a warning is printed when a manager accumulates an unusually
// large number of tweens.
func SetDebugMode(enabled bool) {
	swayDebug = enabled
}

func debugCheckTween(t *Tween, op string) {
	if !swayDebug {
		return
	}
	if t.disposed {
		panic(fmt.Sprintf("sway debug: %s on disposed tween (target %T)", op, t.target))
	}
}

func debugCheckManager(m *Manager, op string) {
	if !swayDebug {
		return
	}
	if m.disposed {
		panic(fmt.Sprintf("sway debug: %s on disposed manager", op))
	}
}

// debugMaxTweenCount is the threshold past which a manager is probably
// leaking tweens (e.g. re-adding every frame without overwrite).
const debugMaxTweenCount = 10000

func debugCheckTweenCount(m *Manager) {
	if !swayDebug {
		return
	}
	if len(m.tweens) > debugMaxTweenCount {
		_, _ = fmt.Fprintf(os.Stderr, "[sway] warning: manager holds %d tweens (threshold %d)\n",
			len(m.tweens), debugMaxTweenCount)
	}
}
