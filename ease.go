package sway

import (
	"reflect"

	"github.com/tanema/gween/ease"
)

// reversePairs maps an easing function to its semantic opposite, used when a
// yoyo tween flips direction at a repeat boundary. Keys are function pointers
// (reflect.Value.Pointer), which is stable for the top-level functions in
// gween/ease. Closures work too, as long as the same value is registered and
// later set on the tween.
//
// Plain map, no lock — sway is single-threaded.
var reversePairs = map[uintptr]ease.TweenFunc{}

// RegisterReversePair declares a and b as each other's reverse curve. A yoyo
// tween easing with a will ease the return pass with b, and vice versa.
// Registering a function that already has a pair replaces the old pairing.
//
// The Penner families from gween/ease (In↔Out, InOut↔OutIn) are registered by
// default. Curves with no registered pair, such as ease.Linear, are left
// unchanged on the return pass.
func RegisterReversePair(a, b ease.TweenFunc) {
	reversePairs[easeKey(a)] = b
	reversePairs[easeKey(b)] = a
}

// ReverseEase returns the registered reverse curve for fn, or fn itself (and
// false) when no pair is registered.
func ReverseEase(fn ease.TweenFunc) (ease.TweenFunc, bool) {
	if fn == nil {
		return nil, false
	}
	if r, ok := reversePairs[easeKey(fn)]; ok {
		return r, true
	}
	return fn, false
}

func easeKey(fn ease.TweenFunc) uintptr {
	return reflect.ValueOf(fn).Pointer()
}

func init() {
	RegisterReversePair(ease.InQuad, ease.OutQuad)
	RegisterReversePair(ease.InOutQuad, ease.OutInQuad)
	RegisterReversePair(ease.InCubic, ease.OutCubic)
	RegisterReversePair(ease.InOutCubic, ease.OutInCubic)
	RegisterReversePair(ease.InQuart, ease.OutQuart)
	RegisterReversePair(ease.InOutQuart, ease.OutInQuart)
	RegisterReversePair(ease.InQuint, ease.OutQuint)
	RegisterReversePair(ease.InOutQuint, ease.OutInQuint)
	RegisterReversePair(ease.InSine, ease.OutSine)
	RegisterReversePair(ease.InOutSine, ease.OutInSine)
	RegisterReversePair(ease.InExpo, ease.OutExpo)
	RegisterReversePair(ease.InOutExpo, ease.OutInExpo)
	RegisterReversePair(ease.InCirc, ease.OutCirc)
	RegisterReversePair(ease.InOutCirc, ease.OutInCirc)
	RegisterReversePair(ease.InBack, ease.OutBack)
	RegisterReversePair(ease.InOutBack, ease.OutInBack)
	RegisterReversePair(ease.InBounce, ease.OutBounce)
	RegisterReversePair(ease.InOutBounce, ease.OutInBounce)
	RegisterReversePair(ease.InElastic, ease.OutElastic)
	RegisterReversePair(ease.InOutElastic, ease.OutInElastic)
}
