package sway

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestReverseEaseDefaultPairs(t *testing.T) {
	pairs := []struct {
		name string
		a, b ease.TweenFunc
	}{
		{"Quad", ease.InQuad, ease.OutQuad},
		{"Cubic", ease.InCubic, ease.OutCubic},
		{"Sine", ease.InOutSine, ease.OutInSine},
		{"Bounce", ease.InBounce, ease.OutBounce},
		{"Elastic", ease.InOutElastic, ease.OutInElastic},
	}
	for _, p := range pairs {
		r, ok := ReverseEase(p.a)
		if !ok {
			t.Fatalf("%s: no reverse registered", p.name)
		}
		if easeKey(r) != easeKey(p.b) {
			t.Errorf("%s: wrong reverse for In variant", p.name)
		}
		r, ok = ReverseEase(p.b)
		if !ok {
			t.Fatalf("%s: no reverse registered for Out variant", p.name)
		}
		if easeKey(r) != easeKey(p.a) {
			t.Errorf("%s: wrong reverse for Out variant", p.name)
		}
	}
}

func TestReverseEaseUnpairedReturnsSame(t *testing.T) {
	r, ok := ReverseEase(ease.Linear)
	if ok {
		t.Fatal("Linear should have no registered pair")
	}
	if easeKey(r) != easeKey(ease.TweenFunc(ease.Linear)) {
		t.Error("unpaired curve should come back unchanged")
	}
}

func TestReverseEaseNil(t *testing.T) {
	if _, ok := ReverseEase(nil); ok {
		t.Error("nil easing should report no pair")
	}
}

func TestRegisterReversePairCustom(t *testing.T) {
	a := func(tt, b, c, d float32) float32 { return c*tt/d + b }
	b := func(tt, b, c, d float32) float32 { return c - c*tt/d + b }
	RegisterReversePair(a, b)

	r, ok := ReverseEase(a)
	if !ok {
		t.Fatal("custom pair not registered")
	}
	if easeKey(r) != easeKey(ease.TweenFunc(b)) {
		t.Error("custom pair lookup returned wrong function")
	}
}

func TestLinearMidpointIsHalf(t *testing.T) {
	got := float64(ease.Linear(500, 0, 1, 1000))
	if math.Abs(got-0.5) > 1e-6 {
		t.Errorf("Linear(500, 0, 1, 1000) = %f, want 0.5", got)
	}
}
