package sway

import "github.com/phanxgames/willow"

// Path is a stateless parametric curve evaluated at t ∈ [0, 1]. Easing
// curves that overshoot (ease.OutBack and friends) will evaluate paths
// slightly outside that range; the built-in paths extrapolate smoothly.
type Path interface {
	At(t float64) (x, y float64)
}

// LinePath interpolates along the straight segment From → To.
type LinePath struct {
	From, To willow.Vec2
}

func (p LinePath) At(t float64) (x, y float64) {
	return lerp(p.From.X, p.To.X, t), lerp(p.From.Y, p.To.Y, t)
}

// QuadPath is a quadratic Bézier curve with one control point.
type QuadPath struct {
	From, Control, To willow.Vec2
}

func (p QuadPath) At(t float64) (x, y float64) {
	u := 1 - t
	a := u * u
	b := 2 * u * t
	c := t * t
	return a*p.From.X + b*p.Control.X + c*p.To.X,
		a*p.From.Y + b*p.Control.Y + c*p.To.Y
}

// CubicPath is a cubic Bézier curve with two control points.
type CubicPath struct {
	From, Control1, Control2, To willow.Vec2
}

func (p CubicPath) At(t float64) (x, y float64) {
	u := 1 - t
	a := u * u * u
	b := 3 * u * u * t
	c := 3 * u * t * t
	d := t * t * t
	return a*p.From.X + b*p.Control1.X + c*p.Control2.X + d*p.To.X,
		a*p.From.Y + b*p.Control1.Y + c*p.Control2.Y + d*p.To.Y
}

// pathProc writes a node's position directly from a parametric path. Unlike
// the other procedures it holds no start/end values of its own; reversing
// only flips the evaluation direction.
type pathProc struct {
	node     *willow.Node
	path     Path
	reversed bool
	invalid  bool
}

func (p *pathProc) update(progress float64) {
	if p.invalid || p.node == nil || p.node.IsDisposed() {
		return
	}
	t := progress
	if p.reversed {
		t = 1 - t
	}
	p.node.X, p.node.Y = p.path.At(t)
	p.node.MarkDirty()
}

func (p *pathProc) reverse() {
	p.reversed = !p.reversed
}

func (p *pathProc) invalidate() {
	p.invalid = true
}

func (p *pathProc) dispose() {
	p.invalid = true
	p.node = nil
	p.path = nil
}

func (p *pathProc) propertyNames() []string {
	return []string{"X", "Y"}
}
