package sway

import (
	"math"

	"github.com/phanxgames/willow"
)

// transformProc bundles up to three independent channels on one willow.Node:
// planar position, non-uniform scale, and rotation. Any subset may be active.
// A tween owns at most one; builder calls (Move, Scale, Rotate, AroundPoint)
// activate channels on the shared instance.
//
// When a pivot is set via AroundPoint, the pivot's parent-space location is
// recorded at bind time and every update translates the node so the pivot
// stays visually fixed while rotation and scale are applied. This is
// translation compensation on top of ordinary local mutation, not a
// pivot-centered transform matrix; the node's own Pivot fields are untouched.
type transformProc struct {
	node *willow.Node

	move               bool
	x0, y0, x1, y1     float64
	scale              bool
	sx0, sy0, sx1, sy1 float64
	rotate             bool
	r0, r1             float64
	pivot              bool
	pivotX, pivotY     float64 // local space
	anchorX, anchorY   float64 // parent space (world space when no parent)
	invalid            bool
}

func (p *transformProc) setMove(x0, y0, x1, y1 float64) {
	p.move = true
	p.x0, p.y0, p.x1, p.y1 = x0, y0, x1, y1
}

func (p *transformProc) setScale(sx0, sy0, sx1, sy1 float64) {
	p.scale = true
	p.sx0, p.sy0, p.sx1, p.sy1 = sx0, sy0, sx1, sy1
}

func (p *transformProc) setRotate(r0, r1 float64) {
	p.rotate = true
	p.r0, p.r1 = r0, r1
}

func (p *transformProc) setPivot(px, py float64) {
	p.pivot = true
	p.pivotX, p.pivotY = px, py
	p.anchorX, p.anchorY = transformPoint(localAffine(p.node), px, py)
}

func (p *transformProc) update(progress float64) {
	if p.invalid || p.node == nil || p.node.IsDisposed() {
		return
	}
	n := p.node
	if p.move {
		n.X = lerp(p.x0, p.x1, progress)
		n.Y = lerp(p.y0, p.y1, progress)
	}
	if p.scale {
		n.ScaleX = lerp(p.sx0, p.sx1, progress)
		n.ScaleY = lerp(p.sy0, p.sy1, progress)
	}
	if p.rotate {
		n.Rotation = lerp(p.r0, p.r1, progress)
	}
	if p.pivot {
		// Re-derive where the pivot landed and pull the node back so the
		// pivot appears fixed.
		nx, ny := transformPoint(localAffine(n), p.pivotX, p.pivotY)
		n.X += p.anchorX - nx
		n.Y += p.anchorY - ny
	}
	n.MarkDirty()
}

// reverse swaps each active channel's start/end independently. The pivot
// anchor is direction-independent and stays put.
func (p *transformProc) reverse() {
	if p.move {
		p.x0, p.x1 = p.x1, p.x0
		p.y0, p.y1 = p.y1, p.y0
	}
	if p.scale {
		p.sx0, p.sx1 = p.sx1, p.sx0
		p.sy0, p.sy1 = p.sy1, p.sy0
	}
	if p.rotate {
		p.r0, p.r1 = p.r1, p.r0
	}
}

func (p *transformProc) invalidate() {
	p.invalid = true
}

func (p *transformProc) dispose() {
	p.invalid = true
	p.node = nil
}

func (p *transformProc) propertyNames() []string {
	names := make([]string, 0, 5)
	if p.move {
		names = append(names, "X", "Y")
	}
	if p.scale {
		names = append(names, "ScaleX", "ScaleY")
	}
	if p.rotate {
		names = append(names, "Rotation")
	}
	return names
}

// --- Local affine helpers ---

// localAffine computes the node's local affine matrix [a, b, c, d, tx, ty]
// from its public transform fields, in willow's composition order:
//
//	Translate(-Pivot) -> Scale -> Skew -> Rotate -> Translate(X, Y)
func localAffine(n *willow.Node) [6]float64 {
	sx := n.ScaleX
	sy := n.ScaleY

	sin, cos := math.Sincos(n.Rotation)

	var tanSkewX, tanSkewY float64
	if n.SkewX != 0 {
		tanSkewX = math.Tan(n.SkewX)
	}
	if n.SkewY != 0 {
		tanSkewY = math.Tan(n.SkewY)
	}

	a := sx
	b := tanSkewY * sx
	c := tanSkewX * sy
	d := sy

	px := n.PivotX
	py := n.PivotY
	preTx := -px*sx - tanSkewX*py*sy
	preTy := -tanSkewY*px*sx - py*sy

	ra := cos*a - sin*b
	rb := sin*a + cos*b
	rc := cos*c - sin*d
	rd := sin*c + cos*d
	rtx := cos*preTx - sin*preTy
	rty := sin*preTx + cos*preTy

	return [6]float64{ra, rb, rc, rd, rtx + n.X, rty + n.Y}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
