package sway

import "github.com/phanxgames/willow"

// tintProc animates the four channels of a willow.Color independently. It
// binds either to a live node (reading node.Color at construction and marking
// the node dirty on writes) or to a detached *willow.Color with no node,
// which is useful for pure color computation.
type tintProc struct {
	node    *willow.Node  // nil in detached mode
	color   *willow.Color // &node.Color, or the detached value
	start   willow.Color
	end     willow.Color
	invalid bool
}

// newTintProc fills in the missing endpoint from the current color: when
// toEnd is true the supplied color is the destination, otherwise it is the
// origin and the current color becomes the destination.
func newTintProc(node *willow.Node, color *willow.Color, value willow.Color, toEnd bool) *tintProc {
	p := &tintProc{node: node, color: color}
	if toEnd {
		p.start = *color
		p.end = value
	} else {
		p.start = value
		p.end = *color
	}
	p.update(0)
	return p
}

func (p *tintProc) update(progress float64) {
	if p.invalid || p.color == nil {
		return
	}
	if p.node != nil && p.node.IsDisposed() {
		return
	}
	p.color.R = lerp(p.start.R, p.end.R, progress)
	p.color.G = lerp(p.start.G, p.end.G, progress)
	p.color.B = lerp(p.start.B, p.end.B, progress)
	p.color.A = lerp(p.start.A, p.end.A, progress)
	if p.node != nil {
		p.node.MarkDirty()
	}
}

func (p *tintProc) reverse() {
	p.start, p.end = p.end, p.start
}

func (p *tintProc) invalidate() {
	p.invalid = true
}

func (p *tintProc) dispose() {
	p.invalid = true
	p.node = nil
	p.color = nil
}

func (p *tintProc) propertyNames() []string {
	return []string{"Color"}
}
