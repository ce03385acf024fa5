package sway

// procedure is the unit of "what is being changed" inside a tween: one named
// property, one transform bundle, one tint, or one path-follow. The set is
// closed; tweens create procedures through builder methods only.
type procedure interface {
	// update applies the interpolated value for the given eased progress.
	// No-op once invalidated or disposed.
	update(progress float64)
	// reverse swaps the cached start and end values, channel by channel.
	reverse()
	// invalidate permanently suppresses further writes without removing the
	// procedure from its owner.
	invalidate()
	// dispose releases the concrete target reference.
	dispose()
	// propertyNames returns the identifiers used for overwrite-conflict
	// matching.
	propertyNames() []string
}

// propertyProc animates a single named numeric property on an arbitrary
// target through the accessor cache.
type propertyProc struct {
	target  any
	name    string
	acc     *accessor
	start   float64
	end     float64
	invalid bool
}

// newPropertyProc binds name on target and fills in the missing endpoint from
// the target's current value: when toEnd is true, end is the supplied value
// and start is captured; otherwise start is supplied and end is captured.
// Panics when the property cannot be bound. A nil target yields an inert
// procedure instead.
func newPropertyProc(cache *accessorCache, target any, name string, value float64, toEnd bool) *propertyProc {
	if isNilTarget(target) {
		return &propertyProc{name: name, invalid: true}
	}
	acc, err := cache.bind(target, name)
	if err != nil {
		panic(err)
	}
	p := &propertyProc{target: target, name: name, acc: acc}
	if toEnd {
		p.start = acc.get(target)
		p.end = value
	} else {
		p.start = value
		p.end = acc.get(target)
	}
	// Apply immediately so the visible value does not jump before the
	// owning tween's first tick.
	p.update(0)
	return p
}

func (p *propertyProc) update(progress float64) {
	if p.invalid || p.target == nil {
		return
	}
	p.acc.set(p.target, lerp(p.start, p.end, progress))
}

func (p *propertyProc) reverse() {
	p.start, p.end = p.end, p.start
}

func (p *propertyProc) invalidate() {
	p.invalid = true
}

func (p *propertyProc) dispose() {
	p.invalid = true
	p.target = nil
	p.acc = nil
}

func (p *propertyProc) propertyNames() []string {
	return []string{p.name}
}
