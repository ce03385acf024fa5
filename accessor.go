package sway

import (
	"fmt"
	"reflect"
)

// accessorKey identifies one (property name, concrete target type) binding.
type accessorKey struct {
	name string
	typ  reflect.Type
}

// accessor is a cached get/set binding for one property on one target type.
// get widens the current value to float64; set narrows the interpolated value
// back to the property's native kind.
type accessor struct {
	get func(target any) float64
	set func(target any, v float64)
}

type accessorEntry struct {
	acc *accessor
	err error
}

// accessorCache memoizes bindings per (property, type) so repeated tweens on
// the same pair pay the reflection cost once. Failed bindings are memoized
// too: a missing member or an unsupported kind is permanent for that pair and
// never retried.
type accessorCache struct {
	entries map[accessorKey]*accessorEntry
}

// sharedAccessors is the process-wide cache used by every Manager.
// Plain map, no lock — sway is single-threaded.
var sharedAccessors = newAccessorCache()

func newAccessorCache() *accessorCache {
	return &accessorCache{entries: make(map[accessorKey]*accessorEntry)}
}

// bind returns the accessor for the property on target's concrete type,
// resolving and caching it on first use.
func (c *accessorCache) bind(target any, name string) (*accessor, error) {
	typ := reflect.TypeOf(target)
	key := accessorKey{name: name, typ: typ}
	if e, ok := c.entries[key]; ok {
		return e.acc, e.err
	}
	acc, err := resolveAccessor(typ, name)
	c.entries[key] = &accessorEntry{acc: acc, err: err}
	return acc, err
}

// resolveAccessor finds a readable and writable member named name on typ:
// an exported numeric struct field on a pointer-to-struct target, or a
// Name() / SetName(v) method pair.
func resolveAccessor(typ reflect.Type, name string) (*accessor, error) {
	if typ == nil {
		return nil, fmt.Errorf("sway: cannot bind property %q on nil target", name)
	}

	if typ.Kind() == reflect.Pointer && typ.Elem().Kind() == reflect.Struct {
		if field, ok := typ.Elem().FieldByName(name); ok && field.IsExported() {
			if !numericKind(field.Type.Kind()) {
				return nil, fmt.Errorf("sway: property %q on %s has unsupported type %s", name, typ, field.Type)
			}
			idx := field.Index
			return &accessor{
				get: func(target any) float64 {
					return readNumber(reflect.ValueOf(target).Elem().FieldByIndex(idx))
				},
				set: func(target any, v float64) {
					writeNumber(reflect.ValueOf(target).Elem().FieldByIndex(idx), v)
				},
			}, nil
		}
	}

	if acc, ok, err := resolveMethodPair(typ, name); ok {
		return acc, err
	}

	if typ.Kind() == reflect.Struct {
		if _, ok := typ.FieldByName(name); ok {
			return nil, fmt.Errorf("sway: property %q on %s is not writable; pass a pointer target", name, typ)
		}
	}
	return nil, fmt.Errorf("sway: no property %q on %s", name, typ)
}

// resolveMethodPair binds name as a getter method Name() K paired with a
// setter SetName(K). The bool reports whether a getter of the right shape was
// found at all; when false, the caller keeps looking.
func resolveMethodPair(typ reflect.Type, name string) (*accessor, bool, error) {
	getM, ok := typ.MethodByName(name)
	if !ok {
		return nil, false, nil
	}
	mt := getM.Type
	if mt.NumIn() != 1 || mt.NumOut() != 1 {
		return nil, false, nil
	}
	propType := mt.Out(0)
	if !numericKind(propType.Kind()) {
		return nil, true, fmt.Errorf("sway: property %q on %s has unsupported type %s", name, typ, propType)
	}
	setM, ok := typ.MethodByName("Set" + name)
	if !ok {
		return nil, true, fmt.Errorf("sway: property %q on %s is read-only (no Set%s method)", name, typ, name)
	}
	st := setM.Type
	if st.NumIn() != 2 || st.In(1) != propType {
		return nil, true, fmt.Errorf("sway: Set%s on %s does not accept %s", name, typ, propType)
	}
	getIdx, setIdx := getM.Index, setM.Index
	return &accessor{
		get: func(target any) float64 {
			out := reflect.ValueOf(target).Method(getIdx).Call(nil)
			return readNumber(out[0])
		},
		set: func(target any, v float64) {
			arg := reflect.New(propType).Elem()
			writeNumber(arg, v)
			reflect.ValueOf(target).Method(setIdx).Call([]reflect.Value{arg})
		},
	}, true, nil
}

// numericKind reports whether properties of kind k can be interpolated.
func numericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Float64, reflect.Float32,
		reflect.Int, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func readNumber(v reflect.Value) float64 {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float()
	case reflect.Int, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int())
	default:
		return float64(v.Uint())
	}
}

// writeNumber narrows v to the destination's kind. Integer kinds truncate
// toward zero; unsigned kinds clamp negative values to 0.
func writeNumber(dst reflect.Value, v float64) {
	switch dst.Kind() {
	case reflect.Float32, reflect.Float64:
		dst.SetFloat(v)
	case reflect.Int, reflect.Int16, reflect.Int32, reflect.Int64:
		dst.SetInt(int64(v))
	default:
		if v < 0 {
			v = 0
		}
		dst.SetUint(uint64(v))
	}
}

// isNilTarget reports whether target is nil or a typed nil pointer.
// Tweens on nil targets are created invalidated rather than panicking,
// since targets commonly die from ordinary object lifetime outside sway.
func isNilTarget(target any) bool {
	if target == nil {
		return true
	}
	v := reflect.ValueOf(target)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
