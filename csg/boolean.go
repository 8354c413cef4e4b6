package csg

import "github.com/makeclean/csgtool/bsp"

// Union returns a solid representing a ∪ b. a and b are cloned first
// and left untouched.
func Union(splitter bsp.Splitter, a, b *Solid, opts ...bsp.Option) (*Solid, error) {
	ta := cloneSolid(a)
	tb := cloneSolid(b)

	var err error
	ta, err = bsp.Clip(splitter, ta, tb, opts...)
	if err != nil {
		return nil, err
	}
	tb, err = bsp.Clip(splitter, tb, ta, opts...)
	if err != nil {
		return nil, err
	}
	tb = bsp.Invert(tb)
	tb, err = bsp.Clip(splitter, tb, ta, opts...)
	if err != nil {
		return nil, err
	}
	tb = bsp.Invert(tb)

	merged, err := merge(splitter, ta, tb, opts...)
	if err != nil {
		return nil, err
	}
	return &Solid{tree: merged}, nil
}

// Intersection returns a solid representing a ∩ b. a and b are cloned
// first and left untouched.
func Intersection(splitter bsp.Splitter, a, b *Solid, opts ...bsp.Option) (*Solid, error) {
	ta := cloneSolid(a)
	tb := cloneSolid(b)

	ta = bsp.Invert(ta)
	var err error
	tb, err = bsp.Clip(splitter, tb, ta, opts...)
	if err != nil {
		return nil, err
	}
	tb = bsp.Invert(tb)
	ta, err = bsp.Clip(splitter, ta, tb, opts...)
	if err != nil {
		return nil, err
	}
	tb, err = bsp.Clip(splitter, tb, ta, opts...)
	if err != nil {
		return nil, err
	}

	merged, err := merge(splitter, ta, tb, opts...)
	if err != nil {
		return nil, err
	}
	merged = bsp.Invert(merged)
	return &Solid{tree: merged}, nil
}

// Difference returns a solid representing a − b. a and b are cloned
// first and left untouched.
func Difference(splitter bsp.Splitter, a, b *Solid, opts ...bsp.Option) (*Solid, error) {
	ta := cloneSolid(a)
	tb := cloneSolid(b)

	ta = bsp.Invert(ta)
	var err error
	ta, err = bsp.Clip(splitter, ta, tb, opts...)
	if err != nil {
		return nil, err
	}
	tb, err = bsp.Clip(splitter, tb, ta, opts...)
	if err != nil {
		return nil, err
	}
	tb = bsp.Invert(tb)
	tb, err = bsp.Clip(splitter, tb, ta, opts...)
	if err != nil {
		return nil, err
	}
	tb = bsp.Invert(tb)

	merged, err := merge(splitter, ta, tb, opts...)
	if err != nil {
		return nil, err
	}
	merged = bsp.Invert(merged)
	return &Solid{tree: merged}, nil
}

// SymmetricDifference returns a solid representing (a − b) ∪ (b − a).
func SymmetricDifference(splitter bsp.Splitter, a, b *Solid, opts ...bsp.Option) (*Solid, error) {
	ab, err := Difference(splitter, a, b, opts...)
	if err != nil {
		return nil, err
	}
	ba, err := Difference(splitter, b, a, opts...)
	if err != nil {
		return nil, err
	}
	return Union(splitter, ab, ba, opts...)
}
