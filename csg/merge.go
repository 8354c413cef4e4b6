package csg

import "github.com/makeclean/csgtool/bsp"

// merge flattens x and y to a single polygon sequence (bsp.Emit) and
// rebuilds one tree from their concatenation (bsp.Build), reusing the
// core's build primitive rather than inventing a second tree-merge
// algorithm.
func merge(splitter bsp.Splitter, x, y *bsp.Node, opts ...bsp.Option) (*bsp.Node, error) {
	polys, err := bsp.Emit(splitter, x, false, nil, opts...)
	if err != nil {
		return nil, err
	}
	polys, err = bsp.Emit(splitter, y, false, polys, opts...)
	if err != nil {
		return nil, err
	}
	if len(polys) == 0 {
		return bsp.NewNode(), nil
	}
	return bsp.Build(splitter, nil, polys, true, opts...)
}
