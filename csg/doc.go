// Package csg is the Boolean constructive-solid-geometry layer built on
// top of package bsp's four primitives: Union, Intersection, Difference,
// and SymmetricDifference, each expressed purely in terms of
// bsp.Clip, bsp.Invert, bsp.Emit, and bsp.Build — the textbook BSP-CSG
// construction this domain is named for.
//
// Every operation clones its operands first (bsp.CloneTree), so a and b
// remain independently usable after a Union/Intersection/Difference
// call — unlike the destructive bsp.Clip they're built from.
package csg
