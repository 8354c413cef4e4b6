package geom

import "github.com/davecgh/go-spew/spew"

// Dump returns a human-readable deep dump of p, for debugging a
// polygon found deep inside a recursive structure. No code in this
// module calls it.
func (p *Polygon) Dump() string {
	return spew.Sdump(p)
}
