package bsp

// Invert flips a tree's half-space orientation in place, recursively and
// deterministically:
//
//  1. invert every polygon in Polygons
//  2. invert Divider, if present
//  3. recurse into Front, then Back
//  4. swap Front and Back
//
// After inversion the tree represents the complement half-spaces of the
// original. Inverting twice is an identity.
func Invert(node *Node) *Node {
	if node == nil {
		return nil
	}

	for i, p := range node.Polygons {
		node.Polygons[i] = p.Invert()
	}

	if node.Divider != nil {
		node.Divider = node.Divider.Invert()
	}

	Invert(node.Front)
	Invert(node.Back)

	node.Front, node.Back = node.Back, node.Front

	return node
}
