package base

// Cursor identifies the outgoing edge of a specific crit-bit node that
// currently leads to a particular user object: which cell, which node slot
// within it, and which side (child index) of that node.
type Cursor struct {
	Cell *Cell
	Nid  int
	Cid  int
}
