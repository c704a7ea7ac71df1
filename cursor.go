package critbit

import "critbit/internal/base"

// Cursor identifies a specific object's position in the tree, enabling
// Next/Prev stepping without a full Lookup. The zero Cursor is invalid;
// obtain one from Tree.Locate, Tree.First, or Tree.Last.
type Cursor struct {
	raw base.Cursor
}

func (c Cursor) valid() bool { return c.raw.Cell != nil }
