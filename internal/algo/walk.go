// Package algo implements the structural algorithms that traverse and edit
// a clustered crit-bit tree: descent, ancestor climb, insertion admission
// (push-down/split) and deletion reduction (push-up/merge-up/merge-down).
// It operates entirely on internal/base's Cell records and is blind to key
// representation beyond the base.Bitops interface it is handed.
package algo

import "critbit/internal/base"

// Lookup performs a by-structure descent from root for key, following
// GetBit at every node. It does not verify the result by value — callers
// must confirm with FirstDiff before trusting the returned object. Returns
// nil and a zero cursor if root is nil. For a one-object (singleton) tree,
// the cursor is fixed at (root, 0, 0) without any bit inspection.
func Lookup(root *base.Cell, nObjects int, bitops base.Bitops, key base.Object) (base.Object, base.Cursor) {
	if root == nil {
		return nil, base.Cursor{}
	}
	if nObjects == 1 {
		return root.Object(0), base.Cursor{Cell: root, Nid: 0, Cid: 0}
	}

	cell := root
	var loc base.Cursor
	for cell != nil {
		loc.Cell = cell
		nid := 0
		for base.ChildIsNode(uint8(nid)) {
			loc.Nid = nid
			bit := bitops.GetBit(cell.Cbit(nid), key)
			loc.Cid = bit
			nid = int(cell.Child(nid, bit))
		}
		child := uint8(nid)
		if base.ChildIsUobj(child) {
			return cell.Object(base.ChildIndex(child)), loc
		}
		cell = cell.SubCell(base.ChildIndex(child))
	}
	return nil, loc
}

// Locate performs a verified lookup: it structurally descends to the
// object nearest key via Lookup, then confirms an exact match with
// FirstDiff. Returns nil and a zero cursor if the tree is empty or key is
// absent.
func Locate(root *base.Cell, nObjects int, bitops base.Bitops, keyBits int, key base.Object) (base.Object, base.Cursor) {
	obj, cur := Lookup(root, nObjects, bitops, key)
	if obj == nil {
		return nil, base.Cursor{}
	}
	if bitops.FirstDiff(keyBits, key, obj) != -1 {
		return nil, base.Cursor{}
	}
	return obj, cur
}

// RushExtreme descends from a starting cursor along child[dir] at every
// node, crossing cell boundaries, until it reaches a user object. It is the
// shared tail of First/Last/Next/Prev. The tree must hold at least two
// objects.
func RushExtreme(start *base.Cursor, dir int) base.Object {
	start.Cid = dir
	cell := start.Cell
	nid := start.Nid
	for cell != nil {
		start.Cell = cell
		for base.ChildIsNode(uint8(nid)) {
			start.Nid = nid
			nid = int(cell.Child(nid, dir))
		}
		child := uint8(nid)
		if base.ChildIsUobj(child) {
			return cell.Object(base.ChildIndex(child))
		}
		cell = cell.SubCell(base.ChildIndex(child))
		nid = 0
	}
	return nil
}

// Step advances cursor cur one position in direction dir (0 = toward
// predecessor, 1 = toward successor) and returns the object now at that
// position, or nil if cur was already at the extreme in that direction.
// nObjects < 2 means there is nowhere to step (empty, singleton).
func Step(bitops base.Bitops, nObjects int, cur *base.Cursor, dir int) base.Object {
	if cur == nil || nObjects < 2 {
		return nil
	}

	if cur.Cid == dir {
		// Hard case: ancestor climb. Remember the departing node's cbit and
		// the object we're leaving, then climb cell-by-cell via parent
		// links, doing key-guided descent within each ancestor cell but
		// only among nodes with a strictly smaller cbit.
		curCbit := cur.Cell.Cbit(cur.Nid)
		uobj := cur.Cell.Object(base.ChildIndex(cur.Cell.Child(cur.Nid, cur.Cid)))

		cell := cur.Cell
		for cell != nil {
			lower := 0
			upper := -1
			for base.ChildIsNode(uint8(lower)) {
				if cell.Cbit(lower) >= curCbit {
					break
				}
				bit := bitops.GetBit(cell.Cbit(lower), uobj)
				if bit != dir {
					upper = lower
				}
				lower = int(cell.Child(lower, bit))
			}
			if upper != -1 {
				cur.Cell = cell
				cur.Nid = upper
				return descendFrom(bitops, cur, dir)
			}
			cell = cell.Parent()
		}
		return nil
	}

	// Easy case: the sibling of the edge we're on is on the desired side.
	return descendFrom(bitops, cur, dir)
}

// descendFrom takes one step down from cur's node on side dir: if that
// child is a user object it's the answer directly; otherwise it's a pivot
// whose opposite subtree (in direction 1-dir) holds the neighbor.
func descendFrom(bitops base.Bitops, cur *base.Cursor, dir int) base.Object {
	lower := cur.Cell.Child(cur.Nid, dir)
	if base.ChildIsUobj(lower) {
		cur.Cid = dir
		return cur.Cell.Object(base.ChildIndex(lower))
	}
	if base.ChildIsCell(lower) {
		cur.Cell = cur.Cell.SubCell(base.ChildIndex(lower))
		cur.Nid = 0
	} else {
		cur.Nid = int(lower)
	}
	return RushExtreme(cur, 1-dir)
}
