package algo

import "critbit/internal/base"

// mergeUp folds cell's entire subtree into parent at the anchor edge
// (nid, side) — the parent slot that currently holds the CELL-tagged
// reference to cell — and frees cell. Implemented as an iterative
// post-order copy using two small stacks rather than recursion, per the
// spec's preference for implementations bounded by a small explicit stack
// over recursive cell_copy_node.
func mergeUp(cell, parent *base.Cell, anchorNid, anchorSide int, stats *base.Stats) {
	parent.FreePtr(base.ChildIndex(parent.Child(anchorNid, anchorSide)))

	// Build a full post-order traversal of cell's internal subtree into
	// fstack, working from wstack (a pre-order-ish scratch stack: each
	// node's left child is pushed before its right, so the right child pops
	// first, which yields a valid post-order when fstack is read
	// back-to-front).
	var wstack [base.NodesPerCell]int
	var fstack [base.NodesPerCell*2 - 1]int
	wtop, ftop := 0, -1
	wstack[0] = 0
	for wtop >= 0 {
		n := wstack[wtop]
		wtop--
		ftop++
		fstack[ftop] = n
		if base.ChildIsNode(uint8(n)) {
			for side := 0; side < 2; side++ {
				wtop++
				wstack[wtop] = int(cell.Child(n, side))
			}
		}
	}

	const free = -1
	for ftop >= 0 {
		n := fstack[ftop]
		if base.ChildIsNode(uint8(n)) {
			newNode := parent.AllocNode()
			parent.IncCount(1)
			parent.SetCbit(newNode, cell.Cbit(n))

			wtop := ftop + 1
			for side := 1; side >= 0; side-- {
				for fstack[wtop] == free {
					wtop++
				}
				parent.SetChild(newNode, side, uint8(fstack[wtop]))
				fstack[wtop] = free
			}
			fstack[ftop] = newNode
		} else {
			newPtr := parent.AllocPtr()
			idx := base.ChildIndex(uint8(n))
			cell.MoveSlot(idx, parent, newPtr, parent)
			fstack[ftop] = int(base.ChildFlags(uint8(n))) | newPtr
		}
		ftop--
	}

	parent.SetChild(anchorNid, anchorSide, uint8(fstack[0]))

	if stats != nil {
		stats.CellsInUse.Add(^uint64(0)) // -1
	}
}
