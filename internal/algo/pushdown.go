package algo

import "critbit/internal/base"

// pushDown scans a full cell for an edge node — a node with one CELL-tagged
// child and a sibling that is not an intra-cell node — whose referenced
// sub-cell has at least one free node slot, and relocates that node into
// the sub-cell's root. This is always tried before split because it is
// cheaper (no allocation) and keeps crit-bit ordering automatically: the
// pushed-down node's cbit was smaller than the sub-cell root's cbit (it was
// the edge toward that sub-cell), so it belongs above the sub-cell's
// current root on every affected path. Returns true if a push-down
// happened.
func pushDown(cell *base.Cell, stats *base.Stats) bool {
	for n := 1; n < base.NodesPerCell; n++ {
		if cell.NodeIsVacant(n) {
			continue
		}
		for side := 0; side < 2; side++ {
			child := cell.Child(n, side)
			other := cell.Child(n, 1-side)
			if !base.ChildIsCell(child) || base.ChildIsNode(other) {
				continue
			}
			sub := cell.SubCell(base.ChildIndex(child))
			if sub.Count() >= base.NodesPerCell {
				continue
			}

			oldRoot := sub.AllocNode()
			newPtr := sub.AllocPtr()
			sub.IncCount(1)

			parentNid, parentSide := cell.NodeParent(n)
			cell.SetChild(parentNid, parentSide, child)

			sub.SetNode(oldRoot, 0)
			cell.MoveSlot(base.ChildIndex(other), sub, newPtr, sub)
			sub.SetCbit(0, cell.Cbit(n))
			sub.SetChild(0, side, uint8(oldRoot))
			sub.SetChild(0, 1-side, base.ChildFlags(other)|uint8(newPtr))

			cell.FreeNode(n)
			cell.DecCount(1)

			if stats != nil {
				stats.PushDowns.Add(1)
			}
			return true
		}
	}
	return false
}
