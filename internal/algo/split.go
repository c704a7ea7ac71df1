package algo

import "critbit/internal/base"

// findSplit locates a split pivot for a fully populated cell: the interior
// node whose subtree size is closest to NodesPerCell/2, preferring an exact
// 4/4 split and falling back to the nearest of 3/5. Cell-root (slot 0) and
// "edge" nodes (no node-typed children at all) are never candidates — the
// spec's second Open Question decided in favor of the original reference's
// heuristic (documented in DESIGN.md). Returns the pivot node index and a
// bitmap of every node slot that must move with it.
func findSplit(cell *base.Cell) (pivot int, bitmap uint8) {
	bestPivot, bestBitmap := 0, uint8(0)
	bestDev := base.NodesPerCell

	var stack [base.NodesPerCell]int
	for i := base.NodesPerCell - 1; i >= 1; i-- {
		c0, c1 := cell.Child(i, 0), cell.Child(i, 1)
		if !base.ChildIsNode(c0) && !base.ChildIsNode(c1) {
			continue
		}

		count := 1
		var bmp uint8
		top := 0
		stack[0] = i
		for top >= 0 {
			n := stack[top]
			top--
			bmp |= 1 << uint(n)
			for side := 1; side >= 0; side-- {
				ch := cell.Child(n, side)
				if base.ChildIsNode(ch) {
					top++
					stack[top] = int(ch)
					count++
				}
			}
		}

		dev := count*2 - base.NodesPerCell
		if dev < 0 {
			dev = -dev
		}
		if dev == base.NodesPerCell%2 {
			return i, bmp
		}
		if dev < bestDev {
			bestDev = dev
			bestPivot = i
			bestBitmap = bmp
		}
	}
	return bestPivot, bestBitmap
}

// splitCell partitions a full cell's internal subtree in two along a pivot
// found by findSplit, moving the pivot and its descendants (keeping their
// slot numbers) into a freshly allocated cell that becomes cell's new
// sub-cell. Crit-bit ascending order is preserved on every root-to-leaf path
// because the moved set is always a contiguous subtree. Allocation happens
// before any mutation of cell, so a failed allocation leaves the tree
// untouched (spec's allocate-then-wire discipline).
func splitCell(cell *base.Cell, stats *base.Stats) (*base.Cell, error) {
	newCell, err := base.NewCell()
	if err != nil {
		return nil, err
	}

	pivot, bitmap := findSplit(cell)
	count := 0
	for i := 0; i < base.NodesPerCell; i++ {
		if bitmap&(1<<uint(i)) == 0 {
			continue
		}
		newCell.CopyNodeFrom(i, cell, i)
		for side := 0; side < 2; side++ {
			ch := cell.Child(i, side)
			if !base.ChildIsNode(ch) {
				idx := base.ChildIndex(ch)
				cell.MoveSlot(idx, newCell, idx, newCell)
			}
		}
		count++
		cell.FreeNode(i)
	}

	p := cell.AllocPtr()
	cell.SetSubCell(p, newCell)
	anchorNid, anchorSide := cell.NodeParent(pivot)
	cell.SetChild(anchorNid, anchorSide, base.CellEdge(p))
	cell.DecCount(count)

	newCell.SetNode(0, pivot)
	newCell.FreeNode(pivot)
	newCell.SetParent(cell)
	newCell.SetCount(count)

	if stats != nil {
		stats.CellsInUse.Add(1)
		stats.Splits.Add(1)
	}
	return newCell, nil
}
