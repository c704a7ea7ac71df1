package algo

import "critbit/internal/base"

// Remove locates key and detaches it from the tree rooted at root, returning
// the (possibly new) root and whether anything was removed. mergeDown
// selects whether a cell left underpopulated by the removal may also pull a
// child sub-cell up into itself, in addition to the always-attempted push
// toward the parent — the spec's configurable first Open Question.
//
// Detach happens in one of four shapes, mirroring the reference's handling
// of node 0 (the cell root) as a special case, since it alone has no
// in-cell parent node to rewrite:
//
//   - the surviving sibling is an intra-cell node: it is promoted into slot
//     0 directly (cheapest case, no parent involvement);
//   - the surviving sibling is a user object and this cell has no parent:
//     the whole tree collapses to the canonical one-object representation;
//   - this cell has no parent and the sibling is a sub-cell: that sub-cell
//     is promoted to be the tree's new root, discarding this cell;
//   - otherwise this cell is non-root and down to its last node: the
//     sibling is pushed up into the parent's anchor slot and this cell is
//     discarded.
//
// Removing an ordinary (non-root) node instead rewrites its in-cell parent
// and falls through, along with the first case above, to an attempt at
// merging the now-lighter cell up into its parent, then optionally down
// from a child sub-cell.
func Remove(root *base.Cell, bitops base.Bitops, keyBits, nObjects int, key base.Object, mergeDown bool, stats *base.Stats) (*base.Cell, bool) {
	obj, loc := Locate(root, nObjects, bitops, keyBits, key)
	if obj == nil {
		return root, false
	}

	cell := loc.Cell
	parent := cell.Parent()
	cell.FreePtr(base.ChildIndex(cell.Child(loc.Nid, loc.Cid)))

	if loc.Nid == 0 {
		sibling := cell.Child(0, 1-loc.Cid)
		switch {
		case base.ChildIsNode(sibling):
			cell.SetNode(0, int(sibling))
			cell.FreeNode(int(sibling))

		case base.ChildIsUobj(sibling) && parent == nil:
			siblingIdx := base.ChildIndex(sibling)
			if siblingIdx != 0 {
				cell.MoveSlot(siblingIdx, cell, 0, cell)
			}
			cell.FreePtr(1)
			cell.SetChild(0, 0, base.CellUobj(0))
			cell.SetChild(0, 1, base.CellEdge(1))
			return root, true

		default:
			if parent == nil {
				newRoot := cell.SubCell(base.ChildIndex(sibling))
				if newRoot != nil {
					newRoot.SetParent(nil)
				}
				if stats != nil {
					stats.CellsInUse.Add(^uint64(0))
					stats.PushUps.Add(1)
				}
				return newRoot, true
			}

			anchorNid, anchorSide := base.FindAnchor(cell, parent)
			pSlot := base.ChildIndex(parent.Child(anchorNid, anchorSide))
			siblingIdx := base.ChildIndex(sibling)
			siblingFlags := base.ChildFlags(sibling)
			cell.MoveSlot(siblingIdx, parent, pSlot, parent)
			parent.SetChild(anchorNid, anchorSide, siblingFlags|uint8(pSlot))
			if stats != nil {
				stats.CellsInUse.Add(^uint64(0))
				stats.PushUps.Add(1)
			}
			return root, true
		}
	} else {
		nid, side := cell.NodeParent(loc.Nid)
		cell.SetChild(nid, side, cell.Child(loc.Nid, 1-loc.Cid))
		cell.FreeNode(loc.Nid)
	}

	cell.DecCount(1)

	if parent != nil && cell.Count()+parent.Count() <= base.NodesPerCell {
		anchorNid, anchorSide := base.FindAnchor(cell, parent)
		mergeUp(cell, parent, anchorNid, anchorSide, stats)
		if stats != nil {
			stats.MergeUps.Add(1)
		}
		return root, true
	}

	if mergeDown {
		for n := 0; n < base.NodesPerCell; n++ {
			if cell.NodeIsVacant(n) {
				continue
			}
			for side := 0; side < 2; side++ {
				ch := cell.Child(n, side)
				if !base.ChildIsCell(ch) {
					continue
				}
				sub := cell.SubCell(base.ChildIndex(ch))
				if cell.Count()+sub.Count() <= base.NodesPerCell {
					mergeUp(sub, cell, n, side, stats)
					if stats != nil {
						stats.MergeDowns.Add(1)
					}
					return root, true
				}
			}
		}
	}

	if stats != nil {
		stats.FailedMerges.Add(1)
	}
	return root, true
}
