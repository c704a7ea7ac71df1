package algo

import "critbit/internal/base"

// insertionPoint names the unique position on the root-to-leaf path where
// the path's strictly-ascending cbit sequence first exceeds the new node's
// cbit: upper is the last node with a smaller cbit (-1 meaning "above
// root"), side is the direction from upper that leads to lower, and lower
// is the tagged child the new node displaces.
type insertionPoint struct {
	cell  *base.Cell
	upper int
	side  int
	lower uint8
}

// locateInsertionPoint walks from root following GetBit at each node, but
// only as long as the node's cbit does not exceed cbit — the new node must
// be spliced in at the first point the ascending cbit sequence would be
// violated. Crosses cell boundaries via CELL edges, restarting the same
// bounded walk inside the sub-cell.
func locateInsertionPoint(root *base.Cell, bitops base.Bitops, cbit int, obj base.Object) insertionPoint {
	cell := root
	for {
		upper, side, lower := -1, 0, 0
		restarted := false
		for !base.ChildIsUobj(uint8(lower)) {
			if cell.Cbit(lower) > cbit {
				break
			}
			upper = lower
			side = bitops.GetBit(cell.Cbit(lower), obj)
			lower = int(cell.Child(lower, side))
			if base.ChildIsCell(uint8(lower)) {
				cell = cell.SubCell(base.ChildIndex(uint8(lower)))
				restarted = true
				break
			}
		}
		if restarted {
			continue
		}
		return insertionPoint{cell: cell, upper: upper, side: side, lower: uint8(lower)}
	}
}

// installNode wires a new crit-bit node into an admitted (non-full) cell at
// insertion point ip, with crit-bit position cbit and the new object on
// side bit. If ip has no upper ancestor, the new node takes over the cell
// root slot and the previous root is relocated to a freshly allocated slot
// as the new node's other child.
func installNode(ip insertionPoint, cbit, bit int, obj base.Object) {
	cell := ip.cell
	newNode := cell.AllocNode()
	newPtr := cell.AllocPtr()
	cell.IncCount(1)
	cell.SetObject(newPtr, obj)

	lower := ip.lower
	if ip.upper == -1 {
		cell.CopyNodeFrom(newNode, cell, 0)
		lower = uint8(newNode)
		newNode = 0
	} else {
		cell.SetChild(ip.upper, ip.side, uint8(newNode))
	}
	cell.SetCbit(newNode, cbit)
	cell.SetChild(newNode, bit, base.CellUobj(newPtr))
	cell.SetChild(newNode, 1-bit, lower)
}

// Add inserts obj into the tree rooted at root (nil for an empty tree) and
// returns the (possibly new) root. ok is false, with no structural change,
// if an object with the same key already exists. Allocation for a split
// happens before any mutation of the target cell, so a failed allocation
// (err != nil) leaves the tree exactly as it was.
//
// Admission into a full cell always retries from the tree root rather than
// the C reference's cheaper restart from the already-located cell — both
// reach the same insertion point since push-down and split only ever
// restructure within the located cell's own subtree; see DESIGN.md.
func Add(root *base.Cell, bitops base.Bitops, keyBits, nObjects int, obj base.Object, stats *base.Stats) (*base.Cell, bool, error) {
	if root == nil {
		root, err := base.NewCell()
		if err != nil {
			return nil, false, err
		}
		root.SetObject(0, obj)
		root.SetChild(0, 0, base.CellUobj(0))
		root.SetChild(0, 1, base.CellEdge(1))
		if stats != nil {
			stats.CellsInUse.Add(1)
		}
		return root, true, nil
	}

	witness, witnessCur := Lookup(root, nObjects, bitops, obj)
	cbit := bitops.FirstDiff(keyBits, obj, witness)
	if cbit == -1 {
		return root, false, nil
	}
	bit := bitops.GetBit(cbit, obj)

	if nObjects == 1 {
		root.SetObject(1, obj)
		root.SetCbit(0, cbit)
		root.SetChild(0, bit, base.CellUobj(1))
		root.SetChild(0, 1-bit, base.CellUobj(0))
		return root, true, nil
	}

	shortcut := cbit > witnessCur.Cell.Cbit(witnessCur.Nid)
	first := true
	for {
		var ip insertionPoint
		if shortcut && first {
			ip = insertionPoint{
				cell:  witnessCur.Cell,
				upper: witnessCur.Nid,
				side:  witnessCur.Cid,
				lower: witnessCur.Cell.Child(witnessCur.Nid, witnessCur.Cid),
			}
		} else {
			ip = locateInsertionPoint(root, bitops, cbit, obj)
		}
		first = false

		if ip.cell.Count() < base.NodesPerCell {
			installNode(ip, cbit, bit, obj)
			return root, true, nil
		}
		if pushDown(ip.cell, stats) {
			continue
		}
		if _, err := splitCell(ip.cell, stats); err != nil {
			return root, false, err
		}
	}
}
