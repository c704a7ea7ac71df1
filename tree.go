package critbit

import (
	"critbit/internal/algo"
	"critbit/internal/base"
)

// Object is a user-supplied handle indexed by the tree, re-exported from
// internal/base for convenience.
type Object = base.Object

// Tree is a clustered crit-bit index over objects of one key kind. The zero
// Tree is not valid; construct one with New or one of its convenience
// wrappers (NewBits, NewString, NewUint32, NewInt32, NewUint64, NewInt64,
// NewCustom).
type Tree struct {
	root    *base.Cell
	bitops  base.Bitops
	kind    KeyKind
	keyBits int
	count   int
	opts    TreeOptions
	stats   *base.Stats
}

// New constructs an empty tree of the given kind, comparing keyBits bits of
// each object's key via bitops. Most callers want one of the typed
// convenience constructors below instead.
func New(kind KeyKind, keyBits int, bitops base.Bitops, opts ...TreeOption) *Tree {
	o := DefaultTreeOptions()
	for _, opt := range opts {
		opt(&o)
	}
	t := &Tree{kind: kind, keyBits: keyBits, bitops: bitops, opts: o}
	if o.stats {
		t.stats = &base.Stats{}
	}
	return t
}

// NewBits builds a tree over objects implementing BitsKey, comparing
// exactly nbits bits of each key.
//
//goland:noinspection GoUnusedExportedFunction
func NewBits(nbits int, opts ...TreeOption) *Tree {
	return New(KindBits, nbits, BitsBitops(nbits), opts...)
}

// NewString builds a tree over objects implementing StringKey.
//
//goland:noinspection GoUnusedExportedFunction
func NewString(opts ...TreeOption) *Tree {
	return New(KindString, base.CbitMax+1, StringBitops(), opts...)
}

// NewUint32 builds a tree over objects implementing Uint32Key.
//
//goland:noinspection GoUnusedExportedFunction
func NewUint32(opts ...TreeOption) *Tree {
	return New(KindUint32, 32, Uint32Bitops(), opts...)
}

// NewInt32 builds a tree over objects implementing Int32Key.
//
//goland:noinspection GoUnusedExportedFunction
func NewInt32(opts ...TreeOption) *Tree {
	return New(KindInt32, 32, Int32Bitops(), opts...)
}

// NewUint64 builds a tree over objects implementing Uint64Key.
//
//goland:noinspection GoUnusedExportedFunction
func NewUint64(opts ...TreeOption) *Tree {
	return New(KindUint64, 64, Uint64Bitops(), opts...)
}

// NewInt64 builds a tree over objects implementing Int64Key.
//
//goland:noinspection GoUnusedExportedFunction
func NewInt64(opts ...TreeOption) *Tree {
	return New(KindInt64, 64, Int64Bitops(), opts...)
}

// NewCustom builds a tree using a caller-supplied Bitops, for key
// representations none of the built-ins cover. keyBits bounds every
// FirstDiff comparison, exactly as for the built-in kinds.
//
//goland:noinspection GoUnusedExportedFunction
func NewCustom(bitops base.Bitops, keyBits int, opts ...TreeOption) *Tree {
	return New(KindCustom, keyBits, bitops, opts...)
}

// Count returns the number of objects currently indexed.
func (t *Tree) Count() int {
	if t == nil {
		return 0
	}
	return t.count
}

// Stats returns the tree's operation counters, or nil if WithStats(true)
// was not passed at construction.
func (t *Tree) Stats() *base.Stats {
	if t == nil {
		return nil
	}
	return t.stats
}

// kindMatches reports whether obj implements the key interface required by
// the tree's kind. KindCustom always matches: the caller's Bitops is
// trusted to handle whatever it was given.
func (t *Tree) kindMatches(obj Object) bool {
	switch t.kind {
	case KindBits:
		_, ok := obj.(BitsKey)
		return ok
	case KindString:
		_, ok := obj.(StringKey)
		return ok
	case KindUint32:
		_, ok := obj.(Uint32Key)
		return ok
	case KindInt32:
		_, ok := obj.(Int32Key)
		return ok
	case KindUint64:
		_, ok := obj.(Uint64Key)
		return ok
	case KindInt64:
		_, ok := obj.(Int64Key)
		return ok
	default:
		return true
	}
}

// Add inserts obj, keyed by whatever the tree's Bitops extracts from it.
// ok is false, with ErrAlreadyExists, if an object with the same key is
// already indexed. A failed cell allocation (only reachable through a
// test-installed base.AllocCell hook) returns ErrOutOfMemory and leaves the
// tree unchanged.
func (t *Tree) Add(obj Object) (bool, error) {
	if t == nil {
		return false, ErrNilTree
	}
	if obj == nil {
		return false, ErrNilObject
	}
	if !t.kindMatches(obj) {
		return false, ErrWrongKeyKind
	}

	root, ok, err := algo.Add(t.root, t.bitops, t.keyBits, t.count, obj, t.stats)
	if err != nil {
		t.opts.logger.Error("critbit: cell allocation failed", "err", err)
		return false, err
	}
	t.root = root
	if !ok {
		return false, ErrAlreadyExists
	}
	t.count++
	return true, nil
}

// Remove detaches the object matching key. ok is false, with ErrNotFound,
// if no object with that key is indexed. Whether a cell that cannot merge up
// into its parent may instead absorb one of its child sub-cells depends on
// WithMergeDown.
func (t *Tree) Remove(key Object) (bool, error) {
	if t == nil {
		return false, ErrNilTree
	}
	if key == nil {
		return false, ErrNilObject
	}
	if !t.kindMatches(key) {
		return false, ErrWrongKeyKind
	}

	root, ok := algo.Remove(t.root, t.bitops, t.keyBits, t.count, key, t.opts.mergeDown, t.stats)
	t.root = root
	if !ok {
		return false, ErrNotFound
	}
	t.count--
	return true, nil
}

// Locate finds the object whose key exactly matches key, returning it
// along with a Cursor usable with Next/Prev.
func (t *Tree) Locate(key Object) (Object, Cursor, bool) {
	if t == nil || key == nil {
		return nil, Cursor{}, false
	}
	obj, cur := algo.Locate(t.root, t.count, t.bitops, t.keyBits, key)
	if obj == nil {
		return nil, Cursor{}, false
	}
	return obj, Cursor{raw: cur}, true
}

func (t *Tree) find(key Object) (Object, Cursor, error) {
	obj, cur, ok := t.Locate(key)
	if !ok {
		return nil, Cursor{}, ErrNotFound
	}
	return obj, cur, nil
}

// FindBits locates the object whose BitsKey equals bits, on a KindBits tree.
//
//goland:noinspection GoUnusedExportedFunction
func (t *Tree) FindBits(bits []byte) (Object, Cursor, error) {
	if t.kind != KindBits {
		return nil, Cursor{}, ErrWrongKeyKind
	}
	return t.find(bitsQuery(bits))
}

// FindString locates the object whose StringKey equals s, on a KindString tree.
//
//goland:noinspection GoUnusedExportedFunction
func (t *Tree) FindString(s string) (Object, Cursor, error) {
	if t.kind != KindString {
		return nil, Cursor{}, ErrWrongKeyKind
	}
	return t.find(stringQuery(s))
}

// FindU32 locates the object whose Uint32Key equals v, on a KindUint32 tree.
//
//goland:noinspection GoUnusedExportedFunction
func (t *Tree) FindU32(v uint32) (Object, Cursor, error) {
	if t.kind != KindUint32 {
		return nil, Cursor{}, ErrWrongKeyKind
	}
	return t.find(uint32Query(v))
}

// FindS32 locates the object whose Int32Key equals v, on a KindInt32 tree.
//
//goland:noinspection GoUnusedExportedFunction
func (t *Tree) FindS32(v int32) (Object, Cursor, error) {
	if t.kind != KindInt32 {
		return nil, Cursor{}, ErrWrongKeyKind
	}
	return t.find(int32Query(v))
}

// FindU64 locates the object whose Uint64Key equals v, on a KindUint64 tree.
//
//goland:noinspection GoUnusedExportedFunction
func (t *Tree) FindU64(v uint64) (Object, Cursor, error) {
	if t.kind != KindUint64 {
		return nil, Cursor{}, ErrWrongKeyKind
	}
	return t.find(uint64Query(v))
}

// FindS64 locates the object whose Int64Key equals v, on a KindInt64 tree.
//
//goland:noinspection GoUnusedExportedFunction
func (t *Tree) FindS64(v int64) (Object, Cursor, error) {
	if t.kind != KindInt64 {
		return nil, Cursor{}, ErrWrongKeyKind
	}
	return t.find(int64Query(v))
}

func (t *Tree) extreme(dir int) (Object, Cursor, bool) {
	switch t.count {
	case 0:
		return nil, Cursor{}, false
	case 1:
		return t.root.Object(0), Cursor{raw: base.Cursor{Cell: t.root, Nid: 0, Cid: 0}}, true
	}
	cur := base.Cursor{Cell: t.root, Nid: 0}
	obj := algo.RushExtreme(&cur, dir)
	return obj, Cursor{raw: cur}, true
}

// First returns the object with the smallest key, and a Cursor positioned
// there.
func (t *Tree) First() (Object, Cursor, bool) {
	if t == nil {
		return nil, Cursor{}, false
	}
	return t.extreme(0)
}

// Last returns the object with the largest key, and a Cursor positioned
// there.
func (t *Tree) Last() (Object, Cursor, bool) {
	if t == nil {
		return nil, Cursor{}, false
	}
	return t.extreme(1)
}

// Next returns the object immediately after cur in key order, and a Cursor
// positioned there. ok is false if cur was already at the last object.
func (t *Tree) Next(cur Cursor) (Object, Cursor, bool) {
	if t == nil || !cur.valid() {
		return nil, Cursor{}, false
	}
	raw := cur.raw
	obj := algo.Step(t.bitops, t.count, &raw, 1)
	if obj == nil {
		return nil, Cursor{}, false
	}
	return obj, Cursor{raw: raw}, true
}

// Prev returns the object immediately before cur in key order, and a
// Cursor positioned there. ok is false if cur was already at the first
// object.
func (t *Tree) Prev(cur Cursor) (Object, Cursor, bool) {
	if t == nil || !cur.valid() {
		return nil, Cursor{}, false
	}
	raw := cur.raw
	obj := algo.Step(t.bitops, t.count, &raw, 0)
	if obj == nil {
		return nil, Cursor{}, false
	}
	return obj, Cursor{raw: raw}, true
}

// Destroy tears down every cell in the tree via an iterative post-order
// walk, collecting the population histogram (when stats are enabled) as
// each cell is visited for the last time — an "autopsy" over the live
// structure, not a running gauge, matching the original's teardown-time
// collection strategy. The walk drives itself purely off DelistSubcell and
// cell.Parent(): no slice, no array, no auxiliary structure of any kind —
// the cell graph's own parent links are the only stack this ever needs.
// The tree is empty and reusable afterward.
func (t *Tree) Destroy() {
	if t == nil || t.root == nil {
		return
	}

	cell := t.root
	for cell != nil {
		next := cell.DelistSubcell()
		if next == nil {
			t.retireCell(cell)
			next = cell.Parent().DelistSubcell()
			if next == nil {
				for cell.Parent() != nil {
					p := cell.Parent()
					t.retireCell(p)
					if sibling := p.Parent().DelistSubcell(); sibling != nil {
						next = sibling
						break
					}
					cell = p
				}
			}
		}
		cell = next
	}

	t.root = nil
	t.count = 0
}

// retireCell records a cell's final population into the stats histogram
// and drops it from the live-cell gauge, the one piece of bookkeeping
// Destroy still owes its Stats block once a cell has no more subcells of
// its own left to hand off.
func (t *Tree) retireCell(c *base.Cell) {
	if t.stats != nil {
		t.stats.RecordPopulation(c.Count())
		t.stats.CellsInUse.Add(^uint64(0))
	}
}
