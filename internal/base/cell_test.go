package base

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCellInitialState(t *testing.T) {
	c, err := NewCell()
	require.NoError(t, err)
	require.NotNil(t, c)

	assert.Nil(t, c.Parent())
	assert.Equal(t, 1, c.Count())
	assert.False(t, c.NodeIsVacant(0))
	for i := 1; i < NodesPerCell; i++ {
		assert.True(t, c.NodeIsVacant(i), "node slot %d should start vacant", i)
	}
	for i := 0; i < PtrsPerCell; i++ {
		assert.True(t, c.PtrIsVacant(i), "ptr slot %d should start vacant", i)
	}
}

func TestAllocCellFailureIsErrOutOfMemory(t *testing.T) {
	prev := AllocCell
	defer func() { AllocCell = prev }()

	AllocCell = func() (*Cell, error) {
		return nil, errors.New("injected allocation failure")
	}

	c, err := NewCell()
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrOutOfMemory)
}

func TestAllocNodeSkipsRootSlot(t *testing.T) {
	c, err := NewCell()
	require.NoError(t, err)

	nid := c.AllocNode()
	assert.NotEqual(t, 0, nid, "AllocNode must never return the fixed root slot")
	assert.False(t, c.NodeIsVacant(nid))
}

func TestAllocNodeFindsLowestVacant(t *testing.T) {
	c, err := NewCell()
	require.NoError(t, err)

	first := c.AllocNode()
	c.FreeNode(first)
	second := c.AllocNode()
	assert.Equal(t, first, second)
}

func TestAllocPtrReservesLowestVacant(t *testing.T) {
	c, err := NewCell()
	require.NoError(t, err)

	p0 := c.AllocPtr()
	p1 := c.AllocPtr()
	assert.NotEqual(t, p0, p1)
	assert.False(t, c.PtrIsVacant(p0))
	assert.False(t, c.PtrIsVacant(p1))

	c.FreePtr(p0)
	assert.True(t, c.PtrIsVacant(p0))
	p2 := c.AllocPtr()
	assert.Equal(t, p0, p2)
}

func TestChildTagRoundTrip(t *testing.T) {
	uobj := CellUobj(3)
	assert.True(t, ChildIsUobj(uobj))
	assert.False(t, ChildIsCell(uobj))
	assert.False(t, ChildIsNode(uobj))
	assert.Equal(t, 3, ChildIndex(uobj))

	cellEdge := CellEdge(5)
	assert.True(t, ChildIsCell(cellEdge))
	assert.False(t, ChildIsUobj(cellEdge))
	assert.Equal(t, 5, ChildIndex(cellEdge))

	assert.True(t, ChildIsNode(uint8(2)))
	assert.False(t, ChildIsCell(uint8(2)))
	assert.False(t, ChildIsUobj(uint8(2)))
}

func TestMoveSlotReparentsCell(t *testing.T) {
	src, err := NewCell()
	require.NoError(t, err)
	dst, err := NewCell()
	require.NoError(t, err)
	sub, err := NewCell()
	require.NoError(t, err)
	sub.SetParent(src)

	pid := src.AllocPtr()
	src.SetSubCell(pid, sub)

	dpid := dst.AllocPtr()
	src.MoveSlot(pid, dst, dpid, dst)

	assert.True(t, src.PtrIsVacant(pid))
	assert.Same(t, sub, dst.SubCell(dpid))
	assert.Same(t, dst, sub.Parent())
}

func TestMoveSlotObjectDoesNotTouchParent(t *testing.T) {
	src, err := NewCell()
	require.NoError(t, err)
	dst, err := NewCell()
	require.NoError(t, err)

	pid := src.AllocPtr()
	src.SetObject(pid, "hello")
	dpid := dst.AllocPtr()
	src.MoveSlot(pid, dst, dpid, dst)

	assert.True(t, src.PtrIsVacant(pid))
	assert.Equal(t, "hello", dst.Object(dpid))
}

func TestNodeParentFindsCorrectSideForSingleSplit(t *testing.T) {
	c, err := NewCell()
	require.NoError(t, err)

	nid := c.AllocNode()
	c.SetChild(0, 1, uint8(nid))
	c.SetChild(0, 0, CellUobj(0))

	parent, side := c.NodeParent(nid)
	assert.Equal(t, 0, parent)
	assert.Equal(t, 1, side)
}

func TestFindAnchorLocatesCellEdge(t *testing.T) {
	parent, err := NewCell()
	require.NoError(t, err)
	child, err := NewCell()
	require.NoError(t, err)
	child.SetParent(parent)

	pid := parent.AllocPtr()
	parent.SetSubCell(pid, child)
	parent.SetChild(0, 1, CellEdge(pid))
	parent.SetChild(0, 0, CellUobj(0))

	nid, side := FindAnchor(child, parent)
	assert.Equal(t, 0, nid)
	assert.Equal(t, 1, side)
}

func TestDelistSubcellExhaustsThenNil(t *testing.T) {
	parent, err := NewCell()
	require.NoError(t, err)
	child, err := NewCell()
	require.NoError(t, err)

	pid := parent.AllocPtr()
	parent.SetSubCell(pid, child)
	parent.SetChild(0, 1, CellEdge(pid))
	parent.SetChild(0, 0, CellUobj(0))

	got := parent.DelistSubcell()
	assert.Same(t, child, got)
	assert.Nil(t, parent.DelistSubcell())
}
