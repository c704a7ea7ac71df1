package critbit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"critbit/internal/base"
)

func TestGetBitOfZeroPadsShortSlice(t *testing.T) {
	b := []byte{0xff}
	assert.Equal(t, 1, getBitOf(b, 0))
	assert.Equal(t, 1, getBitOf(b, 7))
	assert.Equal(t, 0, getBitOf(b, 8), "positions past the slice read as zero")
}

func TestFirstDiffOfFindsEarliestDivergence(t *testing.T) {
	a := []byte{0b1010_0000}
	b := []byte{0b1010_0001}
	assert.Equal(t, 7, firstDiffOf(8, a, b))
	assert.Equal(t, -1, firstDiffOf(7, a, b))
}

func TestFirstDiffOfEqualReturnsMinusOne(t *testing.T) {
	a := []byte("same")
	b := []byte("same")
	assert.Equal(t, -1, firstDiffOf(32, a, b))
}

func TestStringBitopsPrefixOrdering(t *testing.T) {
	bo := StringBitops()
	short := strObj("ab")
	long := strObj("abc")
	pos := bo.FirstDiff(base.CbitMax+1, short, long)
	assert.Equal(t, 17, pos, "'c' is 0x63 = 0110_0011; its first set bit after the shared prefix is bit 17")
	assert.Equal(t, 0, bo.GetBit(pos, short), "the shorter string reads zero-padded past its own length")
	assert.Equal(t, 1, bo.GetBit(pos, long))
}

func TestInt32BitopsOrdersAcrossSignBoundary(t *testing.T) {
	bo := Int32Bitops()
	neg := s32Obj(-1)
	pos := s32Obj(0)
	diff := bo.FirstDiff(32, neg, pos)
	assert.NotEqual(t, -1, diff)
	assert.Equal(t, 0, bo.GetBit(diff, neg), "negative values must sort below zero after the sign flip")
	assert.Equal(t, 1, bo.GetBit(diff, pos))
}

type s64Obj int64

func (v s64Obj) Int64Key() int64 { return int64(v) }

func TestInt64BitopsOrdersAcrossSignBoundary(t *testing.T) {
	bo := Int64Bitops()
	neg := s64Obj(-1)
	pos := s64Obj(0)
	diff := bo.FirstDiff(64, neg, pos)
	assert.NotEqual(t, -1, diff)
	assert.Equal(t, 0, bo.GetBit(diff, neg))
	assert.Equal(t, 1, bo.GetBit(diff, pos))
}

func TestUint32BytesBigEndian(t *testing.T) {
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, uint32Bytes(0x01020304))
}

func TestUint64BytesBigEndian(t *testing.T) {
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 1}, uint64Bytes(1))
}
