package critbit

import "critbit/internal/base"

// KeyKind identifies which built-in Bitops a tree was constructed with. It
// is metadata only — used to reject a typed finder (FindString, FindU32,
// ...) called against a tree of the wrong kind — and plays no role in the
// structural algorithms, which only ever see the Bitops interface.
type KeyKind int

const (
	KindCustom KeyKind = iota
	KindBits
	KindString
	KindUint32
	KindInt32
	KindUint64
	KindInt64
)

// BitsKey is implemented by objects indexed with BitsBitops: a fixed-width,
// zero-padded bit string.
type BitsKey interface {
	Bits() []byte
}

// StringKey is implemented by objects indexed with StringBitops. Collapses
// the C reference's CSTR/PSTR split — which exists there only to
// distinguish a string embedded in a struct from a pointer to one — since a
// Go string is already a value handle with no such distinction to carry.
type StringKey interface {
	StringKey() string
}

// Uint32Key, Int32Key, Uint64Key, Int64Key are implemented by objects
// indexed with the corresponding fixed-width integer Bitops. The signed
// variants compare as if the sign bit were flipped, so two's-complement
// negative values sort below positive ones.
type (
	Uint32Key interface{ Uint32Key() uint32 }
	Int32Key  interface{ Int32Key() int32 }
	Uint64Key interface{ Uint64Key() uint64 }
	Int64Key  interface{ Int64Key() int64 }
)

// Query wrapper types let the typed Find methods build a throwaway key
// object to hand to Locate without requiring the caller's own object type
// to be constructible from a bare value.
type (
	bitsQuery   []byte
	stringQuery string
	uint32Query uint32
	int32Query  int32
	uint64Query uint64
	int64Query  int64
)

func (q bitsQuery) Bits() []byte          { return q }
func (q stringQuery) StringKey() string   { return string(q) }
func (q uint32Query) Uint32Key() uint32   { return uint32(q) }
func (q int32Query) Int32Key() int32      { return int32(q) }
func (q uint64Query) Uint64Key() uint64   { return uint64(q) }
func (q int64Query) Int64Key() int64      { return int64(q) }

func getBitOf(b []byte, pos int) int {
	byteIdx := pos / 8
	if byteIdx >= len(b) {
		return 0
	}
	return int((b[byteIdx] >> uint(7-pos%8)) & 1)
}

func firstDiffOf(limit int, a, b []byte) int {
	for i := 0; i < limit; i++ {
		if getBitOf(a, i) != getBitOf(b, i) {
			return i
		}
	}
	return -1
}

type bitsBitops struct{ nbits int }

// BitsBitops builds a Bitops for objects implementing BitsKey, comparing
// exactly nbits bits (the tail byte is treated as zero-padded, per spec.md's
// BITS kind).
func BitsBitops(nbits int) base.Bitops { return bitsBitops{nbits: nbits} }

func (o bitsBitops) GetBit(pos int, obj base.Object) int {
	return getBitOf(obj.(BitsKey).Bits(), pos)
}

func (o bitsBitops) FirstDiff(limit int, a, b base.Object) int {
	return firstDiffOf(limit, a.(BitsKey).Bits(), b.(BitsKey).Bits())
}

type stringBitops struct{}

// StringBitops builds a Bitops for objects implementing StringKey. Strings
// shorter than the bit position in question compare as zero-padded, so a
// proper prefix of another string always sorts before it.
func StringBitops() base.Bitops { return stringBitops{} }

func (o stringBitops) GetBit(pos int, obj base.Object) int {
	return getBitOf([]byte(obj.(StringKey).StringKey()), pos)
}

func (o stringBitops) FirstDiff(limit int, a, b base.Object) int {
	return firstDiffOf(limit, []byte(a.(StringKey).StringKey()), []byte(b.(StringKey).StringKey()))
}

type uint32Bitops struct{}

// Uint32Bitops builds a Bitops for objects implementing Uint32Key, comparing
// the big-endian bit pattern of the value (bit 0 is the MSB).
func Uint32Bitops() base.Bitops { return uint32Bitops{} }

func uint32Bytes(v uint32) []byte {
	return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

func (o uint32Bitops) GetBit(pos int, obj base.Object) int {
	return getBitOf(uint32Bytes(obj.(Uint32Key).Uint32Key()), pos)
}

func (o uint32Bitops) FirstDiff(limit int, a, b base.Object) int {
	return firstDiffOf(limit, uint32Bytes(a.(Uint32Key).Uint32Key()), uint32Bytes(b.(Uint32Key).Uint32Key()))
}

type int32Bitops struct{}

// Int32Bitops builds a Bitops for objects implementing Int32Key. The sign
// bit is flipped before comparison so two's-complement ordering matches
// numeric ordering across zero.
func Int32Bitops() base.Bitops { return int32Bitops{} }

func int32Bytes(v int32) []byte {
	return uint32Bytes(uint32(v) ^ 0x8000_0000)
}

func (o int32Bitops) GetBit(pos int, obj base.Object) int {
	return getBitOf(int32Bytes(obj.(Int32Key).Int32Key()), pos)
}

func (o int32Bitops) FirstDiff(limit int, a, b base.Object) int {
	return firstDiffOf(limit, int32Bytes(a.(Int32Key).Int32Key()), int32Bytes(b.(Int32Key).Int32Key()))
}

type uint64Bitops struct{}

// Uint64Bitops builds a Bitops for objects implementing Uint64Key.
func Uint64Bitops() base.Bitops { return uint64Bitops{} }

func uint64Bytes(v uint64) []byte {
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> uint(56-8*i))
	}
	return b
}

func (o uint64Bitops) GetBit(pos int, obj base.Object) int {
	return getBitOf(uint64Bytes(obj.(Uint64Key).Uint64Key()), pos)
}

func (o uint64Bitops) FirstDiff(limit int, a, b base.Object) int {
	return firstDiffOf(limit, uint64Bytes(a.(Uint64Key).Uint64Key()), uint64Bytes(b.(Uint64Key).Uint64Key()))
}

type int64Bitops struct{}

// Int64Bitops builds a Bitops for objects implementing Int64Key, flipping
// the sign bit as Int32Bitops does.
func Int64Bitops() base.Bitops { return int64Bitops{} }

func int64Bytes(v int64) []byte {
	return uint64Bytes(uint64(v) ^ 0x8000_0000_0000_0000)
}

func (o int64Bitops) GetBit(pos int, obj base.Object) int {
	return getBitOf(int64Bytes(obj.(Int64Key).Int64Key()), pos)
}

func (o int64Bitops) FirstDiff(limit int, a, b base.Object) int {
	return firstDiffOf(limit, int64Bytes(a.(Int64Key).Int64Key()), int64Bytes(b.(Int64Key).Int64Key()))
}
