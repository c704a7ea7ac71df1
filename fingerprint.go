package critbit

import "github.com/cespare/xxhash/v2"

// keyBytes extracts the byte representation xxhash folds over for
// Fingerprint, matching whatever built-in Bitops derives bits from. Custom
// kinds are not supported by Fingerprint since there is no generic byte
// view of an arbitrary caller Bitops' key.
func (t *Tree) keyBytes(obj Object) []byte {
	switch t.kind {
	case KindBits:
		return obj.(BitsKey).Bits()
	case KindString:
		return []byte(obj.(StringKey).StringKey())
	case KindUint32:
		return uint32Bytes(obj.(Uint32Key).Uint32Key())
	case KindInt32:
		return int32Bytes(obj.(Int32Key).Int32Key())
	case KindUint64:
		return uint64Bytes(obj.(Uint64Key).Uint64Key())
	case KindInt64:
		return int64Bytes(obj.(Int64Key).Int64Key())
	default:
		return nil
	}
}

// Fingerprint hashes the tree's ascending key sequence with xxhash,
// letting tests compare two trees for the same key set without walking
// both structures node-by-node. Returns 0 for an empty tree or a
// KindCustom tree (no generic byte view of its keys).
//
//goland:noinspection GoUnusedExportedFunction
func (t *Tree) Fingerprint() uint64 {
	if t == nil || t.count == 0 || t.kind == KindCustom {
		return 0
	}

	h := xxhash.New()
	obj, cur, ok := t.First()
	for ok {
		h.Write(t.keyBytes(obj))
		obj, cur, ok = t.Next(cur)
	}
	return h.Sum64()
}
