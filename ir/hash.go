package ir

import (
	"encoding/binary"
	"hash/maphash"
)

// hashSeed is fixed at init so hashes are stable within a process;
// they are not stable across runs.
var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the node's content, consistent with
// Equal: equal nodes hash alike. Useful for type caches and
// deduplication side tables. The seed is per-process, so hashes are not
// stable across runs. It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}

	var h maphash.Hash
	h.SetSeed(hashSeed)

	h.WriteByte(byte(n.kind))

	for _, name := range n.props.Names() {
		h.WriteString(name)
		v, _ := n.props.Get(name)
		h.WriteByte(byte(v.kind))
		switch v.kind {
		case ValueString:
			h.WriteString(v.s)
		case ValueInt:
			var b [8]byte
			binary.LittleEndian.PutUint64(b[:], uint64(v.i))
			h.Write(b[:])
		case ValueBool:
			if v.b {
				h.WriteByte(1)
			} else {
				h.WriteByte(0)
			}
		}
	}

	var b [8]byte
	for _, c := range n.children {
		// Combining child hashes order-dependently keeps operand and
		// statement order significant.
		binary.LittleEndian.PutUint64(b[:], c.Hash())
		h.Write(b[:])
	}
	return h.Sum64()
}
