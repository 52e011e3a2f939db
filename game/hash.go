package game

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
)

// Hasher accumulates position features into a StateHash.
type Hasher struct {
	h hash.Hash64
}

func NewHasher() Hasher {
	return Hasher{h: fnv.New64a()}
}

func (h Hasher) Int(v int) Hasher {
	binary.Write(h.h, binary.LittleEndian, int64(v))
	return h
}

func (h Hasher) Bytes(b []byte) Hasher {
	h.h.Write(b)
	return h
}

func (h Hasher) Sum() StateHash {
	return StateHash(h.h.Sum64())
}
