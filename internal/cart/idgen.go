package cart

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/google/uuid"
)

// LineIDGenerator produces collision-resistant ids for customized cart
// lines. Catalog items keep their catalog id so repeat adds merge; every
// customized variant gets a fresh id so variants never merge by accident.
type LineIDGenerator interface {
	NextID() int64
}

// UUIDGenerator derives positive int64 ids from random UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NextID() int64 {
	u := uuid.New()
	// Take the first 8 bytes and clear the sign bit.
	return int64(binary.BigEndian.Uint64(u[:8]) &^ (1 << 63))
}

// SequenceGenerator hands out sequential ids from a fixed base. Used in
// tests where ids must be predictable.
type SequenceGenerator struct {
	next atomic.Int64
}

func NewSequenceGenerator(base int64) *SequenceGenerator {
	g := &SequenceGenerator{}
	g.next.Store(base)
	return g
}

func (g *SequenceGenerator) NextID() int64 {
	return g.next.Add(1) - 1
}
