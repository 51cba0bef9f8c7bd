package xref

import (
	"math/rand/v2"
)

// IDSource hands out ids for deferred lookups. Ids never repeat within one
// source.
type IDSource interface {
	NextID() int64
}

const initialSpan = 10000

// RandomIDs draws ids uniformly from [0, span) and remembers them. The span
// grows tenfold whenever half of it is used, so draws stay cheap.
type RandomIDs struct {
	rng  *rand.Rand
	span int64
	seen map[int64]struct{}
}

// NewRandomIDs returns a random id source. A zero seed picks a random one.
func NewRandomIDs(seed uint64) *RandomIDs {
	if seed == 0 {
		seed = rand.Uint64()
	}

	return &RandomIDs{
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		span: initialSpan,
		seen: make(map[int64]struct{}),
	}
}

// NextID implements IDSource.
func (r *RandomIDs) NextID() int64 {
	if int64(len(r.seen))*2 >= r.span {
		r.span *= 10
	}

	for {
		id := r.rng.Int64N(r.span)
		if _, dup := r.seen[id]; dup {
			continue
		}

		r.seen[id] = struct{}{}

		return id
	}
}

// SequentialIDs counts up from a start value.
type SequentialIDs struct {
	next int64
}

// NewSequentialIDs returns a source whose first id is start.
func NewSequentialIDs(start int64) *SequentialIDs {
	return &SequentialIDs{next: start}
}

// NextID implements IDSource.
func (s *SequentialIDs) NextID() int64 {
	id := s.next
	s.next++

	return id
}
