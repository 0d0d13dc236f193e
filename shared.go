// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hrc

import "code.hybscloud.com/atomix"

// shared is the block allocated once per logical value. It bundles the
// atomic lineage counter with the wrapped value and the optional drop
// hook. The counter equals the number of live lineages: one per
// goroutine tree of handles descended from a single local counter, plus
// one per live package.
type shared[T any] struct {
	lineages atomix.Uint32
	drop     func(T)
	value    T
}

// newShared allocates the block with a single lineage claim owned by
// the caller.
func newShared[T any](value T, drop func(T)) *shared[T] {
	s := &shared[T]{drop: drop, value: value}
	s.lineages.Add(1)
	return s
}

// incRef claims one additional lineage. The caller is obligated to
// later call decRef exactly once for it.
//
// Ordering: the atomic add is sequentially consistent, stronger than
// the release store this protocol minimally needs (an increment must
// only not be reordered before the claim it extends).
func (s *shared[T]) incRef() {
	if s.lineages.Add(1) < 2 {
		panic("hrc: increment on a dead block")
	}
}

// decRef relinquishes one lineage claim. Whichever call observes the
// counter fall from one to zero owns the block exclusively at that
// instant and destroys the value: the drop hook runs, then the value
// field is zeroed so everything it references is released immediately
// rather than when the collector reaches the block.
//
// Ordering: the sequentially consistent add gives the final
// decrementer a happens-before edge with every earlier lineage's
// accesses, so destroying the value needs no further synchronization.
func (s *shared[T]) decRef() {
	n := s.lineages.Add(^uint32(0))
	if n == ^uint32(0) {
		panic("hrc: release on a dead block")
	}
	if n > 0 {
		return
	}
	if s.drop != nil {
		s.drop(s.value)
	}
	var zero T
	s.value = zero
}
