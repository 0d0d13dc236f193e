// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hrc

// Rc is the goroutine-confined handle to a shared value. All clones of
// one handle share a single unsynchronized local counter, so cloning
// and releasing inside one goroutine never touch the atomic lineage
// counter. The atomic counter is paid only when a lineage begins or
// ends: [New], [Rc.Package], [Package.Clone], [Package.Release], and
// the release of the last handle in a goroutine's tree.
//
// An Rc must stay on the goroutine that minted it ([New] or
// [Package.Unpackage]). To hand the value to another goroutine, call
// [Rc.Package] and move the package instead.
type Rc[T any] struct {
	local *localCounter
	block *shared[T]
}

// New wraps value in a fresh shared block with one lineage claim and
// returns the first handle, with a local count of one.
func New[T any](value T) *Rc[T] {
	return NewWithDrop(value, nil)
}

// NewWithDrop is [New] with a drop hook. drop runs exactly once, on
// whichever release observes the last lineage claim relinquished, and
// receives the wrapped value before it is zeroed.
func NewWithDrop[T any](value T, drop func(T)) *Rc[T] {
	return &Rc[T]{
		local: newLocalCounter(),
		block: newShared(value, drop),
	}
}

// Clone returns a new handle sharing this handle's lineage. Only the
// local counter moves; the atomic lineage counter is untouched.
func (h *Rc[T]) Clone() *Rc[T] {
	if h.block == nil {
		panic("hrc: clone of a released Rc")
	}
	h.local.inc()
	return &Rc[T]{local: h.local, block: h.block}
}

// Borrow returns the shared value. The pointer is valid until this
// handle is released; the value must be treated as read-only.
func (h *Rc[T]) Borrow() *T {
	if h.block == nil {
		panic("hrc: borrow of a released Rc")
	}
	h.local.check()
	return &h.block.value
}

// Package claims one new lineage (atomic increment) and returns a
// capsule that may be moved to another goroutine. The handle itself is
// unaffected and keeps its own claim.
func (h *Rc[T]) Package() *Package[T] {
	if h.block == nil {
		panic("hrc: package of a released Rc")
	}
	h.local.check()
	h.block.incRef()
	return &Package[T]{block: h.block}
}

// Release invalidates the handle and must be called exactly once, on
// the owning goroutine. It decrements the local counter; when the
// counter reaches zero the lineage is over and its atomic claim is
// relinquished, destroying the value if this was the last lineage.
func (h *Rc[T]) Release() {
	if h.block == nil {
		panic("hrc: double release of an Rc")
	}
	block := h.block
	remaining := h.local.dec()
	h.local, h.block = nil, nil
	if remaining > 0 {
		return
	}
	block.decRef()
}

// Lineages reports the current value of the atomic lineage counter.
// Intended for tests and diagnostics; the value is immediately stale
// whenever other goroutines hold packages.
func (h *Rc[T]) Lineages() uint32 {
	if h.block == nil {
		panic("hrc: lineages of a released Rc")
	}
	return h.block.lineages.Load()
}

// LocalRefs reports the number of live handles in this handle's
// lineage. Intended for tests and diagnostics.
func (h *Rc[T]) LocalRefs() uint32 {
	if h.block == nil {
		panic("hrc: local refs of a released Rc")
	}
	h.local.check()
	return h.local.n
}
