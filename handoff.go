// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hrc

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// handoffCapacity is the bounded capacity of a handoff lane. 4 balances
// amortizing producer-side cached-index refresh cost while keeping the
// ring buffer within a single cache line.
const handoffCapacity = 4

// Handoff is a bounded lock-free lane for moving packages from one
// goroutine to another, backed by a single-producer single-consumer
// queue from lfq. Exactly one goroutine may send and exactly one may
// receive.
//
// A package's lineage claim travels with it: a successful Send
// transfers ownership to the receiver, a failed Send leaves it with
// the caller, who remains obligated to release or retry.
type Handoff[T any] struct {
	q    lfq.SPSC[*Package[T]]
	slot *Package[T]
}

// NewHandoff creates an empty handoff lane.
func NewHandoff[T any]() *Handoff[T] {
	h := &Handoff[T]{}
	h.q.Init(handoffCapacity)
	return h
}

// Send enqueues the package for the receiving goroutine.
// Non-blocking: returns iox.ErrWouldBlock if the lane is full, in
// which case the caller still owns the package.
func (h *Handoff[T]) Send(p *Package[T]) error {
	if p.block == nil {
		panic("hrc: send of a consumed Package")
	}
	h.slot = p
	return h.q.Enqueue(&h.slot)
}

// Recv dequeues the next package, transferring its lineage claim to
// the caller. Non-blocking: returns iox.ErrWouldBlock if the lane is
// empty.
func (h *Handoff[T]) Recv() (*Package[T], error) {
	return h.q.Dequeue()
}

// SendWait blocks past the would-block boundary with adaptive backoff
// (iox.Backoff) until the package is enqueued.
func (h *Handoff[T]) SendWait(p *Package[T]) {
	var bo iox.Backoff
	for h.Send(p) != nil {
		bo.Wait()
	}
}

// RecvWait blocks past the would-block boundary with adaptive backoff
// (iox.Backoff) until a package arrives.
func (h *Handoff[T]) RecvWait() *Package[T] {
	var bo iox.Backoff
	for {
		p, err := h.Recv()
		if err == nil {
			return p
		}
		bo.Wait()
	}
}
