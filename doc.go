// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package hrc provides a hybrid two-tier reference-counted pointer that
// keeps intra-goroutine sharing free of atomic operations.
//
// A fully atomic reference count pays an atomic add on every clone and
// release even when all sharing stays on one goroutine. hrc splits the
// count in two tiers: an unsynchronized per-goroutine counter shared by
// all local clones, and one atomic counter via
// [code.hybscloud.com/atomix] that tracks lineages — one per goroutine
// tree of handles plus one per live package.
//
// # Architecture
//
//   - [Rc] is the goroutine-confined handle. [Rc.Clone] and [Rc.Release]
//     touch only the local counter. An Rc must never leave the goroutine
//     that created it.
//   - [Package] is the transfer capsule. It carries one lineage claim,
//     holds no local counter, and is the only value safe to move across
//     goroutines. [Rc.Package] mints one (atomic increment);
//     [Package.Unpackage] turns it back into a fresh Rc on the receiving
//     goroutine with no atomic operation.
//   - [Handoff] is a bounded lock-free SPSC lane for packages via
//     [code.hybscloud.com/lfq]. Non-blocking operations return
//     [code.hybscloud.com/iox.ErrWouldBlock]; Wait variants block past
//     the boundary with adaptive backoff.
//   - The contained value is dropped exactly once, by whichever release
//     observes the atomic counter fall from one to zero. An optional
//     drop hook ([NewWithDrop]) observes that instant.
//
// # Contract
//
// Every [Rc] and every [Package] must be released exactly once.
// Violations that are cheap to detect (double release, use after
// release) panic. Goroutine confinement of Rc cannot be expressed in
// the type system; it is checked at runtime only under the hrc_check
// build tag and is otherwise the caller's obligation.
//
// # Example
//
//	a := hrc.New(42)
//	b := a.Clone()     // no atomic operation
//	pkg := a.Package() // atomic increment: one new lineage
//	go func() {
//		c := pkg.Unpackage() // fresh local counter, no atomic
//		_ = *c.Borrow()
//		c.Release()
//	}()
//	b.Release()
//	a.Release()
package hrc
