// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hrc

// Package is the transfer capsule: one lineage claim with no local
// counter. It is the only hrc value safe to move across goroutines —
// its whole state is a pointer into a block whose value is only ever
// read and whose destruction path is synchronized through the atomic
// counter. Sharing the wrapped value across goroutines is sound only
// if the value itself is safe to read concurrently.
//
// Clone may be called concurrently on one package. Unpackage and
// Release consume the package and require exclusive ownership, which
// moving it through a channel or [Handoff] provides.
type Package[T any] struct {
	block *shared[T]
}

// Unpackage consumes the package and mints a handle for the calling
// goroutine, backed by a fresh local counter of one. The package's
// lineage claim transfers intact into the new handle's lineage, so no
// atomic operation occurs.
func (p *Package[T]) Unpackage() *Rc[T] {
	if p.block == nil {
		panic("hrc: unpackage of a consumed Package")
	}
	block := p.block
	p.block = nil
	return &Rc[T]{local: newLocalCounter(), block: block}
}

// Clone claims one new lineage (atomic increment) and returns an
// independent package. This is the one cloning path that pays an
// atomic, the price of being the cross-goroutine currency.
func (p *Package[T]) Clone() *Package[T] {
	block := p.block
	if block == nil {
		panic("hrc: clone of a consumed Package")
	}
	block.incRef()
	return &Package[T]{block: block}
}

// Release relinquishes the package's lineage claim without minting a
// handle, destroying the value if this was the last lineage. Must be
// called exactly once on every package that is not unpackaged.
func (p *Package[T]) Release() {
	block := p.block
	if block == nil {
		panic("hrc: double release of a Package")
	}
	p.block = nil
	block.decRef()
}

// Lineages reports the current value of the atomic lineage counter.
// Intended for tests and diagnostics; the value is immediately stale
// whenever other goroutines hold claims.
func (p *Package[T]) Lineages() uint32 {
	if p.block == nil {
		panic("hrc: lineages of a consumed Package")
	}
	return p.block.lineages.Load()
}
