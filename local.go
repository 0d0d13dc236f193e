// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hrc

// localCounter is the unsynchronized count of live handles in one
// lineage. It is allocated whenever a handle is minted fresh ([New] or
// [Package.Unpackage]) and shared by every clone of that handle.
//
// No synchronization: a goroutine is sequential under the Go memory
// model even when the runtime migrates it across OS threads, so plain
// loads and stores are sound as long as only the allocating goroutine
// ever touches the cell. The Rc API offers no operation that moves a
// handle to another goroutine; the hrc_check build tag adds a runtime
// check of that obligation.
type localCounter struct {
	confined
	n uint32
}

// newLocalCounter allocates a cell with one live handle, owned by the
// calling goroutine.
func newLocalCounter() *localCounter {
	c := &localCounter{n: 1}
	c.capture()
	return c
}

// inc records one more live handle in this lineage.
func (c *localCounter) inc() {
	c.check()
	c.n++
}

// dec records one handle leaving this lineage and returns the number
// still alive. Zero means the lineage is over and its atomic claim must
// be relinquished.
func (c *localCounter) dec() uint32 {
	c.check()
	c.n--
	return c.n
}
