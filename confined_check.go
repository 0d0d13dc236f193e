// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build hrc_check

package hrc

import "runtime"

// confined records the goroutine that allocated a local counter and
// panics on any touch from another goroutine. This trades the cost of
// a stack-header parse at allocation plus a compare per operation for
// runtime enforcement of the confinement obligation the type system
// cannot express.
type confined struct {
	gid uint64
}

func (c *confined) capture() {
	c.gid = goid()
}

func (c *confined) check() {
	if goid() != c.gid {
		panic("hrc: Rc used outside its owning goroutine")
	}
}

// goid parses the current goroutine id from the stack header line
// "goroutine N [running]:". There is no public runtime API for it;
// acceptable here because hrc_check is a debugging build.
func goid() uint64 {
	var buf [32]byte
	n := runtime.Stack(buf[:], false)
	var id uint64
	for _, b := range buf[len("goroutine "):n] {
		if b < '0' || b > '9' {
			break
		}
		id = id*10 + uint64(b-'0')
	}
	return id
}
