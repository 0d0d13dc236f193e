// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !hrc_check

package hrc

// confined is a no-op in regular builds: goroutine confinement of Rc
// is the caller's obligation and the hot path stays branch-free.
// Build with -tags hrc_check to verify it at runtime.
type confined struct{}

func (confined) capture() {}
func (confined) check()   {}
