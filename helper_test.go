// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hrc_test

import "code.hybscloud.com/atomix"

// countDrops returns a drop hook that increments c, so tests can
// assert the wrapped value is destroyed exactly once and only after
// the last claim is released.
func countDrops[T any](c *atomix.Uint32) func(T) {
	return func(T) {
		c.Add(1)
	}
}
