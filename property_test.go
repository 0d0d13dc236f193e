// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hrc_test

import (
	"testing"
	"testing/quick"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/hrc"
)

// TestPropertyLineageCount proves that for any arbitrarily generated
// sequence of clone/release/package/unpackage operations on one value,
// the atomic lineage counter always equals the model count (one per
// live local-handle tree plus one per live package), and the value is
// dropped exactly once, only after the last claim is released.
func TestPropertyLineageCount(t *testing.T) {
	type entry struct {
		h       *hrc.Rc[int]
		lineage int
	}

	propertyLineages := func(ops []byte) bool {
		var drops atomix.Uint32
		root := hrc.NewWithDrop(1, countDrops[int](&drops))

		handles := []entry{{h: root, lineage: 0}}
		var packages []*hrc.Package[int]
		nextLineage := 1
		perLineage := map[int]int{0: 1}

		// Model: lineages = live local-handle trees + live packages.
		lineages := func() int { return len(perLineage) + len(packages) }

		for _, op := range ops {
			switch op % 6 {
			case 0: // clone a handle, same lineage
				if len(handles) == 0 {
					continue
				}
				e := handles[int(op/6)%len(handles)]
				handles = append(handles, entry{h: e.h.Clone(), lineage: e.lineage})
				perLineage[e.lineage]++
			case 1: // release a handle
				if len(handles) == 0 {
					continue
				}
				i := int(op/6) % len(handles)
				e := handles[i]
				handles = append(handles[:i], handles[i+1:]...)
				e.h.Release()
				if perLineage[e.lineage]--; perLineage[e.lineage] == 0 {
					delete(perLineage, e.lineage)
				}
			case 2: // package from a handle, new claim
				if len(handles) == 0 {
					continue
				}
				e := handles[int(op/6)%len(handles)]
				packages = append(packages, e.h.Package())
			case 3: // unpackage, claim becomes a fresh lineage
				if len(packages) == 0 {
					continue
				}
				i := int(op/6) % len(packages)
				p := packages[i]
				packages = append(packages[:i], packages[i+1:]...)
				handles = append(handles, entry{h: p.Unpackage(), lineage: nextLineage})
				perLineage[nextLineage] = 1
				nextLineage++
			case 4: // clone a package, new claim
				if len(packages) == 0 {
					continue
				}
				p := packages[int(op/6)%len(packages)]
				packages = append(packages, p.Clone())
			case 5: // release a package
				if len(packages) == 0 {
					continue
				}
				i := int(op/6) % len(packages)
				p := packages[i]
				packages = append(packages[:i], packages[i+1:]...)
				p.Release()
			}

			want := lineages()
			if want > 0 {
				var got uint32
				if len(handles) > 0 {
					got = handles[0].h.Lineages()
				} else {
					got = packages[0].Lineages()
				}
				if got != uint32(want) {
					return false
				}
				if drops.Load() != 0 {
					return false
				}
			} else if drops.Load() != 1 {
				return false
			}
		}

		// Exhaust every surviving claim; the value must drop exactly once.
		for _, e := range handles {
			e.h.Release()
		}
		for _, p := range packages {
			p.Release()
		}
		return drops.Load() == 1
	}

	if err := quick.Check(propertyLineages, nil); err != nil {
		t.Error(err)
	}
}

// TestPropertyLocalChurnNeverAtomic proves that any arbitrarily
// generated sequence of intra-goroutine clones and releases leaves the
// atomic lineage counter untouched.
func TestPropertyLocalChurnNeverAtomic(t *testing.T) {
	propertyNoAtomic := func(ops []byte) bool {
		root := hrc.New("x")
		handles := []*hrc.Rc[string]{root}

		for _, op := range ops {
			if op%2 == 0 || len(handles) == 1 {
				handles = append(handles, handles[int(op/2)%len(handles)].Clone())
			} else {
				i := 1 + int(op/2)%(len(handles)-1)
				handles[i].Release()
				handles = append(handles[:i], handles[i+1:]...)
			}
			if handles[0].Lineages() != 1 {
				return false
			}
			if handles[0].LocalRefs() != uint32(len(handles)) {
				return false
			}
		}

		for _, h := range handles {
			h.Release()
		}
		return true
	}

	if err := quick.Check(propertyNoAtomic, nil); err != nil {
		t.Error(err)
	}
}
