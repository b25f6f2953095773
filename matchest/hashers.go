/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package matchest

import (
	"github.com/cespare/xxhash/v2"
	khash "github.com/flanglet/ltu-go/hash"
)

// KanziXXHash64Hasher wraps the repository's own XXHash64 port, letting
// callers compare the in-repo hash implementation against the default
// golden-ratio mixer and against cespare/xxhash for accuracy and
// throughput on the same input.
//
// A 64-bit digest carries more entropy than this package needs to index
// a 16,384-slot table; the low 32 bits are used directly as both index
// source and fingerprint, matching the contract that the same value
// used for equality is the value stored.
type KanziXXHash64Hasher struct {
	h *khash.XXHash64
}

// NewKanziXXHash64Hasher creates a Hasher backed by the repository's
// XXHash64 port.
func NewKanziXXHash64Hasher() *KanziXXHash64Hasher {
	return &KanziXXHash64Hasher{h: khash.NewXXHash64(0)}
}

// Hash implements Hasher.
func (this *KanziXXHash64Hasher) Hash(window uint32) uint32 {
	var buf [3]byte
	buf[0] = byte(window)
	buf[1] = byte(window >> 8)
	buf[2] = byte(window >> 16)

	return uint32(this.h.Sum64(buf[:]))
}

// XXHash64Hasher is a Hasher backed by github.com/cespare/xxhash/v2, an
// imported, widely used implementation of the same algorithm as
// KanziXXHash64Hasher. Both are wired side by side so the estimator can
// be run with either XXHash64 implementation supplying the mixing;
// TestEstimateWithHasherVariants runs it with each and checks that the
// count stays within bounds.
type XXHash64Hasher struct{}

// Hash implements Hasher.
func (XXHash64Hasher) Hash(window uint32) uint32 {
	var buf [3]byte
	buf[0] = byte(window)
	buf[1] = byte(window >> 8)
	buf[2] = byte(window >> 16)

	return uint32(xxhash.Sum64(buf[:]))
}
