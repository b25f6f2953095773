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

// Package histogram counts byte occurrences in a buffer.
//
// A Histogram is a flat array of 256 32-bit counters, one per byte
// value. Build accumulates into a caller-owned Histogram; it never
// zeroes it first, so repeated calls on chunks of a larger stream
// compose into a running total.
package histogram

import "math"

// NumValues is the number of distinct byte values a Histogram tracks.
const NumValues = 256

// Histogram counts occurrences of each byte value 0..255. The zero
// value is ready to use. The memory layout is a flat array of 256
// native-endian uint32 counters, matching the C struct layout callers
// may pass across an ABI boundary.
type Histogram struct {
	Counters [NumValues]uint32
}

// Sum returns the total number of bytes counted so far.
func (this *Histogram) Sum() uint64 {
	var total uint64

	for _, c := range this.Counters {
		total += uint64(c)
	}

	return total
}

// Reset zeroes all counters.
func (this *Histogram) Reset() {
	this.Counters = [NumValues]uint32{}
}

// Build adds the count of each byte value in input to out. It does not
// zero out first: callers that want a fresh count must call out.Reset()
// (or start from a zero-value Histogram) before calling Build.
//
// Build dispatches to a platform-specific accelerated path when one is
// available (see cpu.go); the accelerated path is required to and does
// produce results bit-identical to buildReference, so callers never
// observe the dispatch.
func Build(input []byte, out *Histogram) {
	if len(input) == 0 {
		return
	}

	if hasWideAccumPath() {
		buildUnrolled8(input, out)
	} else {
		buildUnrolled4(input, out)
	}
}

// buildUnrolled4 is the reference algorithm: four independent
// sub-histograms fed round-robin from the input, summed at the end.
// A single counter incremented from a long run of the same byte value
// forms a serial dependency chain that stalls an out-of-order core;
// four independent accumulators break that chain so multiple
// increments can issue per cycle. This shape alone, with no SIMD,
// comfortably clears several GiB/s on a modern core.
func buildUnrolled4(input []byte, out *Histogram) {
	var h0, h1, h2, h3 [NumValues]uint32

	end := len(input) &^ 3

	for i := 0; i < end; i += 4 {
		h0[input[i]]++
		h1[input[i+1]]++
		h2[input[i+2]]++
		h3[input[i+3]]++
	}

	// Tail folded into sub-histogram 0.
	for i := end; i < len(input); i++ {
		h0[input[i]]++
	}

	for i := 0; i < NumValues; i++ {
		addSaturating(&out.Counters[i], h0[i]+h1[i]+h2[i]+h3[i])
	}
}

// buildUnrolled8 is the wide-accumulator variant selected on cores that
// report AVX2 support (see cpu.go). It is plain Go: no assembly, no
// SIMD intrinsics, just eight independent accumulators instead of four.
// A core with a wider out-of-order window can keep more of these
// increments in flight at once. It must, and does, produce results
// bit-identical to buildUnrolled4.
func buildUnrolled8(input []byte, out *Histogram) {
	var h0, h1, h2, h3, h4, h5, h6, h7 [NumValues]uint32

	end := len(input) &^ 7

	for i := 0; i < end; i += 8 {
		h0[input[i]]++
		h1[input[i+1]]++
		h2[input[i+2]]++
		h3[input[i+3]]++
		h4[input[i+4]]++
		h5[input[i+5]]++
		h6[input[i+6]]++
		h7[input[i+7]]++
	}

	// Tail folded into sub-histogram 0, same discipline as buildUnrolled4.
	for i := end; i < len(input); i++ {
		h0[input[i]]++
	}

	for i := 0; i < NumValues; i++ {
		addSaturating(&out.Counters[i], h0[i]+h1[i]+h2[i]+h3[i]+h4[i]+h5[i]+h6[i]+h7[i])
	}
}

// addSaturating adds delta to *counter, clamping at math.MaxUint32
// rather than wrapping. A single Histogram is not expected to see more
// than ~4 GiB of input (spec ceiling); saturating keeps the documented
// failure mode "wrong but bounded" instead of silently wrapping to a
// small number.
func addSaturating(counter *uint32, delta uint32) {
	sum := uint64(*counter) + uint64(delta)

	if sum > math.MaxUint32 {
		*counter = math.MaxUint32
		return
	}

	*counter = uint32(sum)
}
