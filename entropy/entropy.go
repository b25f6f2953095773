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

// Package entropy computes the ideal Shannon code length of a byte
// histogram: the average number of bits an optimal entropy coder would
// spend per symbol, given the observed frequencies. It does no actual
// entropy coding; it only tells the caller how compressible a stream
// is likely to be at this stage of a transform pipeline.
package entropy

import (
	"math"

	"github.com/flanglet/ltu-go/histogram"
)

// CodeLength returns the ideal Shannon code length, in bits per symbol,
// of the distribution described by hist and total. total must equal the
// sum of hist's counters; callers that already track a running total
// (as they must, to feed histogram.Build incrementally) pass it in
// directly rather than have CodeLength recompute it with a second pass.
//
// CodeLength returns 0.0 when total is 0. The result otherwise falls in
// [0, 8] for a byte alphabet: 0 when a single value accounts for the
// entire input, 8 when all 256 values are equally likely.
//
// This favors double-precision accuracy over throughput: with only 256
// counters to visit, the cost of computing log2 in full float64
// precision is negligible next to what histogram.Build spent producing
// the counts in the first place.
func CodeLength(hist *histogram.Histogram, total uint64) float64 {
	if total == 0 {
		return 0.0
	}

	allNonZero := true

	for _, c := range hist.Counters {
		if c == 0 {
			allNonZero = false
			break
		}
	}

	if allNonZero {
		return codeLengthFast(hist, float64(total))
	}

	return codeLengthSlow(hist, float64(total))
}

// codeLengthFast assumes every counter is nonzero, so it never needs to
// skip a term. It accumulates into four independent partial sums for
// the same reason histogram.Build uses four independent sub-histograms:
// breaking the loop-carried dependency chain lets more floating-point
// additions be in flight at once.
func codeLengthFast(hist *histogram.Histogram, total float64) float64 {
	var e0, e1, e2, e3 float64

	c := &hist.Counters

	for i := 0; i < histogram.NumValues; i += 4 {
		p0 := float64(c[i]) / total
		p1 := float64(c[i+1]) / total
		p2 := float64(c[i+2]) / total
		p3 := float64(c[i+3]) / total

		e0 -= p0 * math.Log2(p0)
		e1 -= p1 * math.Log2(p1)
		e2 -= p2 * math.Log2(p2)
		e3 -= p3 * math.Log2(p3)
	}

	return e0 + e1 + e2 + e3
}

// codeLengthSlow handles the general case, where some counters may be
// zero. A zero-probability symbol contributes nothing to the sum (and
// would otherwise hand log2 a zero argument), so it is skipped outright
// rather than special-cased inside the hot loop.
func codeLengthSlow(hist *histogram.Histogram, total float64) float64 {
	var e float64

	for _, count := range hist.Counters {
		if count == 0 {
			continue
		}

		p := float64(count) / total
		e -= p * math.Log2(p)
	}

	return e
}
