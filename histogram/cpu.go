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

package histogram

import "golang.org/x/sys/cpu"

// hasWideAccumPath reports whether Build should use the eight-way
// accumulator path instead of the four-way reference path.
//
// cpu.X86.HasAVX2 is populated once, at process init, by the cpu
// package itself; reading it concurrently from multiple goroutines is
// safe by construction (idempotent computation, no writes after init),
// which is exactly the "cached CPU-feature-detection result" the
// design calls for. There is no first-use race to guard here: unlike a
// lazily-computed cache, cpu.X86 is fully initialized before main runs.
func hasWideAccumPath() bool {
	return cpu.X86.HasAVX2
}
