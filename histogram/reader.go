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

import "io"

// defaultChunkSize is the read buffer size used by BuildFromReader.
// Chosen to amortize syscall overhead without holding an unreasonable
// amount of the input in memory at once.
const defaultChunkSize = 1 << 20

// BuildFromReader accumulates the byte histogram of everything r
// produces into out, one chunk at a time, without requiring the whole
// stream to fit in memory. It is the streaming counterpart of Build:
// each chunk is fed through Build in turn, so the accumulation
// contract (adds to out, never zeroes it) is identical.
func BuildFromReader(r io.Reader, out *Histogram) error {
	buf := make([]byte, defaultChunkSize)

	for {
		n, err := r.Read(buf)

		if n > 0 {
			Build(buf[:n], out)
		}

		if err == io.EOF {
			return nil
		}

		if err != nil {
			return err
		}

		if n == 0 {
			return nil
		}
	}
}
