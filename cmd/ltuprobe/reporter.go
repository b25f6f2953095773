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

package main

import (
	"fmt"
	"io"
)

// reporter renders probe Events to a writer as they arrive. It is the
// concrete Listener cmd/ltuprobe registers with itself.
type reporter struct {
	writer  io.Writer
	verbose bool
}

func newReporter(writer io.Writer, verbose bool) *reporter {
	return &reporter{writer: writer, verbose: verbose}
}

// ProcessEvent implements Listener.
func (this *reporter) ProcessEvent(evt *Event) {
	switch evt.Type() {
	case EvtScanStart:
		if this.verbose {
			fmt.Fprintln(this.writer, evt.msg)
		}

	case EvtFileResult:
		status := ""

		if evt.compressed {
			status += "  [already compressed]"
		}

		if evt.multimedia {
			status += "  [multimedia]"
		}

		if evt.executable {
			status += "  [executable]"
		}

		fmt.Fprintf(this.writer, "%-40s %10s  %6.3f bits/byte  %10d matches  %016x%s\n",
			evt.path, formatSize(float64(evt.size)), evt.codeLengthBps, evt.matchCount, evt.fingerprint, status)

	case EvtDirSummary:
		fmt.Fprintln(this.writer, evt.msg)

	case EvtScanEnd:
		if this.verbose {
			fmt.Fprintln(this.writer, evt.msg)
		}
	}
}

// formatSize renders a byte count using binary (KiB/MiB/GiB) units.
func formatSize(size float64) string {
	switch {
	case size >= float64(1<<30):
		return fmt.Sprintf("%.2f GiB", size/float64(1<<30))
	case size >= float64(1<<20):
		return fmt.Sprintf("%.2f MiB", size/float64(1<<20))
	case size >= float64(1<<10):
		return fmt.Sprintf("%.2f KiB", size/float64(1<<10))
	default:
		return fmt.Sprintf("%.0f B", size)
	}
}
