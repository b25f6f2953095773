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

// Command ltuprobe reports how compressible a file, a directory tree,
// or stdin is likely to be, without compressing anything: for each
// input it prints the ideal Shannon code length (bits/byte) and an
// estimated LZ77 match count, and flags inputs whose header already
// matches a known compressed format.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/flanglet/ltu-go/entropy"
	khash "github.com/flanglet/ltu-go/hash"
	"github.com/flanglet/ltu-go/histogram"
	"github.com/flanglet/ltu-go/internal"
	"github.com/flanglet/ltu-go/magic"
	"github.com/flanglet/ltu-go/matchest"
)

const (
	appHeader = "ltuprobe (c) Frederic Langlet"

	argRecursive   = "--recursive"
	argVerbose     = "--verbose"
	argDotFiles    = "--dot-files"
	argFollowLinks = "--follow-links"
	argRankDir     = "--rank"
	argHelp        = "--help"
)

var cmdLineArgs = map[string]string{
	"-r": argRecursive,
	"-v": argVerbose,
	"-h": argHelp,
}

type options struct {
	recursive   bool
	verbose     bool
	dotFiles    bool
	followLinks bool
	rankDir     bool
	targets     []string
}

func main() {
	opts, status := parseArgs(os.Args[1:])

	if status != 0 {
		os.Exit(status)
	}

	if opts == nil {
		os.Exit(0)
	}

	os.Exit(runGuarded(opts, os.Stdout))
}

// runGuarded wraps run with a panic recovery so a failure probeBytes
// can't anticipate (an error from BuildFromReader, say) exits with
// ErrUnknown instead of a bare stack trace reaching the shell.
func runGuarded(opts *options, out io.Writer) (status int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "internal error: %v\n", r)
			status = ErrUnknown
		}
	}()

	return run(opts, out)
}

func parseArgs(args []string) (*options, int) {
	opts := &options{}

	for _, arg := range args {
		if canonical, ok := cmdLineArgs[arg]; ok {
			arg = canonical
		}

		switch {
		case arg == argHelp:
			printHelp()
			return nil, 0

		case arg == argRecursive:
			opts.recursive = true

		case arg == argVerbose:
			opts.verbose = true

		case arg == argDotFiles:
			opts.dotFiles = true

		case arg == argFollowLinks:
			opts.followLinks = true

		case arg == argRankDir:
			opts.rankDir = true

		case strings.HasPrefix(arg, "-"):
			fmt.Fprintf(os.Stderr, "Unknown argument: %s\n", arg)
			return nil, ErrInvalidParam

		default:
			opts.targets = append(opts.targets, arg)
		}
	}

	return opts, 0
}

func printHelp() {
	fmt.Println(appHeader)
	fmt.Println("Usage: ltuprobe [options] [file|dir ...]")
	fmt.Println("  -r, --recursive     descend into subdirectories")
	fmt.Println("  -v, --verbose       print scan phase markers")
	fmt.Println("      --dot-files     include dot-files")
	fmt.Println("      --follow-links  follow symlinks")
	fmt.Println("      --rank          sort directory results by compressibility")
	fmt.Println("With no file argument, reads from stdin.")
}

func run(opts *options, out io.Writer) int {
	if opts.rankDir && len(opts.targets) == 0 {
		fmt.Fprintln(os.Stderr, "--rank requires at least one file or directory target")
		return ErrMissingParam
	}

	rep := newReporter(out, opts.verbose)

	if len(opts.targets) == 0 {
		rep.ProcessEvent(NewEventFromString(EvtScanStart, "scanning stdin"))
		code := probeStdin(rep)
		rep.ProcessEvent(NewEventFromString(EvtScanEnd, "done"))
		return code
	}

	rep.ProcessEvent(NewEventFromString(EvtScanStart, fmt.Sprintf("scanning %d target(s)", len(opts.targets))))

	var files []internal.FileData

	for _, target := range opts.targets {
		found, err := internal.WalkFiles(target, opts.recursive, !opts.followLinks, !opts.dotFiles)

		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to scan %s: %v\n", target, err)
			return ErrOpenFile
		}

		files = append(files, found...)
	}

	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "no probeable files found in target(s)")
		return ErrInvalidFile
	}

	for i := range files {
		data, err := os.ReadFile(files[i].FullPath)

		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", files[i].FullPath, err)
			return ErrReadFile
		}

		result := probeBytes(data)
		files[i].CodeLengthBps = result.codeLengthBps

		rep.ProcessEvent(NewEvent(EvtFileResult, files[i].FullPath, files[i].Size,
			result.codeLengthBps, result.matchCount, result.alreadyCompressed,
			result.multimedia, result.executable, result.contentFingerprint))
	}

	if opts.rankDir {
		sort.Sort(internal.NewFileCompare(files, true))

		var sb strings.Builder
		sb.WriteString("ranked by compressibility (most compressible first):\n")

		for _, f := range files {
			fmt.Fprintf(&sb, "  %-40s %6.3f bits/byte\n", f.FullPath, f.CodeLengthBps)
		}

		rep.ProcessEvent(NewEventFromString(EvtDirSummary, sb.String()))
	}

	rep.ProcessEvent(NewEventFromString(EvtScanEnd, "done"))
	return 0
}

func probeStdin(rep Listener) int {
	data, err := io.ReadAll(os.Stdin)

	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read stdin: %v\n", err)
		return ErrReadFile
	}

	result := probeBytes(data)
	rep.ProcessEvent(NewEvent(EvtFileResult, "<stdin>", int64(len(data)),
		result.codeLengthBps, result.matchCount, result.alreadyCompressed,
		result.multimedia, result.executable, result.contentFingerprint))

	return 0
}

type probeResult struct {
	codeLengthBps      float64
	matchCount         int
	alreadyCompressed  bool
	multimedia         bool
	executable         bool
	contentFingerprint uint64
}

func probeBytes(data []byte) probeResult {
	var h histogram.Histogram

	// Fed through the streaming accumulator rather than a direct Build
	// call: probeBytes is the one call site exercising the chunked path
	// end to end, even though the whole file already sits in memory here.
	if err := histogram.BuildFromReader(bytes.NewReader(data), &h); err != nil {
		panic(err) // bytes.Reader never returns a non-EOF error.
	}

	total := h.Sum()
	codeLength := entropy.CodeLength(&h, total)
	matches := matchest.EstimateNumLZMatches(data)

	magicType := magic.DetectType(data)

	return probeResult{
		codeLengthBps:      codeLength,
		matchCount:         matches,
		alreadyCompressed:  magic.IsLikelyCompressed(magicType),
		multimedia:         magic.IsMultimedia(magicType),
		executable:         magic.IsExecutable(magicType),
		contentFingerprint: khash.NewXXHash64(0).Sum64(data),
	}
}
