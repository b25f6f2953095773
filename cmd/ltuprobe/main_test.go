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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseArgsFlags(t *testing.T) {
	opts, status := parseArgs([]string{"-r", "-v", "--rank", "somefile"})

	if status != 0 {
		t.Fatalf("expected status 0, got %d", status)
	}

	if !opts.recursive || !opts.verbose || !opts.rankDir {
		t.Errorf("expected recursive, verbose, and rankDir flags set, got %+v", opts)
	}

	if len(opts.targets) != 1 || opts.targets[0] != "somefile" {
		t.Errorf("expected a single target 'somefile', got %v", opts.targets)
	}
}

func TestParseArgsUnknownFlag(t *testing.T) {
	_, status := parseArgs([]string{"--bogus"})

	if status != ErrInvalidParam {
		t.Errorf("expected ErrInvalidParam, got %d", status)
	}
}

func TestParseArgsHelp(t *testing.T) {
	opts, status := parseArgs([]string{"-h"})

	if opts != nil || status != 0 {
		t.Errorf("expected help to short-circuit with nil options and status 0, got opts=%v status=%d", opts, status)
	}
}

func TestProbeBytesDetectsCompressedMagic(t *testing.T) {
	pngHeader := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0}

	result := probeBytes(pngHeader)

	if !result.alreadyCompressed {
		t.Errorf("expected PNG header to be flagged as already compressed")
	}
}

func TestProbeBytesUniformDataLowEntropy(t *testing.T) {
	data := bytes.Repeat([]byte{0x42}, 1024)

	result := probeBytes(data)

	if result.codeLengthBps != 0.0 {
		t.Errorf("expected 0 bits/byte for constant data, got %v", result.codeLengthBps)
	}
}

func TestRunSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.bin")

	if err := os.WriteFile(path, bytes.Repeat([]byte{0xAB}, 512), 0o644); err != nil {
		t.Fatalf("failed to write sample file: %v", err)
	}

	var out bytes.Buffer
	opts := &options{targets: []string{path}}

	status := run(opts, &out)

	if status != 0 {
		t.Fatalf("expected status 0, got %d", status)
	}

	if !strings.Contains(out.String(), "sample.bin") {
		t.Errorf("expected report to mention sample.bin, got: %s", out.String())
	}
}

func TestRunDirectoryWithRank(t *testing.T) {
	dir := t.TempDir()

	if err := os.WriteFile(filepath.Join(dir, "low.bin"), bytes.Repeat([]byte{0x01}, 256), 0o644); err != nil {
		t.Fatalf("failed to write low.bin: %v", err)
	}

	highEntropy := make([]byte, 256)

	for i := range highEntropy {
		highEntropy[i] = byte(i)
	}

	if err := os.WriteFile(filepath.Join(dir, "high.bin"), highEntropy, 0o644); err != nil {
		t.Fatalf("failed to write high.bin: %v", err)
	}

	var out bytes.Buffer
	opts := &options{targets: []string{dir}, rankDir: true}

	status := run(opts, &out)

	if status != 0 {
		t.Fatalf("expected status 0, got %d", status)
	}

	report := out.String()
	lowIdx := strings.Index(report, "low.bin")
	highIdx := strings.Index(report, "high.bin")

	rankedSection := report[strings.Index(report, "ranked by compressibility"):]
	lowRankIdx := strings.Index(rankedSection, "low.bin")
	highRankIdx := strings.Index(rankedSection, "high.bin")

	if lowIdx == -1 || highIdx == -1 {
		t.Fatalf("expected both files reported, got: %s", report)
	}

	if lowRankIdx == -1 || highRankIdx == -1 || lowRankIdx > highRankIdx {
		t.Errorf("expected low.bin to rank ahead of high.bin in the compressibility ranking")
	}
}

func TestRunMissingTarget(t *testing.T) {
	var out bytes.Buffer
	opts := &options{targets: []string{"/nonexistent/path/that/should/not/exist"}}

	status := run(opts, &out)

	if status != ErrOpenFile {
		t.Errorf("expected ErrOpenFile for a missing target, got %d", status)
	}
}
