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

package magic

import "testing"

func TestDetectTypeKnownMagics(t *testing.T) {
	cases := []struct {
		name string
		hdr  []byte
		want Type
	}{
		{"png", []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, PNGMagic},
		{"gzip", []byte{0x1F, 0x8B, 0x08, 0x00}, GZIPMagic},
		{"zip", []byte{0x50, 0x4B, 0x03, 0x04}, ZIPMagic},
		{"zstd", []byte{0x28, 0xB5, 0x2F, 0xFD}, ZSTDMagic},
		{"elf", []byte{0x7F, 0x45, 0x4C, 0x46}, ELFMagic},
		{"jpg", []byte{0xFF, 0xD8, 0xFF, 0xE0}, JPGMagic},
		{"bzip2", []byte{0x42, 0x5A, 0x68, 0x39}, BZip2Magic},
	}

	for _, c := range cases {
		if got := DetectType(c.hdr); got != c.want {
			t.Errorf("%s: expected %#x, got %#x", c.name, uint(c.want), uint(got))
		}
	}
}

func TestDetectTypeUnknown(t *testing.T) {
	if got := DetectType([]byte{0, 0, 0, 0}); got != NoMagic {
		t.Errorf("expected NoMagic, got %#x", uint(got))
	}
}

func TestDetectTypeTooShort(t *testing.T) {
	if got := DetectType([]byte{0x89, 0x50}); got != NoMagic {
		t.Errorf("expected NoMagic for short input, got %#x", uint(got))
	}
}

func TestIsLikelyCompressed(t *testing.T) {
	if !IsLikelyCompressed(PNGMagic) {
		t.Errorf("expected PNG to be flagged as already compressed")
	}

	if IsLikelyCompressed(WinMagic) {
		t.Errorf("expected a Windows PE header not to be flagged as already compressed")
	}
}

func TestIsMultimedia(t *testing.T) {
	if !IsMultimedia(RIFFMagic) {
		t.Errorf("expected RIFF to be flagged as multimedia")
	}

	if IsMultimedia(ZIPMagic) {
		t.Errorf("expected ZIP not to be flagged as multimedia")
	}
}

func TestIsExecutable(t *testing.T) {
	if !IsExecutable(ELFMagic) {
		t.Errorf("expected ELF to be flagged as executable")
	}

	if IsExecutable(PNGMagic) {
		t.Errorf("expected PNG not to be flagged as executable")
	}
}
