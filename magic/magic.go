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

// Package magic recognizes common container and compressed-data formats
// from their header bytes. It exists so a compressibility probe can
// cheaply flag "this is already compressed" before spending a pass on
// the histogram and match-estimate, which would otherwise report a
// misleadingly high entropy for data that is compressed, not random.
package magic

import "encoding/binary"

// Type identifies a recognized header magic value, or NoMagic if none
// matched.
type Type uint

const (
	NoMagic   Type = 0
	JPGMagic  Type = 0xFFD8FFE0
	GIFMagic  Type = 0x47494638
	PDFMagic  Type = 0x25504446
	ZIPMagic  Type = 0x504B0304 // Also matches jar & office docs.
	LZMAMagic Type = 0x377ABCAF
	PNGMagic  Type = 0x89504E47
	ELFMagic  Type = 0x7F454C46
	MacMagic32 Type = 0xFEEDFACE
	MacCigam32 Type = 0xCEFAEDFE
	MacMagic64 Type = 0xFEEDFACF
	MacCigam64 Type = 0xCFFAEDFE
	ZSTDMagic   Type = 0x28B52FFD
	BrotliMagic Type = 0x81CFB2CE
	RIFFMagic   Type = 0x52494646 // WAV, AVI, WEBP.
	CABMagic    Type = 0x4D534346
	FLACMagic   Type = 0x664C6143
	XZMagic     Type = 0xFD377A58
	RARMagic    Type = 0x52617221
	KNZMagic    Type = 0x4B414E5A

	BZip2Magic  Type = 0x425A68
	MP3ID3Magic Type = 0x494433

	GZIPMagic Type = 0x1F8B
	BMPMagic  Type = 0x424D
	WinMagic  Type = 0x4D5A
	PBMMagic  Type = 0x5034 // Binary variant only.
	PGMMagic  Type = 0x5035 // Binary variant only.
	PPMMagic  Type = 0x5036 // Binary variant only.
)

var keys32 = [...]Type{
	GIFMagic, PDFMagic, ZIPMagic, LZMAMagic, PNGMagic,
	ELFMagic, MacMagic32, MacCigam32, MacMagic64, MacCigam64,
	ZSTDMagic, BrotliMagic, CABMagic, RIFFMagic, FLACMagic,
	XZMagic, KNZMagic, RARMagic,
}

var keys16 = [...]Type{
	GZIPMagic, BMPMagic, WinMagic,
}

// DetectType checks the first bytes of src against a table of common
// magic values and returns the one that matched, or NoMagic.
func DetectType(src []byte) Type {
	if len(src) < 4 {
		return NoMagic
	}

	key := Type(binary.BigEndian.Uint32(src))

	if key&^Type(0x0F) == JPGMagic {
		return key
	}

	if (key>>8) == BZip2Magic || (key>>8) == MP3ID3Magic {
		return key >> 8
	}

	for _, k := range keys32 {
		if key == k {
			return key
		}
	}

	key16 := key >> 16

	for _, k := range keys16 {
		if key16 == k {
			return key16
		}
	}

	if key16 == PBMMagic || key16 == PGMMagic || key16 == PPMMagic {
		subkey := (key >> 8) & 0xFF

		if subkey == 0x07 || subkey == 0x0A || subkey == 0x0D || subkey == 0x20 {
			return key16
		}
	}

	return NoMagic
}

// IsLikelyCompressed reports whether t corresponds to a data format
// that is already compressed, making a fresh compressibility estimate
// largely uninformative.
func IsLikelyCompressed(t Type) bool {
	switch t {
	case JPGMagic, GIFMagic, PNGMagic, LZMAMagic, ZSTDMagic, BrotliMagic,
		CABMagic, ZIPMagic, GZIPMagic, BZip2Magic, FLACMagic, MP3ID3Magic,
		XZMagic, KNZMagic, RARMagic:
		return true
	default:
		return false
	}
}

// IsMultimedia reports whether t corresponds to a common multimedia
// container, which is typically already compressed in its payload even
// when the container format itself is not in IsLikelyCompressed's list.
func IsMultimedia(t Type) bool {
	switch t {
	case JPGMagic, GIFMagic, PNGMagic, RIFFMagic, FLACMagic, MP3ID3Magic,
		BMPMagic, PBMMagic, PGMMagic, PPMMagic:
		return true
	default:
		return false
	}
}

// IsExecutable reports whether t corresponds to a common native
// executable or object-file format.
func IsExecutable(t Type) bool {
	switch t {
	case ELFMagic, WinMagic, MacMagic32, MacCigam32, MacMagic64, MacCigam64:
		return true
	default:
		return false
	}
}
