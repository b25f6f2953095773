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

package internal

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var pathSeparator = string([]byte{os.PathSeparator})

// FileData encapsulates a scanned file's path and its estimated
// compressibility, expressed as ideal Shannon code length in bits per
// symbol (lower means more compressible).
type FileData struct {
	FullPath      string
	Path          string
	Name          string
	Size          int64
	CodeLengthBps float64
}

// NewFileData creates a FileData from a file path, its size, and its
// already-computed code length.
func NewFileData(fullPath string, size int64, codeLengthBps float64) *FileData {
	this := &FileData{}
	this.FullPath = fullPath
	this.Size = size
	this.CodeLengthBps = codeLengthBps
	this.Path, this.Name = filepath.Split(fullPath)
	return this
}

// FileCompare sorts FileData either by path or, within each parent
// directory, by estimated compressibility, most-compressible (lowest
// code length) first.
type FileCompare struct {
	data               []FileData
	sortByCompressibility bool
}

// NewFileCompare creates a sort.Interface over data.
func NewFileCompare(data []FileData, sortByCompressibility bool) *FileCompare {
	this := &FileCompare{}
	this.data = data
	this.sortByCompressibility = sortByCompressibility
	return this
}

// Len returns the number of entries being sorted.
func (this FileCompare) Len() int {
	return len(this.data)
}

// Swap swaps two entries.
func (this FileCompare) Swap(i, j int) {
	this.data[i], this.data[j] = this.data[j], this.data[i]
}

// Less orders by lexical path, or, when sortByCompressibility is set,
// by parent directory first and then by ascending code length so the
// most compressible files in a directory sort to the front.
func (this FileCompare) Less(i, j int) bool {
	if !this.sortByCompressibility {
		return strings.Compare(this.data[i].FullPath, this.data[j].FullPath) < 0
	}

	res := strings.Compare(this.data[i].Path, this.data[j].Path)

	if res != 0 {
		return res < 0
	}

	return this.data[i].CodeLengthBps < this.data[j].CodeLengthBps
}

// WalkFiles lists the regular files under target, descending into
// subdirectories when isRecursive is set, optionally skipping symlinks
// and dot-files. It does not compute compressibility; callers populate
// CodeLengthBps after reading each file's contents.
func WalkFiles(target string, isRecursive, ignoreLinks, ignoreDotFiles bool) ([]FileData, error) {
	var fileList []FileData

	fi, err := os.Stat(target)

	if err != nil {
		return fileList, err
	}

	if ignoreDotFiles && isDotFile(target) {
		return fileList, nil
	}

	if fi.Mode().IsRegular() || (!ignoreLinks && fi.Mode()&fs.ModeSymlink != 0) {
		fileList = append(fileList, *NewFileData(target, fi.Size(), 0))
		return fileList, nil
	}

	if !isRecursive {
		return walkSingleDir(target, ignoreLinks, ignoreDotFiles)
	}

	if target[len(target)-1] != os.PathSeparator {
		target = target + pathSeparator
	}

	err = filepath.Walk(target, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if ignoreDotFiles && isDotFile(path) {
			return nil
		}

		if info.Mode().IsRegular() || (!ignoreLinks && info.Mode()&fs.ModeSymlink != 0) {
			fileList = append(fileList, *NewFileData(path, info.Size(), 0))
		}

		return nil
	})

	return fileList, err
}

func walkSingleDir(target string, ignoreLinks, ignoreDotFiles bool) ([]FileData, error) {
	var fileList []FileData

	entries, err := os.ReadDir(target)

	if err != nil {
		return fileList, err
	}

	for _, de := range entries {
		if !de.Type().IsRegular() && de.Type()&fs.ModeSymlink == 0 {
			continue
		}

		if ignoreDotFiles && isDotFile(de.Name()) {
			continue
		}

		info, err := de.Info()

		if err != nil {
			return fileList, err
		}

		if info.Mode().IsRegular() || (!ignoreLinks && info.Mode()&fs.ModeSymlink != 0) {
			fileList = append(fileList, *NewFileData(filepath.Join(target, de.Name()), info.Size(), 0))
		}
	}

	return fileList, nil
}

func isDotFile(path string) bool {
	shortName := path

	if idx := strings.LastIndex(shortName, pathSeparator); idx > 0 {
		shortName = shortName[idx+1:]
	}

	return len(shortName) > 0 && shortName[0] == '.'
}
