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
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestWalkFilesSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")

	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	files, err := WalkFiles(path, false, false, false)

	if err != nil {
		t.Fatalf("WalkFiles returned error: %v", err)
	}

	if len(files) != 1 || files[0].FullPath != path {
		t.Errorf("expected single file %s, got %v", path, files)
	}
}

func TestWalkFilesDirectoryNonRecursive(t *testing.T) {
	dir := t.TempDir()

	names := []string{"one.txt", "two.txt", ".hidden"}

	for _, n := range names {
		if err := os.WriteFile(filepath.Join(dir, n), []byte(n), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", n, err)
		}
	}

	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatalf("failed to create subdir: %v", err)
	}

	files, err := WalkFiles(dir, false, false, true)

	if err != nil {
		t.Fatalf("WalkFiles returned error: %v", err)
	}

	if len(files) != 2 {
		t.Errorf("expected 2 non-dot files, got %d: %v", len(files), files)
	}
}

func TestWalkFilesRecursive(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")

	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("failed to create subdir: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "top.txt"), []byte("top"), 0o644); err != nil {
		t.Fatalf("failed to write top.txt: %v", err)
	}

	if err := os.WriteFile(filepath.Join(sub, "nested.txt"), []byte("nested"), 0o644); err != nil {
		t.Fatalf("failed to write nested.txt: %v", err)
	}

	files, err := WalkFiles(dir, true, false, false)

	if err != nil {
		t.Fatalf("WalkFiles returned error: %v", err)
	}

	if len(files) != 2 {
		t.Errorf("expected 2 files found recursively, got %d: %v", len(files), files)
	}
}

func TestFileCompareSortByCompressibility(t *testing.T) {
	data := []FileData{
		{FullPath: "/dir/b", Path: "/dir/", Name: "b", CodeLengthBps: 6.0},
		{FullPath: "/dir/a", Path: "/dir/", Name: "a", CodeLengthBps: 1.0},
		{FullPath: "/dir/c", Path: "/dir/", Name: "c", CodeLengthBps: 3.5},
	}

	sort.Sort(NewFileCompare(data, true))

	want := []string{"/dir/a", "/dir/c", "/dir/b"}

	for i, w := range want {
		if data[i].FullPath != w {
			t.Errorf("index %d: expected %s, got %s", i, w, data[i].FullPath)
		}
	}
}

func TestFileCompareSortByPath(t *testing.T) {
	data := []FileData{
		{FullPath: "/dir/z"},
		{FullPath: "/dir/a"},
	}

	sort.Sort(NewFileCompare(data, false))

	if data[0].FullPath != "/dir/a" || data[1].FullPath != "/dir/z" {
		t.Errorf("expected lexical order, got %v", data)
	}
}
