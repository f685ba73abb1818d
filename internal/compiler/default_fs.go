// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package compiler

import (
	"path/filepath"

	"gopkg.microglot.org/formula.go/internal/fs"
	"gopkg.microglot.org/formula.go/internal/idl"
)

// NewDefaultFS searches the working directory, then FORMULA_PATH or the
// platform data directories, then the file system root so that absolute
// paths resolve.
func NewDefaultFS(lookup func(string) (string, bool), options ...fs.FileSystemLocalOption) (idl.FileSystem, error) {
	roots := []string{"."}
	if v, ok := lookup(envPath); ok && v != "" {
		roots = append(roots, filepath.SplitList(v)...)
	} else {
		roots = append(roots, getDefaultRoots(lookup)...)
	}
	roots = append(roots, string(filepath.Separator))
	return NewRootsFS(roots, options...)
}

// NewRootsFS searches each of roots in order.
func NewRootsFS(roots []string, options ...fs.FileSystemLocalOption) (idl.FileSystem, error) {
	f := make(fs.FileSystemMulti, 0, len(roots))
	for _, root := range roots {
		absRoot, errAbs := filepath.Abs(root)
		if errAbs != nil {
			return nil, errAbs
		}
		rf, err := fs.NewFileSystemLocal(absRoot, options...)
		if err != nil {
			return nil, err
		}
		f = append(f, rf)
	}
	return f, nil
}
