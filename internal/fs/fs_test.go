// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package fs

import (
	"context"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"gopkg.microglot.org/formula.go/internal/exc"
	"gopkg.microglot.org/formula.go/internal/idl"
	"gopkg.microglot.org/formula.go/internal/iter"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"sheets/a.formula": {Data: []byte("=A1+1\n")},
		"sheets/b.csv":     {Data: []byte("1,=SUM(A1:A2)\n")},
		"sheets/c.txt":     {Data: []byte("ignored")},
		"latin1/d.xlf":     {Data: []byte("=\"caf\xe9\"")},
		"bom/e.formula":    {Data: []byte("\xef\xbb\xbf=B2")},
		"empty/notes.md":   {Data: []byte("# nothing")},
	}
}

func readAll(t *testing.T, f idl.File) string {
	t.Helper()
	ctx := context.Background()
	body, err := f.Body(ctx)
	require.NoError(t, err)
	points, err := iter.Collect(ctx, iter.NewUnicodeFileBody(body))
	require.NoError(t, err)
	rs := make([]rune, 0, len(points))
	for _, p := range points {
		rs = append(rs, rune(p))
	}
	return string(rs)
}

func TestKindOf(t *testing.T) {
	t.Parallel()
	require.Equal(t, idl.FileKindFormula, KindOf("x/y.formula"))
	require.Equal(t, idl.FileKindFormula, KindOf("y.XLF"))
	require.Equal(t, idl.FileKindCSV, KindOf("y.csv"))
	require.Equal(t, idl.FileKindNone, KindOf("y.txt"))
}

func TestFileSystemLocal(t *testing.T) {
	t.Parallel()
	mfs := testFS()
	factory := WithOptionFSFactory(func(string) fs.FS { return mfs })
	ctx := context.Background()

	t.Run("directory", func(t *testing.T) {
		t.Parallel()
		local, err := NewFileSystemLocal("/", factory)
		require.NoError(t, err)
		files, err := local.Open(ctx, "sheets")
		require.NoError(t, err)
		require.Len(t, files, 2)
		require.Equal(t, idl.FileKindFormula, files[0].Kind(ctx))
		require.Equal(t, idl.FileKindCSV, files[1].Kind(ctx))
		require.Equal(t, "=A1+1\n", readAll(t, files[0]))
	})

	t.Run("single file", func(t *testing.T) {
		t.Parallel()
		local, err := NewFileSystemLocal("/", factory)
		require.NoError(t, err)
		files, err := local.Open(ctx, "file:///sheets/b.csv")
		require.NoError(t, err)
		require.Len(t, files, 1)
		require.Equal(t, "1,=SUM(A1:A2)\n", readAll(t, files[0]))
	})

	t.Run("encoding", func(t *testing.T) {
		t.Parallel()
		local, err := NewFileSystemLocal("/", factory, WithOptionEncoding("windows-1252"))
		require.NoError(t, err)
		files, err := local.Open(ctx, "latin1/d.xlf")
		require.NoError(t, err)
		require.Equal(t, "=\"café\"", readAll(t, files[0]))
	})

	t.Run("byte order mark", func(t *testing.T) {
		t.Parallel()
		local, err := NewFileSystemLocal("/", factory)
		require.NoError(t, err)
		files, err := local.Open(ctx, "bom/e.formula")
		require.NoError(t, err)
		require.Equal(t, "=B2", readAll(t, files[0]))
	})

	t.Run("unknown encoding", func(t *testing.T) {
		t.Parallel()
		_, err := NewFileSystemLocal("/", factory, WithOptionEncoding("not-a-charset"))
		require.Error(t, err)
		require.Equal(t, exc.CodeUnsupportedFileFormat, err.(exc.Exception).Code())
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		local, err := NewFileSystemLocal("/", factory)
		require.NoError(t, err)
		_, err = local.Open(ctx, "nope.formula")
		require.Error(t, err)
		require.Equal(t, exc.CodeFileNotFound, err.(exc.Exception).Code())
	})

	t.Run("empty directory", func(t *testing.T) {
		t.Parallel()
		local, err := NewFileSystemLocal("/", factory)
		require.NoError(t, err)
		_, err = local.Open(ctx, "empty")
		require.Error(t, err)
		require.Equal(t, exc.CodeFileNotFound, err.(exc.Exception).Code())
	})

	t.Run("multi", func(t *testing.T) {
		t.Parallel()
		other := fstest.MapFS{"only/f.formula": {Data: []byte("=C3")}}
		first, err := NewFileSystemLocal("/", factory)
		require.NoError(t, err)
		second, err := NewFileSystemLocal("/", WithOptionFSFactory(func(string) fs.FS { return other }))
		require.NoError(t, err)
		multi := FileSystemMulti{first, second}
		files, err := multi.Open(ctx, "only/f.formula")
		require.NoError(t, err)
		require.Equal(t, "=C3", readAll(t, files[0]))
		_, err = multi.Open(ctx, "missing.formula")
		require.Error(t, err)
		require.Error(t, multi.Write(ctx, "x.formula", "=A1"))
	})
}

func TestNewFileString(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := NewFileString("inline.csv", "=A1", idl.FileKindNone)
	require.Equal(t, idl.FileKindCSV, f.Kind(ctx))
	require.Equal(t, "inline.csv", f.Path(ctx))
	require.Equal(t, "=A1", readAll(t, f))
}
