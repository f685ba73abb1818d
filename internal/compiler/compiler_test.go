// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package compiler

import (
	"context"
	"errors"
	"io"
	iofs "io/fs"
	"log/slog"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"gopkg.microglot.org/formula.go/internal/ast"
	"gopkg.microglot.org/formula.go/internal/exc"
	"gopkg.microglot.org/formula.go/internal/fs"
	"gopkg.microglot.org/formula.go/internal/idl"
)

func testCompiler(t *testing.T, files fstest.MapFS, env map[string]string, opts ...Option) idl.Compiler {
	t.Helper()
	local, err := fs.NewFileSystemLocal("/", fs.WithOptionFSFactory(func(string) iofs.FS { return files }))
	require.NoError(t, err)
	opts = append([]Option{
		OptionWithFS(local),
		OptionWithLookupEnv(func(k string) (string, bool) {
			v, ok := env[k]
			return v, ok
		}),
	}, opts...)
	c, err := New(opts...)
	require.NoError(t, err)
	return c
}

func TestCompile(t *testing.T) {
	t.Parallel()
	files := fstest.MapFS{
		"sheets/a.formula": {Data: []byte("=A1+1\n\n# comment\n  =SUM(A1:A3)\n=BAD(\n")},
		"sheets/b.csv":     {Data: []byte("name,value\nx,=B1*2\ny,\"=IF(A1>0,1,2)\"\n")},
	}
	c := testCompiler(t, files, nil)
	resp, err := c.Compile(context.Background(), &idl.CompileRequest{
		Files:    []string{"sheets/a.formula", "sheets/b.csv", "=PI()"},
		Formulas: []string{"=1+1"},
	})

	var multi MultiException
	require.True(t, errors.As(err, &multi), err)
	require.Len(t, multi, 1)
	require.Equal(t, exc.CodeTrailingInput, multi[0].Code())
	require.Equal(t, "/sheets/a.formula", multi[0].Location().URI)
	require.Equal(t, int32(5), multi[0].Location().Line)

	require.NotNil(t, resp)
	require.Len(t, resp.Sheets, 3)

	a := resp.Sheets[0]
	require.Equal(t, "/sheets/a.formula", a.URI)
	require.Len(t, a.Formulas, 2)
	require.Equal(t, "=A1+1", a.Formulas[0].Source)
	require.Equal(t, idl.Location{Line: 1, Column: 1}, a.Formulas[0].Location)
	require.Equal(t, "=SUM(A1:A3)", a.Formulas[1].Source)
	require.Equal(t, idl.Location{Line: 4, Column: 3}, a.Formulas[1].Location)
	require.IsType(t, &ast.FunctionApplication{}, a.Formulas[1].Expression)

	b := resp.Sheets[1]
	require.Equal(t, "/sheets/b.csv", b.URI)
	require.Len(t, b.Formulas, 2)
	require.Equal(t, "B2", b.Formulas[0].Cell)
	require.Equal(t, "=B1*2", b.Formulas[0].Source)
	require.Equal(t, idl.Location{Line: 2, Column: 3}, b.Formulas[0].Location)
	require.Equal(t, "B3", b.Formulas[1].Cell)
	require.Equal(t, "=IF(A1>0,1,2)", b.Formulas[1].Source)

	inline := resp.Sheets[2]
	require.Equal(t, InlineURI, inline.URI)
	require.Len(t, inline.Formulas, 2)
	require.Equal(t, "=1+1", inline.Formulas[0].Source)
	require.Equal(t, "=PI()", inline.Formulas[1].Source)
}

func TestCompileDirectory(t *testing.T) {
	t.Parallel()
	files := fstest.MapFS{
		"sheets/a.formula": {Data: []byte("=A1\n")},
		"sheets/b.xlf":     {Data: []byte("=B1\n=B2\n")},
		"sheets/notes.txt": {Data: []byte("=C1\n")},
	}
	c := testCompiler(t, files, nil)
	resp, err := c.Compile(context.Background(), &idl.CompileRequest{Files: []string{"sheets"}})
	require.NoError(t, err)
	require.Len(t, resp.Sheets, 2)
	require.Len(t, resp.Sheets[0].Formulas, 1)
	require.Len(t, resp.Sheets[1].Formulas, 2)
}

func TestCompileDuplicateTargets(t *testing.T) {
	t.Parallel()
	files := fstest.MapFS{"a.formula": {Data: []byte("=A1\n")}}
	c := testCompiler(t, files, nil)
	resp, err := c.Compile(context.Background(), &idl.CompileRequest{Files: []string{"a.formula", "file:///a.formula"}})
	require.NoError(t, err)
	require.Len(t, resp.Sheets, 1)
}

func TestCompileMissingFile(t *testing.T) {
	t.Parallel()
	c := testCompiler(t, fstest.MapFS{}, nil)
	resp, err := c.Compile(context.Background(), &idl.CompileRequest{Files: []string{"missing.formula"}})
	require.Nil(t, resp)
	require.Error(t, err)
	require.Equal(t, exc.CodeFileNotFound, err.(exc.Exception).Code())
}

func TestCompileMaxDepth(t *testing.T) {
	t.Parallel()
	formulas := []string{"=((1))", "=((((1))))"}

	c := testCompiler(t, fstest.MapFS{}, map[string]string{envMaxDepth: "3"})
	resp, err := c.Compile(context.Background(), &idl.CompileRequest{Formulas: formulas})
	var multi MultiException
	require.True(t, errors.As(err, &multi), err)
	require.Len(t, multi, 1)
	require.Equal(t, exc.CodeNestingTooDeep, multi[0].Code())
	require.Len(t, resp.Sheets[0].Formulas, 1)

	c = testCompiler(t, fstest.MapFS{}, map[string]string{envMaxDepth: "3"}, OptionWithMaxDepth(10))
	_, err = c.Compile(context.Background(), &idl.CompileRequest{Formulas: formulas})
	require.NoError(t, err)
}

func TestNewOptions(t *testing.T) {
	t.Parallel()
	lookup := func(v string) func(string) (string, bool) {
		return func(k string) (string, bool) {
			if k == envMaxDepth {
				return v, true
			}
			return "", false
		}
	}
	_, err := New(OptionWithFS(fs.FileSystemMulti{}), OptionWithLookupEnv(lookup("deep")))
	require.Error(t, err)
	_, err = New(OptionWithFS(fs.FileSystemMulti{}), OptionWithLookupEnv(lookup("0")))
	require.Error(t, err)
	_, err = New(OptionWithFS(fs.FileSystemMulti{}), OptionWithMaxDepth(-1))
	require.Error(t, err)
	_, err = New(OptionWithFS(fs.FileSystemMulti{}), OptionWithLookupEnv(lookup("12")))
	require.NoError(t, err)
}

func TestCompileCancelled(t *testing.T) {
	t.Parallel()
	files := fstest.MapFS{"a.formula": {Data: []byte("=A1\n")}}
	c := testCompiler(t, files, nil, OptionWithMaxConcurrency(1))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Compile(ctx, &idl.CompileRequest{Files: []string{"a.formula"}})
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewDefaultFS(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	f, err := NewDefaultFS(func(k string) (string, bool) {
		if k == envPath {
			return dir, true
		}
		return "", false
	})
	require.NoError(t, err)
	multi, ok := f.(fs.FileSystemMulti)
	require.True(t, ok)
	require.Len(t, multi, 3)
}

type emptySubCompiler struct{}

func (emptySubCompiler) CompileFile(ctx context.Context, r exc.Reporter, file idl.File) (*idl.Sheet, error) {
	return nil, nil
}

func TestCompileSkippedSheet(t *testing.T) {
	t.Parallel()
	files := fstest.MapFS{
		"a.formula": {Data: []byte("=A1\n")},
		"b.csv":     {Data: []byte("x,=B1\n")},
	}
	c := testCompiler(t, files, nil, OptionWithLogger(slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	c.(*compiler).SubCompilers[idl.FileKindCSV] = emptySubCompiler{}
	resp, err := c.Compile(context.Background(), &idl.CompileRequest{Files: []string{"a.formula", "b.csv"}})
	require.NoError(t, err)
	require.Len(t, resp.Sheets, 1)
	require.Equal(t, "/a.formula", resp.Sheets[0].URI)
}
