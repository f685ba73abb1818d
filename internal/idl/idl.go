// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package idl

import (
	"context"
	"fmt"

	"gopkg.microglot.org/formula.go/internal/ast"
	"gopkg.microglot.org/formula.go/internal/optional"
)

type Closer interface {
	Close(ctx context.Context) error
}

type CodePoint uint32

type Iterator[T any] interface {
	Next(ctx context.Context) optional.Optional[T]
	Closer
}

type Lookahead[T any] interface {
	Iterator[T]
	Lookahead(ctx context.Context, n uint8) optional.Optional[T]
}

type Filter[T any] interface {
	Keep(ctx context.Context, v T) bool
}

type Reader interface {
	Read(ctx context.Context, size int32) ([]byte, error)
}

type FileBody interface {
	Reader
	Closer
}

// Location is a position within a source. Line and Column are 1-based and
// count code points; Offset is a 0-based byte offset.
type Location struct {
	Line   int32
	Column int32
	Offset int64
}

// Line is one line of a source with its 1-based line number. The text does
// not include the line terminator.
type Line struct {
	Number int32
	Text   string
}

type FileKind uint32

const (
	FileKindNone FileKind = iota
	FileKindFormula
	FileKindCSV
)

func (k FileKind) String() string {
	switch k {
	case FileKindFormula:
		return "formula"
	case FileKindCSV:
		return "csv"
	case FileKindNone:
		return "none"
	default:
		return fmt.Sprintf("unkown-%d", k)
	}
}

type File interface {
	Path(ctx context.Context) string
	Kind(ctx context.Context) FileKind
	Body(ctx context.Context) (FileBody, error)
}

type FileSystem interface {
	Open(ctx context.Context, uri string) ([]File, error)
	Write(ctx context.Context, uri string, content string) error
}

type Compiler interface {
	Compile(ctx context.Context, req *CompileRequest) (*CompileResponse, error)
}

type CompileRequest struct {
	// Files are paths or URIs of formula sources.
	Files []string
	// Formulas are parsed as given, in addition to any files.
	Formulas []string
}

type CompileResponse struct {
	Sheets []*Sheet
}

// Sheet holds the formulas parsed from one source, in source order.
type Sheet struct {
	URI      string
	Formulas []*Formula
}

type Formula struct {
	Location Location
	// Cell is the A1 address of the formula when the source is tabular.
	Cell       string
	Source     string
	Expression ast.Expression
}
