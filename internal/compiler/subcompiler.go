// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package compiler

import (
	"context"

	"gopkg.microglot.org/formula.go/internal/compiler/excel"
	"gopkg.microglot.org/formula.go/internal/exc"
	"gopkg.microglot.org/formula.go/internal/idl"
)

type SubCompiler interface {
	CompileFile(ctx context.Context, r exc.Reporter, file idl.File) (*idl.Sheet, error)
}

func DefaultSubCompilers(parser *excel.ParserExcel) map[idl.FileKind]SubCompiler {
	return map[idl.FileKind]SubCompiler{
		idl.FileKindFormula: &SubCompilerFormula{Parser: parser},
		idl.FileKindCSV:     &SubCompilerCSV{Parser: parser},
	}
}

// compileFormula parses one formula found at loc within uri. A formula that
// fails to parse or check is reported and nil is returned with a nil error
// unless the reporter considers the failure fatal.
func compileFormula(parser *excel.ParserExcel, r exc.Reporter, uri string, loc idl.Location, cell string, source string) (*idl.Formula, error) {
	expr, err := parser.Parse(source)
	if err != nil {
		e, ok := err.(exc.Exception)
		if !ok {
			e = exc.WrapUnknown(exc.Location{URI: uri, Location: loc}, err)
		}
		e = exc.Relocate(e, uri, loc.Line)
		if fatal := r.Report(e); fatal != nil {
			return nil, fatal
		}
		return nil, nil
	}
	if err := check(expr, exc.Location{URI: uri, Location: loc}, r); err != nil {
		return nil, err
	}
	return &idl.Formula{
		Location:   loc,
		Cell:       cell,
		Source:     source,
		Expression: expr,
	}, nil
}
