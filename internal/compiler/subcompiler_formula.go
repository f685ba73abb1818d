// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package compiler

import (
	"context"
	"strings"

	"gopkg.microglot.org/formula.go/internal/compiler/excel"
	"gopkg.microglot.org/formula.go/internal/exc"
	"gopkg.microglot.org/formula.go/internal/idl"
	"gopkg.microglot.org/formula.go/internal/iter"
)

// SubCompilerFormula handles files that hold one formula per line. Blank
// lines and lines starting with "#" are skipped.
type SubCompilerFormula struct {
	Parser *excel.ParserExcel
}

func (self *SubCompilerFormula) CompileFile(ctx context.Context, r exc.Reporter, file idl.File) (*idl.Sheet, error) {
	uri := file.Path(ctx)
	body, err := file.Body(ctx)
	if err != nil {
		return nil, exc.WrapUnknown(exc.Location{URI: uri}, err)
	}
	lines := iter.NewIteratorFilter(
		iter.NewLines(iter.NewUnicodeFileBodyCtx(ctx, body)),
		idl.Filter[idl.Line](iter.FilterFunc[idl.Line](func(ctx context.Context, line idl.Line) bool {
			text := strings.TrimSpace(line.Text)
			return text != "" && !strings.HasPrefix(text, "#")
		})),
	)
	sheet := &idl.Sheet{URI: uri}
	for line := lines.Next(ctx); line.IsPresent(); line = lines.Next(ctx) {
		if err := ctx.Err(); err != nil {
			_ = lines.Close(ctx)
			return nil, err
		}
		text := line.Value().Text
		trimmed := strings.TrimLeft(text, " \t")
		loc := idl.Location{
			Line:   line.Value().Number,
			Column: int32(len([]rune(text))-len([]rune(trimmed))) + 1,
		}
		f, err := compileFormula(self.Parser, r, uri, loc, "", strings.TrimSpace(trimmed))
		if err != nil {
			_ = lines.Close(ctx)
			return nil, err
		}
		if f != nil {
			sheet.Formulas = append(sheet.Formulas, f)
		}
	}
	if err := lines.Close(ctx); err != nil {
		return nil, exc.WrapUnknown(exc.Location{URI: uri}, err)
	}
	return sheet, nil
}
