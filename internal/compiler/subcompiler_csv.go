// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package compiler

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"gopkg.microglot.org/formula.go/internal/ast"
	"gopkg.microglot.org/formula.go/internal/compiler/excel"
	"gopkg.microglot.org/formula.go/internal/exc"
	"gopkg.microglot.org/formula.go/internal/idl"
	"gopkg.microglot.org/formula.go/internal/iter"
)

// SubCompilerCSV handles sheets exported as CSV. Every cell whose content
// starts with "=" is parsed and labelled with its A1 address.
type SubCompilerCSV struct {
	Parser *excel.ParserExcel
}

func (self *SubCompilerCSV) CompileFile(ctx context.Context, r exc.Reporter, file idl.File) (*idl.Sheet, error) {
	uri := file.Path(ctx)
	body, err := file.Body(ctx)
	if err != nil {
		return nil, exc.WrapUnknown(exc.Location{URI: uri}, err)
	}
	rc := iter.NewFileBodyReader(ctx, body)
	defer rc.Close()

	reader := csv.NewReader(rc)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	sheet := &idl.Sheet{URI: uri}
	for row := 1; ; row = row + 1 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			loc := exc.Location{URI: uri}
			if errors.As(err, &perr) {
				loc.Line = int32(perr.Line)
				loc.Column = int32(perr.Column)
			}
			return nil, r.Report(exc.Wrap(loc, exc.CodeUnsupportedFileFormat, err))
		}
		for col, field := range record {
			source := strings.TrimSpace(field)
			if !strings.HasPrefix(source, "=") {
				continue
			}
			line, column := reader.FieldPos(col)
			loc := idl.Location{Line: int32(line), Column: int32(column)}
			cell := ast.ColumnToLetters(col+1) + strconv.Itoa(row)
			f, err := compileFormula(self.Parser, r, uri, loc, cell, source)
			if err != nil {
				return nil, err
			}
			if f != nil {
				sheet.Formulas = append(sheet.Formulas, f)
			}
		}
	}
	return sheet, nil
}
