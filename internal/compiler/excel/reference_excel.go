// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package excel

import (
	"strconv"
	"strings"
	"unicode"

	"gopkg.microglot.org/formula.go/internal/ast"
)

// Data = RangeReference | AddressReference | Boolean | Constant | NotReservedWord (String | NamedReference) .
func (p *parserExcelInput) parseData(mode rangeMode) ast.Expression {
	if r := p.parseRangeReference(mode); r != nil {
		return r
	}
	if a := p.parseAddressReference(); a != nil {
		return a
	}
	if b := p.parseBoolean(); b != nil {
		return b
	}
	if c := p.parseConstant(); c != nil {
		return c
	}
	if !p.notReservedWord() {
		return nil
	}
	if s := p.parseStringLiteral(); s != nil {
		return s
	}
	if n := p.parseNamedReference(); n != nil {
		return n
	}
	return nil
}

// RangeReference = WorkbookPrefix Range | WorksheetPrefix Range | Range .
func (p *parserExcelInput) parseRangeReference(mode rangeMode) *ast.ReferenceRange {
	start := p.pos
	if env, ok := p.parseWorkbookPrefix(); ok {
		if r := p.parseRange(mode); r != nil {
			return ast.NewReferenceRange(env, *r)
		}
		p.pos = start
	}
	if env, ok := p.parseWorksheetPrefix(); ok {
		if r := p.parseRange(mode); r != nil {
			return ast.NewReferenceRange(env, *r)
		}
		p.pos = start
	}
	if r := p.parseRange(mode); r != nil {
		return ast.NewReferenceRange(EnvStub, *r)
	}
	return nil
}

// AddressReference = WorkbookPrefix AddrAny | WorksheetPrefix AddrAny | AddrAny .
func (p *parserExcelInput) parseAddressReference() *ast.ReferenceAddress {
	start := p.pos
	if env, ok := p.parseWorkbookPrefix(); ok {
		if a := p.parseAddrAny(); a != nil {
			return ast.NewReferenceAddress(env, *a)
		}
		p.pos = start
	}
	if env, ok := p.parseWorksheetPrefix(); ok {
		if a := p.parseAddrAny(); a != nil {
			return ast.NewReferenceAddress(env, *a)
		}
		p.pos = start
	}
	if a := p.parseAddrAny(); a != nil {
		return ast.NewReferenceAddress(EnvStub, *a)
	}
	return nil
}

// WorkbookPrefix = "'" Path Workbook WorksheetUnquoted "'" "!" .
func (p *parserExcelInput) parseWorkbookPrefix() (ast.Env, bool) {
	start := p.pos
	if !p.literal("'") {
		return EnvStub, false
	}
	path := p.parsePath()
	workbook, ok := p.parseWorkbook()
	if !ok {
		p.pos = start
		return EnvStub, false
	}
	worksheet, ok := p.parseWorksheetUnquoted()
	if !ok || !p.literal("'") || !p.literal("!") {
		p.pos = start
		return EnvStub, false
	}
	return ast.Env{Path: path, WorkbookName: workbook, WorksheetName: worksheet}, true
}

// WorksheetPrefix = Worksheet "!" .
func (p *parserExcelInput) parseWorksheetPrefix() (ast.Env, bool) {
	start := p.pos
	worksheet, ok := p.parseWorksheet()
	if !ok || !p.literal("!") {
		p.pos = start
		return EnvStub, false
	}
	return ast.Env{WorksheetName: worksheet}, true
}

// Path = {pathChar | "''"} .
//
// A path stops at the "[" that opens the workbook name. A quote must be
// doubled so that the path cannot run past the end of the quoted prefix.
func (p *parserExcelInput) parsePath() string {
	var b strings.Builder
	for p.pos < len(p.input) {
		if strings.HasPrefix(p.input[p.pos:], "''") {
			b.WriteByte('\'')
			p.pos = p.pos + 2
			continue
		}
		r := p.peek()
		if r == '[' || r == '\'' {
			break
		}
		b.WriteRune(r)
		p.pos = p.pos + len(string(r))
	}
	return b.String()
}

// Workbook = "[" workbookChar {workbookChar} "]" .
func (p *parserExcelInput) parseWorkbook() (string, bool) {
	start := p.pos
	if !p.literal("[") {
		return "", false
	}
	name := p.takeWhile(func(r rune) bool { return r != '[' && r != ']' })
	if name == "" || !p.literal("]") {
		p.pos = start
		return "", false
	}
	return name, true
}

// Worksheet = WorksheetQuoted | WorksheetUnquoted .
func (p *parserExcelInput) parseWorksheet() (string, bool) {
	if name, ok := p.parseWorksheetQuoted(); ok {
		return name, true
	}
	return p.parseWorksheetUnquoted()
}

// WorksheetQuoted = "'" (quotedChar | "''") {quotedChar | "''"} "'" .
func (p *parserExcelInput) parseWorksheetQuoted() (string, bool) {
	start := p.pos
	if !p.literal("'") {
		return "", false
	}
	var b strings.Builder
	for {
		if strings.HasPrefix(p.input[p.pos:], "''") {
			b.WriteByte('\'')
			p.pos = p.pos + 2
			continue
		}
		if p.pos >= len(p.input) {
			p.expect(`"'"`)
			p.pos = start
			return "", false
		}
		r := p.peek()
		if r == '\'' {
			break
		}
		b.WriteRune(r)
		p.pos = p.pos + len(string(r))
	}
	if b.Len() < 1 {
		p.pos = start
		p.expect("worksheet name")
		return "", false
	}
	p.pos = p.pos + 1
	return b.String(), true
}

// WorksheetUnquoted = worksheetChar {worksheetChar} .
func (p *parserExcelInput) parseWorksheetUnquoted() (string, bool) {
	name := p.takeWhile(ast.IsWorksheetRune)
	if name == "" {
		p.expect("worksheet name")
		return "", false
	}
	return name, true
}

// NamedReference = nameStart {nameChar} .
func (p *parserExcelInput) parseNamedReference() *ast.ReferenceNamed {
	start := p.pos
	if r := p.peek(); r != '_' && !unicode.IsLetter(r) {
		p.expect("name")
		return nil
	}
	name := p.takeWhile(func(r rune) bool {
		return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
	})
	if name == "" {
		p.pos = start
		return nil
	}
	return &ast.ReferenceNamed{Env: EnvStub, Name: name}
}

// Constant = Mantissa [Exponent] .
// Mantissa = Natural ["." {digit}] | "." Natural .
// Exponent = ("e" | "E") ["+" | "-"] Natural .
func (p *parserExcelInput) parseConstant() *ast.Number {
	start := p.pos
	integral := p.takeWhile(isDigit)
	if p.peek() == '.' {
		p.pos = p.pos + 1
		fraction := p.takeWhile(isDigit)
		if integral == "" && fraction == "" {
			p.pos = start
			p.expect("number")
			return nil
		}
	} else if integral == "" {
		p.expect("number")
		return nil
	}
	if r := p.peek(); r == 'e' || r == 'E' {
		mark := p.pos
		p.pos = p.pos + 1
		if r := p.peek(); r == '+' || r == '-' {
			p.pos = p.pos + 1
		}
		if p.takeWhile(isDigit) == "" {
			p.pos = mark
		}
	}
	v, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		p.pos = start
		p.expect("number")
		return nil
	}
	return &ast.Number{Value: v}
}

// String = `"` {stringChar} `"` .
func (p *parserExcelInput) parseStringLiteral() *ast.StringLiteral {
	start := p.pos
	if !p.literal(`"`) {
		return nil
	}
	end := strings.IndexByte(p.input[p.pos:], '"')
	if end < 0 {
		p.pos = len(p.input)
		p.expect(`"\""`)
		p.pos = start
		return nil
	}
	value := p.input[p.pos : p.pos+end]
	p.pos = p.pos + end + 1
	return &ast.StringLiteral{Value: value}
}

// Boolean = "TRUE" | "FALSE" .
func (p *parserExcelInput) parseBoolean() *ast.Boolean {
	if p.literal("TRUE") {
		return &ast.Boolean{Value: true}
	}
	if p.literal("FALSE") {
		return &ast.Boolean{Value: false}
	}
	return nil
}
