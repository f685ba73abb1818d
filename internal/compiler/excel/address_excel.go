// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package excel

import (
	"gopkg.microglot.org/formula.go/internal/ast"
)

// Longer column labels overflow int.
const maxColumnLetters = 13

// AddrAny = AddrR1C1 | AddrA1 .
func (p *parserExcelInput) parseAddrAny() *ast.Address {
	if a := p.parseAddrR1C1(); a != nil {
		return a
	}
	return p.parseAddrA1()
}

// AddrR1C1 = (AddrRRel | AddrR) (AddrCRel | AddrC) .
func (p *parserExcelInput) parseAddrR1C1() *ast.Address {
	start := p.pos
	row, rowMode, ok := p.parseR1C1Axis("R")
	if !ok {
		return nil
	}
	col, colMode, ok := p.parseR1C1Axis("C")
	if !ok {
		p.pos = start
		return nil
	}
	return &ast.Address{
		Row:     row,
		Column:  col,
		RowMode: rowMode,
		ColMode: colMode,
		Style:   ast.AddressStyleR1C1,
		Env:     EnvStub,
	}
}

// The relative form is tried first so that "R[1]" is never read as an
// absolute row followed by junk.
func (p *parserExcelInput) parseR1C1Axis(axis string) (int, ast.AddressMode, bool) {
	if v, ok := p.parseR1C1Relative(axis); ok {
		return v, ast.AddressModeRelative, true
	}
	if v, ok := p.parseR1C1Absolute(axis); ok {
		return v, ast.AddressModeAbsolute, true
	}
	return 0, ast.AddressModeUnknown, false
}

// AddrRRel = "R" "[" Z "]" .
// AddrCRel = "C" "[" Z "]" .
func (p *parserExcelInput) parseR1C1Relative(axis string) (int, bool) {
	start := p.pos
	if !p.literal(axis + "[") {
		return 0, false
	}
	v, ok := p.parseZ()
	if !ok || !p.literal("]") {
		p.pos = start
		return 0, false
	}
	return v, true
}

// AddrR = "R" Natural .
// AddrC = "C" Natural .
func (p *parserExcelInput) parseR1C1Absolute(axis string) (int, bool) {
	start := p.pos
	if !p.literal(axis) {
		return 0, false
	}
	v, ok := p.parseNatural()
	if !ok {
		p.pos = start
		return 0, false
	}
	return v, true
}

// AddrA1 = AddrMode upper {upper} AddrMode Natural .
func (p *parserExcelInput) parseAddrA1() *ast.Address {
	start := p.pos
	colMode := p.parseAddrMode()
	letters := p.takeWhile(isUpper)
	if letters == "" || len(letters) > maxColumnLetters {
		p.pos = start
		p.expect("column letter")
		return nil
	}
	rowMode := p.parseAddrMode()
	row, ok := p.parseNatural()
	if !ok {
		p.pos = start
		return nil
	}
	return &ast.Address{
		Row:     row,
		Column:  ast.ColumnToInt(letters),
		RowMode: rowMode,
		ColMode: colMode,
		Style:   ast.AddressStyleA1,
		Env:     EnvStub,
	}
}

// AddrMode = ["$"] .
func (p *parserExcelInput) parseAddrMode() ast.AddressMode {
	if p.peek() == '$' {
		p.pos = p.pos + 1
		return ast.AddressModeAbsolute
	}
	return ast.AddressModeRelative
}
