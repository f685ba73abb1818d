// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package excel

import (
	"strconv"

	"gopkg.microglot.org/formula.go/internal/ast"
)

// EnvStub is the Env of an unqualified reference.
var EnvStub = ast.Env{}

// Natural = digit {digit} .
func (p *parserExcelInput) parseNatural() (int, bool) {
	start := p.pos
	digits := p.takeWhile(isDigit)
	if digits == "" {
		p.expect("digit")
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		p.pos = start
		p.expect("integer")
		return 0, false
	}
	return n, true
}

// Z = ["+" | "-"] Natural .
func (p *parserExcelInput) parseZ() (int, bool) {
	start := p.pos
	sign := 1
	switch p.peek() {
	case '+':
		p.pos = p.pos + 1
	case '-':
		sign = -1
		p.pos = p.pos + 1
	}
	n, ok := p.parseNatural()
	if !ok {
		p.pos = start
		return 0, false
	}
	return sign * n, true
}

// Comma = ws "," ws .
func (p *parserExcelInput) parseComma() bool {
	return p.parsePadded(",")
}

// parsePadded matches token with optional whitespace on both sides.
func (p *parserExcelInput) parsePadded(token string) bool {
	start := p.pos
	p.ws()
	if !p.literal(token) {
		p.pos = start
		return false
	}
	p.ws()
	return true
}
