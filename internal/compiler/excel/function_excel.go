// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package excel

import (
	"gopkg.microglot.org/formula.go/internal/ast"
)

// FunctionApplication = ArityNFunction | ArityAtLeastNFunction | VarArgsFunction .
//
// Candidates are tried in order: fixed arity 0 through 9, at-least 1 through
// 3, then variadic. The first one whose name and argument count both match
// wins, so an overloaded name resolves to its smallest matching arity.
func (p *parserExcelInput) parseFunctionApplication(mode rangeMode) *ast.FunctionApplication {
	if !isUpper(p.peek()) {
		p.expect("function name")
		return nil
	}
	for n := 0; n <= maxFixedArity; n = n + 1 {
		if f := p.parseArityNFunction(n, mode); f != nil {
			return f
		}
	}
	for n := 1; n <= maxAtLeastArity; n = n + 1 {
		if f := p.parseArityAtLeastNFunction(n); f != nil {
			return f
		}
	}
	return p.parseVarArgsFunction()
}

// ArityNFunction = ArityNName "(" ws ArgumentsN ws ")" .
//
// Arguments are parsed with the caller's range mode.
func (p *parserExcelInput) parseArityNFunction(n int, mode rangeMode) *ast.FunctionApplication {
	start := p.pos
	name, ok := p.parseFunctionName(arityNName(n))
	if !ok {
		return nil
	}
	args, ok := p.parseArgumentList(func() ([]ast.Expression, bool) {
		return p.parseArgumentsN(n, mode)
	})
	if !ok {
		p.pos = start
		return nil
	}
	return &ast.FunctionApplication{Name: name, Args: args, Arity: ast.FixedArity{N: n}}
}

// ArityAtLeastNFunction = ArityAtLeastNName "(" ws ArgumentsAtLeastN ws ")" .
//
// Range arguments must be contiguous.
func (p *parserExcelInput) parseArityAtLeastNFunction(n int) *ast.FunctionApplication {
	start := p.pos
	name, ok := p.parseFunctionName(arityAtLeastNName(n))
	if !ok {
		return nil
	}
	args, ok := p.parseArgumentList(func() ([]ast.Expression, bool) {
		return p.parseArgumentsAtLeastN(n, rangeModeContig)
	})
	if !ok {
		p.pos = start
		return nil
	}
	return &ast.FunctionApplication{Name: name, Args: args, Arity: ast.LowBoundArity{N: n}}
}

// VarArgsFunction = VarArgsName "(" ws [Expr {Comma Expr}] ws ")" .
func (p *parserExcelInput) parseVarArgsFunction() *ast.FunctionApplication {
	start := p.pos
	name, ok := p.parseFunctionName(varArgsName)
	if !ok {
		return nil
	}
	args, ok := p.parseArgumentList(func() ([]ast.Expression, bool) {
		return p.parseArgumentsAtLeastN(0, rangeModeAny)
	})
	if !ok {
		p.pos = start
		return nil
	}
	return &ast.FunctionApplication{Name: name, Args: args, Arity: ast.VarArgsArity{}}
}

func (p *parserExcelInput) parseFunctionName(names alternatives) (string, bool) {
	name, ok := names.match(p.input[p.pos:])
	if !ok {
		p.expect("function name")
		return "", false
	}
	p.pos = p.pos + len(name)
	return name, true
}

func (p *parserExcelInput) parseArgumentList(arguments func() ([]ast.Expression, bool)) ([]ast.Expression, bool) {
	start := p.pos
	if !p.literal("(") {
		return nil, false
	}
	p.ws()
	args, ok := arguments()
	if !ok {
		p.pos = start
		return nil, false
	}
	p.ws()
	if !p.literal(")") {
		p.pos = start
		return nil, false
	}
	return args, true
}

// ArgumentsN = Expr {Comma Expr} .
//
// Exactly n expressions. Zero is the empty list.
func (p *parserExcelInput) parseArgumentsN(n int, mode rangeMode) ([]ast.Expression, bool) {
	start := p.pos
	var args []ast.Expression
	for x := 0; x < n; x = x + 1 {
		if x > 0 && !p.parseComma() {
			p.pos = start
			return nil, false
		}
		e := p.parseExpr(mode)
		if e == nil {
			p.pos = start
			return nil, false
		}
		args = append(args, e)
	}
	return args, true
}

// ArgumentsAtLeastN = ArgumentsN {Comma Expr} .
//
// At least n expressions. With n of zero the list may be empty.
func (p *parserExcelInput) parseArgumentsAtLeastN(n int, mode rangeMode) ([]ast.Expression, bool) {
	args, ok := p.parseArgumentsN(n, mode)
	if !ok {
		return nil, false
	}
	for {
		mark := p.pos
		if len(args) > 0 && !p.parseComma() {
			break
		}
		e := p.parseExpr(mode)
		if e == nil {
			p.pos = mark
			break
		}
		args = append(args, e)
	}
	return args, true
}
