// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package excel

import (
	"gopkg.microglot.org/formula.go/internal/ast"
)

// Operators of each binary precedence level. Longer operators come first so
// that "<=" is not read as "<".
var (
	level8Ops = []ast.Op{ast.OpNotEqual, ast.OpLessEqual, ast.OpGreaterEqual, ast.OpEqual, ast.OpLess, ast.OpGreater}
	level7Ops = []ast.Op{ast.OpConcatenate}
	level6Ops = []ast.Op{ast.OpAdd, ast.OpSubtract}
	level5Ops = []ast.Op{ast.OpMultiply, ast.OpDivide}
	level4Ops = []ast.Op{ast.OpExponent}
)

// Expr = BinOp .
//
// Results are memoised by offset and range mode. Function arity dispatch
// reparses the same argument text once per candidate arity and would
// otherwise be exponential in the nesting depth.
func (p *parserExcelInput) parseExpr(mode rangeMode) ast.Expression {
	key := memoKey{pos: p.pos, mode: mode}
	if entry, ok := p.memo[key]; ok {
		if entry.expr != nil {
			p.pos = entry.end
		}
		return entry.expr
	}
	if !p.enter() {
		return nil
	}
	defer p.leave()
	start := p.pos
	e := p.parseBinOp(mode)
	if p.fatal != nil {
		p.pos = start
		return nil
	}
	p.memo[key] = memoEntry{expr: e, end: p.pos}
	return e
}

// BinOp = Level8 .
func (p *parserExcelInput) parseBinOp(mode rangeMode) ast.Expression {
	return p.parseLevel8(mode)
}

// Level8 = Level7 {CmpOp Level7} .
func (p *parserExcelInput) parseLevel8(mode rangeMode) ast.Expression {
	return p.parseLeftAssoc(level8Ops, func() ast.Expression { return p.parseLevel7(mode) })
}

// Level7 = Level6 {"&" Level6} .
func (p *parserExcelInput) parseLevel7(mode rangeMode) ast.Expression {
	return p.parseLeftAssoc(level7Ops, func() ast.Expression { return p.parseLevel6(mode) })
}

// Level6 = Level5 {("+" | "-") Level5} .
func (p *parserExcelInput) parseLevel6(mode rangeMode) ast.Expression {
	return p.parseLeftAssoc(level6Ops, func() ast.Expression { return p.parseLevel5(mode) })
}

// Level5 = Level4 {("*" | "/") Level4} .
func (p *parserExcelInput) parseLevel5(mode rangeMode) ast.Expression {
	return p.parseLeftAssoc(level5Ops, func() ast.Expression { return p.parseLevel4(mode) })
}

// Level4 = Level3 ["^" Level4] .
func (p *parserExcelInput) parseLevel4(mode rangeMode) ast.Expression {
	first := p.parseLevel3(mode)
	if first == nil {
		return nil
	}
	operands := []ast.Expression{first}
	for {
		mark := p.pos
		if _, ok := p.parseBinaryOp(level4Ops); !ok {
			break
		}
		next := p.parseLevel3(mode)
		if next == nil {
			p.pos = mark
			break
		}
		operands = append(operands, next)
	}
	e := operands[len(operands)-1]
	for x := len(operands) - 2; x >= 0; x = x - 1 {
		e = &ast.BinOpExpr{Op: ast.OpExponent, Left: operands[x], Right: e}
	}
	return e
}

// Level3 = Level2 {ws "%"} .
func (p *parserExcelInput) parseLevel3(mode rangeMode) ast.Expression {
	e := p.parseLevel2(mode)
	if e == nil {
		return nil
	}
	for {
		start := p.pos
		p.ws()
		if p.peek() != '%' {
			p.expect(`"%"`)
			p.pos = start
			return e
		}
		p.pos = p.pos + 1
		e = &ast.UnaryOpExpr{Op: ast.OpPercent, Operand: e}
	}
}

// Level2 = Unary | Level1 .
func (p *parserExcelInput) parseLevel2(mode rangeMode) ast.Expression {
	if e := p.parseUnary(mode); e != nil {
		return e
	}
	if p.fatal != nil {
		return nil
	}
	return p.parseLevel1(mode)
}

// Unary = ("+" | "-") Level2 .
func (p *parserExcelInput) parseUnary(mode rangeMode) ast.Expression {
	start := p.pos
	var op ast.Op
	switch p.peek() {
	case '+':
		op = ast.OpAdd
	case '-':
		op = ast.OpSubtract
	default:
		p.expect(`"+"`)
		p.expect(`"-"`)
		return nil
	}
	if !p.enter() {
		return nil
	}
	defer p.leave()
	p.pos = p.pos + 1
	operand := p.parseLevel2(mode)
	if operand == nil {
		p.pos = start
		return nil
	}
	return &ast.UnaryOpExpr{Op: op, Operand: operand}
}

// Level1 = ExprParens | ExprSimple .
func (p *parserExcelInput) parseLevel1(mode rangeMode) ast.Expression {
	if e := p.parseExprParens(mode); e != nil {
		return e
	}
	return p.parseExprSimple(mode)
}

// ExprSimple = ExprAtom | ExprParens .
func (p *parserExcelInput) parseExprSimple(mode rangeMode) ast.Expression {
	if e := p.parseExprAtom(mode); e != nil {
		return e
	}
	return p.parseExprParens(mode)
}

// ExprAtom = FunctionApplication | Data .
func (p *parserExcelInput) parseExprAtom(mode rangeMode) ast.Expression {
	if f := p.parseFunctionApplication(mode); f != nil {
		return f
	}
	if p.fatal != nil {
		return nil
	}
	return p.parseData(mode)
}

// ExprParens = "(" ws Expr ws ")" .
func (p *parserExcelInput) parseExprParens(mode rangeMode) ast.Expression {
	start := p.pos
	if !p.literal("(") {
		return nil
	}
	p.ws()
	inner := p.parseExpr(mode)
	if inner == nil {
		p.pos = start
		return nil
	}
	p.ws()
	if !p.literal(")") {
		p.pos = start
		return nil
	}
	return &ast.ParensExpr{Inner: inner}
}

// parseLeftAssoc parses operand {op operand} and folds the chain to the left
// so that a - b - c is (a - b) - c.
func (p *parserExcelInput) parseLeftAssoc(ops []ast.Op, operand func() ast.Expression) ast.Expression {
	left := operand()
	if left == nil {
		return nil
	}
	for {
		mark := p.pos
		op, ok := p.parseBinaryOp(ops)
		if !ok {
			break
		}
		right := operand()
		if right == nil {
			p.pos = mark
			break
		}
		left = &ast.BinOpExpr{Op: op, Left: left, Right: right}
	}
	return left
}

// BinaryOp = ws op ws .
func (p *parserExcelInput) parseBinaryOp(ops []ast.Op) (ast.Op, bool) {
	for _, op := range ops {
		if p.parsePadded(string(op)) {
			return op, true
		}
	}
	return "", false
}
