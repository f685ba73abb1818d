// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package ast

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Expression is implemented by every AST node. The set of implementations is
// closed; use a type switch to inspect a tree.
type Expression interface {
	expression()
	// ToFormula regenerates formula text for the node. The output parses back
	// to an equal tree.
	ToFormula() string
	// String is a debugging representation and not a valid formula.
	String() string
}

type Op string

const (
	OpAdd          Op = "+"
	OpSubtract     Op = "-"
	OpMultiply     Op = "*"
	OpDivide       Op = "/"
	OpConcatenate  Op = "&"
	OpEqual        Op = "="
	OpNotEqual     Op = "<>"
	OpLess         Op = "<"
	OpGreater      Op = ">"
	OpLessEqual    Op = "<="
	OpGreaterEqual Op = ">="
	OpExponent     Op = "^"
	OpPercent      Op = "%"
)

// BinaryOps lists every operator a BinOpExpr may carry.
var BinaryOps = []Op{
	OpAdd, OpSubtract, OpMultiply, OpDivide, OpConcatenate, OpEqual,
	OpNotEqual, OpLess, OpGreater, OpLessEqual, OpGreaterEqual, OpExponent,
}

// UnaryOps lists every operator a UnaryOpExpr may carry. OpPercent is postfix.
var UnaryOps = []Op{OpAdd, OpSubtract, OpPercent}

type ReferenceAddress struct {
	Env     Env
	Address Address
}

// NewReferenceAddress qualifies address with env.
func NewReferenceAddress(env Env, address Address) *ReferenceAddress {
	return &ReferenceAddress{
		Env:     env,
		Address: address.CopyWithNewEnv(env),
	}
}

func (*ReferenceAddress) expression() {}

func (e *ReferenceAddress) ToFormula() string {
	return e.Env.ToFormula() + e.Address.ToFormula()
}

func (e *ReferenceAddress) String() string {
	return "ReferenceAddress(" + e.Address.String() + ")"
}

type ReferenceRange struct {
	Env   Env
	Range Range
}

// NewReferenceRange qualifies every address of rng with env.
func NewReferenceRange(env Env, rng Range) *ReferenceRange {
	return &ReferenceRange{
		Env:   env,
		Range: rng.CopyWithNewEnv(env),
	}
}

func (*ReferenceRange) expression() {}

func (e *ReferenceRange) ToFormula() string {
	return e.Env.ToFormula() + e.Range.ToFormula()
}

func (e *ReferenceRange) String() string {
	return "ReferenceRange(" + e.Range.String() + ")"
}

type ReferenceNamed struct {
	Env  Env
	Name string
}

func (*ReferenceNamed) expression() {}

func (e *ReferenceNamed) ToFormula() string {
	return e.Env.ToFormula() + e.Name
}

func (e *ReferenceNamed) String() string {
	return "ReferenceNamed(" + e.Name + ")"
}

// Arity is one of FixedArity, LowBoundArity, or VarArgsArity.
type Arity interface {
	arity()
	// Accepts reports whether a call with n arguments fits the arity.
	Accepts(n int) bool
	String() string
}

type FixedArity struct {
	N int
}

func (FixedArity) arity() {}

func (a FixedArity) Accepts(n int) bool { return n == a.N }

func (a FixedArity) String() string { return fmt.Sprintf("FixedArity(%d)", a.N) }

type LowBoundArity struct {
	N int
}

func (LowBoundArity) arity() {}

func (a LowBoundArity) Accepts(n int) bool { return n >= a.N }

func (a LowBoundArity) String() string { return fmt.Sprintf("LowBoundArity(%d)", a.N) }

type VarArgsArity struct{}

func (VarArgsArity) arity() {}

func (VarArgsArity) Accepts(n int) bool { return n >= 0 }

func (VarArgsArity) String() string { return "VarArgsArity" }

type FunctionApplication struct {
	Name  string
	Args  []Expression
	Arity Arity
}

func (*FunctionApplication) expression() {}

func (e *FunctionApplication) ToFormula() string {
	args := make([]string, 0, len(e.Args))
	for _, arg := range e.Args {
		args = append(args, arg.ToFormula())
	}
	return e.Name + "(" + strings.Join(args, ",") + ")"
}

func (e *FunctionApplication) String() string {
	args := make([]string, 0, len(e.Args))
	for _, arg := range e.Args {
		args = append(args, arg.String())
	}
	return "Function[" + e.Name + "," + e.Arity.String() + "](" + strings.Join(args, ",") + ")"
}

type Number struct {
	Value float64
}

func (*Number) expression() {}

func (e *Number) ToFormula() string {
	if e.Value == math.Trunc(e.Value) && math.Abs(e.Value) < 1e15 {
		return strconv.FormatFloat(e.Value, 'f', -1, 64)
	}
	return strconv.FormatFloat(e.Value, 'g', -1, 64)
}

func (e *Number) String() string {
	return "Number(" + e.ToFormula() + ")"
}

type StringLiteral struct {
	Value string
}

func (*StringLiteral) expression() {}

func (e *StringLiteral) ToFormula() string {
	return `"` + e.Value + `"`
}

func (e *StringLiteral) String() string {
	return "String(" + e.Value + ")"
}

type Boolean struct {
	Value bool
}

func (*Boolean) expression() {}

func (e *Boolean) ToFormula() string {
	if e.Value {
		return "TRUE"
	}
	return "FALSE"
}

func (e *Boolean) String() string {
	return "Boolean(" + e.ToFormula() + ")"
}

type BinOpExpr struct {
	Op    Op
	Left  Expression
	Right Expression
}

func (*BinOpExpr) expression() {}

func (e *BinOpExpr) ToFormula() string {
	return e.Left.ToFormula() + " " + string(e.Op) + " " + e.Right.ToFormula()
}

func (e *BinOpExpr) String() string {
	return "BinOpExpr(" + string(e.Op) + "," + e.Left.String() + "," + e.Right.String() + ")"
}

type UnaryOpExpr struct {
	Op      Op
	Operand Expression
}

func (*UnaryOpExpr) expression() {}

func (e *UnaryOpExpr) ToFormula() string {
	if e.Op == OpPercent {
		return e.Operand.ToFormula() + string(e.Op)
	}
	return string(e.Op) + e.Operand.ToFormula()
}

func (e *UnaryOpExpr) String() string {
	return "UnaryOpExpr(" + string(e.Op) + "," + e.Operand.String() + ")"
}

type ParensExpr struct {
	Inner Expression
}

func (*ParensExpr) expression() {}

func (e *ParensExpr) ToFormula() string {
	return "(" + e.Inner.ToFormula() + ")"
}

func (e *ParensExpr) String() string {
	return "Parens(" + e.Inner.String() + ")"
}

// PoisonPill is produced only by the reserved word guard, which always fails.
// Finding one in a parsed tree is a parser bug.
type PoisonPill struct{}

func (*PoisonPill) expression() {}

func (*PoisonPill) ToFormula() string {
	panic("ast: PoisonPill must never appear in an AST")
}

func (*PoisonPill) String() string {
	return "PoisonPill"
}
