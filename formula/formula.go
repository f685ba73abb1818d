// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package formula parses spreadsheet formulas such as =SUM(A1,B2:B77,5) into
// an expression tree. Parsing only checks syntax and the arity of built-in
// functions; nothing is evaluated.
package formula

import (
	"gopkg.microglot.org/formula.go/internal/ast"
	"gopkg.microglot.org/formula.go/internal/compiler/excel"
	"gopkg.microglot.org/formula.go/internal/exc"
)

type (
	Expression          = ast.Expression
	Env                 = ast.Env
	Address             = ast.Address
	AddressMode         = ast.AddressMode
	AddressStyle        = ast.AddressStyle
	Region              = ast.Region
	Range               = ast.Range
	Op                  = ast.Op
	Arity               = ast.Arity
	FixedArity          = ast.FixedArity
	LowBoundArity       = ast.LowBoundArity
	VarArgsArity        = ast.VarArgsArity
	ReferenceAddress    = ast.ReferenceAddress
	ReferenceRange      = ast.ReferenceRange
	ReferenceNamed      = ast.ReferenceNamed
	FunctionApplication = ast.FunctionApplication
	Number              = ast.Number
	StringLiteral       = ast.StringLiteral
	Boolean             = ast.Boolean
	BinOpExpr           = ast.BinOpExpr
	UnaryOpExpr         = ast.UnaryOpExpr
	ParensExpr          = ast.ParensExpr

	// Error is returned for every parse failure. Code() is one of the Code
	// constants and Location() gives the offset of the failure.
	Error = exc.Exception
)

const (
	CodeSyntaxError    = exc.CodeSyntaxError
	CodeMissingEquals  = exc.CodeMissingEquals
	CodeNestingTooDeep = exc.CodeNestingTooDeep
	CodeTrailingInput  = exc.CodeTrailingInput
	CodeUnexpectedEOF  = exc.CodeUnexpectedEOF
)

const DefaultMaxDepth = excel.DefaultMaxDepth

type Option = excel.Option

// WithMaxDepth limits how deeply expressions may nest before parsing fails
// with CodeNestingTooDeep.
func WithMaxDepth(depth int) Option {
	return excel.OptionWithMaxDepth(depth)
}

// Parse parses a formula. The input must begin with "=".
func Parse(input string, options ...Option) (Expression, error) {
	return excel.NewParserExcel(options...).Parse(input)
}

// ParseExpression parses a bare expression with no leading "=".
func ParseExpression(input string, options ...Option) (Expression, error) {
	return excel.NewParserExcel(options...).ParseExpression(input)
}

// References returns the address, range, and named references of e in
// source order.
func References(e Expression) []Expression {
	return ast.References(e)
}

// Functions returns the arities under which name is a built-in function.
func Functions(name string) []Arity {
	return excel.LookupFunction(name)
}
