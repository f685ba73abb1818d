// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package compiler

import (
	"fmt"
	"slices"

	"gopkg.microglot.org/formula.go/internal/ast"
	"gopkg.microglot.org/formula.go/internal/compiler/excel"
	"gopkg.microglot.org/formula.go/internal/exc"
)

// check() verifies the structural invariants of a parsed formula.
// reports: poison pills, arity mismatches, unknown operators, missing operands
func check(expr ast.Expression, loc exc.Location, reporter exc.Reporter) error {
	checker := formulaChecker{
		loc:      loc,
		reporter: reporter,
	}
	ast.Walk(expr, checker.visit)
	return checker.fatal
}

type formulaChecker struct {
	loc      exc.Location
	reporter exc.Reporter
	fatal    error
}

func (c *formulaChecker) report(message string) {
	if err := c.reporter.Report(exc.New(c.loc, exc.CodeInvariantViolation, message)); err != nil && c.fatal == nil {
		c.fatal = err
	}
}

func (c *formulaChecker) visit(e ast.Expression) {
	switch n := e.(type) {
	case *ast.PoisonPill:
		c.report("a reserved word guard leaked into the tree")
	case *ast.FunctionApplication:
		c.checkFunction(n)
	case *ast.BinOpExpr:
		if !slices.Contains(ast.BinaryOps, n.Op) {
			c.report(fmt.Sprintf("%q is not a binary operator", n.Op))
		}
		if n.Left == nil || n.Right == nil {
			c.report(fmt.Sprintf("binary %q is missing an operand", n.Op))
		}
	case *ast.UnaryOpExpr:
		if !slices.Contains(ast.UnaryOps, n.Op) {
			c.report(fmt.Sprintf("%q is not a unary operator", n.Op))
		}
		if n.Operand == nil {
			c.report(fmt.Sprintf("unary %q is missing an operand", n.Op))
		}
	case *ast.ParensExpr:
		if n.Inner == nil {
			c.report("parentheses are empty")
		}
	case *ast.ReferenceRange:
		if len(n.Range.Regions) < 1 {
			c.report("range has no regions")
		}
	}
}

func (c *formulaChecker) checkFunction(f *ast.FunctionApplication) {
	if f.Arity == nil {
		c.report(fmt.Sprintf("%s has no arity", f.Name))
		return
	}
	if !f.Arity.Accepts(len(f.Args)) {
		c.report(fmt.Sprintf("%s called with %d arguments under %s", f.Name, len(f.Args), f.Arity))
	}
	if !slices.Contains(excel.LookupFunction(f.Name), f.Arity) {
		c.report(fmt.Sprintf("%s is not a built-in function with %s", f.Name, f.Arity))
	}
	for x, arg := range f.Args {
		if arg == nil {
			c.report(fmt.Sprintf("%s argument %d is missing", f.Name, x+1))
		}
	}
}
