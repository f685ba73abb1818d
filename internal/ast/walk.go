// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package ast

// Walk calls f for every node of the tree rooted at e. Children are visited
// before their parent and arguments in source order.
func Walk(e Expression, f func(Expression)) {
	switch n := e.(type) {
	case nil:
		return
	case *FunctionApplication:
		for _, arg := range n.Args {
			Walk(arg, f)
		}
	case *BinOpExpr:
		Walk(n.Left, f)
		Walk(n.Right, f)
	case *UnaryOpExpr:
		Walk(n.Operand, f)
	case *ParensExpr:
		Walk(n.Inner, f)
	}
	f(e)
}

// References returns the address, range, and named references of the tree in
// source order.
func References(e Expression) []Expression {
	var refs []Expression
	Walk(e, func(n Expression) {
		switch n.(type) {
		case *ReferenceAddress, *ReferenceRange, *ReferenceNamed:
			refs = append(refs, n)
		}
	})
	return refs
}

// Depth returns the nesting depth of the tree. A single leaf has depth 1.
func Depth(e Expression) int {
	depth := 0
	var visit func(Expression, int)
	visit = func(n Expression, d int) {
		if d > depth {
			depth = d
		}
		switch v := n.(type) {
		case *FunctionApplication:
			for _, arg := range v.Args {
				visit(arg, d+1)
			}
		case *BinOpExpr:
			visit(v.Left, d+1)
			visit(v.Right, d+1)
		case *UnaryOpExpr:
			visit(v.Operand, d+1)
		case *ParensExpr:
			visit(v.Inner, d+1)
		}
	}
	if e != nil {
		visit(e, 1)
	}
	return depth
}
