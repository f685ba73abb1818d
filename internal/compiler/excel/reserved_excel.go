// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package excel

import (
	"slices"
	"strings"

	"gopkg.microglot.org/formula.go/internal/ast"
)

// alternatives is a set of names ordered so that the first prefix match is
// the longest one.
type alternatives []string

// strAlternatives orders names longest first, breaking ties
// lexicographically, and drops duplicates.
func strAlternatives(names ...[]string) alternatives {
	var all []string
	for _, group := range names {
		all = append(all, group...)
	}
	slices.SortFunc(all, func(a string, b string) int {
		if len(a) != len(b) {
			return len(b) - len(a)
		}
		return strings.Compare(a, b)
	})
	return alternatives(slices.Compact(all))
}

func (a alternatives) match(input string) (string, bool) {
	for _, name := range a {
		if strings.HasPrefix(input, name) {
			return name, true
		}
	}
	return "", false
}

var (
	arityNNames = [...]alternatives{
		strAlternatives(arity0Names),
		strAlternatives(arity1Names),
		strAlternatives(arity2Names),
		strAlternatives(arity3Names),
		strAlternatives(arity4Names),
		strAlternatives(arity5Names),
		strAlternatives(arity6Names),
		strAlternatives(arity7Names),
		strAlternatives(arity8Names),
		strAlternatives(arity9Names),
	}
	arityAtLeastNNames = [...]alternatives{
		nil,
		strAlternatives(arityAtLeast1Names),
		strAlternatives(arityAtLeast2Names),
		strAlternatives(arityAtLeast3Names),
	}
	varArgsName   = strAlternatives(varArgsNames)
	reservedNames = strAlternatives(
		arity0Names, arity1Names, arity2Names, arity3Names, arity4Names,
		arity5Names, arity6Names, arity7Names, arity8Names, arity9Names,
		arityAtLeast1Names, arityAtLeast2Names, arityAtLeast3Names,
		varArgsNames,
	)
)

const (
	maxFixedArity   = len(arityNNames) - 1
	maxAtLeastArity = len(arityAtLeastNNames) - 1
)

func arityNName(n int) alternatives {
	if n < 0 || n > maxFixedArity {
		return nil
	}
	return arityNNames[n]
}

func arityAtLeastNName(n int) alternatives {
	if n < 1 || n > maxAtLeastArity {
		return nil
	}
	return arityAtLeastNNames[n]
}

// ReservedWord = FunctionName .
//
// A match is turned into a PoisonPill so that the production has the type of
// a reference even though its only use is as a negative lookahead.
func (p *parserExcelInput) parseReservedWord() ast.Expression {
	name, ok := reservedNames.match(p.input[p.pos:])
	if !ok {
		return nil
	}
	p.pos = p.pos + len(name)
	return &ast.PoisonPill{}
}

// notReservedWord succeeds, consuming nothing, when the input does not begin
// with a built-in function name.
func (p *parserExcelInput) notReservedWord() bool {
	start := p.pos
	if p.parseReservedWord() == nil {
		return true
	}
	p.pos = start
	p.expect("a name that is not a built-in function")
	return false
}

// LookupFunction returns every arity under which the built-in function name
// may be called. Unknown names return nil.
func LookupFunction(name string) []ast.Arity {
	var arities []ast.Arity
	for n := 0; n <= maxFixedArity; n = n + 1 {
		if slices.Contains(arityNNames[n], name) {
			arities = append(arities, ast.FixedArity{N: n})
		}
	}
	for n := 1; n <= maxAtLeastArity; n = n + 1 {
		if slices.Contains(arityAtLeastNNames[n], name) {
			arities = append(arities, ast.LowBoundArity{N: n})
		}
	}
	if slices.Contains(varArgsName, name) {
		arities = append(arities, ast.VarArgsArity{})
	}
	return arities
}
