// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/efp"

	"gopkg.microglot.org/formula.go/internal/ast"
	"gopkg.microglot.org/formula.go/internal/idl"
)

// writeText prints one line per formula: its position, then the formula as
// regenerated from the tree.
func (self *Exporter) writeText(w io.Writer, resp *idl.CompileResponse) error {
	bw := bufio.NewWriter(w)
	for _, sheet := range resp.Sheets {
		for _, f := range sheet.Formulas {
			fmt.Fprintf(bw, "%s\t=%s\n", position(sheet.URI, f), f.Expression.ToFormula())
			if self.Refs {
				writeRefs(bw, "\t", f.Expression)
			}
		}
	}
	return bw.Flush()
}

func (self *Exporter) writeTree(w io.Writer, resp *idl.CompileResponse) error {
	bw := bufio.NewWriter(w)
	for _, sheet := range resp.Sheets {
		for _, f := range sheet.Formulas {
			fmt.Fprintf(bw, "%s\t%s\n", position(sheet.URI, f), f.Source)
			writeNode(bw, 1, f.Expression)
			if self.Refs {
				writeRefs(bw, "  ", f.Expression)
			}
		}
	}
	return bw.Flush()
}

func position(uri string, f *idl.Formula) string {
	pos := fmt.Sprintf("%s:%d:%d", uri, f.Location.Line, f.Location.Column)
	if f.Cell != "" {
		pos = pos + " " + f.Cell
	}
	return pos
}

func writeRefs(w io.Writer, indent string, e ast.Expression) {
	refs := ast.References(e)
	if len(refs) < 1 {
		return
	}
	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		names = append(names, ref.ToFormula())
	}
	fmt.Fprintf(w, "%srefs: %s\n", indent, strings.Join(names, " "))
}

func writeNode(w io.Writer, depth int, e ast.Expression) {
	indent := strings.Repeat("  ", depth)
	switch n := e.(type) {
	case *ast.ReferenceAddress:
		fmt.Fprintf(w, "%saddress %s\n", indent, n.ToFormula())
	case *ast.ReferenceRange:
		fmt.Fprintf(w, "%srange %s\n", indent, n.ToFormula())
	case *ast.ReferenceNamed:
		fmt.Fprintf(w, "%snamed %s\n", indent, n.ToFormula())
	case *ast.FunctionApplication:
		fmt.Fprintf(w, "%scall %s %s\n", indent, n.Name, n.Arity)
		for _, arg := range n.Args {
			writeNode(w, depth+1, arg)
		}
	case *ast.Number:
		fmt.Fprintf(w, "%snumber %s\n", indent, n.ToFormula())
	case *ast.StringLiteral:
		fmt.Fprintf(w, "%sstring %s\n", indent, strconv.Quote(n.Value))
	case *ast.Boolean:
		fmt.Fprintf(w, "%sboolean %s\n", indent, n.ToFormula())
	case *ast.BinOpExpr:
		fmt.Fprintf(w, "%sbinary %s\n", indent, n.Op)
		writeNode(w, depth+1, n.Left)
		writeNode(w, depth+1, n.Right)
	case *ast.UnaryOpExpr:
		fmt.Fprintf(w, "%sunary %s\n", indent, n.Op)
		writeNode(w, depth+1, n.Operand)
	case *ast.ParensExpr:
		fmt.Fprintf(w, "%sparens\n", indent)
		writeNode(w, depth+1, n.Inner)
	default:
		fmt.Fprintf(w, "%s%v\n", indent, e)
	}
}

// writeTokens prints the lexical token stream of each formula source as
// produced by the efp tokenizer, not by this parser.
func (self *Exporter) writeTokens(w io.Writer, resp *idl.CompileResponse) error {
	bw := bufio.NewWriter(w)
	for _, sheet := range resp.Sheets {
		for _, f := range sheet.Formulas {
			fmt.Fprintf(bw, "%s\t%s\n", position(sheet.URI, f), f.Source)
			ps := efp.ExcelParser()
			for _, tok := range ps.Parse(strings.TrimPrefix(f.Source, "=")) {
				kind := tok.TType
				if tok.TSubType != "" {
					kind = kind + "/" + tok.TSubType
				}
				fmt.Fprintf(bw, "  %-24s %s\n", kind, tok.TValue)
			}
		}
	}
	return bw.Flush()
}
