// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package excel

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"gopkg.microglot.org/formula.go/internal/ast"
	"gopkg.microglot.org/formula.go/internal/exc"
	"gopkg.microglot.org/formula.go/internal/idl"
)

// DefaultMaxDepth is the number of nested expressions a formula may contain
// before parsing stops with exc.CodeNestingTooDeep.
const DefaultMaxDepth = 256

type Option func(*ParserExcel)

// OptionWithMaxDepth overrides DefaultMaxDepth. Values below one are ignored.
func OptionWithMaxDepth(v int) Option {
	return func(p *ParserExcel) {
		if v > 0 {
			p.maxDepth = v
		}
	}
}

// ParserExcel converts Excel formula text into an AST. A ParserExcel holds
// only configuration and is safe for concurrent use.
type ParserExcel struct {
	maxDepth int
}

func NewParserExcel(options ...Option) *ParserExcel {
	p := &ParserExcel{maxDepth: DefaultMaxDepth}
	for _, option := range options {
		option(p)
	}
	return p
}

// Parse parses a complete formula. The input must begin with "=" and the
// whole input must be consumed. Any returned error is an exc.Exception.
func (self *ParserExcel) Parse(input string) (ast.Expression, error) {
	p := self.prepare(input)
	if !strings.HasPrefix(input, "=") {
		return nil, exc.New(p.location(0), exc.CodeMissingEquals, `unable to parse input: a formula must begin with "="`)
	}
	p.pos = 1
	return p.parseFormula()
}

// ParseExpression parses a bare expression that has no leading "=".
func (self *ParserExcel) ParseExpression(input string) (ast.Expression, error) {
	return self.prepare(input).parseFormula()
}

func (self *ParserExcel) prepare(input string) *parserExcelInput {
	return &parserExcelInput{
		input:    input,
		maxDepth: self.maxDepth,
		memo:     make(map[memoKey]memoEntry),
	}
}

// rangeMode selects which range forms a reference may take. Arguments of
// at-least-N functions are limited to contiguous ranges.
type rangeMode uint8

const (
	rangeModeAny rangeMode = iota
	rangeModeContig
)

type memoKey struct {
	pos  int
	mode rangeMode
}

type memoEntry struct {
	expr ast.Expression
	end  int
}

// parserExcelInput is the state of a single parse. Every parseX method either
// succeeds and advances pos past what it consumed, or fails, returns nil, and
// leaves pos where it found it.
type parserExcelInput struct {
	input string
	pos   int

	maxDepth int
	depth    int
	// fatal is set when parsing must stop regardless of remaining
	// alternatives.
	fatal exc.Exception

	// furthest is the largest offset at which an alternative failed and
	// expected lists what would have been accepted there.
	furthest int
	expected []string

	memo map[memoKey]memoEntry
}

func (p *parserExcelInput) parseFormula() (ast.Expression, error) {
	p.ws()
	e := p.parseExpr(rangeModeAny)
	if p.fatal != nil {
		return nil, p.fatal
	}
	if e == nil {
		return nil, p.failure(exc.CodeSyntaxError)
	}
	p.ws()
	if p.pos < len(p.input) {
		p.expect("end of input")
		return nil, p.failure(exc.CodeTrailingInput)
	}
	return e, nil
}

func (p *parserExcelInput) failure(code string) exc.Exception {
	if p.furthest >= len(p.input) {
		code = exc.CodeUnexpectedEOF
	}
	expected := slices.Clone(p.expected)
	slices.Sort(expected)
	found := "end of input"
	if p.furthest < len(p.input) {
		r, _ := utf8.DecodeRuneInString(p.input[p.furthest:])
		found = strconv.QuoteRune(r)
	}
	return exc.New(
		p.location(p.furthest),
		code,
		fmt.Sprintf("unable to parse input: expected one of [%s] at offset %d (found %s)", strings.Join(expected, ", "), p.furthest, found),
	)
}

func (p *parserExcelInput) location(offset int) exc.Location {
	line, column := int32(1), int32(1)
	for _, r := range p.input[:offset] {
		if r == '\n' {
			line = line + 1
			column = 1
			continue
		}
		column = column + 1
	}
	return exc.Location{
		Location: idl.Location{
			Line:   line,
			Column: column,
			Offset: int64(offset),
		},
	}
}

// expect records that what would have been accepted at the current offset.
func (p *parserExcelInput) expect(what string) {
	switch {
	case p.pos > p.furthest:
		p.furthest = p.pos
		p.expected = append(p.expected[:0], what)
	case p.pos == p.furthest:
		if !slices.Contains(p.expected, what) {
			p.expected = append(p.expected, what)
		}
	}
}

// enter guards every recursive production. It fails once maxDepth nested
// expressions are open.
func (p *parserExcelInput) enter() bool {
	if p.fatal != nil {
		return false
	}
	if p.depth >= p.maxDepth {
		p.fatal = exc.New(
			p.location(p.pos),
			exc.CodeNestingTooDeep,
			fmt.Sprintf("unable to parse input: expressions nested more than %d deep at offset %d", p.maxDepth, p.pos),
		)
		return false
	}
	p.depth = p.depth + 1
	return true
}

func (p *parserExcelInput) leave() {
	p.depth = p.depth - 1
}

func (p *parserExcelInput) peek() rune {
	if p.pos >= len(p.input) {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRuneInString(p.input[p.pos:])
	return r
}

func (p *parserExcelInput) literal(s string) bool {
	if strings.HasPrefix(p.input[p.pos:], s) {
		p.pos = p.pos + len(s)
		return true
	}
	p.expect(strconv.Quote(s))
	return false
}

// takeWhile consumes the longest run of runes matching f.
func (p *parserExcelInput) takeWhile(f func(rune) bool) string {
	start := p.pos
	for p.pos < len(p.input) {
		r, size := utf8.DecodeRuneInString(p.input[p.pos:])
		if !f(r) {
			break
		}
		p.pos = p.pos + size
	}
	return p.input[start:p.pos]
}

func (p *parserExcelInput) ws() {
	p.takeWhile(isSpace)
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}
