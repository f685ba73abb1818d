// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package excel

import (
	"gopkg.microglot.org/formula.go/internal/ast"
)

func (p *parserExcelInput) parseRange(mode rangeMode) *ast.Range {
	if mode == rangeModeContig {
		return p.parseRangeContig()
	}
	return p.parseRangeAny()
}

// RangeAny = RangeR1C1Discontig | RangeR1C1Contig | RangeA1Discontig | RangeA1Contig .
func (p *parserExcelInput) parseRangeAny() *ast.Range {
	if r := p.parseRangeR1C1Discontig(); r != nil {
		return r
	}
	if r := p.parseRangeR1C1Contig(); r != nil {
		return r
	}
	if r := p.parseRangeA1Discontig(); r != nil {
		return r
	}
	return p.parseRangeA1Contig()
}

// RangeContig = RangeR1C1Contig | RangeA1Contig .
func (p *parserExcelInput) parseRangeContig() *ast.Range {
	if r := p.parseRangeR1C1Contig(); r != nil {
		return r
	}
	return p.parseRangeA1Contig()
}

// RangeA1Contig = AddrA1 ":" AddrA1 .
func (p *parserExcelInput) parseRangeA1Contig() *ast.Range {
	return p.parseRangeContigOf(p.parseAddrA1)
}

// RangeR1C1Contig = AddrR1C1 ":" AddrR1C1 .
func (p *parserExcelInput) parseRangeR1C1Contig() *ast.Range {
	return p.parseRangeContigOf(p.parseAddrR1C1)
}

// RangeA1Discontig = RangeA1Contig Comma {RangeA1Contig Comma} RangeA1Contig .
func (p *parserExcelInput) parseRangeA1Discontig() *ast.Range {
	return p.parseRangeDiscontigOf(p.parseRangeA1Contig)
}

// RangeR1C1Discontig = RangeR1C1Contig Comma {RangeR1C1Contig Comma} RangeR1C1Contig .
func (p *parserExcelInput) parseRangeR1C1Discontig() *ast.Range {
	return p.parseRangeDiscontigOf(p.parseRangeR1C1Contig)
}

func (p *parserExcelInput) parseRangeContigOf(addr func() *ast.Address) *ast.Range {
	start := p.pos
	tl := addr()
	if tl == nil {
		return nil
	}
	if !p.literal(":") {
		p.pos = start
		return nil
	}
	br := addr()
	if br == nil {
		p.pos = start
		return nil
	}
	r := ast.NewRange(*tl, *br)
	return &r
}

// The leading repetition is greedy and never gives back a region, so a
// trailing Comma that is not followed by a region fails the whole range.
func (p *parserExcelInput) parseRangeDiscontigOf(contig func() *ast.Range) *ast.Range {
	start := p.pos
	var leading []ast.Range
	for {
		mark := p.pos
		r := contig()
		if r == nil {
			break
		}
		if !p.parseComma() {
			p.pos = mark
			break
		}
		leading = append(leading, *r)
	}
	if len(leading) < 1 {
		p.pos = start
		return nil
	}
	last := contig()
	if last == nil {
		p.pos = start
		return nil
	}
	merged := leading[0]
	for _, r := range leading[1:] {
		merged = merged.Merge(r)
	}
	merged = merged.Merge(*last)
	return &merged
}
