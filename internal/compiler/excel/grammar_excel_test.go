// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package excel

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"gopkg.microglot.org/formula.go/internal/ast"
)

func newInput(input string) *parserExcelInput {
	return NewParserExcel().prepare(input)
}

func a1(col int, row int) ast.Address {
	return ast.Address{
		Row:     row,
		Column:  col,
		RowMode: ast.AddressModeRelative,
		ColMode: ast.AddressModeRelative,
		Style:   ast.AddressStyleA1,
	}
}

func r1c1(row int, rowMode ast.AddressMode, col int, colMode ast.AddressMode) ast.Address {
	return ast.Address{
		Row:     row,
		Column:  col,
		RowMode: rowMode,
		ColMode: colMode,
		Style:   ast.AddressStyleR1C1,
	}
}

func TestZ(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		input    string
		expected int
		ok       bool
		pos      int
	}{
		{input: "12", expected: 12, ok: true, pos: 2},
		{input: "+7", expected: 7, ok: true, pos: 2},
		{input: "-3]", expected: -3, ok: true, pos: 2},
		{input: "-", ok: false, pos: 0},
		{input: "x1", ok: false, pos: 0},
		{input: "99999999999999999999999", ok: false, pos: 0},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.input, func(t *testing.T) {
			t.Parallel()
			p := newInput(testCase.input)
			v, ok := p.parseZ()
			require.Equal(t, testCase.ok, ok)
			require.Equal(t, testCase.pos, p.pos)
			if ok {
				require.Equal(t, testCase.expected, v)
			}
		})
	}
}

func TestComma(t *testing.T) {
	t.Parallel()
	p := newInput("  ,\tA1")
	require.True(t, p.parseComma())
	require.Equal(t, 4, p.pos)

	p = newInput(" ;")
	require.False(t, p.parseComma())
	require.Equal(t, 0, p.pos)
}

func TestAddrA1(t *testing.T) {
	t.Parallel()
	abs := ast.AddressModeAbsolute
	testCases := []struct {
		input    string
		expected *ast.Address
	}{
		{input: "A1", expected: &ast.Address{Row: 1, Column: 1, RowMode: ast.AddressModeRelative, ColMode: ast.AddressModeRelative}},
		{input: "Z26", expected: &ast.Address{Row: 26, Column: 26, RowMode: ast.AddressModeRelative, ColMode: ast.AddressModeRelative}},
		{input: "AA10", expected: &ast.Address{Row: 10, Column: 27, RowMode: ast.AddressModeRelative, ColMode: ast.AddressModeRelative}},
		{input: "$B$2", expected: &ast.Address{Row: 2, Column: 2, RowMode: abs, ColMode: abs}},
		{input: "$C3", expected: &ast.Address{Row: 3, Column: 3, RowMode: ast.AddressModeRelative, ColMode: abs}},
		{input: "XFD1048576", expected: &ast.Address{Row: 1048576, Column: 16384, RowMode: ast.AddressModeRelative, ColMode: ast.AddressModeRelative}},
		{input: "a1"},
		{input: "1A"},
		{input: "$"},
		{input: "AB"},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.input, func(t *testing.T) {
			t.Parallel()
			p := newInput(testCase.input)
			actual := p.parseAddrA1()
			if testCase.expected == nil {
				require.Nil(t, actual)
				require.Equal(t, 0, p.pos)
				return
			}
			require.Equal(t, len(testCase.input), p.pos)
			require.Empty(t, cmp.Diff(testCase.expected, actual))
		})
	}
}

func TestAddrR1C1(t *testing.T) {
	t.Parallel()
	abs := ast.AddressModeAbsolute
	rel := ast.AddressModeRelative
	testCases := []struct {
		input    string
		expected *ast.Address
	}{
		{input: "R1C1", expected: &ast.Address{Row: 1, Column: 1, RowMode: abs, ColMode: abs, Style: ast.AddressStyleR1C1}},
		{input: "R[-1]C[2]", expected: &ast.Address{Row: -1, Column: 2, RowMode: rel, ColMode: rel, Style: ast.AddressStyleR1C1}},
		{input: "R[0]C3", expected: &ast.Address{Row: 0, Column: 3, RowMode: rel, ColMode: abs, Style: ast.AddressStyleR1C1}},
		{input: "R10C[+4]", expected: &ast.Address{Row: 10, Column: 4, RowMode: abs, ColMode: rel, Style: ast.AddressStyleR1C1}},
		{input: "R1"},
		{input: "RC1"},
		{input: "R[1C1"},
		{input: "A1"},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.input, func(t *testing.T) {
			t.Parallel()
			p := newInput(testCase.input)
			actual := p.parseAddrR1C1()
			if testCase.expected == nil {
				require.Nil(t, actual)
				require.Equal(t, 0, p.pos)
				return
			}
			require.Equal(t, len(testCase.input), p.pos)
			require.Empty(t, cmp.Diff(testCase.expected, actual))
		})
	}
}

func TestAddrAny(t *testing.T) {
	t.Parallel()
	p := newInput("R2C3")
	actual := p.parseAddrAny()
	require.NotNil(t, actual)
	require.Equal(t, ast.AddressStyleR1C1, actual.Style)
	require.Equal(t, 2, actual.Row)
	require.Equal(t, 3, actual.Column)

	// Without a column part this is the A1 address in column R.
	p = newInput("R2")
	actual = p.parseAddrAny()
	require.NotNil(t, actual)
	require.Equal(t, ast.AddressStyleA1, actual.Style)
	require.Equal(t, 2, actual.Row)
	require.Equal(t, 18, actual.Column)
}

func TestRanges(t *testing.T) {
	t.Parallel()
	abs := ast.AddressModeAbsolute
	rel := ast.AddressModeRelative
	testCases := []struct {
		name     string
		input    string
		parse    func(*parserExcelInput) *ast.Range
		expected *ast.Range
		pos      int
	}{
		{
			name:     "a1 contiguous",
			input:    "A1:B10",
			parse:    (*parserExcelInput).parseRangeA1Contig,
			expected: &ast.Range{Regions: []ast.Region{{TopLeft: a1(1, 1), BottomRight: a1(2, 10)}}},
			pos:      6,
		},
		{
			name:  "r1c1 contiguous",
			input: "R1C1:R[2]C[3]",
			parse: (*parserExcelInput).parseRangeR1C1Contig,
			expected: &ast.Range{Regions: []ast.Region{{
				TopLeft:     r1c1(1, abs, 1, abs),
				BottomRight: r1c1(2, rel, 3, rel),
			}}},
			pos: 13,
		},
		{
			name:  "a1 discontiguous",
			input: "A1:B10,C1:D10",
			parse: (*parserExcelInput).parseRangeA1Discontig,
			expected: &ast.Range{Regions: []ast.Region{
				{TopLeft: a1(1, 1), BottomRight: a1(2, 10)},
				{TopLeft: a1(3, 1), BottomRight: a1(4, 10)},
			}},
			pos: 13,
		},
		{
			name:  "a1 discontiguous three regions",
			input: "A1:A2 , B1:B2,C1:C2",
			parse: (*parserExcelInput).parseRangeA1Discontig,
			expected: &ast.Range{Regions: []ast.Region{
				{TopLeft: a1(1, 1), BottomRight: a1(1, 2)},
				{TopLeft: a1(2, 1), BottomRight: a1(2, 2)},
				{TopLeft: a1(3, 1), BottomRight: a1(3, 2)},
			}},
			pos: 19,
		},
		{
			name:  "r1c1 discontiguous",
			input: "R1C1:R2C2,R3C3:R4C4",
			parse: (*parserExcelInput).parseRangeR1C1Discontig,
			expected: &ast.Range{Regions: []ast.Region{
				{TopLeft: r1c1(1, abs, 1, abs), BottomRight: r1c1(2, abs, 2, abs)},
				{TopLeft: r1c1(3, abs, 3, abs), BottomRight: r1c1(4, abs, 4, abs)},
			}},
			pos: 19,
		},
		{
			name:  "any prefers discontiguous",
			input: "A1:B2,C3:D4",
			parse: (*parserExcelInput).parseRangeAny,
			expected: &ast.Range{Regions: []ast.Region{
				{TopLeft: a1(1, 1), BottomRight: a1(2, 2)},
				{TopLeft: a1(3, 3), BottomRight: a1(4, 4)},
			}},
			pos: 11,
		},
		{
			name:     "contiguous only stops at the comma",
			input:    "A1:B2,C3:D4",
			parse:    (*parserExcelInput).parseRangeContig,
			expected: &ast.Range{Regions: []ast.Region{{TopLeft: a1(1, 1), BottomRight: a1(2, 2)}}},
			pos:      5,
		},
		{
			name:     "discontiguous without a final region falls back",
			input:    "A1:B2,C3:D4,5",
			parse:    (*parserExcelInput).parseRangeAny,
			expected: &ast.Range{Regions: []ast.Region{{TopLeft: a1(1, 1), BottomRight: a1(2, 2)}}},
			pos:      5,
		},
		{name: "mixed style a1 first", input: "A1:R1C2", parse: (*parserExcelInput).parseRangeR1C1Contig},
		{name: "mixed style r1c1 first", input: "R1C1:B1", parse: (*parserExcelInput).parseRangeR1C1Contig},
		{name: "single region is not discontiguous", input: "A1:B2", parse: (*parserExcelInput).parseRangeA1Discontig},
		{name: "missing colon", input: "A1B2", parse: (*parserExcelInput).parseRangeA1Contig},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			p := newInput(testCase.input)
			actual := testCase.parse(p)
			if testCase.expected == nil {
				require.Nil(t, actual)
				require.Equal(t, 0, p.pos)
				return
			}
			require.Equal(t, testCase.pos, p.pos)
			require.Empty(t, cmp.Diff(testCase.expected, actual))
		})
	}
}

func TestStrAlternatives(t *testing.T) {
	t.Parallel()
	actual := strAlternatives([]string{"B", "AAA", "AB", "AA", "AB"}, []string{"C", "AAA"})
	require.Equal(t, alternatives{"AAA", "AA", "AB", "B", "C"}, actual)

	name, ok := actual.match("AAAB")
	require.True(t, ok)
	require.Equal(t, "AAA", name)
	name, ok = actual.match("ABC")
	require.True(t, ok)
	require.Equal(t, "AB", name)
	_, ok = actual.match("D")
	require.False(t, ok)
}

func TestArityNames(t *testing.T) {
	t.Parallel()
	require.Contains(t, arityNName(0), "PI")
	require.Contains(t, arityNName(2), "IF")
	require.Contains(t, arityNName(3), "IF")
	require.NotContains(t, arityNName(1), "IF")
	require.Nil(t, arityNName(10))
	require.Contains(t, arityAtLeastNName(1), "MAX")
	require.Contains(t, arityAtLeastNName(2), "COUNTIFS")
	require.Contains(t, arityAtLeastNName(3), "AVERAGEIFS")
	require.Nil(t, arityAtLeastNName(0))
	require.Nil(t, arityAtLeastNName(4))
	for n := 0; n <= maxFixedArity; n = n + 1 {
		names := arityNName(n)
		for x := 1; x < len(names); x = x + 1 {
			require.GreaterOrEqual(t, len(names[x-1]), len(names[x]))
		}
	}
}

func TestReservedWord(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		input    string
		reserved bool
	}{
		{input: "SUM", reserved: true},
		{input: "SUMMARY", reserved: true},
		{input: "VLOOKUP(A1)", reserved: true},
		{input: "CEILING.MATH", reserved: true},
		{input: "sum", reserved: false},
		{input: "profit", reserved: false},
		{input: "_total", reserved: false},
		{input: "\"SUM\"", reserved: false},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.input, func(t *testing.T) {
			t.Parallel()
			p := newInput(testCase.input)
			require.Equal(t, !testCase.reserved, p.notReservedWord())
			require.Equal(t, 0, p.pos)

			p = newInput(testCase.input)
			pill := p.parseReservedWord()
			if testCase.reserved {
				require.IsType(t, &ast.PoisonPill{}, pill)
			} else {
				require.Nil(t, pill)
			}
		})
	}
}

func TestLookupFunction(t *testing.T) {
	t.Parallel()
	require.Equal(t, []ast.Arity{ast.FixedArity{N: 0}}, LookupFunction("PI"))
	require.Equal(t, []ast.Arity{ast.FixedArity{N: 2}, ast.FixedArity{N: 3}}, LookupFunction("IF"))
	require.Equal(t, []ast.Arity{ast.VarArgsArity{}}, LookupFunction("SUM"))
	require.Equal(t, []ast.Arity{ast.LowBoundArity{N: 2}}, LookupFunction("COUNTIFS"))
	require.Nil(t, LookupFunction("NOT_A_FUNCTION"))
}

func TestReferencePrefixes(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		input    string
		parse    func(*parserExcelInput) (ast.Env, bool)
		expected ast.Env
		ok       bool
	}{
		{
			name:     "unquoted worksheet",
			input:    "Sheet1!",
			parse:    (*parserExcelInput).parseWorksheetPrefix,
			expected: ast.Env{WorksheetName: "Sheet1"},
			ok:       true,
		},
		{
			name:     "unquoted worksheet with space",
			input:    "Sheet 1!",
			parse:    (*parserExcelInput).parseWorksheetPrefix,
			expected: ast.Env{WorksheetName: "Sheet 1"},
			ok:       true,
		},
		{
			name:     "quoted worksheet",
			input:    "'Q1 (draft)'!",
			parse:    (*parserExcelInput).parseWorksheetPrefix,
			expected: ast.Env{WorksheetName: "Q1 (draft)"},
			ok:       true,
		},
		{
			name:     "quoted worksheet with escaped quote",
			input:    "'Bob''s'!",
			parse:    (*parserExcelInput).parseWorksheetPrefix,
			expected: ast.Env{WorksheetName: "Bob's"},
			ok:       true,
		},
		{
			name:     "workbook",
			input:    "'[Budget.xlsx]Sheet1'!",
			parse:    (*parserExcelInput).parseWorkbookPrefix,
			expected: ast.Env{WorkbookName: "Budget.xlsx", WorksheetName: "Sheet1"},
			ok:       true,
		},
		{
			name:     "workbook with path",
			input:    `'C:\data\[Budget.xlsx]Sheet 2'!`,
			parse:    (*parserExcelInput).parseWorkbookPrefix,
			expected: ast.Env{Path: `C:\data\`, WorkbookName: "Budget.xlsx", WorksheetName: "Sheet 2"},
			ok:       true,
		},
		{name: "missing bang", input: "Sheet1", parse: (*parserExcelInput).parseWorksheetPrefix},
		{name: "empty quoted", input: "''!", parse: (*parserExcelInput).parseWorksheetPrefix},
		{name: "unterminated quote", input: "'Sheet1!", parse: (*parserExcelInput).parseWorksheetPrefix},
		{name: "workbook without brackets", input: "'Sheet1'!", parse: (*parserExcelInput).parseWorkbookPrefix},
		{name: "empty workbook", input: "'[]Sheet1'!", parse: (*parserExcelInput).parseWorkbookPrefix},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			p := newInput(testCase.input)
			env, ok := testCase.parse(p)
			require.Equal(t, testCase.ok, ok)
			if !ok {
				require.Equal(t, 0, p.pos)
				return
			}
			require.Equal(t, len(testCase.input), p.pos)
			require.Equal(t, testCase.expected, env)
		})
	}
}

func TestConstant(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		input    string
		expected float64
		pos      int
	}{
		{input: "42", expected: 42, pos: 2},
		{input: "3.25", expected: 3.25, pos: 4},
		{input: ".5", expected: 0.5, pos: 2},
		{input: "7.", expected: 7, pos: 2},
		{input: "1e3", expected: 1000, pos: 3},
		{input: "2.5E-2", expected: 0.025, pos: 6},
		{input: "4E", expected: 4, pos: 1},
		{input: "10%", expected: 10, pos: 2},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.input, func(t *testing.T) {
			t.Parallel()
			p := newInput(testCase.input)
			actual := p.parseConstant()
			require.NotNil(t, actual)
			require.Equal(t, testCase.expected, actual.Value)
			require.Equal(t, testCase.pos, p.pos)
		})
	}
	for _, input := range []string{".", "-1", "e5", ""} {
		p := newInput(input)
		require.Nil(t, p.parseConstant(), input)
		require.Equal(t, 0, p.pos, input)
	}
}

func TestStringLiteral(t *testing.T) {
	t.Parallel()
	p := newInput(`"hello, world"&A1`)
	actual := p.parseStringLiteral()
	require.NotNil(t, actual)
	require.Equal(t, "hello, world", actual.Value)
	require.Equal(t, 14, p.pos)

	p = newInput(`""`)
	actual = p.parseStringLiteral()
	require.NotNil(t, actual)
	require.Equal(t, "", actual.Value)

	p = newInput(`"open`)
	require.Nil(t, p.parseStringLiteral())
	require.Equal(t, 0, p.pos)
}

func TestNamedReference(t *testing.T) {
	t.Parallel()
	p := newInput("tax_rate2*2")
	actual := p.parseNamedReference()
	require.NotNil(t, actual)
	require.Equal(t, "tax_rate2", actual.Name)
	require.Equal(t, EnvStub, actual.Env)
	require.Equal(t, 9, p.pos)

	p = newInput("2x")
	require.Nil(t, p.parseNamedReference())
	require.Equal(t, 0, p.pos)
}
