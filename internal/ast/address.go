// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package ast

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Env identifies where a reference points: an optional file path, workbook, and
// worksheet. Empty fields mean "unqualified".
type Env struct {
	Path          string
	WorkbookName  string
	WorksheetName string
}

func (e Env) Equal(o Env) bool {
	return e.Path == o.Path && e.WorkbookName == o.WorkbookName && e.WorksheetName == o.WorksheetName
}

// ToFormula renders the qualification prefix of a reference, including the
// trailing "!". An empty Env renders as the empty string.
func (e Env) ToFormula() string {
	switch {
	case e.WorkbookName != "":
		return "'" + strings.ReplaceAll(e.Path, "'", "''") + "[" + e.WorkbookName + "]" + e.WorksheetName + "'!"
	case e.WorksheetName != "":
		if !isUnquotedWorksheetName(e.WorksheetName) {
			return "'" + strings.ReplaceAll(e.WorksheetName, "'", "''") + "'!"
		}
		return e.WorksheetName + "!"
	default:
		return ""
	}
}

func isUnquotedWorksheetName(name string) bool {
	for _, r := range name {
		if !IsWorksheetRune(r) {
			return false
		}
	}
	return true
}

// IsWorksheetRune reports whether r may appear in an unquoted worksheet name.
func IsWorksheetRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == ' '
}

type AddressMode uint8

const (
	AddressModeUnknown  AddressMode = 0
	AddressModeAbsolute AddressMode = 1
	AddressModeRelative AddressMode = 2
)

func (m AddressMode) String() string {
	switch m {
	case AddressModeAbsolute:
		return "absolute"
	case AddressModeRelative:
		return "relative"
	default:
		return fmt.Sprintf("unknown-%d", uint8(m))
	}
}

// AddressStyle records the notation an address was written in.
type AddressStyle uint8

const (
	AddressStyleA1   AddressStyle = 0
	AddressStyleR1C1 AddressStyle = 1
)

// Address is a single cell. In A1 style Row and Column are 1-based. In R1C1
// style a relative axis holds an offset, which may be zero or negative.
type Address struct {
	Row     int
	Column  int
	RowMode AddressMode
	ColMode AddressMode
	Style   AddressStyle
	Env     Env
}

// Equal compares row, column, workbook and worksheet. The path is ignored
// because the same workbook may live at different paths.
func (a Address) Equal(o Address) bool {
	return a.Row == o.Row &&
		a.Column == o.Column &&
		a.Env.WorksheetName == o.Env.WorksheetName &&
		a.Env.WorkbookName == o.Env.WorkbookName
}

func (a Address) CopyWithNewEnv(env Env) Address {
	a.Env = env
	return a
}

func (a Address) ToA1Ref() string {
	var b strings.Builder
	if a.ColMode == AddressModeAbsolute {
		b.WriteByte('$')
	}
	b.WriteString(ColumnToLetters(a.Column))
	if a.RowMode == AddressModeAbsolute {
		b.WriteByte('$')
	}
	b.WriteString(strconv.Itoa(a.Row))
	return b.String()
}

func (a Address) ToR1C1Ref() string {
	return "R" + r1c1Axis(a.Row, a.RowMode) + "C" + r1c1Axis(a.Column, a.ColMode)
}

func r1c1Axis(v int, mode AddressMode) string {
	if mode == AddressModeRelative {
		return "[" + strconv.Itoa(v) + "]"
	}
	return strconv.Itoa(v)
}

// ToFormula renders the address in the style it was parsed from, without any
// Env prefix.
func (a Address) ToFormula() string {
	if a.Style == AddressStyleR1C1 {
		return a.ToR1C1Ref()
	}
	return a.ToA1Ref()
}

func (a Address) String() string {
	return fmt.Sprintf("(%d,%d)", a.Column, a.Row)
}

// ColumnToInt decodes an A1 column label. Labels are base-26 numbers with no
// zero digit: A=1, Z=26, AA=27.
func ColumnToInt(col string) int {
	n := 0
	for _, r := range col {
		n = n*26 + int(r-'A'+1)
	}
	return n
}

// ColumnToLetters is the inverse of ColumnToInt.
func ColumnToLetters(n int) string {
	if n <= 0 {
		return ""
	}
	var buf []byte
	for n > 0 {
		n--
		buf = append(buf, byte('A'+n%26))
		n = n / 26
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// Region is one rectangular block of a Range.
type Region struct {
	TopLeft     Address
	BottomRight Address
}

// Range is an ordered list of regions. A Range with more than one region is a
// discontiguous selection such as A1:B10,C1:D10.
type Range struct {
	Regions []Region
}

func NewRange(tl Address, br Address) Range {
	return Range{Regions: []Region{{TopLeft: tl, BottomRight: br}}}
}

// Merge returns a new Range holding the regions of r followed by those of o.
func (r Range) Merge(o Range) Range {
	regions := make([]Region, 0, len(r.Regions)+len(o.Regions))
	regions = append(regions, r.Regions...)
	regions = append(regions, o.Regions...)
	return Range{Regions: regions}
}

func (r Range) IsContiguous() bool {
	return len(r.Regions) == 1
}

func (r Range) CopyWithNewEnv(env Env) Range {
	regions := make([]Region, len(r.Regions))
	for x, region := range r.Regions {
		regions[x] = Region{
			TopLeft:     region.TopLeft.CopyWithNewEnv(env),
			BottomRight: region.BottomRight.CopyWithNewEnv(env),
		}
	}
	return Range{Regions: regions}
}

func (r Range) Equal(o Range) bool {
	if len(r.Regions) != len(o.Regions) {
		return false
	}
	for x := range r.Regions {
		if !r.Regions[x].TopLeft.Equal(o.Regions[x].TopLeft) || !r.Regions[x].BottomRight.Equal(o.Regions[x].BottomRight) {
			return false
		}
	}
	return true
}

func (r Range) ToFormula() string {
	parts := make([]string, 0, len(r.Regions))
	for _, region := range r.Regions {
		parts = append(parts, region.TopLeft.ToFormula()+":"+region.BottomRight.ToFormula())
	}
	return strings.Join(parts, ",")
}

func (r Range) String() string {
	parts := make([]string, 0, len(r.Regions))
	for _, region := range r.Regions {
		parts = append(parts, region.TopLeft.String()+":"+region.BottomRight.String())
	}
	return "List(" + strings.Join(parts, ",") + ")"
}
