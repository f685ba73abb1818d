// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package iter

import (
	"context"
	"strings"

	"gopkg.microglot.org/formula.go/internal/idl"
	"gopkg.microglot.org/formula.go/internal/optional"
)

// NewLines splits a stream of code points into lines. "\n", "\r\n", and a lone
// "\r" all terminate a line. A trailing terminator does not produce an extra
// empty line.
func NewLines(points idl.Iterator[idl.CodePoint]) idl.Iterator[idl.Line] {
	return &lines{
		points: NewLookahead(points, 1),
	}
}

type lines struct {
	points idl.Lookahead[idl.CodePoint]
	number int32
	done   bool
}

func (self *lines) Next(ctx context.Context) optional.Optional[idl.Line] {
	if self.done {
		return optional.None[idl.Line]()
	}
	var b strings.Builder
	read := false
	for point := self.points.Next(ctx); point.IsPresent(); point = self.points.Next(ctx) {
		read = true
		r := rune(point.Value())
		switch r {
		case '\n':
			return self.emit(b.String())
		case '\r':
			if n := self.points.Lookahead(ctx, 1); n.IsPresent() && n.Value() == '\n' {
				_ = self.points.Next(ctx)
			}
			return self.emit(b.String())
		default:
			b.WriteRune(r)
		}
	}
	self.done = true
	if !read {
		return optional.None[idl.Line]()
	}
	return self.emit(b.String())
}

func (self *lines) emit(text string) optional.Optional[idl.Line] {
	self.number = self.number + 1
	return optional.Some(idl.Line{Number: self.number, Text: text})
}

func (self *lines) Close(ctx context.Context) error {
	return self.points.Close(ctx)
}
