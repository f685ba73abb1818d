// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package export

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/bufbuild/protocompile"
	"github.com/bufbuild/protocompile/reporter"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"

	"gopkg.microglot.org/formula.go/internal/ast"
	"gopkg.microglot.org/formula.go/internal/exc"
	"gopkg.microglot.org/formula.go/internal/idl"
)

const schemaPath = "formula/v1/formula.proto"

//go:embed formula.proto
var schema string

type Format string

const (
	FormatText   Format = "text"
	FormatTree   Format = "tree"
	FormatTokens Format = "tokens"
	FormatJSON   Format = "json"
	FormatProto  Format = "proto"
)

var Formats = []Format{FormatText, FormatTree, FormatTokens, FormatJSON, FormatProto}

func ParseFormat(name string) (Format, error) {
	for _, f := range Formats {
		if string(f) == strings.ToLower(name) {
			return f, nil
		}
	}
	return "", exc.New(exc.Location{}, exc.CodeExportFailure, fmt.Sprintf("unknown output format %q", name))
}

// Exporter renders compiled sheets. The binary and JSON formats are built
// from formula.proto, which is compiled once when the Exporter is created.
type Exporter struct {
	file protoreflect.FileDescriptor
	// Refs adds the references of each formula to the text and tree formats.
	Refs bool
}

func NewExporter(ctx context.Context) (*Exporter, error) {
	c := protocompile.Compiler{
		Resolver: &protocompile.SourceResolver{
			Accessor: protocompile.SourceAccessorFromMap(map[string]string{
				schemaPath: schema,
			}),
		},
		Reporter: reporter.NewReporter(
			func(e reporter.ErrorWithPos) error {
				pos := e.GetPosition()
				loc := exc.Location{
					URI: pos.Filename,
					Location: idl.Location{
						Line:   int32(pos.Line),
						Column: int32(pos.Col),
						Offset: int64(pos.Offset),
					},
				}
				return exc.Wrap(loc, exc.CodeExportFailure, e)
			},
			nil,
		),
	}
	files, err := c.Compile(ctx, schemaPath)
	if err != nil {
		return nil, exportErr(err)
	}
	return &Exporter{file: files[0]}, nil
}

// Write renders resp to w in the given format.
func (self *Exporter) Write(w io.Writer, resp *idl.CompileResponse, format Format) error {
	switch format {
	case FormatText:
		return exportErr(self.writeText(w, resp))
	case FormatTree:
		return exportErr(self.writeTree(w, resp))
	case FormatTokens:
		return exportErr(self.writeTokens(w, resp))
	case FormatJSON, FormatProto:
		b, err := self.Marshal(resp, format)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return exportErr(err)
	default:
		return exc.New(exc.Location{}, exc.CodeExportFailure, fmt.Sprintf("unknown output format %q", format))
	}
}

// Marshal encodes resp as a formula.v1.Workbook message.
func (self *Exporter) Marshal(resp *idl.CompileResponse, format Format) ([]byte, error) {
	msg := self.Workbook(resp)
	var b []byte
	var err error
	switch format {
	case FormatJSON:
		b, err = protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(msg)
		if err == nil {
			b = append(b, '\n')
		}
	case FormatProto:
		b, err = proto.MarshalOptions{Deterministic: true}.Marshal(msg)
	default:
		err = fmt.Errorf("format %q has no message encoding", format)
	}
	if err != nil {
		return nil, exportErr(err)
	}
	return b, nil
}

// MessageType returns the descriptor of a message declared in formula.proto.
func (self *Exporter) MessageType(name string) protoreflect.MessageDescriptor {
	return self.file.Messages().ByName(protoreflect.Name(name))
}

func exportErr(err error) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(exc.Exception); ok && e.Code() == exc.CodeExportFailure {
		return e
	}
	return exc.Wrap(exc.Location{}, exc.CodeExportFailure, err)
}

// Workbook converts resp into a dynamic formula.v1.Workbook message.
func (self *Exporter) Workbook(resp *idl.CompileResponse) proto.Message {
	wb := self.newMessage("Workbook")
	sheets := wb.Mutable(field(wb, "sheets")).List()
	for _, sheet := range resp.Sheets {
		s := self.newMessage("Sheet")
		setString(s, "uri", sheet.URI)
		formulas := s.Mutable(field(s, "formulas")).List()
		for _, f := range sheet.Formulas {
			fm := self.newMessage("Formula")
			setString(fm, "uri", sheet.URI)
			fm.Set(field(fm, "line"), protoreflect.ValueOfInt32(f.Location.Line))
			fm.Set(field(fm, "column"), protoreflect.ValueOfInt32(f.Location.Column))
			setString(fm, "cell", f.Cell)
			setString(fm, "source", f.Source)
			setMessage(fm, "expression", self.Expression(f.Expression))
			formulas.Append(protoreflect.ValueOfMessage(fm))
		}
		sheets.Append(protoreflect.ValueOfMessage(s))
	}
	return wb
}

// Expression converts a single tree into a dynamic formula.v1.Expression.
func (self *Exporter) Expression(e ast.Expression) *dynamicpb.Message {
	m := self.newMessage("Expression")
	switch n := e.(type) {
	case *ast.ReferenceAddress:
		ref := self.newMessage("AddressRef")
		setMessage(ref, "env", self.env(n.Env))
		setMessage(ref, "address", self.address(n.Address))
		setMessage(m, "address", ref)
	case *ast.ReferenceRange:
		ref := self.newMessage("RangeRef")
		setMessage(ref, "env", self.env(n.Env))
		regions := ref.Mutable(field(ref, "regions")).List()
		for _, region := range n.Range.Regions {
			r := self.newMessage("Region")
			setMessage(r, "top_left", self.address(region.TopLeft))
			setMessage(r, "bottom_right", self.address(region.BottomRight))
			regions.Append(protoreflect.ValueOfMessage(r))
		}
		setMessage(m, "range", ref)
	case *ast.ReferenceNamed:
		ref := self.newMessage("NamedRef")
		setMessage(ref, "env", self.env(n.Env))
		setString(ref, "name", n.Name)
		setMessage(m, "named", ref)
	case *ast.FunctionApplication:
		call := self.newMessage("Call")
		setString(call, "name", n.Name)
		setMessage(call, "arity", self.arity(n.Arity))
		args := call.Mutable(field(call, "args")).List()
		for _, arg := range n.Args {
			args.Append(protoreflect.ValueOfMessage(self.Expression(arg)))
		}
		setMessage(m, "call", call)
	case *ast.Number:
		m.Set(field(m, "number"), protoreflect.ValueOfFloat64(n.Value))
	case *ast.StringLiteral:
		m.Set(field(m, "text"), protoreflect.ValueOfString(n.Value))
	case *ast.Boolean:
		m.Set(field(m, "boolean"), protoreflect.ValueOfBool(n.Value))
	case *ast.BinOpExpr:
		op := self.newMessage("BinOp")
		setString(op, "op", string(n.Op))
		setMessage(op, "left", self.Expression(n.Left))
		setMessage(op, "right", self.Expression(n.Right))
		setMessage(m, "bin_op", op)
	case *ast.UnaryOpExpr:
		op := self.newMessage("UnaryOp")
		setString(op, "op", string(n.Op))
		setMessage(op, "operand", self.Expression(n.Operand))
		setMessage(m, "unary_op", op)
	case *ast.ParensExpr:
		setMessage(m, "parens", self.Expression(n.Inner))
	}
	return m
}

func (self *Exporter) env(env ast.Env) *dynamicpb.Message {
	m := self.newMessage("Env")
	setString(m, "path", env.Path)
	setString(m, "workbook", env.WorkbookName)
	setString(m, "worksheet", env.WorksheetName)
	return m
}

func (self *Exporter) address(a ast.Address) *dynamicpb.Message {
	m := self.newMessage("Address")
	m.Set(field(m, "row"), protoreflect.ValueOfInt64(int64(a.Row)))
	m.Set(field(m, "column"), protoreflect.ValueOfInt64(int64(a.Column)))
	m.Set(field(m, "row_mode"), protoreflect.ValueOfEnum(protoreflect.EnumNumber(a.RowMode)))
	m.Set(field(m, "col_mode"), protoreflect.ValueOfEnum(protoreflect.EnumNumber(a.ColMode)))
	m.Set(field(m, "style"), protoreflect.ValueOfEnum(protoreflect.EnumNumber(a.Style)))
	return m
}

func (self *Exporter) arity(a ast.Arity) *dynamicpb.Message {
	m := self.newMessage("Arity")
	switch v := a.(type) {
	case ast.FixedArity:
		m.Set(field(m, "kind"), protoreflect.ValueOfEnum(0))
		m.Set(field(m, "n"), protoreflect.ValueOfInt64(int64(v.N)))
	case ast.LowBoundArity:
		m.Set(field(m, "kind"), protoreflect.ValueOfEnum(1))
		m.Set(field(m, "n"), protoreflect.ValueOfInt64(int64(v.N)))
	case ast.VarArgsArity:
		m.Set(field(m, "kind"), protoreflect.ValueOfEnum(2))
	}
	return m
}

func (self *Exporter) newMessage(name string) *dynamicpb.Message {
	return dynamicpb.NewMessage(self.MessageType(name))
}

func field(m protoreflect.Message, name string) protoreflect.FieldDescriptor {
	return m.Descriptor().Fields().ByName(protoreflect.Name(name))
}

func setString(m protoreflect.Message, name string, v string) {
	m.Set(field(m, name), protoreflect.ValueOfString(v))
}

func setMessage(m protoreflect.Message, name string, v protoreflect.ProtoMessage) {
	m.Set(field(m, name), protoreflect.ValueOfMessage(v.ProtoReflect()))
}
