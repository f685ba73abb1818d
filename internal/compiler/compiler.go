// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package compiler

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"gopkg.microglot.org/formula.go/internal/compiler/excel"
	"gopkg.microglot.org/formula.go/internal/exc"
	"gopkg.microglot.org/formula.go/internal/fs"
	"gopkg.microglot.org/formula.go/internal/idl"
	"gopkg.microglot.org/formula.go/internal/target"
)

const (
	envPath     = "FORMULA_PATH"
	envMaxDepth = "FORMULA_MAX_DEPTH"
)

// InlineURI names the sheet that holds formulas given directly in a request.
const InlineURI = "inline:"

type Option func(c *compiler) error

func OptionWithFS(fs idl.FileSystem) Option {
	return func(c *compiler) error {
		c.FS = fs
		return nil
	}
}

func OptionWithLookupEnv(lookupEnv func(string) (string, bool)) Option {
	return func(c *compiler) error {
		c.LookupENV = lookupEnv
		return nil
	}
}

func OptionWithExcReporter(reporter exc.Reporter) Option {
	return func(c *compiler) error {
		c.Reporter = reporter
		return nil
	}
}

// OptionWithMaxDepth limits how deeply expressions may nest. It takes
// precedence over FORMULA_MAX_DEPTH.
func OptionWithMaxDepth(depth int) Option {
	return func(c *compiler) error {
		if depth < 1 {
			return fmt.Errorf("max depth must be positive, got %d", depth)
		}
		c.MaxDepth = depth
		return nil
	}
}

func OptionWithLogger(logger *slog.Logger) Option {
	return func(c *compiler) error {
		c.Logger = logger
		return nil
	}
}

func OptionWithMaxConcurrency(n int) Option {
	return func(c *compiler) error {
		c.MaxConcurrency = n
		return nil
	}
}

func New(opts ...Option) (idl.Compiler, error) {
	c := &compiler{}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.LookupENV == nil {
		c.LookupENV = os.LookupEnv
	}
	if c.MaxDepth == 0 {
		c.MaxDepth = excel.DefaultMaxDepth
		if v, ok := c.LookupENV(envMaxDepth); ok && v != "" {
			depth, err := strconv.Atoi(v)
			if err != nil || depth < 1 {
				return nil, fmt.Errorf("%s must be a positive integer, got %q", envMaxDepth, v)
			}
			c.MaxDepth = depth
		}
	}
	if c.FS == nil {
		dfs, err := NewDefaultFS(c.LookupENV)
		if err != nil {
			return nil, err
		}
		c.FS = dfs
	}
	if c.MaxConcurrency == 0 {
		max := runtime.GOMAXPROCS(-1)
		cpus := runtime.NumCPU()
		if max > cpus {
			max = cpus
		}
		c.MaxConcurrency = max
	}
	if c.Semaphore == nil {
		c.Semaphore = newSemaphore(c.MaxConcurrency)
	}
	if c.Reporter == nil {
		c.Reporter = exc.NewReporter(nil)
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if c.SubCompilers == nil {
		c.SubCompilers = DefaultSubCompilers(excel.NewParserExcel(excel.OptionWithMaxDepth(c.MaxDepth)))
	}
	return c, nil
}

type compiler struct {
	LookupENV      func(string) (string, bool)
	FS             idl.FileSystem
	MaxConcurrency int
	MaxDepth       int
	Semaphore      *semaphore
	Reporter       exc.Reporter
	Logger         *slog.Logger
	SubCompilers   map[idl.FileKind]SubCompiler
}

// Compile parses every formula of every requested source. Sheets are returned
// in request order with inline formulas last. Formulas that fail to parse are
// reported and left out; the response is still returned alongside a
// MultiException describing them.
func (self *compiler) Compile(ctx context.Context, req *idl.CompileRequest) (*idl.CompileResponse, error) {
	inline := append([]string(nil), req.Formulas...)
	targets := make([]string, 0, len(req.Files))
	for _, f := range req.Files {
		if target.IsFormula(f) {
			inline = append(inline, strings.TrimSpace(f))
			continue
		}
		targets = append(targets, target.Normalize(f))
	}
	files := make([]idl.File, 0, len(targets)+1)
	for _, t := range targets {
		in, err := self.FS.Open(ctx, t)
		if err != nil {
			e, ok := err.(exc.Exception)
			if !ok {
				e = exc.WrapUnknown(exc.Location{URI: t}, err)
			}
			if fatal := self.Reporter.Report(e); fatal != nil {
				return nil, fatal
			}
			continue
		}
		for _, inf := range in {
			if inf.Kind(ctx) == idl.FileKindNone {
				self.Logger.Debug("skipping file of unknown kind", "uri", inf.Path(ctx))
				continue
			}
			files = append(files, inf)
		}
	}
	if len(inline) > 0 {
		files = append(files, fs.NewFileString(InlineURI, strings.Join(inline, "\n"), idl.FileKindFormula))
	}

	loaded := &sync.Map{}
	results := make(chan fileResult)
	for offset, file := range files {
		go func(offset int, file idl.File) {
			sheet, err := self.compileFile(ctx, file, loaded)
			results <- fileResult{offset: offset, sheet: sheet, err: err}
		}(offset, file)
	}

	sheets := make([]*idl.Sheet, len(files))
	var fatal error
	for x := 0; x < len(files); x = x + 1 {
		result := <-results
		if result.err != nil && fatal == nil {
			fatal = result.err
		}
		sheets[result.offset] = result.sheet
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if fatal != nil {
		return nil, fatal
	}

	resp := &idl.CompileResponse{}
	for _, sheet := range sheets {
		if sheet != nil {
			resp.Sheets = append(resp.Sheets, sheet)
		}
	}
	caught := self.Reporter.Reported()
	if len(caught) > 0 {
		return resp, MultiException(caught)
	}
	return resp, nil
}

func (self *compiler) compileFile(ctx context.Context, file idl.File, loaded *sync.Map) (*idl.Sheet, error) {
	if err := self.Semaphore.Acquire(ctx); err != nil {
		return nil, err
	}
	defer self.Semaphore.Release()
	uri := file.Path(ctx)
	if _, ok := loaded.LoadOrStore(uri, true); ok {
		return nil, nil
	}
	sc := self.SubCompilers[file.Kind(ctx)]
	if sc == nil {
		e := exc.New(exc.Location{URI: uri}, exc.CodeUnsupportedFileFormat, "unsupported file format")
		return nil, self.Reporter.Report(e)
	}
	self.Logger.Debug("parsing", "uri", uri, "kind", file.Kind(ctx).String())
	sheet, err := sc.CompileFile(ctx, self.Reporter, file)
	if err != nil {
		return nil, err
	}
	if sheet == nil {
		return nil, nil
	}
	self.Logger.Debug("parsed", "uri", uri, "formulas", len(sheet.Formulas))
	return sheet, nil
}

type fileResult struct {
	offset int
	sheet  *idl.Sheet
	err    error
}

type MultiException []exc.Exception

func (self MultiException) Error() string {
	var b strings.Builder
	for _, err := range self[:len(self)-1] {
		b.WriteString(err.Error())
		b.WriteString("; ")
	}
	b.WriteString(self[len(self)-1].Error())
	return b.String()
}
