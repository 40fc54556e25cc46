// Package printer serializes an ast.Value tree into indented multi-line
// JSON text. Each Printer carries its own indent-depth counter, so a
// single instance must not be shared between goroutines, but distinct
// instances writing to distinct destinations are independent.
package printer

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/mcncl/jsonpretty/internal/ast"
	"github.com/mcncl/jsonpretty/internal/errors"
	"github.com/mcncl/jsonpretty/internal/escape"
)

// DefaultIndent is the indent step width in spaces.
const DefaultIndent = 2

// Palette selects colors for the different token classes of the output.
// A nil Palette, or a nil entry, prints plain text.
type Palette struct {
	Key    *color.Color
	String *color.Color
	Number *color.Color
	Bool   *color.Color
	Null   *color.Color
	Punct  *color.Color
}

// DefaultPalette returns the standard terminal palette: blue bold keys,
// green strings, bold punctuation.
func DefaultPalette() *Palette {
	return &Palette{
		Key:    color.New(color.FgBlue, color.Bold),
		String: color.New(color.FgGreen),
		Number: color.New(color.FgCyan),
		Bool:   color.New(color.FgYellow),
		Null:   color.New(color.FgBlack, color.Bold),
		Punct:  color.New(color.Bold),
	}
}

// tokenClass identifies which palette entry colors a written token.
type tokenClass int

const (
	tokenPlain tokenClass = iota
	tokenKey
	tokenString
	tokenNumber
	tokenBool
	tokenNull
	tokenPunct
)

// Options configures a Printer.
type Options struct {
	// Indent is the per-level step width in spaces; DefaultIndent when zero.
	Indent int
	// Palette colorizes the output; nil prints plain text.
	Palette *Palette
}

// Printer writes the textual form of a Value to a single destination.
type Printer struct {
	w       io.Writer
	indent  int
	step    int
	palette *Palette
	err     error
}

// New creates a Printer writing plain, 2-space indented text to w.
func New(w io.Writer) *Printer {
	return NewWithOptions(w, Options{})
}

// NewWithOptions creates a Printer with explicit options.
func NewWithOptions(w io.Writer, opts Options) *Printer {
	step := opts.Indent
	if step <= 0 {
		step = DefaultIndent
	}
	return &Printer{w: w, step: step, palette: opts.Palette}
}

// Print writes the complete textual form of v. No trailing newline is
// emitted; that is the caller's concern.
func (pr *Printer) Print(v ast.Value) error {
	pr.printValue(v)
	if pr.err != nil {
		return errors.NewPrintError("failed to write output", pr.err)
	}
	return nil
}

// Fprint serializes v to w with default options.
func Fprint(w io.Writer, v ast.Value) error {
	return New(w).Print(v)
}

// Sprint returns the serialized form of v as a string.
func Sprint(v ast.Value) string {
	var buf bytes.Buffer
	// Writes to a bytes.Buffer cannot fail.
	_ = New(&buf).Print(v)
	return buf.String()
}

func (pr *Printer) colorFor(class tokenClass) *color.Color {
	if pr.palette == nil {
		return nil
	}
	switch class {
	case tokenKey:
		return pr.palette.Key
	case tokenString:
		return pr.palette.String
	case tokenNumber:
		return pr.palette.Number
	case tokenBool:
		return pr.palette.Bool
	case tokenNull:
		return pr.palette.Null
	case tokenPunct:
		return pr.palette.Punct
	}
	return nil
}

// write emits one token, colored according to its class. The first write
// error sticks and suppresses all further output.
func (pr *Printer) write(class tokenClass, s string) {
	if pr.err != nil {
		return
	}
	if c := pr.colorFor(class); c != nil {
		s = c.Sprint(s)
	}
	_, pr.err = io.WriteString(pr.w, s)
}

func (pr *Printer) writeIndent() {
	pr.write(tokenPlain, strings.Repeat(" ", pr.indent))
}

// printValue dispatches on the active alternative.
func (pr *Printer) printValue(v ast.Value) {
	switch v.Kind() {
	case ast.KindObject:
		pr.printObject(v)
	case ast.KindArray:
		pr.printArray(v)
	case ast.KindString:
		pr.write(tokenString, string(escape.AppendQuoted(nil, v.Str())))
	case ast.KindNumber:
		pr.write(tokenNumber, strconv.FormatFloat(v.Num(), 'g', -1, 64))
	case ast.KindTrue:
		pr.write(tokenBool, "true")
	case ast.KindFalse:
		pr.write(tokenBool, "false")
	case ast.KindNull:
		pr.write(tokenNull, "null")
	}
}

// printObject emits members in sorted key order, one per line. An empty
// object prints as an open brace, a newline and an indented close brace
// with no blank interior line.
func (pr *Printer) printObject(v ast.Value) {
	pr.write(tokenPunct, "{")
	pr.write(tokenPlain, "\n")
	pr.indent += pr.step
	keys := v.Keys()
	for i, key := range keys {
		if i > 0 {
			pr.write(tokenPunct, ",")
			pr.write(tokenPlain, "\n")
		}
		pr.writeIndent()
		pr.write(tokenKey, string(escape.AppendQuoted(nil, key)))
		pr.write(tokenPunct, ":")
		pr.write(tokenPlain, " ")
		child, _ := v.Get(key)
		pr.printValue(child)
	}
	if len(keys) > 0 {
		pr.write(tokenPlain, "\n")
	}
	pr.indent -= pr.step
	pr.writeIndent()
	pr.write(tokenPunct, "}")
}

// printArray mirrors printObject with elements instead of members.
func (pr *Printer) printArray(v ast.Value) {
	pr.write(tokenPunct, "[")
	pr.write(tokenPlain, "\n")
	pr.indent += pr.step
	elems := v.Elems()
	for i, el := range elems {
		if i > 0 {
			pr.write(tokenPunct, ",")
			pr.write(tokenPlain, "\n")
		}
		pr.writeIndent()
		pr.printValue(el)
	}
	if len(elems) > 0 {
		pr.write(tokenPlain, "\n")
	}
	pr.indent -= pr.step
	pr.writeIndent()
	pr.write(tokenPunct, "]")
}
