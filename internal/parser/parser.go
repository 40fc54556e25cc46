// Package parser converts JSON text into an ast.Value tree by recursive
// descent, dispatching on the first significant character of each value.
package parser

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	stderrors "errors"

	"github.com/mcncl/jsonpretty/internal/ast"
	"github.com/mcncl/jsonpretty/internal/errors"
	"github.com/mcncl/jsonpretty/internal/escape"
)

// UnexpectedCharError reports a single expected delimiter or dispatch
// character that did not match. It is always surfaced to the caller,
// never absorbed by a container loop.
type UnexpectedCharError struct {
	Expected byte
	Found    byte
	Offset   int
}

func (e *UnexpectedCharError) Error() string {
	if e.Expected == 0 {
		return fmt.Sprintf("unexpected character %q at offset %d", e.Found, e.Offset)
	}
	return fmt.Sprintf("expected %q but found %q at offset %d", e.Expected, e.Found, e.Offset)
}

// Is marks every parse failure as an invalid JSON document.
func (e *UnexpectedCharError) Is(target error) bool {
	return target == errors.ErrInvalidJSON
}

// InvalidLiteralError reports a keyword token that did not spell
// true, false or null exactly.
type InvalidLiteralError struct {
	Expected string
	Found    string
	Offset   int
}

func (e *InvalidLiteralError) Error() string {
	return fmt.Sprintf("invalid literal %q at offset %d, expected %q", e.Found, e.Offset, e.Expected)
}

// Is marks every parse failure as an invalid JSON document.
func (e *InvalidLiteralError) Is(target error) bool {
	return target == errors.ErrInvalidJSON
}

// SyntaxError reports malformed input that does not fit the more specific
// error kinds, such as an unterminated string or a malformed number.
type SyntaxError struct {
	Msg    string
	Offset int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Msg, e.Offset)
}

// Is marks every parse failure as an invalid JSON document.
func (e *SyntaxError) Is(target error) bool {
	return target == errors.ErrInvalidJSON
}

type parser struct {
	src []byte
	pos int
}

// next consumes and returns the next byte.
func (p *parser) next() (byte, bool) {
	if p.pos >= len(p.src) {
		return 0, false
	}
	c := p.src[p.pos]
	p.pos++
	return c, true
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && isSpace(p.src[p.pos]) {
		p.pos++
	}
}

// peekSignificant skips whitespace and returns the next byte without
// consuming it.
func (p *parser) peekSignificant() (byte, bool) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0, false
	}
	return p.src[p.pos], true
}

// expect skips whitespace and consumes one byte, which must equal want.
func (p *parser) expect(want byte) error {
	p.skipSpace()
	c, ok := p.next()
	if !ok {
		return &SyntaxError{Msg: fmt.Sprintf("unexpected end of input, expected %q", want), Offset: p.pos}
	}
	if c != want {
		return &UnexpectedCharError{Expected: want, Found: c, Offset: p.pos - 1}
	}
	return nil
}

// parseValue dispatches on the next significant character.
func (p *parser) parseValue() (ast.Value, error) {
	c, ok := p.peekSignificant()
	if !ok {
		return ast.Value{}, &SyntaxError{Msg: "unexpected end of input, expected a value", Offset: p.pos}
	}
	switch {
	case c == '{':
		return p.parseObject()
	case c == '[':
		return p.parseArray()
	case c == '"':
		s, err := p.parseString()
		if err != nil {
			return ast.Value{}, err
		}
		return ast.NewString(s), nil
	case c == 't':
		return p.parseLiteral("true", ast.NewBool(true))
	case c == 'f':
		return p.parseLiteral("false", ast.NewBool(false))
	case c == 'n':
		return p.parseLiteral("null", ast.NewNull())
	case c == '-' || isDigit(c):
		return p.parseNumber()
	default:
		return ast.Value{}, &UnexpectedCharError{Found: c, Offset: p.pos}
	}
}

// parseString consumes a quoted string and returns its raw, unescaped
// bytes. Whitespace inside the quotes is preserved.
func (p *parser) parseString() (string, error) {
	if err := p.expect('"'); err != nil {
		return "", err
	}
	start := p.pos
	var buf []byte
	for {
		c, ok := p.next()
		if !ok {
			return "", &SyntaxError{Msg: "unterminated string", Offset: start - 1}
		}
		if c == '"' {
			break
		}
		if c == '\\' {
			esc, ok := p.next()
			if !ok {
				return "", &SyntaxError{Msg: "unterminated escape sequence", Offset: p.pos - 1}
			}
			c = escape.Decode(esc)
		}
		buf = append(buf, c)
	}
	return string(buf), nil
}

// parseObject consumes `{ members }`. Before each member the parser peeks
// the next significant character and decides up front whether another
// member follows; a non-quote character simply ends the loop, after which
// the closing brace is mandatory.
func (p *parser) parseObject() (ast.Value, error) {
	if err := p.expect('{'); err != nil {
		return ast.Value{}, err
	}
	obj := ast.NewObject()
	for {
		c, ok := p.peekSignificant()
		if !ok || c != '"' {
			break
		}
		key, value, err := p.parseMember()
		if err != nil {
			return ast.Value{}, err
		}
		// Duplicate keys overwrite: last write wins.
		obj.Set(key, value)
		c, ok = p.peekSignificant()
		if !ok || c != ',' {
			break
		}
		p.next()
	}
	if err := p.expect('}'); err != nil {
		return ast.Value{}, err
	}
	return obj, nil
}

// parseMember consumes one `"key": value` pair.
func (p *parser) parseMember() (string, ast.Value, error) {
	key, err := p.parseString()
	if err != nil {
		return "", ast.Value{}, err
	}
	if err := p.expect(':'); err != nil {
		return "", ast.Value{}, err
	}
	value, err := p.parseValue()
	if err != nil {
		return "", ast.Value{}, err
	}
	return key, value, nil
}

// parseArray consumes `[ elements ]`, the same loop shape as parseObject
// with bare values instead of members.
func (p *parser) parseArray() (ast.Value, error) {
	if err := p.expect('['); err != nil {
		return ast.Value{}, err
	}
	arr := ast.NewArray()
	for {
		c, ok := p.peekSignificant()
		if !ok || c == ']' {
			break
		}
		el, err := p.parseValue()
		if err != nil {
			return ast.Value{}, err
		}
		arr = arr.Append(el)
		c, ok = p.peekSignificant()
		if !ok || c != ',' {
			break
		}
		p.next()
	}
	if err := p.expect(']'); err != nil {
		return ast.Value{}, err
	}
	return arr, nil
}

// parseLiteral consumes one keyword token and requires it to spell want
// exactly. A mismatch such as "tru3" is unconditionally fatal.
func (p *parser) parseLiteral(want string, v ast.Value) (ast.Value, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if isSpace(c) || c == ',' || c == '}' || c == ']' {
			break
		}
		p.pos++
	}
	tok := string(p.src[start:p.pos])
	if tok != want {
		return ast.Value{}, &InvalidLiteralError{Expected: want, Found: tok, Offset: start}
	}
	return v, nil
}

// parseNumber reads the maximal run of number-shaped bytes and converts
// it as a float64. Scientific notation is accepted; no further JSON
// number-grammar validation is performed.
func (p *parser) parseNumber() (ast.Value, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if !isDigit(c) && c != '-' && c != '+' && c != '.' && c != 'e' && c != 'E' {
			break
		}
		p.pos++
	}
	tok := string(p.src[start:p.pos])
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return ast.Value{}, &SyntaxError{Msg: fmt.Sprintf("invalid number %q", tok), Offset: start}
	}
	return ast.NewNumber(f), nil
}

// wrapParseError attaches the application error layer, keeping the typed
// parser error reachable through errors.As.
func wrapParseError(err error) error {
	var (
		charErr    *UnexpectedCharError
		literalErr *InvalidLiteralError
		syntaxErr  *SyntaxError
	)
	switch {
	case stderrors.As(err, &charErr):
		return errors.NewParseError(fmt.Sprintf("JSON syntax error at offset %d", charErr.Offset), err)
	case stderrors.As(err, &literalErr):
		return errors.NewParseError(fmt.Sprintf("invalid literal at offset %d", literalErr.Offset), err)
	case stderrors.As(err, &syntaxErr):
		return errors.NewParseError(fmt.Sprintf("JSON syntax error at offset %d", syntaxErr.Offset), err)
	default:
		return errors.NewParseError("failed to parse JSON document", err)
	}
}

// ParseBytes parses a single JSON document from src.
func ParseBytes(src []byte) (ast.Value, error) {
	p := &parser{src: src}
	if _, ok := p.peekSignificant(); !ok {
		return ast.Value{}, errors.NewParseError("input is empty or contains only whitespace", errors.ErrEmptyInput)
	}
	v, err := p.parseValue()
	if err != nil {
		return ast.Value{}, wrapParseError(err)
	}
	// Anything but whitespace after the first document is an error.
	if c, ok := p.peekSignificant(); ok {
		return ast.Value{}, errors.NewParseError(
			fmt.Sprintf("unexpected trailing character %q at offset %d", c, p.pos),
			errors.ErrMultipleJSON,
		)
	}
	return v, nil
}

// Parse parses a single JSON document from an io.Reader.
func Parse(reader io.Reader) (ast.Value, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return ast.Value{}, errors.NewInputError("failed to read input", err)
	}
	return ParseBytes(data)
}

// ParseString parses a single JSON document from a string.
func ParseString(jsonString string) (ast.Value, error) {
	if strings.TrimSpace(jsonString) == "" {
		return ast.Value{}, errors.NewInputError("input string is empty", errors.ErrEmptyInput)
	}
	return ParseBytes([]byte(jsonString))
}

// ParseFile parses a single JSON document from a file path.
func ParseFile(filePath string) (ast.Value, error) {
	if strings.TrimSpace(filePath) == "" {
		return ast.Value{}, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return ast.Value{}, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return ast.Value{}, errors.NewInputError(
			fmt.Sprintf("failed to open file '%s'", filePath),
			err,
		)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
		}
	}()

	stat, err := file.Stat()
	if err != nil {
		return ast.Value{}, errors.NewInputError(
			fmt.Sprintf("failed to get file stats for '%s'", filePath),
			err,
		)
	}
	if stat.Size() == 0 {
		return ast.Value{}, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}

	return Parse(file)
}
