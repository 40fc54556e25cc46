// Package escape implements the fixed bidirectional mapping between JSON
// backslash-escape sequences and raw bytes, shared by the parser and the
// printer.
package escape

// Decode maps the byte following a backslash to the raw byte it denotes.
// Only b, f, n, r and t translate to control characters; every other byte,
// notably '"', '\' and '/', passes through unchanged. Unicode escapes
// (\uXXXX) are not decoded.
func Decode(c byte) byte {
	switch c {
	case 'b':
		return '\b'
	case 'f':
		return '\f'
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	default:
		return c
	}
}

// Encode maps a raw byte to its escape letter. The second result reports
// whether c is one of the eight bytes that require escaping; all other
// bytes, including non-ASCII bytes and the remaining control characters,
// are emitted verbatim by the printer.
func Encode(c byte) (byte, bool) {
	switch c {
	case '"':
		return '"', true
	case '\\':
		return '\\', true
	case '/':
		return '/', true
	case '\b':
		return 'b', true
	case '\f':
		return 'f', true
	case '\n':
		return 'n', true
	case '\r':
		return 'r', true
	case '\t':
		return 't', true
	}
	return c, false
}

// AppendQuoted appends the quoted, escaped JSON form of s to dst.
func AppendQuoted(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(s); i++ {
		if esc, ok := Encode(s[i]); ok {
			dst = append(dst, '\\', esc)
		} else {
			dst = append(dst, s[i])
		}
	}
	return append(dst, '"')
}
