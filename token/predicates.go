package token

// Byte classification for the grammar. All predicates operate on single
// bytes; multi-byte UTF-8 sequences only occur inside strings and
// comments where the relevant classes admit any byte >= 0x80.

func IsWhitespace(c byte) bool {
	return c == ' ' || c == '\t'
}

func IsNewline(c byte) bool {
	return c == '\n'
}

func IsBareKeyChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '-' || c == '_':
		return true
	}
	return false
}

func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func IsHexDigit(c byte) bool {
	return IsDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func IsOctalDigit(c byte) bool {
	return c >= '0' && c <= '7'
}

func IsBinDigit(c byte) bool {
	return c == '0' || c == '1'
}

// IsControl holds for bytes a basic string may not contain raw.
func IsControl(c byte) bool {
	return (c < 0x20 && c != '\t') || c == 0x7f
}

// IsControlMulti holds for bytes a multiline basic string may not
// contain raw. Newlines are part of the value there.
func IsControlMulti(c byte) bool {
	return (c < 0x20 && c != '\t' && c != '\n' && c != '\r') || c == 0x7f
}

// IsControlLiteral holds for bytes a single-line literal string may not
// contain raw.
func IsControlLiteral(c byte) bool {
	return (c < 0x20 && c != '\t') || c == 0x7f
}

// IsNumberStart holds for bytes that can begin a number, a datetime, or
// one of inf/nan.
func IsNumberStart(c byte) bool {
	return IsDigit(c) || c == '+' || c == '-' || c == 'i' || c == 'n'
}
