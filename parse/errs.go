package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/toml-format/go-toml/token"
)

var (
	// ErrMalformedToken reports a lexeme that starts like a valid token
	// but does not finish as one.
	ErrMalformedToken = errors.New("malformed token")
	// ErrUnexpectedChar reports a byte no grammar production admits here.
	ErrUnexpectedChar = errors.New("unexpected character")
	// ErrIO wraps failures reading input.
	ErrIO = errors.New("io failure")
)

func malformedErr(pos *token.Pos, format string, args ...any) error {
	return fmt.Errorf("%w: %s at %s", ErrMalformedToken,
		fmt.Sprintf(format, args...), pos)
}

func unexpectedErr(c byte, pos *token.Pos) error {
	return fmt.Errorf("%w %q at %s", ErrUnexpectedChar, c, pos)
}

func unexpectedEOF(pos *token.Pos) error {
	return fmt.Errorf("%w: unexpected end of input at %s", ErrMalformedToken, pos)
}
