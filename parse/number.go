package parse

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/toml-format/go-toml/ir"
	"github.com/signadot/toml-format/go-toml/token"
)

func (p *parser) parseInfNan() (*ir.Value, error) {
	lex, pos := p.lexeme()
	return infNan(lex, pos)
}

func infNan(lex string, pos *token.Pos) (*ir.Value, error) {
	switch lex {
	case "inf", "+inf":
		return ir.FromFloat(math.Inf(1), 0, false), nil
	case "-inf":
		return ir.FromFloat(math.Inf(-1), 0, false), nil
	case "nan", "+nan", "-nan":
		return ir.FromFloat(math.NaN(), 0, false), nil
	}
	return nil, malformedErr(pos, "bad float %q", lex)
}

// parseNumber consumes a number lexeme and classifies it as integer or
// float, recording float presentation metadata.
func (p *parser) parseNumber() (*ir.Value, error) {
	lex, pos := p.lexeme()
	if lex == "" {
		return nil, malformedErr(pos, "empty number")
	}
	body := lex
	neg := false
	switch body[0] {
	case '+':
		body = body[1:]
	case '-':
		neg = true
		body = body[1:]
	}
	if body == "" {
		return nil, malformedErr(pos, "bad number %q", lex)
	}
	if body[0] == 'i' || body[0] == 'n' {
		return infNan(lex, pos)
	}
	if strings.HasPrefix(body, "0x") || strings.HasPrefix(body, "0o") || strings.HasPrefix(body, "0b") {
		if neg || lex[0] == '+' {
			return nil, malformedErr(pos, "sign on prefixed integer %q", lex)
		}
		return parseBaseInt(body, pos, lex)
	}
	isFloat := strings.ContainsAny(body, ".eE")
	if isFloat {
		return parseFloat(body, neg, pos, lex)
	}
	if err := checkUnderscores(body, token.IsDigit); err != nil {
		return nil, malformedErr(pos, "bad integer %q: %v", lex, err)
	}
	digits := strings.ReplaceAll(body, "_", "")
	if len(digits) > 1 && digits[0] == '0' {
		return nil, malformedErr(pos, "leading zero in %q", lex)
	}
	if neg {
		// keep the sign so the int64 minimum parses
		digits = "-" + digits
	}
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return nil, malformedErr(pos, "bad integer %q: %v", lex, err)
	}
	return ir.FromInt(v), nil
}

func parseBaseInt(body string, pos *token.Pos, lex string) (*ir.Value, error) {
	var (
		base int
		dig  func(byte) bool
	)
	switch body[1] {
	case 'x':
		base, dig = 16, token.IsHexDigit
	case 'o':
		base, dig = 8, token.IsOctalDigit
	case 'b':
		base, dig = 2, token.IsBinDigit
	}
	rest := body[2:]
	if rest == "" {
		return nil, malformedErr(pos, "bad integer %q", lex)
	}
	if err := checkUnderscores(rest, dig); err != nil {
		return nil, malformedErr(pos, "bad integer %q: %v", lex, err)
	}
	v, err := strconv.ParseInt(strings.ReplaceAll(rest, "_", ""), base, 64)
	if err != nil {
		return nil, malformedErr(pos, "bad integer %q: %v", lex, err)
	}
	return ir.FromInt(v), nil
}

func parseFloat(body string, neg bool, pos *token.Pos, lex string) (*ir.Value, error) {
	mant := body
	scientific := false
	if i := strings.IndexAny(body, "eE"); i >= 0 {
		scientific = true
		mant = body[:i]
		exp := body[i+1:]
		if exp != "" && (exp[0] == '+' || exp[0] == '-') {
			exp = exp[1:]
		}
		if exp == "" {
			return nil, malformedErr(pos, "empty exponent in %q", lex)
		}
		if err := checkUnderscores(exp, token.IsDigit); err != nil {
			return nil, malformedErr(pos, "bad float %q: %v", lex, err)
		}
	}
	intPart, frac := mant, ""
	if i := strings.IndexByte(mant, '.'); i >= 0 {
		intPart, frac = mant[:i], mant[i+1:]
		if intPart == "" || frac == "" {
			return nil, malformedErr(pos, "dot needs digits on both sides in %q", lex)
		}
	}
	if intPart == "" {
		return nil, malformedErr(pos, "bad float %q", lex)
	}
	if err := checkUnderscores(intPart, token.IsDigit); err != nil {
		return nil, malformedErr(pos, "bad float %q: %v", lex, err)
	}
	if frac != "" {
		if err := checkUnderscores(frac, token.IsDigit); err != nil {
			return nil, malformedErr(pos, "bad float %q: %v", lex, err)
		}
	}
	cleanInt := strings.ReplaceAll(intPart, "_", "")
	if len(cleanInt) > 1 && cleanInt[0] == '0' {
		return nil, malformedErr(pos, "leading zero in %q", lex)
	}
	clean := strings.ReplaceAll(body, "_", "")
	f, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return nil, malformedErr(pos, "bad float %q: %v", lex, err)
	}
	if neg {
		f = -f
	}
	precision := len(strings.ReplaceAll(frac, "_", ""))
	return ir.FromFloat(f, precision, scientific), nil
}

// checkUnderscores requires every underscore to sit between two digits
// of the given class, and every other byte to be such a digit.
func checkUnderscores(s string, dig func(byte) bool) error {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '_' {
			if i == 0 || i == len(s)-1 || !dig(s[i-1]) || !dig(s[i+1]) {
				return errStrayUnderscore
			}
			continue
		}
		if !dig(c) {
			return fmt.Errorf("%q is not a digit", c)
		}
	}
	return nil
}

var errStrayUnderscore = errors.New("underscore not between digits")
