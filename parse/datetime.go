package parse

import (
	"fmt"
	"strings"
	"time"

	"github.com/signadot/toml-format/go-toml/ir"
	"github.com/signadot/toml-format/go-toml/token"
)

// maxFormatLen caps the reconstructed datetime format string.
const maxFormatLen = 64

// parseDatetime handles the four datetime shapes: offset datetime,
// local datetime, local date, and local time, each with optional
// fractional seconds.
func (p *parser) parseDatetime() (*ir.Value, error) {
	lex, pos := p.lexeme()
	// a space may separate date and time; the lexeme stops at it, so
	// look ahead for a following time part and splice it back on.
	if len(lex) == 10 {
		c0, ok0 := p.src.Peek()
		d1, ok1 := p.src.PeekAt(1)
		d2, ok2 := p.src.PeekAt(2)
		col, ok3 := p.src.PeekAt(3)
		if ok0 && c0 == ' ' && ok1 && token.IsDigit(d1) &&
			ok2 && token.IsDigit(d2) && ok3 && col == ':' {
			p.src.Next()
			rest, _ := p.lexeme()
			lex = lex + " " + rest
		}
	}
	if len(lex) >= 3 && lex[2] == ':' {
		return parseLocalTime(lex, pos)
	}
	return parseDate(lex, pos)
}

func parseLocalTime(lex string, pos *token.Pos) (*ir.Value, error) {
	h, m, s, ns, frac, rest, err := timePart(lex, pos)
	if err != nil {
		return nil, err
	}
	if rest != "" {
		return nil, malformedErr(pos, "trailing %q in time %q", rest, lex)
	}
	format := "%H:%M:%S" + fracFormat(frac)
	if len(format) > maxFormatLen {
		return nil, malformedErr(pos, "time format overflows in %q", lex)
	}
	t := time.Date(1, time.January, 1, h, m, s, ns, time.UTC)
	return ir.FromTime(t, ir.TimeLocalType, lex, format), nil
}

func parseDate(lex string, pos *token.Pos) (*ir.Value, error) {
	if len(lex) < 10 || lex[4] != '-' || lex[7] != '-' {
		return nil, malformedErr(pos, "bad date %q", lex)
	}
	y, err := dtInt(lex[0:4])
	if err != nil {
		return nil, malformedErr(pos, "bad year in %q", lex)
	}
	mo, err := dtInt(lex[5:7])
	if err != nil {
		return nil, malformedErr(pos, "bad month in %q", lex)
	}
	d, err := dtInt(lex[8:10])
	if err != nil {
		return nil, malformedErr(pos, "bad day in %q", lex)
	}
	if mo < 1 || mo > 12 {
		return nil, malformedErr(pos, "month %d out of range in %q", mo, lex)
	}
	if d < 1 || d > daysIn(y, mo) {
		return nil, malformedErr(pos, "day %d out of range in %q", d, lex)
	}
	if len(lex) == 10 {
		t := time.Date(y, time.Month(mo), d, 0, 0, 0, 0, time.UTC)
		return ir.FromTime(t, ir.DateLocalType, lex, "%Y-%m-%d"), nil
	}
	sep := lex[10]
	if sep != 'T' && sep != 't' && sep != ' ' {
		return nil, malformedErr(pos, "bad date-time separator %q in %q", sep, lex)
	}
	h, mi, s, ns, frac, rest, err := timePart(lex[11:], pos)
	if err != nil {
		return nil, err
	}
	typ := ir.DatetimeLocalType
	suffix := ""
	switch {
	case rest == "":
	case rest == "Z" || rest == "z":
		typ = ir.DatetimeType
		suffix = "Z"
	default:
		if err := checkOffset(rest); err != nil {
			return nil, malformedErr(pos, "bad offset %q in %q: %v", rest, lex, err)
		}
		typ = ir.DatetimeType
		suffix = rest
	}
	format := "%Y-%m-%dT%H:%M:%S" + fracFormat(frac) + suffix
	if len(format) > maxFormatLen {
		return nil, malformedErr(pos, "datetime format overflows in %q", lex)
	}
	// the offset stays in the format; the stored time keeps the
	// written wall-clock fields.
	t := time.Date(y, time.Month(mo), d, h, mi, s, ns, time.UTC)
	return ir.FromTime(t, typ, lex, format), nil
}

// timePart parses HH:MM:SS with optional fractional seconds from the
// front of s, returning whatever trails it.
func timePart(s string, pos *token.Pos) (h, m, sec, ns int, frac, rest string, err error) {
	if len(s) < 8 || s[2] != ':' || s[5] != ':' {
		return 0, 0, 0, 0, "", "", malformedErr(pos, "bad time %q", s)
	}
	if h, err = dtInt(s[0:2]); err != nil {
		return 0, 0, 0, 0, "", "", malformedErr(pos, "bad hour in %q", s)
	}
	if m, err = dtInt(s[3:5]); err != nil {
		return 0, 0, 0, 0, "", "", malformedErr(pos, "bad minute in %q", s)
	}
	if sec, err = dtInt(s[6:8]); err != nil {
		return 0, 0, 0, 0, "", "", malformedErr(pos, "bad second in %q", s)
	}
	if h > 23 || m > 59 || sec > 59 {
		return 0, 0, 0, 0, "", "", malformedErr(pos, "time %q out of range", s)
	}
	rest = s[8:]
	if strings.HasPrefix(rest, ".") {
		i := 1
		for i < len(rest) && token.IsDigit(rest[i]) {
			i++
		}
		if i == 1 {
			return 0, 0, 0, 0, "", "", malformedErr(pos, "empty fraction in %q", s)
		}
		frac = rest[1:i]
		rest = rest[i:]
		ns = fracNanos(frac)
	}
	return h, m, sec, ns, frac, rest, nil
}

// fracNanos converts fractional second digits to nanoseconds.
func fracNanos(frac string) int {
	ns := 0
	for i := 0; i < 9; i++ {
		ns *= 10
		if i < len(frac) {
			ns += int(frac[i] - '0')
		}
	}
	return ns
}

// fracFormat renders the fraction into the format string, normalized
// to at least millisecond width.
func fracFormat(frac string) string {
	if frac == "" {
		return ""
	}
	ms := 0
	for i := 0; i < len(frac) && i < 3; i++ {
		ms = ms*10 + int(frac[i]-'0')
	}
	switch len(frac) {
	case 1:
		ms *= 100
	case 2:
		ms *= 10
	}
	if len(frac) > 3 {
		return fmt.Sprintf(".%03d%s", ms, frac[3:])
	}
	return fmt.Sprintf(".%03d", ms)
}

func checkOffset(s string) error {
	if len(s) != 6 || (s[0] != '+' && s[0] != '-') || s[3] != ':' {
		return fmt.Errorf("expected +hh:mm or -hh:mm")
	}
	h, err := dtInt(s[1:3])
	if err != nil {
		return err
	}
	m, err := dtInt(s[4:6])
	if err != nil {
		return err
	}
	if h > 23 || m > 59 {
		return fmt.Errorf("offset out of range")
	}
	return nil
}

func daysIn(y, mo int) int {
	switch mo {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	}
	if y%4 == 0 && (y%100 != 0 || y%400 == 0) {
		return 29
	}
	return 28
}

func dtInt(s string) (int, error) {
	v := 0
	for i := 0; i < len(s); i++ {
		if !token.IsDigit(s[i]) {
			return 0, fmt.Errorf("%q is not a number", s)
		}
		v = v*10 + int(s[i]-'0')
	}
	return v, nil
}
