package token

import "fmt"

// Source is a cursor over a whole in-memory document. The parser reads
// one byte at a time and may rewind by an explicit count; rewinds past
// the start are errors rather than panics.
type Source struct {
	d      []byte
	doc    *PosDoc
	i      int
	limits Limits
}

type SourceOpt func(*Source)

func WithLimits(l Limits) SourceOpt {
	return func(s *Source) {
		s.limits = l
	}
}

func NewSource(d []byte, opts ...SourceOpt) (*Source, error) {
	s := &Source{
		d:      d,
		doc:    NewPosDoc(d),
		limits: DefaultLimits(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if len(d) > s.limits.MaxFileSize {
		return nil, fmt.Errorf("%w: input is %d bytes, max is %d",
			ErrBufferOverflow, len(d), s.limits.MaxFileSize)
	}
	for i, c := range d {
		if c == '\n' {
			s.doc.nl(i)
		}
	}
	if nl := len(s.doc.n); nl > s.limits.MaxLines {
		return nil, fmt.Errorf("%w: input has %d lines, max is %d",
			ErrBufferOverflow, nl, s.limits.MaxLines)
	}
	return s, nil
}

// Next returns the byte under the cursor and advances. The second
// result is false at end of input.
func (s *Source) Next() (byte, bool) {
	if s.i >= len(s.d) {
		return 0, false
	}
	c := s.d[s.i]
	s.i++
	return c, true
}

// Peek returns the byte under the cursor without advancing.
func (s *Source) Peek() (byte, bool) {
	if s.i >= len(s.d) {
		return 0, false
	}
	return s.d[s.i], true
}

// PeekAt returns the byte k positions ahead of the cursor.
func (s *Source) PeekAt(k int) (byte, bool) {
	if s.i+k >= len(s.d) || s.i+k < 0 {
		return 0, false
	}
	return s.d[s.i+k], true
}

// Backtrack rewinds the cursor by n bytes.
func (s *Source) Backtrack(n int) error {
	if n > s.i {
		return NewSourceErr(
			fmt.Errorf("%w: rewind %d at offset %d", ErrBacktrack, n, s.i),
			s.Pos())
	}
	s.i -= n
	return nil
}

func (s *Source) Offset() int {
	return s.i
}

// Pos is the position of the byte most recently returned by Next, or
// of the cursor itself when nothing has been consumed.
func (s *Source) Pos() *Pos {
	if s.i == 0 {
		return s.doc.Pos(0)
	}
	return s.doc.Pos(s.i - 1)
}

// PosAt returns the position of an arbitrary offset.
func (s *Source) PosAt(i int) *Pos {
	return s.doc.Pos(i)
}

func (s *Source) End() *Pos {
	return s.doc.end()
}

func (s *Source) Limits() Limits {
	return s.limits
}
