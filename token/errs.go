package token

import (
	"errors"
	"fmt"
)

var (
	// ErrBufferOverflow reports input exceeding a configured limit.
	ErrBufferOverflow = errors.New("buffer overflow")
	// ErrBacktrack reports a rewind past the start of the input.
	ErrBacktrack = errors.New("backtrack before start of input")
)

// SourceErr annotates an error with the position it occurred at.
type SourceErr struct {
	Err error
	Pos Pos
}

func NewSourceErr(e error, p *Pos) *SourceErr {
	return &SourceErr{Err: e, Pos: *p}
}

func (e *SourceErr) Unwrap() error {
	return e.Err
}

func (e *SourceErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}
