package xiangqi

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFEN    = errors.New("invalid FEN")
	ErrInvalidMove   = errors.New("invalid move")
	ErrInvalidSquare = errors.New("invalid square")
)

// ParseError 记录出错的原始输入；errors.Is 可以匹配到对应的哨兵错误。
type ParseError struct {
	Input  string
	Reason string
	kind   error
}

func newParseError(kind error, input, reason string) *ParseError {
	return &ParseError{Input: input, Reason: reason, kind: kind}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %s (input %q)", e.kind, e.Reason, e.Input)
}

func (e *ParseError) Unwrap() error { return e.kind }
