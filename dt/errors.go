package dt

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Error categories. Every error returned by this package is marked with
// exactly one of them; test with errors.Is.
var (
	// ErrParse reports a string that matches no layout or label of the
	// requested type.
	ErrParse = errors.New("parse error")

	// ErrTypeMismatch reports an operator applied to operands of
	// incompatible types, such as DateTime + DateTime.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrDomain reports arithmetic whose result is undefined, such as
	// +Inf - +Inf.
	ErrDomain = errors.New("domain error")
)

func parseErrorf(layouts []string, format string, args ...interface{}) error {
	err := errors.Newf(format, args...)
	if len(layouts) > 0 {
		err = errors.WithHintf(err, "accepted layouts: %s", strings.Join(layouts, ", "))
	}
	return errors.Mark(err, ErrParse)
}

func mismatchError(op string, x, y Operand) error {
	return errors.Mark(errors.Newf("invalid operands: %s %s %s", operandType(x), op, operandType(y)), ErrTypeMismatch)
}

func domainError(op string, x, y Operand) error {
	return errors.Mark(errors.Newf("invalid operation: %s %s %s", describe(x), op, describe(y)), ErrDomain)
}

func domainErrorf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrDomain)
}
