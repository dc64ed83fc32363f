package dt

import (
	"fmt"
	"strconv"
)

// Value is implemented by DateTime, Date, Time and Duration.
// The set is closed.
type Value interface {
	Operand
	fmt.Stringer
	Kind() Kind
	TypeName() string
	isValue()
}

// Operand is the right-hand side of Add and Sub: a Value or Seconds.
// The set is closed.
type Operand interface {
	isOperand()
}

// Seconds is a plain number of seconds used as an operand.
// Added to an absolute value it is applied directly; in every other
// position it stands for NewDuration(int64(s)).
type Seconds int64

func (Seconds) isOperand()  {}
func (DateTime) isOperand() {}
func (Date) isOperand()     {}
func (Time) isOperand()     {}
func (Duration) isOperand() {}

func (DateTime) isValue() {}
func (Date) isValue()     {}
func (Time) isValue()     {}
func (Duration) isValue() {}

func operandType(x Operand) string {
	switch x := x.(type) {
	case Value:
		return x.TypeName()
	case Seconds:
		return "Seconds"
	}
	return fmt.Sprintf("%T", x)
}

// describe renders an operand for error messages, e.g. DateTime("+TInf").
func describe(x Operand) string {
	switch x := x.(type) {
	case Value:
		return x.TypeName() + "(" + strconv.Quote(x.String()) + ")"
	case Seconds:
		return strconv.FormatInt(int64(x), 10)
	}
	return fmt.Sprint(x)
}
