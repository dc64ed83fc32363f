package dt

import "math"

// Kind tells a finite value apart from the two infinities.
type Kind uint8

const (
	Finite Kind = iota
	PosInf
	NegInf
)

func (k Kind) String() string {
	switch k {
	case Finite:
		return "finite"
	case PosInf:
		return "+inf"
	case NegInf:
		return "-inf"
	}
	return "invalid"
}

// neg returns the kind of the negated value.
func (k Kind) neg() Kind {
	switch k {
	case PosInf:
		return NegInf
	case NegInf:
		return PosInf
	}
	return k
}

// rank orders kinds as -inf < finite < +inf.
func (k Kind) rank() int {
	switch k {
	case PosInf:
		return 1
	case NegInf:
		return -1
	}
	return 0
}

// sumKind reports the kind of a+b given the kinds of a and b.
// ok is false when the sum of two opposite infinities is requested.
func sumKind(a, b Kind) (k Kind, ok bool) {
	switch {
	case a == Finite:
		return b, true
	case b == Finite, a == b:
		return a, true
	}
	return Finite, false
}

// addSat returns a+b, saturating to an infinity on int64 overflow.
func addSat(a, b int64) (int64, Kind) {
	s := a + b
	switch {
	case a > 0 && b > 0 && s < 0:
		return 0, PosInf
	case a < 0 && b < 0 && s >= 0:
		return 0, NegInf
	}
	return s, Finite
}

// subSat returns a-b, saturating to an infinity on int64 overflow.
func subSat(a, b int64) (int64, Kind) {
	s := a - b
	switch {
	case a >= 0 && b < 0 && s < 0:
		return 0, PosInf
	case a < 0 && b > 0 && s >= 0:
		return 0, NegInf
	}
	return s, Finite
}

// mulSat returns a*b for b > 0, saturating on overflow.
func mulSat(a, b int64) (int64, Kind) {
	switch {
	case a > math.MaxInt64/b:
		return 0, PosInf
	case a < math.MinInt64/b:
		return 0, NegInf
	}
	return a * b, Finite
}

func compareInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
