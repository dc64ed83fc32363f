package dt

// absolute is implemented by DateTime, Date and Time.
type absolute interface {
	Value
	cls() *class
	at() instant
	with(instant) Value
}

func (t DateTime) cls() *class { return dateTimeClass }
func (d Date) cls() *class     { return dateClass }
func (t Time) cls() *class     { return timeClass }

func (t DateTime) at() instant { return t.instant }
func (d Date) at() instant     { return d.instant }
func (t Time) at() instant     { return t.instant }

func (DateTime) with(in instant) Value { return DateTime{in} }
func (Date) with(in instant) Value     { return Date{in} }
func (Time) with(in instant) Value     { return Time{in} }

// Add applies the + operator to x and y:
//
//	absolute + Duration = absolute
//	absolute + Seconds  = absolute
//	Duration + Duration = Duration
//	Duration + Seconds  = Duration
//	Duration + absolute = absolute
//
// Any other combination fails with ErrTypeMismatch.
func Add(x Value, y Operand) (Value, error) {
	switch x := x.(type) {
	case absolute:
		switch y := y.(type) {
		case Duration:
			in, ok := x.cls().addDuration(x.at(), y)
			if !ok {
				return nil, domainError("+", x, y)
			}
			return x.with(in), nil
		case Seconds:
			return x.with(x.cls().addSeconds(x.at(), int64(y))), nil
		}
	case Duration:
		switch y := y.(type) {
		case Duration:
			return result(x.Add(y))
		case Seconds:
			return result(x.Add(NewDuration(int64(y))))
		case absolute:
			return Add(y, x)
		}
	}
	return nil, mismatchError("+", x, y)
}

// Sub applies the - operator to x and y:
//
//	absolute - absolute = Duration
//	absolute - Duration = absolute
//	absolute - Seconds  = absolute
//	Duration - Duration = Duration
//	Duration - Seconds  = Duration
//
// Any two absolute types may be subtracted. Duration - absolute fails
// with ErrTypeMismatch.
func Sub(x Value, y Operand) (Value, error) {
	switch x := x.(type) {
	case absolute:
		switch y := y.(type) {
		case absolute:
			d, ok := diff(x.at(), y.at())
			if !ok {
				return nil, domainError("-", x, y)
			}
			return d, nil
		case Duration:
			in, ok := x.cls().addDuration(x.at(), y.Neg())
			if !ok {
				return nil, domainError("-", x, y)
			}
			return x.with(in), nil
		case Seconds:
			return Sub(x, NewDuration(int64(y)))
		}
	case Duration:
		switch y := y.(type) {
		case Duration:
			return result(x.Sub(y))
		case Seconds:
			return result(x.Sub(NewDuration(int64(y))))
		}
	}
	return nil, mismatchError("-", x, y)
}

// Compare orders two values of the same type. ok is false when x and y
// have different types.
func Compare(x, y Value) (cmp int, ok bool) {
	switch x := x.(type) {
	case absolute:
		if y, isAbs := y.(absolute); isAbs && x.TypeName() == y.TypeName() {
			return x.at().compare(y.at()), true
		}
	case Duration:
		if y, isDur := y.(Duration); isDur {
			return x.Compare(y), true
		}
	}
	return 0, false
}

func result[T Value](v T, err error) (Value, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}
