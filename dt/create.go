package dt

// Create converts x to a Value on a best-effort basis, using the
// process-wide configuration. See Config.Create.
func Create(x interface{}) interface{} {
	return CurrentConfig().Create(x)
}

// Create converts x to a Value on a best-effort basis:
//
//   - a Value is returned unchanged;
//   - a number is a Duration of that many seconds;
//   - a string is parsed as a Date, then a DateTime, then a Duration,
//     and the first success is returned.
//
// Anything that cannot be converted, including a string no parser
// accepts, is returned unchanged. Create never fails.
func (c Config) Create(x interface{}) interface{} {
	switch v := x.(type) {
	case Value:
		return v
	case string:
		if d, err := c.ParseDate(v); err == nil {
			return d
		}
		if t, err := c.ParseDateTime(v); err == nil {
			return t
		}
		if d, err := ParseDuration(v); err == nil {
			return d
		}
	case int:
		return NewDuration(int64(v))
	case int8:
		return NewDuration(int64(v))
	case int16:
		return NewDuration(int64(v))
	case int32:
		return NewDuration(int64(v))
	case int64:
		return NewDuration(v)
	case uint:
		return fromNumber(x, v)
	case uint8:
		return NewDuration(int64(v))
	case uint16:
		return NewDuration(int64(v))
	case uint32:
		return NewDuration(int64(v))
	case uint64:
		return fromNumber(x, v)
	case float32:
		return fromNumber(x, v)
	case float64:
		return fromNumber(x, v)
	}
	return x
}

func fromNumber[T Number](x interface{}, v T) interface{} {
	d, err := DurationOf(v)
	if err != nil {
		return x
	}
	return d
}
