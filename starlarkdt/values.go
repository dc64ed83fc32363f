package starlarkdt

import (
	"fmt"
	"sort"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"go.dtime.dev/dt"
)

// DateTime is a Starlark representation of a dt.DateTime.
type DateTime dt.DateTime

// Date is a Starlark representation of a dt.Date.
type Date dt.Date

// Time is a Starlark representation of a dt.Time.
type Time dt.Time

// Duration is a Starlark representation of a dt.Duration.
type Duration dt.Duration

// assert at compile time that Duration implements Unpacker.
var _ starlark.Unpacker = (*Duration)(nil)

// Unpack is a custom argument unpacker accepting a duration, a number of
// seconds or a duration string.
func (d *Duration) Unpack(v starlark.Value) error {
	switch x := v.(type) {
	case Duration:
		*d = x
		return nil
	case starlark.Int:
		if i, ok := x.Int64(); ok {
			*d = Duration(dt.NewDuration(i))
		} else {
			*d = Duration(intDuration(x))
		}
		return nil
	case starlark.Float:
		r, err := dt.DurationOf(float64(x))
		if err != nil {
			return err
		}
		*d = Duration(r)
		return nil
	case starlark.String:
		r, err := dt.ParseDuration(string(x))
		if err != nil {
			return err
		}
		*d = Duration(r)
		return nil
	}
	return fmt.Errorf("cannot convert %s to %s", v.Type(), d.Type())
}

// String implements the Stringer interface.
func (t DateTime) String() string { return dt.DateTime(t).String() }
func (d Date) String() string     { return dt.Date(d).String() }
func (t Time) String() string     { return dt.Time(t).String() }
func (d Duration) String() string { return dt.Duration(d).String() }

// Type returns a short string describing the value's type.
func (DateTime) Type() string { return "dt.datetime" }
func (Date) Type() string     { return "dt.date" }
func (Time) Type() string     { return "dt.time" }
func (Duration) Type() string { return "dt.duration" }

// Freeze is a no-op: dt values are immutable.
func (DateTime) Freeze() {}
func (Date) Freeze()     {}
func (Time) Freeze()     {}
func (Duration) Freeze() {}

// Truth reports whether the value is non-zero. Infinities are true.
func (t DateTime) Truth() starlark.Bool { return absTruth(dt.DateTime(t).Unix()) }
func (d Date) Truth() starlark.Bool     { return absTruth(dt.Date(d).Unix()) }
func (t Time) Truth() starlark.Bool     { return absTruth(dt.Time(t).Unix()) }
func (d Duration) Truth() starlark.Bool {
	sec, ok := dt.Duration(d).Seconds()
	return starlark.Bool(!ok || sec != 0 || dt.Duration(d).Microseconds() != 0)
}

func absTruth(sec int64, finite bool) starlark.Bool {
	return starlark.Bool(!finite || sec != 0)
}

// Hash returns a function of x such that Equals(x, y) => Hash(x) == Hash(y).
func (t DateTime) Hash() (uint32, error) { return hashOf(dt.DateTime(t).Kind(), unix(dt.DateTime(t).Unix())), nil }
func (d Date) Hash() (uint32, error)     { return hashOf(dt.Date(d).Kind(), unix(dt.Date(d).Unix())), nil }
func (t Time) Hash() (uint32, error)     { return hashOf(dt.Time(t).Kind(), unix(dt.Time(t).Unix())), nil }
func (d Duration) Hash() (uint32, error) {
	sec, _ := dt.Duration(d).Seconds()
	return hashOf(dt.Duration(d).Kind(), sec) ^ uint32(dt.Duration(d).Microseconds()), nil
}

func unix(sec int64, _ bool) int64 { return sec }

func hashOf(k dt.Kind, sec int64) uint32 {
	return uint32(sec) ^ uint32(sec>>32) ^ uint32(k)<<29
}

// CompareSameType implements comparison of two values of one type.
func (t DateTime) CompareSameType(op syntax.Token, y starlark.Value, depth int) (bool, error) {
	return threeway(op, dt.DateTime(t).Compare(dt.DateTime(y.(DateTime)))), nil
}

func (d Date) CompareSameType(op syntax.Token, y starlark.Value, depth int) (bool, error) {
	return threeway(op, dt.Date(d).Compare(dt.Date(y.(Date)))), nil
}

func (t Time) CompareSameType(op syntax.Token, y starlark.Value, depth int) (bool, error) {
	return threeway(op, dt.Time(t).Compare(dt.Time(y.(Time)))), nil
}

func (d Duration) CompareSameType(op syntax.Token, y starlark.Value, depth int) (bool, error) {
	return threeway(op, dt.Duration(d).Compare(dt.Duration(y.(Duration)))), nil
}

// Binary implements binary operators, which satisfies the starlark.HasBinary
// interface. operators:
//    datetime + duration = datetime
//    datetime + int      = datetime
//    datetime - duration = datetime
//    datetime - int      = datetime
//    datetime - datetime = duration
//    int + datetime      = datetime
func (t DateTime) Binary(op syntax.Token, y starlark.Value, side starlark.Side) (starlark.Value, error) {
	return binary(dt.DateTime(t), op, y, side)
}

func (d Date) Binary(op syntax.Token, y starlark.Value, side starlark.Side) (starlark.Value, error) {
	return binary(dt.Date(d), op, y, side)
}

func (t Time) Binary(op syntax.Token, y starlark.Value, side starlark.Side) (starlark.Value, error) {
	return binary(dt.Time(t), op, y, side)
}

// Binary implements binary operators. operators:
//    duration + duration = duration
//    duration + int      = duration
//    duration + datetime = datetime
//    duration - duration = duration
//    duration - int      = duration
//    int - duration      = duration
//    -duration           = duration
func (d Duration) Binary(op syntax.Token, y starlark.Value, side starlark.Side) (starlark.Value, error) {
	return binary(dt.Duration(d), op, y, side)
}

// Unary implements -duration and +duration.
func (d Duration) Unary(op syntax.Token) (starlark.Value, error) {
	switch op {
	case syntax.MINUS:
		return Duration(dt.Duration(d).Neg()), nil
	case syntax.PLUS:
		return d, nil
	}
	return nil, nil
}

func binary(x dt.Value, op syntax.Token, yV starlark.Value, side starlark.Side) (starlark.Value, error) {
	if op != syntax.PLUS && op != syntax.MINUS {
		return nil, nil
	}
	y, ok, err := toOperand(yV)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var r dt.Value
	if side == starlark.Left {
		r, err = apply(op, x, y)
	} else {
		// The left operand is a number: promote it to a Duration.
		var l dt.Value
		switch y := y.(type) {
		case dt.Seconds:
			l = dt.NewDuration(int64(y))
		case dt.Value:
			l = y
		}
		r, err = apply(op, l, x)
	}
	if err != nil {
		return nil, err
	}
	return toStarlark(r), nil
}

func apply(op syntax.Token, x dt.Value, y dt.Operand) (dt.Value, error) {
	if op == syntax.PLUS {
		return dt.Add(x, y)
	}
	return dt.Sub(x, y)
}

// Attr gets a value for a string attribute, implementing dot expression
// support in starlark. required by starlark.HasAttrs interface.
func (t DateTime) Attr(name string) (starlark.Value, error) { return absAttr(t, dt.DateTime(t).Unix, name) }
func (d Date) Attr(name string) (starlark.Value, error)     { return absAttr(d, dt.Date(d).Unix, name) }
func (t Time) Attr(name string) (starlark.Value, error)     { return absAttr(t, dt.Time(t).Unix, name) }

func (DateTime) AttrNames() []string { return absAttrNames }
func (Date) AttrNames() []string     { return absAttrNames }
func (Time) AttrNames() []string     { return absAttrNames }

var absAttrNames = append(builtinAttrNames(absMethods), "is_inf", "unix")

func absAttr(recv starlark.Value, unixFn func() (int64, bool), name string) (starlark.Value, error) {
	switch name {
	case "unix":
		sec, ok := unixFn()
		if !ok {
			return starlark.None, nil
		}
		return starlark.MakeInt64(sec), nil
	case "is_inf":
		_, ok := unixFn()
		return starlark.Bool(!ok), nil
	}
	return builtinAttr(recv, name, absMethods)
}

func (d Duration) Attr(name string) (starlark.Value, error) {
	switch name {
	case "seconds":
		return starlark.Float(dt.Duration(d).Float()), nil
	case "is_inf":
		return starlark.Bool(dt.Duration(d).IsInf()), nil
	}
	return builtinAttr(d, name, durationMethods)
}

func (Duration) AttrNames() []string {
	return append(builtinAttrNames(durationMethods), "is_inf", "seconds")
}

var absMethods = map[string]builtinMethod{
	"format": absFormat,
}

var durationMethods = map[string]builtinMethod{
	"format": durationFormat,
}

func absFormat(thread *starlark.Thread, fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var layout string
	if err := starlark.UnpackArgs(fnname, args, kwargs, "layout?", &layout); err != nil {
		return nil, err
	}
	c := configOf(thread)
	if layout != "" {
		c.DateTime.Layout, c.Date.Layout, c.Time.Layout = layout, layout, layout
	}
	switch recv := recV.(type) {
	case DateTime:
		return starlark.String(dt.DateTime(recv).Format(c)), nil
	case Date:
		return starlark.String(dt.Date(recv).Format(c)), nil
	case Time:
		return starlark.String(dt.Time(recv).Format(c)), nil
	}
	return nil, fmt.Errorf("%s: unexpected receiver %s", fnname, recV.Type())
}

func durationFormat(thread *starlark.Thread, fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	opts := dt.DurationOptions{Days: true, Fraction: true}
	if err := starlark.UnpackArgs(fnname, args, kwargs, "days?", &opts.Days, "fraction?", &opts.Fraction); err != nil {
		return nil, err
	}
	return starlark.String(dt.Duration(recV.(Duration)).Format(opts)), nil
}

type builtinMethod func(thread *starlark.Thread, fnname string, recv starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error)

func builtinAttr(recv starlark.Value, name string, methods map[string]builtinMethod) (starlark.Value, error) {
	method := methods[name]
	if method == nil {
		return nil, nil // no such method
	}

	// Allocate a closure over 'method'.
	impl := func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		return method(thread, b.Name(), b.Receiver(), args, kwargs)
	}
	return starlark.NewBuiltin(name, impl).BindReceiver(recv), nil
}

func builtinAttrNames(methods map[string]builtinMethod) []string {
	names := make([]string, 0, len(methods))
	for name := range methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// threeway interprets a three-way comparison value cmp (-1, 0, +1)
// as a boolean comparison (e.g. x < y).
func threeway(op syntax.Token, cmp int) bool {
	switch op {
	case syntax.EQL:
		return cmp == 0
	case syntax.NEQ:
		return cmp != 0
	case syntax.LE:
		return cmp <= 0
	case syntax.LT:
		return cmp < 0
	case syntax.GE:
		return cmp >= 0
	case syntax.GT:
		return cmp > 0
	}
	panic(op)
}

var (
	_ starlark.HasBinary  = DateTime{}
	_ starlark.Comparable = Date{}
	_ starlark.HasAttrs   = Time{}
	_ starlark.HasUnary   = Duration{}
)
