package starlarkdt

import (
	"fmt"

	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"

	"go.dtime.dev/dt"
)

// ModuleName defines the expected name for this Module when used in the
// starlark runtime.
const ModuleName = "dt"

// Module dt is a Starlark module of saturating date and duration values.
var Module = &starlarkstruct.Module{
	Name: ModuleName,
	Members: starlark.StringDict{
		"datetime": starlark.NewBuiltin("datetime", newDateTime),
		"date":     starlark.NewBuiltin("date", newDate),
		"time":     starlark.NewBuiltin("time", newTime),
		"duration": starlark.NewBuiltin("duration", newDuration),
		"create":   starlark.NewBuiltin("create", create),
		"now":      starlark.NewBuiltin("now", now),
		"today":    starlark.NewBuiltin("today", today),
		"inf":      starlark.NewBuiltin("inf", inf),
	},
}

// Predeclared returns the environment used by Eval: the dt module and
// the create_dt literal constructor.
func Predeclared() starlark.StringDict {
	return starlark.StringDict{
		ModuleName:  Module,
		"create_dt": starlark.NewBuiltin("create_dt", create),
	}
}

// LoadModule loads the dt module.
// It is concurrency-safe and idempotent.
func LoadModule() (starlark.StringDict, error) {
	return starlark.StringDict{
		ModuleName: Module,
	}, nil
}

// Eval evaluates a single expression with the Predeclared environment.
func Eval(thread *starlark.Thread, expr string) (starlark.Value, error) {
	return starlark.Eval(thread, "<expr>", expr, Predeclared())
}

const configKey = "go.dtime.dev/starlarkdt.config"

// SetConfig sets the configuration used by the builtins and the format
// methods called on thread. Threads without one use dt.CurrentConfig.
func SetConfig(thread *starlark.Thread, c dt.Config) {
	thread.SetLocal(configKey, c)
}

func configOf(thread *starlark.Thread) dt.Config {
	if thread != nil {
		if c, ok := thread.Local(configKey).(dt.Config); ok {
			return c
		}
	}
	return dt.CurrentConfig()
}

// toStarlark wraps a dt value.
func toStarlark(v dt.Value) starlark.Value {
	switch v := v.(type) {
	case dt.DateTime:
		return DateTime(v)
	case dt.Date:
		return Date(v)
	case dt.Time:
		return Time(v)
	case dt.Duration:
		return Duration(v)
	}
	panic(fmt.Sprintf("unexpected dt value %T", v))
}

// fromStarlark unwraps a dt value.
func fromStarlark(v starlark.Value) (dt.Value, bool) {
	switch v := v.(type) {
	case DateTime:
		return dt.DateTime(v), true
	case Date:
		return dt.Date(v), true
	case Time:
		return dt.Time(v), true
	case Duration:
		return dt.Duration(v), true
	}
	return nil, false
}

// intDuration converts an int too large for Seconds to an infinity.
func intDuration(x starlark.Int) dt.Duration {
	if x.Sign() < 0 {
		return dt.DurationNegInf
	}
	return dt.DurationPosInf
}

// toOperand converts a right-hand operand. ok is false for values of
// types the operators do not know.
func toOperand(v starlark.Value) (dt.Operand, bool, error) {
	switch x := v.(type) {
	case starlark.Int:
		if i, ok := x.Int64(); ok {
			return dt.Seconds(i), true, nil
		}
		return intDuration(x), true, nil
	case starlark.Float:
		d, err := dt.DurationOf(float64(x))
		return d, err == nil, err
	}
	if d, ok := fromStarlark(v); ok {
		return d, true, nil
	}
	return nil, false, nil
}

// absCtor describes one of the datetime, date and time constructors.
type absCtor struct {
	parse    func(dt.Config, string) (dt.Value, error)
	fromSec  func(int64) dt.Value
	pos, neg dt.Value
}

var (
	dateTimeCtor = absCtor{
		parse:   func(c dt.Config, s string) (dt.Value, error) { return result(c.ParseDateTime(s)) },
		fromSec: func(sec int64) dt.Value { return dt.NewDateTime(sec) },
		pos:     dt.DateTimePosInf,
		neg:     dt.DateTimeNegInf,
	}
	dateCtor = absCtor{
		parse:   func(c dt.Config, s string) (dt.Value, error) { return result(c.ParseDate(s)) },
		fromSec: func(sec int64) dt.Value { return dt.NewDate(sec) },
		pos:     dt.DatePosInf,
		neg:     dt.DateNegInf,
	}
	timeCtor = absCtor{
		parse:   func(c dt.Config, s string) (dt.Value, error) { return result(c.ParseTime(s)) },
		fromSec: func(sec int64) dt.Value { return dt.NewTime(sec) },
		pos:     dt.TimePosInf,
		neg:     dt.TimeNegInf,
	}
)

func (c absCtor) inf(k dt.Kind) dt.Value {
	if k == dt.NegInf {
		return c.neg
	}
	return c.pos
}

// convert builds an absolute value: None is the current time, numbers
// are seconds since the epoch, strings are parsed and absolute values of
// another type keep their instant.
func (c absCtor) convert(thread *starlark.Thread, name string, x starlark.Value) (starlark.Value, error) {
	var (
		v   dt.Value
		err error
	)
	switch x := x.(type) {
	case starlark.NoneType:
		sec, _ := dt.Now().Unix()
		v = c.fromSec(sec)
	case starlark.String:
		v, err = c.parse(configOf(thread), string(x))
	case starlark.Int, starlark.Float:
		var d Duration
		if err = d.Unpack(x); err == nil {
			v = c.fromDuration(dt.Duration(d))
		}
	default:
		sec, k, ok := unixOf(x)
		switch {
		case !ok:
			err = fmt.Errorf("%s: cannot convert %s to %s", name, x.Type(), name)
		case k != dt.Finite:
			v = c.inf(k)
		default:
			v = c.fromSec(sec)
		}
	}
	if err != nil {
		return nil, err
	}
	return toStarlark(v), nil
}

func (c absCtor) fromDuration(d dt.Duration) dt.Value {
	if sec, ok := d.Seconds(); ok {
		return c.fromSec(sec)
	}
	return c.inf(d.Kind())
}

func unixOf(v starlark.Value) (sec int64, k dt.Kind, ok bool) {
	switch v := v.(type) {
	case DateTime:
		sec, _ = dt.DateTime(v).Unix()
		return sec, dt.DateTime(v).Kind(), true
	case Date:
		sec, _ = dt.Date(v).Unix()
		return sec, dt.Date(v).Kind(), true
	case Time:
		sec, _ = dt.Time(v).Unix()
		return sec, dt.Time(v).Kind(), true
	}
	return 0, dt.Finite, false
}

func newDateTime(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var x starlark.Value = starlark.None
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0, &x); err != nil {
		return nil, err
	}
	return dateTimeCtor.convert(thread, b.Name(), x)
}

func newDate(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var x starlark.Value = starlark.None
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0, &x); err != nil {
		return nil, err
	}
	return dateCtor.convert(thread, b.Name(), x)
}

func newTime(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var x starlark.Value = starlark.None
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0, &x); err != nil {
		return nil, err
	}
	return timeCtor.convert(thread, b.Name(), x)
}

func newDuration(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var d Duration
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &d); err != nil {
		return nil, err
	}
	return d, nil
}

func create(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var x starlark.Value
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &x); err != nil {
		return nil, err
	}
	switch v := x.(type) {
	case starlark.String:
		if r, ok := configOf(thread).Create(string(v)).(dt.Value); ok {
			return toStarlark(r), nil
		}
	case starlark.Int, starlark.Float:
		var d Duration
		if err := d.Unpack(x); err == nil {
			return d, nil
		}
	}
	return x, nil
}

func now(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}
	return DateTime(dt.Now()), nil
}

func today(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}
	return Date(dt.Today()), nil
}

var infinities = map[string][2]dt.Value{
	"datetime": {dt.DateTimePosInf, dt.DateTimeNegInf},
	"date":     {dt.DatePosInf, dt.DateNegInf},
	"time":     {dt.TimePosInf, dt.TimeNegInf},
	"duration": {dt.DurationPosInf, dt.DurationNegInf},
}

func inf(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	typ, negative := "datetime", false
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "type?", &typ, "negative?", &negative); err != nil {
		return nil, err
	}
	pair, ok := infinities[typ]
	if !ok {
		return nil, fmt.Errorf("%s: unknown type %q", b.Name(), typ)
	}
	if negative {
		return toStarlark(pair[1]), nil
	}
	return toStarlark(pair[0]), nil
}

func result[T dt.Value](v T, err error) (dt.Value, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}
