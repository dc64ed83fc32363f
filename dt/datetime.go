package dt

import "time"

// NowFunc returns the current time. It may be replaced by applications
// that need deterministic clocks, tests in particular.
var NowFunc = time.Now

// DateTime is a point in time with one-second resolution.
type DateTime struct {
	instant
}

var (
	DateTimePosInf = DateTime{instant{kind: PosInf}}
	DateTimeNegInf = DateTime{instant{kind: NegInf}}
)

// NewDateTime returns the DateTime sec seconds after the Unix epoch.
func NewDateTime(sec int64) DateTime {
	return DateTime{dateTimeClass.make(sec, Finite)}
}

// FromTime converts t, truncating to whole seconds.
func FromTime(t time.Time) DateTime {
	return NewDateTime(t.Unix())
}

// Now returns the current DateTime as reported by NowFunc.
func Now() DateTime {
	return FromTime(NowFunc())
}

// ParseDateTime parses s with the process-wide configuration.
func ParseDateTime(s string) (DateTime, error) {
	return CurrentConfig().ParseDateTime(s)
}

// ParseDateTime parses s as an infinity label or with the configured
// DateTime layout, falling back to the built-in layouts.
func (c Config) ParseDateTime(s string) (DateTime, error) {
	in, err := dateTimeClass.parse(c.DateTime, s)
	return DateTime{in}, err
}

func (t DateTime) Kind() Kind       { return t.kind }
func (t DateTime) IsInf() bool      { return t.kind != Finite }
func (t DateTime) TypeName() string { return dateTimeClass.name }

// Unix returns the seconds since the epoch; ok is false for infinities.
func (t DateTime) Unix() (sec int64, ok bool) { return t.sec, t.kind == Finite }

// StdTime converts a finite t to a time.Time.
func (t DateTime) StdTime() (time.Time, bool) { return t.stdTime() }

// Date rounds t up to the next day boundary.
func (t DateTime) Date() Date { return Date{dateClass.make(t.sec, t.kind)} }

// AsTime returns t as a Time.
func (t DateTime) AsTime() Time { return Time{t.instant} }

// Format renders t with the DateTime encoding of c.
func (t DateTime) Format(c Config) string { return dateTimeClass.format(c.DateTime, t.instant) }

// String renders t with the process-wide configuration.
func (t DateTime) String() string { return t.Format(CurrentConfig()) }

// Compare returns -1, 0 or +1. Infinities order outside every finite value.
func (t DateTime) Compare(u DateTime) int { return t.compare(u.instant) }

func (t DateTime) Equal(u DateTime) bool { return t.instant == u.instant }

// AddSeconds adds n seconds. An infinite t is returned unchanged.
func (t DateTime) AddSeconds(n int64) DateTime {
	return DateTime{dateTimeClass.addSeconds(t.instant, n)}
}

// Add returns t+d. It fails with ErrDomain when t and d are opposite
// infinities.
func (t DateTime) Add(d Duration) (DateTime, error) {
	in, ok := dateTimeClass.addDuration(t.instant, d)
	if !ok {
		return DateTime{}, domainError("+", t, d)
	}
	return DateTime{in}, nil
}

// SubDuration returns t-d.
func (t DateTime) SubDuration(d Duration) (DateTime, error) {
	in, ok := dateTimeClass.addDuration(t.instant, d.Neg())
	if !ok {
		return DateTime{}, domainError("-", t, d)
	}
	return DateTime{in}, nil
}

// Sub returns the Duration t-u. It fails with ErrDomain when t and u are
// the same infinity.
func (t DateTime) Sub(u DateTime) (Duration, error) {
	d, ok := diff(t.instant, u.instant)
	if !ok {
		return Duration{}, domainError("-", t, u)
	}
	return d, nil
}
