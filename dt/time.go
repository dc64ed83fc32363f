package dt

// Time has the semantics of DateTime under a distinct type.
type Time struct {
	instant
}

var (
	TimePosInf = Time{instant{kind: PosInf}}
	TimeNegInf = Time{instant{kind: NegInf}}
)

func NewTime(sec int64) Time {
	return Time{timeClass.make(sec, Finite)}
}

func NowTime() Time {
	return Now().AsTime()
}

// ParseTime parses s with the process-wide configuration.
func ParseTime(s string) (Time, error) {
	return CurrentConfig().ParseTime(s)
}

func (c Config) ParseTime(s string) (Time, error) {
	in, err := timeClass.parse(c.Time, s)
	return Time{in}, err
}

func (t Time) Kind() Kind       { return t.kind }
func (t Time) IsInf() bool      { return t.kind != Finite }
func (t Time) TypeName() string { return timeClass.name }

func (t Time) Unix() (sec int64, ok bool) { return t.sec, t.kind == Finite }

func (t Time) DateTime() DateTime { return DateTime{t.instant} }

func (t Time) Format(c Config) string { return timeClass.format(c.Time, t.instant) }

func (t Time) String() string { return t.Format(CurrentConfig()) }

func (t Time) Compare(u Time) int { return t.compare(u.instant) }

func (t Time) Equal(u Time) bool { return t.instant == u.instant }

func (t Time) AddSeconds(n int64) Time {
	return Time{timeClass.addSeconds(t.instant, n)}
}

func (t Time) Add(d Duration) (Time, error) {
	in, ok := timeClass.addDuration(t.instant, d)
	if !ok {
		return Time{}, domainError("+", t, d)
	}
	return Time{in}, nil
}

func (t Time) SubDuration(d Duration) (Time, error) {
	in, ok := timeClass.addDuration(t.instant, d.Neg())
	if !ok {
		return Time{}, domainError("-", t, d)
	}
	return Time{in}, nil
}

func (t Time) Sub(u Time) (Duration, error) {
	d, ok := diff(t.instant, u.instant)
	if !ok {
		return Duration{}, domainError("-", t, u)
	}
	return d, nil
}
