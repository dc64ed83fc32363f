package dt

// Date is a DateTime rounded up to a multiple of Day. Every construction,
// arithmetic results included, rounds; a finite Date is always
// day-aligned.
type Date struct {
	instant
}

var (
	DatePosInf = Date{instant{kind: PosInf}}
	DateNegInf = Date{instant{kind: NegInf}}
)

// NewDate returns the first day boundary at or after sec.
func NewDate(sec int64) Date {
	return Date{dateClass.make(sec, Finite)}
}

// Today returns Now rounded up to a day boundary.
func Today() Date {
	return Now().Date()
}

// ParseDate parses s with the process-wide configuration.
func ParseDate(s string) (Date, error) {
	return CurrentConfig().ParseDate(s)
}

// ParseDate parses s as an infinity label or with the configured Date
// layout, falling back to "20060102".
func (c Config) ParseDate(s string) (Date, error) {
	in, err := dateClass.parse(c.Date, s)
	return Date{in}, err
}

func (d Date) Kind() Kind       { return d.kind }
func (d Date) IsInf() bool      { return d.kind != Finite }
func (d Date) TypeName() string { return dateClass.name }

func (d Date) Unix() (sec int64, ok bool) { return d.sec, d.kind == Finite }

func (d Date) DateTime() DateTime { return DateTime{d.instant} }

func (d Date) Format(c Config) string { return dateClass.format(c.Date, d.instant) }

func (d Date) String() string { return d.Format(CurrentConfig()) }

func (d Date) Compare(e Date) int { return d.compare(e.instant) }

func (d Date) Equal(e Date) bool { return d.instant == e.instant }

// AddSeconds adds n seconds and rounds up to the next day boundary.
func (d Date) AddSeconds(n int64) Date {
	return Date{dateClass.addSeconds(d.instant, n)}
}

func (d Date) Add(u Duration) (Date, error) {
	in, ok := dateClass.addDuration(d.instant, u)
	if !ok {
		return Date{}, domainError("+", d, u)
	}
	return Date{in}, nil
}

func (d Date) SubDuration(u Duration) (Date, error) {
	in, ok := dateClass.addDuration(d.instant, u.Neg())
	if !ok {
		return Date{}, domainError("-", d, u)
	}
	return Date{in}, nil
}

func (d Date) Sub(e Date) (Duration, error) {
	r, ok := diff(d.instant, e.instant)
	if !ok {
		return Duration{}, domainError("-", d, e)
	}
	return r, nil
}
