package dt

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

const usecPerSec = 1000000

// Duration is a signed span of seconds with a microsecond remainder.
// A finite Duration denotes sec + usec/1e6 with 0 <= usec < 1e6.
type Duration struct {
	kind Kind
	sec  int64
	usec int32
}

var (
	DurationPosInf = Duration{kind: PosInf}
	DurationNegInf = Duration{kind: NegInf}
)

// Number is any Go integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

func makeDuration(sec int64, usec int32, k Kind) Duration {
	if k != Finite {
		return Duration{kind: k}
	}
	return Duration{sec: sec, usec: usec}
}

// NewDuration returns a Duration of sec seconds.
func NewDuration(sec int64) Duration {
	return Duration{sec: sec}
}

// NewDurationMicros returns sec seconds plus usec microseconds. usec may
// be negative or exceed one second; the sum saturates on overflow.
func NewDurationMicros(sec, usec int64) Duration {
	carry, rem := usec/usecPerSec, usec%usecPerSec
	if rem < 0 {
		carry, rem = carry-1, rem+usecPerSec
	}
	sec, k := addSat(sec, carry)
	return makeDuration(sec, int32(rem), k)
}

// DurationOf converts a number of seconds of any numeric type. Values
// beyond the int64 range saturate to an infinity, as do float
// infinities. Fractions are kept to the microsecond. NaN fails with
// ErrDomain.
func DurationOf[T Number](v T) (Duration, error) {
	if i := int64(v); T(i) == v && (v < 0) == (i < 0) {
		return NewDuration(i), nil
	}
	f := float64(v)
	switch {
	case math.IsNaN(f):
		return Duration{}, domainErrorf("cannot convert NaN to a Duration")
	case f >= math.MaxInt64:
		return DurationPosInf, nil
	case f < math.MinInt64:
		return DurationNegInf, nil
	}
	whole := math.Floor(f)
	usec := int64(math.Round((f - whole) * usecPerSec))
	sec := int64(whole)
	if usec == usecPerSec {
		var k Kind
		if sec, k = addSat(sec, 1); k != Finite {
			return Duration{kind: k}, nil
		}
		usec = 0
	}
	return Duration{sec: sec, usec: int32(usec)}, nil
}

// ParseDuration parses "[-][<days>+][[HH:]MM:]SS[.ffffff]" or an
// infinity label. Fields are unsigned decimal integers and are not range
// checked, so "90:00" is ninety minutes.
func ParseDuration(s string) (Duration, error) {
	if k, ok := durationLabels.match(s); ok {
		return Duration{kind: k}, nil
	}
	d, ok := parseSpan(strings.TrimSpace(s))
	if !ok {
		return Duration{}, parseErrorf(nil, "invalid init %q for Duration", s)
	}
	return d, nil
}

func parseSpan(s string) (Duration, bool) {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var days int64
	if i := strings.IndexByte(s, '+'); i >= 0 {
		n, ok := parseField(s[:i])
		if !ok {
			return Duration{}, false
		}
		days, s = n, s[i+1:]
	}
	fields := strings.Split(s, ":")
	if len(fields) > 3 {
		return Duration{}, false
	}
	last := len(fields) - 1
	secs, usec, ok := parseSecondsField(fields[last])
	if !ok {
		return Duration{}, false
	}
	// hours, minutes
	var hm [2]int64
	for i, f := range fields[:last] {
		if hm[2-last+i], ok = parseField(f); !ok {
			return Duration{}, false
		}
	}
	total := days
	for _, step := range [...]struct{ scale, n int64 }{{24, hm[0]}, {60, hm[1]}, {60, secs}} {
		var k1, k2 Kind
		total, k1 = mulSat(total, step.scale)
		total, k2 = addSat(total, step.n)
		if k1 != Finite || k2 != Finite {
			return Duration{}, false
		}
	}
	d := Duration{sec: total, usec: usec}
	if neg {
		d = d.Neg()
	}
	return d, true
}

// parseField parses an unsigned decimal field, ignoring surrounding
// blanks.
func parseField(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s[0] < '0' || s[0] > '9' {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	return n, err == nil
}

// parseSecondsField parses "SS" or "SS.f" with up to six fraction digits.
func parseSecondsField(s string) (int64, int32, bool) {
	s = strings.TrimSpace(s)
	whole, frac, hasFrac := strings.Cut(s, ".")
	sec, ok := parseField(whole)
	if !ok || !hasFrac {
		return sec, 0, ok
	}
	if frac == "" || len(frac) > 6 || strings.TrimLeft(frac, "0123456789") != "" {
		return 0, 0, false
	}
	usec, err := strconv.ParseInt(frac+strings.Repeat("0", 6-len(frac)), 10, 32)
	if err != nil {
		return 0, 0, false
	}
	return sec, int32(usec), true
}

func (d Duration) Kind() Kind       { return d.kind }
func (d Duration) IsInf() bool      { return d.kind != Finite }
func (d Duration) TypeName() string { return "Duration" }

// Seconds returns the whole seconds of d, rounded toward negative
// infinity; ok is false for infinities.
func (d Duration) Seconds() (sec int64, ok bool) { return d.sec, d.kind == Finite }

// Microseconds returns the sub-second remainder of d, in [0, 1e6).
func (d Duration) Microseconds() int32 { return d.usec }

// Float returns d in seconds, with ±Inf for the infinities.
func (d Duration) Float() float64 {
	switch d.kind {
	case PosInf:
		return math.Inf(1)
	case NegInf:
		return math.Inf(-1)
	}
	return float64(d.sec) + float64(d.usec)/usecPerSec
}

// Neg returns -d. Negating the most negative finite Duration saturates
// to DurationPosInf.
func (d Duration) Neg() Duration {
	switch {
	case d.kind != Finite:
		return Duration{kind: d.kind.neg()}
	case d.usec != 0:
		// -(s + u) = (-s-1) + (1-u)
		return Duration{sec: ^d.sec, usec: usecPerSec - d.usec}
	case d.sec == math.MinInt64:
		return DurationPosInf
	}
	return Duration{sec: -d.sec}
}

func (d Duration) Compare(e Duration) int {
	if d.kind != Finite || e.kind != Finite {
		return compareInt(int64(d.kind.rank()), int64(e.kind.rank()))
	}
	if c := compareInt(d.sec, e.sec); c != 0 {
		return c
	}
	return compareInt(int64(d.usec), int64(e.usec))
}

func (d Duration) Equal(e Duration) bool { return d == e }

// Add returns d+e. It fails with ErrDomain for opposite infinities.
func (d Duration) Add(e Duration) (Duration, error) {
	k, ok := sumKind(d.kind, e.kind)
	switch {
	case !ok:
		return Duration{}, domainError("+", d, e)
	case k != Finite:
		return Duration{kind: k}, nil
	}
	sec, k := addSat(d.sec, e.sec)
	usec := d.usec + e.usec
	if k == Finite && usec >= usecPerSec {
		sec, k = addSat(sec, 1)
		usec -= usecPerSec
	}
	return makeDuration(sec, usec, k), nil
}

// Sub returns d-e. It fails with ErrDomain for equal infinities.
func (d Duration) Sub(e Duration) (Duration, error) {
	r, err := d.Add(e.Neg())
	if err != nil {
		return Duration{}, domainError("-", d, e)
	}
	return r, nil
}

// DurationOptions selects the optional parts of the Duration text form.
type DurationOptions struct {
	// Days emits a "<days>+" prefix; otherwise days fold into hours.
	Days bool
	// Fraction emits a ".ffffff" suffix when the remainder is non-zero.
	Fraction bool
}

// Format renders d. Every field but the leading one is zero-padded to
// two digits; negative spans carry a leading "-".
func (d Duration) Format(opts DurationOptions) string {
	if d.kind != Finite {
		return durationLabels.label(d.kind)
	}
	if d.sec == 0 && d.usec == 0 {
		return "0"
	}
	var (
		sign string
		mag  uint64
		usec = d.usec
	)
	switch {
	case d.sec >= 0:
		mag = uint64(d.sec)
	case usec != 0:
		sign, mag, usec = "-", uint64(^d.sec), usecPerSec-usec
	default:
		sign, mag = "-", uint64(^d.sec)+1
	}
	days, rest := mag/Day, mag%Day
	hours, rest := rest/3600, rest%3600
	minutes, seconds := rest/60, rest%60
	if !opts.Days {
		hours += days * 24
		days = 0
	}

	var b strings.Builder
	b.WriteString(sign)
	if days != 0 {
		b.WriteString(strconv.FormatUint(days, 10))
		b.WriteByte('+')
	}
	if days != 0 || hours != 0 {
		writePadded(&b, hours)
		b.WriteByte(':')
	}
	writePadded(&b, minutes)
	b.WriteByte(':')
	writePadded(&b, seconds)
	if opts.Fraction && usec != 0 {
		s := strconv.Itoa(int(usec))
		b.WriteByte('.')
		b.WriteString(strings.Repeat("0", 6-len(s)))
		b.WriteString(s)
	}
	return b.String()
}

func writePadded(b *strings.Builder, n uint64) {
	if n < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.FormatUint(n, 10))
}

// String renders d with days and fraction.
func (d Duration) String() string {
	return d.Format(DurationOptions{Days: true, Fraction: true})
}

// AddTo returns t+d.
func (d Duration) AddTo(t DateTime) (DateTime, error) {
	return t.Add(d)
}
