package dt_test

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"

	"go.dtime.dev/dt"
)

const newYear2020 = 1577836800 // 2020-01-01T00:00:00Z

var utc = dt.DefaultConfig().UTC()

func TestParseDateTime(t *testing.T) {
	custom := utc
	custom.DateTime.Layout = "2006-01-02T15:04:05"

	for _, test := range []struct {
		cfg  dt.Config
		in   string
		want dt.DateTime
	}{
		{utc, "20200101 00:00:00", dt.NewDateTime(newYear2020)},
		{utc, "20200101 01:02:03", dt.NewDateTime(newYear2020 + 3723)},
		{utc, "20200101", dt.NewDateTime(newYear2020)},
		{custom, "2020-01-01T00:00:01", dt.NewDateTime(newYear2020 + 1)},
		{custom, "20200101", dt.NewDateTime(newYear2020)},
		{utc, "TInf", dt.DateTimePosInf},
		{utc, "+inf", dt.DateTimePosInf},
		{utc, "-TINF", dt.DateTimeNegInf},
		{utc, "-inf", dt.DateTimeNegInf},
	} {
		got, err := test.cfg.ParseDateTime(test.in)
		if err != nil {
			t.Errorf("ParseDateTime(%q): %v", test.in, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("ParseDateTime(%q) mismatch (-want +got):\n%s", test.in, diff)
		}
	}

	for _, in := range []string{"", "2020", "20200101 00:00", "2020-01-01T00:00:00", "1+00:00:00", "+DInf"} {
		if _, err := utc.ParseDateTime(in); !errors.Is(err, dt.ErrParse) {
			t.Errorf("ParseDateTime(%q) = %v, want ErrParse", in, err)
		}
	}
}

func TestParseErrorHint(t *testing.T) {
	_, err := utc.ParseDateTime("yesterday")
	hints := errors.FlattenHints(err)
	if !strings.Contains(hints, dt.DateTimeLayout) {
		t.Errorf("hints %q do not mention %q", hints, dt.DateTimeLayout)
	}
}

func TestFormatDateTime(t *testing.T) {
	berlin := time.FixedZone("CET", 3600)
	for _, test := range []struct {
		cfg  dt.Config
		t    dt.DateTime
		want string
	}{
		{utc, dt.NewDateTime(0), ""},
		{utc, dt.NewDateTime(newYear2020 + 3723), "20200101 01:02:03"},
		{utc.In(berlin), dt.NewDateTime(newYear2020), "20200101 01:00:00"},
		{utc, dt.DateTimePosInf, "+TInf"},
		{utc, dt.DateTimeNegInf, "-TInf"},
	} {
		if got := test.t.Format(test.cfg); got != test.want {
			t.Errorf("Format = %q, want %q", got, test.want)
		}
	}
}

func TestDateTimeArithmetic(t *testing.T) {
	base := dt.NewDateTime(newYear2020)

	if got, err := base.Add(dt.NewDuration(3600)); err != nil || !got.Equal(dt.NewDateTime(newYear2020+3600)) {
		t.Errorf("base + 1h = %v, %v", got, err)
	}
	if got, err := base.SubDuration(dt.NewDuration(60)); err != nil || !got.Equal(dt.NewDateTime(newYear2020-60)) {
		t.Errorf("base - 1m = %v, %v", got, err)
	}
	if got := base.AddSeconds(10); !got.Equal(dt.NewDateTime(newYear2020 + 10)) {
		t.Errorf("base + 10 = %v", got)
	}
	if got, err := dt.NewDateTime(newYear2020 + 93784).Sub(base); err != nil || !got.Equal(dt.NewDuration(93784)) {
		t.Errorf("difference = %v, %v", got, err)
	}
	if got := dt.NewDateTime(math.MaxInt64).AddSeconds(1); !got.Equal(dt.DateTimePosInf) {
		t.Errorf("overflow = %v, want +TInf", got)
	}
	if got := dt.DateTimePosInf.AddSeconds(math.MinInt64); !got.Equal(dt.DateTimePosInf) {
		t.Errorf("+TInf + number = %v, want +TInf", got)
	}
}

func TestDateTimeSentinels(t *testing.T) {
	base := dt.NewDateTime(newYear2020)
	for _, test := range []struct {
		name    string
		got     func() (dt.Value, error)
		want    dt.Value
		wantErr error
	}{
		{"+inf + finite", func() (dt.Value, error) { return dt.DateTimePosInf.Add(dt.NewDuration(5)) }, dt.DateTimePosInf, nil},
		{"-inf + finite", func() (dt.Value, error) { return dt.DateTimeNegInf.Add(dt.NewDuration(5)) }, dt.DateTimeNegInf, nil},
		{"finite + +inf", func() (dt.Value, error) { return base.Add(dt.DurationPosInf) }, dt.DateTimePosInf, nil},
		{"+inf + +inf", func() (dt.Value, error) { return dt.DateTimePosInf.Add(dt.DurationPosInf) }, dt.DateTimePosInf, nil},
		{"+inf + -inf", func() (dt.Value, error) { return dt.DateTimePosInf.Add(dt.DurationNegInf) }, nil, dt.ErrDomain},
		{"-inf + +inf", func() (dt.Value, error) { return dt.DateTimeNegInf.Add(dt.DurationPosInf) }, nil, dt.ErrDomain},
		{"+inf - +inf duration", func() (dt.Value, error) { return dt.DateTimePosInf.SubDuration(dt.DurationPosInf) }, nil, dt.ErrDomain},
		{"+inf - -inf duration", func() (dt.Value, error) { return dt.DateTimePosInf.SubDuration(dt.DurationNegInf) }, dt.DateTimePosInf, nil},
		{"finite - +inf duration", func() (dt.Value, error) { return base.SubDuration(dt.DurationPosInf) }, dt.DateTimeNegInf, nil},
		{"+inf - finite", func() (dt.Value, error) { return dt.DateTimePosInf.Sub(base) }, dt.DurationPosInf, nil},
		{"finite - +inf", func() (dt.Value, error) { return base.Sub(dt.DateTimePosInf) }, dt.DurationNegInf, nil},
		{"-inf - finite", func() (dt.Value, error) { return dt.DateTimeNegInf.Sub(base) }, dt.DurationNegInf, nil},
		{"+inf - -inf", func() (dt.Value, error) { return dt.DateTimePosInf.Sub(dt.DateTimeNegInf) }, dt.DurationPosInf, nil},
		{"+inf - +inf", func() (dt.Value, error) { return dt.DateTimePosInf.Sub(dt.DateTimePosInf) }, nil, dt.ErrDomain},
		{"-inf - -inf", func() (dt.Value, error) { return dt.DateTimeNegInf.Sub(dt.DateTimeNegInf) }, nil, dt.ErrDomain},
	} {
		got, err := test.got()
		if test.wantErr != nil {
			if !errors.Is(err, test.wantErr) {
				t.Errorf("%s: got error %v, want %v", test.name, err, test.wantErr)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: %v", test.name, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", test.name, diff)
		}
	}
}

func TestDomainErrorMessage(t *testing.T) {
	_, err := dt.DateTimePosInf.Sub(dt.DateTimePosInf)
	want := `invalid operation: DateTime("+TInf") - DateTime("+TInf")`
	if err == nil || err.Error() != want {
		t.Errorf("error = %v, want %s", err, want)
	}
}

func TestDateTimeCompare(t *testing.T) {
	ordered := []dt.DateTime{
		dt.DateTimeNegInf,
		dt.NewDateTime(math.MinInt64),
		dt.NewDateTime(0),
		dt.NewDateTime(newYear2020),
		dt.NewDateTime(math.MaxInt64),
		dt.DateTimePosInf,
	}
	for i := 1; i < len(ordered); i++ {
		if got := ordered[i-1].Compare(ordered[i]); got != -1 {
			t.Errorf("%v.Compare(%v) = %d, want -1", ordered[i-1], ordered[i], got)
		}
		if got := ordered[i].Compare(ordered[i-1]); got != 1 {
			t.Errorf("%v.Compare(%v) = %d, want 1", ordered[i], ordered[i-1], got)
		}
	}
	if got := dt.DateTimePosInf.Compare(dt.DateTimePosInf); got != 0 {
		t.Errorf("+TInf.Compare(+TInf) = %d, want 0", got)
	}
}

func TestNow(t *testing.T) {
	oldNow := dt.NowFunc
	defer func() {
		dt.NowFunc = oldNow
	}()

	dt.NowFunc = func() time.Time {
		return time.Unix(newYear2020+3723, 999)
	}
	if got := dt.Now(); !got.Equal(dt.NewDateTime(newYear2020 + 3723)) {
		t.Errorf("Now() = %v", got)
	}
	if got := dt.Today(); !got.Equal(dt.NewDate(newYear2020 + dt.Day)) {
		t.Errorf("Today() = %v", got)
	}
	if got := dt.NowTime(); !got.Equal(dt.NewTime(newYear2020 + 3723)) {
		t.Errorf("NowTime() = %v", got)
	}
}

func TestTimeIsDistinctFromDateTime(t *testing.T) {
	tm, err := utc.ParseTime("20200101 01:02:03")
	if err != nil {
		t.Fatal(err)
	}
	if got := tm.TypeName(); got != "Time" {
		t.Errorf("TypeName() = %q", got)
	}
	if got := tm.Format(utc); got != "20200101 01:02:03" {
		t.Errorf("Format = %q", got)
	}
	if !tm.DateTime().AsTime().Equal(tm) {
		t.Errorf("conversion through DateTime changed %v", tm)
	}
	if _, err := dt.Add(tm, tm); !errors.Is(err, dt.ErrTypeMismatch) {
		t.Errorf("Time + Time = %v, want ErrTypeMismatch", err)
	}
}

func TestProcessWideConfig(t *testing.T) {
	old := dt.CurrentConfig()
	t.Cleanup(func() { dt.SetConfig(old) })

	dt.SetConfig(utc)
	dt.SetDateTimeLayout("2006-01-02 15:04")
	got, err := dt.ParseDateTime("2020-01-01 00:01")
	if err != nil {
		t.Fatal(err)
	}
	if s := got.String(); s != "2020-01-01 00:01" {
		t.Errorf("String() = %q", s)
	}
	if _, err := dt.ParseDateTime("20200101"); err != nil {
		t.Errorf("built-in layout no longer accepted: %v", err)
	}

	dt.SetLocation(time.FixedZone("X", -3600))
	if s := got.String(); s != "2019-12-31 23:01" {
		t.Errorf("String() in -01:00 = %q", s)
	}
}
