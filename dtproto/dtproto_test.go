package dtproto_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/testing/protocmp"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"go.dtime.dev/dt"
	"go.dtime.dev/dtproto"
)

func TestDuration(t *testing.T) {
	for _, test := range []struct {
		d dt.Duration
		p *durationpb.Duration
	}{
		{dt.NewDuration(0), &durationpb.Duration{}},
		{dt.NewDuration(93784), &durationpb.Duration{Seconds: 93784}},
		{dt.NewDuration(-5), &durationpb.Duration{Seconds: -5}},
		{dt.NewDurationMicros(1, 250000), &durationpb.Duration{Seconds: 1, Nanos: 250000000}},
		{dt.NewDurationMicros(-1, -500000), &durationpb.Duration{Seconds: -1, Nanos: -500000000}},
	} {
		p, err := dtproto.FromDuration(test.d)
		if err != nil {
			t.Errorf("FromDuration(%v): %v", test.d, err)
			continue
		}
		if diff := cmp.Diff(test.p, p, protocmp.Transform()); diff != "" {
			t.Errorf("FromDuration(%v) mismatch (-want +got):\n%s", test.d, diff)
		}
		d, err := dtproto.ToDuration(p)
		if err != nil {
			t.Errorf("ToDuration(%v): %v", p, err)
			continue
		}
		if !d.Equal(test.d) {
			t.Errorf("ToDuration(FromDuration(%v)) = %v", test.d, d)
		}
	}
}

func TestDurationErrors(t *testing.T) {
	for _, d := range []dt.Duration{dt.DurationPosInf, dt.DurationNegInf, dt.NewDuration(1 << 40)} {
		if _, err := dtproto.FromDuration(d); !errors.Is(err, dt.ErrDomain) {
			t.Errorf("FromDuration(%v) = %v, want ErrDomain", d, err)
		}
	}
	if _, err := dtproto.ToDuration(&durationpb.Duration{Seconds: 1, Nanos: -1}); err == nil {
		t.Error("ToDuration accepted mixed signs")
	}
}

func TestTimestamp(t *testing.T) {
	const newYear2020 = 1577836800
	tm := dt.NewDateTime(newYear2020 + 1)

	ts, err := dtproto.FromDateTime(tm)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(&timestamppb.Timestamp{Seconds: newYear2020 + 1}, ts, protocmp.Transform()); diff != "" {
		t.Errorf("FromDateTime mismatch (-want +got):\n%s", diff)
	}
	back, err := dtproto.ToDateTime(ts)
	if err != nil || !back.Equal(tm) {
		t.Errorf("ToDateTime = %v, %v", back, err)
	}

	d, err := dtproto.ToDate(ts)
	if err != nil || !d.Equal(dt.NewDate(newYear2020+dt.Day)) {
		t.Errorf("ToDate = %v, %v", d, err)
	}
	if ts, err := dtproto.FromDate(d); err != nil || ts.GetSeconds() != newYear2020+dt.Day {
		t.Errorf("FromDate = %v, %v", ts, err)
	}

	for _, v := range []dt.DateTime{dt.DateTimePosInf, dt.DateTimeNegInf, dt.NewDateTime(1 << 50)} {
		if _, err := dtproto.FromDateTime(v); !errors.Is(err, dt.ErrDomain) {
			t.Errorf("FromDateTime(%v) = %v, want ErrDomain", v, err)
		}
	}
	if _, err := dtproto.FromDate(dt.DateNegInf); !errors.Is(err, dt.ErrDomain) {
		t.Errorf("FromDate(-inf) = %v, want ErrDomain", err)
	}
}
