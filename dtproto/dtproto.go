// Package dtproto converts finite dt values to and from the protocol
// buffer well-known types google.protobuf.Duration and
// google.protobuf.Timestamp.
//
// The well-known types have no infinities: converting a sentinel fails
// with dt.ErrDomain, as does a value outside the range of the message.
package dtproto // import "go.dtime.dev/dtproto"

import (
	"time"

	"github.com/cockroachdb/errors"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"go.dtime.dev/dt"
)

const nanosPerMicro = 1000

func infinite(v dt.Value) error {
	return errors.WithHint(
		errors.Mark(errors.Newf("cannot encode %s %s", v.TypeName(), v), dt.ErrDomain),
		"protocol buffer durations and timestamps have no infinities")
}

// FromDuration encodes d. Nanoseconds carry the sign of seconds, as the
// message requires.
func FromDuration(d dt.Duration) (*durationpb.Duration, error) {
	sec, ok := d.Seconds()
	if !ok {
		return nil, infinite(d)
	}
	nanos := int32(d.Microseconds()) * nanosPerMicro
	if sec < 0 && nanos > 0 {
		sec++
		nanos -= int32(time.Second)
	}
	p := &durationpb.Duration{Seconds: sec, Nanos: nanos}
	if err := p.CheckValid(); err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "cannot encode Duration %s", d), dt.ErrDomain)
	}
	return p, nil
}

// ToDuration decodes p, truncating to the microsecond.
func ToDuration(p *durationpb.Duration) (dt.Duration, error) {
	if err := p.CheckValid(); err != nil {
		return dt.Duration{}, errors.Wrap(err, "cannot decode Duration")
	}
	return dt.NewDurationMicros(p.GetSeconds(), int64(p.GetNanos()/nanosPerMicro)), nil
}

// FromDateTime encodes t.
func FromDateTime(t dt.DateTime) (*timestamppb.Timestamp, error) {
	sec, ok := t.Unix()
	if !ok {
		return nil, infinite(t)
	}
	return encodeUnix(t, sec)
}

// FromDate encodes d as the timestamp of its day boundary.
func FromDate(d dt.Date) (*timestamppb.Timestamp, error) {
	sec, ok := d.Unix()
	if !ok {
		return nil, infinite(d)
	}
	return encodeUnix(d, sec)
}

func encodeUnix(v dt.Value, sec int64) (*timestamppb.Timestamp, error) {
	ts := &timestamppb.Timestamp{Seconds: sec}
	if err := ts.CheckValid(); err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "cannot encode %s %s", v.TypeName(), v), dt.ErrDomain)
	}
	return ts, nil
}

// ToDateTime decodes ts, truncating to the second.
func ToDateTime(ts *timestamppb.Timestamp) (dt.DateTime, error) {
	if err := ts.CheckValid(); err != nil {
		return dt.DateTime{}, errors.Wrap(err, "cannot decode DateTime")
	}
	return dt.NewDateTime(ts.GetSeconds()), nil
}

// ToDate decodes ts, rounding up to the next day boundary.
func ToDate(ts *timestamppb.Timestamp) (dt.Date, error) {
	t, err := ToDateTime(ts)
	if err != nil {
		return dt.Date{}, err
	}
	return t.Date(), nil
}
