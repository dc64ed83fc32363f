package dt

import (
	"strings"
	"time"
)

// Built-in layouts.
const (
	DateTimeLayout = "20060102 15:04:05"
	DateLayout     = "20060102"
)

// labels holds the case-insensitive infinity spellings of a type.
// The first entry of each list is the one used for rendering.
type labels struct {
	pos, neg []string
}

func (l labels) match(s string) (Kind, bool) {
	s = strings.TrimSpace(s)
	for _, p := range l.pos {
		if strings.EqualFold(s, p) {
			return PosInf, true
		}
	}
	for _, n := range l.neg {
		if strings.EqualFold(s, n) {
			return NegInf, true
		}
	}
	return Finite, false
}

func (l labels) label(k Kind) string {
	if k == NegInf {
		return l.neg[0]
	}
	return l.pos[0]
}

var (
	absoluteLabels = labels{
		pos: []string{"+TInf", "TInf", "+Inf", "Inf"},
		neg: []string{"-TInf", "-Inf"},
	}
	durationLabels = labels{
		pos: []string{"+DInf", "DInf", "+Inf", "Inf"},
		neg: []string{"-DInf", "-Inf"},
	}
)

// class describes one absolute type.
type class struct {
	name        string
	layouts     []string // built-in, default first
	granularity int64
}

var (
	dateTimeClass = &class{name: "DateTime", layouts: []string{DateTimeLayout, DateLayout}}
	timeClass     = &class{name: "Time", layouts: []string{DateTimeLayout, DateLayout}}
	dateClass     = &class{name: "Date", layouts: []string{DateLayout}, granularity: Day}
)

// candidates lists the layouts tried by the parser: the configured
// layout first when it is not the default, then the built-in ones.
func (c *class) candidates(layout string) []string {
	if layout == "" || layout == c.layouts[0] {
		return c.layouts
	}
	return append([]string{layout}, c.layouts...)
}

// instant is the representation shared by the absolute types.
type instant struct {
	kind Kind
	sec  int64
}

func (c *class) make(sec int64, k Kind) instant {
	if k == Finite {
		sec, k = Quantize(sec, c.granularity)
	}
	if k != Finite {
		return instant{kind: k}
	}
	return instant{sec: sec}
}

func (c *class) parse(f Format, s string) (instant, error) {
	if k, ok := absoluteLabels.match(s); ok {
		return instant{kind: k}, nil
	}
	loc := f.location()
	layouts := c.candidates(f.Layout)
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return c.make(t.Unix(), Finite), nil
		}
	}
	return instant{}, parseErrorf(layouts, "cannot convert string %q to a %s", s, c.name)
}

func (c *class) format(f Format, in instant) string {
	switch {
	case in.kind != Finite:
		return absoluteLabels.label(in.kind)
	case in.sec == 0:
		return ""
	}
	layout := f.Layout
	if layout == "" {
		layout = c.layouts[0]
	}
	return time.Unix(in.sec, 0).In(f.location()).Format(layout)
}

func (in instant) compare(o instant) int {
	if in.kind != Finite || o.kind != Finite {
		return compareInt(int64(in.kind.rank()), int64(o.kind.rank()))
	}
	return compareInt(in.sec, o.sec)
}

func (in instant) stdTime() (time.Time, bool) {
	if in.kind != Finite {
		return time.Time{}, false
	}
	return time.Unix(in.sec, 0), true
}

// addSeconds adds raw seconds. Only Duration infinities saturate an
// instant, so an infinite receiver absorbs any number.
func (c *class) addSeconds(in instant, n int64) instant {
	if in.kind != Finite {
		return in
	}
	sec, k := addSat(in.sec, n)
	return c.make(sec, k)
}

// addDuration returns in+d, or ok=false when the infinities disagree.
// The microsecond remainder of d is dropped.
func (c *class) addDuration(in instant, d Duration) (instant, bool) {
	k, ok := sumKind(in.kind, d.kind)
	switch {
	case !ok:
		return instant{}, false
	case k != Finite:
		return instant{kind: k}, true
	}
	sec, k := addSat(in.sec, d.sec)
	return c.make(sec, k), true
}

// diff returns in-o, or ok=false for two equal infinities.
func diff(in, o instant) (Duration, bool) {
	if in.kind != Finite || o.kind != Finite {
		k, ok := sumKind(in.kind, o.kind.neg())
		return Duration{kind: k}, ok
	}
	sec, k := subSat(in.sec, o.sec)
	return makeDuration(sec, 0, k), true
}
