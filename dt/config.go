package dt

import (
	"sync"
	"sync/atomic"
	"time"
)

// Format is the text encoding of one absolute type: a Go reference
// layout and the location in which values are parsed and rendered.
// The zero Format uses the type's built-in layout and time.Local.
type Format struct {
	Layout   string
	Location *time.Location
}

func (f Format) location() *time.Location {
	if f.Location == nil {
		return time.Local
	}
	return f.Location
}

// Config holds the text encodings of the absolute types.
// Duration has a fixed encoding and needs none.
type Config struct {
	DateTime Format
	Date     Format
	Time     Format
}

// DefaultConfig returns the built-in encodings in the local time zone.
func DefaultConfig() Config {
	return Config{
		DateTime: Format{Layout: DateTimeLayout, Location: time.Local},
		Date:     Format{Layout: DateLayout, Location: time.Local},
		Time:     Format{Layout: DateTimeLayout, Location: time.Local},
	}
}

// UTC returns a copy of c that parses and renders in UTC.
func (c Config) UTC() Config {
	return c.In(time.UTC)
}

// In returns a copy of c that parses and renders in loc.
func (c Config) In(loc *time.Location) Config {
	c.DateTime.Location = loc
	c.Date.Location = loc
	c.Time.Location = loc
	return c
}

var (
	current atomic.Pointer[Config]
	setMu   sync.Mutex
)

func init() {
	c := DefaultConfig()
	current.Store(&c)
}

// CurrentConfig returns the process-wide configuration used by String
// and by the package-level Parse functions.
func CurrentConfig() Config {
	return *current.Load()
}

// SetConfig replaces the process-wide configuration. Readers running
// concurrently observe either the old or the new configuration.
func SetConfig(c Config) {
	setMu.Lock()
	defer setMu.Unlock()
	current.Store(&c)
}

func update(fn func(*Config)) {
	setMu.Lock()
	defer setMu.Unlock()
	c := *current.Load()
	fn(&c)
	current.Store(&c)
}

// SetDateTimeLayout sets the process-wide DateTime layout.
func SetDateTimeLayout(layout string) {
	update(func(c *Config) { c.DateTime.Layout = layout })
}

// SetDateLayout sets the process-wide Date layout.
func SetDateLayout(layout string) {
	update(func(c *Config) { c.Date.Layout = layout })
}

// SetTimeLayout sets the process-wide Time layout.
func SetTimeLayout(layout string) {
	update(func(c *Config) { c.Time.Layout = layout })
}

// SetLocation sets the process-wide location of all absolute types.
func SetLocation(loc *time.Location) {
	update(func(c *Config) { *c = c.In(loc) })
}
