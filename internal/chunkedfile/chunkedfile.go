// Package chunkedfile runs Starlark test scripts that are split into
// independent chunks, checking that failures are reported on the
// expected lines.
//
// Chunks are separated by "---" lines. A line containing "###" expects
// the chunk to fail on that line: the text after the marker is a Go
// string literal holding a regular expression that must match the error.
//
//	assert_eq(dt.duration("1:00") + 1, dt.duration("1:01"))
//	---
//	dt.datetime("+TInf") - dt.datetime("-TInf") ### "invalid operation"
//
// Each chunk is executed on its own so that a failure in one does not
// hide the expectations of the next.
package chunkedfile // import "go.dtime.dev/internal/chunkedfile"

import (
	"os"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
)

const separator = "\n---\n"

// A Chunk is one independently executed part of a script.
type Chunk struct {
	// Source is padded with blank lines so that positions match the file.
	Source string

	filename string
	report   Reporter
	want     map[int]*regexp.Regexp
}

// Reporter is implemented by *testing.T.
type Reporter interface {
	Errorf(format string, args ...interface{})
}

// Read reads filename and splits it into chunks, reporting malformed
// expectations to report.
func Read(filename string, report Reporter) []Chunk {
	data, err := os.ReadFile(filename)
	if err != nil {
		report.Errorf("%s", err)
		return nil
	}
	return Split(filename, string(data), report)
}

// Split splits src, the content of filename, into chunks.
func Split(filename, src string, report Reporter) []Chunk {
	src = strings.ReplaceAll(src, "\r\n", "\n")

	var chunks []Chunk
	line := 1
	for _, text := range strings.Split(src, separator) {
		c := Chunk{
			Source:   strings.Repeat("\n", line-1) + text,
			filename: filename,
			report:   report,
			want:     make(map[int]*regexp.Regexp),
		}
		for _, l := range strings.Split(text, "\n") {
			if i := strings.Index(l, "###"); i >= 0 {
				c.expect(line, strings.TrimSpace(l[i+len("###"):]))
			}
			line++
		}
		line++ // the separator
		chunks = append(chunks, c)
	}
	return chunks
}

func (c *Chunk) expect(line int, quoted string) {
	pattern, err := strconv.Unquote(quoted)
	if err != nil {
		c.report.Errorf("\n%s:%d: not a quoted regexp: %s", c.filename, line, quoted)
		return
	}
	rx, err := regexp.Compile(pattern)
	if err != nil {
		c.report.Errorf("\n%s:%d: %v", c.filename, line, err)
		return
	}
	c.want[line] = rx
}

// GotError records an error reported at line, complaining if it was not
// expected or does not match the expectation.
func (c *Chunk) GotError(line int, msg string) {
	rx, ok := c.want[line]
	if !ok {
		c.report.Errorf("\n%s:%d: unexpected error: %v", c.filename, line, msg)
		return
	}
	delete(c.want, line)
	if !rx.MatchString(msg) {
		c.report.Errorf("\n%s:%d: error %q does not match pattern %q", c.filename, line, msg, rx)
	}
}

// Done reports the expected errors that did not occur.
func (c *Chunk) Done() {
	for line, rx := range c.want {
		c.report.Errorf("\n%s:%d: expected error matching %q", c.filename, line, rx)
	}
}

// Exec executes the chunk on thread with the given predeclared names,
// matching its failure against the expectations, then calls Done.
func (c *Chunk) Exec(thread *starlark.Thread, predeclared starlark.StringDict) {
	defer c.Done()

	_, err := starlark.ExecFile(thread, c.filename, c.Source, predeclared)
	switch err := err.(type) {
	case nil:
	case *starlark.EvalError:
		for i := range err.CallStack {
			if pos := err.CallStack.At(i).Pos; pos.Filename() == c.filename {
				c.GotError(int(pos.Line), err.Error())
				return
			}
		}
		c.report.Errorf("%s", err.Backtrace())
	default:
		c.report.Errorf("\n%s", err)
	}
}
