// Package repl provides a read/eval/print loop for dt expressions.
//
// Each input is parsed as Starlark with the dt module predeclared. A
// sole expression is evaluated and its value printed; anything else is
// executed for its side effects, and the names it binds stay visible to
// later inputs. Multi-line input continues until a blank line.
//
// Control-C abandons the current input; Control-D ends the session.
package repl // import "go.dtime.dev/repl"

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
	"go.uber.org/zap"
)

const (
	prompt       = "dt> "
	continuation = "... "
)

// A Session holds the state shared by the inputs of one loop.
type Session struct {
	Thread  *starlark.Thread
	Globals starlark.StringDict

	// Out and Err receive results and errors; they default to the
	// standard streams.
	Out, Err io.Writer

	// Log, if set, receives one debug entry per evaluated input.
	Log *zap.SugaredLogger
}

func (s *Session) out() io.Writer {
	if s.Out == nil {
		return os.Stdout
	}
	return s.Out
}

func (s *Session) err() io.Writer {
	if s.Err == nil {
		return os.Stderr
	}
	return s.Err
}

func (s *Session) log() *zap.SugaredLogger {
	if s.Log == nil {
		return zap.NewNop().Sugar()
	}
	return s.Log
}

// Run reads inputs from the terminal until end of file.
// historyFile may be empty.
func (s *Session) Run(historyFile string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      prompt,
		HistoryFile: historyFile,
		Stdout:      s.out(),
		Stderr:      s.err(),
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		err := s.rep(rl)
		if err == readline.ErrInterrupt {
			fmt.Fprintln(s.out(), err)
			continue
		}
		if err != nil {
			break
		}
	}
	fmt.Fprintln(s.out())
	return nil
}

// rep reads, evaluates, and prints one input. It returns an error only
// if readline failed; evaluation errors are printed.
func (s *Session) rep(rl *readline.Instance) error {
	eof := false
	rl.SetPrompt(prompt)
	read := func() ([]byte, error) {
		line, err := rl.Readline()
		rl.SetPrompt(continuation)
		if err != nil {
			if err == io.EOF {
				eof = true
			}
			return nil, err
		}
		return []byte(line + "\n"), nil
	}

	f, err := syntax.ParseCompoundStmt("<stdin>", read)
	if err != nil {
		if eof {
			return io.EOF
		}
		s.PrintError(err)
		return nil
	}
	s.exec(f)
	return nil
}

// Eval evaluates src as a single input, printing an expression's value.
// Errors are printed as well as returned.
func (s *Session) Eval(src string) error {
	// The trailing blank line ends a compound statement.
	lines := strings.SplitAfter(strings.TrimRight(src, "\n")+"\n\n", "\n")
	read := func() ([]byte, error) {
		if len(lines) == 0 || lines[0] == "" {
			return nil, io.EOF
		}
		line := lines[0]
		lines = lines[1:]
		return []byte(line), nil
	}
	f, err := syntax.ParseCompoundStmt("<expr>", read)
	if err != nil {
		s.PrintError(err)
		return err
	}
	return s.exec(f)
}

func (s *Session) exec(f *syntax.File) error {
	if expr := soleExpr(f); expr != nil {
		v, err := starlark.EvalExpr(s.Thread, expr, s.Globals)
		if err != nil {
			s.PrintError(err)
			return err
		}
		s.log().Debugw("evaluated", "type", v.Type(), "value", v.String())
		if v != starlark.None {
			fmt.Fprintln(s.out(), v)
		}
		return nil
	}
	if err := starlark.ExecREPLChunk(f, s.Thread, s.Globals); err != nil {
		s.PrintError(err)
		return err
	}
	s.log().Debugw("executed", "statements", len(f.Stmts))
	return nil
}

func soleExpr(f *syntax.File) syntax.Expr {
	if len(f.Stmts) == 1 {
		if stmt, ok := f.Stmts[0].(*syntax.ExprStmt); ok {
			return stmt.X
		}
	}
	return nil
}

// PrintError prints err, or its backtrace if it is a Starlark
// evaluation error.
func (s *Session) PrintError(err error) {
	if evalErr, ok := err.(*starlark.EvalError); ok {
		fmt.Fprintln(s.err(), evalErr.Backtrace())
	} else {
		fmt.Fprintln(s.err(), err)
	}
}
