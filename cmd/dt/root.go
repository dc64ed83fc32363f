package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.starlark.net/starlark"
	"golang.org/x/term"

	"go.dtime.dev/dt"
	"go.dtime.dev/internal/config"
	"go.dtime.dev/internal/logger"
	"go.dtime.dev/repl"
	"go.dtime.dev/starlarkdt"
)

type options struct {
	configFile string
	verbose    int
	jsonLogs   bool
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	var opts options
	v := config.New()

	cmd := &cobra.Command{
		Use:   "dt [flags] [expr ...]",
		Short: "Evaluate date and duration expressions",
		Long: `dt evaluates expressions over saturating date, time and duration values.

Expressions are Starlark with the dt module and the create_dt builtin
predeclared. Values print in the configured layouts.

Examples:
  dt 'create_dt("20200101") + create_dt("1+00:00:00")'
  dt --utc 'dt.datetime("20200101 12:00:00") - dt.date("20200101")'
  echo 'dt.duration(90)' | dt`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logger.Initialize(opts.verbose, opts.jsonLogs); err != nil {
				return errors.Wrap(err, "failed to initialize logger")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			thread, err := setup(v, opts)
			if err != nil {
				return err
			}
			session := &repl.Session{
				Thread:  thread,
				Globals: starlarkdt.Predeclared(),
				Out:     out,
				Err:     errOut,
				Log:     logger.Named("eval"),
			}
			switch {
			case len(args) > 0:
				return evalArgs(thread, args, out)
			case isTerminal(in):
				return session.Run(v.GetString(config.KeyHistory))
			}
			return evalLines(session, in)
		},
	}

	flags := cmd.Flags()
	flags.String("layout", dt.DateTimeLayout, "DateTime layout, in Go reference time notation")
	flags.String("date-layout", dt.DateLayout, "Date layout")
	flags.String("time-layout", dt.DateTimeLayout, "Time layout")
	flags.Bool("utc", false, "parse and render in UTC instead of local time")
	flags.String("location", "", "parse and render in this IANA time zone")
	flags.StringVar(&opts.configFile, "config", "", "config file (toml, yaml or json)")
	cmd.PersistentFlags().CountVarP(&opts.verbose, "verbose", "v", "increase log verbosity (-v, -vv)")
	cmd.PersistentFlags().BoolVar(&opts.jsonLogs, "log-json", false, "log JSON objects")

	for key, flag := range map[string]string{
		config.KeyLayout:     "layout",
		config.KeyDateLayout: "date-layout",
		config.KeyTimeLayout: "time-layout",
		config.KeyUTC:        "utc",
		config.KeyLocation:   "location",
	} {
		// Lookup cannot fail for the flags defined above.
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}

	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	return cmd
}

// setup loads the configuration, installs it process-wide and returns
// a thread using it.
func setup(v *viper.Viper, opts options) (*starlark.Thread, error) {
	cfg, err := config.Load(v, opts.configFile)
	if err != nil {
		return nil, err
	}
	dc, err := cfg.Dt()
	if err != nil {
		return nil, err
	}
	dt.SetConfig(dc)
	logger.Logger.Debugw("loaded configuration",
		"layout", dc.DateTime.Layout,
		"date_layout", dc.Date.Layout,
		"time_layout", dc.Time.Layout,
		"location", dc.DateTime.Location.String(),
		"config_file", opts.configFile)

	thread := &starlark.Thread{
		Name:  "dt",
		Print: func(_ *starlark.Thread, msg string) { logger.Logger.Info(msg) },
	}
	starlarkdt.SetConfig(thread, dc)
	return thread, nil
}

// evalArgs evaluates each argument as an expression.
func evalArgs(thread *starlark.Thread, args []string, out io.Writer) error {
	failed := 0
	for _, expr := range args {
		logger.Logger.Debugw("evaluating", "expr", expr)
		v, err := starlarkdt.Eval(thread, expr)
		if err != nil {
			failed++
			fmt.Fprintf(out, ">>> %s => error: %v\n", expr, err)
			continue
		}
		fmt.Fprintf(out, ">>> %s => %s\n", expr, v)
	}
	if failed > 0 {
		return errors.Newf("%d of %d expressions failed", failed, len(args))
	}
	return nil
}

// evalLines evaluates each non-blank line of in.
func evalLines(session *repl.Session, in io.Reader) error {
	failed := 0
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := session.Eval(line); err != nil {
			failed++
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "failed to read input")
	}
	if failed > 0 {
		return errors.Newf("%d inputs failed", failed)
	}
	return nil
}

func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
