/*Package starlarkdt exposes the dt value types to Starlark programs.

  outline: dt
    dt defines saturating date, time and duration values
    path: dt
    functions:
      datetime(x=None) datetime
        current time, seconds since the epoch, or a parsed string
      date(x=None) date
        like datetime, rounded up to the next day boundary
      time(x=None) time
        like datetime, under a distinct type
      duration(x) duration
        seconds, or a string "[<days>+][HH:]MM:SS[.ffffff]"
      create(x) value
        the first of date, datetime, duration that accepts x;
        x itself when none does
      now() datetime
      today() date
      inf(type="datetime", negative=False) value
        the infinity of the named type

    types:
      datetime, date, time
        fields:
          unix int, None for infinities
          is_inf bool
        methods:
          format(layout="") string
        operators:
          datetime + duration = datetime
          datetime + int      = datetime
          datetime - duration = datetime
          datetime - datetime = duration
          datetime == datetime = boolean
          datetime < datetime  = boolean
      duration
        fields:
          seconds float
          is_inf bool
        methods:
          format(days=True, fraction=True) string
        operators:
          duration + duration = duration
          duration - duration = duration
          duration + datetime = datetime
          duration +- int     = duration
          duration == duration = boolean
          duration < duration  = boolean

Programs may write dates and spans as explicit literals with the
predeclared create_dt function:

  create_dt("20200101") + create_dt("1+00:00:00")
*/
package starlarkdt // import "go.dtime.dev/starlarkdt"
