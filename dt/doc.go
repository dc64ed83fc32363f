/*Package dt defines absolute time points and relative spans that behave
like signed integer seconds but also carry two saturating sentinels,
positive and negative infinity.

  outline: dt
    types:
      DateTime
        seconds since the Unix epoch, rendered in the configured location
        default text form "20060102 15:04:05", alternate "20060102"
        infinity labels +TInf TInf +Inf Inf / -TInf -Inf
      Date
        a DateTime rounded up to the next multiple of 86400 seconds
        text form "20060102"
      Time
        a distinct type with DateTime semantics
      Duration
        signed seconds with a microsecond remainder
        text form "[<days>+]HH:MM:SS" or "MM:SS", optional ".ffffff"
        infinity labels +DInf DInf +Inf Inf / -DInf -Inf

    operators:
      datetime + duration = datetime
      datetime + seconds  = datetime
      datetime - duration = datetime
      datetime - datetime = duration
      duration + duration = duration
      duration - duration = duration
      duration + datetime = datetime
      datetime + datetime : ErrTypeMismatch
      duration - datetime : ErrTypeMismatch

    infinities:
      +Inf + finite = +Inf
      +Inf + +Inf   = +Inf
      +Inf + -Inf   : ErrDomain
      +Inf - +Inf   : ErrDomain

Zero renders as the empty string for absolute types and as "0" for
Duration. Text encodings are governed by a Config; String uses the
process-wide default, which may be replaced with SetConfig and friends.
*/
package dt
