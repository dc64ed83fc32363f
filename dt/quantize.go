package dt

import "math"

// Day is the Date granularity in seconds.
const Day = 86400

// Quantize rounds sec up to the next multiple of granularity.
// A granularity <= 0 leaves sec unchanged. The kind is PosInf when the
// rounded value does not fit in an int64.
func Quantize(sec, granularity int64) (int64, Kind) {
	if granularity <= 0 {
		return sec, Finite
	}
	q := sec / granularity
	if sec > 0 && sec%granularity != 0 {
		q++
	}
	if q > math.MaxInt64/granularity {
		return 0, PosInf
	}
	return q * granularity, Finite
}
