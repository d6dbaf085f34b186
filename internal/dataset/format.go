package dataset

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// NullText is the display form of SQL NULL.
const NullText = "NULL"

// FormatValue renders a scanned cell value as display text. Whole floats
// keep one decimal place so REAL columns read as decimals.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return NullText
	case []byte:
		return string(x)
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		if x == math.Trunc(x) && math.Abs(x) < 1e15 {
			return strconv.FormatFloat(x, 'f', 1, 64)
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		if x {
			return "1"
		}
		return "0"
	case time.Time:
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 && x.Nanosecond() == 0 {
			return x.Format(time.DateOnly)
		}
		return x.Format(time.DateTime)
	default:
		return fmt.Sprint(x)
	}
}

// IsNull reports whether a scanned value is SQL NULL.
func IsNull(v any) bool {
	return v == nil
}
