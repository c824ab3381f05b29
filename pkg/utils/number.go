package utils

import (
	"fmt"
	"math"
	"strconv"
)

// FormatCell renders one dataframe value for an HTML table. Whole numbers
// lose their decimals, other floats keep their full precision.
func FormatCell(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case bool:
		return strconv.FormatBool(value)
	case float64:
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return ""
		}
		if value == math.Trunc(value) && math.Abs(value) < 1e15 {
			return strconv.FormatInt(int64(value), 10)
		}
		return strconv.FormatFloat(value, 'f', -1, 64)
	case float32:
		return FormatCell(float64(value))
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	default:
		return fmt.Sprint(value)
	}
}
