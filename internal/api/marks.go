package api

import (
	"math"
	"strconv"
	"strings"
)

// intFromJSON coerces a decoded JSON value into an int. Accepts a JSON
// number or a numeric string as long as the value is integer-valued:
// 7, "7" and "7.0" pass, 7.5, "7.5" and "abc" do not.
func intFromJSON(v interface{}) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n == math.Trunc(n) {
			return int(n), true
		}
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err == nil && f == math.Trunc(f) {
			return int(f), true
		}
	}
	return 0, false
}
