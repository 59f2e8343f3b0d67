package validate

import "math"

// maxWhole is the largest whole number a JSON number decodes to exactly.
const maxWhole = 1 << 53

// String returns v as a string when it is a non-empty JSON string.
func String(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok && s != ""
}

// Number returns v as a float64 when it is a JSON number.
func Number(v any) (float64, bool) {
	f, ok := v.(float64)
	return f, ok
}

// PositiveInt returns v as an int when it is a whole JSON number greater than 0.
// Numbers above 2^53 are rejected because they no longer decode to the exact
// integer that was sent.
func PositiveInt(v any) (int, bool) {
	f, ok := Number(v)
	if !ok || f <= 0 || f != math.Trunc(f) || f > maxWhole || f > math.MaxInt {
		return 0, false
	}
	return int(f), true
}

// ConflictingID returns the body id and true when it is a non-empty string
// different from routeID. Ids of any other type are ignored.
func ConflictingID(bodyID any, routeID string) (string, bool) {
	s, ok := String(bodyID)
	return s, ok && s != routeID
}
