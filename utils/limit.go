package utils

const limitDefault = 20
const limitMax = 50

// ClampLimit normalizes a caller-supplied result limit. Non-positive values
// fall back to the default and anything above the cap is trimmed.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return limitDefault
	}
	return min(limit, limitMax)
}
