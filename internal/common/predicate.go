package common

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// IsInRange checks if a value is within the specified range, both inclusive.
func IsInRange[T number](min T, value T, max T) bool {
	return min <= value && value <= max
}

// AllInRange reports whether every value lies in [min, max].
// An empty slice is never in range. NaN compares false and fails the check.
func AllInRange[T number](values []T, min, max T) bool {
	if len(values) == 0 {
		return false
	}

	for _, v := range values {
		if !IsInRange(min, v, max) {
			return false
		}
	}

	return true
}

// AllPositive reports whether every value is strictly greater than zero.
func AllPositive[T number](values []T) bool {
	if len(values) == 0 {
		return false
	}

	for _, v := range values {
		if !(v > 0) {
			return false
		}
	}

	return true
}
