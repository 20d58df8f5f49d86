package common

// Coalesce returns the first non-zero value in values, or the zero value when
// every entry is zero. Used to layer caller-supplied configuration over
// defaults, e.g. sampler staging fields and plane strides.
//
// Parameters:
//   - values: candidate values in priority order
//
// Returns:
//   - T: the first non-zero value, or the zero value of T
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
