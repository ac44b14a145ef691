package normalize

// Numeric represents the number types accepted by the numeric transforms.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Clamp constrains values to the inclusive [min, max] range.
func Clamp[T Numeric](min, max T) func(T) T {
	return func(value T) T {
		if value < min {
			return min
		}
		if value > max {
			return max
		}
		return value
	}
}

// NonNegative maps negative values to zero.
func NonNegative[T Numeric](value T) T {
	var zero T
	if value < zero {
		return zero
	}
	return value
}
