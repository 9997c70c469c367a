package geometry

import "golang.org/x/exp/constraints"

func sign[T constraints.Signed](v T) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

func minMax[T constraints.Integer](a, b T) (T, T) {
	if a <= b {
		return a, b
	}
	return b, a
}
