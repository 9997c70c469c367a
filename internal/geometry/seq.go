package geometry

import "iter"

// SkipLast yields every element of seq except the last one. It holds a
// single element of lookahead and never copies the sequence.
func SkipLast[T any](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		var prev T
		have := false
		for v := range seq {
			if have && !yield(prev) {
				return
			}
			prev, have = v, true
		}
	}
}

// Skip yields the elements of seq after the first n.
func Skip[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		i := 0
		for v := range seq {
			if i < n {
				i++
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// segmentsOf yields the segments joining consecutive points. The caller
// guarantees consecutive points are aligned.
func segmentsOf(points []Point) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for i := 1; i < len(points); i++ {
			if !yield(Segment{Start: points[i-1], End: points[i]}) {
				return
			}
		}
	}
}
