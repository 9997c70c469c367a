package geometry

import "errors"

var (
	// ErrNotRectilinear is returned when two consecutive vertices share
	// neither a row nor a column.
	ErrNotRectilinear = errors.New("not rectilinear")

	// ErrNotEnoughVertices is returned for polygons with one to three vertices.
	ErrNotEnoughVertices = errors.New("not enough vertices")

	// ErrSelfIntersecting is returned when the closing edge of a polygon
	// crosses one of its non-adjacent edges.
	ErrSelfIntersecting = errors.New("self-intersecting")
)
