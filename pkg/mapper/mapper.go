// Package mapper converts normalized landmarks into the pixel-scale,
// Y-up coordinate space the avatar consumer expects.
package mapper

import "github.com/posecast/posecast/pkg/pose"

// Point is a mapped landmark position in pixel-scale units.
type Point struct {
	X, Y, Z float64
}

// Map converts one normalized landmark for a frame of the given size.
// Image space grows downward; the consumer wants Y up, so Y is flipped
// against the frame height. Depth is scaled by width, like X. Raw
// floating point throughout: no clamping, no rounding.
func Map(lm pose.Landmark, width, height int) Point {
	w := float64(width)
	h := float64(height)
	return Point{
		X: lm.X * w,
		Y: h - lm.Y*h,
		Z: lm.Z * w,
	}
}

// MapPose converts every landmark of a pose, preserving schema order.
func MapPose(p *pose.Pose, width, height int) []Point {
	points := make([]Point, len(p.Landmarks))
	for i, lm := range p.Landmarks {
		points[i] = Map(lm, width, height)
	}
	return points
}

// Unmap inverts Map, recovering the normalized landmark position.
// Used by consumers and tests; Map∘Unmap is the identity up to
// floating-point precision.
func Unmap(pt Point, width, height int) pose.Landmark {
	w := float64(width)
	h := float64(height)
	return pose.Landmark{
		X: pt.X / w,
		Y: (h - pt.Y) / h,
		Z: pt.Z / w,
	}
}

// Flatten lays the points out as the wire payload expects: three values
// per landmark, landmark order preserved.
func Flatten(points []Point) []float64 {
	flat := make([]float64, 0, len(points)*3)
	for _, pt := range points {
		flat = append(flat, pt.X, pt.Y, pt.Z)
	}
	return flat
}
