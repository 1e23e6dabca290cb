package mapper

import (
	"math"
	"testing"

	"github.com/posecast/posecast/pkg/pose"
)

func TestMap(t *testing.T) {
	tests := []struct {
		name   string
		lm     pose.Landmark
		w, h   int
		expect Point
	}{
		{
			name:   "center of 720p frame",
			lm:     pose.Landmark{X: 0.5, Y: 0.5, Z: 0.1},
			w:      1280,
			h:      720,
			expect: Point{X: 640.0, Y: 360.0, Z: 128.0},
		},
		{
			name:   "image-space top left maps to output top left",
			lm:     pose.Landmark{X: 0, Y: 0, Z: 0},
			w:      1280,
			h:      720,
			expect: Point{X: 0, Y: 720, Z: 0},
		},
		{
			name:   "image-space bottom right maps to output bottom right",
			lm:     pose.Landmark{X: 1, Y: 1, Z: 0},
			w:      1280,
			h:      720,
			expect: Point{X: 1280, Y: 0, Z: 0},
		},
		{
			name:   "out-of-frame landmark is not clamped",
			lm:     pose.Landmark{X: 1.2, Y: -0.1, Z: -0.3},
			w:      1000,
			h:      500,
			expect: Point{X: 1200, Y: 550, Z: -300},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Map(tc.lm, tc.w, tc.h)
			if got != tc.expect {
				t.Errorf("Map: got %+v, want %+v", got, tc.expect)
			}
		})
	}
}

func TestMap_UsesActualFrameSize(t *testing.T) {
	lm := pose.Landmark{X: 0.5, Y: 0.5, Z: 0.5}

	small := Map(lm, 640, 480)
	large := Map(lm, 1920, 1080)

	if small.X != 320 || large.X != 960 {
		t.Errorf("Map must scale by the delivered frame size: got %v and %v", small.X, large.X)
	}
}

func TestUnmap_RecoversNormalizedCoordinates(t *testing.T) {
	// Inverse-transform property: Unmap(Map(lm)) == lm to float precision.
	landmarks := []pose.Landmark{
		{X: 0.5, Y: 0.5, Z: 0.1},
		{X: 0.123456789, Y: 0.987654321, Z: -0.05},
		{X: 1.0, Y: 0.0, Z: 0.0},
		{X: 0.333333333, Y: 0.666666666, Z: 0.25},
	}

	for _, lm := range landmarks {
		got := Unmap(Map(lm, 1280, 720), 1280, 720)
		if math.Abs(got.X-lm.X) > 1e-12 ||
			math.Abs(got.Y-lm.Y) > 1e-12 ||
			math.Abs(got.Z-lm.Z) > 1e-12 {
			t.Errorf("Unmap(Map(%+v)) = %+v, want original", lm, got)
		}
	}
}

func TestMapPose_PreservesOrder(t *testing.T) {
	p := &pose.Pose{}
	for i := range p.Landmarks {
		p.Landmarks[i] = pose.Landmark{X: float64(i) / 100}
	}

	points := MapPose(p, 100, 100)

	if len(points) != pose.LandmarkCount {
		t.Fatalf("MapPose: got %d points, want %d", len(points), pose.LandmarkCount)
	}
	for i, pt := range points {
		if pt.X != float64(i) {
			t.Errorf("Point %d: got X=%v, want %v", i, pt.X, float64(i))
		}
	}
}

func TestFlatten(t *testing.T) {
	points := []Point{
		{X: 640.0, Y: 360.0, Z: 128.0},
		{X: 1.0, Y: 2.0, Z: 3.0},
	}

	flat := Flatten(points)

	want := []float64{640.0, 360.0, 128.0, 1.0, 2.0, 3.0}
	if len(flat) != len(want) {
		t.Fatalf("Flatten: got %d values, want %d", len(flat), len(want))
	}
	for i := range want {
		if flat[i] != want[i] {
			t.Errorf("Flatten[%d]: got %v, want %v", i, flat[i], want[i])
		}
	}
}

func TestFlatten_FullPoseLength(t *testing.T) {
	p := pose.UniformPose(0.5, 0.5, 0.1)
	flat := Flatten(MapPose(p, 1280, 720))

	if len(flat) != 3*pose.LandmarkCount {
		t.Errorf("Flatten: got %d values, want %d", len(flat), 3*pose.LandmarkCount)
	}
}
