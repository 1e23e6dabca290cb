// Package preview renders the live frame with a skeleton overlay and
// hosts the quit keypress.
package preview

import (
	"image"
	"image/color"

	"github.com/posecast/posecast/pkg/capture"
	"github.com/posecast/posecast/pkg/pose"
	"gocv.io/x/gocv"
)

// Key that ends the stream loop.
const quitKey = 'q'

// Minimum landmark visibility to draw. Purely cosmetic; the datagram
// always carries every landmark.
const drawVisibility = 0.5

var (
	boneColor  = color.RGBA{R: 0, G: 220, B: 120, A: 255}
	jointColor = color.RGBA{R: 255, G: 80, B: 80, A: 255}
)

// Window shows frames in an on-screen OpenCV window.
type Window struct {
	win *gocv.Window
}

// NewWindow creates the preview window.
func NewWindow(title string) *Window {
	return &Window{win: gocv.NewWindow(title)}
}

// Show renders the frame, overlaying the skeleton when a pose exists,
// and polls the keyboard once. Returns true when the quit key was
// pressed.
func (w *Window) Show(frame capture.Frame, p *pose.Pose) bool {
	if p != nil {
		drawSkeleton(&frame.Img, p, frame.Width, frame.Height)
	}

	w.win.IMShow(frame.Img)
	return w.win.WaitKey(1)&0xff == quitKey
}

// Close destroys the window.
func (w *Window) Close() error {
	return w.win.Close()
}

// drawSkeleton draws bones and joints in image space (Y down; the Y-up
// flip only applies to the wire coordinates, not the overlay).
func drawSkeleton(img *gocv.Mat, p *pose.Pose, width, height int) {
	pts := make([]image.Point, pose.LandmarkCount)
	for i, lm := range p.Landmarks {
		pts[i] = image.Pt(int(lm.X*float64(width)), int(lm.Y*float64(height)))
	}

	for _, c := range pose.Connections {
		if p.Landmarks[c.A].Visibility < drawVisibility ||
			p.Landmarks[c.B].Visibility < drawVisibility {
			continue
		}
		gocv.Line(img, pts[c.A], pts[c.B], boneColor, 2)
	}

	for i, lm := range p.Landmarks {
		if lm.Visibility < drawVisibility {
			continue
		}
		gocv.Circle(img, pts[i], 3, jointColor, -1)
	}
}

// Noop is the headless previewer: no window, no quit key. Termination
// then comes from the process signal handler.
type Noop struct{}

// Show does nothing and never requests quit.
func (Noop) Show(frame capture.Frame, p *pose.Pose) bool {
	return false
}

// Close does nothing.
func (Noop) Close() error {
	return nil
}
