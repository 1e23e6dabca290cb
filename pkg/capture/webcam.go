package capture

import (
	"fmt"

	"gocv.io/x/gocv"
)

// Webcam reads frames from a local camera device through OpenCV.
type Webcam struct {
	cap *gocv.VideoCapture
	buf gocv.Mat
}

// OpenWebcam opens the camera device and applies the resolution hint.
// Failure here is fatal for the caller; there is nothing to stream
// without a camera.
func OpenWebcam(cfg Config) (*Webcam, error) {
	if errs := cfg.Validate(); errs != nil {
		return nil, fmt.Errorf("invalid config: %s", errs[0])
	}

	cap, err := gocv.OpenVideoCapture(cfg.DeviceID)
	if err != nil {
		return nil, fmt.Errorf("open camera %d: %w", cfg.DeviceID, err)
	}

	cap.Set(gocv.VideoCaptureFrameWidth, float64(cfg.Width))
	cap.Set(gocv.VideoCaptureFrameHeight, float64(cfg.Height))

	return &Webcam{
		cap: cap,
		buf: gocv.NewMat(),
	}, nil
}

// Read grabs the next frame. The returned Frame shares the webcam's
// buffer and is only valid until the next Read.
func (w *Webcam) Read() (Frame, bool) {
	if ok := w.cap.Read(&w.buf); !ok || w.buf.Empty() {
		return Frame{}, false
	}

	return Frame{
		Img:    w.buf,
		Width:  w.buf.Cols(),
		Height: w.buf.Rows(),
	}, true
}

// Close releases the camera and the frame buffer.
func (w *Webcam) Close() error {
	w.buf.Close()
	return w.cap.Close()
}
