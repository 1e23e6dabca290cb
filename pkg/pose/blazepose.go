package pose

import (
	"fmt"
	"image"
	"math"
	"os"
	"sync"

	"github.com/posecast/posecast/pkg/debug"
	"gocv.io/x/gocv"
)

// Model input size and output layer names for the BlazePose landmark ONNX
// exports. All three complexity tiers share the same tensor layout.
const (
	blazeInputSize = 256

	landmarksLayer = "Identity"   // [1, 195] = 33 landmarks x (x, y, z, visibility, presence)
	scoreLayer     = "Identity_1" // [1, 1] body presence score
)

// Exponential smoothing factor applied across frames in video mode
// (higher = more new data).
const landmarkSmoothing = 0.6

// BlazePose runs the BlazePose landmark model through OpenCV's DNN module.
type BlazePose struct {
	net    gocv.Net
	config Config

	mu       sync.Mutex // Protects inference and tracking state
	tracking bool
	prev     *Pose
}

// NewBlazePose creates a pose estimator backed by a BlazePose ONNX model.
func NewBlazePose(cfg Config) (*BlazePose, error) {
	if errs := cfg.Validate(); errs != nil {
		return nil, fmt.Errorf("invalid config: %s", errs[0])
	}

	modelPath := cfg.Model()
	if _, err := os.Stat(modelPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("model file not found: %s", modelPath)
	}

	net := gocv.ReadNetFromONNX(modelPath)
	if net.Empty() {
		return nil, fmt.Errorf("failed to load pose model from %s", modelPath)
	}

	net.SetPreferableBackend(gocv.NetBackendDefault)
	net.SetPreferableTarget(gocv.NetTargetCPU)

	return &BlazePose{
		net:    net,
		config: cfg,
	}, nil
}

// Estimate runs the landmark model on one color frame.
// Returns (nil, nil) when the body presence score is below the active
// confidence threshold.
func (b *BlazePose) Estimate(img gocv.Mat) (*Pose, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if img.Empty() {
		return nil, fmt.Errorf("empty image")
	}

	// The model expects RGB; capture delivers BGR, so swap channels in
	// the blob conversion.
	blob := gocv.BlobFromImage(img, 1.0/255.0,
		image.Pt(blazeInputSize, blazeInputSize),
		gocv.NewScalar(0, 0, 0, 0), true, false)
	defer blob.Close()

	b.net.SetInput(blob, "")

	outs := b.net.ForwardLayers([]string{landmarksLayer, scoreLayer})
	defer func() {
		for i := range outs {
			outs[i].Close()
		}
	}()
	if len(outs) < 2 {
		return nil, fmt.Errorf("unexpected model output count: %d", len(outs))
	}

	score := float64(outs[1].GetFloatAt(0, 0))

	// MediaPipe semantics: detection confidence gates acquiring a body,
	// tracking confidence gates keeping one.
	threshold := b.config.MinDetectionConfidence
	if b.tracking && !b.config.StaticImageMode {
		threshold = b.config.MinTrackingConfidence
	}
	if score < threshold {
		b.tracking = false
		b.prev = nil
		return nil, nil
	}

	data, err := outs[0].DataPtrFloat32()
	if err != nil {
		return nil, fmt.Errorf("read landmark tensor: %w", err)
	}
	if len(data) < LandmarkCount*5 {
		return nil, fmt.Errorf("short landmark tensor: %d values", len(data))
	}

	p := &Pose{Score: score}
	for i := 0; i < LandmarkCount; i++ {
		// Raw values are in model-input pixels; the blob resize
		// stretches the frame, so dividing by the input size yields
		// coordinates normalized to the original frame.
		p.Landmarks[i] = Landmark{
			X:          float64(data[i*5+0]) / blazeInputSize,
			Y:          float64(data[i*5+1]) / blazeInputSize,
			Z:          float64(data[i*5+2]) / blazeInputSize,
			Visibility: sigmoid(float64(data[i*5+3])),
		}
	}

	if b.config.SmoothLandmarks && !b.config.StaticImageMode && b.prev != nil {
		smooth(p, b.prev)
	}

	b.tracking = !b.config.StaticImageMode
	b.prev = p

	debug.PoseLog("🦴 pose score=%.2f nose=(%.3f, %.3f)\n",
		score, p.Landmarks[Nose].X, p.Landmarks[Nose].Y)

	return p, nil
}

// Close releases the model resources.
func (b *BlazePose) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.net.Close()
}

// smooth blends the new pose toward the previous one in place.
func smooth(cur, prev *Pose) {
	for i := range cur.Landmarks {
		c := &cur.Landmarks[i]
		p := prev.Landmarks[i]
		c.X = landmarkSmoothing*c.X + (1-landmarkSmoothing)*p.X
		c.Y = landmarkSmoothing*c.Y + (1-landmarkSmoothing)*p.Y
		c.Z = landmarkSmoothing*c.Z + (1-landmarkSmoothing)*p.Z
	}
}

func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}
