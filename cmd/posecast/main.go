// posecast - body pose to UDP streamer
//
// Captures webcam frames, runs pose estimation, and streams mapped
// landmark coordinates to a game engine for avatar puppeteering.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/posecast/posecast/internal/config"
	"github.com/posecast/posecast/internal/log"
	"github.com/posecast/posecast/pkg/capture"
	"github.com/posecast/posecast/pkg/debug"
	"github.com/posecast/posecast/pkg/pose"
	"github.com/posecast/posecast/pkg/preview"
	"github.com/posecast/posecast/pkg/stream"
	"github.com/posecast/posecast/pkg/transport"
	"github.com/posecast/posecast/pkg/web"
)

func main() {
	// Command line flags
	dest := flag.String("dest", config.Dest(config.DefaultDest), "UDP destination host:port (or set POSECAST_DEST env)")
	fps := flag.Int("fps", config.DefaultFPS, "Target frame rate cap")
	width := flag.Int("width", config.DefaultWidth, "Requested capture width (hint)")
	height := flag.Int("height", config.DefaultHeight, "Requested capture height (hint)")
	camera := flag.Int("camera", 0, "Camera device index")
	complexity := flag.Int("complexity", 1, "Model complexity: 0=lite, 1=full, 2=heavy")
	model := flag.String("model", config.ModelPath(""), "Pose model path (overrides the per-complexity default)")
	wire := flag.String("wire", "text", "Wire encoding: text (legacy-compatible) or cbor (versioned)")
	headless := flag.Bool("headless", false, "Run without a preview window (quit via Ctrl+C)")
	status := flag.String("status", "", "Monitor dashboard listen address, e.g. :8070 (disabled when empty)")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	dbg := flag.Bool("debug", false, "Enable debug logging")
	debugPose := flag.Bool("debug-pose", false, "Enable verbose per-frame pose logging")
	flag.Parse()

	log.Init(*logLevel)
	debug.Enabled = *dbg
	debug.Pose = *debugPose

	fmt.Println("🕺 posecast - body pose to UDP streamer")
	fmt.Printf("   Destination: %s (%s)\n", *dest, *wire)
	fmt.Printf("   Capture: %dx%d @ %d fps cap\n", *width, *height, *fps)
	fmt.Println()

	streamCfg := stream.Config{TargetFPS: *fps}
	if errs := streamCfg.Validate(); errs != nil {
		fatal("invalid stream config: %s", errs[0])
	}

	var encoder stream.Encoder
	switch *wire {
	case "text":
		encoder = transport.TextEncoder{}
	case "cbor":
		encoder = transport.CBOREncoder{}
	default:
		fatal("unknown wire encoding %q (want text or cbor)", *wire)
	}

	// Camera: unavailable device is fatal, nothing to stream without it.
	source, err := capture.OpenWebcam(capture.Config{
		DeviceID: *camera,
		Width:    *width,
		Height:   *height,
	})
	if err != nil {
		fatal("camera init failed: %v", err)
	}

	poseCfg := pose.DefaultConfig()
	poseCfg.Complexity = pose.Complexity(*complexity)
	poseCfg.ModelPath = *model
	estimator, err := pose.NewBlazePose(poseCfg)
	if err != nil {
		source.Close()
		fatal("pose model init failed: %v", err)
	}

	sender, err := transport.NewUDPSender(*dest)
	if err != nil {
		source.Close()
		estimator.Close()
		fatal("transport init failed: %v", err)
	}

	var previewer stream.Previewer
	if *headless {
		previewer = preview.Noop{}
	} else {
		previewer = preview.NewWindow("posecast")
	}

	streamer := stream.New(streamCfg, source, estimator, encoder, sender, previewer)

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\n👋 Shutting down...")
		cancel()
	}()

	// Optional monitor dashboard
	if *status != "" {
		monitor := web.NewServer(*status, streamer)
		streamer.OnPose = monitor.PublishPose
		go func() {
			if err := monitor.Start(); err != nil {
				log.Error("monitor server stopped", "error", err)
			}
		}()
		defer monitor.Shutdown()
		fmt.Printf("📊 Monitor: http://localhost%s\n", *status)
	}

	runErr := streamer.Run(ctx)

	if err := streamer.Close(); err != nil {
		log.Warn("shutdown cleanup", "error", err)
	}

	if runErr != nil {
		fatal("stream ended: %v", runErr)
	}

	snap := streamer.Stats()
	fmt.Printf("👋 Done. %d frames, %d poses sent, %d send failures\n",
		snap.Frames, snap.Sent, snap.SendFailures)
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
