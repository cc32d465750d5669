package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/camkit/go-camera/internal/config"
	"github.com/camkit/go-camera/internal/log"
	"github.com/camkit/go-camera/pkg/device"
	"github.com/camkit/go-camera/pkg/remote"
	"github.com/camkit/go-camera/pkg/resolution"
)

func main() {
	cameraName := flag.String("camera", "0", "camera id")
	presetName := flag.String("preset", "max", "resolution preset to resolve")
	maxRes := flag.Bool("max-res", false, "use sensor max resolution for still capture")
	devicePath := flag.String("device", "", "device path or stable v4l2 id to probe (defaults to the camera id)")
	tablePath := flag.String("table", "", "capability table file (skips hardware probing)")
	remoteAddr := flag.String("remote", "", "host:port of a camera daemon to query instead of local hardware")
	watch := flag.Bool("watch", false, "with -remote: stay connected and print config-change events")
	flag.Parse()

	log.Init(config.LogLevel())

	preset, err := resolution.ParsePreset(*presetName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid preset %q (valid: %s)\n", *presetName, strings.Join(resolution.PresetNames(), ", "))
		os.Exit(1)
	}

	provider, err := buildProvider(*cameraName, *devicePath, *tablePath, *remoteAddr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	f, err := resolution.New(provider, *cameraName, preset, *maxRes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if !f.CheckIsSupported() {
		fmt.Printf("camera %q: resolution configuration not supported\n", *cameraName)
		os.Exit(0)
	}

	printLadder(provider, f.CameraID())
	printResolved(provider, f, *maxRes)

	if *watch && *remoteAddr != "" {
		watchEvents(*remoteAddr)
	}
}

func buildProvider(cameraName, devicePath, tablePath, remoteAddr string) (*resolution.StaticProvider, error) {
	switch {
	case remoteAddr != "":
		host, port, ok := strings.Cut(remoteAddr, ":")
		if !ok {
			return nil, fmt.Errorf("-remote must be host:port")
		}
		return remote.NewClient(host, port).FetchProvider(context.Background(), cameraName)
	case tablePath != "":
		return device.LoadTable(tablePath)
	default:
		id, err := strconv.Atoi(cameraName)
		if err != nil {
			// Feature construction handles non-numeric names; give it an
			// empty table.
			return resolution.NewStaticProvider(), nil
		}
		if devicePath != "" {
			path, err := device.ResolvePath(devicePath)
			if err != nil {
				return nil, err
			}
			return device.ProbePath(id, path)
		}
		return device.Probe(id)
	}
}

func printLadder(provider *resolution.StaticProvider, cameraID int) {
	fmt.Printf("📷 Camera %d quality ladder:\n", cameraID)
	for q := resolution.Quality2160p; q >= resolution.QualityQVGA; q-- {
		if rp, ok := provider.Profile(cameraID, q); ok {
			fmt.Printf("  %-6s %s @%dfps %d kbps\n", q, rp.FrameSize(), rp.FrameRate, rp.VideoBitrate/1000)
		}
	}
}

func printResolved(provider *resolution.StaticProvider, f *resolution.Feature, maxRes bool) {
	fmt.Printf("\nResolved sizes per preset (still capture from %s):\n",
		map[bool]string{true: "sensor max", false: "video frame"}[maxRes])
	for _, name := range resolution.PresetNames() {
		p, _ := resolution.ParsePreset(name)
		rp, err := resolution.BestAvailableProfile(provider, f.CameraID(), p)
		if err != nil {
			fmt.Printf("  %-10s (no profile)\n", name)
			continue
		}
		fmt.Printf("  %-10s %s (%s)\n", name, rp.FrameSize(), rp.Quality)
	}
	fmt.Printf("\nCurrent preset %s: preview %s, capture %s\n", f.Value(), f.PreviewSize(), f.CaptureSize())
}

func watchEvents(remoteAddr string) {
	host, port, _ := strings.Cut(remoteAddr, ":")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	events, err := remote.NewClient(host, port).SubscribeEvents(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\n👀 Watching for config changes (Ctrl+C to stop)...")
	for msg := range events {
		fmt.Printf("  [%s] %s %s\n", shortID(msg.ID), msg.Type, msg.Payload)
	}
}

// shortID abbreviates an event id for display. Envelopes come from the
// network, so the id may be any length.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
