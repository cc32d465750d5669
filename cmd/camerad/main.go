package main

import (
	"errors"
	"flag"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/camkit/go-camera/internal/config"
	"github.com/camkit/go-camera/internal/log"
	"github.com/camkit/go-camera/pkg/camera"
	"github.com/camkit/go-camera/pkg/device"
	"github.com/camkit/go-camera/pkg/resolution"
	"github.com/camkit/go-camera/pkg/web"
)

func main() {
	port := flag.String("port", config.Port(), "HTTP API port")
	cameras := flag.String("cameras", strings.Join(config.Cameras(), ","), "comma-separated camera ids")
	presetName := flag.String("preset", config.Preset(), "initial resolution preset")
	maxRes := flag.Bool("max-res", config.MaxResolutionCapture(), "use sensor max resolution for still capture")
	tablePath := flag.String("table", "", "capability table file (skips hardware probing)")
	flag.Parse()

	log.Init(config.LogLevel())

	preset, err := resolution.ParsePreset(*presetName)
	if err != nil {
		log.Error("invalid preset", "preset", *presetName, "err", err)
		os.Exit(1)
	}

	names := splitCameras(*cameras)
	provider, err := buildProvider(*tablePath, names)
	if err != nil {
		log.Error("capability tables unavailable", "err", err)
		os.Exit(1)
	}

	srv := web.NewServer(*port, provider)
	registered := 0
	for _, name := range names {
		f, err := resolution.New(provider, name, preset, *maxRes)
		if err != nil {
			if errors.Is(err, resolution.ErrNoProfile) {
				log.Warn("camera has no usable profile, skipping", "camera", name)
				continue
			}
			log.Error("resolution setup failed", "camera", name, "err", err)
			os.Exit(1)
		}
		srv.Register(name, camera.NewManager(f))
		registered++
	}
	if registered == 0 {
		log.Error("no cameras registered")
		os.Exit(1)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info("shutting down")
		srv.Shutdown()
	}()

	if err := srv.Start(); err != nil {
		log.Error("server error", "err", err)
		os.Exit(1)
	}
}

// buildProvider loads a table file when given, otherwise probes each
// numeric camera id on real hardware.
func buildProvider(tablePath string, names []string) (*resolution.StaticProvider, error) {
	if tablePath != "" {
		return device.LoadTable(tablePath)
	}

	provider := resolution.NewStaticProvider()
	for _, name := range names {
		id, err := strconv.Atoi(name)
		if err != nil {
			// Non-numeric names degrade to unsupported features; nothing
			// to probe.
			continue
		}
		probed, err := device.Probe(id)
		if err != nil {
			log.Warn("probe failed", "camera", name, "err", err)
			continue
		}
		provider.Merge(probed)
	}
	return provider, nil
}

func splitCameras(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
