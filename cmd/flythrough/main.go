package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/mdobak/go-xerrors"
	"github.com/schollz/progressbar/v3"

	"github.com/thelonius/flythrough/camera"
	"github.com/thelonius/flythrough/config"
	"github.com/thelonius/flythrough/preview"
	"github.com/thelonius/flythrough/segment"
	"github.com/thelonius/flythrough/track"
)

// --- Structs ---

type arguments struct {
	GpxFile     string
	ConfigFile  string
	Strategy    string
	OutputFile  string
	PreviewFile string
	TargetFPS   float64
	BaseSpeed   float64
}

// planDocument is the exported plan consumed by the renderer.
type planDocument struct {
	RunID       string            `json:"runId"`
	GeneratedAt time.Time         `json:"generatedAt"`
	Strategy    string            `json:"strategy"`
	Settings    camera.Settings   `json:"settings"`
	Playback    playbackDocument  `json:"playback"`
	Warnings    []string          `json:"warnings,omitempty"`
	Keyframes   []camera.Keyframe `json:"keyframes"`
}

type playbackDocument struct {
	TargetFPS float64 `json:"targetFps"`
	BaseSpeed float64 `json:"baseSpeed"`
}

// --- Argument Parsing ---

func parseArguments() *arguments {
	args := &arguments{}

	flag.StringVar(&args.GpxFile, "gpx", "example.gpx", "Path to the GPX file.")
	flag.StringVar(&args.ConfigFile, "config", "", "Optional YAML config file.")
	flag.StringVar(&args.Strategy, "strategy", "", "Camera strategy (follow, cinematic, birdseye, static). Overrides the config.")
	flag.StringVar(&args.OutputFile, "o", "keyframes.json", "Output plan file name.")
	flag.StringVar(&args.PreviewFile, "preview", "", "Save a plan preview PNG to this path.")
	flag.Float64Var(&args.TargetFPS, "target-fps", 0, "Playback target framerate. Overrides the config.")
	flag.Float64Var(&args.BaseSpeed, "base-speed", 0, "Playback base speed multiplier. Overrides the config.")
	flag.Parse()

	return args
}

// --- Main Logic ---

func main() {
	godotenv.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	args := parseArguments()

	cfg, err := config.Load(args.ConfigFile)
	if err != nil {
		fatal(logger, "config", err)
	}
	if args.Strategy != "" {
		cfg.Strategy = args.Strategy
	}
	if args.TargetFPS > 0 {
		cfg.TargetFPS = args.TargetFPS
	}
	if args.BaseSpeed > 0 {
		cfg.BaseSpeed = args.BaseSpeed
	}

	strategy, err := camera.ForName(cfg.Strategy)
	if err != nil {
		fatal(logger, "strategy", err)
	}

	bar := progressbar.NewOptions(5,
		progressbar.OptionSetDescription("planning"),
		progressbar.OptionSetWriter(os.Stderr),
	)

	raw, err := track.LoadGPX(args.GpxFile)
	if err != nil {
		fatal(logger, "gpx", err)
	}
	bar.Add(1)

	points, result := track.Ingest(raw, time.Now().UTC())
	for _, w := range result.Warnings {
		logger.Warn("track advisory", slog.String("detail", w))
	}
	if !result.OK() {
		for _, e := range result.Errors {
			logger.Error("track rejected", slog.String("detail", e))
		}
		os.Exit(1)
	}
	bar.Add(1)

	segs := segment.Analyze(points)
	bar.Add(1)

	settings := cfg.Settings(cfg.Strategy)
	frames, err := strategy.Plan(points, segs, settings)
	if err != nil {
		fatal(logger, "plan", err)
	}
	bar.Add(1)

	doc := planDocument{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Strategy:    cfg.Strategy,
		Settings:    settings,
		Playback:    playbackDocument{TargetFPS: cfg.TargetFPS, BaseSpeed: cfg.BaseSpeed},
		Warnings:    result.Warnings,
		Keyframes:   frames,
	}
	if err := writePlan(args.OutputFile, doc); err != nil {
		fatal(logger, "export", err)
	}
	bar.Add(1)

	if args.PreviewFile != "" {
		caption := fmt.Sprintf("%s / %d points / %d keyframes", cfg.Strategy, len(points), len(frames))
		if err := writePreview(args.PreviewFile, points, frames, caption); err != nil {
			fatal(logger, "preview", err)
		}
	}

	logger.Info("plan written",
		slog.String("runId", doc.RunID),
		slog.String("strategy", doc.Strategy),
		slog.Int("points", len(points)),
		slog.Int("segments", len(segs)),
		slog.Int("keyframes", len(frames)),
		slog.String("output", args.OutputFile),
	)
}

func writePlan(path string, doc planDocument) error {
	f, err := os.Create(path)
	if err != nil {
		return xerrors.New("failed to create plan file", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return xerrors.New("failed to encode plan", err)
	}
	return f.Close()
}

func writePreview(path string, points []track.Point, frames []camera.Keyframe, caption string) error {
	img, err := preview.Render(points, frames, preview.Options{Caption: caption})
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return xerrors.New("failed to create preview file", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return xerrors.New("failed to encode preview", err)
	}
	return f.Close()
}

func fatal(logger *slog.Logger, stage string, err error) {
	logger.Error("planning failed", slog.String("stage", stage), slog.Any("error", err))
	os.Exit(1)
}
