package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/strobework/cubestorm/config"
	"github.com/strobework/cubestorm/env"
	"github.com/strobework/cubestorm/renderer"
	"github.com/strobework/cubestorm/sim"
	"github.com/strobework/cubestorm/telemetry"
	"github.com/strobework/cubestorm/ui"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	maxFrames := flag.Int("max-frames", 0, "Stop after N frames (0 = unlimited)")
	spawnInterval := flag.Float64("spawn-interval", 0, "Headless: spawn a batch every N seconds (0 = never)")
	stepsPerUpdate := flag.Int("steps-per-update", 1, "Simulation steps per loop iteration (higher = faster headless runs)")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	environment := env.Detect()

	output, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output dir", "error", err)
		os.Exit(1)
	}
	defer output.Close()

	if err := output.WriteConfig(cfg); err != nil {
		slog.Error("failed to snapshot config", "error", err)
	}

	opts := sim.Options{
		LogStats: *logStats,
		Output:   output,
	}

	if *headless {
		runHeadless(cfg, opts, environment, *maxFrames, *spawnInterval, *stepsPerUpdate)
		return
	}
	runGraphical(cfg, opts, environment, *maxFrames)
}

// runHeadless drives the engine with a fixed frame delta and no window.
// stepsPerUpdate steps run back to back per loop iteration; the stop
// check only happens between iterations, so frame counts can overshoot
// by up to stepsPerUpdate-1.
func runHeadless(cfg *config.Config, opts sim.Options, environment string, maxFrames int, spawnInterval float64, stepsPerUpdate int) {
	if stepsPerUpdate < 1 {
		stepsPerUpdate = 1
	}

	e := sim.NewEngine(cfg, opts)
	defer e.Close()

	slog.Info("starting headless run",
		"environment", environment,
		"dt", cfg.Headless.DT,
		"max_frames", maxFrames,
		"spawn_interval", spawnInterval,
		"steps_per_update", stepsPerUpdate,
	)

	dt := cfg.Derived.DT32
	nextSpawn := spawnInterval
	frames := 0
	for {
		for s := 0; s < stepsPerUpdate; s++ {
			in := sim.Input{}
			if spawnInterval > 0 && e.Elapsed() >= nextSpawn {
				in.SpawnBatch = true
				nextSpawn += spawnInterval
			}

			e.Step(dt, in)
			frames++
		}

		if maxFrames > 0 && frames >= maxFrames {
			slog.Info("max frames reached", "frames", frames, "stats", e.Stats())
			return
		}
	}
}

// runGraphical opens the window and runs the interactive loop.
func runGraphical(cfg *config.Config, opts sim.Options, environment string, maxFrames int) {
	title := fmt.Sprintf("CubeStorm - %s", environment)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	hud := ui.NewHUD("CubeStorm", environment)
	opts.Sink = hud

	e := sim.NewEngine(cfg, opts)
	defer e.Close()

	scene := renderer.NewSceneRenderer()
	defer scene.Unload()

	showPerf := false
	frames := 0
	for !rl.WindowShouldClose() {
		dt := rl.GetFrameTime()
		in := sim.Input{SpawnBatch: rl.IsKeyPressed(rl.KeySpace)}
		if rl.IsKeyPressed(rl.KeyP) {
			showPerf = !showPerf
		}

		e.Step(dt, in)

		rl.BeginDrawing()
		rl.ClearBackground(rl.Color{R: 18, G: 18, B: 24, A: 255})

		scene.Draw(e, renderer.Camera(e.Orbit()))

		hud.Draw()
		hud.DrawControls(int32(cfg.Screen.Height))
		if showPerf {
			ui.DrawPerfPanel(e.PerfStats(), int32(cfg.Screen.Width))
		}

		rl.EndDrawing()

		frames++
		if maxFrames > 0 && frames >= maxFrames {
			break
		}
	}
}
