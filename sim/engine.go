// Package sim implements the spawn-and-spin engine: the entity store,
// batch spawner, parallel rotation updater and telemetry cadences.
package sim

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/strobework/cubestorm/camera"
	"github.com/strobework/cubestorm/components"
	"github.com/strobework/cubestorm/config"
	"github.com/strobework/cubestorm/telemetry"
	"github.com/strobework/cubestorm/vecmath"
)

// Stats tracks spawn counters for a running simulation.
type Stats struct {
	BatchCount    uint32
	TotalEntities uint32
}

// LogValue implements slog.LogValuer for structured logging.
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("batches", int64(s.BatchCount)),
		slog.Int64("entities", int64(s.TotalEntities)),
	)
}

// Input is the per-frame intent sampled before stepping.
type Input struct {
	SpawnBatch bool
}

// Options configures optional engine wiring.
type Options struct {
	// LogStats enables periodic structured stats logging
	LogStats bool

	// Output receives CSV telemetry rows; nil disables file output
	Output *telemetry.OutputManager

	// Sink receives display text updates; nil disables them
	Sink DisplaySink

	// SkipAggregator leaves the engine without an FPS aggregator, for
	// callers that attach their own
	SkipAggregator bool
}

// Engine holds the complete simulation state. All mutable state lives
// here; nothing is shared between instances.
type Engine struct {
	cfg   *config.Config
	world *ecs.World

	// Entity mappers and filters
	cubeMapper *ecs.Map2[components.Transform, components.Spin]
	refMapper  *ecs.Map3[components.Transform, components.Spin, components.Bob]
	spinFilter *ecs.Filter2[components.Transform, components.Spin]
	bobFilter  *ecs.Filter2[components.Transform, components.Bob]

	parallel *parallelState
	orbit    *camera.Orbit

	fps    *telemetry.FPSWindow
	perf   *telemetry.PerfCollector
	output *telemetry.OutputManager
	sink   DisplaySink

	stats   Stats
	elapsed float64

	lastReport  float64
	lastFPSLog  float64
	lastTotal   uint32
	lastFPSText string
	logStats    bool
}

// NewEngine creates an engine with the reference entity seeded. Unless
// opts.SkipAggregator is set, a default FPS aggregator is attached.
func NewEngine(cfg *config.Config, opts Options) *Engine {
	world := ecs.NewWorld()

	e := &Engine{
		cfg:        cfg,
		world:      world,
		cubeMapper: ecs.NewMap2[components.Transform, components.Spin](world),
		refMapper:  ecs.NewMap3[components.Transform, components.Spin, components.Bob](world),
		spinFilter: ecs.NewFilter2[components.Transform, components.Spin](world),
		bobFilter:  ecs.NewFilter2[components.Transform, components.Bob](world),
		parallel:   newParallelState(),
		orbit: camera.New(
			float32(cfg.Camera.Radius),
			float32(cfg.Camera.Speed),
			float32(cfg.Camera.Height),
			float32(cfg.Camera.Bob),
		),
		perf:     telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		output:   opts.Output,
		sink:     opts.Sink,
		logStats: opts.LogStats,
	}

	if !opts.SkipAggregator {
		e.fps = telemetry.NewFPSWindow(
			cfg.Telemetry.WindowSec,
			cfg.Telemetry.DisplayInterval,
			cfg.Telemetry.HistorySize,
		)
	}

	e.seedReference()
	e.lastTotal = e.stats.TotalEntities

	return e
}

// AttachAggregator installs w as the engine's FPS aggregator. Attaching
// a second aggregator is a setup error.
func (e *Engine) AttachAggregator(w *telemetry.FPSWindow) error {
	if e.fps != nil {
		return errors.New("telemetry aggregator already attached")
	}
	e.fps = w
	return nil
}

// seedReference creates the central cube that exists before any batch
// is spawned. It spins like the others and additionally bobs in place.
func (e *Engine) seedReference() {
	rc := &e.cfg.Reference
	s := e.cfg.Derived.RefScale

	tr := components.Transform{
		Rotation: vecmath.QuatIdentity(),
		Scale:    vecmath.Vec3{X: s, Y: s, Z: s},
	}
	spin := components.Spin{Speed: 1, Batch: 0}
	bob := components.Bob{
		Amplitude: float32(rc.BobAmplitude),
		Frequency: float32(rc.BobFrequency),
	}

	e.refMapper.NewEntity(&tr, &spin, &bob)
	e.stats.TotalEntities = 1
}

// Step advances the simulation by one frame: spawn, rotation, secondary
// motion, telemetry, display. Frames with dt <= 0 do no time-based work
// but still run the cadence checks.
func (e *Engine) Step(dt float32, in Input) {
	if dt > 0 {
		e.elapsed += float64(dt)
	}

	e.perf.StartFrame()

	e.perf.StartPhase(telemetry.PhaseSpawn)
	if in.SpawnBatch {
		e.SpawnBatch()
	}

	e.perf.StartPhase(telemetry.PhaseSpin)
	e.updateSpins(dt)

	e.perf.StartPhase(telemetry.PhaseSecondary)
	e.updateSecondary(dt)

	e.perf.StartPhase(telemetry.PhaseTelemetry)
	e.observeFrame(dt)

	e.perf.StartPhase(telemetry.PhaseDisplay)
	e.publishDisplay()

	e.perf.EndFrame()
}

// updateSecondary applies non-spin motion: the reference bob and the
// orbit camera path.
func (e *Engine) updateSecondary(dt float32) {
	if dt <= 0 {
		return
	}

	query := e.bobFilter.Query()
	for query.Next() {
		tr, bob := query.Get()
		tr.Position.Y = bob.BaseY + float32(math.Sin(e.elapsed*float64(bob.Frequency)))*bob.Amplitude
	}

	e.orbit.Advance(dt)
}

// observeFrame feeds the frame into the aggregator and runs the
// periodic cadences.
func (e *Engine) observeFrame(dt float32) {
	if e.fps != nil {
		e.fps.Observe(e.elapsed, dt)
	}

	if e.logStats && e.cfg.Telemetry.LogInterval > 0 &&
		e.elapsed-e.lastFPSLog >= e.cfg.Telemetry.LogInterval {
		e.lastFPSLog = e.elapsed
		slog.Info("current fps",
			"fps", telemetry.Instantaneous(dt),
			"entities", e.stats.TotalEntities)
	}

	e.maybeReport()
}

// maybeReport emits the periodic console report. Without an aggregator
// the report is skipped entirely.
func (e *Engine) maybeReport() {
	if e.fps == nil {
		return
	}
	if e.elapsed-e.lastReport < e.cfg.Telemetry.ReportInterval {
		return
	}
	e.lastReport = e.elapsed

	avg := e.fps.ReportAverage()
	Reportf("[%.1fs] Entities: %d, 3-sec Avg FPS: %.1f", e.elapsed, e.stats.TotalEntities, avg)

	if e.logStats {
		slog.Info("report", "elapsed", e.elapsed, "stats", e.stats, "avg_fps", avg)
		e.perf.Stats().LogStats()
	}

	if e.output != nil {
		rec := telemetry.FPSRecord{
			Elapsed:  e.elapsed,
			Entities: e.stats.TotalEntities,
			Batches:  e.stats.BatchCount,
			AvgFPS:   avg,
		}
		if err := e.output.WriteFPS(rec); err != nil {
			slog.Error("writing fps row", "error", err)
		}
		if err := e.output.WritePerf(e.perf.Stats(), e.elapsed); err != nil {
			slog.Error("writing perf row", "error", err)
		}
	}
}

// publishDisplay pushes changed text values to the sink.
func (e *Engine) publishDisplay() {
	if e.sink == nil {
		return
	}

	if e.stats.TotalEntities != e.lastTotal {
		e.lastTotal = e.stats.TotalEntities
		e.sink.Set(TextEntityCount, fmt.Sprintf("Entities: %d", e.stats.TotalEntities))
	}

	if e.fps == nil {
		return
	}
	if text, ok := e.fps.DisplayText(e.elapsed); ok && text != e.lastFPSText {
		e.lastFPSText = text
		e.sink.Set(TextFPS, text)
	}
}

// VisitEntities calls fn for every spinning entity. The renderer uses
// this to draw without touching the store directly.
func (e *Engine) VisitEntities(fn func(tr *components.Transform, spin *components.Spin)) {
	query := e.spinFilter.Query()
	for query.Next() {
		tr, spin := query.Get()
		fn(tr, spin)
	}
}

// Stats returns the current spawn counters.
func (e *Engine) Stats() Stats {
	return e.stats
}

// Elapsed returns accumulated simulation time in seconds.
func (e *Engine) Elapsed() float64 {
	return e.elapsed
}

// Orbit returns the camera path for the renderer.
func (e *Engine) Orbit() *camera.Orbit {
	return e.orbit
}

// PerfStats returns aggregated frame timing statistics.
func (e *Engine) PerfStats() telemetry.PerfStats {
	return e.perf.Stats()
}

// Close releases engine resources, stopping the worker pool.
func (e *Engine) Close() {
	e.parallel.stopWorkers()
}
