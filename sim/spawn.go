package sim

import (
	"log/slog"
	"math"

	"github.com/strobework/cubestorm/components"
	"github.com/strobework/cubestorm/vecmath"
)

// SpawnBatch creates one batch of cubes along the spiral. Later batches
// land farther out and higher up than earlier ones. Returns false
// without spawning when the batch would exceed the configured entity
// cap; counters stay untouched in that case.
func (e *Engine) SpawnBatch() bool {
	sc := &e.cfg.Spawn
	b := e.stats.BatchCount + 1

	if sc.MaxEntities > 0 && int(e.stats.TotalEntities)+sc.BatchSize > sc.MaxEntities {
		slog.Warn("batch rejected: entity capacity reached",
			"batch", b,
			"batch_size", sc.BatchSize,
			"total_entities", e.stats.TotalEntities,
			"max_entities", sc.MaxEntities)
		return false
	}

	// One speed per batch, clamped so late batches neither stall nor race
	speed := vecmath.Clamp(float32(1.0-float64(b)*sc.SpeedDecay),
		e.cfg.Derived.MinSpeed32, e.cfg.Derived.MaxSpeed32)

	scale := e.cfg.Derived.SpawnScale
	for i := 0; i < sc.BatchSize; i++ {
		angle := float64(i) * sc.AngleStep
		radius := sc.BaseRadius + float64(b)*sc.RadiusGrowth + float64(i)*sc.RadiusFineStep
		height := float64(i%sc.HeightPeriod)*sc.HeightScale + float64(b)*sc.HeightGrowth - sc.HeightOffset

		tr := components.Transform{
			Position: vecmath.Vec3{
				X: float32(math.Cos(angle) * radius),
				Y: float32(height),
				Z: float32(math.Sin(angle) * radius),
			},
			Rotation: vecmath.QuatIdentity(),
			Scale:    vecmath.Vec3{X: scale, Y: scale, Z: scale},
		}
		spin := components.Spin{Speed: speed, Batch: b}
		e.cubeMapper.NewEntity(&tr, &spin)
	}

	e.stats.BatchCount = b
	e.stats.TotalEntities += uint32(sc.BatchSize)

	Reportf("Batch %d: Total Entities %d", b, e.stats.TotalEntities)
	slog.Info("batch spawned",
		"batch", b,
		"batch_size", sc.BatchSize,
		"rotation_speed", speed,
		"total_entities", e.stats.TotalEntities)
	return true
}
