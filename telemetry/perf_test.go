package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	// Simulate a few frames
	for i := 0; i < 5; i++ {
		pc.StartFrame()
		pc.StartPhase(PhaseSpin)
		time.Sleep(100 * time.Microsecond)
		pc.StartPhase(PhaseTelemetry)
		time.Sleep(200 * time.Microsecond)
		pc.EndFrame()
	}

	stats := pc.Stats()

	// Verify we got timing data
	if stats.AvgFrameDuration <= 0 {
		t.Error("expected positive average frame duration")
	}

	// Verify phases are tracked
	if len(stats.PhaseAvg) == 0 {
		t.Error("expected phase averages to be populated")
	}

	if _, ok := stats.PhaseAvg[PhaseSpin]; !ok {
		t.Error("expected spin phase to be tracked")
	}

	if _, ok := stats.PhaseAvg[PhaseTelemetry]; !ok {
		t.Error("expected telemetry phase to be tracked")
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5) // Small window

	// Fill window completely
	for i := 0; i < 10; i++ {
		pc.StartFrame()
		pc.StartPhase(PhaseSpin)
		pc.EndFrame()
	}

	if pc.sampleCount != 5 {
		t.Errorf("expected window capped at 5 samples, got %d", pc.sampleCount)
	}

	stats := pc.Stats()

	// Should have data
	if stats.AvgFrameDuration <= 0 {
		t.Error("expected positive average frame duration after window filled")
	}

	if stats.FramesPerSecond <= 0 {
		t.Error("expected positive frames per second")
	}
}

func TestPerfCollector_PhasePercentages(t *testing.T) {
	pc := NewPerfCollector(10)

	// Simulate with uneven phase durations
	for i := 0; i < 5; i++ {
		pc.StartFrame()
		pc.StartPhase("fast")
		time.Sleep(10 * time.Microsecond)
		pc.StartPhase("slow")
		time.Sleep(100 * time.Microsecond)
		pc.EndFrame()
	}

	stats := pc.Stats()

	fastPct := stats.PhasePct["fast"]
	slowPct := stats.PhasePct["slow"]

	// Slow phase should take more % than fast
	if slowPct <= fastPct {
		t.Errorf("expected slow phase (%v%%) > fast phase (%v%%)", slowPct, fastPct)
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	pc := NewPerfCollector(10)

	stats := pc.Stats()

	// Empty collector should return zero values without panicking
	if stats.AvgFrameDuration != 0 {
		t.Error("expected zero avg frame duration for empty collector")
	}

	if stats.PhaseAvg == nil {
		t.Error("expected non-nil PhaseAvg map")
	}

	if stats.PhasePct == nil {
		t.Error("expected non-nil PhasePct map")
	}
}

func TestPerfCollector_StdDev(t *testing.T) {
	pc := NewPerfCollector(10)

	// Frames with deliberately different durations
	pc.StartFrame()
	time.Sleep(1 * time.Millisecond)
	pc.EndFrame()

	pc.StartFrame()
	time.Sleep(5 * time.Millisecond)
	pc.EndFrame()

	stats := pc.Stats()

	if stats.FrameStdDev <= 0 {
		t.Errorf("expected positive stddev for uneven frames, got %v", stats.FrameStdDev)
	}

	if stats.MinFrameDuration >= stats.MaxFrameDuration {
		t.Errorf("expected min < max, got min=%v max=%v",
			stats.MinFrameDuration, stats.MaxFrameDuration)
	}
}

func TestPerfStats_ToCSV(t *testing.T) {
	stats := PerfStats{
		AvgFrameDuration: 2 * time.Millisecond,
		MinFrameDuration: 1 * time.Millisecond,
		MaxFrameDuration: 4 * time.Millisecond,
		FrameStdDev:      500 * time.Microsecond,
		FramesPerSecond:  500,
		PhasePct: map[string]float64{
			PhaseSpawn: 5,
			PhaseSpin:  80,
		},
	}

	row := stats.ToCSV(12.5)

	if row.WindowEnd != 12.5 {
		t.Errorf("expected window end 12.5, got %v", row.WindowEnd)
	}
	if row.AvgFrameUS != 2000 {
		t.Errorf("expected avg 2000us, got %d", row.AvgFrameUS)
	}
	if row.StdDevUS != 500 {
		t.Errorf("expected stddev 500us, got %d", row.StdDevUS)
	}
	if row.SpinPct != 80 {
		t.Errorf("expected spin pct 80, got %v", row.SpinPct)
	}
	if row.SecondaryPct != 0 {
		t.Errorf("expected zero pct for untracked phase, got %v", row.SecondaryPct)
	}
}
