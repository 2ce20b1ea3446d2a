package telemetry

import (
	"math"
	"testing"
)

func TestInstantaneous(t *testing.T) {
	cases := []struct {
		name string
		dt   float32
		want float64
	}{
		{"zero dt", 0, 0},
		{"negative dt", -0.016, 0},
		{"20ms frame", 0.02, 50},
		{"100ms frame", 0.1, 10},
	}

	for _, c := range cases {
		got := Instantaneous(c.dt)
		if math.Abs(got-c.want) > 1e-4 {
			t.Errorf("%s: expected %v, got %v", c.name, c.want, got)
		}
	}
}

func TestFPSWindow_WindowAverage(t *testing.T) {
	w := NewFPSWindow(3.0, 1.0, 150)

	// Three frames at 30, 60 and 90 fps inside one window
	w.Observe(1.0, 1.0/30.0)
	w.Observe(2.0, 1.0/60.0)
	w.Observe(3.0, 1.0/90.0)

	if w.SampleCount() != 3 {
		t.Fatalf("expected 3 samples, got %d", w.SampleCount())
	}

	avg := w.ReportAverage()
	if math.Abs(avg-60.0) > 1e-3 {
		t.Errorf("expected average 60.0, got %v", avg)
	}
}

func TestFPSWindow_BoundarySampleJoinsWindow(t *testing.T) {
	w := NewFPSWindow(3.0, 1.0, 150)

	w.Observe(0.0, 1.0/60.0)
	// Exactly on the boundary: still part of the closing window
	w.Observe(3.0, 1.0/60.0)
	if w.SampleCount() != 2 {
		t.Errorf("expected boundary sample to join window, got %d samples", w.SampleCount())
	}

	// Just past the boundary: window resets before the sample lands
	w.Observe(3.0001, 1.0/60.0)
	if w.SampleCount() != 1 {
		t.Errorf("expected reset past boundary, got %d samples", w.SampleCount())
	}
}

func TestFPSWindow_Reset(t *testing.T) {
	w := NewFPSWindow(3.0, 1.0, 150)

	w.Observe(1.0, 1.0/60.0)
	w.Observe(2.0, 1.0/60.0)

	// 3.5s elapsed exceeds the 3s window: accumulators restart
	w.Observe(3.5, 1.0/30.0)

	if w.SampleCount() != 1 {
		t.Errorf("expected 1 sample after reset, got %d", w.SampleCount())
	}
	if math.Abs(w.RollingSum()-30.0) > 1e-3 {
		t.Errorf("expected rolling sum ~30 after reset, got %v", w.RollingSum())
	}
}

func TestFPSWindow_HistoryFallback(t *testing.T) {
	w := NewFPSWindow(3.0, 1.0, 150)

	w.Observe(1.0, 1.0/60.0)

	// A degenerate frame past the boundary resets the window without
	// contributing a sample, leaving it empty.
	w.Observe(4.5, 0)

	if w.SampleCount() != 0 {
		t.Fatalf("expected empty window, got %d samples", w.SampleCount())
	}

	avg := w.ReportAverage()
	if math.Abs(avg-60.0) > 1e-3 {
		t.Errorf("expected history fallback ~60, got %v", avg)
	}
}

func TestFPSWindow_HistoryRingBounded(t *testing.T) {
	w := NewFPSWindow(100.0, 1.0, 4)

	// Six samples into a four-slot ring: 10 and 20 fall out
	for _, dt := range []float32{0.1, 0.05, 1.0 / 30.0, 0.025, 0.02, 1.0 / 60.0} {
		w.Observe(1.0, dt)
	}

	// Empty the window so the report falls back to history
	w.Observe(500.0, 0)

	avg := w.ReportAverage()
	// Remaining ring content: 30, 40, 50, 60
	if math.Abs(avg-45.0) > 1e-2 {
		t.Errorf("expected bounded history average ~45, got %v", avg)
	}
}

func TestFPSWindow_EmptyReport(t *testing.T) {
	w := NewFPSWindow(3.0, 1.0, 150)

	if avg := w.ReportAverage(); avg != 0 {
		t.Errorf("expected 0 with no samples anywhere, got %v", avg)
	}
}

func TestFPSWindow_DisplayCadence(t *testing.T) {
	w := NewFPSWindow(3.0, 1.0, 150)

	w.Observe(0.5, 1.0/60.0)

	if _, ok := w.DisplayText(0.5); ok {
		t.Error("expected no display before the first interval elapses")
	}

	text, ok := w.DisplayText(1.0)
	if !ok {
		t.Fatal("expected display text after interval elapsed")
	}
	if text != "FPS: 60" {
		t.Errorf("expected %q, got %q", "FPS: 60", text)
	}

	if _, ok := w.DisplayText(1.5); ok {
		t.Error("expected no display until the next interval elapses")
	}

	if _, ok := w.DisplayText(2.0); !ok {
		t.Error("expected display at the next interval")
	}
}

func TestFPSWindow_DisplayAdvancesWithoutSamples(t *testing.T) {
	w := NewFPSWindow(3.0, 1.0, 150)

	// Cadence fires with no samples: no text, but the interval restarts
	if _, ok := w.DisplayText(1.0); ok {
		t.Error("expected no display text without samples")
	}

	w.Observe(1.5, 1.0/60.0)

	if _, ok := w.DisplayText(1.8); ok {
		t.Error("expected cadence timestamp to have advanced at 1.0")
	}

	if _, ok := w.DisplayText(2.0); !ok {
		t.Error("expected display once the restarted interval elapsed")
	}
}
