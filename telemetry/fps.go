// Package telemetry aggregates frame-rate and per-phase timing statistics.
package telemetry

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Instantaneous returns the frame rate implied by a single frame delta.
// Degenerate deltas report 0, never infinity.
func Instantaneous(dt float32) float64 {
	if dt <= 0 {
		return 0
	}
	return 1 / float64(dt)
}

// FPSWindow accumulates instantaneous frame rates over fixed,
// non-overlapping windows. A bounded ring of recent samples serves as a
// fallback average source right after a window reset.
type FPSWindow struct {
	windowSec  float64
	displaySec float64

	rollingSum  float64
	sampleCount int
	windowStart float64
	lastDisplay float64

	history      []float64
	historyIdx   int
	historyCount int
}

// NewFPSWindow creates an aggregator. windowSec is the accumulation window,
// displaySec the display refresh cadence, historySize the fallback ring
// capacity.
func NewFPSWindow(windowSec, displaySec float64, historySize int) *FPSWindow {
	if historySize < 1 {
		historySize = 150
	}
	return &FPSWindow{
		windowSec:  windowSec,
		displaySec: displaySec,
		history:    make([]float64, historySize),
	}
}

// Observe records one frame. now is elapsed seconds since start, dt the
// frame delta. The window reset check runs every frame; frames with dt <= 0
// contribute no sample. A sample landing exactly on the window boundary
// still joins the closing window.
func (w *FPSWindow) Observe(now float64, dt float32) {
	if now-w.windowStart > w.windowSec {
		w.rollingSum = 0
		w.sampleCount = 0
		w.windowStart = now
	}

	fps := Instantaneous(dt)
	if fps <= 0 {
		return
	}
	w.rollingSum += fps
	w.sampleCount++

	w.history[w.historyIdx] = fps
	w.historyIdx = (w.historyIdx + 1) % len(w.history)
	if w.historyCount < len(w.history) {
		w.historyCount++
	}
}

// DisplayText returns the FPS display string once per display interval.
// ok is false when the text should be left unchanged: either the cadence
// has not elapsed, or the current window has no samples yet. The cadence
// timestamp advances either way.
func (w *FPSWindow) DisplayText(now float64) (text string, ok bool) {
	if now-w.lastDisplay < w.displaySec {
		return "", false
	}
	w.lastDisplay = now
	if w.sampleCount == 0 {
		return "", false
	}
	return fmt.Sprintf("FPS: %.0f", w.rollingSum/float64(w.sampleCount)), true
}

// ReportAverage returns the average FPS for the periodic report: the
// current window when it has samples, the bounded history otherwise, and
// 0 when both are empty.
func (w *FPSWindow) ReportAverage() float64 {
	if w.sampleCount > 0 {
		return w.rollingSum / float64(w.sampleCount)
	}
	if w.historyCount > 0 {
		return stat.Mean(w.history[:w.historyCount], nil)
	}
	return 0
}

// SampleCount returns the number of samples in the current window.
func (w *FPSWindow) SampleCount() int {
	return w.sampleCount
}

// RollingSum returns the current window's accumulated frame rates.
func (w *FPSWindow) RollingSum() float64 {
	return w.rollingSum
}
