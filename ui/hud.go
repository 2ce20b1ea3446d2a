// Package ui renders the heads-up display.
package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/strobework/cubestorm/sim"
	"github.com/strobework/cubestorm/telemetry"
)

// HUD renders the on-screen text. It receives engine updates through
// the sim.DisplaySink interface and repaints the latest value of each
// line every frame.
type HUD struct {
	Title string
	Env   string

	lines [2]string
}

// NewHUD creates a HUD with the initial placeholder texts.
func NewHUD(title, env string) *HUD {
	h := &HUD{Title: title, Env: env}
	h.lines[sim.TextFPS] = "FPS: --"
	h.lines[sim.TextEntityCount] = "Entities: 1"
	return h
}

// Set implements sim.DisplaySink.
func (h *HUD) Set(role sim.TextRole, text string) {
	if int(role) < len(h.lines) {
		h.lines[role] = text
	}
}

// Draw renders the HUD.
func (h *HUD) Draw() {
	rl.DrawText(h.Title, 10, 10, 20, rl.White)
	rl.DrawText(fmt.Sprintf("Running on %s", h.Env), 10, 35, 16, rl.LightGray)
	rl.DrawText(h.lines[sim.TextFPS], 10, 55, 18, rl.Green)
	rl.DrawText(h.lines[sim.TextEntityCount], 10, 78, 18, rl.LightGray)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32) {
	rl.DrawText("SPACE spawn batch | P perf | ESC quit", 10, screenHeight-25, 14, rl.Gray)
}

// DrawPerfPanel renders frame timing stats in the top-right corner.
func DrawPerfPanel(stats telemetry.PerfStats, screenWidth int32) {
	x := screenWidth - 240
	y := int32(10)

	rl.DrawText("Frame Timing", x, y, 16, rl.White)
	y += 20

	rl.DrawText(
		fmt.Sprintf("avg %s (%.0f fps)", stats.AvgFrameDuration.Round(time.Microsecond), stats.FramesPerSecond),
		x, y, 14, rl.Yellow,
	)
	y += 16

	phases := []string{
		telemetry.PhaseSpawn,
		telemetry.PhaseSpin,
		telemetry.PhaseSecondary,
		telemetry.PhaseTelemetry,
		telemetry.PhaseDisplay,
	}
	for _, phase := range phases {
		pct := stats.PhasePct[phase]

		color := rl.LightGray
		if pct > 50 {
			color = rl.Red
		} else if pct > 25 {
			color = rl.Orange
		}

		rl.DrawText(
			fmt.Sprintf("%-10s %8s %5.1f%%", phase, stats.PhaseAvg[phase].Round(time.Microsecond), pct),
			x, y, 12, color,
		)
		y += 14
	}
}
