//go:build cgo

// Spiral placement preview tool - interactive visualization with sliders.
//
// Usage: go run ./cmd/spiralpreview
package main

import (
	"fmt"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 512
	panelWidth   = windowWidth - previewSize - 30

	pointsPerBatch = 600
)

// SpiralParams holds the batch placement parameters.
type SpiralParams struct {
	AngleStep      float32
	BaseRadius     float32
	RadiusGrowth   float32
	RadiusFineStep float32
	HeightPeriod   int
	HeightScale    float32
	HeightGrowth   float32
	HeightOffset   float32
	Batches        int
}

func defaultParams() SpiralParams {
	return SpiralParams{
		AngleStep:      0.5,
		BaseRadius:     5.0,
		RadiusGrowth:   3.0,
		RadiusFineStep: 0.002,
		HeightPeriod:   100,
		HeightScale:    0.15,
		HeightGrowth:   2.0,
		HeightOffset:   5.0,
		Batches:        4,
	}
}

// point is one projected spiral position.
type point struct {
	x, y, z float32
	batch   int
}

var batchColors = []rl.Color{
	{R: 230, G: 126, B: 34, A: 255},
	{R: 46, G: 204, B: 113, A: 255},
	{R: 231, G: 76, B: 60, A: 255},
	{R: 155, G: 89, B: 182, A: 255},
	{R: 241, G: 196, B: 15, A: 255},
	{R: 26, G: 188, B: 156, A: 255},
	{R: 52, G: 152, B: 219, A: 255},
	{R: 236, G: 240, B: 241, A: 255},
}

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Spiral Placement Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	params := defaultParams()

	var points []point
	topView := true
	needsRegen := true

	for !rl.WindowShouldClose() {
		if needsRegen {
			points = generateSpiral(params)
			needsRegen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		// Draw preview
		if topView {
			drawTopView(points)
		} else {
			drawSideView(points)
		}
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		// Draw stats
		minR, maxR, minH, maxH := spiralBounds(points)
		statsY := int32(previewSize + 25)
		rl.DrawText(fmt.Sprintf("Radius: %.1f - %.1f   Height: %.1f - %.1f", minR, maxR, minH, maxH), 15, statsY, 16, rl.DarkGray)
		rl.DrawText(fmt.Sprintf("Points: %d (%d per batch)", len(points), pointsPerBatch), 15, statsY+20, 16, rl.DarkGray)

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Spiral Placement Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		// Angle step slider
		rl.DrawText("Angle Step (radians per index)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newAngleStep := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0.05", "1.5",
			params.AngleStep, 0.05, 1.5,
		)
		rl.DrawText(fmt.Sprintf("%.3f", params.AngleStep), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newAngleStep != params.AngleStep {
			params.AngleStep = newAngleStep
			needsRegen = true
		}
		panelY += 35

		// Base radius slider
		rl.DrawText("Base Radius (innermost ring)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newBaseRadius := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"1", "20",
			params.BaseRadius, 1, 20,
		)
		rl.DrawText(fmt.Sprintf("%.1f", params.BaseRadius), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newBaseRadius != params.BaseRadius {
			params.BaseRadius = newBaseRadius
			needsRegen = true
		}
		panelY += 35

		// Radius growth slider
		rl.DrawText("Radius Growth (per batch)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newRadiusGrowth := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0.5", "8.0",
			params.RadiusGrowth, 0.5, 8.0,
		)
		rl.DrawText(fmt.Sprintf("%.2f", params.RadiusGrowth), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newRadiusGrowth != params.RadiusGrowth {
			params.RadiusGrowth = newRadiusGrowth
			needsRegen = true
		}
		panelY += 35

		// Radius fine step slider
		rl.DrawText("Radius Fine Step (per index)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newFineStep := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0", "0.01",
			params.RadiusFineStep, 0, 0.01,
		)
		rl.DrawText(fmt.Sprintf("%.4f", params.RadiusFineStep), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newFineStep != params.RadiusFineStep {
			params.RadiusFineStep = newFineStep
			needsRegen = true
		}
		panelY += 35

		// Height period slider
		rl.DrawText("Height Period (indices per cycle)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newPeriod := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"10", "500",
			float32(params.HeightPeriod), 10, 500,
		)
		rl.DrawText(fmt.Sprintf("%d", params.HeightPeriod), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if int(newPeriod) != params.HeightPeriod {
			params.HeightPeriod = int(newPeriod)
			needsRegen = true
		}
		panelY += 35

		// Height scale slider
		rl.DrawText("Height Scale (per index in cycle)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newHeightScale := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0", "0.5",
			params.HeightScale, 0, 0.5,
		)
		rl.DrawText(fmt.Sprintf("%.3f", params.HeightScale), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newHeightScale != params.HeightScale {
			params.HeightScale = newHeightScale
			needsRegen = true
		}
		panelY += 35

		// Height growth slider
		rl.DrawText("Height Growth (per batch)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newHeightGrowth := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0", "5.0",
			params.HeightGrowth, 0, 5.0,
		)
		rl.DrawText(fmt.Sprintf("%.2f", params.HeightGrowth), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newHeightGrowth != params.HeightGrowth {
			params.HeightGrowth = newHeightGrowth
			needsRegen = true
		}
		panelY += 35

		// Batches slider
		rl.DrawText("Batches", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newBatches := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"1", "8",
			float32(params.Batches), 1, 8,
		)
		rl.DrawText(fmt.Sprintf("%d", params.Batches), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if int(newBatches) != params.Batches {
			params.Batches = int(newBatches)
			needsRegen = true
		}
		panelY += 45

		// Buttons
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(topView, "Side View", "Top View")) {
			topView = !topView
		}

		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = defaultParams()
			needsRegen = true
		}
		panelY += 45

		// Output YAML
		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25
		for _, line := range yamlLines(params) {
			rl.DrawText(line, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 16
		}

		// Instructions
		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)

		// Copy to clipboard on C key
		if rl.IsKeyPressed(rl.KeyC) {
			yaml := ""
			for _, line := range yamlLines(params) {
				yaml += line + "\n"
			}
			rl.SetClipboardText(yaml)
		}

		rl.EndDrawing()
	}
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}

func yamlLines(params SpiralParams) []string {
	return []string{
		"spawn:",
		fmt.Sprintf("  angle_step: %.3f", params.AngleStep),
		fmt.Sprintf("  base_radius: %.1f", params.BaseRadius),
		fmt.Sprintf("  radius_growth: %.2f", params.RadiusGrowth),
		fmt.Sprintf("  radius_fine_step: %.4f", params.RadiusFineStep),
		fmt.Sprintf("  height_period: %d", params.HeightPeriod),
		fmt.Sprintf("  height_scale: %.3f", params.HeightScale),
		fmt.Sprintf("  height_growth: %.2f", params.HeightGrowth),
	}
}

// generateSpiral computes the same placement the engine uses, one point
// per entity index for each batch.
func generateSpiral(params SpiralParams) []point {
	points := make([]point, 0, params.Batches*pointsPerBatch)

	for b := 1; b <= params.Batches; b++ {
		for i := 0; i < pointsPerBatch; i++ {
			angle := float64(i) * float64(params.AngleStep)
			radius := float64(params.BaseRadius) + float64(b)*float64(params.RadiusGrowth) + float64(i)*float64(params.RadiusFineStep)
			height := float64(i%params.HeightPeriod)*float64(params.HeightScale) + float64(b)*float64(params.HeightGrowth) - float64(params.HeightOffset)

			points = append(points, point{
				x:     float32(math.Cos(angle) * radius),
				y:     float32(height),
				z:     float32(math.Sin(angle) * radius),
				batch: b,
			})
		}
	}
	return points
}

func spiralBounds(points []point) (minR, maxR, minH, maxH float32) {
	if len(points) == 0 {
		return 0, 0, 0, 0
	}
	minR = float32(math.MaxFloat32)
	minH = float32(math.MaxFloat32)
	maxH = -float32(math.MaxFloat32)
	for _, p := range points {
		r := float32(math.Hypot(float64(p.x), float64(p.z)))
		if r < minR {
			minR = r
		}
		if r > maxR {
			maxR = r
		}
		if p.y < minH {
			minH = p.y
		}
		if p.y > maxH {
			maxH = p.y
		}
	}
	return minR, maxR, minH, maxH
}

// drawTopView projects points onto the XZ plane, origin centered.
func drawTopView(points []point) {
	_, maxR, _, _ := spiralBounds(points)
	if maxR <= 0 {
		return
	}
	zoom := float32(previewSize/2-10) / maxR
	cx := float32(10 + previewSize/2)
	cy := float32(10 + previewSize/2)

	for _, p := range points {
		px := int32(cx + p.x*zoom)
		py := int32(cy + p.z*zoom)
		rl.DrawRectangle(px, py, 2, 2, batchColors[(p.batch-1)%len(batchColors)])
	}
	rl.DrawCircle(int32(cx), int32(cy), 3, rl.DarkGray)
}

// drawSideView projects points onto the XY plane, height up.
func drawSideView(points []point) {
	_, maxR, minH, maxH := spiralBounds(points)
	if maxR <= 0 {
		return
	}
	span := maxH - minH
	if span <= 0 {
		span = 1
	}
	zoomX := float32(previewSize/2-10) / maxR
	zoomY := float32(previewSize-40) / span
	cx := float32(10 + previewSize/2)
	bottom := float32(10 + previewSize - 20)

	for _, p := range points {
		px := int32(cx + p.x*zoomX)
		py := int32(bottom - (p.y-minH)*zoomY)
		rl.DrawRectangle(px, py, 2, 2, batchColors[(p.batch-1)%len(batchColors)])
	}
}
