// Package renderer draws the 3D scene.
package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/strobework/cubestorm/camera"
	"github.com/strobework/cubestorm/components"
	"github.com/strobework/cubestorm/sim"
	"github.com/strobework/cubestorm/vecmath"
)

// batchPalette colors cubes by batch so the spawn rings stay readable
// as the structure grows. Batch 0 is the reference entity.
var batchPalette = []rl.Color{
	{R: 51, G: 153, B: 229, A: 255},
	{R: 230, G: 126, B: 34, A: 255},
	{R: 46, G: 204, B: 113, A: 255},
	{R: 231, G: 76, B: 60, A: 255},
	{R: 155, G: 89, B: 182, A: 255},
	{R: 241, G: 196, B: 15, A: 255},
	{R: 26, G: 188, B: 156, A: 255},
	{R: 236, G: 240, B: 241, A: 255},
}

// SceneRenderer draws the ground plane and every cube in the store.
// All cubes share one uploaded unit mesh; per-entity position, rotation,
// scale and tint are applied at draw time.
type SceneRenderer struct {
	model rl.Model
}

// NewSceneRenderer uploads the shared unit cube mesh.
func NewSceneRenderer() *SceneRenderer {
	return &SceneRenderer{
		model: rl.LoadModelFromMesh(rl.GenMeshCube(1, 1, 1)),
	}
}

// Unload releases GPU resources.
func (r *SceneRenderer) Unload() {
	rl.UnloadModel(r.model)
}

// Camera builds the raylib camera for the current orbit position.
func Camera(o *camera.Orbit) rl.Camera3D {
	x, y, z := o.Eye()
	return rl.NewCamera3D(
		rl.NewVector3(x, y, z),
		rl.NewVector3(0, 0, 0),
		rl.NewVector3(0, 1, 0),
		45.0,
		rl.CameraPerspective,
	)
}

// Draw renders one frame of the scene inside an open drawing context.
func (r *SceneRenderer) Draw(e *sim.Engine, cam rl.Camera3D) {
	rl.BeginMode3D(cam)

	rl.DrawPlane(rl.NewVector3(0, -1.5, 0), rl.NewVector2(12, 12), rl.Color{R: 58, G: 62, B: 66, A: 255})
	rl.DrawGrid(12, 1)

	e.VisitEntities(func(tr *components.Transform, spin *components.Spin) {
		axis, angle := tr.Rotation.AxisAngle()
		r.drawCube(tr, axis, angle, batchPalette[int(spin.Batch)%len(batchPalette)])
	})

	rl.EndMode3D()
}

func (r *SceneRenderer) drawCube(tr *components.Transform, axis vecmath.Vec3, angle float32, tint rl.Color) {
	rl.DrawModelEx(
		r.model,
		rl.NewVector3(tr.Position.X, tr.Position.Y, tr.Position.Z),
		rl.NewVector3(axis.X, axis.Y, axis.Z),
		angle*180/math.Pi,
		rl.NewVector3(tr.Scale.X, tr.Scale.Y, tr.Scale.Z),
		tint,
	)
}
