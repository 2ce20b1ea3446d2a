// Package components defines ECS components for the simulation.
package components

import "github.com/strobework/cubestorm/vecmath"

// Transform is an entity's spatial state.
type Transform struct {
	Position vecmath.Vec3
	Rotation vecmath.Quat
	Scale    vecmath.Vec3
}

// Spin holds an entity's animation parameters. Speed is assigned once at
// spawn and never mutated; only Transform.Rotation changes per frame.
type Spin struct {
	Speed float32
	Batch uint32 // spawn batch number; 0 is the reference entity
}

// Bob oscillates an entity vertically around a base height.
type Bob struct {
	Amplitude float32
	Frequency float32
	BaseY     float32
}
