// Package camera provides the orbiting viewpoint for the 3D scene.
package camera

import "math"

// Orbit circles the world origin at a fixed radius while slowly bobbing
// in height. The eye always faces the origin.
type Orbit struct {
	// Radius is the distance from the origin in the XZ plane
	Radius float32

	// Speed is the angular velocity in radians per second
	Speed float32

	// Height is the base eye height
	Height float32

	// Bob is the vertical oscillation amplitude
	Bob float32

	angle float32
}

// New creates an orbit camera starting on the +X axis.
func New(radius, speed, height, bob float32) *Orbit {
	return &Orbit{
		Radius: radius,
		Speed:  speed,
		Height: height,
		Bob:    bob,
	}
}

// Advance rotates the orbit by one frame delta.
func (o *Orbit) Advance(dt float32) {
	o.angle += dt * o.Speed
}

// Angle returns the accumulated orbit angle in radians.
func (o *Orbit) Angle() float32 {
	return o.angle
}

// Eye returns the camera position for the current angle. Height
// oscillates at half the orbit frequency so the rise and fall stays
// decoupled from the circling.
func (o *Orbit) Eye() (x, y, z float32) {
	a := float64(o.angle)
	x = float32(math.Cos(a)) * o.Radius
	y = o.Height + float32(math.Sin(a*0.5))*o.Bob
	z = float32(math.Sin(a)) * o.Radius
	return x, y, z
}
