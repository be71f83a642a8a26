package entity

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Up is the local "up" axis. A body with Rotation 0 faces +Y.
var Up = mgl64.Vec2{0, 1}

// Body is the world transform shared by every entity kind.
// World space is Y-up; renderers flip Y when drawing.
type Body struct {
	Pos      mgl64.Vec2
	Rotation float64 // radians, counter-clockwise from Up
}

// Forward returns the local up axis rotated into world space
func (b *Body) Forward() mgl64.Vec2 {
	return mgl64.Rotate2D(b.Rotation).Mul2x1(Up)
}

// FaceToward rotates the body so Forward points at target.
// Returns false and leaves the rotation unchanged when target == Pos.
func (b *Body) FaceToward(target mgl64.Vec2) bool {
	dir := target.Sub(b.Pos)
	if dir.LenSqr() == 0 {
		return false
	}
	dir = dir.Normalize()
	// Rotate2D(r) * (0,1) = (-sin r, cos r)
	b.Rotation = math.Atan2(-dir.X(), dir.Y())
	return true
}

// DistanceSqr returns the squared distance between two bodies
func (b *Body) DistanceSqr(o *Body) float64 {
	return b.Pos.Sub(o.Pos).LenSqr()
}
