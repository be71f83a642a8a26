package entity

import "github.com/go-gl/mathgl/mgl64"

// Tower shoots bullets along its facing on a fixed interval
type Tower struct {
	Body
	Fire      Timer
	Target    mgl64.Vec2 // last selected target, valid when HasTarget
	HasTarget bool
}

// NewTower creates a tower at pos firing every interval seconds
func NewTower(pos mgl64.Vec2, interval float64) Tower {
	return Tower{
		Body: Body{Pos: pos},
		Fire: NewTimer(interval),
	}
}

// Bullet travels along the facing it inherited from its tower
type Bullet struct {
	Body
	Speed     float64
	Travelled float64 // world units covered since spawn
}

// NewBullet creates a bullet with the given transform
func NewBullet(from Body, speed float64) Bullet {
	return Bullet{Body: from, Speed: speed}
}

// Update integrates the bullet position
func (b *Bullet) Update(dt float64) {
	step := b.Speed * dt
	b.Pos = b.Pos.Add(b.Forward().Mul(step))
	b.Travelled += step
}
