package game

// Player is the single ship controlled by the user.
type Player struct {
	X, Y  float64
	W, H  float64
	Speed float64
	Color RGB
}

func (p *Player) Rect() RectF { return RectF{X: p.X, Y: p.Y, W: p.W, H: p.H} }

// Bullet travels upward until it leaves the top edge or hits an enemy.
type Bullet struct {
	X, Y  float64
	W, H  float64
	Speed float64
	Alive bool
}

func (b *Bullet) Rect() RectF {
	return RectF{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

func (b *Bullet) IsAlive() bool { return b.Alive }

func (b *Bullet) Kill() { b.Alive = false }

// Enemy descends at its own speed.
type Enemy struct {
	X, Y   float64
	W, H   float64
	Speed  float64
	Health int
	Alive  bool
}

func (e *Enemy) Rect() RectF {
	return RectF{X: e.X, Y: e.Y, W: e.W, H: e.H}
}

func (e *Enemy) IsAlive() bool { return e.Alive }

func (e *Enemy) Kill() { e.Alive = false }

// NewBullet places a bullet with its left edge at (x, y).
func NewBullet(x, y, speed float64) Bullet {
	return Bullet{X: x, Y: y, W: BulletWidth, H: BulletHeight, Speed: speed, Alive: true}
}

func NewEnemy(x, y, speed float64) Enemy {
	return Enemy{X: x, Y: y, W: EnemySize, H: EnemySize, Speed: speed, Health: 1, Alive: true}
}
