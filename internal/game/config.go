package game

import (
	"errors"
	"fmt"
	"time"
)

// Canvas dimensions (in canvas pixels).
const (
	CanvasWidth  = 800
	CanvasHeight = 600
)

// Entity sizes.
const (
	PlayerSize      = 40
	BulletWidth     = 4
	BulletHeight    = 10
	EnemySize       = 30
	PowerUpSize     = 20
	ParticleSize    = 3
	PlayerStartLift = 60 // distance from the bottom edge to the player's top
)

// Particles.
const (
	MaxParticles = 4096
)

// ErrInvalidRules is wrapped by every Rules.Validate failure.
var ErrInvalidRules = errors.New("invalid rules")

// Rules holds the fixed gameplay constants. They are not user-configurable;
// DefaultRules is the only source used by the binaries. Tests build variants
// to force edge cases.
type Rules struct {
	BoundsWidth  float64
	BoundsHeight float64

	PlayerSpeed float64
	BulletSpeed float64

	ShootCooldown     time.Duration
	RapidFireCooldown time.Duration
	RapidFireDuration time.Duration

	EnemySpawnChance   float64 // per tick
	PowerUpSpawnChance float64 // per tick
	EnemyMinSpeed      float64
	EnemyMaxSpeed      float64 // exclusive
	PowerUpSpeed       float64

	ParticleLife   int // ticks
	ParticleBurst  int
	ParticleSpread float64 // max |vx|, |vy| in px/tick

	EnemyDamage    int
	KillScore      int
	PowerUpScore   int
	HealAmount     int
	MaxHealth      int
	LowHealthLimit int
}

// DefaultRules returns the arcade constants.
func DefaultRules() Rules {
	return Rules{
		BoundsWidth:  CanvasWidth,
		BoundsHeight: CanvasHeight,

		PlayerSpeed: 5,
		BulletSpeed: 8,

		ShootCooldown:     200 * time.Millisecond,
		RapidFireCooldown: 100 * time.Millisecond,
		RapidFireDuration: 5 * time.Second,

		EnemySpawnChance:   0.02,
		PowerUpSpawnChance: 0.005,
		EnemyMinSpeed:      2,
		EnemyMaxSpeed:      5,
		PowerUpSpeed:       2,

		ParticleLife:   30,
		ParticleBurst:  8,
		ParticleSpread: 3,

		EnemyDamage:    20,
		KillScore:      10,
		PowerUpScore:   25,
		HealAmount:     30,
		MaxHealth:      100,
		LowHealthLimit: 30,
	}
}

// Validate reports the first malformed constant.
func (r Rules) Validate() error {
	switch {
	case r.BoundsWidth < PlayerSize || r.BoundsHeight < PlayerSize:
		return fmt.Errorf("%w: bounds %.0fx%.0f smaller than the player", ErrInvalidRules, r.BoundsWidth, r.BoundsHeight)
	case r.BoundsWidth < EnemySize:
		return fmt.Errorf("%w: bounds width %.0f smaller than an enemy", ErrInvalidRules, r.BoundsWidth)
	case r.PlayerSpeed <= 0 || r.BulletSpeed <= 0 || r.PowerUpSpeed <= 0:
		return fmt.Errorf("%w: speeds must be positive", ErrInvalidRules)
	case r.EnemySpawnChance < 0 || r.EnemySpawnChance > 1:
		return fmt.Errorf("%w: enemy spawn chance %v outside [0,1]", ErrInvalidRules, r.EnemySpawnChance)
	case r.PowerUpSpawnChance < 0 || r.PowerUpSpawnChance > 1:
		return fmt.Errorf("%w: power-up spawn chance %v outside [0,1]", ErrInvalidRules, r.PowerUpSpawnChance)
	case r.EnemyMinSpeed <= 0 || r.EnemyMaxSpeed < r.EnemyMinSpeed:
		return fmt.Errorf("%w: enemy speed range [%v,%v)", ErrInvalidRules, r.EnemyMinSpeed, r.EnemyMaxSpeed)
	case r.ShootCooldown < 0 || r.RapidFireCooldown < 0 || r.RapidFireDuration < 0:
		return fmt.Errorf("%w: negative cooldown", ErrInvalidRules)
	case r.ParticleLife <= 0 || r.ParticleBurst < 0:
		return fmt.Errorf("%w: particle life %d burst %d", ErrInvalidRules, r.ParticleLife, r.ParticleBurst)
	case r.MaxHealth <= 0:
		return fmt.Errorf("%w: max health %d", ErrInvalidRules, r.MaxHealth)
	case r.EnemyDamage < 0 || r.HealAmount < 0 || r.KillScore < 0 || r.PowerUpScore < 0:
		return fmt.Errorf("%w: negative damage, heal or score", ErrInvalidRules)
	}
	return nil
}

// MustRules panics if r is malformed. Used at startup.
func MustRules(r Rules) Rules {
	if err := r.Validate(); err != nil {
		panic(err)
	}
	return r
}

// PlayerStart returns the player's spawn position for the given rules.
func (r Rules) PlayerStart() (float64, float64) {
	return r.BoundsWidth / 2, r.BoundsHeight - PlayerStartLift
}

// Bounds returns the playfield rectangle.
func (r Rules) Bounds() RectF {
	return RectF{W: r.BoundsWidth, H: r.BoundsHeight}
}
