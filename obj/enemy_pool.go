package obj

import (
	"image/color"
	"slices"

	"github.com/milk9111/runner/prefabs"
	"github.com/milk9111/runner/render"
)

// EnemyPool owns the live enemies, in spawn order, and the spawn timer.
type EnemyPool struct {
	enemies []*Enemy

	timer float64
	extra float64

	enemySpec  prefabs.EnemySpec
	interval   float64
	rule       SpawnRule
	gameWidth  float64
	gameHeight float64

	Debug       bool
	HitboxColor color.Color
}

func NewEnemyPool(enemy prefabs.EnemySpec, spawn prefabs.SpawnSpec, rule SpawnRule, gameWidth, gameHeight float64) *EnemyPool {
	p := &EnemyPool{
		enemies:     make([]*Enemy, 0, 8),
		HitboxColor: color.White,
	}
	p.Configure(enemy, spawn, rule, gameWidth, gameHeight)
	return p
}

// Configure swaps tuning and spawn rule. Enemies already alive keep the
// values they spawned with.
func (p *EnemyPool) Configure(enemy prefabs.EnemySpec, spawn prefabs.SpawnSpec, rule SpawnRule, gameWidth, gameHeight float64) {
	p.enemySpec = enemy
	p.interval = spawn.Interval
	p.rule = rule
	p.gameWidth = gameWidth
	p.gameHeight = gameHeight
	p.extra = rule.Initial()
}

// Tick spawns when the timer has passed the interval plus the current
// random extra, then draws and updates every enemy in order and sweeps the
// ones flagged for removal.
func (p *EnemyPool) Tick(dt float64, c render.Canvas, s *Session) {
	if p.timer > p.interval+p.extra {
		p.spawn()
		p.extra = p.rule.Next(s.Score)
		p.timer = 0
	} else {
		p.timer += dt
	}

	for _, e := range p.enemies {
		e.Draw(c)
		e.Update(dt, s)
	}

	p.enemies = slices.DeleteFunc(p.enemies, func(e *Enemy) bool {
		return e.MarkedForDeletion
	})
}

func (p *EnemyPool) spawn() {
	e := NewEnemy(p.enemySpec, p.gameWidth, p.gameHeight)
	e.Debug = p.Debug
	e.HitboxColor = p.HitboxColor
	p.enemies = append(p.enemies, e)
}

// Enemies returns the live enemies in spawn order.
func (p *EnemyPool) Enemies() []*Enemy {
	return p.enemies
}

// Clear drops every enemy. The spawn timer keeps running.
func (p *EnemyPool) Clear() {
	clear(p.enemies)
	p.enemies = p.enemies[:0]
}

// Len reports the number of live enemies.
func (p *EnemyPool) Len() int {
	return len(p.enemies)
}

// Timer returns the time accumulated toward the next spawn.
func (p *EnemyPool) Timer() float64 {
	return p.timer
}

// NextGap is the total time the timer has to pass before the next spawn.
func (p *EnemyPool) NextGap() float64 {
	return p.interval + p.extra
}
