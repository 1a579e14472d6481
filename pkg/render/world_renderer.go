// pkg/render/world_renderer.go
package render

import (
	"image/color"

	"curve-defense/internal/component"
	"curve-defense/internal/config"
	"curve-defense/internal/entity"
	"curve-defense/internal/system"
	"curve-defense/internal/utils"
	"curve-defense/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// WorldRenderer рисует игровую плоскость: путь, башни, врагов, снаряды и монеты.
type WorldRenderer struct {
	ecs    *entity.ECS
	camera *utils.Camera
	path   []geom.Vec2
	curve  geom.Curve
	goal   geom.Vec2
}

func NewWorldRenderer(ecs *entity.ECS, camera *utils.Camera, curve geom.Curve, goal geom.Vec2) *WorldRenderer {
	return &WorldRenderer{
		ecs:    ecs,
		camera: camera,
		path:   curve.Sample(config.PathSamples),
		curve:  curve,
		goal:   goal,
	}
}

func (r *WorldRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	// Сначала путь и контрольные точки
	r.drawPolyline(screen, r.path, 3, config.PathColor)
	for _, p := range r.curve.Points {
		r.drawCircle(screen, p, 0.1, config.ControlColor)
	}
	goalRadius := config.DefaultGoalReachedDistance
	if session := r.ecs.Session; session != nil {
		goalRadius = session.GoalReachedDistance
	}
	gx, gy := r.camera.WorldToScreen(r.goal)
	vector.StrokeCircle(screen, float32(gx), float32(gy), float32(goalRadius*r.camera.ScaleX), 2, config.GoalColor, true)

	// Башни с индикатором дальности
	for _, id := range r.ecs.TurretIDs() {
		turret := r.ecs.Turrets[id]
		pos, ok := r.ecs.Positions[id]
		if !ok {
			continue
		}
		r.drawPolyline(screen, system.TurretRangeOutline(turret, *pos), 1, config.RangeColor)
		turretColor := config.TurretColors[string(turret.Archetype)]
		if session := r.ecs.Session; session != nil && session.GameOver {
			turretColor = DarkenColor(turretColor)
		}
		r.drawCircle(screen, *pos, config.TurretRadius, turretColor)
		barrel := pos.Add(turret.Forward().Scale(config.TurretRadius * 1.6))
		r.drawPolyline(screen, []geom.Vec2{*pos, barrel}, 4, config.TextLightColor)
	}

	for _, id := range r.ecs.CreatureIDs() {
		if pos, ok := r.ecs.Positions[id]; ok {
			r.drawCircle(screen, *pos, config.EnemyRadius, config.EnemyColor)
		}
	}
	for _, id := range r.ecs.ProjectileIDs() {
		if pos, ok := r.ecs.Positions[id]; ok {
			r.drawCircle(screen, *pos, config.ProjectileRadius, projectileColor(r.ecs.Projectiles[id]))
		}
	}
	for _, id := range r.ecs.CoinIDs() {
		if pos, ok := r.ecs.Positions[id]; ok {
			r.drawCircle(screen, *pos, config.CoinRadius, config.CoinColor)
		}
	}
	for id := range r.ecs.Players {
		if pos, ok := r.ecs.Positions[id]; ok {
			r.drawCircle(screen, *pos, config.PlayerRadius, config.PlayerColor)
		}
	}
}

func (r *WorldRenderer) drawCircle(screen *ebiten.Image, p geom.Vec2, radius float64, clr color.Color) {
	x, y := r.camera.WorldToScreen(p)
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(radius*r.camera.ScaleX), clr, true)
}

func (r *WorldRenderer) drawPolyline(screen *ebiten.Image, points []geom.Vec2, width float32, clr color.Color) {
	for i := 1; i < len(points); i++ {
		x0, y0 := r.camera.WorldToScreen(points[i-1])
		x1, y1 := r.camera.WorldToScreen(points[i])
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), width, clr, true)
	}
}

// projectileColor гасит снаряд к концу его жизни.
func projectileColor(p *component.Projectile) color.RGBA {
	if p.LifeSpan <= 0 {
		return config.ProjectileColor
	}
	left := 1 - p.Age/p.LifeSpan
	if left < 0.2 {
		left = 0.2
	}
	return WithAlpha(config.ProjectileColor, uint8(255*left))
}
