package tui

import (
	"math"

	"curve-defense/internal/config"
	"curve-defense/internal/defs"
	"curve-defense/internal/entity"
	"curve-defense/internal/system"
	"curve-defense/internal/utils"
	"curve-defense/pkg/geom"

	"github.com/gdamore/tcell/v2"
)

const (
	hudRows    = 2 // строка состояния + пустая
	viewMargin = 1.5
	barWidth   = 20
)

var (
	styleText       = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	stylePath       = tcell.StyleDefault.Foreground(tcell.ColorSteelBlue)
	styleRange      = tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
	styleGoal       = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleCreature   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleProjectile = tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	styleCoin       = tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
	stylePlayer     = tcell.StyleDefault.Foreground(tcell.ColorDodgerBlue).Bold(true)
	styleBanner     = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	styleCoinFlash  = styleCoin.Reverse(true)
	styleHit        = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

var turretGlyphs = map[defs.Archetype]rune{
	defs.ArchetypeMachineGun: 'M',
	defs.ArchetypeSniper:     'S',
	defs.ArchetypeShotgun:    'H',
}

// LevelBounds возвращает прямоугольник, в который помещаются путь, башни,
// игрок и цель.
func LevelBounds(level defs.LevelDefinition) (min, max geom.Vec2) {
	points := []geom.Vec2{level.Goal.Vec(), level.Player.Start.Vec()}
	for _, p := range level.Spawner.ControlPoints {
		points = append(points, p.Vec())
	}
	for _, t := range level.Turrets {
		points = append(points, t.Position.Vec())
	}
	min = geom.V(math.Inf(1), math.Inf(1))
	max = geom.V(math.Inf(-1), math.Inf(-1))
	for _, p := range points {
		min.X, min.Y = math.Min(min.X, p.X), math.Min(min.Y, p.Y)
		max.X, max.Y = math.Max(max.X, p.X), math.Max(max.Y, p.Y)
	}
	return min.Sub(geom.V(viewMargin, viewMargin)), max.Add(geom.V(viewMargin, viewMargin))
}

// FitCamera подбирает камеру под терминал width x height. Клетка примерно
// вдвое выше своей ширины, поэтому по вертикали масштаб вдвое меньше.
func FitCamera(level defs.LevelDefinition, width, height int) *utils.Camera {
	min, max := LevelBounds(level)
	size := max.Sub(min)
	rows := float64(height - hudRows)
	scale := float64(width) / size.X
	if s := 2 * rows / size.Y; s < scale {
		scale = s
	}
	center := geom.Lerp(min, max, 0.5)
	return &utils.Camera{
		// Центр сдвинут так, чтобы строки HUD не перекрывали поле
		Center:  center.Add(geom.V(0, float64(hudRows)/2/(scale/2))),
		ScaleX:  scale,
		ScaleY:  scale / 2,
		ScreenW: float64(width),
		ScreenH: float64(height),
	}
}

// View рисует состояние ECS в клетках терминала.
type View struct {
	camera *utils.Camera
	path   []geom.Vec2
	goal   geom.Vec2
}

func NewView(camera *utils.Camera, curve geom.Curve, goal geom.Vec2) *View {
	return &View{
		camera: camera,
		path:   curve.Sample(config.PathSamples * 2),
		goal:   goal,
	}
}

func (v *View) plot(screen tcell.Screen, p geom.Vec2, ch rune, style tcell.Style) {
	x, y := v.camera.WorldToScreen(p)
	cx, cy := int(math.Floor(x)), int(math.Floor(y))
	w, h := screen.Size()
	if cx < 0 || cy < hudRows || cx >= w || cy >= h {
		return
	}
	screen.SetContent(cx, cy, ch, nil, style)
}

func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (v *View) Draw(screen tcell.Screen, ecs *entity.ECS, hud *TextHUD) {
	screen.Clear()

	for _, p := range v.path {
		v.plot(screen, p, '.', stylePath)
	}
	for _, id := range ecs.TurretIDs() {
		turret := ecs.Turrets[id]
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		outline := system.TurretRangeOutline(turret, *pos)
		for i := 1; i < len(outline); i++ {
			a, b := outline[i-1], outline[i]
			for _, t := range []float64{0, 0.25, 0.5, 0.75} {
				v.plot(screen, geom.Lerp(a, b, t), '`', styleRange)
			}
		}
	}
	v.plot(screen, v.goal, 'G', styleGoal)

	for _, id := range ecs.TurretIDs() {
		if pos, ok := ecs.Positions[id]; ok {
			glyph, known := turretGlyphs[ecs.Turrets[id].Archetype]
			if !known {
				glyph = 'T'
			}
			v.plot(screen, *pos, glyph, styleText.Bold(true))
		}
	}
	for _, id := range ecs.CreatureIDs() {
		v.plot(screen, *ecs.Positions[id], 'e', styleCreature)
	}
	for _, id := range ecs.ProjectileIDs() {
		v.plot(screen, *ecs.Positions[id], '*', styleProjectile)
	}
	for _, id := range ecs.CoinIDs() {
		v.plot(screen, *ecs.Positions[id], '$', styleCoin)
	}
	for id := range ecs.Players {
		if pos, ok := ecs.Positions[id]; ok {
			v.plot(screen, *pos, '@', stylePlayer)
		}
	}

	v.drawHUD(screen, hud)
	screen.Show()
}

func (v *View) drawHUD(screen tcell.Screen, hud *TextHUD) {
	w, h := screen.Size()
	status := styleText
	if hud.HitFlash > 0 {
		status = styleHit
	}
	drawText(screen, 0, 0, hud.StatusLine(barWidth), status)

	coinX := w - len(hud.CoinText) - 1
	if coinX < 0 {
		coinX = 0
	}
	coinStyle := styleCoin
	if hud.CoinFlash > 0 {
		coinStyle = styleCoinFlash
	}
	drawText(screen, coinX, 0, hud.CoinText, coinStyle)
	hud.AnchorX, hud.AnchorY = float64(coinX)+float64(len(hud.CoinText))/2, 0.5

	if banner, ok := hud.Banner(); ok {
		x := (w - len(banner)) / 2
		if x < 0 {
			x = 0
		}
		drawText(screen, x, h/2, banner, styleBanner)
	}
}
