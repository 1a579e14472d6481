package ui

import (
	"math"

	"curve-defense/internal/config"
	"curve-defense/pkg/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HealthBar рисует здоровье базы. Под основной полосой видна "призрачная",
// которая отстаёт при получении урона.
type HealthBar struct {
	X, Y          float32
	Width, Height float32
	Value         float64 // 0..1
	Ghost         float64 // 0..1
	flash         float64 // сколько ещё секунд рамка подсвечена после удара по базе
}

func NewHealthBar(x, y, width, height float32) *HealthBar {
	return &HealthBar{X: x, Y: y, Width: width, Height: height, Value: 1, Ghost: 1}
}

// Flash подсвечивает рамку полосы на короткое время.
func (b *HealthBar) Flash() {
	b.flash = config.HUDFlashTime
}

func (b *HealthBar) Update(deltaTime float64) {
	b.flash = math.Max(0, b.flash-deltaTime)
}

func (b *HealthBar) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, b.X, b.Y, b.Width, b.Height, config.HealthBackColor, false)
	vector.DrawFilledRect(screen, b.X, b.Y, b.Width*clampFraction(b.Ghost), b.Height, config.GhostHealthColor, false)
	vector.DrawFilledRect(screen, b.X, b.Y, b.Width*clampFraction(b.Value), b.Height, config.HealthColor, false)
	frame := config.TextLightColor
	if b.flash > 0 {
		frame = config.FailColor
	}
	vector.StrokeRect(screen, b.X, b.Y, b.Width, b.Height, 2, frame, false)
}

func clampFraction(f float64) float32 {
	return float32(utils.Clamp(f, 0, 1))
}
