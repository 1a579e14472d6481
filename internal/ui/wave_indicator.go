package ui

import (
	"curve-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator отображает номер текущей волны.
type WaveIndicator struct {
	X, Y     float64
	Text     string
	fontFace font.Face
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y float64, face font.Face) *WaveIndicator {
	return &WaveIndicator{X: x, Y: y, fontFace: face}
}

// Draw отрисовывает индикатор на экране (по центру относительно X).
func (i *WaveIndicator) Draw(screen *ebiten.Image) {
	if i.Text == "" {
		return
	}
	width := font.MeasureString(i.fontFace, i.Text).Ceil()
	text.Draw(screen, i.Text, i.fontFace, int(i.X)-width/2, int(i.Y), config.TextLightColor)
}
