package ui

import (
	"image/color"

	"curve-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const restartHint = "Press R to restart"

// ResultPanel — панель конца игры поверх затемнённого экрана.
type ResultPanel struct {
	Title    string
	Color    color.Color
	Visible  bool
	fontFace font.Face
}

func NewResultPanel(title string, clr color.Color, face font.Face) *ResultPanel {
	return &ResultPanel{Title: title, Color: clr, fontFace: face}
}

func (p *ResultPanel) Draw(screen *ebiten.Image) {
	if !p.Visible {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PanelColor, false)

	cx, cy := config.ScreenWidth/2, config.ScreenHeight/2
	titleWidth := font.MeasureString(p.fontFace, p.Title).Ceil()
	text.Draw(screen, p.Title, p.fontFace, cx-titleWidth/2, cy-config.TextLineHeight, p.Color)
	hintWidth := font.MeasureString(p.fontFace, restartHint).Ceil()
	text.Draw(screen, restartHint, p.fontFace, cx-hintWidth/2, cy+config.TextLineHeight, config.TextLightColor)
}
