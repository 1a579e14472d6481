package ui

import (
	"math"

	"curve-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// CoinCounter — надпись с количеством монет. Служит целью для летящих монет.
type CoinCounter struct {
	X, Y     float64
	Text     string
	fontFace font.Face
	bounce   float64 // остаток анимации "подпрыгивания", секунды
}

func NewCoinCounter(x, y float64, face font.Face) *CoinCounter {
	return &CoinCounter{X: x, Y: y, Text: "Coins: 0", fontFace: face}
}

func (c *CoinCounter) SetText(s string) {
	c.Text = s
}

// Bump запускает короткое подпрыгивание надписи.
func (c *CoinCounter) Bump() {
	c.bounce = config.HUDFlashTime
}

func (c *CoinCounter) Update(deltaTime float64) {
	if c.bounce > 0 {
		c.bounce = math.Max(0, c.bounce-deltaTime)
	}
}

// Anchor возвращает точку, к которой летят монеты (она движется вместе с надписью).
func (c *CoinCounter) Anchor() (float64, float64) {
	return c.X, c.Y - c.offset()
}

func (c *CoinCounter) offset() float64 {
	return 6 * math.Sin(c.bounce/config.HUDFlashTime*math.Pi)
}

func (c *CoinCounter) Draw(screen *ebiten.Image) {
	x, y := c.Anchor()
	width := font.MeasureString(c.fontFace, c.Text).Ceil()
	text.Draw(screen, c.Text, c.fontFace, int(x)-width/2, int(y)+config.TextLineHeight/2, config.CoinColor)
}
