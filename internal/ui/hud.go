// internal/ui/hud.go
package ui

import (
	"curve-defense/internal/config"
	"curve-defense/internal/event"
	"curve-defense/internal/interfaces"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// HUD — экранный интерфейс: полоса здоровья, счётчик монет, номер волны
// и панели победы/поражения. Игровая логика только выставляет значения,
// рисование происходит в Draw.
type HUD struct {
	fontFace    font.Face
	healthBar   *HealthBar
	coinCounter *CoinCounter
	wave        *WaveIndicator
	winPanel    *ResultPanel
	failPanel   *ResultPanel
}

// NewHUD создаёт интерфейс со стандартным моноширинным шрифтом.
func NewHUD() *HUD {
	face := basicfont.Face7x13
	return &HUD{
		fontFace:    face,
		healthBar:   NewHealthBar(config.HealthBarX, config.HealthBarY, config.HealthBarWidth, config.HealthBarHeight),
		coinCounter: NewCoinCounter(float64(config.ScreenWidth-config.CoinAnchorOffsetX), config.CoinAnchorOffsetY, face),
		wave:        NewWaveIndicator(float64(config.ScreenWidth)/2, config.HealthBarY+config.TextLineHeight, face),
		winPanel:    NewResultPanel("YOU WIN", config.WinColor, face),
		failPanel:   NewResultPanel("BASE DESTROYED", config.FailColor, face),
	}
}

func (h *HUD) SetHealth(fraction float64)      { h.healthBar.Value = fraction }
func (h *HUD) SetGhostHealth(fraction float64) { h.healthBar.Ghost = fraction }
func (h *HUD) SetWaveText(text string)         { h.wave.Text = text }
func (h *HUD) ShowWinPanel(visible bool)       { h.winPanel.Visible = visible }
func (h *HUD) ShowFailPanel(visible bool)      { h.failPanel.Visible = visible }

func (h *HUD) SetCoinText(text string) {
	h.coinCounter.SetText(text)
}

// OnEvent реализует интерфейс event.Listener: счётчик подпрыгивает, когда
// в него попадает монета, полоса здоровья мигает при ударе по базе.
func (h *HUD) OnEvent(e event.Event) {
	switch e.Type {
	case event.CoinCollected:
		h.coinCounter.Bump()
	case event.CreatureReachedGoal:
		h.healthBar.Flash()
	}
}

// CoinAnchor возвращает текущую экранную позицию счётчика монет.
func (h *HUD) CoinAnchor() (float64, float64) {
	return h.coinCounter.Anchor()
}

// Update анимирует элементы интерфейса.
func (h *HUD) Update(deltaTime float64) {
	h.coinCounter.Update(deltaTime)
	h.healthBar.Update(deltaTime)
}

// AnyPanelVisible сообщает, показана ли панель конца игры.
func (h *HUD) AnyPanelVisible() bool {
	return h.winPanel.Visible || h.failPanel.Visible
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.healthBar.Draw(screen)
	h.coinCounter.Draw(screen)
	h.wave.Draw(screen)
	h.winPanel.Draw(screen)
	h.failPanel.Draw(screen)
}

var (
	_ interfaces.HUD = (*HUD)(nil)
	_ event.Listener = (*HUD)(nil)
)
