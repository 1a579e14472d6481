package tui

import (
	"fmt"
	"math"
	"strings"

	"curve-defense/internal/config"
	"curve-defense/internal/event"
	"curve-defense/internal/interfaces"
)

// TextHUD хранит то, что игра сообщает интерфейсу, и выводит это
// одной строкой в верхней части терминала.
type TextHUD struct {
	Health      float64
	GhostHealth float64
	CoinText    string
	WaveText    string
	WinVisible  bool
	FailVisible bool

	// Клетка, в которую прилетают монеты.
	AnchorX, AnchorY float64

	// Сколько ещё секунд подсвечены счётчик монет и полоса здоровья.
	CoinFlash, HitFlash float64
}

func NewTextHUD() *TextHUD {
	return &TextHUD{Health: 1, GhostHealth: 1, CoinText: "Coins: 0"}
}

func (h *TextHUD) SetHealth(fraction float64)      { h.Health = fraction }
func (h *TextHUD) SetGhostHealth(fraction float64) { h.GhostHealth = fraction }
func (h *TextHUD) SetCoinText(text string)         { h.CoinText = text }
func (h *TextHUD) SetWaveText(text string)         { h.WaveText = text }
func (h *TextHUD) ShowWinPanel(visible bool)       { h.WinVisible = visible }
func (h *TextHUD) ShowFailPanel(visible bool)      { h.FailVisible = visible }

func (h *TextHUD) CoinAnchor() (float64, float64) {
	return h.AnchorX, h.AnchorY
}

// OnEvent реализует интерфейс event.Listener.
func (h *TextHUD) OnEvent(e event.Event) {
	switch e.Type {
	case event.CoinCollected:
		h.CoinFlash = config.HUDFlashTime
	case event.CreatureReachedGoal:
		h.HitFlash = config.HUDFlashTime
	}
}

// Update гасит подсветку.
func (h *TextHUD) Update(deltaTime float64) {
	h.CoinFlash = math.Max(0, h.CoinFlash-deltaTime)
	h.HitFlash = math.Max(0, h.HitFlash-deltaTime)
}

// HealthBar рисует полосу здоровья из width клеток: '#' — текущее здоровье,
// '+' — отставание призрачной полосы, '-' — потерянное.
func HealthBar(health, ghost float64, width int) string {
	full := cells(health, width)
	shadow := cells(ghost, width)
	if shadow < full {
		shadow = full
	}
	return "[" + strings.Repeat("#", full) + strings.Repeat("+", shadow-full) + strings.Repeat("-", width-shadow) + "]"
}

func cells(fraction float64, width int) int {
	n := int(fraction*float64(width) + 0.5)
	if n < 0 {
		return 0
	}
	if n > width {
		return width
	}
	return n
}

// StatusLine собирает строку состояния без текста монет (он выводится отдельно справа).
func (h *TextHUD) StatusLine(barWidth int) string {
	return fmt.Sprintf("HP %s  %s", HealthBar(h.Health, h.GhostHealth, barWidth), h.WaveText)
}

// Banner возвращает текст панели конца игры, если она показана.
func (h *TextHUD) Banner() (string, bool) {
	switch {
	case h.FailVisible:
		return "BASE DESTROYED - press r to restart, q to quit", true
	case h.WinVisible:
		return "YOU WIN - press r to restart, q to quit", true
	}
	return "", false
}

var (
	_ interfaces.HUD = (*TextHUD)(nil)
	_ event.Listener = (*TextHUD)(nil)
)
