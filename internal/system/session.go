package system

import (
	"log"
	"math"

	"curve-defense/internal/config"
	"curve-defense/internal/entity"
	"curve-defense/internal/event"
	"curve-defense/internal/interfaces"
	"curve-defense/pkg/geom"
	"curve-defense/pkg/utils"

	"github.com/dustin/go-humanize"
)

// SessionSystem сглаживает индикаторы здоровья и монет и проверяет конец игры.
type SessionSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	hud             interfaces.HUD
	clock           interfaces.TimeController
	goal            geom.Vec2
}

func NewSessionSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, hud interfaces.HUD, clock interfaces.TimeController, goal geom.Vec2) *SessionSystem {
	return &SessionSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		hud:             hud,
		clock:           clock,
		goal:            goal,
	}
}

// Start прячет панели победы и поражения и выводит начальные значения.
func (s *SessionSystem) Start() {
	if s.hud != nil {
		s.hud.ShowFailPanel(false)
		s.hud.ShowWinPanel(false)
	}
	s.updateHUD()
}

func (s *SessionSystem) Update(deltaTime float64) {
	session := s.ecs.Session
	if session == nil || session.GameOver {
		return
	}

	// "Призрачное" здоровье догоняет настоящее экспоненциально и никогда его не обгоняет.
	if session.GhostHP > session.HP {
		session.GhostHP = utils.Lerp(session.GhostHP, session.HP, session.GhostEasingSpeed*deltaTime)
	}

	coins := float64(session.Coins)
	if session.DisplayedCoins < coins {
		step := session.CoinLerpSpeed * deltaTime * config.CoinDisplayRateFactor
		session.DisplayedCoins = utils.MoveTowards(session.DisplayedCoins, coins, step)
	}

	s.updateHUD()

	if session.HP <= 0 {
		s.lose()
		return
	}
	s.checkWinCondition()
}

func (s *SessionSystem) updateHUD() {
	session := s.ecs.Session
	if s.hud == nil || session == nil {
		return
	}
	s.hud.SetHealth(session.HealthFraction())
	s.hud.SetGhostHealth(session.GhostFraction())
	s.hud.SetCoinText(CoinText(session.DisplayedCoins))
}

// CoinText форматирует счётчик монет, отбрасывая дробную часть.
func CoinText(displayed float64) string {
	return "Coins: " + humanize.Comma(int64(math.Floor(displayed)))
}

func (s *SessionSystem) checkWinCondition() {
	playerID := s.ecs.PlayerID()
	if playerID == 0 {
		return
	}
	pos, ok := s.ecs.Positions[playerID]
	if !ok {
		return
	}
	if pos.Dist(s.goal) < s.ecs.Session.GoalReachedDistance {
		s.win()
	}
}

func (s *SessionSystem) win() {
	session := s.ecs.Session
	session.Won = true
	session.GameOver = true
	if s.hud != nil {
		s.hud.ShowWinPanel(true)
	}
	log.Println("Goal reached, session won")
	s.eventDispatcher.Dispatch(event.Event{Type: event.GameWon})
}

func (s *SessionSystem) lose() {
	s.ecs.Session.GameOver = true
	if s.hud != nil {
		s.hud.ShowFailPanel(true)
	}
	// Остальные сущности замирают вместе с часами.
	if s.clock != nil {
		s.clock.SetTimeScale(0)
	}
	log.Println("Base destroyed, session lost")
	s.eventDispatcher.Dispatch(event.Event{Type: event.GameLost})
}
