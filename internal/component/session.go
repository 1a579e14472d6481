package component

// Session — состояние игровой сессии: здоровье базы, монеты, победа/поражение.
// Создаётся один раз на сессию и передаётся системам явно.
type Session struct {
	MaxHP          int
	HP             float64
	GhostHP        float64 // "призрачное" здоровье, догоняет HP с задержкой
	Coins          int
	DisplayedCoins float64 // значение на экране, плавно догоняет Coins

	GameOver bool // игра закончена (победой или поражением)
	Won      bool

	GhostEasingSpeed    float64
	CoinLerpSpeed       float64
	GoalReachedDistance float64
}

// NewSession создаёт сессию с полным здоровьем.
func NewSession(maxHP int) *Session {
	return &Session{
		MaxHP:   maxHP,
		HP:      float64(maxHP),
		GhostHP: float64(maxHP),
	}
}

// TakeDamage уменьшает здоровье, не опуская его ниже нуля.
func (s *Session) TakeDamage(amount int) {
	s.HP -= float64(amount)
	if s.HP < 0 {
		s.HP = 0
	}
}

// AddCoin сразу зачисляет монеты; плавно меняется только отображаемое значение.
func (s *Session) AddCoin(amount int) {
	s.Coins += amount
}

// HealthFraction возвращает долю здоровья для полосы в интерфейсе.
func (s *Session) HealthFraction() float64 {
	if s.MaxHP <= 0 {
		return 0
	}
	return s.HP / float64(s.MaxHP)
}

// GhostFraction возвращает долю "призрачного" здоровья.
func (s *Session) GhostFraction() float64 {
	if s.MaxHP <= 0 {
		return 0
	}
	return s.GhostHP / float64(s.MaxHP)
}
