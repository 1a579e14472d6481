package component

import "curve-defense/pkg/geom"

// Creature — враг, который движется по кривой Безье от старта к цели.
type Creature struct {
	Curve      geom.Curve
	Duration   float64 // время прохождения всей кривой, в секундах
	Elapsed    float64 // сколько времени уже в пути
	GoalDamage int     // урон базе при достижении конца пути
}

// Progress возвращает параметр кривой t в [0, 1].
// Нулевая или отрицательная длительность считается мгновенным прохождением.
func (c *Creature) Progress() float64 {
	if c.Duration <= 0 {
		return 1
	}
	return geom.Clamp01(c.Elapsed / c.Duration)
}
