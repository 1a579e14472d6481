package system

import (
	"curve-defense/internal/component"
	"curve-defense/internal/entity"
	"curve-defense/internal/event"
	"curve-defense/internal/types"
	"curve-defense/pkg/geom"
)

// fakeHUD запоминает последнее значение каждого вызова.
type fakeHUD struct {
	health, ghost     float64
	coinText          string
	waveText          string
	anchorX, anchorY  float64
	winShown          bool
	failShown         bool
	healthUpdateCount int
}

func (h *fakeHUD) SetHealth(f float64)            { h.health = f; h.healthUpdateCount++ }
func (h *fakeHUD) SetGhostHealth(f float64)       { h.ghost = f }
func (h *fakeHUD) SetCoinText(s string)           { h.coinText = s }
func (h *fakeHUD) SetWaveText(s string)           { h.waveText = s }
func (h *fakeHUD) CoinAnchor() (float64, float64) { return h.anchorX, h.anchorY }
func (h *fakeHUD) ShowWinPanel(v bool)            { h.winShown = v }
func (h *fakeHUD) ShowFailPanel(v bool)           { h.failShown = v }

// fakeProjector считает экранные координаты мировыми, сдвинутыми на offset.
type fakeProjector struct {
	offset geom.Vec2
}

func (p *fakeProjector) ScreenToWorld(x, y float64) geom.Vec2 {
	return geom.V(x, y).Add(p.offset)
}

func (p *fakeProjector) WorldToScreen(v geom.Vec2) (float64, float64) {
	w := v.Sub(p.offset)
	return w.X, w.Y
}

type fakeClock struct {
	scale float64
	calls int
}

func (c *fakeClock) SetTimeScale(scale float64) {
	c.scale = scale
	c.calls++
}

// fixedRandom всегда возвращает одну и ту же долю отрезка: 0 — min, 1 — max.
type fixedRandom struct {
	frac float64
}

func (r fixedRandom) Range(min, max float64) float64 {
	return min + r.frac*(max-min)
}

// recorder собирает события указанных типов.
type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func listen(d *event.Dispatcher, kinds ...event.EventType) *recorder {
	r := &recorder{}
	for _, t := range kinds {
		d.Subscribe(t, r)
	}
	return r
}

func newTestECS() *entity.ECS {
	session := component.NewSession(20)
	session.GhostEasingSpeed = 2
	session.CoinLerpSpeed = 5
	session.GoalReachedDistance = 1
	return entity.NewECS(session)
}

// addCreature ставит неподвижного врага (кривая не задана, Movement не вызывается).
func addCreature(ecs *entity.ECS, at geom.Vec2) types.EntityID {
	id := ecs.NewEntity()
	p := at
	ecs.Positions[id] = &p
	ecs.Creatures[id] = &component.Creature{Duration: 5, GoalDamage: 1}
	return id
}
