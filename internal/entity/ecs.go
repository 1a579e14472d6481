// internal/entity/ecs.go
package entity

import (
	"sort"

	"curve-defense/internal/component"
	"curve-defense/internal/types"
)

type ECS struct {
	GameTime    float64
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Creatures   map[types.EntityID]*component.Creature
	Turrets     map[types.EntityID]*component.Turret
	Projectiles map[types.EntityID]*component.Projectile
	Coins       map[types.EntityID]*component.Coin
	Players     map[types.EntityID]*component.Player
	Wave        *component.Wave
	Session     *component.Session
}

func NewECS(session *component.Session) *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Creatures:   make(map[types.EntityID]*component.Creature),
		Turrets:     make(map[types.EntityID]*component.Turret),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Coins:       make(map[types.EntityID]*component.Coin),
		Players:     make(map[types.EntityID]*component.Player),
		Session:     session,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет все компоненты сущности. Повторное удаление ничего не делает.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Creatures, id)
	delete(ecs.Turrets, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Coins, id)
	delete(ecs.Players, id)
}

// IsCreatureAlive проверяет, что враг с таким ID ещё существует.
func (ecs *ECS) IsCreatureAlive(id types.EntityID) bool {
	if id == 0 {
		return false
	}
	_, ok := ecs.Creatures[id]
	return ok
}

// CreatureIDs возвращает ID живых врагов в порядке создания.
// Обход карты в Go случаен, а поиск цели и попаданий должен быть детерминированным.
func (ecs *ECS) CreatureIDs() []types.EntityID {
	return sortedKeys(ecs.Creatures)
}

// TurretIDs возвращает ID башен в порядке создания.
func (ecs *ECS) TurretIDs() []types.EntityID {
	return sortedKeys(ecs.Turrets)
}

// ProjectileIDs возвращает ID снарядов в порядке создания.
func (ecs *ECS) ProjectileIDs() []types.EntityID {
	return sortedKeys(ecs.Projectiles)
}

// CoinIDs возвращает ID монет в порядке создания.
func (ecs *ECS) CoinIDs() []types.EntityID {
	return sortedKeys(ecs.Coins)
}

// PlayerID возвращает первого игрока или 0, если игрока нет.
func (ecs *ECS) PlayerID() types.EntityID {
	ids := sortedKeys(ecs.Players)
	if len(ids) == 0 {
		return 0
	}
	return ids[0]
}

func sortedKeys[T any](m map[types.EntityID]*T) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
