package component

import "curve-defense/pkg/geom"

// Coin — монета, летящая от места гибели врага к счётчику монет в интерфейсе.
type Coin struct {
	Start    geom.Vec2
	Progress float64 // 0 = старт, 1 = у счётчика
	Speed    float64 // прирост Progress в секунду
	Value    int
}
