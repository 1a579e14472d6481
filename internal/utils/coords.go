// internal/utils/coords.go
package utils

import "curve-defense/pkg/geom"

// Camera переводит мировые координаты (ось Y вверх) в экранные (ось Y вниз) и обратно.
// Центр камеры совпадает с центром экрана. Масштаб по осям задаётся отдельно,
// чтобы терминальные клетки (примерно 1:2) тоже можно было описать камерой.
type Camera struct {
	Center         geom.Vec2
	ScaleX, ScaleY float64 // пикселей (или клеток) на мировую единицу
	ScreenW        float64
	ScreenH        float64
}

// NewCamera создаёт камеру с одинаковым масштабом по обеим осям.
func NewCamera(center geom.Vec2, pixelsPerUnit, screenW, screenH float64) *Camera {
	return &Camera{
		Center:  center,
		ScaleX:  pixelsPerUnit,
		ScaleY:  pixelsPerUnit,
		ScreenW: screenW,
		ScreenH: screenH,
	}
}

// WorldToScreen преобразует мировую точку в экранные координаты.
func (c *Camera) WorldToScreen(p geom.Vec2) (float64, float64) {
	x := c.ScreenW/2 + (p.X-c.Center.X)*c.ScaleX
	y := c.ScreenH/2 - (p.Y-c.Center.Y)*c.ScaleY
	return x, y
}

// ScreenToWorld выполняет операцию, обратную WorldToScreen.
func (c *Camera) ScreenToWorld(x, y float64) geom.Vec2 {
	if c.ScaleX == 0 || c.ScaleY == 0 {
		return c.Center
	}
	return geom.Vec2{
		X: c.Center.X + (x-c.ScreenW/2)/c.ScaleX,
		Y: c.Center.Y - (y-c.ScreenH/2)/c.ScaleY,
	}
}
