// internal/utils/math.go
package utils

import "math"

// DegToRad переводит градусы в радианы.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg переводит радианы в градусы.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, 2*math.Pi)
	if angle > math.Pi {
		angle -= 2 * math.Pi
	} else if angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// AngleDiff возвращает кратчайшую разницу to - from в диапазоне [-π, π].
func AngleDiff(from, to float64) float64 {
	return NormalizeAngle(to - from)
}

// RotateTowards поворачивает угол from к углу to кратчайшим путём,
// но не больше чем на maxStep радиан за вызов.
func RotateTowards(from, to, maxStep float64) float64 {
	if maxStep <= 0 {
		return from
	}
	diff := AngleDiff(from, to)
	if math.Abs(diff) <= maxStep {
		return NormalizeAngle(to)
	}
	if diff > 0 {
		return NormalizeAngle(from + maxStep)
	}
	return NormalizeAngle(from - maxStep)
}
