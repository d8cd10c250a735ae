// Package motion продвигает воздушные суда на один тик с отражением от границ плоскости.
package motion

import "github.com/shenikar/airspace_alert_system/internal/models"

// Границы плоскости по обеим осям
const (
	PlaneMin = 0.0
	PlaneMax = 100.0
)

// Advance возвращает состояние судна через один тик.
// Столкнувшееся судно возвращается без изменений. Каждая ось обрабатывается отдельно:
// если кандидат выходит за [PlaneMin, PlaneMax], скорость по оси меняет знак, а координата остаётся прежней.
func Advance(ac models.Aircraft) models.Aircraft {
	if ac.IsFrozen() {
		return ac
	}

	ac.X, ac.DX = step(ac.X, ac.DX)
	ac.Y, ac.DY = step(ac.Y, ac.DY)
	return ac
}

// AdvanceAll продвигает все суда и возвращает новый срез, не разделяющий память с исходным
func AdvanceAll(aircraft []models.Aircraft) []models.Aircraft {
	next := make([]models.Aircraft, len(aircraft))
	for i, ac := range aircraft {
		next[i] = Advance(ac)
	}
	return next
}

func step(pos, vel float64) (float64, float64) {
	candidate := pos + vel
	if candidate < PlaneMin || candidate > PlaneMax {
		return pos, -vel
	}
	return candidate, vel
}
