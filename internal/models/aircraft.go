package models

import "math"

// Severity - уровень опасности сближения для воздушного судна
type Severity string

const (
	SeveritySafe      Severity = "safe"
	SeverityWarning   Severity = "warning"
	SeverityDanger    Severity = "danger"
	SeverityCollision Severity = "collision"
)

// Rank возвращает порядковый номер уровня: safe < warning < danger < collision
func (s Severity) Rank() int {
	switch s {
	case SeverityWarning:
		return 1
	case SeverityDanger:
		return 2
	case SeverityCollision:
		return 3
	}
	return 0
}

// Priority возвращает приоритет алерта (1 = warning, 2 = danger, 3 = collision, 0 = алерта нет)
func (s Severity) Priority() int {
	return s.Rank()
}

// Max возвращает более опасный из двух уровней
func (s Severity) Max(other Severity) Severity {
	if other.Rank() > s.Rank() {
		return other
	}
	return s
}

// IsTerminal сообщает, что судно столкнулось и заморожено
func (s Severity) IsTerminal() bool {
	return s == SeverityCollision
}

// Aircraft - состояние одного воздушного судна на плоскости [0,100]x[0,100].
// Значение не изменяется на месте: каждое обновление возвращает новую копию.
type Aircraft struct {
	ID          string   `json:"id"`
	X           float64  `json:"x"`
	Y           float64  `json:"y"`
	DX          float64  `json:"dx"`
	DY          float64  `json:"dy"`
	Callsign    string   `json:"callsign"`
	Passengers  int      `json:"passengers"`
	PilotName   string   `json:"pilot_name"`
	Origin      string   `json:"origin"`
	Destination string   `json:"destination"`
	Severity    Severity `json:"collision_state"`
}

// DistanceTo возвращает евклидово расстояние до другого судна
func (a Aircraft) DistanceTo(other Aircraft) float64 {
	dx := a.X - other.X
	dy := a.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// WithSeverity возвращает копию судна с новым уровнем опасности
func (a Aircraft) WithSeverity(s Severity) Aircraft {
	a.Severity = s
	return a
}

// IsFrozen сообщает, что к судну больше не применяется ни движение, ни смена уровня
func (a Aircraft) IsFrozen() bool {
	return a.Severity.IsTerminal()
}
