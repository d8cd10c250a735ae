// Package detector находит пары сближающихся судов методом "разделяй и властвуй"
// по срезу, один раз отсортированному по Y, и классифицирует опасность.
package detector

import (
	"cmp"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/shenikar/airspace_alert_system/internal/alertqueue"
	"github.com/shenikar/airspace_alert_system/internal/models"
)

// Пороговые расстояния по умолчанию (единицы плоскости); сравнение строго "меньше"
const (
	DefaultWarningThreshold   = 10.0
	DefaultDangerThreshold    = 5.0
	DefaultCollisionThreshold = 1.0
)

// Config - параметры детектора
type Config struct {
	WarningThreshold   float64
	DangerThreshold    float64
	CollisionThreshold float64

	// ParallelCutoff - минимальный размер диапазона, при котором половины считаются параллельно.
	// 0 отключает параллельный режим.
	ParallelCutoff int
}

// DefaultConfig возвращает пороги 10 / 5 / 1 без параллельного режима
func DefaultConfig() Config {
	return Config{
		WarningThreshold:   DefaultWarningThreshold,
		DangerThreshold:    DefaultDangerThreshold,
		CollisionThreshold: DefaultCollisionThreshold,
	}
}

type Detector struct {
	cfg Config
}

// New создаёт детектор; нулевые пороги заменяются значениями по умолчанию
func New(cfg Config) *Detector {
	if cfg.WarningThreshold <= 0 {
		cfg.WarningThreshold = DefaultWarningThreshold
	}
	if cfg.DangerThreshold <= 0 {
		cfg.DangerThreshold = DefaultDangerThreshold
	}
	if cfg.CollisionThreshold <= 0 {
		cfg.CollisionThreshold = DefaultCollisionThreshold
	}
	return &Detector{cfg: cfg}
}

// Config возвращает действующие параметры
func (d *Detector) Config() Config {
	return d.cfg
}

// Classify переводит расстояние пары в уровень опасности
func (d *Detector) Classify(distance float64) models.Severity {
	switch {
	case distance < d.cfg.CollisionThreshold:
		return models.SeverityCollision
	case distance < d.cfg.DangerThreshold:
		return models.SeverityDanger
	case distance < d.cfg.WarningThreshold:
		return models.SeverityWarning
	}
	return models.SeveritySafe
}

// Detect классифицирует все суда за тик.
// Возвращает уровень для каждого ID; суда с опасностью попадают в queue один раз
// с приоритетом первой пары, которая их отметила. Итоговый уровень - максимум по всем парам.
// Пары, где хотя бы одно судно уже столкнулось, не порождают новой опасности.
func (d *Detector) Detect(aircraft []models.Aircraft, queue *alertqueue.Queue) map[string]models.Severity {
	states := make(map[string]models.Severity, len(aircraft))
	for _, ac := range aircraft {
		if ac.IsFrozen() {
			states[ac.ID] = models.SeverityCollision
		} else {
			states[ac.ID] = models.SeveritySafe
		}
	}

	for _, p := range d.findPairs(aircraft) {
		a, b := aircraft[p.i], aircraft[p.j]
		if a.IsFrozen() || b.IsFrozen() {
			continue
		}

		severity := d.Classify(p.distance)
		if severity == models.SeveritySafe {
			continue
		}

		states[a.ID] = states[a.ID].Max(severity)
		states[b.ID] = states[b.ID].Max(severity)

		if queue == nil {
			continue
		}
		if !queue.Contains(a.ID) {
			queue.Admit(a.WithSeverity(severity), severity.Priority())
		}
		if !queue.Contains(b.ID) {
			queue.Admit(b.WithSeverity(severity), severity.Priority())
		}
	}

	return states
}

// FindPairs возвращает все пары ближе порога предупреждения с точными расстояниями
func (d *Detector) FindPairs(aircraft []models.Aircraft) []models.ProximityPair {
	raw := d.findPairs(aircraft)
	pairs := make([]models.ProximityPair, len(raw))
	for k, p := range raw {
		pairs[k] = models.ProximityPair{A: aircraft[p.i].ID, B: aircraft[p.j].ID, Distance: p.distance}
	}
	return pairs
}

// pair хранит исходные индексы, i < j
type pair struct {
	i, j     int
	distance float64
}

func (d *Detector) findPairs(aircraft []models.Aircraft) []pair {
	if len(aircraft) < 2 {
		return nil
	}

	byY := make([]int, len(aircraft))
	for i := range byY {
		byY[i] = i
	}
	slices.SortStableFunc(byY, func(a, b int) int {
		return cmp.Compare(aircraft[a].Y, aircraft[b].Y)
	})

	return d.divide(aircraft, byY, 0, len(aircraft)-1)
}

// divide обрабатывает диапазон исходных индексов [left, right].
// byY - индексы этого диапазона в порядке возрастания Y (подпоследовательность общего порядка).
func (d *Detector) divide(aircraft []models.Aircraft, byY []int, left, right int) []pair {
	if right-left < 1 {
		return nil
	}
	if right-left == 1 {
		dist := aircraft[left].DistanceTo(aircraft[right])
		if dist < d.cfg.WarningThreshold {
			return []pair{{i: left, j: right, distance: dist}}
		}
		return nil
	}

	mid := (left + right) / 2
	leftY, rightY := splitByY(byY, mid)

	var leftPairs, rightPairs []pair
	if d.cfg.ParallelCutoff > 0 && right-left+1 >= d.cfg.ParallelCutoff {
		// Половины читают непересекающиеся диапазоны; слияние только после Wait
		var g errgroup.Group
		g.Go(func() error {
			leftPairs = d.divide(aircraft, leftY, left, mid)
			return nil
		})
		g.Go(func() error {
			rightPairs = d.divide(aircraft, rightY, mid+1, right)
			return nil
		})
		_ = g.Wait()
	} else {
		leftPairs = d.divide(aircraft, leftY, left, mid)
		rightPairs = d.divide(aircraft, rightY, mid+1, right)
	}

	crossPairs := d.crossPairs(aircraft, byY, mid)

	out := make([]pair, 0, len(leftPairs)+len(rightPairs)+len(crossPairs))
	out = append(out, leftPairs...)
	out = append(out, rightPairs...)
	out = append(out, crossPairs...)
	return out
}

// crossPairs ищет пары, где одно судно из левой половины (индекс <= mid), другое из правой.
// Просмотр вперёд по Y прекращается, как только разница по Y превышает порог.
func (d *Detector) crossPairs(aircraft []models.Aircraft, byY []int, mid int) []pair {
	var pairs []pair
	for n, i := range byY {
		inLeft := i <= mid
		for _, j := range byY[n+1:] {
			if aircraft[j].Y-aircraft[i].Y > d.cfg.WarningThreshold {
				break
			}
			if (j <= mid) == inLeft {
				continue
			}
			dist := aircraft[i].DistanceTo(aircraft[j])
			if dist < d.cfg.WarningThreshold {
				if i < j {
					pairs = append(pairs, pair{i: i, j: j, distance: dist})
				} else {
					pairs = append(pairs, pair{i: j, j: i, distance: dist})
				}
			}
		}
	}
	return pairs
}

// splitByY делит упорядоченные по Y индексы на левую и правую половины, сохраняя порядок
func splitByY(byY []int, mid int) ([]int, []int) {
	leftY := make([]int, 0, len(byY)/2+1)
	rightY := make([]int, 0, len(byY)/2+1)
	for _, i := range byY {
		if i <= mid {
			leftY = append(leftY, i)
		} else {
			rightY = append(rightY, i)
		}
	}
	return leftY, rightY
}
