// Package alertqueue реализует очередь алертов одного тика:
// более высокий приоритет выходит первым, при равенстве - более раннее поступление.
package alertqueue

import (
	"sort"

	"github.com/shenikar/airspace_alert_system/internal/models"
)

// Queue - упорядоченная очередь алертов. Не потокобезопасна: принадлежит одному тику.
type Queue struct {
	items   []models.Alert
	nextSeq uint64
}

// New создаёт пустую очередь
func New() *Queue {
	return &Queue{}
}

// Admit добавляет алерт, сохраняя порядок (priority desc, seq asc)
func (q *Queue) Admit(ac models.Aircraft, priority int) models.Alert {
	alert := models.Alert{Aircraft: ac, Priority: priority, Seq: q.nextSeq}
	q.nextSeq++

	// Новый элемент встаёт после всех с приоритетом >= priority: seq у него всегда максимальный
	pos := sort.Search(len(q.items), func(i int) bool {
		return q.items[i].Priority < priority
	})
	q.items = append(q.items, models.Alert{})
	copy(q.items[pos+1:], q.items[pos:])
	q.items[pos] = alert
	return alert
}

// Peek возвращает голову очереди без удаления
func (q *Queue) Peek() (models.Alert, bool) {
	if len(q.items) == 0 {
		return models.Alert{}, false
	}
	return q.items[0], true
}

// RemoveHighest извлекает голову очереди; на пустой очереди возвращает false
func (q *Queue) RemoveHighest() (models.Alert, bool) {
	head, ok := q.Peek()
	if !ok {
		return models.Alert{}, false
	}
	q.items[0] = models.Alert{}
	q.items = q.items[1:]
	return head, true
}

// Contains сообщает, есть ли в очереди алерт для судна с данным ID
func (q *Queue) Contains(aircraftID string) bool {
	for _, a := range q.items {
		if a.Aircraft.ID == aircraftID {
			return true
		}
	}
	return false
}

func (q *Queue) Len() int { return len(q.items) }

func (q *Queue) IsEmpty() bool { return len(q.items) == 0 }

// Items возвращает копию содержимого в порядке извлечения
func (q *Queue) Items() []models.Alert {
	out := make([]models.Alert, len(q.items))
	copy(out, q.items)
	return out
}

// Clear очищает очередь
func (q *Queue) Clear() {
	q.items = nil
	q.nextSeq = 0
}
