package simulation

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/shenikar/airspace_alert_system/internal/detector"
	"github.com/shenikar/airspace_alert_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSimulation(t *testing.T, fleet ...models.Aircraft) *Simulation {
	t.Helper()
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	sim := New(detector.New(detector.DefaultConfig()), WithClock(func() time.Time {
		clock = clock.Add(2 * time.Second)
		return clock
	}))
	sim.Reset(fleet)
	return sim
}

func still(id string, x, y float64) models.Aircraft {
	return models.Aircraft{ID: id, X: x, Y: y, Callsign: "AV-" + id}
}

func byID(fleet []models.Aircraft) map[string]models.Aircraft {
	out := make(map[string]models.Aircraft, len(fleet))
	for _, ac := range fleet {
		out[ac.ID] = ac
	}
	return out
}

func TestTick_CollisionCreatesOneRecordEach(t *testing.T) {
	// Подготовка
	sim := newTestSimulation(t, still("ac-0", 10, 10), still("ac-1", 10, 10.5))

	// Действие
	report := sim.Tick()

	// Проверки
	require.Len(t, report.NewRecords, 2)
	assert.Equal(t, uint64(1), report.Tick)
	for _, rec := range report.NewRecords {
		assert.Equal(t, models.SeverityCollision, rec.FinalSeverity)
		assert.Equal(t, uint64(1), rec.Tick)
		assert.Equal(t, sim.RunID(), rec.RunID)
	}
	fleet := byID(sim.Aircraft())
	assert.Equal(t, models.SeverityCollision, fleet["ac-0"].Severity)
	assert.Equal(t, models.SeverityCollision, fleet["ac-1"].Severity)
	require.Len(t, report.Alerts, 2)
	assert.Equal(t, 3, report.Alerts[0].Priority)
}

func TestTick_HistoryIsIdempotent(t *testing.T) {
	sim := newTestSimulation(t, still("ac-0", 10, 10), still("ac-1", 10, 10.5))

	sim.Tick()
	for i := 0; i < 10; i++ {
		report := sim.Tick()
		assert.Empty(t, report.NewRecords)
		assert.Empty(t, report.Alerts)
	}

	history := sim.History()
	require.Len(t, history, 2)
	seen := map[string]bool{}
	for _, rec := range history {
		assert.False(t, seen[rec.AircraftID])
		seen[rec.AircraftID] = true
	}
}

func TestTick_WarningScenario(t *testing.T) {
	sim := newTestSimulation(t, still("ac-0", 10, 10), still("ac-1", 10, 17))

	report := sim.Tick()

	assert.Empty(t, report.NewRecords)
	assert.Empty(t, sim.History())
	require.Len(t, report.Alerts, 2)
	for _, alert := range report.Alerts {
		assert.Equal(t, 1, alert.Priority)
		assert.Equal(t, models.SeverityWarning, alert.Aircraft.Severity)
	}
	assert.Equal(t, 2, report.Counts[models.SeverityWarning])
}

func TestTick_SeverityRecomputedEachTick(t *testing.T) {
	a := still("ac-0", 10, 10)
	b := still("ac-1", 10, 17)
	b.DY = 0.5 // уходит от ac-0
	sim := newTestSimulation(t, a, b)

	sim.Tick() // 7.5 -> warning
	assert.Equal(t, models.SeverityWarning, byID(sim.Aircraft())["ac-0"].Severity)

	for i := 0; i < 6; i++ {
		sim.Tick()
	}
	// 7 + 0.5*7 = 10.5 -> safe
	assert.Equal(t, models.SeveritySafe, byID(sim.Aircraft())["ac-0"].Severity)
	assert.Equal(t, models.SeveritySafe, byID(sim.Aircraft())["ac-1"].Severity)
}

func TestTick_FrozenAircraftStayFrozen(t *testing.T) {
	a := still("ac-0", 10, 10)
	a.DX = 0.1
	b := still("ac-1", 10, 10.5)
	b.DX = -0.1
	c := still("ac-2", 13, 10) // danger до столкнувшихся, но они заморожены
	sim := newTestSimulation(t, a, b, c)

	sim.Tick()
	frozen := byID(sim.Aircraft())
	require.Equal(t, models.SeverityCollision, frozen["ac-0"].Severity)
	require.Equal(t, models.SeverityCollision, frozen["ac-1"].Severity)

	for i := 0; i < 20; i++ {
		sim.Tick()
		now := byID(sim.Aircraft())
		assert.Equal(t, frozen["ac-0"], now["ac-0"])
		assert.Equal(t, frozen["ac-1"], now["ac-1"])
		assert.Equal(t, models.SeveritySafe, now["ac-2"].Severity)
	}
}

func TestTick_RandomFleetInvariants(t *testing.T) {
	rng := rand.New(rand.NewPCG(2026, 10))
	spawner := NewSpawner(DefaultSpawnConfig(), rng)
	sim := newTestSimulation(t, spawner.Spawn(20)...)

	frozenAt := map[string]models.Aircraft{}
	for tick := 0; tick < 500; tick++ {
		sim.Tick()
		for _, ac := range sim.Aircraft() {
			require.GreaterOrEqual(t, ac.X, 0.0)
			require.LessOrEqual(t, ac.X, 100.0)
			require.GreaterOrEqual(t, ac.Y, 0.0)
			require.LessOrEqual(t, ac.Y, 100.0)

			if prev, ok := frozenAt[ac.ID]; ok {
				require.Equal(t, prev, ac, "frozen aircraft changed")
			} else if ac.IsFrozen() {
				frozenAt[ac.ID] = ac
			}
		}
	}

	history := sim.History()
	assert.Len(t, history, len(frozenAt))
	ids := map[string]struct{}{}
	for _, rec := range history {
		_, dup := ids[rec.AircraftID]
		require.False(t, dup)
		ids[rec.AircraftID] = struct{}{}
	}
}

func TestReset_ClearsRun(t *testing.T) {
	sim := newTestSimulation(t, still("ac-0", 10, 10), still("ac-1", 10, 10.5))
	firstRun := sim.RunID()
	sim.Tick()
	require.Len(t, sim.History(), 2)

	runID := sim.Reset([]models.Aircraft{still("ac-0", 50, 50)})

	assert.NotEqual(t, firstRun, runID)
	assert.Empty(t, sim.History())
	assert.Empty(t, sim.Alerts())
	assert.Equal(t, uint64(0), sim.CurrentTick())
	assert.Equal(t, models.SeveritySafe, sim.Aircraft()[0].Severity)
}

func TestSnapshot_IsDetached(t *testing.T) {
	sim := newTestSimulation(t, still("ac-0", 10, 10), still("ac-1", 10, 10.5))
	sim.Tick()

	snap := sim.Snapshot()
	snap.Aircraft[0].X = 99
	snap.History[0].AircraftID = "mutated"

	assert.Equal(t, 10.0, sim.Aircraft()[0].X)
	assert.NotEqual(t, "mutated", sim.History()[0].AircraftID)
	assert.Equal(t, uint64(1), snap.Tick)
}

func TestStats(t *testing.T) {
	sim := newTestSimulation(t, still("ac-0", 10, 10), still("ac-1", 10, 13), still("ac-2", 80, 80))

	sim.Tick()
	stats := sim.Stats()

	assert.Equal(t, 3, stats.Aircraft)
	assert.Equal(t, 2, stats.Counts[models.SeverityDanger])
	assert.Equal(t, 1, stats.Counts[models.SeveritySafe])
	assert.Equal(t, 0, stats.Collisions)
	assert.Equal(t, 2, stats.QueuedAlerts)
	assert.Equal(t, uint64(1), stats.Tick)
}

func TestTick_EmptyFleet(t *testing.T) {
	sim := newTestSimulation(t)

	report := sim.Tick()

	assert.Empty(t, report.Alerts)
	assert.Empty(t, report.NewRecords)
	assert.Empty(t, sim.Aircraft())
}
