package simulation

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/shenikar/airspace_alert_system/internal/models"
	"github.com/shenikar/airspace_alert_system/internal/motion"
)

var (
	callsignPrefixes = []string{"AV", "CO", "LA", "AA", "BA"}
	airports         = []string{"JFK", "LAX", "CDG", "FRA", "HND", "DXB", "LHR", "SYD"}
	pilotNames       = []string{"Juan G.", "Maria L.", "Carlos R.", "Ana P.", "Luis T.", "Sofia M.", "Pedro D."}
)

// SpawnConfig - параметры начальной расстановки
type SpawnConfig struct {
	MinCount      int
	MaxCount      int
	MaxAttempts   int
	MinSeparation float64
	MaxSpeed      float64
}

// DefaultSpawnConfig: 10..20 судов, 50 попыток на судно, разнос 5 по каждой оси, скорость до 0.5
func DefaultSpawnConfig() SpawnConfig {
	return SpawnConfig{
		MinCount:      10,
		MaxCount:      20,
		MaxAttempts:   50,
		MinSeparation: 5,
		MaxSpeed:      0.5,
	}
}

// Spawner создаёт начальный набор судов без перекрытий
type Spawner struct {
	cfg SpawnConfig
	rng *rand.Rand
}

func NewSpawner(cfg SpawnConfig, rng *rand.Rand) *Spawner {
	def := DefaultSpawnConfig()
	if cfg.MinCount <= 0 {
		cfg.MinCount = def.MinCount
	}
	if cfg.MaxCount <= 0 {
		cfg.MaxCount = def.MaxCount
	}
	if cfg.MaxCount < cfg.MinCount {
		cfg.MaxCount = cfg.MinCount
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = def.MaxAttempts
	}
	if cfg.MinSeparation <= 0 {
		cfg.MinSeparation = def.MinSeparation
	}
	if cfg.MaxSpeed <= 0 {
		cfg.MaxSpeed = def.MaxSpeed
	}
	return &Spawner{cfg: cfg, rng: rng}
}

// RandomCount возвращает случайное количество в [MinCount, MaxCount]
func (s *Spawner) RandomCount() int {
	return s.cfg.MinCount + s.rng.IntN(s.cfg.MaxCount-s.cfg.MinCount+1)
}

// Spawn расставляет до count судов. Если за MaxAttempts попыток свободная точка не нашлась,
// расстановка прекращается и возвращается меньше судов - это не ошибка.
func (s *Spawner) Spawn(count int) []models.Aircraft {
	fleet := make([]models.Aircraft, 0, count)

	for i := 0; i < count; i++ {
		x, y, ok := s.place(fleet)
		if !ok {
			break
		}

		fleet = append(fleet, models.Aircraft{
			ID:          fmt.Sprintf("ac-%d", i),
			X:           x,
			Y:           y,
			DX:          round2((s.rng.Float64()*2 - 1) * s.cfg.MaxSpeed),
			DY:          round2((s.rng.Float64()*2 - 1) * s.cfg.MaxSpeed),
			Callsign:    fmt.Sprintf("%s-%d", pick(s.rng, callsignPrefixes), 100+s.rng.IntN(900)),
			Passengers:  50 + s.rng.IntN(200),
			PilotName:   pick(s.rng, pilotNames),
			Origin:      pick(s.rng, airports),
			Destination: pick(s.rng, airports),
			Severity:    models.SeveritySafe,
		})
	}
	return fleet
}

func (s *Spawner) place(fleet []models.Aircraft) (float64, float64, bool) {
	span := motion.PlaneMax - motion.PlaneMin
	for attempt := 0; attempt < s.cfg.MaxAttempts; attempt++ {
		x := round2(motion.PlaneMin + s.rng.Float64()*span)
		y := round2(motion.PlaneMin + s.rng.Float64()*span)
		if !s.overlaps(fleet, x, y) {
			return x, y, true
		}
	}
	return 0, 0, false
}

// overlaps: точка слишком близка, если ближе MinSeparation сразу по обеим осям
func (s *Spawner) overlaps(fleet []models.Aircraft, x, y float64) bool {
	for _, ac := range fleet {
		if math.Abs(ac.X-x) < s.cfg.MinSeparation && math.Abs(ac.Y-y) < s.cfg.MinSeparation {
			return true
		}
	}
	return false
}

func pick(rng *rand.Rand, values []string) string {
	return values[rng.IntN(len(values))]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
