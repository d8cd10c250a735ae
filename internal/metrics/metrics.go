package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/shenikar/airspace_alert_system/internal/models"
)

const namespace = "airspace"

// Collector - метрики симуляции, регистрируются в собственном реестре
type Collector struct {
	registry *prometheus.Registry

	ticks        prometheus.Counter
	tickDuration prometheus.Histogram
	alerts       *prometheus.CounterVec
	collisions   prometheus.Counter
	aircraft     *prometheus.GaugeVec
	sinkErrors   *prometheus.CounterVec
	resets       prometheus.Counter
}

// New создаёт реестр с метриками симуляции и стандартными go/process коллекторами
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_total",
			Help:      "Number of simulation ticks executed.",
		}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tick_duration_seconds",
			Help:      "Time spent in one simulation tick including sinks.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		alerts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_total",
			Help:      "Proximity alerts admitted to the alert queue.",
		}, []string{"severity"}),
		collisions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "collisions_total",
			Help:      "Aircraft that reached the collision state.",
		}),
		aircraft: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "aircraft",
			Help:      "Aircraft in the current run by severity.",
		}, []string{"severity"}),
		sinkErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sink_errors_total",
			Help:      "Failures handing tick results to external sinks.",
		}, []string{"sink"}),
		resets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resets_total",
			Help:      "Simulation runs started.",
		}),
	}

	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.ticks,
		c.tickDuration,
		c.alerts,
		c.collisions,
		c.aircraft,
		c.sinkErrors,
		c.resets,
	)
	return c
}

// Gatherer отдаёт реестр для promhttp
func (c *Collector) Gatherer() prometheus.Gatherer {
	return c.registry
}

// ObserveTick обновляет метрики по итогам тика
func (c *Collector) ObserveTick(report *models.TickReport, elapsed time.Duration) {
	c.ticks.Inc()
	c.tickDuration.Observe(elapsed.Seconds())
	for _, alert := range report.Alerts {
		c.alerts.WithLabelValues(string(alert.Aircraft.Severity)).Inc()
	}
	c.collisions.Add(float64(len(report.NewRecords)))
	c.setFleet(report.Counts)
}

// ObserveReset фиксирует начало нового прогона
func (c *Collector) ObserveReset(fleet []models.Aircraft) {
	c.resets.Inc()
	counts := make(map[models.Severity]int, 4)
	for _, ac := range fleet {
		counts[ac.Severity]++
	}
	c.setFleet(counts)
}

// SinkFailed увеличивает счётчик ошибок приёмника
func (c *Collector) SinkFailed(sink string) {
	c.sinkErrors.WithLabelValues(sink).Inc()
}

func (c *Collector) setFleet(counts map[models.Severity]int) {
	for _, severity := range []models.Severity{
		models.SeveritySafe,
		models.SeverityWarning,
		models.SeverityDanger,
		models.SeverityCollision,
	} {
		c.aircraft.WithLabelValues(string(severity)).Set(float64(counts[severity]))
	}
}
