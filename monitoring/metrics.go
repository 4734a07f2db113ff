package monitoring

import (
	"fmt"
	"math"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sarchlab/radiosim/phy/medium"
	"github.com/sarchlab/radiosim/phy/signal"
	"github.com/sarchlab/radiosim/sim"
)

// MetricsHook is a medium hook that exposes the radio traffic as Prometheus
// metrics.
type MetricsHook struct {
	gatherer prometheus.Gatherer

	Transmissions        *prometheus.CounterVec
	Receptions           *prometheus.CounterVec
	Failures             prometheus.Counter
	TransmissionDuration prometheus.Histogram
	ReceptionPower       prometheus.Histogram
}

// NewMetricsHook registers the radio metrics against the provided registerer.
// A nil registerer uses the default one.
func NewMetricsHook(reg prometheus.Registerer) (*MetricsHook, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	transmissions, err := register(reg,
		prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "radiosim_transmissions_total",
			Help: "Number of transmissions put on the medium.",
		}, []string{"transmitter", "mode"}),
		"radiosim_transmissions_total")
	if err != nil {
		return nil, err
	}

	receptions, err := register(reg,
		prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "radiosim_receptions_total",
			Help: "Number of receptions computed.",
		}, []string{"receiver"}),
		"radiosim_receptions_total")
	if err != nil {
		return nil, err
	}

	failures, err := register(reg,
		prometheus.NewCounter(prometheus.CounterOpts{
			Name: "radiosim_transmission_failures_total",
			Help: "Number of packets that could not be transmitted.",
		}),
		"radiosim_transmission_failures_total")
	if err != nil {
		return nil, err
	}

	duration, err := register(reg,
		prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "radiosim_transmission_duration_seconds",
			Help:    "Simulated airtime of the transmissions.",
			Buckets: prometheus.ExponentialBuckets(20e-6, 2, 10),
		}),
		"radiosim_transmission_duration_seconds")
	if err != nil {
		return nil, err
	}

	power, err := register(reg,
		prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "radiosim_reception_power_dbm",
			Help:    "Minimum received power of the receptions.",
			Buckets: prometheus.LinearBuckets(-100, 10, 13),
		}),
		"radiosim_reception_power_dbm")
	if err != nil {
		return nil, err
	}

	return &MetricsHook{
		gatherer:             gatherer,
		Transmissions:        transmissions,
		Receptions:           receptions,
		Failures:             failures,
		TransmissionDuration: duration,
		ReceptionPower:       power,
	}, nil
}

// Gatherer returns the gatherer that collects the metrics.
func (h *MetricsHook) Gatherer() prometheus.Gatherer {
	return h.gatherer
}

// Func updates the metrics from the medium hook positions.
func (h *MetricsHook) Func(ctx sim.HookCtx) {
	switch ctx.Pos {
	case medium.HookPosTransmissionCreated:
		tx := ctx.Item.(*signal.Transmission)
		h.Transmissions.
			WithLabelValues(tx.TransmitterName(), tx.Mode().Name()).
			Inc()
		h.TransmissionDuration.Observe(float64(tx.Duration()))
	case medium.HookPosReceptionComputed:
		r := ctx.Item.(signal.Reception)
		h.Receptions.WithLabelValues(r.RadioName()).Inc()

		dBm := r.MinPower(r.StartTime(), r.EndTime()).DBm()
		if !math.IsInf(dBm, 0) && !math.IsNaN(dBm) {
			h.ReceptionPower.Observe(dBm)
		}
	case medium.HookPosTransmissionFailed:
		h.Failures.Inc()
	}
}

func register[T prometheus.Collector](
	reg prometheus.Registerer,
	c T,
	name string,
) (T, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}

	are, ok := err.(prometheus.AlreadyRegisteredError)
	if !ok {
		return c, err
	}

	existing, ok := are.ExistingCollector.(T)
	if !ok {
		return c, fmt.Errorf(
			"collector %s already registered with incompatible type", name)
	}

	return existing, nil
}
