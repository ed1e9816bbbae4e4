package metrics

import (
	"errors"

	"tracking/internal/core/domain/model/order"

	"github.com/prometheus/client_golang/prometheus"
)

// NewStatusTransitionsTotal returns a Prometheus counter for committed order status changes, by target status
func NewStatusTransitionsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_status_transitions_total",
		Help: "Total number of committed order status transitions by target status",
	}, []string{"status"})
}

// NewZoneRejectionsTotal returns a Prometheus counter for orders rejected at creation for lying outside the vendor zone
func NewZoneRejectionsTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "delivery_zone_rejections_total",
		Help: "Total number of orders created as rejected because the destination is outside the delivery zone",
	})
}

// NewInTransitDeliveries returns a Prometheus gauge for the number of deliveries currently on transit
func NewInTransitDeliveries() prometheus.Gauge {
	return prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "deliveries_in_transit",
		Help: "Number of deliveries whose order is on transit, as seen by the last tracking run",
	})
}

// NewRemoteFailuresTotal returns a Prometheus counter for failed calls to remote services
func NewRemoteFailuresTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "remote_call_failures_total",
		Help: "Total number of failed calls to remote services",
	}, []string{"service", "operation"})
}

// Recorder owns the service's collectors. It implements ports.TrackingMetrics and the
// failure hook of the remote clients.
type Recorder struct {
	statusTransitions *prometheus.CounterVec
	zoneRejections    prometheus.Counter
	inTransit         prometheus.Gauge
	remoteFailures    *prometheus.CounterVec
}

// NewRecorder creates the collectors and registers them with reg. Collectors that are
// already registered are reused.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		statusTransitions: NewStatusTransitionsTotal(),
		zoneRejections:    NewZoneRejectionsTotal(),
		inTransit:         NewInTransitDeliveries(),
		remoteFailures:    NewRemoteFailuresTotal(),
	}

	var err error
	if r.statusTransitions, err = register(reg, r.statusTransitions); err != nil {
		return nil, err
	}
	if r.zoneRejections, err = register(reg, r.zoneRejections); err != nil {
		return nil, err
	}
	if r.inTransit, err = register(reg, r.inTransit); err != nil {
		return nil, err
	}
	if r.remoteFailures, err = register(reg, r.remoteFailures); err != nil {
		return nil, err
	}
	return r, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// StatusChanged counts a committed transition into to.
func (r *Recorder) StatusChanged(to order.Status) {
	r.statusTransitions.WithLabelValues(to.WireName()).Inc()
}

// ZoneRejected counts an order stored as REJECTED for lying outside the zone.
func (r *Recorder) ZoneRejected() {
	r.zoneRejections.Inc()
}

// InTransit sets the gauge of deliveries currently on their way.
func (r *Recorder) InTransit(count int) {
	r.inTransit.Set(float64(count))
}

// RemoteCallFailed counts a failed call to a remote service.
func (r *Recorder) RemoteCallFailed(service string, operation string) {
	r.remoteFailures.WithLabelValues(service, operation).Inc()
}
