package event

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Instrumented is a Sink that counts what it forwards to the next Sink.
type Instrumented struct {
	next      Sink
	published *prometheus.CounterVec
}

var _ Sink = (*Instrumented)(nil)

// Instrument wraps next so every publish increments
// <namespace>_sink_events_published_total{kind=...} on reg. Instrumenting
// twice against the same registry shares the counter.
func Instrument(next Sink, reg prometheus.Registerer, namespace string) (*Instrumented, error) {
	published := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sink",
			Name:      "events_published_total",
			Help:      "Events published to the application, by kind.",
		},
		[]string{"kind"},
	)

	if err := reg.Register(published); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, err
		}
		existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, err
		}
		published = existing
	}

	for _, kind := range []Kind{KindConnected, KindEvent, KindAck, KindError} {
		published.WithLabelValues(string(kind))
	}

	return &Instrumented{next: next, published: published}, nil
}

func (s *Instrumented) PublishConnected() {
	s.published.WithLabelValues(string(KindConnected)).Inc()
	s.next.PublishConnected()
}

func (s *Instrumented) PublishEvent(name string, args []string) {
	s.published.WithLabelValues(string(KindEvent)).Inc()
	s.next.PublishEvent(name, args)
}

func (s *Instrumented) PublishAck(id uint64, args []string) {
	s.published.WithLabelValues(string(KindAck)).Inc()
	s.next.PublishAck(id, args)
}

func (s *Instrumented) PublishError(cause error, message string) {
	s.published.WithLabelValues(string(KindError)).Inc()
	s.next.PublishError(cause, message)
}
