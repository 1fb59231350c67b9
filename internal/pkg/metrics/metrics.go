// Package metrics holds the Prometheus collectors of the decode service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/nttcom/ucd/pkg/packet/ucd"
)

const namespace = "ucd"

// Metrics contains all Prometheus metrics for UCD decoding
type Metrics struct {
	MessagesDecoded   prometheus.Counter
	MessagesMalformed prometheus.Counter
	Diagnostics       prometheus.Counter
	Records           *prometheus.CounterVec
	MessageSize       prometheus.Histogram
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		MessagesDecoded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_decoded_total",
			Help:      "UCD messages decoded, including those with diagnostics",
		}),
		MessagesMalformed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_malformed_total",
			Help:      "UCD messages rejected because a field ran past the buffer",
		}),
		Diagnostics: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "diagnostics_total",
			Help:      "Non-fatal TLV findings",
		}),
		Records: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_total",
			Help:      "Channel TLVs decoded by type",
		}, []string{"type"}),
		MessageSize: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "message_size_bytes",
			Help:      "Size of decoded UCD messages",
			Buckets:   prometheus.ExponentialBuckets(8, 2, 8),
		}),
	}
}

// Observe records the outcome of one decode call.
func (m *Metrics) Observe(msg *ucd.Message, err error) {
	if err != nil {
		m.MessagesMalformed.Inc()
		return
	}
	m.MessagesDecoded.Inc()
	m.MessageSize.Observe(float64(msg.Length))
	m.Diagnostics.Add(float64(len(msg.Diagnostics())))
	for _, r := range msg.Records {
		m.Records.WithLabelValues(r.Type.String()).Inc()
	}
}
