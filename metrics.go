package citypay

import (
	"strconv"

	"github.com/hugochinchilla79/citypay_sdk/models"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts payment outcomes seen by a Client.
type Metrics struct {
	responses       *prometheus.CounterVec
	transportErrors prometheus.Counter
}

// NewMetrics creates the client collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		responses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "citypay",
			Name:      "payment_responses_total",
			Help:      "Gateway payment responses by verification verdict and authorisation outcome.",
		}, []string{"verdict", "authorised"}),
		transportErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "citypay",
			Name:      "transport_errors_total",
			Help:      "Payment requests that failed before a gateway response was read.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.responses, m.transportErrors)
	}
	return m
}

func (m *Metrics) observeResponse(resp models.PaymentResponse, verdict Verdict) {
	if m == nil {
		return
	}
	m.responses.WithLabelValues(verdict.String(), strconv.FormatBool(resp.Authorised)).Inc()
}

func (m *Metrics) observeTransportError() {
	if m == nil {
		return
	}
	m.transportErrors.Inc()
}
