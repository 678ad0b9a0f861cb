package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "learnhub"

var (
	AttemptsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "attempts_started_total",
		Help:      "Quiz attempts opened.",
	})

	AttemptsGraded = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "attempts_graded_total",
		Help:      "Quiz attempts graded, by result.",
	}, []string{"result"})

	CertificatesIssued = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "certificates_issued_total",
		Help:      "Certificates persisted for the first time.",
	})

	Refusals = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lifecycle_refusals_total",
		Help:      "Lifecycle operations refused with a user-recoverable error, by operation and kind.",
	}, []string{"operation", "kind"})
)

func ObserveGraded(passed bool) {
	if passed {
		AttemptsGraded.WithLabelValues("passed").Inc()
		return
	}
	AttemptsGraded.WithLabelValues("failed").Inc()
}

func Handler() http.Handler {
	return promhttp.Handler()
}
