// file: internals/features/outpasses/outpass/service/metrics.go
package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "outpass_transitions_total",
		Help: "Completed outpass state transitions by operation and target status.",
	}, []string{"op", "target"})

	codeScansTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "outpass_code_scans_total",
		Help: "Gate code submissions by outcome (exit, entry, not_found).",
	}, []string{"result"})
)

// ObserveTransition records a committed transition.
func ObserveTransition(op Op, target string) {
	transitionsTotal.WithLabelValues(string(op), target).Inc()
}

// ObserveCodeScan records a gate code submission outcome.
func ObserveCodeScan(result string) {
	codeScansTotal.WithLabelValues(result).Inc()
}
