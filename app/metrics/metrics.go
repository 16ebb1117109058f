package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	auctionMessages = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "artifacte",
			Subsystem: "auction",
			Name:      "messages_total",
			Help:      "Count of auction messages classified by action and result",
		},
		[]string{"action", "result"},
	)

	refundedAmount = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "artifacte",
			Subsystem: "auction",
			Name:      "refunded_base_total",
			Help:      "Cumulative base units returned to outbid bidders",
		},
	)
)

func ensureRegistered() {
	registerOnce.Do(func() {
		prometheus.MustRegister(auctionMessages, refundedAmount)
	})
}

func MessagesCounter() *prometheus.CounterVec {
	ensureRegistered()
	return auctionMessages
}

func RefundedCounter() prometheus.Counter {
	ensureRegistered()
	return refundedAmount
}
