package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	PaymentsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "vibratonic_payments_created_total", Help: "Total payments created through the gateway"},
	)
	FundingApplied = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "vibratonic_funding_applied_total", Help: "Total settled funding events applied to the ledger"},
	)
	FundingVolume = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "vibratonic_funding_volume_eur_total", Help: "Total settled funding volume in EUR"},
	)
	HackathonJoins = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "vibratonic_hackathon_joins_total", Help: "Total successful hackathon joins"},
	)
	RefundsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "vibratonic_refunds_created_total", Help: "Total refunds issued"},
	)
)

func Register() {
	prometheus.MustRegister(PaymentsCreated, FundingApplied, FundingVolume, HackathonJoins, RefundsCreated)
}
