package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	BanksAdded          prometheus.Counter
	BanksRemoved        prometheus.Counter
	BanksSuspended      prometheus.Counter
	CustomersRegistered prometheus.Counter
	RequestsFiled       prometheus.Counter
	ComplaintsReported  prometheus.Counter
	VotesCast           *prometheus.CounterVec
	OpDuration          *prometheus.HistogramVec
}

func New() *Metrics {
	return &Metrics{
		BanksAdded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "kycnet_banks_added_total",
			Help: "Total number of banks onboarded by the administrator",
		}),
		BanksRemoved: promauto.NewCounter(prometheus.CounterOpts{
			Name: "kycnet_banks_removed_total",
			Help: "Total number of banks removed by the administrator",
		}),
		BanksSuspended: promauto.NewCounter(prometheus.CounterOpts{
			Name: "kycnet_banks_suspended_total",
			Help: "Total number of banks that lost voting eligibility to the complaint threshold",
		}),
		CustomersRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "kycnet_customers_registered_total",
			Help: "Total number of customers registered",
		}),
		RequestsFiled: promauto.NewCounter(prometheus.CounterOpts{
			Name: "kycnet_kyc_requests_filed_total",
			Help: "Total number of verification requests filed",
		}),
		ComplaintsReported: promauto.NewCounter(prometheus.CounterOpts{
			Name: "kycnet_complaints_reported_total",
			Help: "Total number of complaints filed against banks",
		}),
		VotesCast: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "kycnet_votes_cast_total",
			Help: "Total number of votes cast on customers",
		}, []string{"direction"}),
		OpDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "kycnet_registry_op_duration_seconds",
			Help:    "Duration of registry operations",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"op"}),
	}
}

func (m *Metrics) IncrementVote(direction string) {
	m.VotesCast.WithLabelValues(direction).Inc()
}

func (m *Metrics) ObserveOp(op string, start time.Time) {
	m.OpDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
