package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	JobsCreatedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jobboard_jobs_created_total",
			Help: "Total number of job postings created.",
		},
	)
	ApplicationsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jobboard_applications_total",
			Help: "Total number of recorded job applications.",
		},
	)
	PaymentOutcomeCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_payment_outcomes_total",
			Help: "Payment processor outcomes by result.",
		},
		[]string{"outcome"},
	)
	ListingQueryDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "jobboard_listing_query_duration_seconds",
			Help:    "Duration of job listing queries in seconds.",
			Buckets: []float64{0.005, 0.025, 0.1, 0.5, 1, 5},
		},
	)
)

func StartMetricsServer(address string) {

	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(JobsCreatedCounter)
	prometheus.MustRegister(ApplicationsCounter)
	prometheus.MustRegister(PaymentOutcomeCounter)
	prometheus.MustRegister(ListingQueryDuration)

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(address, nil))
	}()
}
