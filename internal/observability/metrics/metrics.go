package metrics

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success                  Outcome       = "success"
	Error                    Outcome       = "error"
	MetricRequestTimeout     time.Duration = 5 * time.Second
	MetricRequestIdleTimeout time.Duration = 10 * time.Second
)

func (O Outcome) String() string {
	return string(O)
}

var (
	once                           sync.Once
	registerOnce                   sync.Once
	metricsRouter                  *chi.Mux
	upstreamClientLatency          *prometheus.HistogramVec
	queueSendErrorCounter          prometheus.Counter
	clientRequestDurationHistogram *prometheus.HistogramVec
	pollerDurationHistogram        *prometheus.HistogramVec
	pollerLastSuccessGauge         *prometheus.GaugeVec
	sourceFailureCounter           *prometheus.CounterVec
	nodesScoredGauge               *prometheus.GaugeVec
	apiRequestDurationHistogram    *prometheus.HistogramVec
	dbLatency                      *prometheus.HistogramVec
)

// Init initializes the metrics package.
func Init(metricsPort int) {
	once.Do(func() {
		initMetricsRouter(metricsPort)
		registerMetrics()
	})
}

// initMetricsRouter initializes the metrics router.
func initMetricsRouter(metricsPort int) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})
	// Create a custom server with timeout settings
	metricsAddr := fmt.Sprintf(":%d", metricsPort)
	server := &http.Server{
		Addr:         metricsAddr,
		Handler:      metricsRouter,
		ReadTimeout:  MetricRequestTimeout,
		WriteTimeout: MetricRequestTimeout,
		IdleTimeout:  MetricRequestIdleTimeout,
	}

	// Start the server in a separate goroutine
	go func() {
		log.Printf("Starting metrics server on %s", metricsAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msgf("Error starting metrics server on %s", metricsAddr)
		}
	}()
}

// registerMetrics initializes and register the Prometheus metrics.
// It is safe to call more than once, tests use it without starting the server.
func registerMetrics() {
	registerOnce.Do(func() {
		defaultHistogramBucketsSeconds := []float64{0.1, 0.5, 1, 2.5, 5, 10, 30}

		// client requests are the ones sending to other service
		clientRequestDurationHistogram = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "client_request_duration_seconds",
				Help:    "Histogram of outgoing client request durations in seconds.",
				Buckets: defaultHistogramBucketsSeconds,
			},
			[]string{"baseurl", "method", "path", "status"},
		)

		upstreamClientLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "upstream_client_latency_seconds",
				Help:    "Histogram of upstream client method durations in seconds.",
				Buckets: defaultHistogramBucketsSeconds,
			},
			[]string{"client", "method", "status"},
		)

		// add a counter for the number of errors from the fail to push message into queue
		queueSendErrorCounter = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "queue_send_error_count",
				Help: "The total number of errors when sending messages to the queue",
			},
		)

		pollerDurationHistogram = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "poller_duration_seconds",
				Help:    "Histogram of poller durations in seconds.",
				Buckets: defaultHistogramBucketsSeconds,
			},
			[]string{"type", "status"},
		)

		pollerLastSuccessGauge = prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "poller_last_success_timestamp_seconds",
				Help: "Unix time of the last poll that completed without error",
			},
			[]string{"type"},
		)

		sourceFailureCounter = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "source_failure_count",
				Help: "Number of failed upstream sources tolerated while building a partial result",
			},
			[]string{"source"},
		)

		nodesScoredGauge = prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "nodes_scored_count",
				Help: "Number of nodes in the last network snapshot split by kind",
			},
			[]string{"kind"},
		)

		apiRequestDurationHistogram = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "api_request_duration_seconds",
				Help:    "Histogram of incoming api request durations in seconds.",
				Buckets: defaultHistogramBucketsSeconds,
			},
			[]string{"route", "status"},
		)

		dbLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "db_latency_seconds",
				Help: "DB latency in seconds splitted by method and execution status",
			},
			[]string{"method", "status"},
		)

		prometheus.MustRegister(
			upstreamClientLatency,
			queueSendErrorCounter,
			clientRequestDurationHistogram,
			pollerDurationHistogram,
			pollerLastSuccessGauge,
			sourceFailureCounter,
			nodesScoredGauge,
			apiRequestDurationHistogram,
			dbLatency,
		)
	})
}

func init() {
	// collectors must exist before the first Record call, even when Init
	// (which also starts the http server) is never called
	registerMetrics()
}

func RecordUpstreamClientLatency(d time.Duration, client, method string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	upstreamClientLatency.WithLabelValues(client, method, status.String()).Observe(d.Seconds())
}

func RecordDbLatency(d time.Duration, method string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	dbLatency.WithLabelValues(method, status.String()).Observe(d.Seconds())
}

func IncSourceFailure(source string) {
	sourceFailureCounter.WithLabelValues(source).Inc()
}

func RecordNodesScored(total, gateways int) {
	nodesScoredGauge.WithLabelValues("all").Set(float64(total))
	nodesScoredGauge.WithLabelValues("gateway").Set(float64(gateways))
}

func RecordAPIRequestDuration(d time.Duration, route string, statusCode int) {
	apiRequestDurationHistogram.WithLabelValues(route, fmt.Sprintf("%d", statusCode)).Observe(d.Seconds())
}

// StartClientRequestDurationTimer starts a timer to measure outgoing client request duration.
func StartClientRequestDurationTimer(baseUrl, method, path string) func(statusCode int) {
	startTime := time.Now()
	return func(statusCode int) {
		duration := time.Since(startTime).Seconds()
		clientRequestDurationHistogram.WithLabelValues(
			baseUrl,
			method,
			path,
			fmt.Sprintf("%d", statusCode),
		).Observe(duration)
	}
}

func RecordQueueSendError() {
	queueSendErrorCounter.Inc()
}
