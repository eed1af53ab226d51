package monitor

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	VerificationStartedCount   prometheus.Counter
	VerificationSucceededCount prometheus.Counter
	VerificationFailedCount    prometheus.Counter
	DecryptionRetryCount       prometheus.Counter
	GatewayPollCount           prometheus.Counter
	CredentialMintCount        prometheus.Counter
	StaleJobCount              prometheus.Counter

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
)

// InitPrometheus initializes Prometheus metrics with a given server name.
func InitPrometheus(serverName string) {
	if serverName == "" {
		panic("server name must be provided")
	}

	VerificationStartedCount = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name:        "verification_started_count_total",
			Help:        "Total number of verification runs started",
			ConstLabels: prometheus.Labels{"server": serverName},
		})

	VerificationSucceededCount = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name:        "verification_succeeded_count_total",
			Help:        "Total number of verification runs that reached a verdict",
			ConstLabels: prometheus.Labels{"server": serverName},
		})

	VerificationFailedCount = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name:        "verification_failed_count_total",
			Help:        "Total number of verification runs that ended in failure",
			ConstLabels: prometheus.Labels{"server": serverName},
		})

	DecryptionRetryCount = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name:        "decryption_retry_count_total",
			Help:        "Total number of decryption requests re-queued on-chain",
			ConstLabels: prometheus.Labels{"server": serverName},
		})

	GatewayPollCount = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name:        "gateway_poll_count_total",
			Help:        "Total number of poll requests sent to the decryption gateway",
			ConstLabels: prometheus.Labels{"server": serverName},
		})

	CredentialMintCount = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name:        "credential_mint_count_total",
			Help:        "Total number of credentials minted after verification",
			ConstLabels: prometheus.Labels{"server": serverName},
		})

	StaleJobCount = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name:        "stale_job_count_total",
			Help:        "Total number of jobs failed by the stale sweep",
			ConstLabels: prometheus.Labels{"server": serverName},
		})

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests served",
			ConstLabels: prometheus.Labels{"server": serverName},
		}, []string{"path", "method", "status"})

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: prometheus.Labels{"server": serverName},
			Buckets:     prometheus.DefBuckets,
		}, []string{"path", "method"})

	prometheus.MustRegister(VerificationStartedCount)
	prometheus.MustRegister(VerificationSucceededCount)
	prometheus.MustRegister(VerificationFailedCount)
	prometheus.MustRegister(DecryptionRetryCount)
	prometheus.MustRegister(GatewayPollCount)
	prometheus.MustRegister(CredentialMintCount)
	prometheus.MustRegister(StaleJobCount)
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpRequestDuration)
}

// TrackMetrics records request counts and latency per route. InitPrometheus
// must run first.
func TrackMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		httpRequestsTotal.WithLabelValues(path, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		httpRequestDuration.WithLabelValues(path, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}

func StartMetricsServer(address string) {
	r := gin.Default()

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if err := r.Run(address); err != nil {
		panic(err)
	}
}
