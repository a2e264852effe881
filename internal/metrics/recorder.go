package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agbru/bigcalc/internal/logging"
)

const namespace = "bigcalc"

// Recorder collects per-operation counters and histograms on its own
// registry, so several recorders can coexist in tests.
type Recorder struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	digits     *prometheus.HistogramVec
	inFlight   prometheus.Gauge
}

// NewRecorder creates a Recorder with Go runtime and process collectors
// registered next to the bigcalc metrics.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Evaluated operations by operation and outcome.",
		}, []string{"op", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Evaluation latency by operation.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 14),
		}, []string{"op"}),
		digits: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operand_digits",
			Help:      "Size of the larger operand in 32-bit digits.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"op"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "operations_in_flight",
			Help:      "Evaluations currently running.",
		}),
	}
	r.registry.MustRegister(
		r.operations, r.duration, r.digits, r.inFlight,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// ObserveEvaluation records one finished evaluation.
func (r *Recorder) ObserveEvaluation(op string, operandDigits int, d time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	r.operations.WithLabelValues(op, status).Inc()
	r.duration.WithLabelValues(op).Observe(d.Seconds())
	r.digits.WithLabelValues(op).Observe(float64(operandDigits))
}

// Track marks an evaluation as started; the returned func marks it done.
func (r *Recorder) Track() func() {
	r.inFlight.Inc()
	return r.inFlight.Dec
}

// Registry returns the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Serve exposes Handler on addr under /metrics until ctx is done.
func (r *Recorder) Serve(ctx context.Context, addr string, logger logging.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", r.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("metrics endpoint listening", logging.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
