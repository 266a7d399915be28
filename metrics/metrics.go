// Package metrics exposes the relay's observable state — the three LSN
// watermarks and the current subscriber count — as Prometheus gauges
// served over HTTP.
package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/msavela/walstream/eventbus"
)

const sampleInterval = 1 * time.Second

// Registry wraps a dedicated prometheus.Registry so the relay's metrics
// don't collide with whatever else might be registered process-wide.
type Registry struct {
	reg *prometheus.Registry

	lastReceivedLSN prometheus.Gauge
	lastSentLSN     prometheus.Gauge
	lastAckLSN      prometheus.Gauge
	subscriberCount prometheus.Gauge
}

// NewRegistry builds the gauges and registers them.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	r := &Registry{
		reg: reg,
		lastReceivedLSN: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "walstream_last_received_lsn",
			Help: "Highest WAL LSN decoded off the replication stream.",
		}),
		lastSentLSN: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "walstream_last_sent_lsn",
			Help: "Highest WAL LSN successfully published to the event bus.",
		}),
		lastAckLSN: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "walstream_last_ack_lsn",
			Help: "Most recent WAL LSN acknowledged by any downstream session.",
		}),
		subscriberCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "walstream_subscriber_count",
			Help: "Number of sessions currently subscribed to the event bus.",
		}),
	}
	reg.MustRegister(r.lastReceivedLSN, r.lastSentLSN, r.lastAckLSN, r.subscriberCount)
	return r
}

// Handler returns the HTTP handler to mount at /metrics.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

// Watch samples bus's watermarks and subscriber count every
// sampleInterval until ctx is canceled. It is meant to run in its own
// goroutine for the lifetime of the process.
func (r *Registry) Watch(ctx context.Context, bus *eventbus.Bus) {
	r.sample(bus)

	ticker := time.NewTicker(sampleInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.sample(bus)
		}
	}
}

func (r *Registry) sample(bus *eventbus.Bus) {
	r.lastReceivedLSN.Set(float64(bus.LastReceived().Get()))
	r.lastSentLSN.Set(float64(bus.LastSent().Get()))
	r.lastAckLSN.Set(float64(bus.LastAck().Get()))
	r.subscriberCount.Set(float64(bus.SubscriberCount()))
}

// Serve starts an HTTP server exposing /metrics on addr. It runs until
// ctx is canceled or the listener fails.
func Serve(ctx context.Context, addr string, handler http.Handler) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)
	srv := &http.Server{Addr: addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("metrics server shutdown error")
		}
		return nil
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
