// Package metrics defines the Prometheus instruments for the avatar bridge.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Ingress metrics
var (
	// SpeakCommandsTotal tracks resolved speak commands by mode and source
	SpeakCommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "speak_commands_total",
			Help: "Total resolved speak commands by mode (audio/text) and source (webhook/manual)",
		},
		[]string{"mode", "source"},
	)

	// SpeakRejectionsTotal tracks rejected speak requests by reason
	SpeakRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "speak_rejections_total",
			Help: "Total rejected speak requests by reason",
		},
		[]string{"reason"},
	)

	// SignatureVerificationsTotal tracks webhook signature checks by outcome
	SignatureVerificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "signature_verifications_total",
			Help: "Total webhook signature verifications by outcome (ok/failed/skipped)",
		},
		[]string{"outcome"},
	)

	// StopCommandsTotal tracks manual stop broadcasts
	StopCommandsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stop_commands_total",
			Help: "Total stop commands broadcast to viewers",
		},
	)
)

// Broadcaster metrics
var (
	// BroadcasterConnectedViewers tracks the number of connected viewer channels
	BroadcasterConnectedViewers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "broadcaster_connected_viewers",
			Help: "Number of currently connected viewer channels",
		},
	)

	// BroadcasterEventsTotal tracks broadcast events by type
	BroadcasterEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "broadcaster_events_total",
			Help: "Total events broadcast to viewers by event type",
		},
		[]string{"type"},
	)

	// BroadcasterSlowViewersEvicted tracks slow viewers evicted due to a full send buffer
	BroadcasterSlowViewersEvicted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "broadcaster_slow_viewers_evicted_total",
			Help: "Total slow viewer channels evicted due to buffer full",
		},
	)

	// BroadcasterPanicsTotal tracks broadcaster panic recoveries
	BroadcasterPanicsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "broadcaster_panics_total",
			Help: "Total broadcaster panic recoveries",
		},
	)

	// BroadcasterCommandChannelDepth tracks current command channel depth
	BroadcasterCommandChannelDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "broadcaster_command_channel_depth",
			Help: "Current depth of the broadcaster command channel",
		},
	)

	// BroadcasterStopTimeoutsTotal tracks shutdowns that exceeded the stop timeout
	BroadcasterStopTimeoutsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "broadcaster_stop_timeouts_total",
			Help: "Total broadcaster shutdowns that exceeded the stop timeout",
		},
	)
)

// WebSocket metrics
var (
	// WebSocketMessageSendDuration tracks per-message send latency
	WebSocketMessageSendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "websocket_message_send_duration_seconds",
			Help:    "WebSocket message send duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
	)

	// WebSocketPingFailures tracks failed keepalive pings
	WebSocketPingFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "websocket_ping_failures_total",
			Help: "Total failed WebSocket keepalive pings",
		},
	)
)
