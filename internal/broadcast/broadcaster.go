package broadcast

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
	"github.com/pscheid92/avatarbridge/internal/domain"
	"github.com/pscheid92/avatarbridge/internal/metrics"
)

const (
	commandTimeout      = 5 * time.Second  // Actor command timeout
	stopTimeout         = 10 * time.Second // Graceful shutdown timeout
	commandChannelSize  = 256
	depthWarnThreshold  = 200 // 80% of 256
	depthSampleInterval = 1 * time.Second
)

// broadcasterCmd is the command interface for the Broadcaster actor.
type broadcasterCmd interface{ isBroadcasterCmd() }

type baseBroadcasterCmd struct{}

func (baseBroadcasterCmd) isBroadcasterCmd() {}

type registerCmd struct {
	baseBroadcasterCmd
	viewerID     uuid.UUID
	connection   *websocket.Conn
	errorChannel chan error
}

type unregisterCmd struct {
	baseBroadcasterCmd
	connection *websocket.Conn
}

type broadcastCmd struct {
	baseBroadcasterCmd
	event domain.ViewerEvent
}

type viewerCountCmd struct {
	baseBroadcasterCmd
	replyChannel chan int
}

type stopCmd struct {
	baseBroadcasterCmd
}

type viewer struct {
	id     uuid.UUID
	writer *clientWriter
}

// Broadcaster owns the set of connected viewer channels and fans events out
// to all of them. All registry mutation happens on the actor goroutine.
type Broadcaster struct {
	cmdCh       chan broadcasterCmd
	clock       clockwork.Clock
	viewers     map[*websocket.Conn]viewer
	maxViewers  int
	done        chan struct{}
	stopTimeout time.Duration
}

// NewBroadcaster creates a new broadcaster and starts its actor goroutine.
// maxViewers limits concurrent viewer connections (prevents resource
// exhaustion from a misbehaving front-end).
func NewBroadcaster(clock clockwork.Clock, maxViewers int) *Broadcaster {
	b := &Broadcaster{
		cmdCh:       make(chan broadcasterCmd, commandChannelSize),
		clock:       clock,
		viewers:     make(map[*websocket.Conn]viewer),
		maxViewers:  maxViewers,
		done:        make(chan struct{}),
		stopTimeout: stopTimeout,
	}
	go b.run()
	return b
}

// Register adds a viewer channel and immediately enqueues the hello greeting
// carrying the current server timestamp. Returns an error only when the
// viewer limit is reached.
func (b *Broadcaster) Register(viewerID uuid.UUID, conn *websocket.Conn) error {
	errCh := make(chan error, 1)
	b.cmdCh <- registerCmd{viewerID: viewerID, connection: conn, errorChannel: errCh}

	// Use timeout to prevent blocking forever if the broadcaster is stuck
	timer := b.clock.NewTimer(commandTimeout)
	defer timer.Stop()

	select {
	case err := <-errCh:
		return err
	case <-timer.Chan():
		return fmt.Errorf("register command timed out after %v", commandTimeout)
	}
}

// Unregister removes a viewer channel.
func (b *Broadcaster) Unregister(conn *websocket.Conn) {
	b.cmdCh <- unregisterCmd{connection: conn}
}

// Broadcast serializes event once and pushes it to every connected viewer.
// Fire-and-forget: zero viewers is a no-op, slow viewers are evicted, and no
// delivery is guaranteed.
func (b *Broadcaster) Broadcast(event domain.ViewerEvent) {
	b.cmdCh <- broadcastCmd{event: event}
}

// ViewerCount returns the number of connected viewers.
// Returns -1 if the command times out.
func (b *Broadcaster) ViewerCount() int {
	replyCh := make(chan int, 1)
	b.cmdCh <- viewerCountCmd{replyChannel: replyCh}

	timer := b.clock.NewTimer(commandTimeout)
	defer timer.Stop()

	select {
	case count := <-replyCh:
		return count
	case <-timer.Chan():
		slog.Warn("ViewerCount timed out", "timeout", commandTimeout)
		return -1
	}
}

// Stop shuts down the broadcaster, closing all viewer connections.
// Blocks until the actor goroutine has exited or timeout is reached.
func (b *Broadcaster) Stop() {
	b.cmdCh <- stopCmd{}

	timeout := b.clock.NewTimer(b.stopTimeout)
	defer timeout.Stop()

	select {
	case <-b.done:
		slog.Info("Broadcaster stopped gracefully")
	case <-timeout.Chan():
		slog.Warn("Broadcaster stop timeout exceeded, forcing exit",
			"timeout", b.stopTimeout,
		)
		metrics.BroadcasterStopTimeoutsTotal.Inc()
		close(b.done)
		slog.Error("Broadcaster goroutine may have leaked",
			"connected_viewers", len(b.viewers),
		)
	}
}

func (b *Broadcaster) run() {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Broadcaster panic recovered", "panic", r)
			metrics.BroadcasterPanicsTotal.Inc()
			b.closeAllViewers("broadcaster panic")
		}
	}()

	defer close(b.done)

	// Track command channel depth every second
	depthTicker := b.clock.NewTicker(depthSampleInterval)
	defer depthTicker.Stop()

	for {
		select {
		case <-depthTicker.Chan():
			depth := len(b.cmdCh)
			metrics.BroadcasterCommandChannelDepth.Set(float64(depth))

			if depth > depthWarnThreshold {
				slog.Warn("Command channel near capacity",
					"depth", depth,
					"capacity", cap(b.cmdCh),
				)
			}

		case cmd := <-b.cmdCh:
			switch c := cmd.(type) {
			case registerCmd:
				b.handleRegister(c)
			case unregisterCmd:
				b.handleUnregister(c.connection)
			case broadcastCmd:
				b.handleBroadcast(c.event)
			case viewerCountCmd:
				c.replyChannel <- len(b.viewers)
			case stopCmd:
				b.handleStop()
				return
			default:
				slog.Warn("Broadcaster received unknown command type", "command_type", fmt.Sprintf("%T", cmd))
			}
		}
	}
}

func (b *Broadcaster) handleRegister(c registerCmd) {
	if len(b.viewers) >= b.maxViewers {
		slog.Warn("Rejecting viewer: max connections reached", "viewer_id", c.viewerID.String(), "max_viewers", b.maxViewers)
		c.connection.Close()
		c.errorChannel <- fmt.Errorf("max viewer connections (%d) reached", b.maxViewers)
		return
	}

	cw := newClientWriter(c.connection, b.clock)
	b.viewers[c.connection] = viewer{id: c.viewerID, writer: cw}

	metrics.BroadcasterConnectedViewers.Set(float64(len(b.viewers)))

	// Greeting goes only to the new viewer, never broadcast.
	hello := domain.HelloEvent(b.clock.Now().UnixMilli())
	if data, err := json.Marshal(hello); err == nil {
		select {
		case cw.sendChannel <- data:
		default:
		}
	}

	slog.Debug("Viewer registered", "viewer_id", c.viewerID.String(), "total_viewers", len(b.viewers))
	c.errorChannel <- nil
}

func (b *Broadcaster) handleUnregister(conn *websocket.Conn) {
	v, exists := b.viewers[conn]
	if !exists {
		return
	}

	v.writer.stop()
	delete(b.viewers, conn)

	metrics.BroadcasterConnectedViewers.Set(float64(len(b.viewers)))
	slog.Debug("Viewer unregistered", "viewer_id", v.id.String(), "remaining_viewers", len(b.viewers))
}

func (b *Broadcaster) handleBroadcast(event domain.ViewerEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		slog.Error("Failed to marshal broadcast event", "type", event.Type, "error", err)
		return
	}

	metrics.BroadcasterEventsTotal.WithLabelValues(event.Type).Inc()

	var slow []*websocket.Conn
	for conn, v := range b.viewers {
		select {
		case v.writer.sendChannel <- data:
		default:
			slow = append(slow, conn)
		}
	}

	for _, conn := range slow {
		slog.Warn("Disconnecting slow viewer", "viewer_id", b.viewers[conn].id.String())
		metrics.BroadcasterSlowViewersEvicted.Inc()
		b.handleUnregister(conn)
	}
}

func (b *Broadcaster) handleStop() {
	total := len(b.viewers)
	slog.Info("Broadcaster shutting down", "connected_viewers", total)
	b.closeAllViewers("Server shutting down")
	slog.Info("Broadcaster shutdown complete", "disconnected_viewers", total)
}

// closeAllViewers closes all viewer connections with the given reason.
// Used during panic recovery and graceful shutdown.
func (b *Broadcaster) closeAllViewers(reason string) {
	for conn, v := range b.viewers {
		v.writer.stopGraceful(reason)
		delete(b.viewers, conn)
	}
	metrics.BroadcasterConnectedViewers.Set(0)
}
