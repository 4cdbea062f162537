// Package dispatcher routes commands from the tab-separated combat feed to
// their registered handlers. Session and entity commands run inline on the
// reader; hit and remove traffic goes behind buffered queues so a fire
// burst never stalls the feed.
package dispatcher

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/auraxsim/vitality/internal/dispatcher"

// Event is one decoded feed line: a command such as ":HIT:" followed by its
// tab-separated arguments.
type Event struct {
	Command string
	Args    []string
}

// FromLine decodes a raw feed line into an event. Blank lines yield none.
func FromLine(line string) (Event, bool) {
	if line == "" {
		return Event{}, false
	}
	fields := strings.Split(line, "\t")
	return Event{Command: fields[0], Args: fields[1:]}, true
}

// HandlerFunc consumes one feed event.
type HandlerFunc func(Event) error

// Logger is the logging surface the dispatcher needs.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// Option configures handler registration.
type Option func(*handlerConfig)

type handlerConfig struct {
	queueSize int
	logged    bool
}

// Buffered runs the handler on its own goroutine behind a queue of the
// given size. When the queue is full the event is dropped and Dispatch
// reports an error.
func Buffered(size int) Option {
	return func(c *handlerConfig) {
		c.queueSize = size
	}
}

// Logged wraps the handler with debug and error logging.
func Logged() Option {
	return func(c *handlerConfig) {
		c.logged = true
	}
}

// Dispatcher owns the command table and the buffered queues behind it.
type Dispatcher struct {
	handlers map[string]HandlerFunc
	logger   Logger

	queueSize metric.Int64ObservableGauge
	processed metric.Int64Counter
	dropped   metric.Int64Counter

	// queues tracked for the gauge callback
	mu     sync.RWMutex
	queues map[string]chan Event
}

// New creates a dispatcher instrumented through the global OTel meter,
// which is a no-op when no provider is configured.
func New(logger Logger) (*Dispatcher, error) {
	d := &Dispatcher{
		handlers: make(map[string]HandlerFunc),
		queues:   make(map[string]chan Event),
		logger:   logger,
	}

	m := otel.Meter(instrumentationName)

	var err error

	d.queueSize, err = m.Int64ObservableGauge(
		"feed.queue.size",
		metric.WithDescription("Events waiting in each command queue"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating queue size gauge: %w", err)
	}

	_, err = m.RegisterCallback(
		func(ctx context.Context, o metric.Observer) error {
			d.mu.RLock()
			defer d.mu.RUnlock()
			for cmd, q := range d.queues {
				o.ObserveInt64(d.queueSize, int64(len(q)),
					metric.WithAttributes(attribute.String("command", cmd)))
			}
			return nil
		},
		d.queueSize,
	)
	if err != nil {
		return nil, fmt.Errorf("registering queue callback: %w", err)
	}

	d.processed, err = m.Int64Counter(
		"feed.events.processed",
		metric.WithDescription("Feed events processed"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating processed counter: %w", err)
	}

	d.dropped, err = m.Int64Counter(
		"feed.events.dropped",
		metric.WithDescription("Feed events dropped on a full queue"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating dropped counter: %w", err)
	}

	return d, nil
}

// Register adds the handler for a feed command. Options are applied inside
// out: a buffered handler is queued first, then logging wraps the enqueue.
func (d *Dispatcher) Register(command string, h HandlerFunc, opts ...Option) {
	cfg := &handlerConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	handler := h

	if cfg.queueSize > 0 {
		handler = d.withQueue(command, cfg.queueSize, handler)
	}

	if cfg.logged {
		handler = d.withLogging(command, handler)
	}

	d.handlers[command] = handler
}

// Dispatch routes an event to its registered handler.
func (d *Dispatcher) Dispatch(e Event) error {
	h, ok := d.handlers[e.Command]
	if !ok {
		return fmt.Errorf("unknown command: %s", e.Command)
	}
	return h(e)
}

// withQueue spawns the drain goroutine for a buffered command. Handler
// errors surface through the logger since the producer has already moved
// on by the time the event runs.
func (d *Dispatcher) withQueue(command string, size int, h HandlerFunc) HandlerFunc {
	queue := make(chan Event, size)

	d.mu.Lock()
	d.queues[command] = queue
	d.mu.Unlock()

	cmdAttr := attribute.String("command", command)

	go func() {
		for e := range queue {
			if err := h(e); err != nil && d.logger != nil {
				d.logger.Error("queued event failed", "command", command, "error", err)
			}
			d.processed.Add(context.Background(), 1, metric.WithAttributes(cmdAttr))
		}
	}()

	return func(e Event) error {
		select {
		case queue <- e:
			return nil
		default:
			d.dropped.Add(context.Background(), 1, metric.WithAttributes(cmdAttr))
			return fmt.Errorf("queue full: %s", command)
		}
	}
}

func (d *Dispatcher) withLogging(command string, h HandlerFunc) HandlerFunc {
	return func(e Event) error {
		start := time.Now()
		d.logger.Debug("handling event", "command", command, "args", len(e.Args))

		err := h(e)

		if err != nil {
			d.logger.Error("event failed", "command", command, "duration", time.Since(start), "error", err)
		} else {
			d.logger.Debug("event complete", "command", command, "duration", time.Since(start))
		}

		return err
	}
}
