package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

// DefaultSubjectPrefix is prepended to every event type
const DefaultSubjectPrefix = "allocation"

// NATSPublisher publishes events as JSON on <prefix>.<type>
type NATSPublisher struct {
	conn   *nats.Conn
	prefix string
	owned  bool
}

var _ Publisher = (*NATSPublisher)(nil)

// NewNATSPublisher publishes over an existing connection. The caller keeps
// ownership of conn.
func NewNATSPublisher(conn *nats.Conn, prefix string) *NATSPublisher {
	if prefix == "" {
		prefix = DefaultSubjectPrefix
	}
	return &NATSPublisher{conn: conn, prefix: prefix}
}

// Connect dials url and returns a publisher owning the connection
func Connect(url, prefix string) (*NATSPublisher, error) {
	conn, err := nats.Connect(url,
		nats.Name("allocation-engine"),
		nats.Timeout(5*time.Second),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS at %s: %w", url, err)
	}
	p := NewNATSPublisher(conn, prefix)
	p.owned = true
	return p, nil
}

// Subject returns the subject an event type is published on
func (p *NATSPublisher) Subject(eventType Type) string {
	return p.prefix + "." + string(eventType)
}

// Publish marshals event and publishes it. Delivery is fire-and-forget.
func (p *NATSPublisher) Publish(ctx context.Context, event Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", event.Type, err)
	}
	if err := p.conn.Publish(p.Subject(event.Type), data); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", event.Type, err)
	}
	return nil
}

// Close drains the connection when the publisher owns it
func (p *NATSPublisher) Close() {
	if p.owned && p.conn != nil {
		_ = p.conn.Drain()
	}
}

// Ping reports whether the connection is currently usable
func (p *NATSPublisher) Ping() error {
	if p.conn == nil {
		return fmt.Errorf("nats connection not initialised")
	}
	if status := p.conn.Status(); status != nats.CONNECTED {
		return fmt.Errorf("nats connection %s", status)
	}
	return nil
}
