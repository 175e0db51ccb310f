// internal/adapters/events/nats.go
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/helpway/helpway-core/internal/ports"
)

// Bus publishes and receives JSON change events over NATS.
type Bus struct {
	conn   *nats.Conn
	prefix string
}

func Connect(url, prefix string) (*Bus, error) {
	nc, err := nats.Connect(url,
		nats.Name("helpway-core"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Printf("nats disconnected: %v", err)
			}
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to nats: %w", err)
	}
	return &Bus{conn: nc, prefix: prefix}, nil
}

var _ ports.EventPublisherPort = (*Bus)(nil)

func (b *Bus) subject(s string) string {
	if b.prefix == "" {
		return s
	}
	return b.prefix + "." + s
}

func (b *Bus) Publish(ctx context.Context, subject string, event interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return b.conn.Publish(b.subject(subject), data)
}

// Subscribe delivers the raw payload of every event under the bus prefix.
func (b *Bus) Subscribe(handler func(subject string, data []byte)) (*nats.Subscription, error) {
	return b.conn.Subscribe(b.subject(">"), func(msg *nats.Msg) {
		handler(msg.Subject, msg.Data)
	})
}

func (b *Bus) Close() {
	if err := b.conn.Drain(); err != nil {
		log.Printf("nats drain: %v", err)
	}
}
