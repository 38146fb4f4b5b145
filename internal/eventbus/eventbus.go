// Package eventbus wraps a NATS JetStream connection behind a small
// publish-only interface. Round submissions are handed to the feed
// backend over this bus; nothing in this service subscribes.
package eventbus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	wmnats "github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	nc "github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// EventBus publishes domain events for external collaborators.
type EventBus interface {
	Publish(ctx context.Context, subject string, payload []byte) error
	Close() error
}

type eventBus struct {
	publisher      message.Publisher
	natsConn       *nc.Conn
	js             jetstream.JetStream
	logger         *slog.Logger
	streamMutex    sync.Mutex
	createdStreams map[string]bool
}

// New connects to NATS, initializes JetStream, and returns a bus backed
// by a watermill publisher.
func New(ctx context.Context, natsURL string, logger *slog.Logger) (EventBus, error) {
	natsConn, err := nc.Connect(natsURL, nc.RetryOnFailedConnect(true))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(natsConn)
	if err != nil {
		natsConn.Close()
		return nil, fmt.Errorf("failed to initialize JetStream: %w", err)
	}

	watermillLogger := watermill.NewSlogLogger(logger)

	publisher, err := wmnats.NewPublisher(
		wmnats.PublisherConfig{
			URL:       natsURL,
			Marshaler: &wmnats.NATSMarshaler{},
			NatsOptions: []nc.Option{
				nc.RetryOnFailedConnect(true),
			},
		},
		watermillLogger,
	)
	if err != nil {
		natsConn.Close()
		return nil, fmt.Errorf("failed to create watermill publisher: %w", err)
	}

	return &eventBus{
		publisher:      publisher,
		natsConn:       natsConn,
		js:             js,
		logger:         logger,
		createdStreams: make(map[string]bool),
	}, nil
}

// Publish sends the payload to the given subject, creating the backing
// stream on first use.
func (eb *eventBus) Publish(ctx context.Context, subject string, payload []byte) error {
	if err := eb.ensureStream(ctx, subject); err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("subject", subject)

	eb.logger.DebugContext(ctx, "Publishing message",
		slog.String("subject", subject),
		slog.Int("payload_bytes", len(payload)),
	)

	if err := eb.publisher.Publish(subject, msg); err != nil {
		eb.logger.ErrorContext(ctx, "Failed to publish message",
			slog.String("subject", subject),
			slog.Any("error", err),
		)
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}
	return nil
}

// ensureStream creates a JetStream stream named after the subject's first
// token, covering every subject under that prefix.
func (eb *eventBus) ensureStream(ctx context.Context, subject string) error {
	streamName := streamNameForSubject(subject)

	eb.streamMutex.Lock()
	defer eb.streamMutex.Unlock()

	if eb.createdStreams[streamName] {
		return nil
	}

	_, err := eb.js.Stream(ctx, streamName)
	if errors.Is(err, jetstream.ErrStreamNotFound) {
		_, err = eb.js.CreateStream(ctx, jetstream.StreamConfig{
			Name:     streamName,
			Subjects: []string{streamName + ".>"},
		})
		if err != nil {
			return fmt.Errorf("failed to create stream %s: %w", streamName, err)
		}
		eb.logger.InfoContext(ctx, "Created JetStream stream", slog.String("stream", streamName))
	} else if err != nil {
		return fmt.Errorf("failed to check stream %s: %w", streamName, err)
	}

	eb.createdStreams[streamName] = true
	return nil
}

func streamNameForSubject(subject string) string {
	for i := 0; i < len(subject); i++ {
		if subject[i] == '.' {
			return subject[:i]
		}
	}
	return subject
}

func (eb *eventBus) Close() error {
	err := eb.publisher.Close()
	eb.natsConn.Close()
	return err
}
