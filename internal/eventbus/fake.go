package eventbus

import (
	"context"
	"sync"
)

// PublishedMessage is one message captured by the fake bus.
type PublishedMessage struct {
	Subject string
	Payload []byte
}

// FakeEventBus is a programmable in-memory EventBus for tests.
type FakeEventBus struct {
	mu        sync.Mutex
	Published []PublishedMessage

	// PublishFunc, when set, overrides the default capture behavior.
	PublishFunc func(ctx context.Context, subject string, payload []byte) error
}

// NewFakeEventBus returns an empty fake bus.
func NewFakeEventBus() *FakeEventBus {
	return &FakeEventBus{}
}

func (f *FakeEventBus) Publish(ctx context.Context, subject string, payload []byte) error {
	if f.PublishFunc != nil {
		return f.PublishFunc(ctx, subject, payload)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Published = append(f.Published, PublishedMessage{Subject: subject, Payload: payload})
	return nil
}

func (f *FakeEventBus) Close() error { return nil }

var _ EventBus = (*FakeEventBus)(nil)
