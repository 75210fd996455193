// Package server hosts the HTTP API and the live event stream.
package server

import (
	"context"
	"log/slog"

	"github.com/kischiman/sanctuary-timeline/internal/events"
	"github.com/kischiman/sanctuary-timeline/internal/store"
)

// TimelineServer owns the store, the external publisher, and the in-process
// stream hub. Every mutation goes through exactly one handler here, so every
// mutation is followed by exactly one broadcast.
type TimelineServer struct {
	store     store.Store
	publisher events.Publisher
	sseHub    *sseHub
}

// NewTimelineServer returns a new TimelineServer backed by the given store
// and publisher.
func NewTimelineServer(s store.Store, p events.Publisher) *TimelineServer {
	return &TimelineServer{
		store:     s,
		publisher: p,
		sseHub:    newSSEHub(),
	}
}

// publish fans a mutation notification out to the external bus and to all
// connected stream subscribers. Both deliveries are best-effort; failures
// are logged but do not fail the mutation that triggered them.
func (s *TimelineServer) publish(ctx context.Context, topic string, event any) {
	if err := s.publisher.Publish(ctx, topic, event); err != nil {
		slog.Warn("failed to publish event", "topic", topic, "error", err)
	}
	s.broadcastEvent(topic, event)
}

// inputError indicates invalid user input.
// The HTTP layer maps this to 400.
type inputError string

func (e inputError) Error() string { return string(e) }
