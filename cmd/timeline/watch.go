package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/kischiman/sanctuary-timeline/internal/events"
	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:     "watch [topic...]",
	Short:   "Watch live timeline updates",
	Long: "Watch live timeline updates as they happen.\n\n" +
		"Topics filter which updates are shown, e.g. \"event_*\" or\n" +
		"\"config_updated\". With no topics, all updates are shown.\n" +
		"Updates arrive over the server's event stream, or over NATS when\n" +
		"TIMELINE_NATS_URL (or the active profile's nats_url) is set.",
	GroupID: "views",
	RunE: func(cmd *cobra.Command, args []string) error {
		topics := args

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		natsURL := os.Getenv("TIMELINE_NATS_URL")
		if natsURL == "" {
			natsURL = activeProfileNATSURL()
		}
		if natsURL != "" {
			return watchNATS(ctx, natsURL, topics)
		}
		return watchStream(ctx, topics)
	},
}

// watchStream follows the server's SSE stream. The first message is always
// the full state snapshot; it is printed as a summary line rather than raw
// JSON.
func watchStream(ctx context.Context, topics []string) error {
	ch, err := timelineClient.Watch(ctx, topics...)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			printUpdate(msg)
		}
	}
}

// watchNATS subscribes directly to the NATS subjects the server publishes to.
// Unlike the SSE stream there is no initial snapshot.
func watchNATS(ctx context.Context, natsURL string, topics []string) error {
	sub, err := events.NewNATSSubscriber(natsURL,
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Printf("nats: disconnected: %v", err)
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			log.Printf("nats: reconnected")
		}),
	)
	if err != nil {
		return fmt.Errorf("connecting to NATS: %w", err)
	}
	defer sub.Close()

	// Subjects are single tokens, so "*" matches every topic. Multiple
	// topics are filtered client-side after a wildcard subscription.
	subject := events.TopicAll
	if len(topics) == 1 {
		subject = topics[0]
	}

	ch, cancel, err := sub.Subscribe(subject)
	if err != nil {
		return fmt.Errorf("subscribing to events: %w", err)
	}
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			if len(topics) > 1 && !topicListed(msg.Topic, topics) {
				continue
			}
			printUpdate(msg)
		}
	}
}

// topicListed reports whether topic matches any entry in topics. A
// trailing "*" matches by prefix, the same patterns the SSE stream accepts.
func topicListed(topic string, topics []string) bool {
	for _, t := range topics {
		if t == topic || t == events.TopicAll {
			return true
		}
		if prefix, ok := strings.CutSuffix(t, "*"); ok && strings.HasPrefix(topic, prefix) {
			return true
		}
	}
	return false
}
