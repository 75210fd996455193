package client

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/kischiman/sanctuary-timeline/internal/events"
)

// readSSE parses a text/event-stream body and sends one Message per
// complete event. It returns when the body is exhausted or ctx is
// canceled. Events without a name default to "message" per the SSE
// protocol; comment lines and id fields are skipped.
func readSSE(ctx context.Context, body io.Reader, ch chan<- events.Message) {
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var eventName string
	var data strings.Builder

	flush := func() {
		if data.Len() == 0 && eventName == "" {
			return
		}
		name := eventName
		if name == "" {
			name = "message"
		}
		msg := events.Message{Topic: name, Data: []byte(data.String())}
		select {
		case ch <- msg:
		case <-ctx.Done():
		}
		eventName = ""
		data.Reset()
	}

	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}
		line := scanner.Text()
		switch {
		case line == "":
			flush()
		case strings.HasPrefix(line, ":"):
			// keepalive comment
		case strings.HasPrefix(line, "event:"):
			eventName = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			if data.Len() > 0 {
				data.WriteByte('\n')
			}
			data.WriteString(strings.TrimSpace(strings.TrimPrefix(line, "data:")))
		}
	}
	flush()
}
