package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kischiman/sanctuary-timeline/internal/events"
	"github.com/kischiman/sanctuary-timeline/internal/model"
)

// HTTPClient implements TimelineClient over the REST API.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// HTTPOption configures an HTTPClient.
type HTTPOption func(*HTTPClient)

// WithHTTPClient sets a custom underlying http.Client.
func WithHTTPClient(hc *http.Client) HTTPOption {
	return func(c *HTTPClient) {
		c.httpClient = hc
	}
}

// NewHTTPClient creates a client for the server at baseURL.
func NewHTTPClient(baseURL string, opts ...HTTPOption) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *HTTPClient) State(ctx context.Context) (*model.AppState, error) {
	var state model.AppState
	if err := c.doJSON(ctx, http.MethodGet, "/api/state", nil, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (c *HTTPClient) ListEvents(ctx context.Context) ([]*model.Event, error) {
	var evs []*model.Event
	if err := c.doJSON(ctx, http.MethodGet, "/api/events", nil, &evs); err != nil {
		return nil, err
	}
	return evs, nil
}

func (c *HTTPClient) GetEvent(ctx context.Context, id string) (*model.Event, error) {
	var ev model.Event
	if err := c.doJSON(ctx, http.MethodGet, "/api/events/"+id, nil, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

func (c *HTTPClient) CreateEvent(ctx context.Context, req CreateEventRequest) (*model.Event, error) {
	var ev model.Event
	if err := c.doJSON(ctx, http.MethodPost, "/api/events", req, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

func (c *HTTPClient) UpdateEvent(ctx context.Context, id string, patch model.EventPatch) error {
	return c.doJSON(ctx, http.MethodPut, "/api/events/"+id, patch, nil)
}

func (c *HTTPClient) DeleteEvent(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/events/"+id, nil, nil)
}

func (c *HTTPClient) ListTimeSlots(ctx context.Context) ([]*model.TimeSlot, error) {
	var slots []*model.TimeSlot
	if err := c.doJSON(ctx, http.MethodGet, "/api/time-slots", nil, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

func (c *HTTPClient) CreateTimeSlot(ctx context.Context, req CreateTimeSlotRequest) (*model.TimeSlot, error) {
	var slot model.TimeSlot
	if err := c.doJSON(ctx, http.MethodPost, "/api/time-slots", req, &slot); err != nil {
		return nil, err
	}
	return &slot, nil
}

func (c *HTTPClient) UpdateTimeSlot(ctx context.Context, id string, patch model.TimeSlotPatch) error {
	return c.doJSON(ctx, http.MethodPut, "/api/time-slots/"+id, patch, nil)
}

func (c *HTTPClient) DeleteTimeSlot(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/time-slots/"+id, nil, nil)
}

func (c *HTTPClient) GetConfig(ctx context.Context) (*model.Config, error) {
	var cfg model.Config
	if err := c.doJSON(ctx, http.MethodGet, "/api/config", nil, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *HTTPClient) SetConfig(ctx context.Context, patch model.ConfigPatch) error {
	return c.doJSON(ctx, http.MethodPut, "/api/config", patch, nil)
}

func (c *HTTPClient) Health(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, "/api/health", nil, nil)
}

func (c *HTTPClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// doJSON performs an HTTP request with a JSON body and decodes the JSON
// response into result. If result is nil, the response body is discarded.
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body any, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return &APIError{StatusCode: resp.StatusCode, Message: errResp.Error}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

var _ TimelineClient = (*HTTPClient)(nil)

// Watch connects to the server's SSE stream and delivers each received
// event on the returned channel. The connection is closed when ctx is
// canceled.
func (c *HTTPClient) Watch(ctx context.Context, topics ...string) (<-chan events.Message, error) {
	url := c.baseURL + "/api/stream"
	if len(topics) > 0 {
		url += "?topics=" + strings.Join(topics, ",")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")

	// Streaming requests must not use the client-wide timeout.
	streamClient := &http.Client{Transport: c.httpClient.Transport}
	resp, err := streamClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("connecting to stream: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &APIError{StatusCode: resp.StatusCode, Message: "stream unavailable"}
	}

	ch := make(chan events.Message, 64)
	go func() {
		defer close(ch)
		defer resp.Body.Close()
		readSSE(ctx, resp.Body, ch)
	}()
	return ch, nil
}
