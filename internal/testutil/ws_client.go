package testutil

import (
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/evan/sports-club-website/internal/websocket"
	gorillaWS "github.com/gorilla/websocket"
)

// PreviewClient is a test client for the admin preview event stream
type PreviewClient struct {
	t      *testing.T
	conn   *gorillaWS.Conn
	events chan websocket.ChangeEvent
	errors chan error
	done   chan struct{}
	mu     sync.Mutex
}

// PreviewURL converts the test server URL into a websocket URL for the
// preview endpoint, carrying the access token as a query parameter.
func (ts *TestServer) PreviewURL(token string) string {
	wsURL := strings.Replace(ts.Server.URL, "http://", "ws://", 1)
	return wsURL + "/api/preview?token=" + token
}

// NewPreviewClient connects to the preview stream and starts reading events
func NewPreviewClient(t *testing.T, url string) *PreviewClient {
	t.Helper()

	dialer := gorillaWS.DefaultDialer
	dialer.HandshakeTimeout = 5 * time.Second

	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("failed to connect to preview stream: %v", err)
	}

	client := &PreviewClient{
		t:      t,
		conn:   conn,
		events: make(chan websocket.ChangeEvent, 100),
		errors: make(chan error, 10),
		done:   make(chan struct{}),
	}

	go client.readPump()

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func (c *PreviewClient) readPump() {
	defer close(c.events)
	for {
		select {
		case <-c.done:
			return
		default:
			_, data, err := c.conn.ReadMessage()
			if err != nil {
				select {
				case <-c.done:
					return
				case c.errors <- err:
				}
				return
			}

			var event websocket.ChangeEvent
			if err := json.Unmarshal(data, &event); err != nil {
				c.errors <- err
				continue
			}

			select {
			case c.events <- event:
			case <-c.done:
				return
			}
		}
	}
}

// WaitForEvent blocks until a change event arrives or the timeout elapses
func (c *PreviewClient) WaitForEvent(timeout time.Duration) websocket.ChangeEvent {
	c.t.Helper()

	select {
	case event, ok := <-c.events:
		if !ok {
			c.t.Fatal("preview stream closed before an event arrived")
		}
		return event
	case err := <-c.errors:
		c.t.Fatalf("preview stream error: %v", err)
	case <-time.After(timeout):
		c.t.Fatal("timed out waiting for a change event")
	}
	return websocket.ChangeEvent{}
}

// Close closes the connection gracefully
func (c *PreviewClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	select {
	case <-c.done:
		return
	default:
		close(c.done)
		c.conn.WriteMessage(gorillaWS.CloseMessage, gorillaWS.FormatCloseMessage(gorillaWS.CloseNormalClosure, ""))
		c.conn.Close()
	}
}
