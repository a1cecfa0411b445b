package score

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

// Submission is the wire body sent for a finished run
type Submission struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// Reporter submits finished runs to a leaderboard endpoint
// http(s) endpoints receive a JSON POST; ws(s) endpoints receive one JSON text message
// Every submission runs on its own goroutine bounded by the timeout; failures are logged only
type Reporter struct {
	endpoint string
	scheme   string
	timeout  time.Duration

	client *http.Client
	dialer *websocket.Dialer

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	closed atomic.Bool
	sent   atomic.Int64
	failed atomic.Int64
}

// NewReporter validates endpoint and creates a reporter
func NewReporter(endpoint string, timeout time.Duration) (*Reporter, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid score endpoint: %w", err)
	}
	switch u.Scheme {
	case "http", "https", "ws", "wss":
	default:
		return nil, fmt.Errorf("unsupported score endpoint scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("score endpoint %q has no host", endpoint)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Reporter{
		endpoint: endpoint,
		scheme:   u.Scheme,
		timeout:  timeout,
		client:   &http.Client{Timeout: timeout},
		dialer: &websocket.Dialer{
			HandshakeTimeout: timeout,
			Proxy:            http.ProxyFromEnvironment,
		},
		ctx:    ctx,
		cancel: cancel,
	}, nil
}

// Endpoint returns the configured URL
func (r *Reporter) Endpoint() string {
	return r.endpoint
}

// Report starts a submission and returns immediately
func (r *Reporter) Report(name string, score float64) {
	if r.closed.Load() {
		log.Printf("score: reporter closed, dropping score %.1f for %q", score, name)
		return
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ctx, cancel := context.WithTimeout(r.ctx, r.timeout)
		defer cancel()

		sub := Submission{Name: name, Score: score}
		var err error
		switch r.scheme {
		case "ws", "wss":
			err = r.sendWebSocket(ctx, sub)
		default:
			err = r.sendHTTP(ctx, sub)
		}

		if err != nil {
			r.failed.Add(1)
			log.Printf("score: submission failed: %v", err)
			return
		}
		r.sent.Add(1)
		log.Printf("score: submitted %.1f for %q", score, name)
	}()
}

func (r *Reporter) sendHTTP(ctx context.Context, sub Submission) error {
	body, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}
	return nil
}

func (r *Reporter) sendWebSocket(ctx context.Context, sub Submission) error {
	conn, _, err := r.dialer.DialContext(ctx, r.endpoint, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetWriteDeadline(deadline)
	}
	if err := conn.WriteJSON(sub); err != nil {
		return fmt.Errorf("write: %w", err)
	}

	// Best-effort close handshake
	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return nil
}

// Close stops accepting submissions and waits up to wait for in-flight ones
// Submissions still running after wait are cancelled; returns false if any had to be cancelled
func (r *Reporter) Close(wait time.Duration) bool {
	r.closed.Store(true)

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		r.cancel()
		return true
	case <-time.After(wait):
		r.cancel()
		<-done
		return false
	}
}

// Sent returns the number of successful submissions
func (r *Reporter) Sent() int64 {
	return r.sent.Load()
}

// Failed returns the number of failed submissions
func (r *Reporter) Failed() int64 {
	return r.failed.Load()
}
