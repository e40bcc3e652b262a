package httpx

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"
)

const (
	catalogURL  = "https://rop.example.edu/ROP_Courses.json"
	postingBody = `[{"Course ID": "RP-1", "Course Title": "Wetland Bird Surveys"}]`
)

// Mock HTTP RoundTripper that replays a scripted sequence of responses.
type mockRoundTripper struct {
	responses []*http.Response
	errors    []error
	index     int
	mux       sync.Mutex
}

func (m *mockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	m.mux.Lock()
	defer m.mux.Unlock()

	if m.index >= len(m.responses) {
		return nil, errors.New("no more responses")
	}

	resp := m.responses[m.index]
	err := m.errors[m.index]
	m.index++

	// Clone the body so a retried read never sees a drained reader.
	if resp != nil && resp.Body != nil {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		resp.Body = io.NopCloser(bytes.NewBuffer(body))
	}

	return resp, err
}

func newMockClient(responses []*http.Response, errors []error) *http.Client {
	for i := len(errors); i < len(responses); i++ {
		errors = append(errors, nil)
	}

	return &http.Client{
		Transport: &mockRoundTripper{
			responses: responses,
			errors:    errors,
		},
	}
}

func newMockResponse(statusCode int, body string, headers map[string]string) *http.Response {
	header := http.Header{}
	for k, v := range headers {
		header.Set(k, v)
	}

	return &http.Response{
		StatusCode: statusCode,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     header,
	}
}

func buildCatalogReq(ctx context.Context) (*http.Request, error) {
	return http.NewRequestWithContext(ctx, "GET", catalogURL, nil)
}

// Small delays so retry tests finish quickly.
func fastRetryConfig() RetryConfig {
	cfg := DefaultRetryConfig()
	cfg.BaseDelay = 1 * time.Millisecond
	cfg.MaxDelay = 5 * time.Millisecond
	return cfg
}

func TestDoWithRetrySuccess(t *testing.T) {
	client := newMockClient(
		[]*http.Response{newMockResponse(200, postingBody, nil)},
		[]error{nil},
	)

	resp, body, err := DoWithRetry(context.Background(), client, buildCatalogReq, DefaultRetryConfig())

	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("Expected status code 200, got %d", resp.StatusCode)
	}
	if string(body) != postingBody {
		t.Errorf("Expected body %q, got %q", postingBody, string(body))
	}
}

func TestDoWithRetryBuildReqError(t *testing.T) {
	client := newMockClient([]*http.Response{nil}, []error{nil})

	buildReq := func(ctx context.Context) (*http.Request, error) {
		return nil, errors.New("request build error")
	}

	_, _, err := DoWithRetry(context.Background(), client, buildReq, DefaultRetryConfig())

	if err == nil || !strings.Contains(err.Error(), "request build error") {
		t.Errorf("Expected request build error, got %v", err)
	}
}

func TestDoWithRetryNonRetryableError(t *testing.T) {
	client := newMockClient(
		[]*http.Response{nil},
		[]error{errors.New("unsupported protocol scheme")},
	)

	_, _, err := DoWithRetry(context.Background(), client, buildCatalogReq, DefaultRetryConfig())

	if err == nil || !strings.Contains(err.Error(), "unsupported protocol scheme") {
		t.Errorf("Expected non-retryable error to surface, got %v", err)
	}
}

func TestDoWithRetryRetryableNetError(t *testing.T) {
	// First attempt times out on the wire, second succeeds.
	client := newMockClient(
		[]*http.Response{nil, newMockResponse(200, postingBody, nil)},
		[]error{&timeoutError{}, nil},
	)

	resp, body, err := DoWithRetry(context.Background(), client, buildCatalogReq, fastRetryConfig())

	if err != nil {
		t.Fatalf("Expected success after a retried net error, got %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("Expected status code 200, got %d", resp.StatusCode)
	}
	if string(body) != postingBody {
		t.Errorf("Expected body %q, got %q", postingBody, string(body))
	}
}

func TestDoWithRetryRetryableStatus(t *testing.T) {
	client := newMockClient(
		[]*http.Response{
			newMockResponse(429, `{"error": "rate limited"}`, map[string]string{"Retry-After": "1"}),
			newMockResponse(200, postingBody, nil),
		},
		[]error{nil, nil},
	)

	resp, body, err := DoWithRetry(context.Background(), client, buildCatalogReq, fastRetryConfig())

	if err != nil {
		t.Errorf("Expected no error after retry, got %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("Expected status code 200, got %d", resp.StatusCode)
	}
	if string(body) != postingBody {
		t.Errorf("Expected body %q, got %q", postingBody, string(body))
	}
}

func TestDoWithRetryMaxAttemptsExceeded(t *testing.T) {
	client := newMockClient(
		[]*http.Response{
			newMockResponse(500, `{"error": "server error"}`, nil),
			newMockResponse(500, `{"error": "server error"}`, nil),
		},
		[]error{nil, nil},
	)

	cfg := fastRetryConfig()
	cfg.MaxAttempts = 2

	_, _, err := DoWithRetry(context.Background(), client, buildCatalogReq, cfg)

	if err == nil {
		t.Fatal("Expected error after max attempts, got nil")
	}

	httpErr, ok := err.(*HTTPError)
	if !ok {
		t.Errorf("Expected HTTPError, got %T", err)
	} else if httpErr.StatusCode != 500 {
		t.Errorf("Expected status code 500, got %d", httpErr.StatusCode)
	}
}

func TestDoWithRetryContextCancellation(t *testing.T) {
	// A retryable response with a canceled context: the backoff sleep must
	// give up immediately instead of waiting the run out.
	client := newMockClient(
		[]*http.Response{
			newMockResponse(503, `{"error": "maintenance"}`, nil),
			newMockResponse(200, postingBody, nil),
		},
		[]error{nil, nil},
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := DoWithRetry(ctx, client, buildCatalogReq, fastRetryConfig())

	if err == nil || !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled error, got %v", err)
	}
}

func TestDoWithRetryDefaultConfig(t *testing.T) {
	client := newMockClient(
		[]*http.Response{newMockResponse(200, postingBody, nil)},
		[]error{nil},
	)

	// Zero values should fall back to the defaults.
	cfg := RetryConfig{}

	_, _, err := DoWithRetry(context.Background(), client, buildCatalogReq, cfg)

	if err != nil {
		t.Errorf("Expected no error with default config, got %v", err)
	}
}

func TestDoJSONSuccess(t *testing.T) {
	client := newMockClient(
		[]*http.Response{newMockResponse(200, `{"Course ID": "RP-1", "Openings per Term": 3}`, nil)},
		[]error{nil},
	)

	var result struct {
		ID       string `json:"Course ID"`
		Openings int    `json:"Openings per Term"`
	}

	err := DoJSON(context.Background(), client, buildCatalogReq, &result, DefaultRetryConfig())

	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if result.ID != "RP-1" || result.Openings != 3 {
		t.Errorf("Expected {ID: RP-1, Openings: 3}, got %+v", result)
	}
}

func TestDoJSONNilOutput(t *testing.T) {
	client := newMockClient(
		[]*http.Response{newMockResponse(200, postingBody, nil)},
		[]error{nil},
	)

	err := DoJSON(context.Background(), client, buildCatalogReq, nil, DefaultRetryConfig())

	if err != nil {
		t.Errorf("Expected no error with nil output, got %v", err)
	}
}

func TestDoJSONInvalidJSON(t *testing.T) {
	client := newMockClient(
		[]*http.Response{newMockResponse(200, `[{"Course ID": "RP-1", truncated`, nil)},
		[]error{nil},
	)

	var result []struct {
		ID string `json:"Course ID"`
	}

	err := DoJSON(context.Background(), client, buildCatalogReq, &result, DefaultRetryConfig())

	if err == nil {
		t.Fatal("Expected JSON parse error, got nil")
	}
	if !strings.Contains(err.Error(), "json parse error") {
		t.Errorf("Expected 'json parse error' in error message, got %v", err)
	}
}

func TestSleepBackoff(t *testing.T) {
	ctx := context.Background()

	start := time.Now()
	err := sleepBackoff(ctx, 1, 5*time.Millisecond, 50*time.Millisecond, 0)
	duration := time.Since(start)

	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if duration < 5*time.Millisecond {
		t.Errorf("Expected sleep of at least 5ms, got %v", duration)
	}

	// Retry-After wins over the computed backoff when it is longer.
	start = time.Now()
	err = sleepBackoff(ctx, 1, 50*time.Millisecond, 100*time.Millisecond, 10*time.Millisecond)
	duration = time.Since(start)

	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if duration < 10*time.Millisecond {
		t.Errorf("Expected sleep of at least 10ms, got %v", duration)
	}

	// Canceled context aborts the sleep.
	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	err = sleepBackoff(canceled, 1, 1*time.Second, 2*time.Second, 0)

	if err == nil || !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled error, got %v", err)
	}
}

func TestReadAndClose(t *testing.T) {
	r := io.NopCloser(strings.NewReader(postingBody))

	data, err := readAndClose(r)

	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if string(data) != postingBody {
		t.Errorf("Expected %q, got %q", postingBody, string(data))
	}
}
