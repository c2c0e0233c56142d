// Package testtools holds the scaffolding shared by the sample tests: the
// suite lifecycle, per-test fixtures, standard stream redirection, stashed
// identifiers and MockHTTP, an aws.HTTPClient that answers SDK requests from
// canned responses so tests run without network access or credentials.
package testtools

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/tidwall/gjson"

	"github.com/ggarcia209/go-aws-samples/goaws"
	"github.com/ggarcia209/go-aws-samples/internal/log"
)

// MockRegion is the region of configs returned by MockHTTP.Config.
const MockRegion = "us-east-1"

// ErrNoMockResponse is returned for a request that arrives after every
// registered response has been consumed.
var ErrNoMockResponse = errors.New("mock http: no response registered for request")

// MockResponse is a canned HTTP response.
type MockResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// CapturedRequest is a request received by MockHTTP.
type CapturedRequest struct {
	Method string
	URL    *url.URL
	Header http.Header
	Body   []byte
}

// Target returns the X-Amz-Target header used by the JSON protocols,
// e.g. "DynamoDB_20120810.UpdateItem".
func (r CapturedRequest) Target() string {
	return r.Header.Get("X-Amz-Target")
}

// Operation returns the name of the API operation the request invokes for
// JSON and query protocol services.
func (r CapturedRequest) Operation() string {
	if target := r.Target(); target != "" {
		return target[strings.LastIndex(target, ".")+1:]
	}
	return r.Form("Action")
}

// JSON looks up path in a JSON request body.
func (r CapturedRequest) JSON(path string) gjson.Result {
	return gjson.GetBytes(r.Body, path)
}

// Form returns a value from a form encoded (query protocol) request body.
func (r CapturedRequest) Form(key string) string {
	values, err := url.ParseQuery(string(r.Body))
	if err != nil {
		return ""
	}
	return values.Get(key)
}

// MockHTTP answers outgoing SDK requests with registered responses in FIFO
// order. Every response is consumed by exactly one request.
type MockHTTP struct {
	mu        sync.Mutex
	dir       string
	responses []MockResponse
	requests  []CapturedRequest
	overdrawn int
}

// NewMockHTTP returns a MockHTTP reading fixture files from ./testdata.
func NewMockHTTP() *MockHTTP {
	return &MockHTTP{dir: "testdata"}
}

// SetFixtureDir changes the directory AddResponseWithBody reads from.
func (m *MockHTTP) SetFixtureDir(dir string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dir = dir
}

// AddResponse queues a response with a literal body.
func (m *MockHTTP) AddResponse(statusCode int, body string) {
	m.add(MockResponse{StatusCode: statusCode, Body: []byte(body)})
}

// AddResponseWithBody queues a response whose body is read from fileName in
// the fixture directory.
func (m *MockHTTP) AddResponseWithBody(fileName string, statusCode int) error {
	m.mu.Lock()
	path := filepath.Join(m.dir, fileName)
	m.mu.Unlock()

	body, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("os.ReadFile: %w", err)
	}
	m.add(MockResponse{StatusCode: statusCode, Header: headerFor(fileName), Body: body})
	return nil
}

func (m *MockHTTP) add(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// Do implements aws.HTTPClient.
func (m *MockHTTP) Do(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		var err error
		body, err = io.ReadAll(req.Body)
		_ = req.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("io.ReadAll: %w", err)
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.requests = append(m.requests, CapturedRequest{
		Method: req.Method,
		URL:    req.URL,
		Header: req.Header.Clone(),
		Body:   body,
	})

	if len(m.responses) == 0 {
		m.overdrawn++
		log.Warnf("mock http: request %d (%s %s) has no registered response", len(m.requests), req.Method, req.URL)
		return nil, fmt.Errorf("%w: %s %s", ErrNoMockResponse, req.Method, req.URL)
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]
	log.Tracef("mock http: %s %s -> %d", req.Method, req.URL, resp.StatusCode)

	header := resp.Header.Clone()
	if header == nil {
		header = http.Header{}
	}
	header.Set("Content-Length", strconv.Itoa(len(resp.Body)))
	if header.Get("X-Amzn-Requestid") == "" {
		header.Set("X-Amzn-Requestid", "mock-request-"+strconv.Itoa(len(m.requests)))
	}

	return &http.Response{
		Status:        fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
		StatusCode:    resp.StatusCode,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(resp.Body)),
		ContentLength: int64(len(resp.Body)),
		Request:       req,
	}, nil
}

// Remaining returns the number of responses not consumed yet.
func (m *MockHTTP) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.responses)
}

// Overdrawn returns the number of requests that found the queue empty.
func (m *MockHTTP) Overdrawn() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.overdrawn
}

// Requests returns the received requests in arrival order.
func (m *MockHTTP) Requests() []CapturedRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]CapturedRequest, len(m.requests))
	copy(out, m.requests)
	return out
}

// LastRequest returns the most recent request. ok is false when none arrived.
func (m *MockHTTP) LastRequest() (req CapturedRequest, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		return CapturedRequest{}, false
	}
	return m.requests[len(m.requests)-1], true
}

// TestingT is the part of testing.TB that AssertConsumed reports through.
type TestingT interface {
	Helper()
	Errorf(format string, args ...any)
}

// AssertConsumed fails the test when registered responses were left over or
// more requests arrived than responses were registered.
func (m *MockHTTP) AssertConsumed(t TestingT) bool {
	t.Helper()
	m.mu.Lock()
	remaining, overdrawn := len(m.responses), m.overdrawn
	m.mu.Unlock()

	ok := true
	if remaining > 0 {
		t.Errorf("mock http: %d registered responses were not consumed", remaining)
		ok = false
	}
	if overdrawn > 0 {
		t.Errorf("mock http: %d requests arrived with no registered response", overdrawn)
		ok = false
	}
	return ok
}

// Config returns a config whose clients send every request to m. It carries
// fake static credentials and disables SDK retries so each call maps to one
// registered response.
func (m *MockHTTP) Config() goaws.AwsConfig {
	return goaws.AwsConfig{Config: aws.Config{
		Region:      MockRegion,
		Credentials: credentials.NewStaticCredentialsProvider("AKIDMOCKMOCKMOCK", "mock-secret-access-key", ""),
		HTTPClient:  m,
		Retryer: func() aws.Retryer {
			return aws.NopRetryer{}
		},
	}}
}

func headerFor(fileName string) http.Header {
	h := http.Header{}
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".json":
		h.Set("Content-Type", "application/x-amz-json-1.0")
	case ".xml":
		h.Set("Content-Type", "text/xml")
	}
	return h
}
