package testtools

import (
	"sync"
	"testing"

	"github.com/ggarcia209/go-aws-samples/goaws"
	"github.com/ggarcia209/go-aws-samples/internal/log"
)

type fixtureOptions struct {
	silenceStdout bool
	stdin         []string
	feedStdin     bool
	mockHTTP      bool
}

// FixtureOption configures NewFixture.
type FixtureOption func(*fixtureOptions)

// SilenceStdout captures os.Stdout for the duration of the test.
func SilenceStdout() FixtureOption {
	return func(o *fixtureOptions) { o.silenceStdout = true }
}

// WithStdin feeds lines to os.Stdin for the duration of the test.
func WithStdin(lines ...string) FixtureOption {
	return func(o *fixtureOptions) {
		o.feedStdin = true
		o.stdin = append(o.stdin, lines...)
	}
}

// WithMockHTTP installs a MockHTTP. Clients built from Fixture.Config send
// their requests to it.
func WithMockHTTP() FixtureOption {
	return func(o *fixtureOptions) { o.mockHTTP = true }
}

// Fixture is the per-test set-up. Everything it changes is restored when
// the test finishes, whatever its outcome.
type Fixture struct {
	// Mock is nil unless the fixture was built WithMockHTTP.
	Mock *MockHTTP

	t      testing.TB
	stdout *StdoutCapture
	stdin  *StdinFeed
	once   sync.Once
}

// NewFixture applies opts and registers the teardown with t.Cleanup.
// Tests using stream options must not run in parallel.
func NewFixture(t testing.TB, opts ...FixtureOption) *Fixture {
	t.Helper()

	var o fixtureOptions
	for _, opt := range opts {
		opt(&o)
	}

	f := &Fixture{t: t}
	t.Cleanup(f.TearDown)

	if o.silenceStdout {
		c, err := CaptureStdout()
		if err != nil {
			t.Fatalf("%s: %v", PreconditionError(), err)
		}
		f.stdout = c
	}
	if o.feedStdin {
		feed, err := FeedStdin(o.stdin...)
		if err != nil {
			t.Fatalf("%s: %v", PreconditionError(), err)
		}
		f.stdin = feed
	}
	if o.mockHTTP {
		f.Mock = NewMockHTTP()
	}
	log.Debugf("fixture %s: stdout=%t stdin=%d lines mock=%t", t.Name(), o.silenceStdout, len(o.stdin), o.mockHTTP)

	return f
}

// Config returns the mocked config when the fixture has a MockHTTP and the
// suite's live config otherwise, skipping the test when neither exists.
func (f *Fixture) Config() goaws.AwsConfig {
	f.t.Helper()
	if f.Mock != nil {
		return f.Mock.Config()
	}
	return LiveConfig(f.t)
}

// AddResponseWithBody registers a fixture file response, failing the test
// when the file cannot be read.
func (f *Fixture) AddResponseWithBody(fileName string, statusCode int) {
	f.t.Helper()
	if f.Mock == nil {
		f.t.Fatalf("%s: fixture has no mock http", PreconditionError())
	}
	if err := f.Mock.AddResponseWithBody(fileName, statusCode); err != nil {
		f.t.Fatalf("%s: %v", PreconditionError(), err)
	}
}

// Stdout restores os.Stdout and returns what the test wrote to it.
func (f *Fixture) Stdout() string {
	if f.stdout == nil {
		return ""
	}
	return f.stdout.Restore()
}

// TearDown restores the redirected streams. It runs automatically at the
// end of the test and may be called earlier.
func (f *Fixture) TearDown() {
	f.once.Do(func() {
		if f.stdin != nil {
			f.stdin.Restore()
		}
		if f.stdout != nil {
			f.stdout.Restore()
		}
	})
}
