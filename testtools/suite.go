package testtools

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/ggarcia209/go-aws-samples/goaws"
	"github.com/ggarcia209/go-aws-samples/internal/log"
)

// Label classifies a test by what it needs from the environment.
type Label int

const (
	// RequiresResources needs credentials, permissions and resources that
	// already exist in the account.
	RequiresResources Label = iota + 1
	// RequiresCredentials needs credentials and permissions.
	RequiresCredentials
	// NoCredentials runs anywhere, usually against MockHTTP.
	NoCredentials
)

func (l Label) String() string {
	switch l {
	case RequiresResources:
		return "_1_"
	case RequiresCredentials:
		return "_2_"
	case NoCredentials:
		return "_3_"
	}
	return fmt.Sprintf("Label(%d)", int(l))
}

type cleanup struct {
	name string
	fn   func(ctx context.Context) error
}

// Suite is the state shared by every test in a package: settings, the live
// config, stashed identifiers and cleanups run once all tests are done.
type Suite struct {
	Name     string
	Settings Settings

	config   *goaws.AwsConfig
	stash    *Stash
	mu       sync.Mutex
	cleanups []cleanup
}

func NewSuite(name string) *Suite {
	return &Suite{Name: name, stash: NewStash()}
}

// SetUp loads the settings and, when live tests are enabled, the AWS config.
func (s *Suite) SetUp(ctx context.Context) error {
	settings, err := LoadSettings()
	if err != nil {
		return fmt.Errorf("LoadSettings: %w", err)
	}
	s.Settings = settings

	if settings.Live {
		opts := []goaws.Option{goaws.WithRegion(settings.Region)}
		if settings.Profile != "" {
			opts = append(opts, goaws.WithProfile(settings.Profile))
		}
		cfg, err := goaws.NewConfig(ctx, opts...)
		if err != nil {
			return fmt.Errorf("goaws.NewConfig: %w", err)
		}
		s.config = cfg
	}

	log.Debugf("suite %s: set up live=%t region=%s", s.Name, settings.Live, settings.Region)
	return nil
}

// TearDown runs the registered cleanups, last registered first. Failures
// are logged and do not stop the remaining cleanups.
func (s *Suite) TearDown(ctx context.Context) {
	s.mu.Lock()
	cleanups := s.cleanups
	s.cleanups = nil
	s.mu.Unlock()

	for i := len(cleanups) - 1; i >= 0; i-- {
		c := cleanups[i]
		if err := c.fn(ctx); err != nil {
			log.WithError(err).WithField("cleanup", c.name).Warn("suite cleanup failed")
			continue
		}
		log.Debugf("suite %s: cleanup %s done", s.Name, c.name)
	}
}

// AddCleanup registers fn to run at suite teardown.
func (s *Suite) AddCleanup(name string, fn func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cleanups = append(s.cleanups, cleanup{name: name, fn: fn})
}

func (s *Suite) Stash() *Stash {
	return s.stash
}

// Live reports whether the suite talks to real AWS.
func (s *Suite) Live() bool {
	return s.config != nil
}

// Require skips t unless the environment provides what label needs.
func (s *Suite) Require(t testing.TB, label Label) {
	t.Helper()
	if label == NoCredentials {
		return
	}
	if s.config == nil {
		t.Skipf("%s test: set %s=true to run against AWS", label, EnvLiveTests)
	}
}

// Config returns the live config, skipping t when live tests are disabled.
func (s *Suite) Config(t testing.TB) goaws.AwsConfig {
	t.Helper()
	if s.config == nil {
		t.Skipf("live config unavailable: set %s=true to run against AWS", EnvLiveTests)
	}
	return *s.config
}

var (
	activeMu sync.Mutex
	active   *Suite
)

func activeSuite() *Suite {
	activeMu.Lock()
	defer activeMu.Unlock()
	return active
}

// Main is the body of a package's TestMain. It sets up s, runs the tests,
// tears s down and returns the exit code.
//
//	func TestMain(m *testing.M) {
//		os.Exit(testtools.Main(m, suite))
//	}
func Main(m *testing.M, s *Suite) int {
	log.InitLogger()
	ctx := context.Background()

	if err := s.SetUp(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "suite %s: %s: %v\n", s.Name, PreconditionError(), err)
		return 1
	}
	activeMu.Lock()
	active = s
	activeMu.Unlock()

	code := m.Run()

	s.TearDown(ctx)
	activeMu.Lock()
	active = nil
	activeMu.Unlock()

	return code
}

// Require skips t unless the running suite provides what label needs. Live
// labels are skipped when no suite was started with Main.
func Require(t testing.TB, label Label) {
	t.Helper()
	if s := activeSuite(); s != nil {
		s.Require(t, label)
		return
	}
	if label != NoCredentials {
		t.Skipf("%s test: no suite running", label)
	}
}

// LiveConfig returns the running suite's live config, skipping t when there
// is none.
func LiveConfig(t testing.TB) goaws.AwsConfig {
	t.Helper()
	s := activeSuite()
	if s == nil {
		t.Skip("live config unavailable: no suite running")
	}
	return s.Config(t)
}
