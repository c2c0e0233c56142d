package testtools

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// StdoutCapture replaces os.Stdout with a pipe and collects what is written
// to it until Restore is called.
type StdoutCapture struct {
	saved *os.File
	r, w  *os.File
	buf   bytes.Buffer
	done  chan struct{}
	once  sync.Once
}

// CaptureStdout starts redirecting os.Stdout.
func CaptureStdout() (*StdoutCapture, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("os.Pipe: %w", err)
	}
	c := &StdoutCapture{
		saved: os.Stdout,
		r:     r,
		w:     w,
		done:  make(chan struct{}),
	}
	go func() {
		_, _ = io.Copy(&c.buf, r)
		close(c.done)
	}()
	os.Stdout = w
	return c, nil
}

// Restore puts the original os.Stdout back and returns the captured output.
// Later calls return the same output without touching os.Stdout.
func (c *StdoutCapture) Restore() string {
	c.once.Do(func() {
		os.Stdout = c.saved
		_ = c.w.Close()
		<-c.done
		_ = c.r.Close()
	})
	return c.buf.String()
}

// StdinFeed replaces os.Stdin with a pipe pre-loaded with scripted lines.
type StdinFeed struct {
	saved *os.File
	r     *os.File
	once  sync.Once
}

// FeedStdin makes the next reads of os.Stdin return lines, each terminated
// by a newline, followed by EOF.
func FeedStdin(lines ...string) (*StdinFeed, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("os.Pipe: %w", err)
	}
	var script strings.Builder
	for _, line := range lines {
		script.WriteString(line)
		script.WriteByte('\n')
	}
	go func() {
		_, _ = io.WriteString(w, script.String())
		_ = w.Close()
	}()

	f := &StdinFeed{saved: os.Stdin, r: r}
	os.Stdin = r
	return f, nil
}

// Restore puts the original os.Stdin back. It is safe to call more than once.
func (f *StdinFeed) Restore() {
	f.once.Do(func() {
		os.Stdin = f.saved
		_ = f.r.Close()
	})
}
