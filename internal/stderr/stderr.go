//go:build !windows

// Package stderr redirects file descriptor 2 into a pipe so that output
// from C audio libraries (ALSA, PulseAudio) can be shown as warning
// notifications instead of corrupting the terminal.
package stderr

import (
	"os"
	"syscall"
)

// Capture owns the redirected stderr.
type Capture struct {
	lines chan string
	orig  int
	r, w  *os.File
}

// Start redirects stderr. It must run before any C library writes to it.
// When it fails the program keeps the original stderr.
func Start() (*Capture, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}

	fd := int(os.Stderr.Fd())
	orig, err := syscall.Dup(fd)
	if err != nil {
		r.Close()
		w.Close()
		return nil, err
	}
	if err := syscall.Dup2(int(w.Fd()), fd); err != nil {
		syscall.Close(orig)
		r.Close()
		w.Close()
		return nil, err
	}

	c := &Capture{lines: make(chan string, bufferSize), orig: orig, r: r, w: w}
	go pump(r, c.lines)
	return c, nil
}

// Lines delivers captured lines. It is closed after Stop.
func (c *Capture) Lines() <-chan string {
	return c.lines
}

// WriteOriginal writes to the real stderr, bypassing the capture.
func (c *Capture) WriteOriginal(msg string) {
	_, _ = syscall.Write(c.orig, []byte(msg))
}

// Stop restores the original stderr.
func (c *Capture) Stop() {
	_ = syscall.Dup2(c.orig, int(os.Stderr.Fd()))
	_ = syscall.Close(c.orig)
	c.w.Close()
	c.r.Close()
}
