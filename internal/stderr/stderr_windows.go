//go:build windows

// Package stderr is a no-op on Windows, where the audio backend does not
// write to the console.
package stderr

import "os"

// Capture is inert on Windows.
type Capture struct {
	lines chan string
}

// Start returns a capture that never delivers lines.
func Start() (*Capture, error) {
	return &Capture{lines: make(chan string)}, nil
}

// Lines never delivers.
func (c *Capture) Lines() <-chan string {
	return c.lines
}

// WriteOriginal writes to stderr.
func (c *Capture) WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

// Stop closes the line channel.
func (c *Capture) Stop() {
	close(c.lines)
}
