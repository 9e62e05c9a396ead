package stderr

import (
	"bufio"
	"io"
	"strings"
)

const bufferSize = 100

// pump forwards non-blank lines from r to out, dropping lines while out is
// full. It closes out when r is exhausted.
func pump(r io.Reader, out chan<- string) {
	defer close(out)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		select {
		case out <- line:
		default:
		}
	}
}
