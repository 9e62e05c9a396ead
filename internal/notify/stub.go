//go:build !linux

package notify

// New returns Nop; desktop notifications need a freedesktop server.
func New(string) (Notifier, error) {
	return Nop{}, nil
}
