package toast

import (
	"context"
	"errors"
)

// ErrNoProvider is returned when notifications are requested outside an
// open Provider.
var ErrNoProvider = errors.New("toast: no open provider in context")

// Provider is the application-owned handle to a Manager. The application
// root opens it at start-up, hands it to consumers through a context, and
// closes it on shutdown.
type Provider struct {
	mgr *Manager
}

// NewProvider opens a provider around a new Manager.
func NewProvider(opts Options) *Provider {
	return &Provider{mgr: NewManager(opts)}
}

// Manager returns the provider's manager, or ErrNoProvider once closed.
func (p *Provider) Manager() (*Manager, error) {
	if p == nil || p.mgr == nil || p.mgr.Closed() {
		return nil, ErrNoProvider
	}
	return p.mgr, nil
}

// Close tears the manager down. Safe to call more than once.
func (p *Provider) Close() {
	if p == nil || p.mgr == nil {
		return
	}
	p.mgr.Close()
}

type providerKey struct{}

// WithProvider returns a context carrying p.
func WithProvider(ctx context.Context, p *Provider) context.Context {
	return context.WithValue(ctx, providerKey{}, p)
}

// From returns the manager of the provider carried by ctx.
func From(ctx context.Context) (*Manager, error) {
	p, _ := ctx.Value(providerKey{}).(*Provider)
	return p.Manager()
}

// MustFrom is From for call sites where a missing provider is a wiring bug.
// It panics with ErrNoProvider.
func MustFrom(ctx context.Context) *Manager {
	m, err := From(ctx)
	if err != nil {
		panic(err)
	}
	return m
}
