package app

import (
	"context"
	"sync/atomic"

	"github.com/sainthonore/pedidos/internal/gateway"
)

// busyGateway counts in-flight fetches for the status bar spinner.
type busyGateway struct {
	gw       gateway.Gateway
	inflight atomic.Int64
}

func (b *busyGateway) FetchProviders(ctx context.Context) ([]string, error) {
	b.inflight.Add(1)
	defer b.inflight.Add(-1)
	return b.gw.FetchProviders(ctx)
}

func (b *busyGateway) FetchCountries(ctx context.Context, provider string) ([]string, error) {
	b.inflight.Add(1)
	defer b.inflight.Add(-1)
	return b.gw.FetchCountries(ctx, provider)
}

func (b *busyGateway) FetchEvents(ctx context.Context, provider, country string) ([]gateway.Event, error) {
	b.inflight.Add(1)
	defer b.inflight.Add(-1)
	return b.gw.FetchEvents(ctx, provider, country)
}

// Busy reports whether any fetch is outstanding.
func (b *busyGateway) Busy() bool { return b.inflight.Load() > 0 }
