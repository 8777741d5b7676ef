package store

import (
	"context"
	"errors"
	"fmt"
)

// unavailableGateway stands in for a store that could not be reached at
// startup. Every collection operation fails fast.
type unavailableGateway struct {
	reason error
}

// NewUnavailableGateway returns a degraded [Gateway] whose operations fail
// with an error matching [ErrStoreUnavailable] and wrapping reason.
func NewUnavailableGateway(reason error) Gateway {
	if reason == nil {
		reason = ErrStoreUnavailable
	}
	return &unavailableGateway{reason: reason}
}

func (g *unavailableGateway) err() error {
	if errors.Is(g.reason, ErrStoreUnavailable) {
		return g.reason
	}
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, g.reason)
}

func (g *unavailableGateway) Collection(string) Collection {
	return unavailableCollection{gateway: g}
}

func (g *unavailableGateway) Probe(context.Context) ProbeResult {
	return ProbeResult{
		State:   ProbeUnavailable,
		Backend: "none",
		Err:     g.err(),
	}
}

func (g *unavailableGateway) Close(context.Context) error {
	return nil
}

type unavailableCollection struct {
	gateway *unavailableGateway
}

func (c unavailableCollection) InsertOne(context.Context, any) (string, error) {
	return "", c.gateway.err()
}

func (c unavailableCollection) FindOne(context.Context, Filter, any) error {
	return c.gateway.err()
}

func (c unavailableCollection) Find(context.Context, Filter, FindOptions) (Cursor, error) {
	return nil, c.gateway.err()
}
