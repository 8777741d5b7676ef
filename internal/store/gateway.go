// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store is the persistence layer of the application.
//
// Documents live in named collections behind a [Gateway]. Three backends
// implement it (MongoDB, PostgreSQL JSONB and SQLite JSON) plus a degraded
// gateway used when no store could be reached at startup, whose every
// operation fails fast with [ErrStoreUnavailable]. Identifiers leaving this
// package are always strings.
//
// Repositories ([UserRepository], [BlogPostRepository],
// [ContactMessageRepository]) are built on top of a Gateway and grouped in
// [Storages].
package store

import "context"

//go:generate mockgen -source=gateway.go -destination=../mock/gateway_mock.go -package=mock

// Gateway gives access to named collections of one document store.
type Gateway interface {
	// Collection returns a handle to the named collection. It never fails;
	// errors surface from the handle's operations.
	Collection(name string) Collection

	// Probe reports reachability and up to 10 collection names.
	Probe(ctx context.Context) ProbeResult

	// Close releases connections held by the gateway.
	Close(ctx context.Context) error
}

// Collection is a named set of documents. Documents are encoded through
// their `bson` struct tags by every backend.
type Collection interface {
	// InsertOne stores doc and returns its new identifier.
	// Returns ErrDuplicateKey when a unique index rejects the document.
	InsertOne(ctx context.Context, doc any) (string, error)

	// FindOne decodes the first document matching filter into out.
	// Returns ErrNotFound when nothing matches.
	FindOne(ctx context.Context, filter Filter, out any) error

	// Find returns a lazy cursor over the documents matching filter, ordered
	// by opts.Sort and then by insertion order.
	Find(ctx context.Context, filter Filter, opts FindOptions) (Cursor, error)
}

// Cursor is a finite, forward-only sequence of documents. Once Next has
// returned false it keeps returning false.
type Cursor interface {
	Next(ctx context.Context) bool
	Decode(out any) error
	Err() error
	Close(ctx context.Context) error
}

// Filter matches documents whose top-level fields equal the given string
// values. An empty filter matches every document.
type Filter map[string]any

// Direction is a sort direction.
type Direction int

const (
	Ascending  Direction = 1
	Descending Direction = -1
)

// SortKind tells backends without native typed ordering how to compare the
// sort field.
type SortKind int

const (
	KindText SortKind = iota
	KindTime
)

// SortKey orders documents by one top-level field. Missing or null values
// order lowest: first when ascending, last when descending.
type SortKey struct {
	Field     string
	Direction Direction
	Kind      SortKind
}

// FindOptions controls Find. A zero Limit means no limit.
type FindOptions struct {
	Sort  *SortKey
	Limit int64
}

// ProbeState summarizes the store's health.
type ProbeState int

const (
	// ProbeUnavailable means the gateway never connected.
	ProbeUnavailable ProbeState = iota
	// ProbeDegraded means the gateway connected but the store failed now.
	ProbeDegraded
	// ProbeHealthy means collections could be listed.
	ProbeHealthy
)

// MaxProbeCollections bounds ProbeResult.Collections.
const MaxProbeCollections = 10

// ProbeResult is the outcome of Gateway.Probe.
type ProbeResult struct {
	State ProbeState
	// Backend names the backend ("mongodb", "postgres", "sqlite" or "none").
	Backend string
	// Database names the database or file the gateway is bound to.
	Database string
	// Collections holds at most MaxProbeCollections names, sorted.
	Collections []string
	// Err is set unless State is ProbeHealthy.
	Err error
}
