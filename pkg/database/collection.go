package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"reflect"
	"sync"

	"github.com/xdpzq/devcore/pkg/logger"
)

// Query matches records whose JSON fields equal every listed value.
// Equality only; no range or partial matching.
type Query map[string]any

// Collection emulates a document-database collection over a key-value
// substrate. Every mutation persists the full collection content.
type Collection[T any] struct {
	mu   sync.Mutex
	name string
	kv   KV
}

func NewCollection[T any](kv KV, name string) *Collection[T] {
	return &Collection[T]{name: name, kv: kv}
}

func (c *Collection[T]) key() string { return "devcore:" + c.name }

// load reads the full collection. An unreadable payload degrades to an
// empty collection so the system stays bootable.
func (c *Collection[T]) load(ctx context.Context) ([]T, error) {
	payload, ok, err := c.kv.Get(ctx, c.key())
	if err != nil {
		return nil, fmt.Errorf("loading collection %s: %w", c.name, err)
	}
	if !ok {
		return nil, nil
	}

	var records []T
	if err := json.Unmarshal(payload, &records); err != nil {
		slog.Warn("discarding malformed collection payload", "collection", c.name, logger.Err(err))
		return nil, nil
	}
	return records, nil
}

func (c *Collection[T]) save(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding collection %s: %w", c.name, err)
	}
	if err := c.kv.Set(ctx, c.key(), payload); err != nil {
		return fmt.Errorf("persisting collection %s: %w", c.name, err)
	}
	return nil
}

// Find returns all records matching query. An empty query returns all.
func (c *Collection[T]) Find(ctx context.Context, query Query) ([]T, error) {
	all, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	if len(query) == 0 {
		return all, nil
	}

	var out []T
	for _, record := range all {
		if matches(record, query) {
			out = append(out, record)
		}
	}
	return out, nil
}

// FindOne returns the first match. Absence is signalled by found=false,
// not by an error.
func (c *Collection[T]) FindOne(ctx context.Context, query Query) (*T, bool, error) {
	results, err := c.Find(ctx, query)
	if err != nil {
		return nil, false, err
	}
	if len(results) == 0 {
		return nil, false, nil
	}
	return &results[0], true, nil
}

// InsertOne appends a record. Uniqueness is the caller's responsibility.
func (c *Collection[T]) InsertOne(ctx context.Context, record T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	all, err := c.load(ctx)
	if err != nil {
		return err
	}
	return c.save(ctx, append(all, record))
}

// ReplaceOne replaces the first matching record wholesale and reports
// whether a match was found.
func (c *Collection[T]) ReplaceOne(ctx context.Context, query Query, record T) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	all, err := c.load(ctx)
	if err != nil {
		return false, err
	}
	for i := range all {
		if matches(all[i], query) {
			all[i] = record
			return true, c.save(ctx, all)
		}
	}
	return false, nil
}

// DeleteOne removes the first matching record and reports whether a match
// was found.
func (c *Collection[T]) DeleteOne(ctx context.Context, query Query) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	all, err := c.load(ctx)
	if err != nil {
		return false, err
	}
	for i := range all {
		if matches(all[i], query) {
			all = append(all[:i], all[i+1:]...)
			return true, c.save(ctx, all)
		}
	}
	return false, nil
}

// OverwriteAll replaces the entire collection content.
func (c *Collection[T]) OverwriteAll(ctx context.Context, records []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.save(ctx, records)
}

// matches compares the JSON form of a record against the query so numeric
// and nested values line up regardless of the Go types involved.
func matches[T any](record T, query Query) bool {
	raw, err := json.Marshal(record)
	if err != nil {
		return false
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return false
	}

	for field, want := range query {
		if !reflect.DeepEqual(doc[field], normalize(want)) {
			return false
		}
	}
	return true
}

// normalize round-trips a query value through JSON to mirror the record
// representation (ints become float64, structs become maps).
func normalize(v any) any {
	raw, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return v
	}
	return out
}
