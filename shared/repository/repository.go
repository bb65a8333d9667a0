package repository

import (
	"bestevents/infras/otel"
	"bestevents/shared/constant"
	"bestevents/shared/failure"
	"bestevents/shared/metrics"
	"bestevents/shared/persistence"
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Entry is one record together with its key.
type Entry[T any] struct {
	Key    int
	Record T
}

// Collection is an int-keyed set of records of one entity type.
//
// The whole collection is loaded once when it is created and written back through
// its adapter after every mutation. Keys come from a high-water mark that only grows,
// so a removed key is never handed out again, not even after a restart.
type Collection[T any] struct {
	mu      sync.RWMutex
	entity  string
	name    string
	adapter *persistence.Adapter[T]
	otel    otel.Otel
	metrics *metrics.Metrics
	records map[int]T
	order   []int
	lastKey int
}

// NewCollection loads the named collection through adapter.
// A load failure other than a missing resource is returned as an unavailable failure.
func NewCollection[T any](ctx context.Context, entity, name string, adapter *persistence.Adapter[T], otl otel.Otel, m *metrics.Metrics) (*Collection[T], error) {
	ctx, scope := otl.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Load", constant.OtelRepositoryScopeName, entity))
	defer scope.End()

	snapshot, err := adapter.Load(ctx, name)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str(constant.OtelCollectionAttributeKey, name).Msg("failed to load collection")

		return nil, failure.Unavailable(fmt.Errorf("failed to load %s: %w", name, err)) // nolint:wrapcheck
	}

	order := slices.Sorted(maps.Keys(snapshot.Records))

	lastKey := snapshot.LastKey
	if len(order) > 0 {
		lastKey = max(lastKey, order[len(order)-1])
	}

	c := &Collection[T]{
		entity:  entity,
		name:    name,
		adapter: adapter,
		otel:    otl,
		metrics: m,
		records: snapshot.Records,
		order:   order,
		lastKey: lastKey,
	}

	m.Records(name, len(order))

	log.Info().
		Str(constant.OtelCollectionAttributeKey, name).
		Int("records", len(order)).
		Int("last_key", lastKey).
		Msg("Collection loaded")

	return c, nil
}

func (c *Collection[T]) Name() string {
	return c.name
}

// NextKey returns the key the next added record should take.
func (c *Collection[T]) NextKey() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.lastKey + 1
}

// Insert stores the record built for the next key in a single step, so that
// concurrent callers never receive the same key.
func (c *Collection[T]) Insert(ctx context.Context, build func(key int) T) (key int, record T, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Insert", constant.OtelRepositoryScopeName, c.entity))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	c.mu.Lock()
	defer c.mu.Unlock()

	key = c.lastKey + 1
	record = build(key)
	c.put(key, record)
	c.metrics.Mutation(c.name, metrics.OperationAdd)

	scope.SetAttribute(constant.OtelKeyAttributeKey, key)

	return key, record, c.persist(ctx)
}

// Add stores record under key, replacing any record already held there.
func (c *Collection[T]) Add(ctx context.Context, key int, record T) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Add", constant.OtelRepositoryScopeName, c.entity))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelKeyAttributeKey, key)

	if key <= 0 {
		return failure.InvalidIDParam
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.put(key, record)
	c.metrics.Mutation(c.name, metrics.OperationAdd)

	return c.persist(ctx)
}

// Remove deletes the record under key. An absent key fails with not found and changes nothing.
func (c *Collection[T]) Remove(ctx context.Context, key int) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Remove", constant.OtelRepositoryScopeName, c.entity))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelKeyAttributeKey, key)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.records[key]; !ok {
		return failure.NotFoundKey(c.entity, key) // nolint:wrapcheck
	}

	delete(c.records, key)
	c.order = slices.DeleteFunc(c.order, func(k int) bool { return k == key })
	c.metrics.Mutation(c.name, metrics.OperationRemove)

	return c.persist(ctx)
}

// Update applies mutate to the record under key. An absent key fails with not found
// and mutate is not called. A mutate error leaves the record untouched.
func (c *Collection[T]) Update(ctx context.Context, key int, mutate func(record *T) error) (record T, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Update", constant.OtelRepositoryScopeName, c.entity))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelKeyAttributeKey, key)

	c.mu.Lock()
	defer c.mu.Unlock()

	current, ok := c.records[key]
	if !ok {
		return record, failure.NotFoundKey(c.entity, key) // nolint:wrapcheck
	}

	if err = mutate(&current); err != nil {
		return record, err
	}

	c.records[key] = current
	c.metrics.Mutation(c.name, metrics.OperationUpdate)

	return current, c.persist(ctx)
}

// Get returns the record under key or a not found failure.
func (c *Collection[T]) Get(ctx context.Context, key int) (record T, err error) {
	_, scope := c.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Get", constant.OtelRepositoryScopeName, c.entity))
	defer scope.End()

	c.mu.RLock()
	defer c.mu.RUnlock()

	record, ok := c.records[key]
	if !ok {
		return record, failure.NotFoundKey(c.entity, key) // nolint:wrapcheck
	}

	return record, nil
}

func (c *Collection[T]) Exists(key int) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.records[key]

	return ok
}

// ListAll returns every record in insertion order. Records loaded from storage come first, by key.
func (c *Collection[T]) ListAll(ctx context.Context) []Entry[T] {
	_, scope := c.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.ListAll", constant.OtelRepositoryScopeName, c.entity))
	defer scope.End()

	c.mu.RLock()
	defer c.mu.RUnlock()

	entries := make([]Entry[T], 0, len(c.order))
	for _, key := range c.order {
		entries = append(entries, Entry[T]{Key: key, Record: c.records[key]})
	}

	return entries
}

func (c *Collection[T]) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.records)
}

// put must be called with the write lock held.
func (c *Collection[T]) put(key int, record T) {
	if _, ok := c.records[key]; !ok {
		c.order = append(c.order, key)
	}

	c.records[key] = record
	c.lastKey = max(c.lastKey, key)
}

// persist writes the whole collection. It must be called with the write lock held.
// A failed write keeps the in-memory change and reports an unavailable failure.
func (c *Collection[T]) persist(ctx context.Context) error {
	started := time.Now()

	err := c.adapter.Save(ctx, persistence.Snapshot[T]{
		Collection: c.name,
		LastKey:    c.lastKey,
		Records:    maps.Clone(c.records),
	})

	c.metrics.Persisted(c.name, started, err)
	c.metrics.Records(c.name, len(c.records))

	if err != nil {
		log.Warn().
			Err(err).
			Str(constant.OtelCollectionAttributeKey, c.name).
			Msg("collection changed in memory but could not be persisted")

		return failure.Unavailable(fmt.Errorf("failed to persist %s: %w", c.name, err)) // nolint:wrapcheck
	}

	return nil
}
