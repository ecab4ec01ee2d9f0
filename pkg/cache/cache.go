// Package cache binds one REST endpoint to one client-side store. Each
// operation is a single round-trip: the store's loading flag brackets the
// call, and the collection is touched only after the backend confirms
// success. Overlapping operations on the same id are tolerated, not
// sequenced: an update that resolves after a delete becomes a no-op.
package cache

import (
	"context"

	"go.uber.org/zap"

	"github.com/shopfront-io/shopfront/pkg/client"
	"github.com/shopfront-io/shopfront/pkg/store"
	"github.com/shopfront-io/shopfront/pkg/types"
)

// Cache is the operation layer for one entity type. Construct one per entity
// type; caches never share stores.
type Cache[T any] struct {
	client *client.Client
	store  *store.Store[T]
	path   string
	id     func(T) string
	log    *zap.Logger
}

// New creates a Cache for the collection at path. id extracts a record's
// identifier; it is also used to reject create responses without one. A nil
// logger disables logging.
func New[T any](c *client.Client, path string, id func(T) string, logger *zap.Logger, opts ...store.Option[T]) *Cache[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache[T]{
		client: c,
		store:  store.New(id, opts...),
		path:   path,
		id:     id,
		log:    logger.With(zap.String("entity", path)),
	}
}

// NewRecordCache creates a Cache of opaque Records for a standard entity
// type, with shallow field merge on update.
func NewRecordCache(c *client.Client, entity string, logger *zap.Logger) (*Cache[types.Record], error) {
	path, err := types.Endpoint(entity)
	if err != nil {
		return nil, err
	}
	return New(c, path, types.Record.ID, logger, store.WithMerge(types.MergeRecords)), nil
}

// Store exposes the underlying store for reads and subscriptions. Views must
// treat it as read-only; mutation stays inside this package.
func (c *Cache[T]) Store() *store.Store[T] { return c.store }

// FetchAll issues the collection GET and replaces the store's collection with
// the response. On failure the previous collection stays visible
// (stale-but-present) and only the store's error changes.
func (c *Cache[T]) FetchAll(ctx context.Context) error {
	c.store.Begin()
	records, err := client.FetchAll[T](ctx, c.client, c.path)
	if err != nil {
		c.log.Warn("fetch failed", zap.Error(err))
		c.store.End(err)
		return err
	}
	c.store.ApplyFetch(records)
	c.store.End(nil)
	return nil
}

// Create POSTs payload and appends the record the backend returns. A response
// without an id is a decode failure; the collection is left unchanged then.
func (c *Cache[T]) Create(ctx context.Context, payload any) (T, error) {
	c.store.Begin()
	record, err := client.Create[T](ctx, c.client, c.path, payload)
	if err != nil {
		c.log.Warn("create failed", zap.Error(err))
		c.store.End(err)
		return record, err
	}
	if c.id(record) == "" {
		err = &client.DecodeError{Reason: "created record has no id"}
		c.log.Warn("create failed", zap.Error(err))
		c.store.End(err)
		return record, err
	}
	c.store.ApplyCreate(record)
	c.store.End(nil)
	return record, nil
}

// Update PUTs patch to the record's endpoint and merges the result into the
// store. Merge policy: the server's response body wins when it contains the
// updated record; otherwise the sent patch is merged. Updating an id that is
// no longer in the collection is a no-op.
func (c *Cache[T]) Update(ctx context.Context, id string, patch T) (T, error) {
	c.store.Begin()
	record, ok, err := client.Update[T](ctx, c.client, c.path, id, patch)
	if err != nil {
		c.log.Warn("update failed", zap.String("id", id), zap.Error(err))
		c.store.End(err)
		return record, err
	}
	if !ok {
		record = patch
	}
	c.store.ApplyUpdate(id, record)
	c.store.End(nil)
	merged, _ := c.store.Get(id)
	return merged, nil
}

// Remove DELETEs the record's endpoint and drops it from the store. Removing
// an id the store no longer has is a no-op.
func (c *Cache[T]) Remove(ctx context.Context, id string) error {
	c.store.Begin()
	if err := client.Remove(ctx, c.client, c.path, id); err != nil {
		c.log.Warn("remove failed", zap.String("id", id), zap.Error(err))
		c.store.End(err)
		return err
	}
	c.store.ApplyDelete(id)
	c.store.End(nil)
	return nil
}
