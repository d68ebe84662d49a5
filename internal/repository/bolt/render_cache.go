// Package bolt keeps rendered documents in an embedded bbolt file, for
// single-instance deployments without a database.
package bolt

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/YusovID/review-dashboard/internal/apperrors"
	"github.com/YusovID/review-dashboard/internal/domain"
	bolt "go.etcd.io/bbolt"
)

var bucketRenderedDocuments = []byte("rendered_documents")

type RenderCache struct {
	db *bolt.DB
}

// Open opens or creates the cache file at path.
func Open(path string) (*RenderCache, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open cache db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketRenderedDocuments)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to init cache buckets: %w", err)
	}

	return &RenderCache{db: db}, nil
}

func (c *RenderCache) Close() error {
	return c.db.Close()
}

func (c *RenderCache) Get(_ context.Context, key string) (domain.RenderedDocument, error) {
	var doc domain.RenderedDocument

	err := c.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketRenderedDocuments).Get([]byte(key))
		if data == nil {
			return fmt.Errorf("%w: rendered document '%s'", apperrors.ErrNotFound, key)
		}

		return json.Unmarshal(data, &doc)
	})
	if err != nil {
		return domain.RenderedDocument{}, err
	}

	return doc, nil
}

func (c *RenderCache) Put(_ context.Context, doc domain.RenderedDocument) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode rendered document: %w", err)
	}

	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketRenderedDocuments).Put([]byte(doc.Key), data)
	})
}
