// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package search

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/marquee/internal/metrics"
)

const detailKeyPrefix = "movie_details:"

// DetailStore caches fetched documents in an in-memory BadgerDB. Entries
// expire after the configured TTL; nothing is written to disk.
type DetailStore struct {
	db  *badger.DB
	ttl time.Duration
}

// NewDetailStore opens an in-memory store. A non-positive ttl keeps
// entries until Close.
func NewDetailStore(ttl time.Duration) (*DetailStore, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open detail store: %w", err)
	}
	return &DetailStore{db: db, ttl: ttl}, nil
}

// Get returns a cached document.
func (s *DetailStore) Get(id string) (*MovieDetails, bool, error) {
	var details MovieDetails

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(detailKeyPrefix + id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &details)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		metrics.RecordCacheMiss("movie_details")
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get movie details %s: %w", id, err)
	}

	metrics.RecordCacheHit("movie_details")
	return &details, true, nil
}

// Put stores a document under id.
func (s *DetailStore) Put(id string, details *MovieDetails) error {
	data, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("marshal movie details: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(detailKeyPrefix+id), data)
		if s.ttl > 0 {
			entry = entry.WithTTL(s.ttl)
		}
		if err := txn.SetEntry(entry); err != nil {
			return fmt.Errorf("set movie details: %w", err)
		}
		return nil
	})
}

// Delete removes a cached document. Missing ids are not an error.
func (s *DetailStore) Delete(id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(detailKeyPrefix + id))
	})
}

// Close releases the store.
func (s *DetailStore) Close() error {
	return s.db.Close()
}
