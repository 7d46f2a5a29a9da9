// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package storage

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/menupick/internal/logging"
)

// keyPrefix namespaces device values inside the Badger directory.
const keyPrefix = "device:"

// entry is the stored value.
type entry struct {
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BadgerStore is a Store persisted in a BadgerDB directory.
type BadgerStore struct {
	db     *badger.DB
	log    zerolog.Logger
	closed atomic.Bool
}

// OpenBadgerStore opens (or creates) the BadgerDB at path.
func OpenBadgerStore(path string, logger *logging.Logger) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil // Suppress BadgerDB logs

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db for device storage: %w", err)
	}

	log := logger.For(logging.CategoryStorage)
	log.Debug().Str("path", path).Msg("Opened device storage")
	return &BadgerStore{db: db, log: log}, nil
}

// Get returns the value stored under key and whether it exists.
func (s *BadgerStore) Get(ctx context.Context, key string) (string, bool, error) {
	if s.closed.Load() {
		return "", false, ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	var e entry
	found := false
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get %s: %w", key, err)
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &e)
		})
	})
	if err != nil {
		return "", false, err
	}
	return e.Value, found, nil
}

// Set stores value under key with the current time.
func (s *BadgerStore) Set(ctx context.Context, key, value string) error {
	if s.closed.Load() {
		return ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(entry{Value: value, UpdatedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(keyPrefix+key), data); err != nil {
			return fmt.Errorf("set %s: %w", key, err)
		}
		return nil
	})
}

// Delete removes keys in one transaction; missing keys are ignored.
func (s *BadgerStore) Delete(ctx context.Context, keys ...string) error {
	if s.closed.Load() {
		return ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		for _, key := range keys {
			if err := txn.Delete([]byte(keyPrefix + key)); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("delete %s: %w", key, err)
			}
		}
		return nil
	})
}

// Close closes the database. Later calls return ErrClosed.
func (s *BadgerStore) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	s.log.Debug().Msg("Closing device storage")
	return s.db.Close()
}
