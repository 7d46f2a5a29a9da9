// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomtom215/menupick/internal/config"
	"github.com/tomtom215/menupick/internal/logging"
)

// Keys the client stores.
const (
	KeyToken            = "token"
	KeyNickname         = "nickname"
	KeyEmail            = "email"
	KeyKakaoAccessToken = "kakao_access_token"
)

// ErrClosed is returned by every operation on a closed store.
var ErrClosed = errors.New("storage closed")

// Store is device-local key/value storage.
// Get reports ok=false for a missing key; that is not an error.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

// Open returns the store selected by cfg.Driver.
func Open(cfg config.StorageConfig, logger *logging.Logger) (Store, error) {
	switch cfg.Driver {
	case "", config.StorageDriverMemory:
		return NewMemoryStore(), nil
	case config.StorageDriverBadger:
		return OpenBadgerStore(cfg.Path, logger)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// BearerToken reads the app token from a Store. It satisfies the
// transport's TokenSource.
type BearerToken struct {
	Store Store
}

// Token returns the stored bearer token, or "" when none is stored.
func (b BearerToken) Token(ctx context.Context) (string, error) {
	token, _, err := b.Store.Get(ctx, KeyToken)
	return token, err
}
