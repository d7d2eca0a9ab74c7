// Package cache stores rendered calculation results keyed by a hash of the
// request inputs.
package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/finwise/fincalc/internal/config"
	"github.com/finwise/fincalc/internal/domain"
)

// keyVersion changes whenever the cached value layout changes
const keyVersion = "v1"

// Store is a string key/value cache
type Store interface {
	// Get returns the cached value. A missing key is (", false, nil).
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Key derives the cache key of a request. The request name does not affect
// the result and is left out.
func Key(req domain.CalculationRequest) (string, error) {
	req.Name = ""
	data, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("encode cache key: %w", err)
	}
	return fmt.Sprintf("fincalc:%s:%s:%016x", keyVersion, req.Calculator, xxhash.Sum64(data)), nil
}

// New builds the store selected by cfg.Backend
func New(cfg config.CacheConfig) (Store, error) {
	switch cfg.Backend {
	case "memory", "":
		return NewMemoryStore(cfg.TTL), nil
	case "redis":
		return NewRedisStore(cfg), nil
	case "none":
		return NopStore{}, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}

// NopStore never holds anything
type NopStore struct{}

func (NopStore) Get(context.Context, string) (string, bool, error) { return "", false, nil }
func (NopStore) Set(context.Context, string, string) error         { return nil }
func (NopStore) Close() error                                      { return nil }
