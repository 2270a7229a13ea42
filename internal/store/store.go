// internal/store/store.go
//
// Write-gated settings store.
//
// Context
// -------
// Every write passes through the rule registry before it reaches SQL: the
// rule for the key judges the proposed raw value, and a rejection never
// touches the database.  The registry has no opinion about unregistered
// keys; that policy lives here, configured per deployment (reject by
// default, accept for fleets that carry vendor keys the table does not
// know).
//
// Reads go through a small LRU so hot settings cost no round-trip, with a
// singleflight group collapsing concurrent misses for the same key into
// one query.
//
// Schema
// ------
//	CREATE TABLE system_setting (
//	    name       VARCHAR(191) NOT NULL PRIMARY KEY,
//	    value      TEXT NULL,
//	    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
//	                ON UPDATE CURRENT_TIMESTAMP
//	);

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/singleflight"

	"github.com/yanizio/settingsd/internal/cache"
	"github.com/yanizio/settingsd/internal/metrics"
	"github.com/yanizio/settingsd/internal/registry"
)

// Sentinel errors.  All of them are caller errors, not rule errors; rule
// evaluation itself only ever yields true or false.
var (
	ErrInvalidValue = errors.New("store: value rejected by rule")
	ErrUnknownKey   = errors.New("store: key has no registered rule")
	ErrNotFound     = errors.New("store: setting not found")
)

// Policy decides what happens to writes for keys the registry does not
// know.
type Policy int

const (
	// PolicyReject refuses writes to unregistered keys.
	PolicyReject Policy = iota
	// PolicyAccept lets writes to unregistered keys through unvalidated.
	PolicyAccept
)

// ParsePolicy maps the config tokens "reject" and "accept".
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "reject":
		return PolicyReject, nil
	case "accept":
		return PolicyAccept, nil
	default:
		return PolicyReject, fmt.Errorf("store: unknown policy %q", s)
	}
}

// Setting is one persisted key/value row.  Value is nil when the setting
// is stored as NULL.
type Setting struct {
	Key   string  `db:"name"  json:"key"`
	Value *string `db:"value" json:"value"`
}

// Store gates writes through the registry and persists them in MySQL.
// Safe for concurrent use.
type Store struct {
	db     *sqlx.DB
	reg    *registry.Registry
	policy Policy

	cacheMu sync.Mutex
	cache   *cache.LRU
	sfg     singleflight.Group
}

// New constructs a Store.  cacheSize bounds the in-memory read cache.
func New(db *sqlx.DB, reg *registry.Registry, policy Policy, cacheSize int) *Store {
	return &Store{
		db:     db,
		reg:    reg,
		policy: policy,
		cache:  cache.New(cacheSize),
	}
}

// Put validates and persists a proposed value.  A nil value stores NULL.
// Returns ErrUnknownKey or ErrInvalidValue when the write is refused; the
// database is not touched in either case.
func (s *Store) Put(ctx context.Context, key string, value *string) error {
	rule, ok := s.reg.Lookup(key)
	switch {
	case !ok:
		metrics.UnknownKeyTotal.Inc()
		if s.policy == PolicyReject {
			return fmt.Errorf("%w: %s", ErrUnknownKey, key)
		}
	case !rule.Validate(value):
		metrics.ValidationRejectTotal.Inc()
		return fmt.Errorf("%w: %s", ErrInvalidValue, key)
	default:
		metrics.ValidationAcceptTotal.Inc()
	}

	var ns sql.NullString
	if value != nil {
		ns = sql.NullString{String: *value, Valid: true}
	}
	_, err := s.db.ExecContext(ctx, `
	    INSERT INTO system_setting (name, value) VALUES (?, ?)
	    ON DUPLICATE KEY UPDATE value = VALUES(value)`, key, ns)
	if err != nil {
		return fmt.Errorf("store: put %s: %w", key, err)
	}
	metrics.SettingWriteTotal.Inc()

	// Cache a copy; the caller keeps ownership of its pointer.
	var cached *string
	if value != nil {
		v := *value
		cached = &v
	}
	s.cacheMu.Lock()
	s.cache.Add(key, cached)
	s.cacheMu.Unlock()
	return nil
}

// Get returns the stored value for key, nil meaning the setting is stored
// as NULL.  Returns ErrNotFound when no row exists.
func (s *Store) Get(ctx context.Context, key string) (*string, error) {
	s.cacheMu.Lock()
	if v, ok := s.cache.Get(key); ok {
		s.cacheMu.Unlock()
		metrics.CacheHitTotal.Inc()
		return v, nil
	}
	s.cacheMu.Unlock()

	v, err, _ := s.sfg.Do(key, func() (any, error) {
		var ns sql.NullString
		err := s.db.GetContext(ctx, &ns,
			`SELECT value FROM system_setting WHERE name = ?`, key)
		if errors.Is(err, sql.ErrNoRows) {
			return (*string)(nil), fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		if err != nil {
			return (*string)(nil), fmt.Errorf("store: get %s: %w", key, err)
		}
		metrics.SettingReadTotal.Inc()

		var out *string
		if ns.Valid {
			out = &ns.String
		}
		s.cacheMu.Lock()
		s.cache.Add(key, out)
		s.cacheMu.Unlock()
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*string), nil
}

// Delete removes a setting.  Returns ErrNotFound when no row existed.
func (s *Store) Delete(ctx context.Context, key string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM system_setting WHERE name = ?`, key)
	if err != nil {
		return fmt.Errorf("store: delete %s: %w", key, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: delete %s: %w", key, err)
	}

	s.cacheMu.Lock()
	s.cache.Remove(key)
	s.cacheMu.Unlock()

	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return nil
}

// List returns all persisted settings ordered by key.
func (s *Store) List(ctx context.Context) ([]Setting, error) {
	var out []Setting
	err := s.db.SelectContext(ctx, &out,
		`SELECT name, value FROM system_setting ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	return out, nil
}
