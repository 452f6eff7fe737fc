package redis

import (
	"context"

	"github.com/redis/rueidis"

	"github.com/Baterdene23/yellbook/internal/db"
)

// Directory entries are stored as whole RedisJSON documents written at the
// root path. rueidis has no typed builder for the RedisJSON module
// commands, hence Arbitrary.

// JSONSet stores data as the complete document at key.
func (s *Store) JSONSet(ctx context.Context, key string, data []byte) error {
	cmd := s.b().Arbitrary("JSON.SET").Keys(key).Args("$", string(data)).Build()
	if err := s.do(ctx, cmd).Error(); err != nil {
		return &db.Error{Op: db.OpJSONSet, Err: err}
	}
	return nil
}

// JSONGet retrieves the document at key. Without paths the whole document
// comes back; with paths Redis returns an object keyed by path, each value
// the array of matches (empty when the path matches nothing). Returns
// db.ErrKeyNotFound when the key is absent.
func (s *Store) JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error) {
	cmd := s.b().Arbitrary("JSON.GET").Keys(key).Args(paths...).Build()
	raw, err := s.do(ctx, cmd).ToString()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, db.ErrKeyNotFound
		}
		return nil, &db.Error{Op: db.OpJSONGet, Err: err}
	}
	if raw == "" {
		return nil, db.ErrKeyNotFound
	}
	return []byte(raw), nil
}
