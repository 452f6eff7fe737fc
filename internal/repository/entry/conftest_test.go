package entry

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Baterdene23/yellbook/internal/db"
	domentry "github.com/Baterdene23/yellbook/internal/domain/entry"
)

// memStore is an in-memory stand-in for the Redis JSON store.
type memStore struct {
	docs map[string][]byte

	jsonSetErr error
	jsonGetErr error
	scanErr    error
	existsErr  error
	delErr     error

	lastGetPaths []string
}

func newMemStore() *memStore {
	return &memStore{docs: make(map[string][]byte)}
}

func (m *memStore) JSONSet(_ context.Context, key string, data []byte) error {
	if m.jsonSetErr != nil {
		return m.jsonSetErr
	}
	m.docs[key] = append([]byte(nil), data...)
	return nil
}

func (m *memStore) JSONGet(_ context.Context, key string, paths ...string) ([]byte, error) {
	m.lastGetPaths = paths
	if m.jsonGetErr != nil {
		return nil, m.jsonGetErr
	}
	data, ok := m.docs[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	if len(paths) == 0 {
		return data, nil
	}
	return projectDoc(data, paths)
}

// projectDoc mimics a multi-path JSON.GET reply: an object keyed by path,
// each value the array of matches, empty when the field is absent.
func projectDoc(data []byte, paths []string) ([]byte, error) {
	var doc entryDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	matches := func(vals ...any) []any {
		out := make([]any, 0, len(vals))
		for _, v := range vals {
			switch t := v.(type) {
			case string:
				if t != "" {
					out = append(out, t)
				}
			case []float32:
				if len(t) > 0 {
					out = append(out, t)
				}
			case *time.Time:
				if t != nil {
					out = append(out, t)
				}
			}
		}
		return out
	}

	proj := make(map[string][]any, len(paths))
	for _, p := range paths {
		switch p {
		case "$.id":
			proj[p] = matches(doc.ID)
		case "$.name":
			proj[p] = matches(doc.Name)
		case "$.summary":
			proj[p] = matches(doc.Summary)
		case "$.embedding":
			proj[p] = matches(doc.Embedding)
		case "$.embedded_at":
			proj[p] = matches(doc.EmbeddedAt)
		default:
			proj[p] = []any{}
		}
	}
	return json.Marshal(proj)
}

func (m *memStore) Del(_ context.Context, keys ...string) error {
	if m.delErr != nil {
		return m.delErr
	}
	for _, k := range keys {
		delete(m.docs, k)
	}
	return nil
}

func (m *memStore) Exists(_ context.Context, key string) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	_, ok := m.docs[key]
	return ok, nil
}

func (m *memStore) Scan(_ context.Context, _ string) ([]string, error) {
	if m.scanErr != nil {
		return nil, m.scanErr
	}
	keys := make([]string, 0, len(m.docs))
	for k := range m.docs {
		keys = append(keys, k)
	}
	return keys, nil
}

func newTestRepo() (*Repo, *memStore) {
	ms := newMemStore()
	return New(ms), ms
}

func testEntry(t *testing.T, id, name string) domentry.Entry {
	t.Helper()
	e, err := domentry.New(id, domentry.Params{Name: name, Summary: "about " + name}, time.Now().UTC())
	if err != nil {
		t.Fatalf("domentry.New: %v", err)
	}
	return e
}

func embeddedTestEntry(t *testing.T, id, name string, vec []float32) domentry.Entry {
	t.Helper()
	return testEntry(t, id, name).WithEmbedding(vec, time.Now().UTC())
}

// rawDoc unmarshals a stored document for assertions.
func rawDoc(t *testing.T, ms *memStore, key string) entryDoc {
	t.Helper()
	data, ok := ms.docs[key]
	if !ok {
		t.Fatalf("key %s not stored", key)
	}
	var doc entryDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal stored doc: %v", err)
	}
	return doc
}
