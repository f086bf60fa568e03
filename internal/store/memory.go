package store

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Memory is an in-process Store keeping documents per collection in
// insertion order. Tests swap it in for the Postgres backend.
type Memory struct {
	mu   sync.Mutex
	byID map[string]Doc
	cols map[string][]Doc
}

func NewMemory() *Memory {
	return &Memory{
		byID: map[string]Doc{},
		cols: map[string][]Doc{},
	}
}

func (m *Memory) Insert(ctx context.Context, collection string, doc Doc) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	stored := make(Doc, len(doc)+1)
	for k, v := range doc {
		stored[k] = v
	}
	stored[IDKey] = id
	m.cols[collection] = append(m.cols[collection], stored)
	m.byID[collection+"/"+id] = stored
	return id, nil
}

func (m *Memory) Find(ctx context.Context, collection string, f Filter, limit int) ([]Doc, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var docs []Doc
	for _, doc := range m.cols[collection] {
		if !matches(doc, f) {
			continue
		}
		docs = append(docs, copyDoc(doc))
		if limit > 0 && len(docs) == limit {
			break
		}
	}
	return docs, nil
}

func (m *Memory) FindOne(ctx context.Context, collection, id string) (Doc, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.byID[collection+"/"+id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyDoc(doc), nil
}

func (m *Memory) UpdateField(ctx context.Context, collection, id, field string, value any) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.byID[collection+"/"+id]
	if !ok {
		return ErrNotFound
	}
	doc[field] = value
	return nil
}

func matches(doc Doc, f Filter) bool {
	for field, want := range f.Equals {
		got, ok := doc[field].(string)
		if !ok || got != want {
			return false
		}
	}
	if f.Text != nil && f.Text.Query != "" {
		needle := strings.ToLower(f.Text.Query)
		hit := false
		for _, field := range f.Text.Fields {
			if s, ok := doc[field].(string); ok && strings.Contains(strings.ToLower(s), needle) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	return true
}

func copyDoc(doc Doc) Doc {
	out := make(Doc, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
