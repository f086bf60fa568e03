// Package store provides the document store backing every entity
// collection. It operates on named collections of schemaless documents;
// each document is assigned an opaque identifier at insertion time.
package store

import (
	"context"
	"errors"
)

// Doc is one schemaless document. Documents returned by the store carry
// their identifier under the IDKey field.
type Doc = map[string]any

// IDKey is the document field holding the store-generated identifier.
const IDKey = "_id"

var (
	// ErrNotFound is returned when an id does not resolve to a document.
	ErrNotFound = errors.New("document not found")

	// ErrInvalidID is returned when an id is not a well-formed store key.
	ErrInvalidID = errors.New("invalid document id")
)

// TextSearch matches documents where at least one of Fields contains
// Query as a case-insensitive substring.
type TextSearch struct {
	Query  string
	Fields []string
}

// Filter is a backend-agnostic list filter. The zero Filter matches
// every document in a collection. Equals entries are ANDed together;
// Text, when set, is ANDed with them.
type Filter struct {
	Equals map[string]string
	Text   *TextSearch
}

// Store is the interface every document store backend implements.
type Store interface {
	// Insert persists doc into collection and returns the generated id.
	Insert(ctx context.Context, collection string, doc Doc) (string, error)

	// Find returns up to limit documents matching f, in insertion order.
	// limit <= 0 means no cap.
	Find(ctx context.Context, collection string, f Filter, limit int) ([]Doc, error)

	// FindOne returns the document with the given id, ErrInvalidID if the
	// id is malformed, or ErrNotFound if no document has it.
	FindOne(ctx context.Context, collection, id string) (Doc, error)

	// UpdateField sets one top-level field of an existing document.
	UpdateField(ctx context.Context, collection, id, field string, value any) error
}
