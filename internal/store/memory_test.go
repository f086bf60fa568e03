package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryInsertFindOne(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	id, err := m.Insert(ctx, "artwork", Doc{"title": "Nocturne"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	doc, err := m.FindOne(ctx, "artwork", id)
	require.NoError(t, err)
	assert.Equal(t, "Nocturne", doc["title"])
	assert.Equal(t, id, doc[IDKey])

	// other collections do not see the document
	_, err = m.FindOne(ctx, "post", id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryFindOneBadID(t *testing.T) {
	m := NewMemory()
	_, err := m.FindOne(context.Background(), "post", "not-a-uuid")
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestMemoryFindEqualsFilter(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	for _, cat := range []string{"Brushes", "Canvas", "Brushes"} {
		_, err := m.Insert(ctx, "supplyitem", Doc{"category": cat})
		require.NoError(t, err)
	}

	docs, err := m.Find(ctx, "supplyitem", Filter{Equals: map[string]string{"category": "Brushes"}}, 0)
	require.NoError(t, err)
	assert.Len(t, docs, 2)
}

func TestMemoryFindTextFilter(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	_, err := m.Insert(ctx, "artwork", Doc{"title": "Morning Light", "medium": "Oil on canvas"})
	require.NoError(t, err)
	_, err = m.Insert(ctx, "artwork", Doc{"title": "Watercolor Study", "medium": "Watercolor"})
	require.NoError(t, err)

	f := Filter{Text: &TextSearch{Query: "oil", Fields: []string{"title", "description", "medium"}}}
	docs, err := m.Find(ctx, "artwork", f, 0)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Morning Light", docs[0]["title"])
}

func TestMemoryFindLimitAndOrder(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	for i, title := range []string{"one", "two", "three"} {
		_, err := m.Insert(ctx, "post", Doc{"content": title, "n": i})
		require.NoError(t, err)
	}

	docs, err := m.Find(ctx, "post", Filter{}, 2)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	// insertion order
	assert.Equal(t, "one", docs[0]["content"])
	assert.Equal(t, "two", docs[1]["content"])
}

func TestMemoryUpdateField(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	id, err := m.Insert(ctx, "post", Doc{"likes": 4})
	require.NoError(t, err)

	require.NoError(t, m.UpdateField(ctx, "post", id, "likes", 5))

	doc, err := m.FindOne(ctx, "post", id)
	require.NoError(t, err)
	assert.Equal(t, 5, doc["likes"])

	assert.ErrorIs(t, m.UpdateField(ctx, "post", "not-a-uuid", "likes", 1), ErrInvalidID)
}

func TestMemoryFindReturnsCopies(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	id, err := m.Insert(ctx, "post", Doc{"likes": 4})
	require.NoError(t, err)

	doc, err := m.FindOne(ctx, "post", id)
	require.NoError(t, err)
	doc["likes"] = 99

	again, err := m.FindOne(ctx, "post", id)
	require.NoError(t, err)
	assert.Equal(t, 4, again["likes"])
}
