package artworks

import (
	"artflow-backend/internal/store"

	"github.com/gin-gonic/gin"
)

// showcaseCard shapes a stored artwork for the public showcase list: at
// most the first three images, no description, dimensions or location.
// Those stay reserved for a future single-item detail view.
func showcaseCard(d store.Doc) gin.H {
	images := store.StringList(d, "images")
	if len(images) > 3 {
		images = images[:3]
	}
	return gin.H{
		"id":           d[store.IDKey],
		"title":        d["title"],
		"artist_id":    d["artist_id"],
		"images":       images,
		"price":        d["price"],
		"currency":     store.String(d, "currency", "USD"),
		"is_available": store.Bool(d, "is_available", true),
		"medium":       d["medium"],
		"year":         d["year"],
	}
}
