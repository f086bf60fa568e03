package supplies

import (
	"artflow-backend/internal/store"

	"github.com/gin-gonic/gin"
)

// catalogItem shapes a stored supply item for the catalog list.
func catalogItem(d store.Doc) gin.H {
	return gin.H{
		"id":        d[store.IDKey],
		"title":     d["title"],
		"brand":     d["brand"],
		"price":     d["price"],
		"currency":  store.String(d, "currency", "USD"),
		"stock":     store.Int(d, "stock", 0),
		"image_url": d["image_url"],
		"category":  d["category"],
	}
}
