package posts

import (
	"strconv"

	"artflow-backend/internal/store"

	"github.com/gin-gonic/gin"
)

const defaultLimit = 20

// feedItem shapes a stored post for the community feed.
func feedItem(d store.Doc) gin.H {
	return gin.H{
		"id":          d[store.IDKey],
		"author_name": d["author_name"],
		"content":     d["content"],
		"image_url":   d["image_url"],
		"tags":        store.StringList(d, "tags"),
		"likes":       store.Int(d, "likes", 0),
	}
}

func listLimit(c *gin.Context, fallback int) int {
	n, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(fallback)))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
