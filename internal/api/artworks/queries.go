package artworks

import (
	"strconv"

	"artflow-backend/internal/store"

	"github.com/gin-gonic/gin"
)

const defaultLimit = 20

// searchFields are the artwork fields matched by free-text search.
var searchFields = []string{"title", "description", "medium"}

// searchFilter matches artworks containing q as a case-insensitive
// substring of the title, description or medium. Empty q matches all.
func searchFilter(q string) store.Filter {
	if q == "" {
		return store.Filter{}
	}
	return store.Filter{Text: &store.TextSearch{Query: q, Fields: searchFields}}
}

func listLimit(c *gin.Context, fallback int) int {
	n, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(fallback)))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
