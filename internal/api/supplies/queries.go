package supplies

import (
	"strconv"

	"artflow-backend/internal/store"

	"github.com/gin-gonic/gin"
)

const defaultLimit = 50

// categoryFilter matches supply items by exact category; empty category
// matches all.
func categoryFilter(category string) store.Filter {
	if category == "" {
		return store.Filter{}
	}
	return store.Filter{Equals: map[string]string{"category": category}}
}

func listLimit(c *gin.Context, fallback int) int {
	n, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(fallback)))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
