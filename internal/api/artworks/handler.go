package artworks

import (
	"errors"
	"net/http"

	"artflow-backend/database"
	"artflow-backend/internal/domain/records"

	"github.com/gin-gonic/gin"
)

// POST /artworks
func CreateArtwork(c *gin.Context) {
	var input map[string]any
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Malformed JSON body"})
		return
	}

	rec, err := records.Validate(records.KindArtwork, input)
	if err != nil {
		var verr *records.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": verr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	id, err := database.Docs.Insert(c.Request.Context(), records.KindArtwork.Collection(), rec)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "message": "Artwork created"})
}

// GET /artworks?q=&limit=
func ListArtworks(c *gin.Context) {
	docs, err := database.Docs.Find(
		c.Request.Context(),
		records.KindArtwork.Collection(),
		searchFilter(c.Query("q")),
		listLimit(c, defaultLimit),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	items := make([]gin.H, 0, len(docs))
	for _, d := range docs {
		items = append(items, showcaseCard(d))
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
