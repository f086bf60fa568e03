package supplies

import (
	"errors"
	"net/http"

	"artflow-backend/database"
	"artflow-backend/internal/domain/records"

	"github.com/gin-gonic/gin"
)

// POST /supplies
func CreateSupply(c *gin.Context) {
	var input map[string]any
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Malformed JSON body"})
		return
	}

	rec, err := records.Validate(records.KindSupplyItem, input)
	if err != nil {
		var verr *records.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": verr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	id, err := database.Docs.Insert(c.Request.Context(), records.KindSupplyItem.Collection(), rec)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "message": "Supply item created"})
}

// GET /supplies?category=&limit=
func ListSupplies(c *gin.Context) {
	docs, err := database.Docs.Find(
		c.Request.Context(),
		records.KindSupplyItem.Collection(),
		categoryFilter(c.Query("category")),
		listLimit(c, defaultLimit),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	items := make([]gin.H, 0, len(docs))
	for _, d := range docs {
		items = append(items, catalogItem(d))
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
