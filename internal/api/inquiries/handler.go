package inquiries

import (
	"errors"
	"net/http"

	"artflow-backend/database"
	"artflow-backend/internal/domain/records"

	"github.com/gin-gonic/gin"
)

// POST /inquiries
func CreateInquiry(c *gin.Context) {
	var input map[string]any
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Malformed JSON body"})
		return
	}

	// Inquiries always start open; callers cannot set the status.
	delete(input, "status")

	rec, err := records.Validate(records.KindInquiry, input)
	if err != nil {
		var verr *records.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": verr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	id, err := database.Docs.Insert(c.Request.Context(), records.KindInquiry.Collection(), rec)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "message": "Inquiry sent"})
}
