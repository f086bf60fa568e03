package orders

import (
	"errors"
	"net/http"

	"artflow-backend/database"
	"artflow-backend/internal/domain/records"

	"github.com/gin-gonic/gin"
)

// POST /orders
func CreateOrder(c *gin.Context) {
	var input map[string]any
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Malformed JSON body"})
		return
	}

	// The subtotal is computed server-side from the caller-supplied
	// lines; the per-line price is trusted but never stored. Status is
	// always the initial "pending".
	if raw, ok := input["items"]; ok && raw != nil {
		lines, verr := parseOrderItems(raw)
		if verr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": verr.Error()})
			return
		}
		input["items"] = records.OrderLines(lines)
		input["subtotal"] = records.OrderSubtotal(lines)
	}
	delete(input, "status")

	rec, err := records.Validate(records.KindOrder, input)
	if err != nil {
		var verr *records.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": verr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	id, err := database.Docs.Insert(c.Request.Context(), records.KindOrder.Collection(), rec)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       id,
		"message":  "Order placed",
		"subtotal": rec["subtotal"],
	})
}
