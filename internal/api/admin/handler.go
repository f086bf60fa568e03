package admin

import (
	"net/http"

	"artflow-backend/database"
	"artflow-backend/internal/domain/records"
	"artflow-backend/internal/store"

	"github.com/gin-gonic/gin"
)

// GET /schema
//
// Exposes every entity kind's field names, in declared order, for the
// in-app DB viewer.
func GetSchemaDefinitions(c *gin.Context) {
	out := gin.H{}
	for _, kind := range records.Kinds() {
		out[string(kind)] = records.FieldNames(kind)
	}
	c.JSON(http.StatusOK, out)
}

// GET /test
//
// Connectivity diagnostic for dev setups: reports whether the backing
// database answers and which collections hold data.
func CheckDatabase(c *gin.Context) {
	resp := gin.H{
		"backend":           "running",
		"database":          "not available",
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if database.DB == nil {
		c.JSON(http.StatusOK, resp)
		return
	}

	sqlDB, err := database.DB.DB()
	if err != nil || sqlDB.Ping() != nil {
		c.JSON(http.StatusOK, resp)
		return
	}
	resp["database"] = "available"
	resp["connection_status"] = "Connected"

	var collections []string
	err = database.DB.Model(&store.Document{}).
		Distinct("collection").
		Limit(10).
		Pluck("collection", &collections).Error
	if err == nil {
		resp["collections"] = collections
		resp["database"] = "connected"
	}

	c.JSON(http.StatusOK, resp)
}
