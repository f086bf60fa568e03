package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"artflow-backend/database"
	"artflow-backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	database.Docs = store.NewMemory()

	r := gin.New()
	RegisterRoutes(r)
	return r
}

func TestRootAndHealth(t *testing.T) {
	r := setup(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ArtFlow backend running")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
}

// End-to-end pass through the registered routes: create through the
// sanitizing write group, read back through the list endpoint.
func TestCreateThenListThroughRouter(t *testing.T) {
	r := setup(t)

	payload := map[string]any{
		"title":     "<script>x</script>Nocturne",
		"artist_id": "artist-1",
	}
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(payload))
	req := httptest.NewRequest(http.MethodPost, "/artworks", &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/artworks", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	items := body["items"].([]any)
	require.Len(t, items, 1)
	// markup stripped by the sanitize middleware before validation
	assert.Equal(t, "Nocturne", items[0].(map[string]any)["title"])
}
