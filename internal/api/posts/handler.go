package posts

import (
	"errors"
	"net/http"

	"artflow-backend/database"
	"artflow-backend/internal/domain/records"
	"artflow-backend/internal/store"

	"github.com/gin-gonic/gin"
)

// POST /posts
func CreatePost(c *gin.Context) {
	var input map[string]any
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Malformed JSON body"})
		return
	}

	rec, err := records.Validate(records.KindPost, input)
	if err != nil {
		var verr *records.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": verr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	id, err := database.Docs.Insert(c.Request.Context(), records.KindPost.Collection(), rec)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "message": "Post created"})
}

// GET /posts?limit=
func ListPosts(c *gin.Context) {
	docs, err := database.Docs.Find(
		c.Request.Context(),
		records.KindPost.Collection(),
		store.Filter{},
		listLimit(c, defaultLimit),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	items := make([]gin.H, 0, len(docs))
	for _, d := range docs {
		items = append(items, feedItem(d))
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// POST /posts/like
//
// Read-then-write without compare-and-swap: two concurrent likes on the
// same post may count as one. Known limitation, delegated to the
// store's per-document atomicity only.
func LikePost(c *gin.Context) {
	var req LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PostID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "post_id is required"})
		return
	}

	ctx := c.Request.Context()
	collection := records.KindPost.Collection()

	doc, err := database.Docs.FindOne(ctx, collection, req.PostID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid post id"})
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"detail": "Post not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		}
		return
	}

	likes := store.Int(doc, "likes", 0) + 1
	if err := database.Docs.UpdateField(ctx, collection, req.PostID, "likes", likes); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": req.PostID, "likes": likes})
}
