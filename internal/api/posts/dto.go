package posts

type LikeRequest struct {
	PostID string `json:"post_id" binding:"required"`
}
