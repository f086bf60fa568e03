package routes

import (
	adminapi "artflow-backend/internal/api/admin"
	"artflow-backend/internal/api/artworks"
	"artflow-backend/internal/api/inquiries"
	"artflow-backend/internal/api/orders"
	"artflow-backend/internal/api/posts"
	"artflow-backend/internal/api/supplies"
	"artflow-backend/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "ArtFlow backend running"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/test", adminapi.CheckDatabase)

	r.GET("/artworks", artworks.ListArtworks)
	r.GET("/supplies", supplies.ListSupplies)
	r.GET("/posts", posts.ListPosts)
	r.GET("/schema", adminapi.GetSchemaDefinitions)

	// ✅ Input sanitization on every public write route
	public := r.Group("/")
	public.Use(middleware.SanitizeInputMiddleware())

	public.POST("/artworks", artworks.CreateArtwork)
	public.POST("/inquiries", inquiries.CreateInquiry)
	public.POST("/supplies", supplies.CreateSupply)
	public.POST("/orders", orders.CreateOrder)
	public.POST("/posts", posts.CreatePost)
	public.POST("/posts/like", posts.LikePost)
}
