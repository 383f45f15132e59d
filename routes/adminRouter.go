package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/TechnovaTech/mookala-main-sub001/controllers"
	"github.com/TechnovaTech/mookala-main-sub001/middleware"
)

func AdminRoutes(incomingRoutes *gin.Engine) {
	admin := incomingRoutes.Group("/admin", middleware.Authentication(), middleware.AdminOnly())

	// Artist management
	admin.POST("/artists", controllers.CreateArtist())
	admin.PUT("/artists/:artist_id", controllers.UpdateArtist())
	admin.DELETE("/artists/:artist_id", controllers.DeleteArtist())
	admin.POST("/artists/import", controllers.ImportArtists())
	admin.POST("/artists/:artist_id/image", controllers.UploadArtistImage())

	// Event review queue
	admin.GET("/events/pending", controllers.GetPendingEvents())
	admin.POST("/events/:event_id/approve", controllers.ApproveEvent())
	admin.POST("/events/:event_id/reject", controllers.RejectEvent())
	admin.POST("/events/:event_id/banner", controllers.UploadEventBanner())

	// Dashboard
	admin.GET("/stats", controllers.GetPlatformStats())
}
