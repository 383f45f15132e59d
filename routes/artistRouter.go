package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/TechnovaTech/mookala-main-sub001/controllers"
)

func ArtistRoutes(incomingRoutes *gin.Engine) {
	// Public routes - no authentication required
	incomingRoutes.GET("/artists", controllers.GetAllArtists())
	incomingRoutes.GET("/artists/:artist_id", controllers.GetArtistByID())
	incomingRoutes.GET("/artists/follower-count", controllers.GetFollowerCount())

	// Follow toggle - the phone is supplied by the caller, no session binding
	incomingRoutes.POST("/artists/follow", controllers.FollowArtist())
}
