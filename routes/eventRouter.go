package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/TechnovaTech/mookala-main-sub001/controllers"
	"github.com/TechnovaTech/mookala-main-sub001/middleware"
)

func EventRoutes(incomingRoutes *gin.Engine) {
	// Public routes - no authentication required
	incomingRoutes.GET("/events", controllers.GetAllEvents())
	incomingRoutes.GET("/events/:event_id", controllers.GetEventByID())
	incomingRoutes.GET("/events/user/:phone", controllers.GetEventsByUserPhone())

	// Artist booking response - the phone is supplied by the caller,
	// no session binding
	incomingRoutes.POST("/artist/booking-response", controllers.ArtistBookingResponse())

	// Protected routes - authentication required
	incomingRoutes.POST("/events", middleware.Authentication(), controllers.CreateEvent())
	incomingRoutes.DELETE("/events/:event_id", middleware.Authentication(), controllers.DeleteEvent())
}
