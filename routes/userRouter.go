package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/TechnovaTech/mookala-main-sub001/controllers"
	"github.com/TechnovaTech/mookala-main-sub001/middleware"
)

func UserRoutes(incomingRoutes *gin.Engine) {
	// Public - the phone is supplied by the caller, no session binding
	incomingRoutes.GET("/user/follow-status", controllers.CheckFollowStatus())

	// Protected
	incomingRoutes.GET("/users/me", middleware.Authentication(), controllers.MyProfile())
}
