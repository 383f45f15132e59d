package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	helper "github.com/TechnovaTech/mookala-main-sub001/helpers"
)

// Use this for routes that REQUIRE login (e.g., POST /events)
func Authentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization format"})
			c.Abort()
			return
		}

		token := parts[1]
		claims, err := helper.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.Uid)
		c.Set("phone", claims.Phone)
		c.Set("user_type", claims.User_type)
		c.Next()
	}
}

// AdminOnly gates the back-office routes. Must run after Authentication().
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("user_type") != "ADMIN" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
