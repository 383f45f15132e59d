package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/TechnovaTech/mookala-main-sub001/database"
	"github.com/TechnovaTech/mookala-main-sub001/helpers"
	"github.com/TechnovaTech/mookala-main-sub001/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

var usercollection *mongo.Collection

func InitUserController() {
	usercollection = database.GetCollection("mookala", "users")
}

var validate = validator.New()

// HashPassword hashes a plain password
func HashPassword(password string) string {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		log.Panic(err)
	}
	return string(hashedPassword)
}

// VerifyPassword compares hashed password with plain text
func VerifyPassword(userPassword string, providedPassword string) (bool, string) {
	err := bcrypt.CompareHashAndPassword([]byte(userPassword), []byte(providedPassword))
	check := true
	msg := ""

	if err != nil {
		msg = "phone or password is incorrect"
		check = false
	}
	return check, msg
}

// Signup registers a user, organizer or admin account
func Signup() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var user models.User
		if err := c.BindJSON(&user); err != nil {
			log.Println("❌ [Signup] BindJSON error:", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if validationErr := validate.Struct(user); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		count, err := usercollection.CountDocuments(ctx, bson.M{"email": user.Email})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		countPhone, err := usercollection.CountDocuments(ctx, bson.M{"phone": user.Phone})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		if count > 0 || countPhone > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "email or phone already exists"})
			return
		}

		password := HashPassword(*user.Password)
		user.Password = &password

		now := time.Now()
		user.Created_at = &now
		user.Updated_at = &now
		user.ID = primitive.NewObjectID()
		user.User_id = user.ID.Hex()

		if user.FollowedArtists == nil {
			user.FollowedArtists = []string{}
		}

		token, refreshToken, err := helpers.GenerateAllTokens(
			*user.Email, *user.First_name, *user.Last_name, *user.Phone, *user.User_type, user.User_id,
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
			return
		}
		user.Token = &token
		user.Refresh_token = &refreshToken

		_, err = usercollection.InsertOne(ctx, user)
		if err != nil {
			log.Println("❌ [Signup] InsertOne error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "user was not created"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "User created successfully",
			"user":    user,
		})
	}
}

// Login authenticates by phone and password and returns a fresh token pair
func Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var user models.User
		var foundUser models.User

		if err := c.BindJSON(&user); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		err := usercollection.FindOne(ctx, bson.M{"phone": user.Phone}).Decode(&foundUser)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "phone or password is incorrect"})
			return
		}

		if foundUser.Password == nil || user.Password == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "password is required"})
			return
		}

		passwordIsValid, msg := VerifyPassword(*foundUser.Password, *user.Password)
		if !passwordIsValid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		token, refreshToken, err := helpers.GenerateAllTokens(
			*foundUser.Email, *foundUser.First_name, *foundUser.Last_name, *foundUser.Phone, *foundUser.User_type, foundUser.User_id,
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
			return
		}

		err = helpers.UpdateAllTokens(token, refreshToken, foundUser.User_id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update tokens"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token":         token,
			"refresh_token": refreshToken,
			"user":          foundUser,
		})
	}
}

// MyProfile returns the logged-in user's document
func MyProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		userId := c.GetString("user_id")
		if userId == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}

		var user models.User
		err := usercollection.FindOne(ctx, bson.M{"user_id": userId}).Decode(&user)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching user"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "User profile fetched successfully",
			"user":    user,
		})
	}
}
