package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	First_name      *string            `bson:"first_name" json:"first_name" validate:"required,min=2,max=100"`
	Last_name       *string            `bson:"last_name" json:"last_name" validate:"required,min=1,max=100"`
	Email           *string            `bson:"email" json:"email" validate:"required,email"`
	Phone           *string            `bson:"phone" json:"phone" validate:"required,min=10,max=15"`
	Password        *string            `bson:"password" json:"password,omitempty" validate:"required,min=6"`
	User_type       *string            `bson:"user_type" json:"user_type" validate:"required,oneof=USER ORGANIZER ADMIN"`
	FollowedArtists []string           `bson:"followed_artists,omitempty" json:"followed_artists,omitempty"`
	Token           *string            `bson:"token,omitempty" json:"token,omitempty"`
	Refresh_token   *string            `bson:"refresh_token,omitempty" json:"refresh_token,omitempty"`
	Created_at      *time.Time         `bson:"created_at" json:"created_at,omitempty"`
	Updated_at      *time.Time         `bson:"updated_at" json:"updated_at,omitempty"`
	User_id         string             `bson:"user_id" json:"user_id,omitempty"`
}
