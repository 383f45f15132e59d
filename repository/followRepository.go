package repository

import (
	"context"
	"time"

	"github.com/TechnovaTech/mookala-main-sub001/database"
	"github.com/TechnovaTech/mookala-main-sub001/models"
	"github.com/TechnovaTech/mookala-main-sub001/services"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FollowRepository is the MongoDB implementation of services.FollowStore.
type FollowRepository struct {
	artists *mongo.Collection
	users   *mongo.Collection
}

func NewFollowRepository(client *mongo.Client) *FollowRepository {
	return &FollowRepository{
		artists: database.OpenCollection(client, "artists"),
		users:   database.OpenCollection(client, "users"),
	}
}

// FindArtistByRef accepts either an artist_id or a phone number, since
// clients hold whichever key they got the artist from.
func (r *FollowRepository) FindArtistByRef(ctx context.Context, ref string) (*models.Artist, error) {
	filter := bson.M{"$or": []bson.M{
		{"artist_id": ref},
		{"phone": ref},
	}}

	var artist models.Artist
	err := r.artists.FindOne(ctx, filter).Decode(&artist)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, services.ErrNotFound
		}
		return nil, err
	}
	return &artist, nil
}

func (r *FollowRepository) UserFollows(ctx context.Context, userPhone string, artistID string) (bool, error) {
	count, err := r.users.CountDocuments(ctx, bson.M{
		"phone":            userPhone,
		"followed_artists": artistID,
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// AddFollowedArtist upserts: a follow from an unknown phone creates the
// user document with just the phone and the set.
func (r *FollowRepository) AddFollowedArtist(ctx context.Context, userPhone string, artistID string) error {
	update := bson.M{
		"$addToSet":    bson.M{"followed_artists": artistID},
		"$set":         bson.M{"updated_at": time.Now()},
		"$setOnInsert": bson.M{"created_at": time.Now()},
	}

	opts := options.Update().SetUpsert(true)
	_, err := r.users.UpdateOne(ctx, bson.M{"phone": userPhone}, update, opts)
	return err
}

func (r *FollowRepository) RemoveFollowedArtist(ctx context.Context, userPhone string, artistID string) error {
	update := bson.M{
		"$pull": bson.M{"followed_artists": artistID},
		"$set":  bson.M{"updated_at": time.Now()},
	}

	_, err := r.users.UpdateOne(ctx, bson.M{"phone": userPhone}, update)
	return err
}

// CountFollowers is the authoritative recount over user documents.
func (r *FollowRepository) CountFollowers(ctx context.Context, artistID string) (int64, error) {
	return r.users.CountDocuments(ctx, bson.M{"followed_artists": artistID})
}

func (r *FollowRepository) SetFollowerCount(ctx context.Context, artistID string, count int64) error {
	update := bson.M{"$set": bson.M{
		"follower_count": count,
		"updated_at":     time.Now(),
	}}

	_, err := r.artists.UpdateOne(ctx, bson.M{"artist_id": artistID}, update)
	return err
}

var _ services.FollowStore = (*FollowRepository)(nil)
