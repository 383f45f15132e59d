package services

import (
	"context"
	"fmt"
)

const (
	ActionFollow   = "follow"
	ActionUnfollow = "unfollow"
)

// FollowResult is what the follow endpoints return to the client.
type FollowResult struct {
	FollowerCount int64 `json:"followerCount"`
	IsFollowing   bool  `json:"isFollowing"`
}

// FollowService toggles follow relationships and keeps the denormalized
// follower_count on the artist document consistent. The count is never
// incremented in place: every mutating call recounts the user documents
// referencing the artist and writes the result back, so any drift heals on
// the next call.
type FollowService struct {
	store FollowStore
}

func NewFollowService(store FollowStore) *FollowService {
	return &FollowService{store: store}
}

// SetFollowState applies a follow or unfollow action for the given user
// phone. Repeating an action that is already in effect is a no-op: the
// current count is recounted and returned without any write.
func (s *FollowService) SetFollowState(ctx context.Context, artistRef string, userPhone string, action string) (*FollowResult, error) {
	if artistRef == "" || userPhone == "" {
		return nil, fmt.Errorf("%w: artistId and userPhone are required", ErrInvalidArgument)
	}
	if action != ActionFollow && action != ActionUnfollow {
		return nil, fmt.Errorf("%w: action must be 'follow' or 'unfollow'", ErrInvalidArgument)
	}

	artist, err := s.store.FindArtistByRef(ctx, artistRef)
	if err != nil {
		return nil, err
	}

	following, err := s.store.UserFollows(ctx, userPhone, artist.Artist_id)
	if err != nil {
		return nil, err
	}

	// Already in the requested state: skip the mutation entirely so the
	// call is safe to retry or double-click.
	if (action == ActionFollow) == following {
		count, err := s.store.CountFollowers(ctx, artist.Artist_id)
		if err != nil {
			return nil, err
		}
		return &FollowResult{FollowerCount: count, IsFollowing: action == ActionFollow}, nil
	}

	if action == ActionFollow {
		err = s.store.AddFollowedArtist(ctx, userPhone, artist.Artist_id)
	} else {
		err = s.store.RemoveFollowedArtist(ctx, userPhone, artist.Artist_id)
	}
	if err != nil {
		return nil, err
	}

	count, err := s.store.CountFollowers(ctx, artist.Artist_id)
	if err != nil {
		return nil, err
	}
	if err := s.store.SetFollowerCount(ctx, artist.Artist_id, count); err != nil {
		return nil, err
	}

	return &FollowResult{FollowerCount: count, IsFollowing: action == ActionFollow}, nil
}

// GetFollowerCount recounts the artist's followers from the user documents
// and heals the denormalized count on the artist before returning it.
func (s *FollowService) GetFollowerCount(ctx context.Context, artistRef string) (int64, error) {
	if artistRef == "" {
		return 0, fmt.Errorf("%w: artistId is required", ErrInvalidArgument)
	}

	artist, err := s.store.FindArtistByRef(ctx, artistRef)
	if err != nil {
		return 0, err
	}

	count, err := s.store.CountFollowers(ctx, artist.Artist_id)
	if err != nil {
		return 0, err
	}
	if err := s.store.SetFollowerCount(ctx, artist.Artist_id, count); err != nil {
		return 0, err
	}

	return count, nil
}

// IsFollowing reports whether the user currently follows the artist.
func (s *FollowService) IsFollowing(ctx context.Context, artistRef string, userPhone string) (bool, error) {
	if artistRef == "" || userPhone == "" {
		return false, fmt.Errorf("%w: artistId and userPhone are required", ErrInvalidArgument)
	}

	artist, err := s.store.FindArtistByRef(ctx, artistRef)
	if err != nil {
		return false, err
	}

	return s.store.UserFollows(ctx, userPhone, artist.Artist_id)
}
