package api

import (
	"context"

	"github.com/ougggg/pai-picture/client/internal/transport"
	"github.com/ougggg/pai-picture/client/internal/types"
)

const (
	pathFollowDo          = "/api/user/follow/do"
	pathFollowCancel      = "/api/user/follow/cancel"
	pathFollowersPage     = "/api/user/follow/followers/list/page"
	pathFollowingPage     = "/api/user/follow/following/list/page"
	pathFollowIsFollowing = "/api/user/follow/isFollowing"
)

// FollowUser follows the target user.
func FollowUser(ctx context.Context, d Doer, req types.UserFollowRequest, opts ...transport.CallOption) (*types.Envelope[bool], error) {
	return postJSON[bool](ctx, d, pathFollowDo, req, opts)
}

// UnfollowUser stops following the target user.
func UnfollowUser(ctx context.Context, d Doer, req types.UserFollowRequest, opts ...transport.CallOption) (*types.Envelope[bool], error) {
	return postJSON[bool](ctx, d, pathFollowCancel, req, opts)
}

// ListFollowers pages through the users following UserID.
func ListFollowers(ctx context.Context, d Doer, req types.UserFollowQueryRequest, opts ...transport.CallOption) (*types.Envelope[types.Page[types.UserVO]], error) {
	return postJSON[types.Page[types.UserVO]](ctx, d, pathFollowersPage, req, opts)
}

// ListFollowing pages through the users UserID follows.
func ListFollowing(ctx context.Context, d Doer, req types.UserFollowQueryRequest, opts ...transport.CallOption) (*types.Envelope[types.Page[types.UserVO]], error) {
	return postJSON[types.Page[types.UserVO]](ctx, d, pathFollowingPage, req, opts)
}

// IsFollowing checks whether the session user follows the target. The request
// travels in the query string; the call has no body.
func IsFollowing(ctx context.Context, d Doer, req types.IsFollowingRequest, opts ...transport.CallOption) (*types.Envelope[bool], error) {
	return get[bool](ctx, d, pathFollowIsFollowing, req.Values(), opts)
}
