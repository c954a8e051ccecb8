package api

import (
	"context"

	"github.com/ougggg/pai-picture/client/internal/transport"
	"github.com/ougggg/pai-picture/client/internal/types"
)

const (
	pathUserLogin    = "/api/user/login"
	pathUserRegister = "/api/user/register"
	pathUserGetLogin = transport.SessionProbePath
	pathUserLogout   = "/api/user/logout"
	pathUserGetVO    = "/api/user/get/vo"
)

// Login opens a session; the backend answers with a session cookie.
func Login(ctx context.Context, d Doer, req types.UserLoginRequest, opts ...transport.CallOption) (*types.Envelope[types.LoginUserVO], error) {
	return postJSON[types.LoginUserVO](ctx, d, pathUserLogin, req, opts)
}

// Register creates an account and returns its id.
func Register(ctx context.Context, d Doer, req types.UserRegisterRequest, opts ...transport.CallOption) (*types.Envelope[types.ID], error) {
	return postJSON[types.ID](ctx, d, pathUserRegister, req, opts)
}

// GetLoginUser returns the session user. It is always a session probe, so a
// 40100 answer never triggers the login redirect.
func GetLoginUser(ctx context.Context, d Doer, opts ...transport.CallOption) (*types.Envelope[types.LoginUserVO], error) {
	opts = append([]transport.CallOption{transport.AsSessionProbe()}, opts...)
	return get[types.LoginUserVO](ctx, d, pathUserGetLogin, nil, opts)
}

// Logout ends the session.
func Logout(ctx context.Context, d Doer, opts ...transport.CallOption) (*types.Envelope[bool], error) {
	return post[bool](ctx, d, pathUserLogout, opts)
}

// GetUserVO returns the public view of a user.
func GetUserVO(ctx context.Context, d Doer, id types.ID, opts ...transport.CallOption) (*types.Envelope[types.UserVO], error) {
	return get[types.UserVO](ctx, d, pathUserGetVO, types.IDQuery(id), opts)
}
