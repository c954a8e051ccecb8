package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/ougggg/pai-picture/client/internal/api"
	"github.com/ougggg/pai-picture/client/internal/transport"
	"github.com/ougggg/pai-picture/client/navigation"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client issues typed calls against the picture backend. It is safe for
// concurrent use; concurrent calls are independent and unordered.
type Client struct {
	baseURL string
	cfg     transport.Config
	tr      *transport.Transport
}

// New constructs a Client for baseURL. Calls time out after 60 seconds and
// carry session cookies unless options say otherwise.
func New(baseURL string, opts ...Option) (*Client, error) {
	c := &Client{
		baseURL: baseURL,
		cfg: transport.Config{
			BaseURL:         baseURL,
			Timeout:         transport.DefaultTimeout,
			SendCredentials: true,
			Logger:          zerolog.Nop(),
			Navigator:       navigation.Nop{},
		},
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.cfg.Notifier == nil {
		c.cfg.Notifier = navigation.LogNotifier{Logger: c.cfg.Logger}
	}
	c.tr = transport.New(c.cfg)
	return c, nil
}

// BaseURL returns the URL every path is resolved against.
func (c *Client) BaseURL() string { return c.baseURL }

// Cookies returns the session cookies held for the backend origin.
func (c *Client) Cookies() []*http.Cookie {
	jar := c.tr.HTTPClient().Jar
	u, err := url.Parse(c.baseURL)
	if jar == nil || err != nil || !u.IsAbs() {
		return nil
	}
	return jar.Cookies(u)
}

// SetCookies seeds the session cookies for the backend origin, e.g. from a
// persisted session.
func (c *Client) SetCookies(cookies []*http.Cookie) {
	jar := c.tr.HTTPClient().Jar
	u, err := url.Parse(c.baseURL)
	if jar == nil || err != nil || !u.IsAbs() {
		return
	}
	jar.SetCookies(u, cookies)
}

// --------------------------------------------------------------------
// Favorite operations - delegated to internal/api
// --------------------------------------------------------------------

// FavoritePicture adds a picture to the session user's favorites.
func (c *Client) FavoritePicture(ctx context.Context, req PictureInteractionRequest, opts ...CallOption) (*Envelope[bool], error) {
	return api.FavoritePicture(ctx, c.tr, req, opts...)
}

// UnfavoritePicture removes a picture from the session user's favorites.
func (c *Client) UnfavoritePicture(ctx context.Context, req PictureInteractionRequest, opts ...CallOption) (*Envelope[bool], error) {
	return api.UnfavoritePicture(ctx, c.tr, req, opts...)
}

// ListFavoritedPictures pages through favorited pictures.
func (c *Client) ListFavoritedPictures(ctx context.Context, req PictureInteractionQueryRequest, opts ...CallOption) (*Envelope[Page[PictureVO]], error) {
	return api.ListFavoritedPictures(ctx, c.tr, req, opts...)
}

// --------------------------------------------------------------------
// Like operations - delegated to internal/api
// --------------------------------------------------------------------

// LikePicture likes a picture as the session user.
func (c *Client) LikePicture(ctx context.Context, req PictureInteractionRequest, opts ...CallOption) (*Envelope[bool], error) {
	return api.LikePicture(ctx, c.tr, req, opts...)
}

// UnlikePicture withdraws a like.
func (c *Client) UnlikePicture(ctx context.Context, req PictureInteractionRequest, opts ...CallOption) (*Envelope[bool], error) {
	return api.UnlikePicture(ctx, c.tr, req, opts...)
}

// ListLikedPictures pages through liked pictures.
func (c *Client) ListLikedPictures(ctx context.Context, req PictureInteractionQueryRequest, opts ...CallOption) (*Envelope[Page[PictureVO]], error) {
	return api.ListLikedPictures(ctx, c.tr, req, opts...)
}

// --------------------------------------------------------------------
// Follow operations - delegated to internal/api
// --------------------------------------------------------------------

// FollowUser follows the target user.
func (c *Client) FollowUser(ctx context.Context, req UserFollowRequest, opts ...CallOption) (*Envelope[bool], error) {
	return api.FollowUser(ctx, c.tr, req, opts...)
}

// UnfollowUser stops following the target user.
func (c *Client) UnfollowUser(ctx context.Context, req UserFollowRequest, opts ...CallOption) (*Envelope[bool], error) {
	return api.UnfollowUser(ctx, c.tr, req, opts...)
}

// ListFollowers pages through a user's followers.
func (c *Client) ListFollowers(ctx context.Context, req UserFollowQueryRequest, opts ...CallOption) (*Envelope[Page[UserVO]], error) {
	return api.ListFollowers(ctx, c.tr, req, opts...)
}

// ListFollowing pages through the users a user follows.
func (c *Client) ListFollowing(ctx context.Context, req UserFollowQueryRequest, opts ...CallOption) (*Envelope[Page[UserVO]], error) {
	return api.ListFollowing(ctx, c.tr, req, opts...)
}

// IsFollowing reports whether the session user follows the target.
func (c *Client) IsFollowing(ctx context.Context, req IsFollowingRequest, opts ...CallOption) (*Envelope[bool], error) {
	return api.IsFollowing(ctx, c.tr, req, opts...)
}

// --------------------------------------------------------------------
// Session and user operations - delegated to internal/api
// --------------------------------------------------------------------

// Login opens a session.
func (c *Client) Login(ctx context.Context, req UserLoginRequest, opts ...CallOption) (*Envelope[LoginUserVO], error) {
	return api.Login(ctx, c.tr, req, opts...)
}

// Register creates an account.
func (c *Client) Register(ctx context.Context, req UserRegisterRequest, opts ...CallOption) (*Envelope[ID], error) {
	return api.Register(ctx, c.tr, req, opts...)
}

// GetLoginUser returns the session user; it never triggers the login redirect.
func (c *Client) GetLoginUser(ctx context.Context, opts ...CallOption) (*Envelope[LoginUserVO], error) {
	return api.GetLoginUser(ctx, c.tr, opts...)
}

// Logout ends the session.
func (c *Client) Logout(ctx context.Context, opts ...CallOption) (*Envelope[bool], error) {
	return api.Logout(ctx, c.tr, opts...)
}

// GetUserVO returns the public view of a user.
func (c *Client) GetUserVO(ctx context.Context, id ID, opts ...CallOption) (*Envelope[UserVO], error) {
	return api.GetUserVO(ctx, c.tr, id, opts...)
}

// --------------------------------------------------------------------
// Picture operations - delegated to internal/api
// --------------------------------------------------------------------

// GetPictureVO returns one picture.
func (c *Client) GetPictureVO(ctx context.Context, id ID, opts ...CallOption) (*Envelope[PictureVO], error) {
	return api.GetPictureVO(ctx, c.tr, id, opts...)
}

// ListPictureVOs pages through pictures.
func (c *Client) ListPictureVOs(ctx context.Context, req PictureQueryRequest, opts ...CallOption) (*Envelope[Page[PictureVO]], error) {
	return api.ListPictureVOs(ctx, c.tr, req, opts...)
}

// SavePictureToPrivate copies a picture into a private space.
func (c *Client) SavePictureToPrivate(ctx context.Context, req PictureSaveToPrivateRequest, opts ...CallOption) (*Envelope[bool], error) {
	return api.SavePictureToPrivate(ctx, c.tr, req, opts...)
}

// PublishPictureToPublic publishes a private picture.
func (c *Client) PublishPictureToPublic(ctx context.Context, req PicturePublishToPublicRequest, opts ...CallOption) (*Envelope[bool], error) {
	return api.PublishPictureToPublic(ctx, c.tr, req, opts...)
}

// CreatePortraitStyleRedrawTask queues an AI portrait restyle.
func (c *Client) CreatePortraitStyleRedrawTask(ctx context.Context, req CreatePortraitStyleRedrawTaskRequest, opts ...CallOption) (*Envelope[CreatePortraitStyleRedrawTaskResponse], error) {
	return api.CreatePortraitStyleRedrawTask(ctx, c.tr, req, opts...)
}

// GetPortraitStyleRedrawTask polls a redraw task.
func (c *Client) GetPortraitStyleRedrawTask(ctx context.Context, taskID string, opts ...CallOption) (*Envelope[GetPortraitStyleRedrawTaskResponse], error) {
	return api.GetPortraitStyleRedrawTask(ctx, c.tr, taskID, opts...)
}
