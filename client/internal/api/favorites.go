package api

import (
	"context"

	"github.com/ougggg/pai-picture/client/internal/transport"
	"github.com/ougggg/pai-picture/client/internal/types"
)

const (
	pathFavoriteDo       = "/api/picture/favorite/do"
	pathFavoriteCancel   = "/api/picture/favorite/cancel"
	pathFavoriteListPage = "/api/picture/favorite/list/page"
)

// FavoritePicture adds a picture to the session user's favorites.
func FavoritePicture(ctx context.Context, d Doer, req types.PictureInteractionRequest, opts ...transport.CallOption) (*types.Envelope[bool], error) {
	return postJSON[bool](ctx, d, pathFavoriteDo, req, opts)
}

// UnfavoritePicture removes a picture from the session user's favorites.
func UnfavoritePicture(ctx context.Context, d Doer, req types.PictureInteractionRequest, opts ...transport.CallOption) (*types.Envelope[bool], error) {
	return postJSON[bool](ctx, d, pathFavoriteCancel, req, opts)
}

// ListFavoritedPictures pages through favorited pictures.
func ListFavoritedPictures(ctx context.Context, d Doer, req types.PictureInteractionQueryRequest, opts ...transport.CallOption) (*types.Envelope[types.Page[types.PictureVO]], error) {
	return postJSON[types.Page[types.PictureVO]](ctx, d, pathFavoriteListPage, req, opts)
}
