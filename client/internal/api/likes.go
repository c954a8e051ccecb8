package api

import (
	"context"

	"github.com/ougggg/pai-picture/client/internal/transport"
	"github.com/ougggg/pai-picture/client/internal/types"
)

const (
	pathLikeDo       = "/api/picture/like/do"
	pathLikeCancel   = "/api/picture/like/cancel"
	pathLikeListPage = "/api/picture/like/list/page"
)

// LikePicture likes a picture as the session user.
func LikePicture(ctx context.Context, d Doer, req types.PictureInteractionRequest, opts ...transport.CallOption) (*types.Envelope[bool], error) {
	return postJSON[bool](ctx, d, pathLikeDo, req, opts)
}

// UnlikePicture withdraws a like.
func UnlikePicture(ctx context.Context, d Doer, req types.PictureInteractionRequest, opts ...transport.CallOption) (*types.Envelope[bool], error) {
	return postJSON[bool](ctx, d, pathLikeCancel, req, opts)
}

// ListLikedPictures pages through liked pictures.
func ListLikedPictures(ctx context.Context, d Doer, req types.PictureInteractionQueryRequest, opts ...transport.CallOption) (*types.Envelope[types.Page[types.PictureVO]], error) {
	return postJSON[types.Page[types.PictureVO]](ctx, d, pathLikeListPage, req, opts)
}
