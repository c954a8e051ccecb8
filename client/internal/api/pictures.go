package api

import (
	"context"

	"github.com/ougggg/pai-picture/client/internal/transport"
	"github.com/ougggg/pai-picture/client/internal/types"
)

const (
	pathPictureGetVO         = "/api/picture/get/vo"
	pathPictureListPageVO    = "/api/picture/list/page/vo"
	pathPictureSavePrivate   = "/api/picture/save/private"
	pathPictureConnectPublic = "/api/picture/connect/public"
	pathRedrawCreateTask     = "/api/picture/portrait_style_redraw/create_task"
	pathRedrawGetTask        = "/api/picture/portrait_style_redraw/get_task"
)

// GetPictureVO returns one picture.
func GetPictureVO(ctx context.Context, d Doer, id types.ID, opts ...transport.CallOption) (*types.Envelope[types.PictureVO], error) {
	return get[types.PictureVO](ctx, d, pathPictureGetVO, types.IDQuery(id), opts)
}

// ListPictureVOs pages through pictures matching req.
func ListPictureVOs(ctx context.Context, d Doer, req types.PictureQueryRequest, opts ...transport.CallOption) (*types.Envelope[types.Page[types.PictureVO]], error) {
	return postJSON[types.Page[types.PictureVO]](ctx, d, pathPictureListPageVO, req, opts)
}

// SavePictureToPrivate copies a picture into one of the user's spaces.
func SavePictureToPrivate(ctx context.Context, d Doer, req types.PictureSaveToPrivateRequest, opts ...transport.CallOption) (*types.Envelope[bool], error) {
	return postJSON[bool](ctx, d, pathPictureSavePrivate, req, opts)
}

// PublishPictureToPublic publishes a private picture to the public gallery.
func PublishPictureToPublic(ctx context.Context, d Doer, req types.PicturePublishToPublicRequest, opts ...transport.CallOption) (*types.Envelope[bool], error) {
	return postJSON[bool](ctx, d, pathPictureConnectPublic, req, opts)
}

// CreatePortraitStyleRedrawTask queues an AI portrait restyle.
func CreatePortraitStyleRedrawTask(ctx context.Context, d Doer, req types.CreatePortraitStyleRedrawTaskRequest, opts ...transport.CallOption) (*types.Envelope[types.CreatePortraitStyleRedrawTaskResponse], error) {
	return postJSON[types.CreatePortraitStyleRedrawTaskResponse](ctx, d, pathRedrawCreateTask, req, opts)
}

// GetPortraitStyleRedrawTask polls a redraw task.
func GetPortraitStyleRedrawTask(ctx context.Context, d Doer, taskID string, opts ...transport.CallOption) (*types.Envelope[types.GetPortraitStyleRedrawTaskResponse], error) {
	return get[types.GetPortraitStyleRedrawTaskResponse](ctx, d, pathRedrawGetTask, types.TaskQuery(taskID), opts)
}
