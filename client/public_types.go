package client

import (
	"github.com/go-resty/resty/v2"

	"github.com/ougggg/pai-picture/client/internal/transport"
	"github.com/ougggg/pai-picture/client/internal/types"
)

// Public type aliases so SDK consumers can import only the client package.
type (
	// Requests
	PageRequest                          = types.PageRequest
	PictureInteractionRequest            = types.PictureInteractionRequest
	PictureInteractionQueryRequest       = types.PictureInteractionQueryRequest
	UserFollowRequest                    = types.UserFollowRequest
	UserFollowQueryRequest               = types.UserFollowQueryRequest
	IsFollowingRequest                   = types.IsFollowingRequest
	UserLoginRequest                     = types.UserLoginRequest
	UserRegisterRequest                  = types.UserRegisterRequest
	PictureQueryRequest                  = types.PictureQueryRequest
	PictureSaveToPrivateRequest          = types.PictureSaveToPrivateRequest
	PicturePublishToPublicRequest        = types.PicturePublishToPublicRequest
	CreatePortraitStyleRedrawTaskRequest = types.CreatePortraitStyleRedrawTaskRequest

	// View-models
	ID          = types.ID
	Count       = types.Count
	UserVO      = types.UserVO
	LoginUserVO = types.LoginUserVO
	PictureVO   = types.PictureVO

	// Responses
	CreatePortraitStyleRedrawTaskResponse = types.CreatePortraitStyleRedrawTaskResponse
	GetPortraitStyleRedrawTaskResponse    = types.GetPortraitStyleRedrawTaskResponse
	RedrawTaskInfo                        = types.RedrawTaskInfo
	RedrawResult                          = types.RedrawResult

	// Interceptors
	Request             = resty.Request
	RequestInterceptor  = transport.RequestInterceptor
	ResponseInterceptor = transport.ResponseInterceptor
	Response            = transport.Response
	RedirectDecision    = transport.Decision
)

// Envelope is the uniform {code, data, message} wrapper of every response.
type Envelope[T any] = types.Envelope[T]

// Page is one page of a paged listing.
type Page[T any] = types.Page[T]

// Envelope codes.
const (
	CodeSuccess         = types.CodeSuccess
	CodeParamsError     = types.CodeParamsError
	CodeNotLoggedIn     = types.CodeNotLoggedIn
	CodeNoAuth          = types.CodeNoAuth
	CodeForbidden       = types.CodeForbidden
	CodeNotFound        = types.CodeNotFound
	CodeSystemError     = types.CodeSystemError
	CodeOperationFailed = types.CodeOperationFailed
)
