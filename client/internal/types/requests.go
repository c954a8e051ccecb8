package types

import (
	"net/url"
	"strconv"
)

// ------------------------------
// Request Types
// ------------------------------

// PageRequest carries the pagination fields shared by every paged query.
type PageRequest struct {
	Current   int    `json:"current"`
	PageSize  int    `json:"pageSize"`
	SortField string `json:"sortField,omitempty"`
	SortOrder string `json:"sortOrder,omitempty"`
}

// PictureInteractionRequest identifies the picture a like/favorite toggle targets.
// The acting user is implied by the session.
type PictureInteractionRequest struct {
	PictureID ID `json:"pictureId"`
}

// PictureInteractionQueryRequest pages through liked or favorited pictures.
// An empty UserID means the current session user.
type PictureInteractionQueryRequest struct {
	PageRequest
	UserID ID `json:"userId,omitempty"`
}

// UserFollowRequest identifies the user to follow or unfollow.
type UserFollowRequest struct {
	TargetUserID ID `json:"targetUserId"`
}

// UserFollowQueryRequest pages through followers or followees.
// An empty UserID means the current session user.
type UserFollowQueryRequest struct {
	PageRequest
	UserID ID `json:"userId,omitempty"`
}

// IsFollowingRequest is sent as query parameters, never as a body.
type IsFollowingRequest struct {
	TargetUserID ID
}

// Values encodes the request as URL query parameters.
func (r IsFollowingRequest) Values() url.Values {
	v := url.Values{}
	v.Set("targetUserId", string(r.TargetUserID))
	return v
}

// UserLoginRequest holds account credentials.
type UserLoginRequest struct {
	UserAccount  string `json:"userAccount"`
	UserPassword string `json:"userPassword"`
}

// UserRegisterRequest holds parameters for a new account.
type UserRegisterRequest struct {
	UserAccount   string `json:"userAccount"`
	UserPassword  string `json:"userPassword"`
	CheckPassword string `json:"checkPassword"`
	UserName      string `json:"userName,omitempty"`
	UserPhone     string `json:"userPhone,omitempty"`
	UserEmail     string `json:"userEmail,omitempty"`
}

// PictureQueryRequest filters the public picture listing.
type PictureQueryRequest struct {
	PageRequest
	ID           ID       `json:"id,omitempty"`
	Name         string   `json:"name,omitempty"`
	Introduction string   `json:"introduction,omitempty"`
	Category     string   `json:"category,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	SearchText   string   `json:"searchText,omitempty"`
	UserID       ID       `json:"userId,omitempty"`
	SpaceID      ID       `json:"spaceId,omitempty"`
	NullSpaceID  bool     `json:"nullSpaceId,omitempty"`
}

// PictureSaveToPrivateRequest copies a public picture into a private space.
type PictureSaveToPrivateRequest struct {
	PictureID ID `json:"pictureId"`
	SpaceID   ID `json:"spaceId"`
}

// PicturePublishToPublicRequest publishes a private picture to the public gallery.
type PicturePublishToPublicRequest struct {
	PictureID ID `json:"pictureId"`
}

// CreatePortraitStyleRedrawTaskRequest starts an AI portrait restyle of a picture.
// StyleIndex -1 selects the reference-image style and requires StyleRefURL.
type CreatePortraitStyleRedrawTaskRequest struct {
	PictureID   ID     `json:"pictureId"`
	StyleIndex  int    `json:"styleIndex"`
	StyleRefURL string `json:"styleRefUrl,omitempty"`
}

// IDQuery encodes a single `id` query parameter used by the get/vo endpoints.
func IDQuery(id ID) url.Values {
	v := url.Values{}
	v.Set("id", string(id))
	return v
}

// TaskQuery encodes the `taskId` query parameter of task polling endpoints.
func TaskQuery(taskID string) url.Values {
	v := url.Values{}
	v.Set("taskId", taskID)
	return v
}

// Int64ID formats a numeric identifier.
func Int64ID(n int64) ID { return ID(strconv.FormatInt(n, 10)) }
