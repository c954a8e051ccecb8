package types

// ------------------------------
// View-models
// ------------------------------

// UserVO is the public projection of a user.
type UserVO struct {
	ID             ID     `json:"id"`
	UserAccount    string `json:"userAccount"`
	UserName       string `json:"userName"`
	UserAvatar     string `json:"userAvatar,omitempty"`
	UserProfile    string `json:"userProfile,omitempty"`
	UserRole       string `json:"userRole"`
	FollowerCount  Count  `json:"followerCount,omitempty"`
	FollowingCount Count  `json:"followingCount,omitempty"`
	CreateTime     string `json:"createTime,omitempty"`
}

// LoginUserVO is the projection of the user owning the current session.
type LoginUserVO struct {
	ID          ID     `json:"id"`
	UserAccount string `json:"userAccount"`
	UserName    string `json:"userName"`
	UserAvatar  string `json:"userAvatar,omitempty"`
	UserProfile string `json:"userProfile,omitempty"`
	UserRole    string `json:"userRole"`
	UserPhone   string `json:"userPhone,omitempty"`
	UserEmail   string `json:"userEmail,omitempty"`
	CreateTime  string `json:"createTime,omitempty"`
	UpdateTime  string `json:"updateTime,omitempty"`
}

// PictureVO is the display-ready projection of a picture.
type PictureVO struct {
	ID             ID       `json:"id"`
	URL            string   `json:"url"`
	ThumbnailURL   string   `json:"thumbnailUrl,omitempty"`
	Name           string   `json:"name"`
	Introduction   string   `json:"introduction,omitempty"`
	Category       string   `json:"category,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	PicSize        int64    `json:"picSize,omitempty"`
	PicWidth       int      `json:"picWidth,omitempty"`
	PicHeight      int      `json:"picHeight,omitempty"`
	PicScale       float64  `json:"picScale,omitempty"`
	PicFormat      string   `json:"picFormat,omitempty"`
	PicColor       string   `json:"picColor,omitempty"`
	UserID         ID       `json:"userId"`
	SpaceID        ID       `json:"spaceId,omitempty"`
	User           *UserVO  `json:"user,omitempty"`
	PermissionList []string `json:"permissionList,omitempty"`
	LikeCount      Count    `json:"likeCount,omitempty"`
	FavoriteCount  Count    `json:"favoriteCount,omitempty"`
	IsLiked        bool     `json:"isLiked,omitempty"`
	IsFavorited    bool     `json:"isFavorited,omitempty"`
	CreateTime     string   `json:"createTime,omitempty"`
	EditTime       string   `json:"editTime,omitempty"`
	UpdateTime     string   `json:"updateTime,omitempty"`
}
