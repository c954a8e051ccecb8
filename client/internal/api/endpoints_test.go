package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/ougggg/pai-picture/client/internal/transport"
	"github.com/ougggg/pai-picture/client/internal/types"
)

type endpointCase struct {
	name   string
	method string
	path   string
	body   bool
	call   func(d Doer, opts ...transport.CallOption) error
}

func endpointCases() []endpointCase {
	ctx := context.Background()
	pic := types.PictureInteractionRequest{PictureID: "7"}
	picQ := types.PictureInteractionQueryRequest{PageRequest: types.PageRequest{Current: 1, PageSize: 10}}
	follow := types.UserFollowRequest{TargetUserID: "42"}
	followQ := types.UserFollowQueryRequest{PageRequest: types.PageRequest{Current: 1, PageSize: 10}}
	return []endpointCase{
		{"favorite", http.MethodPost, "/api/picture/favorite/do", true, func(d Doer, o ...transport.CallOption) error {
			_, err := FavoritePicture(ctx, d, pic, o...)
			return err
		}},
		{"unfavorite", http.MethodPost, "/api/picture/favorite/cancel", true, func(d Doer, o ...transport.CallOption) error {
			_, err := UnfavoritePicture(ctx, d, pic, o...)
			return err
		}},
		{"list favorites", http.MethodPost, "/api/picture/favorite/list/page", true, func(d Doer, o ...transport.CallOption) error {
			_, err := ListFavoritedPictures(ctx, d, picQ, o...)
			return err
		}},
		{"like", http.MethodPost, "/api/picture/like/do", true, func(d Doer, o ...transport.CallOption) error {
			_, err := LikePicture(ctx, d, pic, o...)
			return err
		}},
		{"unlike", http.MethodPost, "/api/picture/like/cancel", true, func(d Doer, o ...transport.CallOption) error {
			_, err := UnlikePicture(ctx, d, pic, o...)
			return err
		}},
		{"list likes", http.MethodPost, "/api/picture/like/list/page", true, func(d Doer, o ...transport.CallOption) error {
			_, err := ListLikedPictures(ctx, d, picQ, o...)
			return err
		}},
		{"follow", http.MethodPost, "/api/user/follow/do", true, func(d Doer, o ...transport.CallOption) error {
			_, err := FollowUser(ctx, d, follow, o...)
			return err
		}},
		{"unfollow", http.MethodPost, "/api/user/follow/cancel", true, func(d Doer, o ...transport.CallOption) error {
			_, err := UnfollowUser(ctx, d, follow, o...)
			return err
		}},
		{"followers", http.MethodPost, "/api/user/follow/followers/list/page", true, func(d Doer, o ...transport.CallOption) error {
			_, err := ListFollowers(ctx, d, followQ, o...)
			return err
		}},
		{"following", http.MethodPost, "/api/user/follow/following/list/page", true, func(d Doer, o ...transport.CallOption) error {
			_, err := ListFollowing(ctx, d, followQ, o...)
			return err
		}},
		{"is following", http.MethodGet, "/api/user/follow/isFollowing", false, func(d Doer, o ...transport.CallOption) error {
			_, err := IsFollowing(ctx, d, types.IsFollowingRequest{TargetUserID: "42"}, o...)
			return err
		}},
		{"login", http.MethodPost, "/api/user/login", true, func(d Doer, o ...transport.CallOption) error {
			_, err := Login(ctx, d, types.UserLoginRequest{UserAccount: "a", UserPassword: "p"}, o...)
			return err
		}},
		{"register", http.MethodPost, "/api/user/register", true, func(d Doer, o ...transport.CallOption) error {
			_, err := Register(ctx, d, types.UserRegisterRequest{UserAccount: "a"}, o...)
			return err
		}},
		{"get login user", http.MethodGet, "/api/user/get/login", false, func(d Doer, o ...transport.CallOption) error {
			_, err := GetLoginUser(ctx, d, o...)
			return err
		}},
		{"logout", http.MethodPost, "/api/user/logout", false, func(d Doer, o ...transport.CallOption) error {
			_, err := Logout(ctx, d, o...)
			return err
		}},
		{"get user vo", http.MethodGet, "/api/user/get/vo", false, func(d Doer, o ...transport.CallOption) error {
			_, err := GetUserVO(ctx, d, "42", o...)
			return err
		}},
		{"get picture vo", http.MethodGet, "/api/picture/get/vo", false, func(d Doer, o ...transport.CallOption) error {
			_, err := GetPictureVO(ctx, d, "7", o...)
			return err
		}},
		{"list pictures", http.MethodPost, "/api/picture/list/page/vo", true, func(d Doer, o ...transport.CallOption) error {
			_, err := ListPictureVOs(ctx, d, types.PictureQueryRequest{PageRequest: types.PageRequest{Current: 1, PageSize: 20}}, o...)
			return err
		}},
		{"save private", http.MethodPost, "/api/picture/save/private", true, func(d Doer, o ...transport.CallOption) error {
			_, err := SavePictureToPrivate(ctx, d, types.PictureSaveToPrivateRequest{PictureID: "7", SpaceID: "3"}, o...)
			return err
		}},
		{"publish public", http.MethodPost, "/api/picture/connect/public", true, func(d Doer, o ...transport.CallOption) error {
			_, err := PublishPictureToPublic(ctx, d, types.PicturePublishToPublicRequest{PictureID: "7"}, o...)
			return err
		}},
		{"redraw create", http.MethodPost, "/api/picture/portrait_style_redraw/create_task", true, func(d Doer, o ...transport.CallOption) error {
			_, err := CreatePortraitStyleRedrawTask(ctx, d, types.CreatePortraitStyleRedrawTaskRequest{PictureID: "7", StyleIndex: 2}, o...)
			return err
		}},
		{"redraw get", http.MethodGet, "/api/picture/portrait_style_redraw/get_task", false, func(d Doer, o ...transport.CallOption) error {
			_, err := GetPortraitStyleRedrawTask(ctx, d, "task-1", o...)
			return err
		}},
	}
}

func TestEndpoints_FixedMethodPathAndContentType(t *testing.T) {
	t.Parallel()
	for _, c := range endpointCases() {
		d := &recordingDoer{body: `{"code":0,"data":null,"message":"ok"}`}
		if err := c.call(d); err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		spec := d.last()
		if spec.Method != c.method || spec.Path != c.path {
			t.Fatalf("%s: got %s %s want %s %s", c.name, spec.Method, spec.Path, c.method, c.path)
		}
		ct := spec.Header.Get("Content-Type")
		if c.body && (spec.Body == nil || ct != "application/json") {
			t.Fatalf("%s: body-bearing call without JSON content type (ct=%q)", c.name, ct)
		}
		if !c.body && (spec.Body != nil || ct != "") {
			t.Fatalf("%s: bodiless call carries body=%v ct=%q", c.name, spec.Body, ct)
		}
	}
}

func TestEndpoints_CallerOptionsWin(t *testing.T) {
	t.Parallel()
	for _, c := range endpointCases() {
		d := &recordingDoer{body: `{"code":0,"data":null,"message":"ok"}`}
		err := c.call(d,
			transport.WithMethod(http.MethodPut),
			transport.WithHeader("Content-Type", "application/vnd.picture+json"),
			transport.WithHeader("X-Extra", "1"),
		)
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		spec := d.last()
		if spec.Method != http.MethodPut {
			t.Fatalf("%s: method override ignored: %s", c.name, spec.Method)
		}
		if spec.Header.Get("Content-Type") != "application/vnd.picture+json" || spec.Header.Get("X-Extra") != "1" {
			t.Fatalf("%s: header merge wrong: %v", c.name, spec.Header)
		}
		if spec.Path != c.path {
			t.Fatalf("%s: path changed by options: %s", c.name, spec.Path)
		}
	}
}

func TestEndpoints_TransportErrorPropagates(t *testing.T) {
	t.Parallel()
	for _, c := range endpointCases() {
		if err := c.call(failingDoer{}); err == nil {
			t.Fatalf("%s: expected transport error", c.name)
		}
	}
}

func TestGetLoginUser_IsSessionProbe(t *testing.T) {
	t.Parallel()
	d := &recordingDoer{body: `{"code":40100,"data":null,"message":"not logged in"}`}
	env, err := GetLoginUser(context.Background(), d)
	if err != nil {
		t.Fatalf("GetLoginUser: %v", err)
	}
	if !d.last().SessionProbe {
		t.Fatal("GetLoginUser must be marked as a session probe")
	}
	if !env.Unauthenticated() || env.Data.ID != "" {
		t.Fatalf("unexpected envelope %+v", env)
	}
}

func TestCall_DecodesTypedPayload(t *testing.T) {
	t.Parallel()
	d := &recordingDoer{body: `{"code":0,"data":{"records":[{"id":1750000000000000001,"name":"sunset","userId":"9"}],"total":"1","size":10,"current":1,"pages":1},"message":"ok"}`}
	env, err := ListLikedPictures(context.Background(), d, types.PictureInteractionQueryRequest{PageRequest: types.PageRequest{Current: 1, PageSize: 10}})
	if err != nil {
		t.Fatalf("ListLikedPictures: %v", err)
	}
	if !env.OK() || env.Data.Total != 1 || len(env.Data.Records) != 1 {
		t.Fatalf("unexpected page %+v", env.Data)
	}
	if p := env.Data.Records[0]; p.ID != "1750000000000000001" || p.UserID != "9" || p.Name != "sunset" {
		t.Fatalf("unexpected record %+v", p)
	}
}

func TestCall_PayloadTypeMismatch(t *testing.T) {
	t.Parallel()
	d := &recordingDoer{body: `{"code":0,"data":"yes","message":"ok"}`}
	if _, err := FollowUser(context.Background(), d, types.UserFollowRequest{TargetUserID: "42"}); err == nil {
		t.Fatal("expected decode error for non-boolean data")
	}
}
