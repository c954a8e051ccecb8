package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ougggg/pai-picture/client"
)

type pageFlags struct {
	current int
	size    int
	user    string
}

func (p *pageFlags) bind(cmd *cobra.Command) {
	cmd.Flags().IntVar(&p.current, "page", 1, "Page number")
	cmd.Flags().IntVar(&p.size, "size", 10, "Page size")
	cmd.Flags().StringVar(&p.user, "user", "", "User ID (defaults to the logged-in user)")
}

func (p *pageFlags) request() client.PageRequest {
	return client.PageRequest{Current: p.current, PageSize: p.size}
}

// Method expressions of *client.Client, e.g. (*client.Client).LikePicture.
type (
	pictureToggle func(*client.Client, context.Context, client.PictureInteractionRequest, ...client.CallOption) (*client.Envelope[bool], error)
	pictureList   func(*client.Client, context.Context, client.PictureInteractionQueryRequest, ...client.CallOption) (*client.Envelope[client.Page[client.PictureVO]], error)
)

// newPictureMarkCmd builds the do|cancel|list tree shared by likes and favorites.
func newPictureMarkCmd(a *app, use, short string, do, cancel pictureToggle, list pictureList) *cobra.Command {
	cmd := &cobra.Command{Use: use, Short: short}

	toggle := func(name, desc string, fn pictureToggle) *cobra.Command {
		return &cobra.Command{
			Use:   name + " <pictureId>",
			Short: desc,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				env, err := fn(a.client, cmd.Context(), client.PictureInteractionRequest{PictureID: client.ID(args[0])})
				if err != nil {
					return err
				}
				return a.print(env)
			},
		}
	}

	var pf pageFlags
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List pictures page by page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := list(a.client, cmd.Context(), client.PictureInteractionQueryRequest{
				PageRequest: pf.request(),
				UserID:      client.ID(pf.user),
			})
			if err != nil {
				return err
			}
			return a.print(env)
		},
	}
	pf.bind(listCmd)

	cmd.AddCommand(toggle("do", "Mark a picture", do), toggle("cancel", "Unmark a picture", cancel), listCmd)
	return cmd
}

func newFavoriteCmd(a *app) *cobra.Command {
	return newPictureMarkCmd(a, "favorite", "Favorite pictures",
		(*client.Client).FavoritePicture,
		(*client.Client).UnfavoritePicture,
		(*client.Client).ListFavoritedPictures,
	)
}

func newLikeCmd(a *app) *cobra.Command {
	return newPictureMarkCmd(a, "like", "Like pictures",
		(*client.Client).LikePicture,
		(*client.Client).UnlikePicture,
		(*client.Client).ListLikedPictures,
	)
}

func newFollowCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "follow", Short: "Follow users"}

	set := func(name, short string, follow bool) *cobra.Command {
		return &cobra.Command{
			Use:   name + " <userId>",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				req := client.UserFollowRequest{TargetUserID: client.ID(args[0])}
				var (
					env *client.Envelope[bool]
					err error
				)
				if follow {
					env, err = a.client.FollowUser(cmd.Context(), req)
				} else {
					env, err = a.client.UnfollowUser(cmd.Context(), req)
				}
				if err != nil {
					return err
				}
				return a.print(env)
			},
		}
	}

	list := func(name, short string, followers bool) *cobra.Command {
		var pf pageFlags
		c := &cobra.Command{
			Use:   name,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				req := client.UserFollowQueryRequest{PageRequest: pf.request(), UserID: client.ID(pf.user)}
				var (
					env *client.Envelope[client.Page[client.UserVO]]
					err error
				)
				if followers {
					env, err = a.client.ListFollowers(cmd.Context(), req)
				} else {
					env, err = a.client.ListFollowing(cmd.Context(), req)
				}
				if err != nil {
					return err
				}
				return a.print(env)
			},
		}
		pf.bind(c)
		return c
	}

	check := &cobra.Command{
		Use:   "check <userId>",
		Short: "Report whether you follow a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.client.IsFollowing(cmd.Context(), client.IsFollowingRequest{TargetUserID: client.ID(args[0])})
			if err != nil {
				return err
			}
			return a.print(env)
		},
	}

	cmd.AddCommand(
		set("do", "Follow a user", true),
		set("cancel", "Unfollow a user", false),
		list("followers", "List followers page by page", true),
		list("following", "List followed users page by page", false),
		check,
	)
	return cmd
}
