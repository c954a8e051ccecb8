package main

import (
	"github.com/spf13/cobra"

	"github.com/ougggg/pai-picture/client"
)

func newPictureCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "picture", Short: "Browse pictures"}

	get := &cobra.Command{
		Use:   "get <pictureId>",
		Short: "Show one picture and its share link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.client.GetPictureVO(cmd.Context(), client.ID(args[0]))
			if err != nil {
				return err
			}
			out := struct {
				Code      int              `json:"code"`
				Data      client.PictureVO `json:"data"`
				Message   string           `json:"message"`
				ShareLink string           `json:"shareLink,omitempty"`
			}{Code: env.Code, Data: env.Data, Message: env.Message}
			if env.OK() {
				out.ShareLink = a.cfg.ShareLink(env.Data.ID)
			}
			return a.print(out)
		},
	}

	var (
		q        client.PictureQueryRequest
		category string
		search   string
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List public pictures page by page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q.Category = category
			q.SearchText = search
			env, err := a.client.ListPictureVOs(cmd.Context(), q)
			if err != nil {
				return err
			}
			return a.print(env)
		},
	}
	list.Flags().IntVar(&q.Current, "page", 1, "Page number")
	list.Flags().IntVar(&q.PageSize, "size", 10, "Page size")
	list.Flags().StringVar(&category, "category", "", "Category filter")
	list.Flags().StringVarP(&search, "search", "s", "", "Search text")

	cmd.AddCommand(get, list)
	return cmd
}
