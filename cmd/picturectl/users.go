package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ougggg/pai-picture/client"
	"github.com/ougggg/pai-picture/client/constants"
)

func newLoginCmd(a *app) *cobra.Command {
	var account, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and save the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := a.client.Login(cmd.Context(), client.UserLoginRequest{UserAccount: account, UserPassword: password})
			if err != nil {
				return err
			}
			if err := env.Err(); err != nil {
				return err
			}
			return a.print(env.Data)
		},
	}
	cmd.Flags().StringVarP(&account, "account", "u", "", "Account name (required)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (required)")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := a.client.Logout(cmd.Context())
			if err != nil {
				return err
			}
			if err := a.store.ClearCookies(cmd.Context(), a.origin); err != nil {
				return err
			}
			return a.print(env)
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := a.client.GetLoginUser(cmd.Context())
			if err != nil {
				return err
			}
			if env.Unauthenticated() {
				return fmt.Errorf("not logged in")
			}
			return a.print(struct {
				client.LoginUserVO
				RoleLabel string `json:"roleLabel"`
			}{env.Data, constants.UserRole(env.Data.UserRole).Label(constants.DefaultLocale)})
		},
	}
}

func newRegisterCmd(a *app) *cobra.Command {
	var req client.UserRegisterRequest
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if req.CheckPassword == "" {
				req.CheckPassword = req.UserPassword
			}
			env, err := a.client.Register(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.print(env)
		},
	}
	cmd.Flags().StringVarP(&req.UserAccount, "account", "u", "", "Account name (required)")
	cmd.Flags().StringVarP(&req.UserPassword, "password", "p", "", "Password (required)")
	cmd.Flags().StringVar(&req.CheckPassword, "check-password", "", "Password confirmation (defaults to --password)")
	cmd.Flags().StringVar(&req.UserName, "name", "", "Display name")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
