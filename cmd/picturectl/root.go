package main

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ougggg/pai-picture/client"
	"github.com/ougggg/pai-picture/internal/config"
	"github.com/ougggg/pai-picture/internal/localstate"
	"github.com/ougggg/pai-picture/internal/logger"
)

const defaultAPI = "http://localhost:8123"

// app is the per-invocation state shared by every subcommand.
type app struct {
	cfg    *config.Config
	log    zerolog.Logger
	store  *localstate.Store
	client *client.Client
	origin string
	out    io.Writer
}

type rootFlags struct {
	api      string
	timeout  time.Duration
	debug    bool
	stateDir string
}

// execute runs one picturectl invocation. The session is saved and the store
// closed whether or not the command succeeded.
func execute(ctx context.Context, args []string, out, errOut io.Writer) error {
	root, a := newRootCmd(out, errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if cerr := a.close(ctx); err == nil {
		err = cerr
	}
	return err
}

func newRootCmd(out, errOut io.Writer) (*cobra.Command, *app) {
	var (
		flags rootFlags
		a     = &app{out: out}
	)
	root := &cobra.Command{
		Use:           "picturectl",
		Short:         "CLI client for the picture backend REST API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.open(cmd, flags, errOut)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVarP(&flags.api, "api", "a", "", "Backend base URL (default $PICTURE_BASE_URL or "+defaultAPI+")")
	root.PersistentFlags().DurationVar(&flags.timeout, "timeout", 0, "Per-call timeout (default $PICTURE_TIMEOUT or 60s)")
	root.PersistentFlags().BoolVar(&flags.debug, "debug", false, "Dump HTTP traffic to stderr")
	root.PersistentFlags().StringVar(&flags.stateDir, "state-dir", "", "Directory holding the saved session")

	root.AddCommand(
		newLoginCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newRegisterCmd(a),
		newFavoriteCmd(a),
		newLikeCmd(a),
		newFollowCmd(a),
		newPictureCmd(a),
	)
	return root, a
}

// open loads configuration, restores the saved session and builds the client.
func (a *app) open(cmd *cobra.Command, flags rootFlags, errOut io.Writer) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	if flags.api != "" {
		cfg.BaseURL = flags.api
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultAPI
	}
	if flags.timeout > 0 {
		cfg.Timeout = flags.timeout
	}
	if flags.debug {
		cfg.Debug = true
	}
	if flags.stateDir != "" {
		cfg.StateDir = flags.stateDir
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || !u.IsAbs() {
		return fmt.Errorf("--api must be an absolute URL, got %q", cfg.BaseURL)
	}

	a.cfg = cfg
	a.origin = u.Scheme + "://" + u.Host
	a.log = logger.NewWithWriter(errOut, "picturectl", cfg.Debug)
	cfg.Log(a.log)

	path, err := localstate.DBPath(cfg.StateDir)
	if err != nil {
		return fmt.Errorf("state dir: %w", err)
	}
	if a.store, err = localstate.Open(path); err != nil {
		return fmt.Errorf("open session store: %w", err)
	}

	opts := append(cfg.ClientOptions(a.log),
		client.WithNavigator(newPrintNavigator(cfg.ServerURL(), errOut)),
		client.WithNotifier(printNotifier{w: errOut}),
		client.WithRequestID(),
	)
	if a.client, err = client.New(cfg.BaseURL, opts...); err != nil {
		return err
	}

	cookies, err := a.store.LoadCookies(cmd.Context(), a.origin)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	a.client.SetCookies(cookies)
	return nil
}

// close persists the session cookies held after the command ran.
func (a *app) close(ctx context.Context) error {
	if a.store == nil {
		return nil
	}
	defer func() {
		_ = a.store.Close()
		a.store = nil
	}()
	if a.client == nil || !a.cfg.SendCredentials {
		return nil
	}
	return a.store.SaveCookies(ctx, a.origin, a.client.Cookies())
}

// print writes v as indented JSON.
func (a *app) print(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, string(b))
	return err
}
