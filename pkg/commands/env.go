package commands

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"tableflip.dev/quotes/pkg/app"
	"tableflip.dev/quotes/pkg/logging"
	"tableflip.dev/quotes/pkg/reconcile"
	"tableflip.dev/quotes/pkg/remote"
	"tableflip.dev/quotes/pkg/store"
)

// env is the configured state shared by every subcommand.
type env struct {
	settings *store.Settings
	logger   *log.Logger
	service  *app.Service
	client   *remote.Client
}

func loadEnv(cmd *cobra.Command) (*env, error) {
	return newEnv(cmd, cmd.ErrOrStderr())
}

// newEnv loads config and the quote service. Logs go to logOut unless
// log_file is configured.
func newEnv(cmd *cobra.Command, logOut io.Writer) (*env, error) {
	settings, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	logger := logging.Configure(logging.Config{
		Level:  settings.LogLevel,
		Output: logOut,
		File:   settings.LogFile,
	})

	p, err := store.Load(settings)
	if err != nil {
		return nil, err
	}
	svc := app.New(p)
	svc.Logger = logger
	if err := svc.Load(cmd.Context()); err != nil {
		return nil, err
	}

	e := &env{settings: settings, logger: logger, service: svc}
	if settings.ServerURL != "" {
		e.client, err = remote.New(remote.Config{
			URL:      settings.ServerURL,
			Attempts: settings.RetryAttempts,
			Limit:    settings.SyncLimit,
			Logger:   logger,
		})
		if err != nil {
			return nil, err
		}
	} else {
		logger.Debug("server_url is empty, sync disabled")
	}
	return e, nil
}

// source returns the sync source, or nil when no server is configured.
func (e *env) source() reconcile.Source {
	if e.client == nil {
		return nil
	}
	return e.client
}
