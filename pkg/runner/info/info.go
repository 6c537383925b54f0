package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/quotes/pkg/app"
	"tableflip.dev/quotes/pkg/store"
)

// Info prints where quotes are stored and how sync is configured.
type Info struct {
	Settings *store.Settings
	Service  *app.Service
	Out      io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("QUOTES_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "QUOTES_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, "QUOTES_CONFIG_PATH env var not set")
	}

	if n.Settings == nil {
		var err error
		n.Settings, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	table := uitable.New()
	table.AddRow("path:", n.Settings.BasePath())
	table.AddRow("session_path:", n.Settings.SessionPath())
	table.AddRow("server_url:", n.Settings.ServerURL)
	table.AddRow("sync_interval:", n.Settings.SyncInterval)
	table.AddRow("sync_timeout:", n.Settings.SyncTimeout)
	table.AddRow("sync_limit:", n.Settings.SyncLimit)
	table.AddRow("status_ttl:", n.Settings.StatusTTL)
	table.AddRow("retry_attempts:", n.Settings.RetryAttempts)
	table.AddRow("log_level:", n.Settings.LogLevel)

	if n.Service == nil {
		return fmt.Errorf("info: no quote service")
	}
	list, err := n.Service.Quotes(ctx)
	if err != nil {
		return err
	}
	cats, err := n.Service.Categories(ctx)
	if err != nil {
		return err
	}
	table.AddRow("quotes:", len(list))
	table.AddRow("categories:", len(cats))
	table.AddRow("selected:", n.Service.Selected(ctx))
	_, _ = fmt.Fprintln(out, table)
	return nil
}
