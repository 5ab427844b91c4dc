package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/llehouerou/hymnchtv/internal/config"
	"github.com/llehouerou/hymnchtv/internal/errmsg"
	"github.com/llehouerou/hymnchtv/internal/update"
)

// updateEnv is what the update subcommands work with.
type updateEnv struct {
	cfg     config.UpdateConfig
	client  *http.Client
	logger  *zap.Logger
	updater *update.Updater
}

func newUpdateCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Check for, download and install new releases",
	}

	check := &cobra.Command{
		Use:   "check",
		Short: "Ask the release mirrors for a newer version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withUpdater(cmd, opts, func(ctx context.Context, env updateEnv) error {
				res := update.NewChecker(env.cfg, env.client, update.Current(), env.logger).Check(ctx)
				out := cmd.OutOrStdout()
				if res.State != update.UpdateAvailable {
					fmt.Fprintf(out, "up to date (%s)\n", res.Current)
					return nil
				}
				fmt.Fprintf(out, "update available: %s from %s\n", res.Latest, res.Mirror)
				return nil
			})
		},
	}

	var install bool
	download := &cobra.Command{
		Use:   "download",
		Short: "Download the latest release package",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withUpdater(cmd, opts, func(ctx context.Context, env updateEnv) error {
				res := update.NewChecker(env.cfg, env.client, update.Current(), env.logger).Check(ctx)
				out := cmd.OutOrStdout()
				if res.State != update.UpdateAvailable {
					fmt.Fprintf(out, "up to date (%s)\n", res.Current)
					return nil
				}

				env.updater.OnProgress(func(_, done, total int64) {
					fmt.Fprintf(out, "\r%s", update.FormatProgress(done, total))
				})
				_, outcome, err := env.updater.Download(ctx, res.Latest)
				if err != nil {
					return fmt.Errorf("%s: %w", errmsg.OpUpdateDownload, err)
				}
				o := <-outcome
				fmt.Fprintln(out)
				if o.Err != nil {
					return fmt.Errorf("%s: %w", errmsg.OpUpdateDownload, o.Err)
				}

				rec, err := env.updater.Recover(ctx, res.Current, res.Latest)
				if err != nil {
					return err
				}
				if rec.State != update.InstallPrompt {
					return fmt.Errorf("%s: %w", errmsg.OpUpdateDownload, rec.Err)
				}
				fmt.Fprintf(out, "downloaded %s\n", o.Path)
				if !install {
					return nil
				}
				return installPackage(cmd, rec.Job.Path)
			})
		},
	}
	download.Flags().BoolVar(&install, "install", false, "replace the running binary once verified")

	status := &cobra.Command{
		Use:   "status",
		Short: "Show recorded package downloads",
		Long: `Show recorded package downloads and what they mean for the latest
release. Downloads that no longer match it are removed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withUpdater(cmd, opts, func(ctx context.Context, env updateEnv) error {
				out := cmd.OutOrStdout()
				res := update.NewChecker(env.cfg, env.client, update.Current(), env.logger).Check(ctx)
				var rec update.Recovery
				if res.Reached() {
					var err error
					rec, err = env.updater.Recover(ctx, res.Current, res.Latest)
					if err != nil {
						return err
					}
				} else {
					fmt.Fprintln(out, "no release mirror reachable, downloads left as recorded")
				}
				jobs, err := env.updater.Store().List(ctx)
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tSTATUS\tCODE\tSIZE\tWHEN\tPATH")
				for _, j := range jobs {
					fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\t%s\n",
						j.ID, j.Status, j.VersionCode,
						update.FormatProgress(j.BytesDone, j.BytesTotal),
						humanize.Time(j.UpdatedAt), j.Path)
				}
				if err := w.Flush(); err != nil {
					return err
				}
				if !res.Reached() {
					return nil
				}
				if rec.Removed > 0 {
					fmt.Fprintf(out, "removed %d stale download(s)\n", rec.Removed)
				}
				fmt.Fprintf(out, "state: %s\n", rec.State)
				if rec.Err != nil {
					fmt.Fprintf(out, "error: %v\n", rec.Err)
				}
				return nil
			})
		},
	}

	clean := &cobra.Command{
		Use:   "clean",
		Short: "Delete downloaded packages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withUpdater(cmd, opts, func(ctx context.Context, env updateEnv) error {
				n, err := env.updater.RemoveOldDownloads(ctx)
				if err != nil {
					return fmt.Errorf("%s: %w", errmsg.OpUpdateClean, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "removed %d download(s)\n", n)
				return nil
			})
		},
	}

	cmd.AddCommand(check, download, status, clean)
	return cmd
}

func installPackage(cmd *cobra.Command, pkg string) error {
	target, err := os.Executable()
	if err != nil {
		return err
	}
	if err := update.Install(pkg, target); err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpUpdateInstall, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "installed to %s\n", target)
	return nil
}

func withUpdater(cmd *cobra.Command, opts *options, fn func(context.Context, updateEnv) error) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	logger, err := opts.consoleLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	mgr, err := opts.openState()
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpStateLoad, err)
	}
	defer mgr.Close()

	updCfg := cfg.GetUpdateConfig()
	client := &http.Client{}
	updater := update.NewUpdater(mgr.DB(), client, update.DefaultDir(), logger)
	defer updater.Close()

	return fn(cmd.Context(), updateEnv{cfg: updCfg, client: client, logger: logger, updater: updater})
}
