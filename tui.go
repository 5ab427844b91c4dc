package main

import (
	"fmt"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/hymnchtv/internal/app"
	"github.com/llehouerou/hymnchtv/internal/content"
	"github.com/llehouerou/hymnchtv/internal/errmsg"
	"github.com/llehouerou/hymnchtv/internal/launch"
	"github.com/llehouerou/hymnchtv/internal/logging"
	"github.com/llehouerou/hymnchtv/internal/media"
	"github.com/llehouerou/hymnchtv/internal/notify"
	"github.com/llehouerou/hymnchtv/internal/player"
	"github.com/llehouerou/hymnchtv/internal/stderr"
	"github.com/llehouerou/hymnchtv/internal/ui/kittyimg"
	"github.com/llehouerou/hymnchtv/internal/update"
)

func runTUI(opts *options) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpInitialize, err)
	}

	level := opts.logLevel
	if level == "" {
		level = cfg.Log.Level
	}
	logger, err := logging.New(logging.Options{Level: level, File: cfg.Log.File})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	// Audio backends write to stderr, which would corrupt the screen.
	if err := stderr.Start(logger); err != nil {
		logger.Warn("stderr capture unavailable", zap.Error(err))
	}
	defer stderr.Stop()

	mgr, err := opts.openState()
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpStateLoad, err)
	}
	defer mgr.Close()

	notifier, err := notify.New()
	if err != nil {
		logger.Warn("notifications unavailable", zap.Error(err))
	}

	updCfg := cfg.GetUpdateConfig()
	client := &http.Client{}
	updater := update.NewUpdater(mgr.DB(), client, update.DefaultDir(), logger)
	defer updater.Close()

	p := player.New()
	defer p.Stop()

	m, err := app.New(app.Deps{
		Config:   cfg,
		State:    mgr,
		Content:  content.New(os.DirFS(cfg.GetContentDir()), logger),
		Media:    media.NewStore(mgr.DB(), logger),
		Resolver: media.NewResolver(),
		Launcher: launch.New(cfg.GetPlayerConfig(), launch.ExecRunner{}, logger),
		Player:   p,
		Checker:  update.NewChecker(updCfg, client, update.Current(), logger),
		Updater:  updater,
		Toaster:  notify.NewToaster(notifier, logger),
		Logger:   logger,
		Graphics: kittyimg.Supported(),
	})
	if err != nil {
		return err
	}

	logger.Info("starting", zap.String("version", update.Version), zap.String("content", cfg.GetContentDir()))
	prog := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
