package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/hymnchtv/internal/errmsg"
	"github.com/llehouerou/hymnchtv/internal/media"
	"github.com/llehouerou/hymnchtv/internal/ui/action"
	"github.com/llehouerou/hymnchtv/internal/ui/confirm"
	"github.com/llehouerou/hymnchtv/internal/ui/helpbindings"
	"github.com/llehouerou/hymnchtv/internal/ui/mediapanel"
	"github.com/llehouerou/hymnchtv/internal/ui/numberentry"
	"github.com/llehouerou/hymnchtv/internal/ui/statusbar"
	"github.com/llehouerou/hymnchtv/internal/update"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if m.popup != nil {
			var cmd tea.Cmd
			m.popup, cmd = m.popup.Update(msg)
			return m, cmd
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.popup != nil || m.viewMode != ViewLyrics {
			return m, nil
		}
		return m, m.lyrics.Update(msg)

	case HymnLoadedMsg:
		return m.handleHymnLoaded(msg)

	case action.Msg:
		return m.handleAction(msg)

	case PlaybackResolvedMsg:
		return m.handlePlaybackResolved(msg)

	case TickMsg:
		if m.deps.Player.State().IsActive() {
			return m, TickCmd()
		}
		m.resize()
		return m, nil

	case PlaybackFinishedMsg:
		m.logger.Debug("local audio finished")
		m.resize()
		return m, nil

	case StatusClearMsg:
		m.clearStatus(msg.Version)
		return m, nil

	case StderrMsg:
		return m, tea.Batch(m.setStatus(msg.Line, levelWarning), WatchStderr())

	case UpdateCheckedMsg:
		return m.handleUpdateChecked(msg)

	case UpdateRecoveredMsg:
		return m.handleUpdateRecovered(msg)

	case DownloadStartedMsg:
		return m.handleDownloadStarted(msg)

	case DownloadProgressMsg:
		if m.status.Job != nil {
			m.status.Job.Done = msg.Done
			m.status.Job.Total = msg.Total
			m.status.Job.Text = update.FormatProgress(msg.Done, msg.Total)
		}
		return m, waitProgress(m.progress)

	case DownloadDoneMsg:
		return m.handleDownloadDone(msg)

	case InstalledMsg:
		return m.handleInstalled(msg)
	}
	return m, nil
}

func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	switch a := msg.Action.(type) {
	case numberentry.Confirm:
		m.popup = nil
		return m, m.goToRef(a.Ref)
	case numberentry.Invalid:
		return m, m.setStatus(a.Message, levelWarning)
	case numberentry.Cancel, helpbindings.Close:
		m.popup = nil
		return m, nil
	case confirm.Result:
		m.popup = nil
		return m.handleConfirm(a)
	case mediapanel.Play:
		return m, m.playRecordCmd(a.Record)
	case mediapanel.Missing:
		return m, m.setStatus(a.Key.Kind.Label()+": 未设置", levelInfo)
	}
	m.logger.Debug("unhandled action", zap.String("source", msg.Source), zap.String("action", msg.Action.ActionType()))
	return m, nil
}

func (m Model) handlePlaybackResolved(msg PlaybackResolvedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		op := errmsg.OpPlaybackStart
		if _, ok := msg.Action.(media.OpenExternal); ok {
			op = errmsg.OpOpenExternal
		}
		m.logger.Error("playback failed", zap.Stringer("media", msg.Key), zap.Error(msg.Err))
		m.deps.Toaster.Error("Playback failed", msg.Err)
		return m, m.setError(op, msg.Err)
	}

	switch a := msg.Action.(type) {
	case media.LocalAudio:
		if err := m.deps.Player.Play(a.Path); err != nil {
			m.logger.Error("local audio failed", zap.String("path", a.Path), zap.Error(err))
			m.deps.Toaster.Error("Playback failed", err)
			return m, m.setError(errmsg.OpPlaybackStart, err)
		}
		m.resize()
		return m, tea.Batch(TickCmd(), WatchFinished(m.deps.Player))
	case media.PlayEmbedded:
		return m, m.setStatus("正在播放 "+msg.Key.Kind.Label(), levelInfo)
	case media.OpenExternal:
		return m, m.setStatus("已打开 "+msg.Key.Kind.Label(), levelInfo)
	case media.NoAction:
		return m, m.setStatus(msg.Key.Kind.Label()+": 媒体不可用", levelWarning)
	}
	return m, nil
}

// handleUpdateChecked matches the recorded downloads against a release a
// mirror announced before anything is offered. A check that reached no
// mirror leaves the downloads alone.
func (m Model) handleUpdateChecked(msg UpdateCheckedMsg) (tea.Model, tea.Cmd) {
	res := msg.Result
	if !res.Reached() || m.deps.Updater == nil || m.updateState == update.Downloading {
		return m.announce(res, msg.Manual)
	}
	m.release = res
	return m, m.recoverCmd(res, msg.Manual)
}

// announce reports a check result that no recorded download took over.
func (m Model) announce(res update.Result, manual bool) (tea.Model, tea.Cmd) {
	if res.State != update.UpdateAvailable {
		if m.updateState == update.Checking {
			m.updateState = update.UpToDate
		}
		if manual {
			return m, m.setStatus("Up to date ("+res.Current.Version+")", levelInfo)
		}
		return m, nil
	}

	m.logger.Info("update available", zap.Stringer("current", res.Current), zap.Stringer("latest", res.Latest))
	if m.updateState == update.Downloading || m.updateState == update.InstallPrompt {
		return m, nil
	}
	m.updateState = update.UpdateAvailable
	m.deps.Toaster.Info("Update available", "hymnchtv "+res.Latest.Version)
	if m.deps.Updater == nil {
		return m, m.setStatus("Update available: "+res.Latest.Version, levelInfo)
	}
	m.openPopup(confirm.New(
		"Update available",
		"Download hymnchtv "+res.Latest.Version+"?",
		downloadPrompt{Release: res.Latest},
	))
	return m, m.popup.Init()
}

func (m Model) handleUpdateRecovered(msg UpdateRecoveredMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Warn("failed to recover update state", zap.Error(msg.Err))
		return m.announce(msg.Result, msg.Manual)
	}
	rec := msg.Recovery
	switch rec.State {
	case update.InstallPrompt:
		m.updateState = update.InstallPrompt
		m.status.Job = nil
		if m.popup != nil {
			return m, m.setStatus("Update downloaded, restart to install", levelInfo)
		}
		m.openPopup(confirm.New(
			"Update ready",
			"Install the downloaded update? It takes effect on the next start.",
			installPrompt{Job: *rec.Job},
		))
		return m, m.popup.Init()

	case update.Downloading:
		m.updateState = update.Downloading
		if m.deps.Updater.Active(rec.Job.ID) {
			return m, nil
		}
		m.status.Job = &statusbar.Job{Label: "Update", Done: rec.Job.BytesDone, Total: rec.Job.BytesTotal}
		return m, m.resumeCmd(*rec.Job)

	case update.Failed:
		return m.handleUpdateFailed(msg)
	}
	return m.announce(msg.Result, msg.Manual)
}

// handleUpdateFailed reports a failed download once per job. Retrying is
// only offered when the user asked for the check.
func (m Model) handleUpdateFailed(msg UpdateRecoveredMsg) (tea.Model, tea.Cmd) {
	rec := msg.Recovery
	m.updateState = update.Failed
	m.status.Job = nil

	var cmds []tea.Cmd
	if m.lastFailed != rec.Job.ID {
		m.lastFailed = rec.Job.ID
		m.deps.Toaster.Error("Update failed", rec.Err)
		cmds = append(cmds, m.setError(errmsg.OpUpdateDownload, rec.Err))
	}
	if msg.Manual && m.popup == nil && msg.Result.Latest.Link != "" {
		m.openPopup(confirm.New(
			"Update failed",
			"Download hymnchtv "+msg.Result.Latest.Version+" again?",
			downloadPrompt{Release: msg.Result.Latest},
		))
		cmds = append(cmds, m.popup.Init())
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleDownloadStarted(msg DownloadStartedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.updateState = update.Failed
		m.status.Job = nil
		m.logger.Error("update download failed to start", zap.Error(msg.Err))
		m.deps.Toaster.Error("Update failed", msg.Err)
		return m, m.setError(errmsg.OpUpdateDownload, msg.Err)
	}
	m.updateState = update.Downloading
	if m.status.Job == nil {
		m.status.Job = &statusbar.Job{Label: "Update"}
	}
	return m, tea.Batch(waitOutcome(msg.Outcome), waitProgress(m.progress))
}

// handleDownloadDone re-reads the job so the package is verified the same
// way as after a restart.
func (m Model) handleDownloadDone(msg DownloadDoneMsg) (tea.Model, tea.Cmd) {
	if msg.Outcome.Err != nil {
		m.logger.Warn("update download ended with error", zap.Int64("job", msg.Outcome.JobID), zap.Error(msg.Outcome.Err))
	}
	return m, m.recoverCmd(m.release, false)
}

func (m Model) handleConfirm(res confirm.Result) (tea.Model, tea.Cmd) {
	switch ctx := res.Context.(type) {
	case downloadPrompt:
		if !res.Confirmed {
			return m, nil
		}
		m.updateState = update.Downloading
		m.status.Job = &statusbar.Job{Label: "Update", Text: "starting"}
		return m, m.downloadCmd(ctx.Release)
	case installPrompt:
		if !res.Confirmed {
			return m, m.setStatus("Update kept for later", levelInfo)
		}
		return m, m.installCmd(ctx.Job)
	}
	return m, nil
}

func (m Model) handleInstalled(msg InstalledMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.updateState = update.Failed
		m.logger.Error("update install failed", zap.String("target", msg.Target), zap.Error(msg.Err))
		if errors.Is(msg.Err, update.ErrNotInPackage) {
			return m, m.setStatus("Update package has no executable", levelError)
		}
		return m, m.setError(errmsg.OpUpdateInstall, msg.Err)
	}
	m.updateState = update.UpToDate
	m.logger.Info("update installed", zap.String("target", msg.Target))
	return m, m.setStatus("Update installed, restart hymnchtv to use it", levelInfo)
}
