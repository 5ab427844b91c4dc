package app

import (
	"context"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/hymnchtv/internal/media"
	"github.com/llehouerou/hymnchtv/internal/player"
	"github.com/llehouerou/hymnchtv/internal/stderr"
	"github.com/llehouerou/hymnchtv/internal/update"
)

// TickCmd returns a command that sends TickMsg after 1 second.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// WatchStderr waits for the next line captured from C libraries.
func WatchStderr() tea.Cmd {
	return func() tea.Msg {
		line, ok := <-stderr.Messages
		if !ok {
			return nil
		}
		return StderrMsg{Line: line}
	}
}

// WatchFinished waits for local audio to end on its own.
func WatchFinished(p player.Interface) tea.Cmd {
	finished := p.FinishedChan()
	done := p.Done()
	return func() tea.Msg {
		select {
		case <-finished:
			return PlaybackFinishedMsg{}
		case <-done:
			return nil
		}
	}
}

func (m Model) checkUpdateCmd(manual bool) tea.Cmd {
	checker := m.deps.Checker
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), updateTimeout)
		defer cancel()
		return UpdateCheckedMsg{Result: checker.Check(ctx), Manual: manual}
	}
}

// recoverCmd matches the recorded downloads against the release res
// announced.
func (m Model) recoverCmd(res update.Result, manual bool) tea.Cmd {
	updater := m.deps.Updater
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), updateTimeout)
		defer cancel()
		rec, err := updater.Recover(ctx, res.Current, res.Latest)
		return UpdateRecoveredMsg{Recovery: rec, Result: res, Manual: manual, Err: err}
	}
}

// downloadCmd starts fetching the release package. The download outlives
// the command, so it runs on a background context.
func (m Model) downloadCmd(rel update.Release) tea.Cmd {
	updater := m.deps.Updater
	return func() tea.Msg {
		id, outcome, err := updater.Download(context.Background(), rel)
		return DownloadStartedMsg{JobID: id, Release: rel, Outcome: outcome, Err: err}
	}
}

func (m Model) resumeCmd(job update.Job) tea.Cmd {
	updater := m.deps.Updater
	return func() tea.Msg {
		outcome, err := updater.Resume(context.Background(), job)
		return DownloadStartedMsg{JobID: job.ID, Outcome: outcome, Err: err}
	}
}

// waitProgress waits for the next progress report of the running download.
func waitProgress(ch <-chan DownloadProgressMsg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}

func waitOutcome(ch <-chan update.Outcome) tea.Cmd {
	return func() tea.Msg {
		out, ok := <-ch
		if !ok {
			return nil
		}
		return DownloadDoneMsg{Outcome: out}
	}
}

// installCmd replaces the running binary with the one in the package.
func (m Model) installCmd(job update.Job) tea.Cmd {
	install := m.deps.Install
	executable := m.deps.Executable
	if executable == nil {
		executable = os.Executable
	}
	return func() tea.Msg {
		target, err := executable()
		if err != nil {
			return InstalledMsg{Err: err}
		}
		return InstalledMsg{Target: target, Err: install(job.Path, target)}
	}
}

// playRecordCmd resolves rec and hands the result to the launcher.
// Local audio comes back untouched for the in-process player.
func (m Model) playRecordCmd(rec media.Record) tea.Cmd {
	resolver := m.deps.Resolver
	launcher := m.deps.Launcher
	return func() tea.Msg {
		act := resolver.Resolve(rec)
		if _, ok := act.(media.NoAction); ok || launcher == nil {
			return PlaybackResolvedMsg{Key: rec.Key, Action: act}
		}
		ctx, cancel := context.WithTimeout(context.Background(), launchTimeout)
		defer cancel()
		taken, err := launcher.Run(ctx, act)
		return PlaybackResolvedMsg{Key: rec.Key, Action: taken, Err: err}
	}
}
