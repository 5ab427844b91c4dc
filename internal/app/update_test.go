package app

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/hymnchtv/internal/ui/confirm"
	"github.com/llehouerou/hymnchtv/internal/update"
)

var (
	running = update.Release{Version: "2.0.0", Code: 200}
	latest  = update.Release{Version: "2.1.0", Code: 210, Link: "https://mirror-a.example/hymnchtv-2.1.0.zip"}
	// newer is what a mirror answers when 2.1.0 is published.
	newer = update.Result{State: update.UpdateAvailable, Current: running, Latest: latest, Mirror: "https://mirror-a.example"}
)

// checked delivers a mirror answer and the recovery it triggers.
func checked(t *testing.T, m Model, res update.Result, manual bool) (Model, tea.Cmd) {
	t.Helper()
	m, cmd := send(m, UpdateCheckedMsg{Result: res, Manual: manual})
	require.NotNil(t, cmd)
	msg, ok := cmd().(UpdateRecoveredMsg)
	require.True(t, ok, "a reached mirror is followed by recovery")
	return send(m, msg)
}

func newUpdateModel(t *testing.T, checker *fakeChecker, updater *fakeUpdater) (Model, *testEnv) {
	t.Helper()
	env := newTestEnv(t)
	deps := env.deps()
	if checker != nil {
		deps.Checker = checker
	}
	if updater != nil {
		deps.Updater = updater
	}
	m, err := New(deps)
	require.NoError(t, err)
	return m, env
}

func TestManualCheck_UpToDate(t *testing.T) {
	checker := &fakeChecker{result: update.Result{State: update.UpToDate, Current: update.Release{Version: "2.0.0"}}}
	m, _ := newUpdateModel(t, checker, nil)

	m, cmd := pressKey(m, "U")
	assert.Equal(t, update.Checking, m.UpdateState())
	require.NotNil(t, cmd)

	m, _ = send(m, m.checkUpdateCmd(true)())
	assert.Equal(t, 1, checker.calls)
	assert.Equal(t, update.UpToDate, m.UpdateState())
	assert.Contains(t, m.Status().Message, "Up to date")
}

func TestStartupCheck_UpToDateIsSilent(t *testing.T) {
	m, _ := newUpdateModel(t, &fakeChecker{}, nil)

	m, _ = send(m, UpdateCheckedMsg{Result: update.Result{State: update.UpToDate}})
	assert.Empty(t, m.Status().Message)
}

func TestUpdateAvailable_AsksThenDownloads(t *testing.T) {
	updater := newFakeUpdater()
	updater.recovery = update.Recovery{State: update.UpdateAvailable}
	m, env := newUpdateModel(t, &fakeChecker{}, updater)

	m, _ = checked(t, m, newer, false)
	assert.Equal(t, [][2]update.Release{{running, latest}}, updater.recovered)
	assert.Equal(t, update.UpdateAvailable, m.UpdateState())
	require.IsType(t, &confirm.Model{}, m.Popup())
	require.Len(t, env.notifier.Sent(), 1)
	assert.Equal(t, "Update available", env.notifier.Sent()[0].Title)

	m, cmd := pressKey(m, "y")
	require.NotNil(t, cmd)
	m, cmd = send(m, cmd())
	assert.Nil(t, m.Popup())
	assert.Equal(t, update.Downloading, m.UpdateState())
	require.NotNil(t, m.Status().Job)
	require.NotNil(t, cmd)

	started := cmd().(DownloadStartedMsg)
	require.NoError(t, started.Err)
	assert.Equal(t, []update.Release{latest}, updater.downloads)

	m, _ = send(m, started)
	m, _ = send(m, DownloadProgressMsg{JobID: started.JobID, Done: 512, Total: 1024})
	assert.Equal(t, int64(512), m.Status().Job.Done)
	assert.Equal(t, update.FormatProgress(512, 1024), m.Status().Job.Text)
}

func TestUpdateAvailable_Declined(t *testing.T) {
	updater := newFakeUpdater()
	updater.recovery = update.Recovery{State: update.UpdateAvailable}
	m, _ := newUpdateModel(t, &fakeChecker{}, updater)

	m, _ = checked(t, m, newer, false)
	m, cmd := pressKey(m, "n")
	require.NotNil(t, cmd)
	m, _ = send(m, cmd())

	assert.Nil(t, m.Popup())
	assert.Empty(t, updater.downloads)
}

func TestDownloadDone_Verifies(t *testing.T) {
	updater := newFakeUpdater()
	updater.recovery = update.Recovery{State: update.UpdateAvailable}
	m, _ := newUpdateModel(t, &fakeChecker{}, updater)
	m, _ = checked(t, m, newer, false)
	m, cmd := pressKey(m, "y")
	m, _ = send(m, cmd())

	job := update.Job{ID: 1, Path: "/cache/hymnchtv-2.1.0.zip", VersionCode: 210}
	updater.recovery = update.Recovery{State: update.InstallPrompt, Job: &job}
	m, cmd = send(m, DownloadDoneMsg{Outcome: update.Outcome{JobID: 1, Path: job.Path}})
	require.NotNil(t, cmd)
	m, _ = send(m, cmd())

	require.Len(t, updater.recovered, 2)
	assert.Equal(t, [2]update.Release{running, latest}, updater.recovered[1])

	assert.Equal(t, update.InstallPrompt, m.UpdateState())
	assert.IsType(t, &confirm.Model{}, m.Popup())
	assert.Nil(t, m.Status().Job)
}

func TestInstallPrompt_InstallsNextToExecutable(t *testing.T) {
	updater := newFakeUpdater()
	env := newTestEnv(t)
	deps := env.deps()
	deps.Updater = updater
	var installed [2]string
	deps.Install = func(pkg, target string) error {
		installed = [2]string{pkg, target}
		return nil
	}
	deps.Executable = func() (string, error) { return "/opt/hymnchtv/hymnchtv", nil }
	m, err := New(deps)
	require.NoError(t, err)

	job := update.Job{ID: 3, Path: "/cache/pkg.zip", VersionCode: 210}
	m, _ = send(m, UpdateRecoveredMsg{Recovery: update.Recovery{State: update.InstallPrompt, Job: &job}})
	require.NotNil(t, m.Popup())

	m, cmd := pressKey(m, "enter")
	require.NotNil(t, cmd)
	m, cmd = send(m, cmd())
	require.NotNil(t, cmd)
	m, _ = send(m, cmd())

	assert.Equal(t, [2]string{"/cache/pkg.zip", "/opt/hymnchtv/hymnchtv"}, installed)
	assert.Equal(t, update.UpToDate, m.UpdateState())
	assert.Contains(t, m.Status().Message, "restart")
}

func TestInstall_Failure(t *testing.T) {
	m, _ := newUpdateModel(t, nil, newFakeUpdater())

	m, _ = send(m, InstalledMsg{Target: "/opt/hymnchtv", Err: errors.New("permission denied")})
	assert.Equal(t, update.Failed, m.UpdateState())
	assert.Contains(t, m.Status().Message, "Failed to install update")
}

func TestRecover_ResumesInterruptedDownload(t *testing.T) {
	updater := newFakeUpdater()
	m, _ := newUpdateModel(t, nil, updater)
	job := update.Job{ID: 7, BytesDone: 100, BytesTotal: 400}

	m, cmd := send(m, UpdateRecoveredMsg{Recovery: update.Recovery{State: update.Downloading, Job: &job}})
	require.NotNil(t, cmd)
	assert.Equal(t, update.Downloading, m.UpdateState())
	require.NotNil(t, m.Status().Job)
	assert.Equal(t, int64(100), m.Status().Job.Done)

	started := cmd().(DownloadStartedMsg)
	assert.Equal(t, int64(7), started.JobID)
	assert.Equal(t, []update.Job{job}, updater.resumed)
}

func TestRecover_ActiveDownloadLeftAlone(t *testing.T) {
	updater := newFakeUpdater()
	updater.active = true
	m, _ := newUpdateModel(t, nil, updater)
	job := update.Job{ID: 7}

	_, cmd := send(m, UpdateRecoveredMsg{Recovery: update.Recovery{State: update.Downloading, Job: &job}})
	assert.Nil(t, cmd)
	assert.Empty(t, updater.resumed)
}

func TestRecover_FailedReportedOnce(t *testing.T) {
	m, env := newUpdateModel(t, nil, newFakeUpdater())
	job := update.Job{ID: 9, Err: "HTTP 404"}
	msg := UpdateRecoveredMsg{Recovery: update.Recovery{State: update.Failed, Job: &job, Err: errors.New("HTTP 404")}}

	m, _ = send(m, msg)
	assert.Equal(t, update.Failed, m.UpdateState())
	assert.Equal(t, levelError, m.Status().Level)
	require.Len(t, env.notifier.Sent(), 1)

	_, _ = send(m, msg)
	assert.Len(t, env.notifier.Sent(), 1)
}

func TestUnreachableMirrors_DownloadsLeftAlone(t *testing.T) {
	updater := newFakeUpdater()
	m, _ := newUpdateModel(t, &fakeChecker{}, updater)

	m, cmd := send(m, UpdateCheckedMsg{Result: update.Result{State: update.UpToDate, Current: running}, Manual: true})
	require.NotNil(t, cmd)
	assert.Empty(t, updater.recovered)
	assert.Contains(t, m.Status().Message, "Up to date")
}

func TestCheck_InstalledPackageNotOfferedAgain(t *testing.T) {
	updater := newFakeUpdater()
	updater.recovery = update.Recovery{State: update.UpToDate, Removed: 1}
	m, _ := newUpdateModel(t, &fakeChecker{}, updater)

	// 2.1.0 is running and is the latest release.
	res := update.Result{State: update.UpToDate, Current: latest, Latest: latest, Mirror: "https://mirror-a.example"}
	m, _ = checked(t, m, res, false)

	assert.Equal(t, [][2]update.Release{{latest, latest}}, updater.recovered)
	assert.Nil(t, m.Popup())
	assert.Empty(t, m.Status().Message)
}

func TestCheck_InterruptedDownloadResumes(t *testing.T) {
	updater := newFakeUpdater()
	job := update.Job{ID: 4, VersionCode: 210, BytesDone: 100, BytesTotal: 400}
	updater.recovery = update.Recovery{State: update.Downloading, Job: &job}
	m, _ := newUpdateModel(t, &fakeChecker{}, updater)

	m, cmd := checked(t, m, newer, false)
	require.NotNil(t, cmd)
	assert.Equal(t, update.Downloading, m.UpdateState())
	assert.Nil(t, m.Popup())

	_ = cmd()
	assert.Equal(t, []update.Job{job}, updater.resumed)
}

func TestManualCheck_FailedDownloadOffersRetry(t *testing.T) {
	updater := newFakeUpdater()
	job := update.Job{ID: 9, VersionCode: 210, Err: "HTTP 404"}
	updater.recovery = update.Recovery{State: update.Failed, Job: &job, Err: errors.New("HTTP 404")}
	m, env := newUpdateModel(t, &fakeChecker{}, updater)

	m, _ = checked(t, m, newer, false)
	assert.Equal(t, update.Failed, m.UpdateState())
	assert.Nil(t, m.Popup(), "a startup check only reports the failure")
	require.Len(t, env.notifier.Sent(), 1)

	m, _ = checked(t, m, newer, true)
	require.IsType(t, &confirm.Model{}, m.Popup())
	assert.Len(t, env.notifier.Sent(), 1, "the failure is reported once")

	m, cmd := pressKey(m, "y")
	require.NotNil(t, cmd)
	_, cmd = send(m, cmd())
	require.NotNil(t, cmd)
	_ = cmd()
	assert.Equal(t, []update.Release{latest}, updater.downloads)
}

func TestCheckDisabledWithoutChecker(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = pressKey(m, "U")
	assert.Equal(t, update.UpToDate, m.UpdateState())
	assert.Contains(t, m.Status().Message, "disabled")
}
