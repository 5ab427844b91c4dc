package app

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/hymnchtv/internal/config"
	"github.com/llehouerou/hymnchtv/internal/content"
	"github.com/llehouerou/hymnchtv/internal/hymnal"
	"github.com/llehouerou/hymnchtv/internal/keymap"
	"github.com/llehouerou/hymnchtv/internal/media"
	"github.com/llehouerou/hymnchtv/internal/notify"
	"github.com/llehouerou/hymnchtv/internal/player"
	"github.com/llehouerou/hymnchtv/internal/state"
	"github.com/llehouerou/hymnchtv/internal/ui/lyricsview"
	"github.com/llehouerou/hymnchtv/internal/ui/mediapanel"
	"github.com/llehouerou/hymnchtv/internal/ui/popup"
	"github.com/llehouerou/hymnchtv/internal/ui/scoreview"
	"github.com/llehouerou/hymnchtv/internal/ui/statusbar"
	"github.com/llehouerou/hymnchtv/internal/update"
)

// ViewMode selects what the body shows.
type ViewMode string

const (
	ViewLyrics ViewMode = "lyrics"
	ViewScore  ViewMode = "score"
)

const defaultHymnal = hymnal.DB

// Launcher runs resolved media actions. *launch.Dispatcher implements it.
type Launcher interface {
	Run(ctx context.Context, action media.Action) (media.Action, error)
}

// UpdateChecker polls the release mirrors. *update.Checker implements it.
type UpdateChecker interface {
	Check(ctx context.Context) update.Result
}

// Updater downloads release packages. *update.Updater implements it.
type Updater interface {
	OnProgress(fn func(id, done, total int64))
	Download(ctx context.Context, rel update.Release) (int64, <-chan update.Outcome, error)
	Resume(ctx context.Context, job update.Job) (<-chan update.Outcome, error)
	Active(id int64) bool
	Recover(ctx context.Context, current, latest update.Release) (update.Recovery, error)
}

// Deps are the services the model works with. Checker, Updater and
// Toaster may be nil.
type Deps struct {
	Config   *config.Config
	State    state.Interface
	Content  *content.Library
	Media    *media.Store
	Resolver *media.Resolver
	Launcher Launcher
	Player   player.Interface
	Checker  UpdateChecker
	Updater  Updater
	Toaster  *notify.Toaster
	Logger   *zap.Logger
	Graphics bool // terminal draws Kitty images

	// Install replaces the running binary; defaults to update.Install.
	Install func(pkg, target string) error
	// Executable returns the path of the running binary.
	Executable func() (string, error)
}

// Model is the root application model.
type Model struct {
	deps     Deps
	logger   *zap.Logger
	resolver *keymap.Resolver

	hymnal   hymnal.Type
	indexes  map[hymnal.Type]int
	ref      hymnal.Ref
	viewMode ViewMode

	lyrics       *lyricsview.Model
	score        *scoreview.Model
	mediaPanel   *mediapanel.Model
	mediaVisible bool
	popup        popup.Popup

	settings state.ViewerSettings
	status   statusbar.State
	statusV  int

	updateState update.State
	lastFailed  int64         // failed job already reported
	release     update.Result // last answer from a mirror
	progress    chan DownloadProgressMsg

	width, height int
}

// New builds the model and restores the saved hymn, view and settings.
func New(deps Deps) (Model, error) {
	if deps.State == nil || deps.Content == nil || deps.Media == nil || deps.Player == nil {
		return Model{}, errors.New("app: state, content, media and player are required")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Resolver == nil {
		deps.Resolver = media.NewResolver()
	}
	if deps.Toaster == nil {
		deps.Toaster = notify.NewToaster(nil, deps.Logger)
	}
	if deps.Install == nil {
		deps.Install = update.Install
	}
	if deps.Config == nil {
		deps.Config = &config.Config{}
	}

	m := Model{
		deps:        deps,
		logger:      deps.Logger,
		resolver:    keymap.ForContexts("global", "hymn", "media", "playback"),
		hymnal:      defaultHymnal,
		indexes:     make(map[hymnal.Type]int),
		viewMode:    ViewLyrics,
		lyrics:      lyricsview.New(),
		score:       scoreview.New(deps.Content, deps.Graphics, deps.Logger),
		mediaPanel:  mediapanel.New(),
		updateState: update.UpToDate,
		progress:    make(chan DownloadProgressMsg, 16),
	}

	m.restoreNavigation()
	m.restoreSettings()
	m.setIndex(m.indexes[m.hymnal])

	if deps.Updater != nil {
		progress := m.progress
		deps.Updater.OnProgress(func(id, done, total int64) {
			select {
			case progress <- DownloadProgressMsg{JobID: id, Done: done, Total: total}:
			default:
			}
		})
	}
	return m, nil
}

func (m *Model) restoreNavigation() {
	nav, err := m.deps.State.GetNavigation()
	if err != nil {
		m.logger.Warn("failed to load navigation state", zap.Error(err))
		return
	}
	if nav == nil {
		return
	}
	t, err := hymnal.ParseType(nav.Hymnal)
	if err != nil {
		m.logger.Warn("saved hymnal unknown", zap.String("hymnal", nav.Hymnal))
		return
	}
	m.hymnal = t
	m.indexes[t] = clampIndex(t, nav.Index)
	if ViewMode(nav.ViewMode) == ViewScore {
		m.viewMode = ViewScore
	}
}

func (m *Model) restoreSettings() {
	s, err := m.deps.State.GetViewerSettings()
	if err != nil {
		m.logger.Warn("failed to load viewer settings", zap.Error(err))
		s = state.DefaultViewerSettings
	}
	m.settings = s
	m.deps.Player.SetVolume(s.Volume)
	m.deps.Player.SetMuted(s.Muted)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.loadHymnCmd(m.ref),
		WatchStderr(),
	}
	if m.deps.Checker != nil && m.deps.Config.GetUpdateConfig().ShouldCheckOnStart() {
		cmds = append(cmds, m.checkUpdateCmd(false))
	}
	return tea.Batch(cmds...)
}

// Hymn returns the hymn being shown.
func (m Model) Hymn() hymnal.Ref { return m.ref }

// Index returns the page index within the current hymnal.
func (m Model) Index() int { return m.indexes[m.hymnal] }

// Mode returns the body view mode.
func (m Model) Mode() ViewMode { return m.viewMode }

// Status returns the status line state.
func (m Model) Status() statusbar.State { return m.status }

// UpdateState returns the update flow state.
func (m Model) UpdateState() update.State { return m.updateState }

// Popup returns the open popup, or nil.
func (m Model) Popup() popup.Popup { return m.popup }

// Settings returns the viewer settings in effect.
func (m Model) Settings() state.ViewerSettings { return m.settings }
