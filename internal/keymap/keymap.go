// Package keymap defines key bindings and action dispatch for the viewer.
package keymap

// Binding describes a single key binding.
type Binding struct {
	Keys        []string
	Action      Action
	Description string
	Context     string // "global", "hymn", "media", "playback", "entry"
}

// Contexts in help display order.
var Contexts = []string{"global", "hymn", "media", "playback", "entry"}

// ContextLabels maps contexts to help section titles.
var ContextLabels = map[string]string{
	"global":   "Global",
	"hymn":     "Hymn",
	"media":    "Media Panel",
	"playback": "Playback",
	"entry":    "Number Entry",
}

// All contains every key binding.
var All = []Binding{
	{[]string{"q", "ctrl+c"}, ActionQuit, "Quit", "global"},
	{[]string{"?"}, ActionHelp, "Show help", "global"},
	{[]string{"f1"}, ActionHymnalDB, "大本诗歌", "global"},
	{[]string{"f2"}, ActionHymnalBB, "補充本", "global"},
	{[]string{"f3"}, ActionHymnalXB, "新歌颂咏", "global"},
	{[]string{"f4"}, ActionHymnalER, "儿童诗歌", "global"},
	{[]string{"tab"}, ActionToggleView, "Lyrics / score", "global"},
	{[]string{"m"}, ActionToggleMedia, "Toggle media panel", "global"},
	{[]string{"U"}, ActionCheckUpdate, "Check for updates", "global"},

	{[]string{"l", "right"}, ActionNextHymn, "Next hymn", "hymn"},
	{[]string{"h", "left"}, ActionPrevHymn, "Previous hymn", "hymn"},
	{[]string{"L", "pgdown"}, ActionNextHymn10, "Forward 10 hymns", "hymn"},
	{[]string{"H", "pgup"}, ActionPrevHymn10, "Back 10 hymns", "hymn"},
	{[]string{"g", "home"}, ActionFirstHymn, "First hymn", "hymn"},
	{[]string{"G", "end"}, ActionLastHymn, "Last hymn", "hymn"},
	{[]string{"j", "down"}, ActionScrollDown, "Scroll down", "hymn"},
	{[]string{"k", "up"}, ActionScrollUp, "Scroll up", "hymn"},
	{[]string{"J"}, ActionNextPage, "Next score page", "hymn"},
	{[]string{"K"}, ActionPrevPage, "Previous score page", "hymn"},
	{[]string{"+", "="}, ActionZoomIn, "Larger lyrics", "hymn"},
	{[]string{"-"}, ActionZoomOut, "Smaller lyrics", "hymn"},
	{[]string{"#", ":"}, ActionEnterNumber, "Go to hymn number", "hymn"},
	{[]string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}, ActionEnterNumber, "Start number entry", "hymn"},

	{[]string{"enter"}, ActionPlayMedia, "Play selected media", "media"},
	{[]string{"ctrl+j"}, ActionMediaDown, "Next media kind", "media"},
	{[]string{"ctrl+k"}, ActionMediaUp, "Previous media kind", "media"},
	{[]string{"b"}, ActionPlayBanzou, "Play accompaniment", "media"},
	{[]string{"c"}, ActionPlayChangshi, "Play sung demo", "media"},
	{[]string{"t"}, ActionPlayJiaochang, "Play teaching", "media"},

	{[]string{" "}, ActionPlayPause, "Play/pause", "playback"},
	{[]string{"s"}, ActionStop, "Stop", "playback"},
	{[]string{"shift+left"}, ActionSeekBack, "Seek -5s", "playback"},
	{[]string{"shift+right"}, ActionSeekForward, "Seek +5s", "playback"},
	{[]string{"]"}, ActionVolumeUp, "Volume up", "playback"},
	{[]string{"["}, ActionVolumeDown, "Volume down", "playback"},
	{[]string{"M"}, ActionMute, "Mute", "playback"},

	{[]string{"enter"}, ActionEntryConfirm, "Go to number", "entry"},
	{[]string{"f"}, ActionEntryToggleFu, "Toggle supplement (大本)", "entry"},
	{[]string{"esc"}, ActionEntryCancel, "Cancel", "entry"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
