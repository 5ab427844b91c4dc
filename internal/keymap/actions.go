package keymap

// Action represents a user-triggerable action.
type Action string

const (
	ActionQuit        Action = "quit"
	ActionHelp        Action = "help"
	ActionHymnalDB    Action = "hymnal_db"
	ActionHymnalBB    Action = "hymnal_bb"
	ActionHymnalXB    Action = "hymnal_xb"
	ActionHymnalER    Action = "hymnal_er"
	ActionToggleView  Action = "toggle_view"
	ActionToggleMedia Action = "toggle_media"
	ActionCheckUpdate Action = "check_update"

	// Hymn navigation
	ActionNextHymn    Action = "next_hymn"
	ActionPrevHymn    Action = "prev_hymn"
	ActionNextHymn10  Action = "next_hymn_10"
	ActionPrevHymn10  Action = "prev_hymn_10"
	ActionFirstHymn   Action = "first_hymn"
	ActionLastHymn    Action = "last_hymn"
	ActionScrollDown  Action = "scroll_down"
	ActionScrollUp    Action = "scroll_up"
	ActionNextPage    Action = "next_page"
	ActionPrevPage    Action = "prev_page"
	ActionZoomIn      Action = "zoom_in"
	ActionZoomOut     Action = "zoom_out"
	ActionEnterNumber Action = "enter_number"

	// Media panel
	ActionPlayMedia     Action = "play_media"
	ActionMediaDown     Action = "media_down"
	ActionMediaUp       Action = "media_up"
	ActionPlayBanzou    Action = "play_banzou"
	ActionPlayChangshi  Action = "play_changshi"
	ActionPlayJiaochang Action = "play_jiaochang"

	// Playback
	ActionPlayPause   Action = "play_pause"
	ActionStop        Action = "stop"
	ActionSeekBack    Action = "seek_back"
	ActionSeekForward Action = "seek_forward"
	ActionVolumeUp    Action = "volume_up"
	ActionVolumeDown  Action = "volume_down"
	ActionMute        Action = "mute"

	// Number entry
	ActionEntryConfirm  Action = "entry_confirm"
	ActionEntryToggleFu Action = "entry_toggle_fu"
	ActionEntryCancel   Action = "entry_cancel"
)
