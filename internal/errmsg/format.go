// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import (
	"errors"
	"fmt"

	"github.com/llehouerou/hymnchtv/internal/hymnal"
)

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Hymn content
	OpLyricsLoad Op = "load lyrics"
	OpScoreLoad  Op = "load score"

	// Media records
	OpMediaLoad   Op = "load hymn media"
	OpMediaSave   Op = "save hymn media"
	OpMediaDelete Op = "delete hymn media"

	// Playback
	OpPlaybackStart Op = "start playback"
	OpOpenExternal  Op = "open media"

	// Update
	OpUpdateCheck    Op = "check for updates"
	OpUpdateDownload Op = "download update"
	OpUpdateInstall  Op = "install update"
	OpUpdateClean    Op = "remove old downloads"

	// Persistence
	OpSettingsSave Op = "save viewer settings"
	OpStateLoad    Op = "load saved state"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}

// Validation returns the message for a rejected hymn number. Range and gap
// errors already name the acceptable numbers, so they are shown as is.
func Validation(err error) string {
	if err == nil {
		return ""
	}
	var rangeErr *hymnal.RangeError
	var gapErr *hymnal.GapError
	if errors.As(err, &rangeErr) || errors.As(err, &gapErr) {
		return err.Error()
	}
	if errors.Is(err, hymnal.ErrNoSupplement) {
		return "This hymnal has no supplement hymns"
	}
	return err.Error()
}
