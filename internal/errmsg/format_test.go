//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"fmt"
	"testing"

	"github.com/llehouerou/hymnchtv/internal/hymnal"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpMediaSave,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpMediaSave,
			err:      errors.New("database is locked"),
			expected: "Failed to save hymn media: database is locked",
		},
		{
			name:     "update operation",
			op:       OpUpdateCheck,
			err:      errors.New("network error"),
			expected: "Failed to check for updates: network error",
		},
		{
			name:     "playback operation",
			op:       OpPlaybackStart,
			err:      errors.New("no audio device"),
			expected: "Failed to start playback: no audio device",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpLyricsLoad,
			context:  "db1",
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with context",
			op:       OpLyricsLoad,
			context:  "db1",
			err:      errors.New("permission denied"),
			expected: "Failed to load lyrics 'db1': permission denied",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpOpenExternal,
			context:  "",
			err:      errors.New("no handler"),
			expected: "Failed to open media: no handler",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}

func TestValidation(t *testing.T) {
	_, gapErr := hymnal.Validate(hymnal.ER, 18, false)
	_, rangeErr := hymnal.Validate(hymnal.XB, 500, false)

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"gap", gapErr, gapErr.Error()},
		{"wrapped range", fmt.Errorf("jump: %w", rangeErr), "jump: " + rangeErr.Error()},
		{"no supplement", hymnal.ErrNoSupplement, "This hymnal has no supplement hymns"},
		{"other", errors.New("boom"), "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Validation(tt.err); got != tt.want {
				t.Errorf("Validation() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOpConstants(t *testing.T) {
	ops := []Op{
		OpLyricsLoad, OpScoreLoad,
		OpMediaLoad, OpMediaSave, OpMediaDelete,
		OpPlaybackStart, OpOpenExternal,
		OpUpdateCheck, OpUpdateDownload, OpUpdateInstall, OpUpdateClean,
		OpSettingsSave, OpStateLoad,
		OpInitialize,
	}

	testErr := errors.New("test error")

	for _, op := range ops {
		t.Run(string(op), func(t *testing.T) {
			expected := "Failed to " + string(op) + ": test error"
			if result := Format(op, testErr); result != expected {
				t.Errorf("Format = %q, want %q", result, expected)
			}
		})
	}
}
