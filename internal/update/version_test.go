package update

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const descriptor = `# hymnchtv release
last_version = 2.1.0
last_version_code = 210
download_link = https://atalk.sytes.net/releases/hymnchtv/hymnchtv-2.1.0.zip
download_link-debug = https://atalk.sytes.net/releases/hymnchtv/hymnchtv-2.1.0-debug.zip
`

func TestParseDescriptor(t *testing.T) {
	rel, err := ParseDescriptor([]byte(descriptor), false)
	require.NoError(t, err)
	assert.Equal(t, Release{
		Version: "2.1.0",
		Code:    210,
		Link:    "https://atalk.sytes.net/releases/hymnchtv/hymnchtv-2.1.0.zip",
	}, rel)

	rel, err = ParseDescriptor([]byte(descriptor), true)
	require.NoError(t, err)
	assert.Equal(t, "https://atalk.sytes.net/releases/hymnchtv/hymnchtv-2.1.0-debug.zip", rel.Link)
}

func TestParseDescriptor_DebugFallsBack(t *testing.T) {
	data := "last_version=1.0\nlast_version_code=100\ndownload_link=https://m/a.zip\n"

	rel, err := ParseDescriptor([]byte(data), true)
	require.NoError(t, err)
	assert.Equal(t, "https://m/a.zip", rel.Link)
}

func TestParseDescriptor_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing version", "last_version_code=1\n"},
		{"missing code", "last_version=1.0\n"},
		{"bad code", "last_version=1.0\nlast_version_code=abc\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDescriptor([]byte(tt.data), false)
			assert.Error(t, err)
		})
	}
}

func TestCurrent(t *testing.T) {
	oldVersion, oldCode := Version, VersionCode
	t.Cleanup(func() { Version, VersionCode = oldVersion, oldCode })

	Version, VersionCode = "2.0.0", "200"
	assert.Equal(t, Release{Version: "2.0.0", Code: 200}, Current())

	VersionCode = "dev"
	assert.Equal(t, 0, Current().Code)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "update available", UpdateAvailable.String())
	assert.Equal(t, "unknown", State(42).String())
	assert.True(t, Downloading.Busy())
	assert.False(t, InstallPrompt.Busy())
}
