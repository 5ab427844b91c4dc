package stderr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestForward(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	out := make(chan string, 1)

	forward(strings.NewReader("ALSA lib pcm.c: underrun\n\n  \nsecond line\n"), zap.New(core), out)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "underrun", strings.TrimPrefix(entries[0].ContextMap()["line"].(string), "ALSA lib pcm.c: "))
	assert.Equal(t, "second line", entries[1].ContextMap()["line"])

	// Only the first line fits; the second is dropped rather than blocking.
	assert.Equal(t, "ALSA lib pcm.c: underrun", <-out)
	assert.Empty(t, out)
}
