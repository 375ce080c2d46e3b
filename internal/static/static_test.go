package static

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSounds(t *testing.T) {
	assert.Equal(t, []string{"beep", "beep_long"}, Sounds())
	assert.True(t, IsSound("beep"))
	assert.False(t, IsSound("gong"))
}

func TestSoundPath(t *testing.T) {
	b, err := fs.ReadFile(Files, SoundPath("beep_long"))
	require.NoError(t, err)
	assert.Equal(t, "RIFF", string(b[:4]))
}
