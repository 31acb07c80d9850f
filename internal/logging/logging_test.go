package logging

import (
	"log"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWritesToDataDir(t *testing.T) {
	prevDefault := slog.Default()
	prevOut := log.Writer()
	t.Cleanup(func() {
		slog.SetDefault(prevDefault)
		log.SetOutput(prevOut)
	})

	dir := t.TempDir()
	closer, err := Init(dir, slog.LevelInfo)
	require.NoError(t, err)

	slog.Debug("hidden below level")
	slog.Info("item created", "name", "Socks")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(Path(dir))
	require.NoError(t, err)
	assert.Contains(t, string(data), "item created")
	assert.Contains(t, string(data), "name=Socks")
	assert.NotContains(t, string(data), "hidden below level")
}
