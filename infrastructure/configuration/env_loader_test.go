package configuration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.env")
	content := "# comment line\n\nTEST_ENV_LOADER_A=value-a\nTEST_ENV_LOADER_B=\"quoted-b\"\nmalformed line\nTEST_ENV_LOADER_C = spaced-c\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("TEST_ENV_LOADER_A")
		os.Unsetenv("TEST_ENV_LOADER_B")
		os.Unsetenv("TEST_ENV_LOADER_C")
	})

	LoadEnvFromFile(path)

	assert.Equal(t, "value-a", os.Getenv("TEST_ENV_LOADER_A"))
	assert.Equal(t, "quoted-b", os.Getenv("TEST_ENV_LOADER_B"))
	assert.Equal(t, "spaced-c", os.Getenv("TEST_ENV_LOADER_C"))
}

func TestLoadEnvFromFile_DoesNotOverrideExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.env")
	require.NoError(t, os.WriteFile(path, []byte("TEST_ENV_LOADER_KEEP=from-file\n"), 0o600))
	t.Setenv("TEST_ENV_LOADER_KEEP", "from-os")

	LoadEnvFromFile(path)

	assert.Equal(t, "from-os", os.Getenv("TEST_ENV_LOADER_KEEP"))
}

func TestLoadEnvFromFile_MissingFileIsIgnored(t *testing.T) {
	assert.NotPanics(t, func() {
		LoadEnvFromFile("/nonexistent/path/config.env")
	})
}
