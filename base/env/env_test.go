package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	req := require.New(t)

	dir := t.TempDir()
	f := filepath.Join(dir, "test.env")
	req.NoError(os.WriteFile(f, []byte("GASLEX_TEST_FEE=0.1\nENV_NAME=from-file\n"), 0600))

	t.Setenv("ENV_NAME", "devnet")
	req.NoError(Load(f, filepath.Join(dir, "missing.env")))

	req.Equal("0.1", os.Getenv("GASLEX_TEST_FEE"))
	req.Equal("devnet", EnvName())
	os.Unsetenv("GASLEX_TEST_FEE")
}

func TestLoadNoFiles(t *testing.T) {
	require.NoError(t, Load(filepath.Join(t.TempDir(), ".env")))
}
