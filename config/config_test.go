package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir is a stand-in for t.Chdir, which requires Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(old) })
}

func TestInitDBReadsJWTSecretFromDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("JWT_SECRET=from_dot_env_file\n"), 0o644))
	chdir(t, dir)

	// register cleanup, then unset so the .env value is the only source
	t.Setenv("JWT_SECRET", "placeholder")
	os.Unsetenv("JWT_SECRET")
	t.Setenv("DB_PATH", "file:config_test_dotenv?mode=memory&cache=shared")

	InitDB()
	assert.Equal(t, "from_dot_env_file", string(JWTSecret))
}

func TestInitDBPrefersRealEnvOverDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("JWT_SECRET=from_dot_env_file\n"), 0o644))
	chdir(t, dir)

	t.Setenv("JWT_SECRET", "from_real_env")
	t.Setenv("DB_PATH", "file:config_test_env?mode=memory&cache=shared")

	InitDB()
	assert.Equal(t, "from_real_env", string(JWTSecret))
}

func TestInitDBFallsBackWithoutAnySecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "placeholder")
	os.Unsetenv("JWT_SECRET")
	t.Setenv("DB_PATH", "file:config_test_fallback?mode=memory&cache=shared")
	chdir(t, t.TempDir()) // no .env here

	InitDB()
	assert.Equal(t, "foodie_super_secret_2024", string(JWTSecret))
}
