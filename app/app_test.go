package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	dbPath := filepath.ToSlash(filepath.Join(dir, "site.db"))

	content := `
[Webserver]
Port = 8080
URL = "http://localhost:8080"

[DB]
GormEngine = "sqlite"
Path = "` + dbPath + `"
Password = "db-secret"

[Auth]
Source = "local"
AdminUsername = "admin"
AdminPassword = "top-secret"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.toml"), []byte(content), 0o600))

	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		dumpJSON = false
	})

	err := rootCmd.Execute()

	return out.String(), err
}

func TestConfigDumpMasksSecrets(t *testing.T) {
	dir := writeConfig(t)

	out, err := run(t, "config", "dump", "--config", dir, "--env-file", "")
	require.NoError(t, err)
	assert.Contains(t, out, "[Webserver]")
	assert.NotContains(t, out, "top-secret")
	assert.NotContains(t, out, "db-secret")

	out, err = run(t, "config", "dump", "--json", "--config", dir, "--env-file", "")
	require.NoError(t, err)
	assert.Contains(t, out, `"Webserver"`)
	assert.NotContains(t, out, "top-secret")
}

func TestUserCommands(t *testing.T) {
	dir := writeConfig(t)

	out, err := run(t, "user", "create", "editor", "--password", "first-pass", "--config", dir, "--env-file", "")
	require.NoError(t, err)
	assert.Contains(t, out, "created user editor")

	_, err = run(t, "user", "create", "editor", "--password", "again", "--config", dir, "--env-file", "")
	require.Error(t, err)

	out, err = run(t, "user", "passwd", "editor", "--password", "second-pass", "--config", dir, "--env-file", "")
	require.NoError(t, err)
	assert.Contains(t, out, "password of editor changed")

	_, err = run(t, "user", "passwd", "nobody", "--password", "x", "--config", dir, "--env-file", "")
	require.Error(t, err)
}

func TestEnvFile(t *testing.T) {
	dir := writeConfig(t)
	envPath := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envPath, []byte("MADRASA_TITLE=from-dotenv\n"), 0o600))

	t.Cleanup(func() { _ = os.Unsetenv("MADRASA_TITLE") })

	out, err := run(t, "config", "dump", "--config", dir, "--env-file", envPath)
	require.NoError(t, err)
	assert.Contains(t, out, "from-dotenv")
}
