package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withSecretsDir подменяет каталог секретов на время теста.
func withSecretsDir(t *testing.T, dir string) {
	old := secretsDir
	secretsDir = dir
	t.Cleanup(func() { secretsDir = old })
}

func TestReadSecret(t *testing.T) {
	dir := t.TempDir()
	withSecretsDir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "jwt_secret"), []byte("  top-secret\n"), 0o600))

	secret, err := ReadSecret("jwt_secret")
	require.NoError(t, err)
	assert.Equal(t, "top-secret", secret)
}

func TestReadSecret_Missing(t *testing.T) {
	withSecretsDir(t, t.TempDir())

	_, err := ReadSecret("db_password")
	assert.Error(t, err)
}

func TestReadSecret_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	withSecretsDir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "db_password"), []byte("   \n"), 0o600))

	_, err := ReadSecret("db_password")
	assert.Error(t, err)
}
