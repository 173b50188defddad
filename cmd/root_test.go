package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/taskgate/internal/app"
	"github.com/adanyl0v/taskgate/internal/credential"
)

func TestMaskToken(t *testing.T) {
	assert.Equal(t, "****", maskToken("short"))
	assert.Equal(t, "****", maskToken("exactly12chr"))
	assert.Equal(t, "abcd...wxyz", maskToken("abcdefghijklmnopqrstuvwxyz"))
}

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	app.InitDefaultLogger()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCredentialCmd_FromSecretsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secrets.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"taskhub.token":"tok-1234567890-abcd"}`), 0o600))
	t.Setenv("ENV", "prod")
	t.Setenv("TASKGATE_SECRETS_FILE", path)
	t.Setenv("CREDENTIAL_CACHE_TTL", "0s")

	out, err := runRoot(t, "credential")
	require.NoError(t, err)

	assert.Contains(t, out, "source: secrets:taskhub.token")
	assert.Contains(t, out, "tok-...abcd")
	assert.NotContains(t, out, "1234567890")
}

func TestCredentialCmd_Missing(t *testing.T) {
	t.Setenv("ENV", "prod")
	t.Setenv("TASKGATE_SECRETS_FILE", filepath.Join(t.TempDir(), "missing.json"))
	t.Setenv(credential.EnvVar, "")
	require.NoError(t, os.Unsetenv(credential.EnvVar))

	_, err := runRoot(t, "credential")
	assert.ErrorIs(t, err, credential.ErrNoCredential)
}
