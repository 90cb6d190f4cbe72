package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseYAML = `
app:
  name: forever-zama
  http_addr: ":5000"
  log_file: "./logs/app.log"
http:
  read_timeout: 10s
  write_timeout: 15s
  idle_timeout: 60s
firestore:
  project_id: "zama-test"
telegram:
  bot_token: "token-from-file"
  chat_id: "42"
  timeout: 10s
redis:
  sequence_key: "orders:sequence"
`

func writeConfigDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

func TestLoadBase(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{"base.yaml": baseYAML})

	cfg, err := Load(dir, "dev")
	require.NoError(t, err)

	assert.Equal(t, ":5000", cfg.App.HTTPAddr)
	assert.Equal(t, "zama-test", cfg.Firestore.ProjectID)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, "orders:sequence", cfg.Redis.SequenceKey)
}

func TestLoadEnvFileOverlay(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		"base.yaml": baseYAML,
		"prod.yaml": "app:\n  http_addr: \":8080\"\n",
	})

	cfg, err := Load(dir, "prod")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.App.HTTPAddr)
	assert.Equal(t, "zama-test", cfg.Firestore.ProjectID, "base values survive the overlay")
}

func TestLoadMissingOverlayIsFine(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{"base.yaml": baseYAML})

	_, err := Load(dir, "no_such_env")
	assert.NoError(t, err)
}

func TestEnvVarsOverrideFiles(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{"base.yaml": baseYAML})
	t.Setenv("ZAMA_TELEGRAM__BOT_TOKEN", "token-from-env")
	t.Setenv("ZAMA_FIRESTORE__PROJECT_ID", "zama-prod")

	cfg, err := Load(dir, "dev")
	require.NoError(t, err)
	assert.Equal(t, "token-from-env", cfg.Telegram.BotToken)
	assert.Equal(t, "zama-prod", cfg.Firestore.ProjectID)
}

func TestLegacyFirebaseCredentialsEnv(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{"base.yaml": baseYAML})
	t.Setenv("FIREBASE_CREDENTIALS", `{"type":"service_account"}`)

	cfg, err := Load(dir, "dev")
	require.NoError(t, err)
	assert.Equal(t, `{"type":"service_account"}`, cfg.Firestore.CredentialsJSON)
}

func TestValidateRejectsMissingTelegram(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{"base.yaml": `
app:
  http_addr: ":5000"
firestore:
  project_id: "zama-test"
`})

	_, err := Load(dir, "dev")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "telegram")
}

func TestValidateRejectsMissingProjectID(t *testing.T) {
	cfg := Config{}
	cfg.App.HTTPAddr = ":5000"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project_id")
}
