package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) (path, logDir string) {
	t.Helper()
	root := t.TempDir()
	logDir = filepath.Join(root, "log")
	path = filepath.Join(root, "logging.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logDir: "+logDir+"\n"+body), 0o644))
	return path, logDir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDescribe(t *testing.T) {
	path, logDir := writeConfig(t, `
name: shop
handlers:
  console: {type: console, options: {writer: stderr}}
  -5: "null"
processors:
  30: process
`)

	out, err := run(t, "describe", "-c", path)
	require.NoError(t, err)

	for _, want := range []string{"console", "-5", "nlog.priority", "nlog.exception", "process", "built-in"} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "-5"), strings.Index(out, "console"))
	assert.Less(t, strings.Index(out, "nlog.priority"), strings.Index(out, "nlog.exception"))

	_, err = os.Stat(logDir)
	assert.True(t, os.IsNotExist(err), "describe must not create the log directory")
}

func TestDescribe_Fallback(t *testing.T) {
	path, _ := writeConfig(t, "")

	out, err := run(t, "describe", "-c", path)
	require.NoError(t, err)
	assert.Contains(t, out, "fallback")
	assert.Contains(t, strings.ToLower(out), "yes")
}

func TestDescribe_MissingConfig(t *testing.T) {
	_, err := run(t, "describe", "-c", filepath.Join(t.TempDir(), "none.yaml"))
	assert.Error(t, err)
}

func TestEmit(t *testing.T) {
	path, logDir := writeConfig(t, "name: shop\n")

	_, err := run(t, "emit", "-c", path, "--level", "warn", "disk", "almost", "full")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(logDir, "warn.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "shop: disk almost full")
}

func TestEmit_PriorityAndMetrics(t *testing.T) {
	path, logDir := writeConfig(t, "name: shop\n")

	out, err := run(t, "emit", "-c", path, "--priority", "access", "--metrics", "GET /cart")
	require.NoError(t, err)
	assert.Contains(t, out, "nlog_handler_processed_total")
	assert.Contains(t, out, "handler=fallback")

	data, err := os.ReadFile(filepath.Join(logDir, "access.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "GET /cart")
}

func TestEmit_Errors(t *testing.T) {
	path, _ := writeConfig(t, "hookToReporter: false\n")

	_, err := run(t, "emit", "-c", path, "--level", "loud", "x")
	assert.ErrorContains(t, err, "unknown level")

	_, err = run(t, "emit", "-c", path, "--priority", "access", "x")
	assert.ErrorContains(t, err, "hookToReporter")

	_, err = run(t, "emit", "-c", path)
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "dev, Go Version: go"))
}
