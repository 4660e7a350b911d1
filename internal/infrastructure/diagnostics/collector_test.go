package diagnostics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inqboard/internal/domain/server"
	"inqboard/internal/shared/logger"
)

type mockRunner struct {
	runFunc func(ctx context.Context, target Target, command string) (string, error)
	calls   []string
}

func (m *mockRunner) Run(ctx context.Context, target Target, command string) (string, error) {
	m.calls = append(m.calls, command)
	return m.runFunc(ctx, target, command)
}

type passthroughDecryptor struct{}

func (passthroughDecryptor) Decrypt(blob string) (string, error) {
	return blob, nil
}

func newTestServer(t *testing.T, sshPass, siteURL, dbPass string) *server.Server {
	t.Helper()
	srv, err := server.ReconstructServer(
		1, "acme-shop", "에이크미 쇼핑몰", "203.0.113.10", 22,
		"root", sshPass,
		"qna_user", dbPass,
		siteURL, "", "",
		"", "", "",
		"",
		true,
		time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return srv
}

func TestCollectorSkipsIncompleteServers(t *testing.T) {
	runner := &mockRunner{runFunc: func(context.Context, Target, string) (string, error) {
		return "", nil
	}}
	c := NewCollector(runner, passthroughDecryptor{}, logger.NewLogger())

	assert.Nil(t, c.Collect(context.Background(), nil))
	assert.Nil(t, c.Collect(context.Background(), newTestServer(t, "", "", "")))
	assert.Empty(t, runner.calls)
}

func TestCollectorRunsBaseBattery(t *testing.T) {
	runner := &mockRunner{runFunc: func(_ context.Context, target Target, command string) (string, error) {
		assert.Equal(t, "203.0.113.10", target.Host)
		assert.Equal(t, "ssh-secret", target.Password)
		return "ok", nil
	}}
	c := NewCollector(runner, passthroughDecryptor{}, logger.NewLogger())

	results := c.Collect(context.Background(), newTestServer(t, "ssh-secret", "", ""))
	require.NotNil(t, results)

	for _, key := range []string{
		"uptime", "disk", "memory", "cpu_load", "web_server", "mysql_status",
		"web_error_log", "php_error_log", "php_fpm_status", "listening_ports",
		"recent_cron",
	} {
		assert.Contains(t, results, key)
	}
	assert.NotContains(t, results, "site_http_check")
	assert.NotContains(t, results, "db_check")
	assert.Len(t, runner.calls, 11)
}

func TestCollectorConditionalProbes(t *testing.T) {
	runner := &mockRunner{runFunc: func(context.Context, Target, string) (string, error) {
		return "ok", nil
	}}
	c := NewCollector(runner, passthroughDecryptor{}, logger.NewLogger())

	results := c.Collect(context.Background(), newTestServer(t, "ssh-secret", "shop.example.com", "db-secret"))
	require.NotNil(t, results)

	assert.Contains(t, results, "site_http_check")
	assert.Contains(t, results, "db_check")
	assert.Contains(t, results, "db_process")
	assert.Len(t, results, 14)
}

func TestCollectorDegradesOnDeadHost(t *testing.T) {
	runner := &mockRunner{runFunc: func(context.Context, Target, string) (string, error) {
		return "", errors.New("connection refused")
	}}
	c := NewCollector(runner, passthroughDecryptor{}, logger.NewLogger())

	results := c.Collect(context.Background(), newTestServer(t, "ssh-secret", "", ""))
	require.NotNil(t, results)
	require.Len(t, results, 11)

	for key, value := range results {
		assert.Contains(t, value, "수집 실패", key)
	}
}

func TestProbeLabelsCoverOrder(t *testing.T) {
	for _, key := range ProbeOrder {
		assert.Contains(t, ProbeLabels, key)
	}
}
