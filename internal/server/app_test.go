package server

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/itnewcomer/Memento/internal/logging"
	"github.com/itnewcomer/Memento/internal/server/auth"
	"github.com/itnewcomer/Memento/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.DatabaseDSN = ":memory:"
	c.EndpointAddrGRPC = "127.0.0.1:0"
	c.LogLevel = "error"
	return c
}

func TestApp_IssueToken(t *testing.T) {
	c := testConfig()
	app, err := NewApp(context.Background(), c)
	require.NoError(t, err)
	defer app.db.Close()

	var buf bytes.Buffer
	require.NoError(t, app.IssueToken(&buf))

	sub, err := auth.ValidateToken(strings.TrimSpace(buf.String()), []byte(c.SecretKey))
	require.NoError(t, err)
	assert.Equal(t, TokenSubject, sub)
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop after cancel")
	}
	assert.Error(t, app.db.Ping(), "database should be closed")
}

func TestNewApp_BadDSN(t *testing.T) {
	c := testConfig()
	c.DatabaseDSN = "/nonexistent-dir/sub/memento.db"
	_, err := NewApp(context.Background(), c)
	assert.Error(t, err)
}

func TestNewApp_WarnsOnDefaultSecret(t *testing.T) {
	var buf bytes.Buffer
	app, err := newApp(context.Background(), testConfig(), logging.New(&buf, "warn", "text"))
	require.NoError(t, err)
	defer app.Close()
	assert.Contains(t, buf.String(), "built-in default")

	buf.Reset()
	c := testConfig()
	c.SecretKey = "a-real-secret"
	app2, err := newApp(context.Background(), c, logging.New(&buf, "warn", "text"))
	require.NoError(t, err)
	defer app2.Close()
	assert.Empty(t, buf.String())
}

func TestApp_CloseAfterIssueToken(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig())
	require.NoError(t, err)

	require.NoError(t, app.IssueToken(&bytes.Buffer{}))
	require.NoError(t, app.Close())
	assert.Error(t, app.db.Ping(), "database should be closed")
}
