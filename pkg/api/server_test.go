package api

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/goran-ethernal/OrderScope/internal/common"
	"github.com/goran-ethernal/OrderScope/internal/logger"
	storemocks "github.com/goran-ethernal/OrderScope/internal/store/mocks"
	"github.com/goran-ethernal/OrderScope/pkg/config"
	"github.com/goran-ethernal/OrderScope/pkg/store"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewServer_Timeouts(t *testing.T) {
	t.Parallel()

	cfg := &config.APIConfig{
		Enabled:       true,
		ListenAddress: "localhost:8080",
		ReadTimeout:   common.NewDuration(5 * time.Second),
		WriteTimeout:  common.NewDuration(10 * time.Second),
		IdleTimeout:   common.NewDuration(60 * time.Second),
	}

	server := NewServer(cfg, storemocks.NewReader(t), logger.NewNopLogger())

	require.NotNil(t, server.Handler())
	require.Equal(t, "localhost:8080", server.server.Addr)
	require.Equal(t, 5*time.Second, server.server.ReadTimeout)
	require.Equal(t, 10*time.Second, server.server.WriteTimeout)
	require.Equal(t, 60*time.Second, server.server.IdleTimeout)
}

func TestServer_Start_Disabled(t *testing.T) {
	t.Parallel()

	cfg := &config.APIConfig{Enabled: false}
	cfg.ApplyDefaults()

	server := NewServer(cfg, storemocks.NewReader(t), logger.NewNopLogger())
	require.NoError(t, server.Start(context.Background()))
	require.Empty(t, server.Addr())
}

func TestServer_StartAndShutdown(t *testing.T) {
	t.Parallel()

	results := storemocks.NewReader(t)
	results.EXPECT().ListLiquidators(mock.Anything).Return([]store.LiquidatorSummary{}, nil)

	cfg := &config.APIConfig{Enabled: true, ListenAddress: "127.0.0.1:0"}
	cfg.ApplyDefaults()
	server := NewServer(cfg, results, logger.NewNopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.Start(ctx) }()

	require.Eventually(t, func() bool { return server.Addr() != "" }, 5*time.Second, 10*time.Millisecond)

	resp, err := http.Get(fmt.Sprintf("http://%s/health", server.Addr()))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(fmt.Sprintf("http://%s/swagger/doc.json", server.Addr()))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_Start_ListenError(t *testing.T) {
	t.Parallel()

	cfg := &config.APIConfig{Enabled: true, ListenAddress: "256.0.0.1:99999"}
	cfg.ApplyDefaults()

	server := NewServer(cfg, storemocks.NewReader(t), logger.NewNopLogger())
	require.Error(t, server.Start(context.Background()))
}
