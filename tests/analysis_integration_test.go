package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/goran-ethernal/OrderScope/internal/analyzer"
	"github.com/goran-ethernal/OrderScope/internal/config"
	"github.com/goran-ethernal/OrderScope/internal/logger"
	"github.com/goran-ethernal/OrderScope/internal/report"
	"github.com/goran-ethernal/OrderScope/internal/store"
	"github.com/goran-ethernal/OrderScope/pkg/api"
	"github.com/goran-ethernal/OrderScope/tests/helpers"
	"github.com/stretchr/testify/require"
)

const configTemplate = `
search:
  url: %q
  api_key: %q
  retry:
    max_attempts: 2
    initial_backoff: 10ms
    max_backoff: 20ms
analysis:
  relation: frontrun
  oracle_feeder: %q
  liquidators:
    - %q
  from_height: 100
  to_height: 200
  split_height: 150
  bucket_size: 50
store:
  path: %q
  compact_on_save: true
api:
  enabled: true
  listen_address: "127.0.0.1:0"
logging:
  default_level: error
`

func writeConfig(t *testing.T, searchURL string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := fmt.Sprintf(configTemplate, searchURL, helpers.SearchAPIKey,
		helpers.OracleFeeder, helpers.Liquidator, filepath.Join(dir, "results.sqlite"))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()

	resp, err := http.Get(url) //nolint:noctx
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

// TestAnalysis_EndToEnd runs the whole pipeline: config file, search service,
// detection, persistence, console report and the REST API over the results.
func TestAnalysis_EndToEnd(t *testing.T) {
	srv := helpers.StartSearchServer(t)

	// 120: transfer, liquidation L1, price      -> L1 frontruns
	// 160: price, liquidation L2                -> price came first
	// 170: liquidation L3 | 171: price          -> L3 is last in its block, next block opens with a price
	// 180: liquidation L4, swap                 -> swap follows
	srv.AddBlock(120,
		helpers.TransferTx("T1", 120, helpers.Bystander),
		helpers.LiquidationTx("L1", 120, helpers.Liquidator),
		helpers.PriceTx("P1", 120, helpers.OracleFeeder),
	)
	srv.AddBlock(160,
		helpers.PriceTx("P2", 160, helpers.OracleFeeder),
		helpers.LiquidationTx("L2", 160, helpers.Liquidator),
	)
	srv.AddBlock(170, helpers.LiquidationTx("L3", 170, helpers.Liquidator))
	srv.AddBlock(171, helpers.PriceTx("P3", 171, helpers.OracleFeeder))
	srv.AddBlock(180,
		helpers.LiquidationTx("L4", 180, helpers.Liquidator),
		helpers.ExecuteTx("S1", 180, helpers.Bystander, helpers.SwapMsg),
	)

	cfg, err := config.LoadFromFile(writeConfig(t, srv.URL))
	require.NoError(t, err)

	results, err := store.Open(*cfg.Store, logger.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = results.Close() })

	a, err := analyzer.NewFromConfig(cfg, results)
	require.NoError(t, err)

	out, err := a.Run(t.Context())
	require.NoError(t, err)
	require.Len(t, out, 1)

	res := out[0]
	require.Len(t, res.Records, 4)
	// records keep the newest-first order of the search service
	require.Equal(t, []string{"L3", "L1"}, report.FlaggedHashes(res.Records))

	require.Equal(t, 4, res.Stats.Total)
	require.Equal(t, 2, res.Stats.Flagged)
	require.NotNil(t, res.Stats.Before)
	require.Equal(t, 1, res.Stats.Before.Total)
	require.Equal(t, 1, res.Stats.Before.Flagged)
	require.NotNil(t, res.Stats.After)
	require.Equal(t, 3, res.Stats.After.Total)
	require.Equal(t, 1, res.Stats.After.Flagged)

	var console bytes.Buffer
	require.NoError(t, report.WriteFlagged(&console, res))
	require.NoError(t, report.WriteSummary(&console, res))
	require.Contains(t, console.String(), "L3\nL1\n")
	require.Contains(t, console.String(), helpers.Liquidator+" (frontrun)")

	apiServer := httptest.NewServer(api.NewServer(cfg.API, results, logger.NewNopLogger()).Handler())
	t.Cleanup(apiServer.Close)

	base := apiServer.URL + "/api/v1/liquidators/" + helpers.Liquidator

	t.Run("liquidators", func(t *testing.T) {
		var infos []api.LiquidatorInfo
		require.Equal(t, http.StatusOK, getJSON(t, apiServer.URL+"/api/v1/liquidators", &infos))
		require.Len(t, infos, 1)
		require.Equal(t, helpers.Liquidator, infos[0].Liquidator)
		require.Equal(t, 4, infos[0].Total)
		require.Equal(t, 2, infos[0].Flagged)
	})

	t.Run("flagged liquidations", func(t *testing.T) {
		var body struct {
			Records    []map[string]any     `json:"records"`
			Pagination api.PaginationResult `json:"pagination"`
		}
		require.Equal(t, http.StatusOK, getJSON(t, base+"/liquidations?flagged=true", &body))
		require.Equal(t, 2, body.Pagination.Total)
		require.Len(t, body.Records, 2)
		// newest first
		require.Equal(t, "L3", body.Records[0]["hash"])
		require.Equal(t, true, body.Records[0]["frontrun"])
		require.Equal(t, "L1", body.Records[1]["hash"])
	})

	t.Run("stats", func(t *testing.T) {
		var stats api.StatsResponse
		require.Equal(t, http.StatusOK, getJSON(t, base+"/stats?split_height=150", &stats))
		require.Equal(t, 4, stats.Total)
		require.Equal(t, 2, stats.Flagged)
		require.InDelta(t, 50.0, stats.Percent, 0.001)
		require.NotNil(t, stats.Before)
		require.Equal(t, 1, stats.Before.Flagged)
	})

	t.Run("buckets", func(t *testing.T) {
		var buckets api.BucketsResponse
		require.Equal(t, http.StatusOK,
			getJSON(t, base+"/buckets?from_height=100&to_height=200&size=50", &buckets))
		require.Equal(t, []report.Bucket{
			{StartHeight: 100, Flagged: 1, Normal: 0},
			{StartHeight: 150, Flagged: 1, Normal: 2},
		}, buckets.Buckets)
	})

	t.Run("unknown liquidator", func(t *testing.T) {
		require.Equal(t, http.StatusNotFound,
			getJSON(t, apiServer.URL+"/api/v1/liquidators/"+helpers.Liquidator2+"/stats", nil))
	})
}

// TestAnalysis_FailureLeavesStoreUntouched checks that a failing search
// service aborts the run without persisting anything.
func TestAnalysis_FailureLeavesStoreUntouched(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	t.Cleanup(failing.Close)

	cfg, err := config.LoadFromFile(writeConfig(t, failing.URL))
	require.NoError(t, err)

	results, err := store.Open(*cfg.Store, logger.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = results.Close() })

	a, err := analyzer.NewFromConfig(cfg, results)
	require.NoError(t, err)

	_, err = a.Run(t.Context())
	require.Error(t, err)

	summaries, err := results.ListLiquidators(t.Context())
	require.NoError(t, err)
	require.Empty(t, summaries)
}
