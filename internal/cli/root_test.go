package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quadlab/grhverify/internal/store"
	"github.com/quadlab/grhverify/internal/testutil"
)

// writeTestConfig creates a config file pointing at a fresh database and
// returns its path alongside the database path.
func writeTestConfig(t *testing.T) (configPath, dbPath string) {
	t.Helper()
	dir := t.TempDir()
	dbPath = filepath.Join(dir, "test.db")
	configPath = filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(
		"database: "+dbPath+"\noutput_dir: "+dir+"\nk: 20\n",
	), 0o644))
	return configPath, dbPath
}

// seedZeros caches ordinates for d so commands run without an lcalc binary.
func seedZeros(t *testing.T, dbPath string, d int64, ordinates []float64) {
	t.Helper()
	st, err := store.Open(dbPath)
	require.NoError(t, err)
	defer st.Close()
	require.NoError(t, st.WriteZeros(context.Background(), d, ordinates))
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(context.Background())
}

func TestRoot_RejectsUnknownFormat(t *testing.T) {
	err := execute(t, "--format", "xml", "verify", "-d", "5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestVerify_CachedZeros(t *testing.T) {
	configPath, dbPath := writeTestConfig(t)
	seedZeros(t, dbPath, 5, testutil.ZerosD5)

	err := execute(t, "--config", configPath, "verify", "-d", "5", "--eta", "0.35")
	require.NoError(t, err)
}

func TestVerify_PersistsOutcome(t *testing.T) {
	configPath, dbPath := writeTestConfig(t)
	seedZeros(t, dbPath, 5, testutil.ZerosD5)

	err := execute(t, "--config", configPath, "verify", "-d", "5", "--eta", "0.35")
	require.NoError(t, err)

	st, err := store.Open(dbPath)
	require.NoError(t, err)
	defer st.Close()

	res, err := st.ReadResult(context.Background(), 5, 0.35)
	require.NoError(t, err)
	assert.True(t, res.Verified)
	assert.Equal(t, 1, res.ZerosUsed)
	assert.NotEmpty(t, res.RunID)
}

func TestVerify_ReportsStoredOutcome(t *testing.T) {
	configPath, dbPath := writeTestConfig(t)

	// A stored outcome with no cached zeros and no lcalc binary: success
	// proves the command answered from the results table.
	st, err := store.Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, st.WriteResult(context.Background(), store.Result{
		D: 5, Eta: 0.35, Verified: true, ZerosUsed: 1, LHS: 2.68, RHS: 0.23, RunID: "earlier",
	}))
	require.NoError(t, st.Close())

	err = execute(t, "--config", configPath, "verify", "-d", "5", "--eta", "0.35")
	require.NoError(t, err)
}

func TestVerify_InconclusiveExitCode(t *testing.T) {
	configPath, dbPath := writeTestConfig(t)
	seedZeros(t, dbPath, 5, testutil.ZerosD5)

	err := execute(t, "--config", configPath, "verify", "-d", "5", "--eta", "10", "--max-zeros", "1")
	require.Error(t, err)
	assert.Equal(t, ExitInconclusive, GetExitCode(err))
}

func TestVerify_NonFundamentalDiscriminant(t *testing.T) {
	configPath, _ := writeTestConfig(t)

	err := execute(t, "--config", configPath, "verify", "-d", "7")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "not a fundamental discriminant")
}

func TestVerify_NoLCalcAndEmptyCache(t *testing.T) {
	configPath, _ := writeTestConfig(t)

	err := execute(t, "--config", configPath, "verify", "-d", "5", "--eta", "0.35")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestSweep_WritesSummaryAndLog(t *testing.T) {
	configPath, dbPath := writeTestConfig(t)
	seedZeros(t, dbPath, 5, testutil.ZerosD5)
	seedZeros(t, dbPath, 8, testutil.ZerosD5)

	err := execute(t, "--config", configPath, "sweep", "--d-min", "3", "--d-max", "8", "--eta", "0.35")
	require.NoError(t, err)

	dir := filepath.Dir(dbPath)
	summary, err := os.ReadFile(filepath.Join(dir, "summary.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(summary), "d,eta,zeros_used")
	assert.Contains(t, string(summary), "5,0.35,1")
	assert.Contains(t, string(summary), "8,0.35,1")

	// No failures, so the error log exists but stays empty.
	errLog, err := os.ReadFile(filepath.Join(dir, "errors.log"))
	require.NoError(t, err)
	assert.Empty(t, errLog)
}

func TestSweep_InvalidRange(t *testing.T) {
	configPath, _ := writeTestConfig(t)

	err := execute(t, "--config", configPath, "sweep", "--d-min", "10", "--d-max", "3")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestTables_CachesBothTables(t *testing.T) {
	configPath, dbPath := writeTestConfig(t)

	err := execute(t, "--config", configPath, "tables", "-d", "5")
	require.NoError(t, err)

	st, err := store.Open(dbPath)
	require.NoError(t, err)
	defer st.Close()

	chi, err := st.ReadKronecker(context.Background(), 5, 20)
	require.NoError(t, err)
	assert.Equal(t, testutil.ChiMod5(20), chi)

	lambda, err := st.ReadVonMangoldt(context.Background(), 20)
	require.NoError(t, err)
	assert.InDeltaSlice(t, testutil.Lambda(20), lambda, 1e-12)
}

func TestZeros_ServedFromCache(t *testing.T) {
	configPath, dbPath := writeTestConfig(t)
	seedZeros(t, dbPath, 5, testutil.ZerosD5)

	err := execute(t, "--config", configPath, "zeros", "-d", "5", "-n", "3")
	require.NoError(t, err)
}

func TestVerify_MissingConfigFile(t *testing.T) {
	err := execute(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "verify", "-d", "5")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
