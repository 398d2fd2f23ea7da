package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testLedger = `name: cli-test
accounts:
  asset: [money]
  income: [salary]
  expense: [groceries]
account_sums:
  spending: [groceries]
periods:
  - name: Jan
    transactions:
      - name: wages
        date: 2023-01-25
        transfers: {money: 200, salary: -200}
      - name: food
        date: 2023-01-27
        transfers: {money: -50, groceries: 50}
`

const brokenLedger = `name: broken
accounts:
  asset: [money]
periods:
  - name: Jan
    transactions:
      - name: off
        date: 2023-01-25
        transfers: {money: 5}
`

func writeLedger(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bookkeeping.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runTally(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out strings.Builder
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSummary_PrintsTotals(t *testing.T) {
	path := writeLedger(t, testLedger)

	out, err := runTally(t, "summary", path)
	require.NoError(t, err)

	assert.Contains(t, out, "name: cli-test")
	assert.Contains(t, out, "money: 150")
	assert.Contains(t, out, "spending:")
}

func TestSummary_Transfers(t *testing.T) {
	path := writeLedger(t, testLedger)

	out, err := runTally(t, "summary", path, "--transfers")
	require.NoError(t, err)
	assert.Contains(t, out, "transfers:")
	assert.Contains(t, out, "(Jan-000a)")
}

func TestSummary_UnbalancedLedgerFails(t *testing.T) {
	path := writeLedger(t, brokenLedger)

	_, err := runTally(t, "summary", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not sum to zero")
}

func TestSummary_MissingFile(t *testing.T) {
	_, err := runTally(t, "summary", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestCheck_ReportsCounts(t *testing.T) {
	path := writeLedger(t, testLedger)

	out, err := runTally(t, "check", path)
	require.NoError(t, err)
	assert.Contains(t, out, "ok: 3 accounts, 1 periods, 2 transactions")
}

func TestCheck_UndeclaredAccountFails(t *testing.T) {
	path := writeLedger(t, strings.Replace(testLedger, "groceries: 50", "mystery: 50", 1))

	_, err := runTally(t, "check", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undeclared account")
}

func TestInit_CreatesFiles(t *testing.T) {
	dir := t.TempDir()

	out, err := runTally(t, "init", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "created")

	_, err = os.Stat(filepath.Join(dir, "tally.yaml"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "bookkeeping.yaml"))
	require.NoError(t, err)
}

func TestInit_RefusesSecondRun(t *testing.T) {
	dir := t.TempDir()

	_, err := runTally(t, "init", dir)
	require.NoError(t, err)
	_, err = runTally(t, "init", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInit_StarterLedgerSummarizes(t *testing.T) {
	dir := t.TempDir()

	_, err := runTally(t, "init", dir)
	require.NoError(t, err)

	out, err := runTally(t, "summary", filepath.Join(dir, "bookkeeping.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "yearly_result:")
}
