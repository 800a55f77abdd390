package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDefaults(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run(nil, &stdout, &stderr))

	out := stdout.String()
	assert.Contains(t, out, "Max happiness")
	assert.Contains(t, out, "Max wood")
	assert.Contains(t, out, "All daily actions are in use.")
	assert.Contains(t, stderr.String(), `"msg":"optimum"`)
}

func TestRunUnusedActionsAndCriterion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"--apples", "11", "--criterion", "wood", "--log-format", "text"}, &stdout, &stderr))

	out := stdout.String()
	assert.Contains(t, out, "3 daily actions are left unused.")
	assert.Contains(t, out, "gather 14 apples and fell 9 trees")
	assert.Contains(t, out, "Max wood")
	assert.NotContains(t, out, "Max apples")
	assert.Contains(t, stderr.String(), "unused daily actions")
}

func TestRunWritesOutputs(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out")
	metrics := filepath.Join(dir, "forage.prom")

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"--output-dir", out, "--metrics-file", metrics}, &stdout, &stderr))

	for _, name := range []string{"grid.csv", "optima.csv", "accumulation.csv", "report.json", "config.yaml"} {
		_, err := os.Stat(filepath.Join(out, name))
		assert.NoError(t, err, name)
	}
	_, err := os.Stat(metrics)
	assert.NoError(t, err)
}

func TestRunRejectsInvalidInput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Error(t, run([]string{"--tree-cost", "0"}, &stdout, &stderr))
	assert.Error(t, run([]string{"--apples", "500"}, &stdout, &stderr))

	err := run([]string{"--criterion", "max_wod"}, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did you mean")
}

func TestRunHelp(t *testing.T) {
	for _, arg := range []string{"--help", "-h"} {
		var stdout, stderr bytes.Buffer
		require.NoError(t, run([]string{arg}, &stdout, &stderr), arg)
		assert.Contains(t, stderr.String(), "--apples", arg)
		assert.Empty(t, stdout.String(), arg)
	}
}
