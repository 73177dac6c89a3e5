// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const input = `id,password,length,date
1,Ab1!Ab1!x,9,2021-12-31 23:59:59
2,ab,2,2023-04-05 10:11:12
3,ab12,4,2020-01-15 08:00:00
4,Ab1!,4,2022-06-30 00:00:00
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()

	return out.String(), err
}

// TestRun_EndToEnd drives the whole pipeline through the CLI.
func TestRun_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "passwords.csv")
	require.NoError(t, os.WriteFile(in, []byte(input), 0o644))
	metrics := filepath.Join(dir, "pwbench.prom")

	t.Setenv("PWBENCH_INPUT", in)
	t.Setenv("PWBENCH_OUTPUT_DIR", filepath.Join(dir, "out"))
	t.Setenv("PWBENCH_LOG_LEVEL", "error")
	t.Setenv("PWBENCH_METRICS_FILE", metrics)
	t.Setenv("PWBENCH_ALGORITHMS", "merge,counting")

	out, err := execute(t, "run", "--config", filepath.Join(dir, "absent.yaml"))
	require.NoError(t, err)

	assert.Contains(t, out, "very good")
	assert.Contains(t, out, "counting")
	for _, name := range []string{
		"password_classifier.csv",
		"passwords_formated_data.csv",
		"passwords_classifier.csv",
		"passwords_length_merge_best.csv",
		"passwords_date_merge_worst.csv",
		"passwords_length_counting_average.csv",
	} {
		assert.FileExists(t, filepath.Join(dir, "out", name))
	}
	assert.NoFileExists(t, filepath.Join(dir, "out", "passwords_month_counting_best.csv"))

	prom, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(prom), "pwbench_sort_duration_seconds")
	assert.Contains(t, string(prom), `pwbench_records_total{stage="classify"} 4`)
}

// TestRun_InvalidConfig checks validation errors stop the command.
func TestRun_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PWBENCH_ALGORITHMS", "bogo")
	t.Setenv("PWBENCH_OUTPUT_DIR", dir)

	_, err := execute(t, "classify", "--config", filepath.Join(dir, "absent.yaml"))
	assert.Error(t, err)
}
