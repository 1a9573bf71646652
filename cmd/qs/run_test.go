package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/katalvlaran/qsieve/config"
	"github.com/katalvlaran/qsieve/qs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the config search paths at an empty directory and
// disables colour so output can be compared literally.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	color.NoColor = true

	return dir
}

func TestRun_Defaults(t *testing.T) {
	isolate(t)

	var out bytes.Buffer
	require.NoError(t, run([]string{"qs", "-n", "8051"}, &out))
	assert.Contains(t, out.String(), "8051 = 83 × 97")
	assert.NotContains(t, out.String(), "parity")
}

func TestRun_TableAndWorkers(t *testing.T) {
	isolate(t)

	var out bytes.Buffer
	require.NoError(t, run([]string{"qs", "-n", "10403", "-b", "6", "-i", "200", "-w", "3", "-t"}, &out))
	assert.Contains(t, out.String(), "10403 = 101 × 103")
	assert.Contains(t, out.String(), "factorization")
	assert.Contains(t, out.String(), "parity")
}

// TestRun_Precedence: the file gives a base too small for 15, flags fix it.
func TestRun_Precedence(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "small.yaml")
	require.NoError(t, os.WriteFile(path, []byte("factor_base_size: 3\ninterval_size: 10\n"), 0o644))

	var out bytes.Buffer
	err := run([]string{"qs", "-n", "15", "-c", path}, &out)
	require.ErrorIs(t, err, qs.ErrInsufficientRelations)

	out.Reset()
	require.NoError(t, run([]string{"qs", "-n", "15", "-c", path, "-b", "4", "-i", "50"}, &out))
	assert.Contains(t, out.String(), "using config "+path)
	assert.Contains(t, out.String(), "15 = 3 × 5")
}

func TestRun_Chart(t *testing.T) {
	dir := isolate(t)
	chart := filepath.Join(dir, "sieve.html")

	var out bytes.Buffer
	require.NoError(t, run([]string{"qs", "-n", "8051", "--chart", chart}, &out))
	assert.Contains(t, out.String(), "chart written to "+chart)

	html, err := os.ReadFile(chart)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Residual after sieving")

	out.Reset()
	require.NoError(t, run([]string{"qs", "-n", "49", "--chart", filepath.Join(dir, "sq.html")}, &out))
	assert.Contains(t, out.String(), "chart skipped")
	assert.NoFileExists(t, filepath.Join(dir, "sq.html"))
}

func TestRun_InitConfig(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "qs_config.yaml")

	var out bytes.Buffer
	require.NoError(t, run([]string{"qs", "--init-config", path}, &out))
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultIntervalSize, cfg.IntervalSize)

	// a second write must not clobber the file
	require.Error(t, run([]string{"qs", "--init-config", path}, &out))
}

func TestRun_Errors(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
		is   error
	}{
		{"missing number", []string{"qs"}, nil},
		{"not a number", []string{"qs", "-n", "abc"}, nil},
		{"too small", []string{"qs", "-n", "3"}, qs.ErrInvalidInput},
		{"missing config", []string{"qs", "-n", "8051", "-c", "/nonexistent/qs.yaml"}, nil},
		{"no factor", []string{"qs", "-n", "97", "-b", "5", "-i", "50"}, qs.ErrNoNontrivialFactor},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(tc.args, &out)
			require.Error(t, err)
			if tc.is != nil {
				assert.ErrorIs(t, err, tc.is)
			}
		})
	}
}

// TestRun_EnvWorkers: QS_WORKERS reaches Validate when no flag overrides it.
func TestRun_EnvWorkers(t *testing.T) {
	isolate(t)
	t.Setenv("QS_WORKERS", "0")

	var out bytes.Buffer
	require.ErrorIs(t, run([]string{"qs", "-n", "8051"}, &out), config.ErrInvalidConfig)
	require.NoError(t, run([]string{"qs", "-n", "8051", "-w", "2"}, &out))
}
