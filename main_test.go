package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementsCommand(t *testing.T) {
	var buf bytes.Buffer
	elementsCmd.SetOut(&buf)
	require.NoError(t, runElements(elementsCmd, nil))
	assert.Contains(t, buf.String(), "symbol")
	assert.Contains(t, buf.String(), "Mo")
	assert.Contains(t, buf.String(), "6.82")
}

func TestSweepCommand(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "out.json")
	chartPath := filepath.Join(dir, "out.png")

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{
		"--config", filepath.Join(dir, "missing.yaml"),
		"--projectile", "Ar",
		"--target", "Cu",
		"--from", "100",
		"--to", "3000",
		"--step", "100",
		"--regime", "auto",
		"--json", jsonPath,
		"--chart", chartPath,
	})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "Sigmund")
	assert.Contains(t, buf.String(), "Zalm")

	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	var res struct {
		Points []struct {
			Regime string `json:"regime"`
		} `json:"points"`
	}
	require.NoError(t, json.Unmarshal(data, &res))
	assert.Len(t, res.Points, 29)
	assert.Equal(t, "low", res.Points[0].Regime)
	assert.Equal(t, "high", res.Points[len(res.Points)-1].Regime)

	info, err := os.Stat(chartPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestConfigCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sputter.yaml")
	require.NoError(t, configCmd.RunE(configCmd, []string{path}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "surface_binding_energy: 6.82")
}
