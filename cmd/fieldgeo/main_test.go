package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/gridiron-sim/fieldgeo/internal/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, cfg string, args ...string) (int, string, string) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	if cfg != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(cfg), 0644))
	}

	var stdout, stderr bytes.Buffer
	code := run(append([]string{"--config", dir}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_NoCommand(t *testing.T) {
	code, _, stderr := runCLI(t, "{}")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "usage:")
}

func TestRun_UnknownCommand(t *testing.T) {
	code, _, stderr := runCLI(t, "{}", "teleport")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, `unknown command "teleport"`)
}

func TestRun_MissingConfigFallsBackToDefaults(t *testing.T) {
	code, stdout, stderr := runCLI(t, "", "info")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stderr, "Failed to load config")

	var info map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &info))
	assert.Equal(t, "NFL Regulation Field", info["name"])
	assert.Equal(t, "grass", info["surface"])
	assert.Equal(t, 120.0, info["length"])
	assert.Contains(t, info["wkt"], "POLYGON")
}

func TestRun_InvalidFieldConfigFallsBack(t *testing.T) {
	code, stdout, stderr := runCLI(t, `{"field": {"length": 15}}`, "info")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stderr, "Invalid field config")
	assert.Contains(t, stdout, `"length": 120`)
}

func TestRun_Locate(t *testing.T) {
	code, stdout, stderr := runCLI(t, "{}", "locate", "26,35")
	require.Equal(t, 0, code, stderr)

	var report map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Equal(t, "Own 25", report["fieldPosition"])
	assert.Equal(t, "playing_field", report["zone"])
	assert.Equal(t, 25.0, report["yardLine"])
}

func TestRun_LocateMany(t *testing.T) {
	code, stdout, stderr := runCLI(t, "{}", "locate", "26,5", "(-1,60)")
	require.Equal(t, 0, code, stderr)

	var reports []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &reports))
	require.Len(t, reports, 2)
	assert.Equal(t, "south_end_zone", reports[0]["zone"])
	assert.Equal(t, "west_out_of_bounds", reports[1]["violation"])
}

func TestRun_LocateBadCoordinate(t *testing.T) {
	code, _, stderr := runCLI(t, "{}", "locate", "abc")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "invalid coordinates")
}

func TestRun_Validate(t *testing.T) {
	code, stdout, _ := runCLI(t, "{}", "validate", "20,60")
	assert.Equal(t, 0, code)
	assert.Equal(t, "ok\n", stdout)

	code, _, stderr := runCLI(t, "{}", "validate", "(-1,-1)")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "coordinate x out of bounds")
}

func TestRun_ValidateCustomField(t *testing.T) {
	cfg := `{"field": {"name": "Indoor", "length": 50, "width": 30, "endzoneLength": 5}}`
	code, _, stderr := runCLI(t, cfg, "validate", "40,10")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "beyond the east sideline of Indoor")
	assert.Contains(t, stderr, "command=validate field=Indoor")
}

func TestRun_Transform(t *testing.T) {
	code, stdout, stderr := runCLI(t, "{}", "transform", "mirrory", "10,30")
	require.Equal(t, 0, code, stderr)

	var c map[string]float64
	require.NoError(t, json.Unmarshal([]byte(stdout), &c))
	assert.InDelta(t, 10, c["x"], 1e-4)
	assert.InDelta(t, 90, c["y"], 1e-4)

	code, _, stderr = runCLI(t, "{}", "transform", "shear", "10,30")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "unknown transform")
}

func TestRun_Position(t *testing.T) {
	code, stdout, stderr := runCLI(t, "{}", "position", "25", "20")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, `"fieldPosition": "Own 25"`)

	code, stdout, stderr = runCLI(t, "{}", "position", "255", "20")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, `"fieldPosition": "Out of Bounds"`)
	assert.Contains(t, stderr, "Yard line maps off the field")
}

func TestRun_Path(t *testing.T) {
	code, stdout, stderr := runCLI(t, "{}", "path", "[[10,10],[10,40],[60,40]]")
	require.Equal(t, 0, code, stderr)

	var r map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &r))
	assert.Equal(t, false, r["contained"])
	assert.Equal(t, 1.0, r["firstExit"])
	assert.InDelta(t, 80.0, r["length"], 1e-3)
}

func TestRun_Georef(t *testing.T) {
	code, stdout, stderr := runCLI(t, "{}", "georef", "-88.0622", "44.5013", "0", "0,0")
	// negative longitude is read as a flag without --
	assert.Equal(t, 2, code, stdout)

	code, stdout, stderr = runCLI(t, "{}", "georef", "--", "-88.0622", "44.5013", "0", "0,0")
	require.Equal(t, 0, code, stderr)

	var r map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &r))
	assert.InDelta(t, -88.0622, r["longitude"], 1e-6)
	assert.InDelta(t, 44.5013, r["latitude"], 1e-6)

	code, stdout, stderr = runCLI(t, "{}", "georef", "10", "45", "30")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "outline")
}

func TestRun_LogFlagOverridesConfig(t *testing.T) {
	code, _, stderr := runCLI(t, `{"logLevel": "error"}`, "--log-level", "debug", "locate", "26,35")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stderr, "Located coordinate")
}

func TestRun_LogFile(t *testing.T) {
	logsDir := filepath.Join(t.TempDir(), "logs")
	cfg := `{"logsDir": ` + jsonString(logsDir) + `}`

	code, _, stderr := runCLI(t, cfg, "info")
	require.Equal(t, 0, code, stderr)

	entries, err := os.ReadDir(logsDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
