package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSizesCommand(t *testing.T) {
	tests := []struct {
		name        string
		json        bool
		wantContain []string
	}{
		{
			name:        "table",
			wantContain: []string{"buckets", "5", "268,435,459", "201,326,594"},
		},
		{
			name:        "json",
			json:        true,
			wantContain: []string{`"Buckets": 5`, `"GrowLimit": 3`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			jsonOut = tt.json

			out, err := captureOutput(t, runSizes)
			require.NoError(t, err)
			assertContains(t, out, tt.wantContain)
			if tt.json {
				assertJSON(t, out)
			}
		})
	}
}

func TestBenchCommand(t *testing.T) {
	tests := []struct {
		name    string
		cfg     workloadConfig
		wantErr bool
	}{
		{name: "strings default", cfg: workloadConfig{N: 2000, Keys: "str"}},
		{name: "strings xx shrink", cfg: workloadConfig{N: 2000, Keys: "str", Hasher: "xx", Shrink: true}},
		{name: "strings fold", cfg: workloadConfig{N: 500, Keys: "str", Hasher: "fold"}},
		{name: "ints murmur", cfg: workloadConfig{N: 2000, Keys: "int", Hasher: "murmur"}},
		{name: "bad hasher", cfg: workloadConfig{N: 10, Keys: "int", Hasher: "xx"}, wantErr: true},
		{name: "bad keys", cfg: workloadConfig{N: 10, Keys: "float"}, wantErr: true},
		{name: "negative n", cfg: workloadConfig{N: -1, Keys: "str"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			out, err := captureOutput(t, func() error { return runBench(tt.cfg) })
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assertContains(t, out, []string{"insert:", "lookup:", "remove:", "peak memory:"})
			require.NotContains(t, out, "misses")
		})
	}
}

func TestBenchCommand_JSON(t *testing.T) {
	resetFlags()
	jsonOut = true
	defer resetFlags()

	out, err := captureOutput(t, func() error {
		return runBench(workloadConfig{N: 1000, Keys: "int", Shrink: true})
	})
	require.NoError(t, err)

	var res workloadResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Equal(t, 1000, res.N)
	require.Zero(t, res.Misses)
	require.Zero(t, res.Table.Len)
	require.Equal(t, 5, res.Table.Buckets, "a shrinking table returns to its smallest size")
	require.Positive(t, res.PeakBytes)
}

func TestInspectCommand(t *testing.T) {
	resetFlags()
	out, err := captureOutput(t, func() error {
		return runInspect(workloadConfig{N: 3000, Keys: "str"})
	})
	require.NoError(t, err)
	assertContains(t, out, []string{"Entries:     3,000", "Buckets:     4,099", "Chain lengths:"})

	jsonOut = true
	defer resetFlags()
	out, err = captureOutput(t, func() error {
		return runInspect(workloadConfig{N: 3000, Keys: "int"})
	})
	require.NoError(t, err)
	assertJSON(t, out)
	assertContains(t, out, []string{`"Len": 3000`, `"ChainHistogram"`})
}

func TestStressCommand(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		alphabet int
		shrink   bool
		wantErr  bool
	}{
		{name: "small alphabet", n: 16384, alphabet: 8},
		{name: "wide alphabet shrinking", n: 20000, alphabet: 3000, shrink: true},
		{name: "no operations", n: 0, alphabet: 8},
		{name: "empty alphabet", n: 10, alphabet: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			out, err := captureOutput(t, func() error {
				return runStress(tt.n, 1, tt.alphabet, tt.shrink)
			})
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assertContains(t, out, []string{"OK:"})
		})
	}
}

func TestQuietSuppressesOutput(t *testing.T) {
	resetFlags()
	quiet = true
	defer resetFlags()

	out, err := captureOutput(t, runSizes)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug, "INFO": slog.LevelInfo, "warn": slog.LevelWarn, "error": slog.LevelError,
	} {
		got, err := parseLevel(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := parseLevel("loud")
	require.Error(t, err)
}

func TestLoggerReportsResizes(t *testing.T) {
	resetFlags()
	var buf bytes.Buffer
	initLog(&buf, slog.LevelDebug, true)
	defer initLog(&bytes.Buffer{}, slog.LevelWarn, true)

	_, err := captureOutput(t, func() error {
		return runBench(workloadConfig{N: 100, Keys: "int"})
	})
	require.NoError(t, err)
	require.Contains(t, buf.String(), "ghash resize")
	require.NotContains(t, buf.String(), "unfreed memory")
}

func TestVersionFrom(t *testing.T) {
	bi := &debug.BuildInfo{
		GoVersion: "go1.25.3",
		Main:      debug.Module{Path: "github.com/joshuapare/hashkit/cmd/hashctl", Version: "v0.3.1"},
		Deps: []*debug.Module{
			{Path: "github.com/spf13/cobra", Version: "v1.10.1"},
			{Path: libraryPath, Version: "v0.0.0", Replace: &debug.Module{Path: "../../"}},
		},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
		},
	}

	info := versionFrom(bi)
	require.Equal(t, "v0.3.1", info.Version)
	require.Equal(t, "abc123", info.Commit)
	require.Equal(t, "2026-10-01T12:00:00Z", info.Built)
	require.Equal(t, "v0.0.0 => ../../", info.Library)
	require.Equal(t, "go1.25.3", info.Go)

	bare := versionFrom(nil)
	require.Equal(t, "dev", bare.Version)
	require.Equal(t, "unknown", bare.Library)
	require.NotEmpty(t, bare.Go)
}

func TestVersionCommand(t *testing.T) {
	resetFlags()
	defer resetFlags()

	info := versionInfo{Version: "v1.2.3", Commit: "abc", Built: "today", Library: "v1.2.3", Go: "go1.25.3"}
	out, err := captureOutput(t, func() error { return runVersion(info) })
	require.NoError(t, err)
	assertContains(t, out, []string{"hashctl v1.2.3", "commit: abc", "hashkit: v1.2.3"})

	jsonOut = true
	out, err = captureOutput(t, func() error { return runVersion(info) })
	require.NoError(t, err)
	assertJSON(t, out)

	var got versionInfo
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, info, got)
}
