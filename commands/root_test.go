package commands

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected func(string) string
	}{
		{
			name:  "home directory expansion",
			input: "~/test/path",
			expected: func(home string) string {
				return filepath.Join(home, "test/path")
			},
		},
		{
			name:  "absolute path unchanged",
			input: "/absolute/path",
			expected: func(home string) string {
				return "/absolute/path"
			},
		},
		{
			name:  "relative path converted to absolute",
			input: "relative/path",
			expected: func(home string) string {
				abs, _ := filepath.Abs("relative/path")
				return abs
			},
		},
	}

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected(home), expandPath(tt.input))
		})
	}
}

func TestExpandInputLeavesEmpty(t *testing.T) {
	assert.Equal(t, "", expandInput(""))
	assert.Equal(t, "/some/path", expandInput("/some/path"))
}

func TestEnsureDir(t *testing.T) {
	testDir := filepath.Join(t.TempDir(), "test", "nested", "dir")

	require.NoError(t, ensureDir(testDir))
	info, err := os.Stat(testDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestRootCommandFlags(t *testing.T) {
	flags := rootCmd.PersistentFlags()

	for _, name := range []string{
		"sheet-id", "gid", "input", "cache-ttl",
		"output", "timezone", "rate-source", "config", "debug",
	} {
		assert.NotNil(t, flags.Lookup(name), "missing flag %s", name)
	}

	assert.Equal(t, "table", flags.Lookup("output").DefValue)
	assert.Equal(t, "default", flags.Lookup("rate-source").DefValue)
	assert.Equal(t, "0", flags.Lookup("gid").DefValue)
}

func TestBuildConfig(t *testing.T) {
	sheetId = "abc123"
	sheetGid = "7"
	inputFile = ""
	outputFormat = "json"
	rateSource = "default"
	cacheTTL = 90 * time.Second
	defer func() {
		sheetId, sheetGid, outputFormat, rateSource = "", "0", "table", "default"
		cacheTTL = 60 * time.Second
	}()

	cfg := buildConfig()
	assert.Equal(t, "abc123", cfg.SheetId)
	assert.Equal(t, "7", cfg.Gid)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, 90*time.Second, cfg.CacheTTL)
	assert.Equal(t, "", cfg.InputFile)
}

func TestWatchCommandRegistered(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "watch" {
			found = true
			assert.NotNil(t, cmd.Flags().Lookup("interval"))
		}
	}
	assert.True(t, found, "watch subcommand not registered")
}
