package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/frece/pkg/errors"
	"github.com/arthur-debert/frece/pkg/testutil"
	"github.com/arthur-debert/frece/pkg/types"
	gotoml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "recovered_files", cfg.Recovery.DefaultDirName)
	assert.Equal(t, "overwrite", cfg.Recovery.OnCollision)
	assert.Equal(t, types.CollisionOverwrite, cfg.CollisionPolicy())
	assert.Equal(t, 1, cfg.Recovery.Workers)
	assert.False(t, cfg.Recovery.Verify)
	assert.True(t, cfg.Recovery.PreserveTimes)
	assert.Empty(t, cfg.Scan.ExcludeDirs)
	assert.False(t, cfg.Scan.SkipHidden)
	assert.Equal(t, "auto", cfg.Output.Format)
	assert.Equal(t, []string{"photorec", "testdisk"}, cfg.Tools.Known)
	assert.True(t, cfg.IsKnownTool("photorec"))
	assert.False(t, cfg.IsKnownTool("dd"))
}

func TestLoadUserFile(t *testing.T) {
	env := testutil.IsolateHome(t)
	path := filepath.Join(env.ConfigHome, "frece", "config.toml")
	testutil.CreateFile(t, filepath.Dir(path), "config.toml", `
[recovery]
on_collision = "rename"
workers = 4

[scan]
exclude_dirs = ["node_modules", ".git"]
`)
	assert.Equal(t, path, DefaultPath())

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, types.CollisionRename, cfg.CollisionPolicy())
	assert.Equal(t, 4, cfg.Recovery.Workers)
	assert.Equal(t, []string{"node_modules", ".git"}, cfg.Scan.ExcludeDirs)
	// untouched keys keep their defaults
	assert.Equal(t, "recovered_files", cfg.Recovery.DefaultDirName)
	assert.True(t, cfg.Recovery.PreserveTimes)
}

func TestLoadExplicitPath(t *testing.T) {
	testutil.IsolateHome(t)
	dir := t.TempDir()
	path := testutil.CreateFile(t, dir, "custom.toml", "[output]\nformat = \"json\"\n")

	cfg, err := Load(LoadOptions{Path: path})
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.Format)

	_, err = Load(LoadOptions{Path: filepath.Join(dir, "missing.toml")})
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoadWarnsOnUnknownKeys(t *testing.T) {
	testutil.IsolateHome(t)
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	path := testutil.CreateFile(t, t.TempDir(), "typo.toml", "[recovery]\nworkerz = 2\n")
	cfg, err := Load(LoadOptions{Path: path})
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Recovery.Workers)
	assert.Contains(t, buf.String(), "Configuration file contains unknown keys")
	assert.Contains(t, buf.String(), `"component":"config"`)
}

func TestLoadMissingDefaultFileIsFine(t *testing.T) {
	testutil.IsolateHome(t)

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "auto", cfg.Output.Format)
}

func TestLoadEnvOverrides(t *testing.T) {
	testutil.IsolateHome(t)
	t.Setenv("FRECE_RECOVERY_ON_COLLISION", "skip")
	t.Setenv("FRECE_RECOVERY_WORKERS", "3")
	t.Setenv("FRECE_RECOVERY_DEFAULT_DIR_NAME", "rescued")
	t.Setenv("FRECE_SCAN_SKIP_HIDDEN", "true")
	t.Setenv("FRECE_SCAN_EXCLUDE_DIRS", "a,b")

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, types.CollisionSkip, cfg.CollisionPolicy())
	assert.Equal(t, 3, cfg.Recovery.Workers)
	assert.Equal(t, "rescued", cfg.Recovery.DefaultDirName)
	assert.True(t, cfg.Scan.SkipHidden)
	assert.Equal(t, []string{"a", "b"}, cfg.Scan.ExcludeDirs)

	cfg, err = Load(LoadOptions{NoEnv: true})
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Recovery.Workers)
}

func TestLoadInvalid(t *testing.T) {
	testutil.IsolateHome(t)
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		code    errors.ErrorCode
	}{
		{"bad policy", "[recovery]\non_collision = \"merge\"\n", errors.ErrConfigValid},
		{"zero workers", "[recovery]\nworkers = 0\n", errors.ErrConfigValid},
		{"dir name with slash", "[recovery]\ndefault_dir_name = \"a/b\"\n", errors.ErrConfigValid},
		{"bad format", "[output]\nformat = \"yaml\"\n", errors.ErrConfigValid},
		{"broken toml", "[recovery\n", errors.ErrConfigParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := Load(LoadOptions{Path: path})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "recovery.on_collision", envKey("FRECE_RECOVERY_ON_COLLISION"))
	assert.Equal(t, "scan.skip_hidden", envKey("FRECE_SCAN_SKIP_HIDDEN"))
	assert.Equal(t, "output.format", envKey("FRECE_OUTPUT_FORMAT"))
}

func TestGenerateRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Recovery.Workers = 6
	cfg.Scan.ExcludeDirs = []string{"cache"}

	data, err := Generate(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# frece configuration")
	assert.Contains(t, string(data), "[recovery]")

	var back Config
	require.NoError(t, gotoml.Unmarshal(data, &back))
	assert.Equal(t, *cfg, back)

	path := filepath.Join(t.TempDir(), "generated.toml")
	require.NoError(t, os.WriteFile(path, data, 0644))
	testutil.IsolateHome(t)
	loaded, err := Load(LoadOptions{Path: path, NoEnv: true})
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestDefaultContent(t *testing.T) {
	assert.Contains(t, DefaultContent(), "default_dir_name = \"recovered_files\"")
}
