package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_DefaultValues(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, 2, cfg.Indent)
	assert.False(t, cfg.Color)
	assert.True(t, cfg.TrailingNewline)
}

func TestConfig_LoadFromYAML(t *testing.T) {
	yamlContent := `
indent: 4
color: true
trailing_newline: false
`
	tmpFile := filepath.Join(t.TempDir(), "jsonpretty.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte(yamlContent), 0644))

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Indent)
	assert.True(t, cfg.Color)
	assert.False(t, cfg.TrailingNewline)
}

func TestConfig_LoadPartialYAMLKeepsDefaults(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "jsonpretty.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte("indent: 8\n"), 0644))

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Indent)
	assert.False(t, cfg.Color)
	assert.True(t, cfg.TrailingNewline)
}

func TestConfig_LoadInvalidYAML(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "jsonpretty.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte("indent: [not a number\n"), 0644))

	_, err := LoadConfig(tmpFile)
	assert.Error(t, err)
}

func TestConfig_LoadMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		indent  int
		wantErr bool
	}{
		{name: "minimum", indent: 1, wantErr: false},
		{name: "default", indent: 2, wantErr: false},
		{name: "maximum", indent: 16, wantErr: false},
		{name: "zero", indent: 0, wantErr: true},
		{name: "negative", indent: -2, wantErr: true},
		{name: "too wide", indent: 17, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			cfg.Indent = tt.indent
			if tt.wantErr {
				assert.Error(t, cfg.Validate())
			} else {
				assert.NoError(t, cfg.Validate())
			}
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".jsonpretty.yml"), []byte("indent: 3\n"), 0644))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	defer func() { _ = os.Chdir(cwd) }()
	require.NoError(t, os.Chdir(sub))

	found := FindConfigFile()
	require.NotEmpty(t, found)
	// The file is discovered from a parent directory. Compare resolved
	// paths, since the temp dir may itself be behind a symlink.
	wantDir, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	gotDir, err := filepath.EvalSymlinks(filepath.Dir(found))
	require.NoError(t, err)
	assert.Equal(t, wantDir, gotDir)
	assert.Equal(t, ".jsonpretty.yml", filepath.Base(found))
}

func TestLoadConfigWithCLI(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "jsonpretty.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte("indent: 4\n"), 0644))

	t.Run("flags override file", func(t *testing.T) {
		cfg, err := LoadConfigWithCLI(tmpFile, 6, true)
		require.NoError(t, err)
		assert.Equal(t, 6, cfg.Indent)
		assert.True(t, cfg.Color)
	})

	t.Run("file wins when flag absent", func(t *testing.T) {
		cfg, err := LoadConfigWithCLI(tmpFile, 0, false)
		require.NoError(t, err)
		assert.Equal(t, 4, cfg.Indent)
		assert.False(t, cfg.Color)
	})

	t.Run("explicit missing path is fatal", func(t *testing.T) {
		_, err := LoadConfigWithCLI(filepath.Join(t.TempDir(), "missing.yaml"), 0, false)
		assert.Error(t, err)
	})

	t.Run("invalid flag value", func(t *testing.T) {
		_, err := LoadConfigWithCLI(tmpFile, 99, false)
		assert.Error(t, err)
	})
}
