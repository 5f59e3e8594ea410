package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launcher-style/internal/style"
)

func TestParseEmptyMatchesBuiltin(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, style.MustLoad(), cfg)
}

func TestParseOverrides(t *testing.T) {
	doc := `
window_default_size:
  width: 1024
  height: 768
menu_width: 0.2
menu_color: navy
file_browser_title_bar_color: "#333"
`
	cfg, err := Parse([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, style.Size{Width: 1024, Height: 768}, cfg.WindowDefaultSize)
	assert.Equal(t, 0.2, cfg.MenuWidth)
	assert.Equal(t, "navy", cfg.MenuColor)
	assert.Equal(t, "#333", cfg.FileBrowserTitleBarColor)
	assert.Equal(t, "navy", cfg.ExitSliderBackgroundColor, "alias follows its overridden source")
	assert.Equal(t, 0.25, cfg.ExitSliderRadius)
}

func TestParseExplicitAliasWins(t *testing.T) {
	doc := `
default_panel_color: dimgray
file_browser_background_color: black
`
	cfg, err := Parse([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, "black", cfg.FileBrowserBackgroundColor)
	assert.Equal(t, "dimgray", cfg.ExitSliderTextColor)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{"ratio out of range", "menu_width: 1.5\n", "MenuWidth"},
		{"bad color", "menu_text_color: whiteish\n", "MenuTextColor"},
		{"bad size", "window_default_size: {width: 0, height: 10}\n", "WindowDefaultSize"},
		{"bad alias source", "menu_color: \"#12\"\n", "MenuColor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)

			var ive *style.InvalidValueError
			require.True(t, errors.As(err, &ive))
			assert.Equal(t, tt.field, ive.Field)
		})
	}
}

func TestParseRejectsUnknownAndMalformed(t *testing.T) {
	_, err := Parse([]byte("menu_colour: red\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("menu_width: wide\n"))
	assert.Error(t, err)
	assert.False(t, errors.Is(err, style.ErrInvalidConfigValue))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "style.yaml")
	require.NoError(t, os.WriteFile(path, []byte("menu_highlight_opactiy: 0\n"), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 0.0, cfg.MenuHighlightOpactiy)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml")
}

func TestParseRejectsMultipleDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown key in second document", "menu_color: navy\n---\nmenu_colour: bogus\nmenu_width: 9\n"},
		{"valid second document", "menu_color: navy\n---\nmenu_width: 0.2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestParseAllowsTrailingSeparatorOnly(t *testing.T) {
	cfg, err := Parse([]byte("---\nmenu_width: 0.2\n"))
	require.NoError(t, err)
	assert.Equal(t, 0.2, cfg.MenuWidth)
}

func TestParsePartialWindowSize(t *testing.T) {
	cfg, err := Parse([]byte("window_default_size: {width: 1024}\n"))
	require.NoError(t, err)
	assert.Equal(t, style.Size{Width: 1024, Height: 600}, cfg.WindowDefaultSize)

	cfg, err = Parse([]byte("window_default_size:\n  height: 720\n"))
	require.NoError(t, err)
	assert.Equal(t, style.Size{Width: 800, Height: 720}, cfg.WindowDefaultSize)
}

func TestParseRejectsPaddedColor(t *testing.T) {
	_, err := Parse([]byte("menu_color: \" navy \"\n"))

	var ive *style.InvalidValueError
	require.True(t, errors.As(err, &ive))
	assert.Equal(t, "MenuColor", ive.Field)
}
