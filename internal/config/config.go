package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"launcher-style/internal/style"
)

// File схема YAML-файла со стилями. Все поля необязательные:
// не указанные берутся из встроенной таблицы.
type File struct {
	// Окно
	WindowDefaultSize     *SizeOverride `yaml:"window_default_size"`
	WindowBackgroundColor *string       `yaml:"window_background_color"`

	// Меню
	MenuWidth            *float64 `yaml:"menu_width"`
	MenuColor            *string  `yaml:"menu_color"`
	MenuHighlightColor   *string  `yaml:"menu_highlight_color"`
	MenuHighlightOpactiy *float64 `yaml:"menu_highlight_opactiy"`
	MenuTextColor        *string  `yaml:"menu_text_color"`
	MenuRelTextSize      *float64 `yaml:"menu_rel_text_size"`

	// Панели
	DefaultPanelColor     *string `yaml:"default_panel_color"`
	DefaultPanelTextColor *string `yaml:"default_panel_text_color"`

	// Слайдер выхода
	ExitSliderBackgroundColor *string  `yaml:"exit_slider_background_color"`
	ExitSliderColor           *string  `yaml:"exit_slider_color"`
	ExitSliderTextColor       *string  `yaml:"exit_slider_text_color"`
	ExitSliderRadius          *float64 `yaml:"exit_slider_radius"`
	ExitSliderRelWidth        *float64 `yaml:"exit_slider_rel_width"`

	TitleBarRelHeight  *float64 `yaml:"title_bar_rel_height"`
	MainPanelRelMargin *float64 `yaml:"main_panel_rel_margin"`

	// Файловый браузер
	FileBrowserBackgroundColor   *string  `yaml:"file_browser_background_color"`
	FileBrowserTitleBarColor     *string  `yaml:"file_browser_title_bar_color"`
	FileBrowserTitleBarSpacing   *float64 `yaml:"file_browser_title_bar_spacing"`
	FileBrowserTextColor         *string  `yaml:"file_browser_text_color"`
	FileBrowserDiscreteTextColor *string  `yaml:"file_browser_discrete_text_color"`
	FileBrowserBlinkColor        *string  `yaml:"file_browser_blink_color"`
	FileBrowserItemSizeRel       *float64 `yaml:"file_browser_item_size_rel"`
	FileBrowserTextSizeRelToItem *float64 `yaml:"file_browser_text_size_rel_to_item"`

	// Заглушка
	PlaceholderTopColor    *string `yaml:"placeholder_top_color"`
	PlaceholderBottomColor *string `yaml:"placeholder_bottom_color"`

	// Демо-лаунчер
	DemoLauncherItemSpacingRel        *float64 `yaml:"demo_launcher_item_spacing_rel"`
	DemoLauncherTitleBarTextHeightRel *float64 `yaml:"demo_launcher_title_bar_text_height_rel"`
}

// SizeOverride размер окна; не указанная сторона остается прежней
type SizeOverride struct {
	Width  *int `yaml:"width"`
	Height *int `yaml:"height"`
}

// LoadFile читает и проверяет файл стилей
func LoadFile(path string) (style.StyleConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return style.StyleConfig{}, fmt.Errorf("read style config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return style.StyleConfig{}, fmt.Errorf("style config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse накладывает YAML-документ на встроенную таблицу, разрешает алиасы
// и проверяет результат. Неизвестные ключи считаются ошибкой.
func Parse(data []byte) (style.StyleConfig, error) {
	var f File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err := dec.Decode(&f)
	switch {
	case errors.Is(err, io.EOF):
	case err != nil:
		return style.StyleConfig{}, fmt.Errorf("parse yaml: %w", err)
	default:
		// Допускается только один документ
		if err := dec.Decode(new(yaml.Node)); !errors.Is(err, io.EOF) {
			if err == nil {
				err = errors.New("multiple documents")
			}
			return style.StyleConfig{}, fmt.Errorf("parse yaml: %w", err)
		}
	}

	cfg, explicit := f.apply(style.Literal())
	cfg = cfg.ResolveAliases(explicit)

	if err := cfg.Validate(); err != nil {
		return style.StyleConfig{}, err
	}
	return cfg, nil
}

// apply переносит заданные поля в cfg и возвращает множество явно
// заданных алиасов
func (f *File) apply(cfg style.StyleConfig) (style.StyleConfig, style.AliasSet) {
	explicit := style.AliasSet{}

	setSize(&cfg.WindowDefaultSize, f.WindowDefaultSize)
	setString(&cfg.WindowBackgroundColor, f.WindowBackgroundColor)

	setFloat(&cfg.MenuWidth, f.MenuWidth)
	setString(&cfg.MenuColor, f.MenuColor)
	setString(&cfg.MenuHighlightColor, f.MenuHighlightColor)
	setFloat(&cfg.MenuHighlightOpactiy, f.MenuHighlightOpactiy)
	setString(&cfg.MenuTextColor, f.MenuTextColor)
	setFloat(&cfg.MenuRelTextSize, f.MenuRelTextSize)

	setString(&cfg.DefaultPanelColor, f.DefaultPanelColor)
	setString(&cfg.DefaultPanelTextColor, f.DefaultPanelTextColor)

	if setString(&cfg.ExitSliderBackgroundColor, f.ExitSliderBackgroundColor) {
		explicit["ExitSliderBackgroundColor"] = true
	}
	if setString(&cfg.ExitSliderColor, f.ExitSliderColor) {
		explicit["ExitSliderColor"] = true
	}
	if setString(&cfg.ExitSliderTextColor, f.ExitSliderTextColor) {
		explicit["ExitSliderTextColor"] = true
	}
	setFloat(&cfg.ExitSliderRadius, f.ExitSliderRadius)
	setFloat(&cfg.ExitSliderRelWidth, f.ExitSliderRelWidth)

	setFloat(&cfg.TitleBarRelHeight, f.TitleBarRelHeight)
	setFloat(&cfg.MainPanelRelMargin, f.MainPanelRelMargin)

	if setString(&cfg.FileBrowserBackgroundColor, f.FileBrowserBackgroundColor) {
		explicit["FileBrowserBackgroundColor"] = true
	}
	setString(&cfg.FileBrowserTitleBarColor, f.FileBrowserTitleBarColor)
	setFloat(&cfg.FileBrowserTitleBarSpacing, f.FileBrowserTitleBarSpacing)
	setString(&cfg.FileBrowserTextColor, f.FileBrowserTextColor)
	setString(&cfg.FileBrowserDiscreteTextColor, f.FileBrowserDiscreteTextColor)
	setString(&cfg.FileBrowserBlinkColor, f.FileBrowserBlinkColor)
	setFloat(&cfg.FileBrowserItemSizeRel, f.FileBrowserItemSizeRel)
	setFloat(&cfg.FileBrowserTextSizeRelToItem, f.FileBrowserTextSizeRelToItem)

	setString(&cfg.PlaceholderTopColor, f.PlaceholderTopColor)
	setString(&cfg.PlaceholderBottomColor, f.PlaceholderBottomColor)

	setFloat(&cfg.DemoLauncherItemSpacingRel, f.DemoLauncherItemSpacingRel)
	setFloat(&cfg.DemoLauncherTitleBarTextHeightRel, f.DemoLauncherTitleBarTextHeightRel)

	return cfg, explicit
}

func setString(dst *string, v *string) bool {
	if v == nil {
		return false
	}
	*dst = *v
	return true
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setSize(dst *style.Size, v *SizeOverride) {
	if v == nil {
		return
	}
	if v.Width != nil {
		dst.Width = *v.Width
	}
	if v.Height != nil {
		dst.Height = *v.Height
	}
}
