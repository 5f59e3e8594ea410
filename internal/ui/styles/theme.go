package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"launcher-style/internal/style"
)

// Theme готовые стили лаунчера, построенные из StyleConfig
type Theme struct {
	// Размеры контейнера
	width  int
	height int

	cfg style.StyleConfig

	// Стили компонентов
	WindowStyle            lipgloss.Style
	MenuStyle              lipgloss.Style
	MenuHighlightStyle     lipgloss.Style
	PanelStyle             lipgloss.Style
	ExitSliderStyle        lipgloss.Style
	ExitSliderKnobStyle    lipgloss.Style
	TitleBarStyle          lipgloss.Style
	FileBrowserStyle       lipgloss.Style
	FileBrowserTitleStyle  lipgloss.Style
	FileBrowserTextStyle   lipgloss.Style
	FileBrowserDimStyle    lipgloss.Style
	FileBrowserBlinkStyle  lipgloss.Style
	PlaceholderTopStyle    lipgloss.Style
	PlaceholderBottomStyle lipgloss.Style
}

// NewTheme создает тему. Размеры берутся из WindowDefaultSize.
func NewTheme(cfg style.StyleConfig) (*Theme, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	theme := &Theme{
		cfg:    cfg,
		width:  cfg.WindowDefaultSize.Width,
		height: cfg.WindowDefaultSize.Height,
	}
	if err := theme.initStyles(); err != nil {
		return nil, err
	}
	return theme, nil
}

// palette цвета в виде #rrggbb
type palette struct {
	window, menu, menuHighlight, menuText string
	panel, panelText                      string
	sliderBg, slider, sliderText          string
	fbBg, fbTitle, fbText, fbDim, fbBlink string
	placeholderTop, placeholderBottom     string
}

func (t *Theme) resolvePalette() (palette, error) {
	c := t.cfg
	var p palette
	var err error

	hex := func(dst *string, field, v string) {
		if err != nil {
			return
		}
		var h string
		if h, err = style.HexColor(v); err != nil {
			err = fmt.Errorf("%s: %w", field, err)
			return
		}
		*dst = h
	}

	hex(&p.window, "WindowBackgroundColor", c.WindowBackgroundColor)
	hex(&p.menu, "MenuColor", c.MenuColor)
	hex(&p.menuText, "MenuTextColor", c.MenuTextColor)
	hex(&p.panel, "DefaultPanelColor", c.DefaultPanelColor)
	hex(&p.panelText, "DefaultPanelTextColor", c.DefaultPanelTextColor)
	hex(&p.sliderBg, "ExitSliderBackgroundColor", c.ExitSliderBackgroundColor)
	hex(&p.slider, "ExitSliderColor", c.ExitSliderColor)
	hex(&p.sliderText, "ExitSliderTextColor", c.ExitSliderTextColor)
	hex(&p.fbBg, "FileBrowserBackgroundColor", c.FileBrowserBackgroundColor)
	hex(&p.fbTitle, "FileBrowserTitleBarColor", c.FileBrowserTitleBarColor)
	hex(&p.fbText, "FileBrowserTextColor", c.FileBrowserTextColor)
	hex(&p.fbDim, "FileBrowserDiscreteTextColor", c.FileBrowserDiscreteTextColor)
	hex(&p.fbBlink, "FileBrowserBlinkColor", c.FileBrowserBlinkColor)
	hex(&p.placeholderTop, "PlaceholderTopColor", c.PlaceholderTopColor)
	hex(&p.placeholderBottom, "PlaceholderBottomColor", c.PlaceholderBottomColor)
	if err != nil {
		return palette{}, err
	}

	// Подсветка меню полупрозрачная: смешиваем с фоном меню
	p.menuHighlight, err = style.Blend(c.MenuColor, c.MenuHighlightColor, c.MenuHighlightOpactiy)
	if err != nil {
		return palette{}, fmt.Errorf("MenuHighlightColor: %w", err)
	}
	return p, nil
}

// initStyles инициализирует стили
func (t *Theme) initStyles() error {
	p, err := t.resolvePalette()
	if err != nil {
		return err
	}

	t.WindowStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(p.window))

	t.MenuStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(p.menu)).
		Foreground(lipgloss.Color(p.menuText)).
		Padding(0, 1)

	t.MenuHighlightStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(p.menuHighlight)).
		Foreground(lipgloss.Color(p.menuText)).
		Padding(0, 1).
		Bold(true)

	t.PanelStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(p.panel)).
		Foreground(lipgloss.Color(p.panelText))

	t.ExitSliderStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(p.sliderBg)).
		Foreground(lipgloss.Color(p.sliderText)).
		Padding(0, 1)

	t.ExitSliderKnobStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(p.slider)).
		Foreground(lipgloss.Color(p.sliderText)).
		Bold(true)

	t.TitleBarStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(p.fbTitle)).
		Foreground(lipgloss.Color(p.fbText)).
		Bold(true).
		Padding(0, 1)

	t.FileBrowserStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(p.fbBg)).
		Foreground(lipgloss.Color(p.fbText))

	t.FileBrowserTitleStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(p.fbTitle)).
		Foreground(lipgloss.Color(p.fbText)).
		Bold(true)

	t.FileBrowserTextStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.fbText))

	t.FileBrowserDimStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.fbDim))

	t.FileBrowserBlinkStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(p.fbBlink)).
		Foreground(lipgloss.Color(p.fbText))

	t.PlaceholderTopStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(p.placeholderTop))

	t.PlaceholderBottomStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(p.placeholderBottom))

	return nil
}

// Config возвращает копию конфигурации, из которой построена тема
func (t *Theme) Config() style.StyleConfig {
	return t.cfg
}

// SetDimensions устанавливает размеры контейнера
func (t *Theme) SetDimensions(width, height int) {
	t.width = width
	t.height = height
}

// Width возвращает ширину контейнера
func (t *Theme) Width() int {
	return t.width
}

// Height возвращает высоту контейнера
func (t *Theme) Height() int {
	return t.height
}

// Относительные размеры в абсолютных единицах

// MenuWidth ширина меню
func (t *Theme) MenuWidth() int {
	return style.Rel(t.width, t.cfg.MenuWidth)
}

// MenuTextSize высота текста меню относительно ширины меню
func (t *Theme) MenuTextSize() int {
	return style.Rel(t.MenuWidth(), t.cfg.MenuRelTextSize)
}

// TitleBarHeight высота заголовка
func (t *Theme) TitleBarHeight() int {
	return style.Rel(t.height, t.cfg.TitleBarRelHeight)
}

// MainPanelMargin отступ основной панели от меньшей стороны контейнера
func (t *Theme) MainPanelMargin() int {
	return style.Rel(min(t.width, t.height), t.cfg.MainPanelRelMargin)
}

// ExitSliderWidth ширина слайдера выхода: высота заголовка, умноженная на множитель
func (t *Theme) ExitSliderWidth() int {
	return style.Rel(t.TitleBarHeight(), t.cfg.ExitSliderRelWidth)
}

// ExitSliderRadius радиус скругления слайдера
func (t *Theme) ExitSliderRadius() int {
	return style.Rel(t.TitleBarHeight(), t.cfg.ExitSliderRadius)
}

// FileBrowserItemSize размер элемента файлового браузера
func (t *Theme) FileBrowserItemSize() int {
	return style.Rel(t.height, t.cfg.FileBrowserItemSizeRel)
}

// FileBrowserTextSize высота подписи элемента
func (t *Theme) FileBrowserTextSize() int {
	return style.Rel(t.FileBrowserItemSize(), t.cfg.FileBrowserTextSizeRelToItem)
}

// DemoItemSpacing расстояние между элементами демо-лаунчера
func (t *Theme) DemoItemSpacing() int {
	return style.Rel(t.width, t.cfg.DemoLauncherItemSpacingRel)
}

// Preview рендерит таблицу всех полей с образцами цветов
func (t *Theme) Preview() string {
	fields := t.cfg.Fields()

	nameWidth := 0
	for _, f := range fields {
		nameWidth = max(nameWidth, len(f.Name))
	}

	nameStyle := lipgloss.NewStyle().Width(nameWidth + 2)
	kindStyle := lipgloss.NewStyle().Width(12).Faint(true)

	rows := make([]string, 0, len(fields)+2)
	rows = append(rows, t.TitleBarStyle.Render(fmt.Sprintf("launcher style %dx%d", t.width, t.height)))

	for _, f := range fields {
		value := fmt.Sprint(f.Value)
		switch f.Kind {
		case style.KindSize:
			s := f.Value.(style.Size)
			value = fmt.Sprintf("%dx%d", s.Width, s.Height)
		case style.KindColor:
			if hex, err := style.HexColor(value); err == nil {
				swatch := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
				value = swatch + " " + value
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			nameStyle.Render(f.Name),
			kindStyle.Render(f.Kind.String()),
			value,
		))
	}

	rows = append(rows, strings.Join([]string{
		fmt.Sprintf("menu=%d", t.MenuWidth()),
		fmt.Sprintf("title=%d", t.TitleBarHeight()),
		fmt.Sprintf("margin=%d", t.MainPanelMargin()),
		fmt.Sprintf("slider=%d", t.ExitSliderWidth()),
		fmt.Sprintf("item=%d", t.FileBrowserItemSize()),
		fmt.Sprintf("spacing=%d", t.DemoItemSpacing()),
	}, "  "))

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
