package style

import (
	"math"
	"sync"
)

// Size размер в пикселях
type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Scale масштабирует обе стороны на коэффициент
func (s Size) Scale(ratio float64) Size {
	return Size{
		Width:  Rel(s.Width, ratio),
		Height: Rel(s.Height, ratio),
	}
}

// Rel переводит относительную величину в абсолютную для контейнера
// заданного размера. Ненулевой коэффициент на непустом контейнере
// дает не меньше одного пикселя. Нечисловой коэффициент дает 0,
// переполнение ограничивается math.MaxInt.
func Rel(container int, ratio float64) int {
	if container <= 0 || math.IsNaN(ratio) || math.IsInf(ratio, 0) || ratio <= 0 {
		return 0
	}
	f := math.Floor(float64(container)*ratio + 1e-9)
	if f >= float64(math.MaxInt) {
		return math.MaxInt
	}
	if f < 1 {
		return 1
	}
	return int(f)
}

// StyleConfig содержит все стилевые константы лаунчера.
//
// Все поля хранятся по значению: копия структуры полностью независима
// от оригинала, поэтому ее можно раздавать любому числу читателей без
// синхронизации.
type StyleConfig struct {
	// Окно
	WindowDefaultSize     Size
	WindowBackgroundColor string

	// Меню
	MenuWidth            float64 // доля ширины окна
	MenuColor            string
	MenuHighlightColor   string
	MenuHighlightOpactiy float64
	MenuTextColor        string
	MenuRelTextSize      float64

	// Панели по умолчанию
	DefaultPanelColor     string
	DefaultPanelTextColor string

	// Слайдер выхода
	ExitSliderBackgroundColor string
	ExitSliderColor           string
	ExitSliderTextColor       string
	ExitSliderRadius          float64 // доля размера контрола
	ExitSliderRelWidth        float64 // множитель, не доля

	// Заголовок и основная панель
	TitleBarRelHeight  float64
	MainPanelRelMargin float64

	// Файловый браузер
	FileBrowserBackgroundColor   string
	FileBrowserTitleBarColor     string
	FileBrowserTitleBarSpacing   float64
	FileBrowserTextColor         string
	FileBrowserDiscreteTextColor string
	FileBrowserBlinkColor        string
	FileBrowserItemSizeRel       float64
	FileBrowserTextSizeRelToItem float64

	// Заглушка
	PlaceholderTopColor    string
	PlaceholderBottomColor string

	// Элементы демо-лаунчера
	DemoLauncherItemSpacingRel        float64
	DemoLauncherTitleBarTextHeightRel float64
}

// literal возвращает таблицу значений без разрешенных алиасов
func literal() StyleConfig {
	return StyleConfig{
		WindowDefaultSize:     Size{Width: 800, Height: 600},
		WindowBackgroundColor: "black",

		MenuWidth:            0.12,
		MenuColor:            "lightgrey",
		MenuHighlightColor:   "grey",
		MenuHighlightOpactiy: 0.5,
		MenuTextColor:        "white",
		MenuRelTextSize:      0.1,

		DefaultPanelColor:     "darkgrey",
		DefaultPanelTextColor: "white",

		ExitSliderRadius:   0.25,
		ExitSliderRelWidth: 8.0,

		TitleBarRelHeight:  0.1,
		MainPanelRelMargin: 0.25,

		FileBrowserTitleBarColor:     "#757575",
		FileBrowserTitleBarSpacing:   0.2,
		FileBrowserTextColor:         "white",
		FileBrowserDiscreteTextColor: "#B0B0B0",
		FileBrowserBlinkColor:        "lightblue",
		FileBrowserItemSizeRel:       0.2,
		FileBrowserTextSizeRelToItem: 0.1,

		PlaceholderTopColor:    "darkgrey",
		PlaceholderBottomColor: "lightgrey",

		DemoLauncherItemSpacingRel:        0.2,
		DemoLauncherTitleBarTextHeightRel: 0.2,
	}
}

// Literal возвращает исходную таблицу констант. Алиасы в ней пустые,
// их заполняет ResolveAliases.
func Literal() StyleConfig {
	return literal()
}

// Load собирает и проверяет конфигурацию. Либо возвращается полностью
// заполненное значение, либо ошибка.
func Load() (StyleConfig, error) {
	cfg := literal().ResolveAliases(nil)
	if err := cfg.Validate(); err != nil {
		return StyleConfig{}, err
	}
	return cfg, nil
}

// MustLoad как Load, но паникует при ошибке
func MustLoad() StyleConfig {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

var (
	defaultOnce sync.Once
	defaultCfg  StyleConfig
)

// Default возвращает общий экземпляр конфигурации. Он строится один раз,
// каждый вызов получает свою копию.
func Default() StyleConfig {
	defaultOnce.Do(func() {
		defaultCfg = MustLoad()
	})
	return defaultCfg
}
