package style

// Kind тип значения поля и его допустимый диапазон
type Kind int

const (
	KindSize       Kind = iota // ширина и высота > 0
	KindColor                  // цветовой литерал
	KindRatio                  // доля в (0,1]
	KindFraction               // доля в [0,1]
	KindMultiplier             // множитель > 0
)

func (k Kind) String() string {
	switch k {
	case KindSize:
		return "size"
	case KindColor:
		return "color"
	case KindRatio:
		return "ratio"
	case KindFraction:
		return "fraction"
	case KindMultiplier:
		return "multiplier"
	default:
		return "unknown"
	}
}

// Field одно поле таблицы стилей
type Field struct {
	Name  string
	Kind  Kind
	Value any
}

// Fields перечисляет все поля в порядке объявления
func (c StyleConfig) Fields() []Field {
	return []Field{
		{"WindowDefaultSize", KindSize, c.WindowDefaultSize},
		{"WindowBackgroundColor", KindColor, c.WindowBackgroundColor},

		{"MenuWidth", KindRatio, c.MenuWidth},
		{"MenuColor", KindColor, c.MenuColor},
		{"MenuHighlightColor", KindColor, c.MenuHighlightColor},
		{"MenuHighlightOpactiy", KindFraction, c.MenuHighlightOpactiy},
		{"MenuTextColor", KindColor, c.MenuTextColor},
		{"MenuRelTextSize", KindRatio, c.MenuRelTextSize},

		{"DefaultPanelColor", KindColor, c.DefaultPanelColor},
		{"DefaultPanelTextColor", KindColor, c.DefaultPanelTextColor},

		{"ExitSliderBackgroundColor", KindColor, c.ExitSliderBackgroundColor},
		{"ExitSliderColor", KindColor, c.ExitSliderColor},
		{"ExitSliderTextColor", KindColor, c.ExitSliderTextColor},
		{"ExitSliderRadius", KindFraction, c.ExitSliderRadius},
		{"ExitSliderRelWidth", KindMultiplier, c.ExitSliderRelWidth},

		{"TitleBarRelHeight", KindRatio, c.TitleBarRelHeight},
		{"MainPanelRelMargin", KindFraction, c.MainPanelRelMargin},

		{"FileBrowserBackgroundColor", KindColor, c.FileBrowserBackgroundColor},
		{"FileBrowserTitleBarColor", KindColor, c.FileBrowserTitleBarColor},
		{"FileBrowserTitleBarSpacing", KindRatio, c.FileBrowserTitleBarSpacing},
		{"FileBrowserTextColor", KindColor, c.FileBrowserTextColor},
		{"FileBrowserDiscreteTextColor", KindColor, c.FileBrowserDiscreteTextColor},
		{"FileBrowserBlinkColor", KindColor, c.FileBrowserBlinkColor},
		{"FileBrowserItemSizeRel", KindRatio, c.FileBrowserItemSizeRel},
		{"FileBrowserTextSizeRelToItem", KindRatio, c.FileBrowserTextSizeRelToItem},

		{"PlaceholderTopColor", KindColor, c.PlaceholderTopColor},
		{"PlaceholderBottomColor", KindColor, c.PlaceholderBottomColor},

		{"DemoLauncherItemSpacingRel", KindRatio, c.DemoLauncherItemSpacingRel},
		{"DemoLauncherTitleBarTextHeightRel", KindRatio, c.DemoLauncherTitleBarTextHeightRel},
	}
}
