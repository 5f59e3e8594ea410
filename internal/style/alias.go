package style

// Alias связь поля-алиаса с полем-источником
type Alias struct {
	Field  string
	Source string
}

// AliasSet множество алиасов, заданных явно. Ключ - имя поля-алиаса.
type AliasSet map[string]bool

type aliasRule struct {
	Alias
	target func(c *StyleConfig) *string
	source func(c *StyleConfig) string
}

var aliasRules = []aliasRule{
	{
		Alias:  Alias{Field: "ExitSliderBackgroundColor", Source: "MenuColor"},
		target: func(c *StyleConfig) *string { return &c.ExitSliderBackgroundColor },
		source: func(c *StyleConfig) string { return c.MenuColor },
	},
	{
		Alias:  Alias{Field: "ExitSliderColor", Source: "DefaultPanelTextColor"},
		target: func(c *StyleConfig) *string { return &c.ExitSliderColor },
		source: func(c *StyleConfig) string { return c.DefaultPanelTextColor },
	},
	{
		Alias:  Alias{Field: "ExitSliderTextColor", Source: "DefaultPanelColor"},
		target: func(c *StyleConfig) *string { return &c.ExitSliderTextColor },
		source: func(c *StyleConfig) string { return c.DefaultPanelColor },
	},
	{
		Alias:  Alias{Field: "FileBrowserBackgroundColor", Source: "DefaultPanelColor"},
		target: func(c *StyleConfig) *string { return &c.FileBrowserBackgroundColor },
		source: func(c *StyleConfig) string { return c.DefaultPanelColor },
	},
}

// Aliases возвращает таблицу алиасов
func Aliases() []Alias {
	out := make([]Alias, len(aliasRules))
	for i, r := range aliasRules {
		out[i] = r.Alias
	}
	return out
}

// ResolveAliases копирует значения источников в поля-алиасы, кроме
// перечисленных в explicit. Копирование разовое: последующие изменения
// источника на алиас не влияют.
func (c StyleConfig) ResolveAliases(explicit AliasSet) StyleConfig {
	for _, r := range aliasRules {
		if explicit[r.Field] {
			continue
		}
		*r.target(&c) = r.source(&c)
	}
	return c
}
