package style

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ParseColor разбирает цветовой литерал: имя из палитры SVG (без учета
// регистра) или #rgb / #rrggbb. Пробелы вокруг литерала не допускаются.
func ParseColor(s string) (colorful.Color, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return colorful.Color{}, errors.New("empty color")
	}
	if v != s {
		return colorful.Color{}, fmt.Errorf("color %q has surrounding whitespace", s)
	}

	if strings.HasPrefix(v, "#") {
		if !isHexLiteral(v) {
			return colorful.Color{}, fmt.Errorf("malformed hex color %q", s)
		}
		c, err := colorful.Hex(expandHex(strings.ToLower(v)))
		if err != nil {
			return colorful.Color{}, fmt.Errorf("malformed hex color %q: %w", s, err)
		}
		return c, nil
	}

	rgba, ok := colornames.Map[strings.ToLower(v)]
	if !ok {
		return colorful.Color{}, fmt.Errorf("unknown color name %q", s)
	}
	c, _ := colorful.MakeColor(rgba)
	return c, nil
}

// HexColor приводит литерал к виду #rrggbb
func HexColor(s string) (string, error) {
	c, err := ParseColor(s)
	if err != nil {
		return "", err
	}
	return c.Clamped().Hex(), nil
}

// Blend накладывает over на base с прозрачностью alpha и возвращает #rrggbb
func Blend(base, over string, alpha float64) (string, error) {
	b, err := ParseColor(base)
	if err != nil {
		return "", err
	}
	o, err := ParseColor(over)
	if err != nil {
		return "", err
	}
	return b.BlendRgb(o, alpha).Clamped().Hex(), nil
}

func isHexLiteral(v string) bool {
	digits := v[1:]
	if len(digits) != 3 && len(digits) != 6 {
		return false
	}
	for _, r := range digits {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// expandHex переводит #rgb в #rrggbb
func expandHex(v string) string {
	if len(v) != 4 {
		return v
	}
	return string([]byte{'#', v[1], v[1], v[2], v[2], v[3], v[3]})
}
