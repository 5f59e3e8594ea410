package style

import "math"

// Validate проверяет все поля и возвращает первую найденную ошибку
func (c StyleConfig) Validate() error {
	for _, f := range c.Fields() {
		if reason := check(f); reason != "" {
			return &InvalidValueError{Field: f.Name, Value: f.Value, Reason: reason}
		}
	}
	return nil
}

func check(f Field) string {
	switch f.Kind {
	case KindSize:
		s, ok := f.Value.(Size)
		if !ok {
			return "not a size"
		}
		if s.Width <= 0 || s.Height <= 0 {
			return "width and height must be > 0"
		}
	case KindColor:
		s, ok := f.Value.(string)
		if !ok {
			return "not a color string"
		}
		if _, err := ParseColor(s); err != nil {
			return err.Error()
		}
	case KindRatio, KindFraction, KindMultiplier:
		v, ok := f.Value.(float64)
		if !ok {
			return "not a number"
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return "must be finite"
		}
		switch f.Kind {
		case KindRatio:
			if v <= 0 || v > 1 {
				return "must be in (0,1]"
			}
		case KindFraction:
			if v < 0 || v > 1 {
				return "must be in [0,1]"
			}
		case KindMultiplier:
			if v <= 0 {
				return "must be > 0"
			}
		}
	}
	return ""
}
