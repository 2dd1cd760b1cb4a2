// Package datetime convierte entrada de usuario (forms, query params, seed files)
// a time.Time. Las fechas-hora sin zona se interpretan como UTC "naive".
package datetime

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	// MinuteLayout es el formato que muestran CLI y API para horarios.
	MinuteLayout = "2006-01-02 15:04"
)

var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	MinuteLayout,
}

// Parse acepta RFC3339 o variantes naive (YYYY-MM-DDTHH:MM[:SS], con T o espacio).
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("datetime: empty value")
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("datetime: %q must be RFC3339 or YYYY-MM-DDTHH:MM", s)
}

// ParseOptional devuelve nil si s está vacío.
func ParseOptional(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ParseDate parsea YYYY-MM-DD; vacío => fallback.
func ParseDate(s string, fallback time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		y, m, d := fallback.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("datetime: date %q must be YYYY-MM-DD", s)
	}
	return t, nil
}

// Minutes convierte minutos a *time.Duration (0 o negativo => nil).
func Minutes(n int) *time.Duration {
	if n <= 0 {
		return nil
	}
	d := time.Duration(n) * time.Minute
	return &d
}
