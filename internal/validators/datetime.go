package validators

import "time"

// Formatos de calendário usados em todo o sistema.
const (
	DateLayout = "2006-01-02" // YYYY-MM-DD
	TimeLayout = "15:04"      // HH:mm (24h)
)

func IsValidDate(s string) bool {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return false
	}
	// time.Parse aceita "2025-8-1"; exigimos a forma canônica.
	return t.Format(DateLayout) == s
}

func IsValidTime(s string) bool {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return false
	}
	return t.Format(TimeLayout) == s
}
