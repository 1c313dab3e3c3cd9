package repository

import (
	"os"
	"time"
)

// storedTimeLayout is fixed-width so that stored timestamps sort lexicographically in
// the same order as chronologically, which range filters rely on.
const storedTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func formatTime(t time.Time) string {
	return t.UTC().Format(storedTimeLayout)
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(storedTimeLayout, s)
	return t
}

func parseOptionalTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(storedTimeLayout, s)
	if err != nil {
		return nil
	}
	return &t
}
