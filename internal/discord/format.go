package discord

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NotAvailable stands in for profile fields the user left empty.
const NotAvailable = "N/A"

// Printers and casers carry state, so each call builds its own.

// formatInt renders n with thousands separators, e.g. 1,234,567.
func formatInt(n int64) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}

// formatFloat renders f with thousands separators and two decimals.
func formatFloat(f float64) string {
	return message.NewPrinter(language.English).Sprintf("%.2f", f)
}

// titleCase turns an API status such as "ranked" into "Ranked".
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// formatLength renders a duration in seconds as m:ss.
func formatLength(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func orNA(s *string) string {
	if s == nil || *s == "" {
		return NotAvailable
	}
	return *s
}

func joinOrNA(values []string) string {
	if len(values) == 0 {
		return NotAvailable
	}
	return strings.Join(values, ", ")
}
