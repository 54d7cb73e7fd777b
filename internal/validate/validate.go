package validate

import (
	"regexp"
	"strings"

	"github.com/spf13/cast"

	"motomart/internal/catalog"
)

var (
	reID    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	// Indian mobile number, optionally prefixed with +91
	rePhone = regexp.MustCompile(`^(\+91[ -]?)?[6-9][0-9]{9}$`)
	// Indian PIN code
	rePIN = regexp.MustCompile(`^[1-9][0-9]{5}$`)
)

// ID validates a simple resource identifier (product/category/brand ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Q sanitises a free-text search term: trims, strips control characters,
// caps the length. Search is a substring match so any remaining text is fine.
func Q(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
	if len(s) > 64 {
		s = s[:64]
	}
	return s
}

// Qty clamps a quantity form value into 1..10. The cart store itself
// rejects non-positive quantities; this is the input-boundary clamp.
func Qty(s string) int {
	n := cast.ToInt(strings.TrimSpace(s))
	if n < 1 {
		return 1
	}
	if n > 10 {
		return 10
	}
	return n
}

// Page parses a page number, minimum 1.
func Page(s string) int {
	n := cast.ToInt(strings.TrimSpace(s))
	if n < 1 {
		return 1
	}
	return n
}

// Price parses a price bound, clamped into 0..ceiling. Missing or
// malformed input falls back to fallback.
func Price(s string, fallback, ceiling int64) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	n, err := cast.ToInt64E(s)
	if err != nil {
		return fallback
	}
	if n < 0 {
		return 0
	}
	if n > ceiling {
		return ceiling
	}
	return n
}

// Sort maps a sort query value onto a supported key, defaulting to
// featured-first.
func Sort(s string) catalog.SortKey {
	k := catalog.SortKey(strings.TrimSpace(s))
	if !catalog.ValidSort(k) {
		return catalog.SortFeatured
	}
	return k
}

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 80 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Name validates a displayable name with a reasonable max length.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 60 {
		return "", false
	}
	return s, true
}

func Phone(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, rePhone.MatchString(s)
}

// PIN validates an Indian postal code.
func PIN(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, rePIN.MatchString(s)
}

// Theme restricts the stored preference to the two supported values.
func Theme(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	return s, s == "light" || s == "dark"
}
