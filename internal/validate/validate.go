package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var slugRe = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// IsSlug reports whether s looks like a well-formed path slug.
func IsSlug(s string) bool {
	return s != "" && len(s) <= 64 && slugRe.MatchString(s)
}

// ClampLimit parses a limit query param, falling back to def and capping at
// max. Garbage input gets the default, never an error.
func ClampLimit(raw string, def, max int) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 1 {
		return def
	}
	if v > max {
		return max
	}
	return v
}

// Param trims a query parameter; empty and "all" both mean "no constraint".
func Param(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "all" {
		return ""
	}
	return s
}
