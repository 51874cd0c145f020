package site

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	nonSlug   = regexp.MustCompile(`[^a-z0-9\-]+`)
	multiDash = regexp.MustCompile(`-+`)
)

// MakeSlug turns free text into a URL-safe segment.
// Example: "Stenske Poslikave 2026" -> "stenske-poslikave-2026"
func MakeSlug(s string) string {
	base := strings.ToLower(strings.TrimSpace(s))
	base = strings.ReplaceAll(base, " ", "-")
	base = nonSlug.ReplaceAllString(base, "")
	base = multiDash.ReplaceAllString(base, "-")
	return strings.Trim(base, "-")
}

// SafeFolder returns the slug of folder, or fallback when nothing usable is left.
func SafeFolder(folder, fallback string) string {
	if s := MakeSlug(folder); s != "" {
		return s
	}
	return fallback
}

// BuildPublicURL joins the site base, a locale and a page path.
// Example: ("https://x.art", "en", "/izposoja") -> "https://x.art/en/izposoja"
func BuildPublicURL(base, locale, path string) string {
	return strings.TrimRight(base, "/") + "/" + locale + path
}

func RentalPath(id int) string {
	return "/izposoja/" + strconv.Itoa(id)
}
