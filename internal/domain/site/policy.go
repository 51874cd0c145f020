package site

// Visible reports whether a public section is switched on. Keys that were
// never stored count as visible.
func Visible(vis map[string]bool, page string) bool {
	v, ok := vis[page]
	return !ok || v
}
