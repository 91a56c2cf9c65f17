package model

import "strings"

// Marketplace is a shopping site recognised by its URL prefixes.
type Marketplace struct {
	ID    int64
	Title string
	// URL holds comma separated prefixes, e.g. "https://a.com,https://a.ru".
	URL string
}

// Prefixes splits URL into non-empty trimmed prefixes.
func (m Marketplace) Prefixes() []string {
	if m.URL == "" {
		return nil
	}
	parts := strings.Split(m.URL, ",")
	prefixes := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			prefixes = append(prefixes, p)
		}
	}
	return prefixes
}
