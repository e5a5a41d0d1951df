// Package routes maps logical page names to paths.
package routes

import "strings"

// Logical page names.
const (
	Home     = "Home"
	Search   = "Search"
	Orders   = "Orders"
	Wishlist = "Wishlist"
	Cart     = "Cart"
)

// SearchParam is the query parameter carrying the search text.
const SearchParam = "q"

// SearchSubmitPath receives both search forms.
const SearchSubmitPath = "/search/submit"

// PageURL returns the path for a page name: "/" plus the lowercased name,
// spaces replaced with hyphens.
func PageURL(name string) string {
	return "/" + strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

// SearchURL returns the search route with query encoded as the q parameter.
func SearchURL(query string) string {
	return PageURL(Search) + "?" + SearchParam + "=" + EncodeComponent(query)
}

// SearchDestination returns where a submitted search goes. Empty or
// whitespace-only text yields ok == false and no destination.
func SearchDestination(query string) (dest string, ok bool) {
	if strings.TrimSpace(query) == "" {
		return "", false
	}
	return SearchURL(query), true
}

const upperhex = "0123456789ABCDEF"

// EncodeComponent percent-encodes s the way browsers encode a URI
// component: A-Z a-z 0-9 and -_.!~*'() pass through, every other byte of
// the UTF-8 text becomes %XX. Spaces become %20, not '+'.
func EncodeComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreservedComponent(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func unreservedComponent(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}
