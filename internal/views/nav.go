package views

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/smartmart/storefront/internal/routes"
)

// NavItem is one entry in the top-level navigation.
type NavItem struct {
	Label string
	Route string
	Icon  Glyph
}

// Link styles for navigation entries.
const (
	ActiveLinkClass  = "text-orange-600 bg-orange-50"
	DefaultLinkClass = "text-slate-600 hover:text-slate-900 hover:bg-slate-50"
)

// desktopNavOffset is how many leading entries the desktop header omits;
// the brand link and the search form already cover them.
const desktopNavOffset = 2

var navigation = []NavItem{
	{Label: routes.Home, Route: routes.PageURL(routes.Home), Icon: GlyphHome},
	{Label: routes.Search, Route: routes.PageURL(routes.Search), Icon: GlyphSearch},
	{Label: routes.Orders, Route: routes.PageURL(routes.Orders), Icon: GlyphPackage},
	{Label: routes.Wishlist, Route: routes.PageURL(routes.Wishlist), Icon: GlyphHeart},
}

// Navigation returns the navigation entries in display order.
func Navigation() []NavItem {
	return slices.Clone(navigation)
}

// DesktopNavigation returns the entries shown inline in the desktop header.
func DesktopNavigation() []NavItem {
	return slices.Clone(navigation[desktopNavOffset:])
}

// IsActive reports whether item is the page at currentPath.
func IsActive(currentPath string, item NavItem) bool {
	return currentPath == item.Route
}

// LinkClass returns the active or default style for item.
func LinkClass(currentPath string, item NavItem) string {
	if IsActive(currentPath, item) {
		return ActiveLinkClass
	}
	return DefaultLinkClass
}

// BadgeLabel returns the desktop cart badge text. show is false for an
// empty cart, which renders no badge at all.
func BadgeLabel(count int) (label string, show bool) {
	switch {
	case count <= 0:
		return "", false
	case count > 99:
		return "99+", true
	default:
		return strconv.Itoa(count), true
	}
}

// PanelCartLabel is the overflow panel's cart entry, always literal.
func PanelCartLabel(count int) string {
	return fmt.Sprintf("Cart (%d)", count)
}
