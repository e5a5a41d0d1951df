package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Glyph names an icon from the shared line-icon set.
type Glyph int

const (
	GlyphNone Glyph = iota
	GlyphHome
	GlyphSearch
	GlyphPackage
	GlyphHeart
	GlyphShoppingCart
	GlyphUser
	GlyphMenu
)

var glyphNames = map[Glyph]string{
	GlyphHome:         "home",
	GlyphSearch:       "search",
	GlyphPackage:      "package",
	GlyphHeart:        "heart",
	GlyphShoppingCart: "shopping-cart",
	GlyphUser:         "user",
	GlyphMenu:         "menu",
}

// SVG bodies, 24x24 viewBox, stroked.
var glyphPaths = map[Glyph]string{
	GlyphHome:         `<path d="m3 9 9-7 9 7v11a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2z"/><polyline points="9 22 9 12 15 12 15 22"/>`,
	GlyphSearch:       `<circle cx="11" cy="11" r="8"/><path d="m21 21-4.3-4.3"/>`,
	GlyphPackage:      `<path d="m7.5 4.27 9 5.15"/><path d="M21 8a2 2 0 0 0-1-1.73l-7-4a2 2 0 0 0-2 0l-7 4A2 2 0 0 0 3 8v8a2 2 0 0 0 1 1.73l7 4a2 2 0 0 0 2 0l7-4A2 2 0 0 0 21 16Z"/><path d="m3.3 7 8.7 5 8.7-5"/><path d="M12 22V12"/>`,
	GlyphHeart:        `<path d="M19 14c1.49-1.46 3-3.21 3-5.5A5.5 5.5 0 0 0 16.5 3c-1.76 0-3 .5-4.5 2-1.5-1.5-2.74-2-4.5-2A5.5 5.5 0 0 0 2 8.5c0 2.3 1.5 4.05 3 5.5l7 7Z"/>`,
	GlyphShoppingCart: `<circle cx="8" cy="21" r="1"/><circle cx="19" cy="21" r="1"/><path d="M2.05 2.05h2l2.66 12.42a2 2 0 0 0 2 1.58h9.78a2 2 0 0 0 1.95-1.57l1.65-7.43H5.12"/>`,
	GlyphUser:         `<path d="M19 21v-2a4 4 0 0 0-4-4H9a4 4 0 0 0-4 4v2"/><circle cx="12" cy="7" r="4"/>`,
	GlyphMenu:         `<line x1="4" x2="20" y1="12" y2="12"/><line x1="4" x2="20" y1="6" y2="6"/><line x1="4" x2="20" y1="18" y2="18"/>`,
}

// String returns the icon's name, or "none".
func (gl Glyph) String() string {
	if name, ok := glyphNames[gl]; ok {
		return name
	}
	return "none"
}

// Icon renders gl as an inline SVG sized by class. Unknown glyphs render
// nothing.
func Icon(gl Glyph, class string) g.Node {
	body, ok := glyphPaths[gl]
	if !ok {
		return nil
	}
	return g.El("svg",
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		g.Attr("data-icon", gl.String()),
		h.Aria("hidden", "true"),
		h.Class(class),
		g.Raw(body),
	)
}
