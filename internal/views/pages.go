package views

import (
	"fmt"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/smartmart/storefront/internal/cart"
	"github.com/smartmart/storefront/internal/routes"
	"github.com/smartmart/storefront/internal/views/ui"
)

func section(title string, children ...g.Node) g.Node {
	return h.Section(h.Class("container mx-auto px-4 sm:px-6 lg:px-8 py-10"),
		h.H1(h.Class("text-2xl font-bold text-slate-900 mb-6"), g.Text(title)),
		g.Group(children),
	)
}

func emptyState(gl Glyph, message string, cta g.Node) g.Node {
	return h.Div(h.Class("flex flex-col items-center gap-4 rounded-xl border border-dashed border-slate-200 py-16 text-slate-500"),
		Icon(gl, "h-10 w-10"),
		h.P(g.Text(message)),
		cta,
	)
}

func shopLink(label string) g.Node {
	return h.A(h.Href(routes.PageURL(routes.Home)),
		h.Class(ui.CN("inline-flex items-center rounded-md px-4 py-2 text-sm font-medium", "bg-orange-500 text-white hover:bg-orange-600")),
		g.Text(label),
	)
}

// HomePage is the storefront landing page.
func HomePage(brand string) templ.Component {
	return Component(h.Section(h.Class("container mx-auto px-4 sm:px-6 lg:px-8 py-16 text-center"),
		h.H1(h.Class("text-4xl font-bold text-slate-900"), g.Textf("Welcome to %s", brand)),
		h.P(h.Class("mt-4 text-lg text-slate-600"), g.Text("Everyday essentials, delivered fast.")),
		h.Div(h.Class("mt-8"),
			h.A(h.Href(routes.PageURL(routes.Search)),
				h.Class("inline-flex items-center gap-2 rounded-md bg-slate-900 px-5 py-3 text-white hover:bg-slate-800"),
				Icon(GlyphSearch, "h-4 w-4"),
				g.Text("Browse products"),
			),
		),
	))
}

// SearchPage shows the results frame for query. Product search lives
// outside the storefront shell; the page only echoes what was asked.
func SearchPage(query string) templ.Component {
	if query == "" {
		return Component(section("Search",
			emptyState(GlyphSearch, "Type in the search box to find products.", nil),
		))
	}
	return Component(section("Search",
		h.P(h.Class("text-slate-600"),
			g.Text("Results for "),
			h.Strong(h.Class("text-slate-900"), g.Attr("data-query", query), g.Textf("“%s”", query)),
		),
		h.Div(h.Class("mt-6"), emptyState(GlyphPackage, "No products matched your search.", shopLink("Back to shop"))),
	))
}

// OrdersPage lists past orders.
func OrdersPage() templ.Component {
	return Component(section("Orders",
		emptyState(GlyphPackage, "You have no orders yet.", shopLink("Start shopping")),
	))
}

// WishlistPage lists saved products.
func WishlistPage() templ.Component {
	return Component(section("Wishlist",
		emptyState(GlyphHeart, "Your wishlist is empty.", shopLink("Discover products")),
	))
}

// CartPage shows the cart's line items read-only.
func CartPage(items []cart.LineItem) templ.Component {
	if len(items) == 0 {
		return Component(section("Cart",
			emptyState(GlyphShoppingCart, "Your cart is empty.", shopLink("Continue shopping")),
		))
	}

	var total int64
	for _, item := range items {
		total += item.SubtotalCents()
	}

	cell := "px-4 py-3 text-left"
	return Component(section("Cart",
		h.Table(h.Class("w-full text-sm"),
			h.THead(h.Class("border-b border-slate-200 text-slate-500"),
				h.Tr(
					h.Th(h.Class(cell), g.Text("Product")),
					h.Th(h.Class(cell), g.Text("Quantity")),
					h.Th(h.Class(cell), g.Text("Price")),
					h.Th(h.Class(cell), g.Text("Subtotal")),
				),
			),
			h.TBody(
				g.Map(items, func(item cart.LineItem) g.Node {
					return h.Tr(h.Class("border-b border-slate-100"), g.Attr("data-line-item", item.ProductID),
						h.Td(h.Class(cell), g.Text(item.Name)),
						h.Td(h.Class(cell), g.Textf("%d", item.Qty())),
						h.Td(h.Class(cell), g.Text(FormatCents(item.UnitPriceCents))),
						h.Td(h.Class(cell), g.Text(FormatCents(item.SubtotalCents()))),
					)
				}),
			),
		),
		h.P(h.Class("mt-6 text-right text-lg font-semibold text-slate-900"),
			g.Text("Total: "), h.Span(g.Attr("data-cart-total"), g.Text(FormatCents(total))),
		),
	))
}

// NotFoundPage is rendered for unknown paths.
func NotFoundPage() templ.Component {
	return Component(section("Page not found",
		emptyState(GlyphSearch, "We couldn't find that page.", shopLink("Go home")),
	))
}

// FormatCents renders an amount in cents as dollars.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
