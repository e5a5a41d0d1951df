package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	"github.com/smartmart/storefront/internal/routes"
	"github.com/smartmart/storefront/internal/shell"
	"github.com/smartmart/storefront/internal/views/ui"
)

// DefaultBrand is used when LayoutProps.Brand is empty.
const DefaultBrand = "SmartMart"

// CartBadgeID is the element id wrapping the desktop cart badge.
const CartBadgeID = "cart-badge"

// LayoutProps is everything the layout needs to render one page.
type LayoutProps struct {
	Brand           string
	CurrentPath     string
	CurrentPageName string // document title prefix
	State           shell.State
	Content         templ.Component // falls back to the context's templ children
}

// Layout renders the full page frame around p.Content, or around the
// children carried by the render context when Content is nil.
func Layout(p LayoutProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		ctx = templ.ClearChildren(ctx)
		if p.Content == nil {
			p.Content = children
		}
		return layout(ctx, p).Render(w)
	})
}

func layout(ctx context.Context, p LayoutProps) g.Node {
	brand := p.Brand
	if brand == "" {
		brand = DefaultBrand
	}

	title := brand
	if p.CurrentPageName != "" {
		title = p.CurrentPageName + " | " + brand
	}

	return c.HTML5(c.HTML5Props{
		Title:    title,
		Language: "en",
		Head: []g.Node{
			h.Link(h.Rel("stylesheet"), h.Href("/static/css/shell.css")),
			h.Script(h.Src("/static/js/shell.js"), h.Defer()),
		},
		Body: []g.Node{
			h.Div(h.Class("min-h-screen flex flex-col bg-gradient-to-br from-slate-50 via-white to-slate-50"),
				header(brand, p),
				h.Main(h.Class("flex-1"), slot(ctx, p.Content)),
				footer(brand),
			),
		},
	})
}

func header(brand string, p LayoutProps) g.Node {
	return h.Header(h.Class("sticky top-0 z-50 w-full border-b border-slate-200/20 bg-white/80 backdrop-blur-xl"),
		h.Div(h.Class("container mx-auto px-4 sm:px-6 lg:px-8"),
			h.Div(h.Class("flex h-16 items-center justify-between"),
				brandLink(brand),
				searchForm("hidden md:flex flex-1 max-w-lg mx-8", "Search for products...", "pl-10 bg-slate-50/50 border-slate-200 focus:bg-white transition-colors", p.State.Query),
				desktopNav(p),
				overflowPanel(p),
			),
		),
	)
}

func brandLink(brand string) g.Node {
	return h.A(h.Href(routes.PageURL(routes.Home)), h.Class("flex items-center space-x-3"),
		h.Div(h.Class("flex h-8 w-8 items-center justify-center rounded-lg bg-gradient-to-br from-orange-500 to-red-600"),
			Icon(GlyphPackage, "h-5 w-5 text-white"),
		),
		h.Span(h.Class("text-xl font-bold bg-gradient-to-r from-slate-900 to-slate-700 bg-clip-text text-transparent"),
			g.Text(brand),
		),
	)
}

// searchForm submits to the search endpoint. The script suppresses
// whitespace-only submissions; the endpoint ignores them too.
func searchForm(formClass, placeholder, inputClass, query string) g.Node {
	return h.Form(
		h.Action(routes.SearchSubmitPath),
		h.Method("get"),
		h.Class(formClass),
		g.Attr("role", "search"),
		g.Attr("data-search-form"),
		h.Div(h.Class("relative w-full"),
			Icon(GlyphSearch, "absolute left-3 top-1/2 h-4 w-4 -translate-y-1/2 text-slate-400"),
			ui.Input(
				ui.InputName(routes.SearchParam),
				ui.InputPlaceholder(placeholder),
				ui.InputValue(query),
				ui.Class[*ui.InputConfig](inputClass),
				ui.Attr[*ui.InputConfig](g.Attr("autocomplete", "off")),
			),
		),
	)
}

func desktopNav(p LayoutProps) g.Node {
	return h.Nav(h.Class("hidden md:flex items-center space-x-6"),
		g.Map(DesktopNavigation(), func(item NavItem) g.Node {
			return navLink(p.CurrentPath, item, "space-x-2 px-3 py-2", "h-4 w-4", "text-sm font-medium")
		}),
		h.A(h.Href(routes.PageURL(routes.Cart)), h.Class("relative p-2"), h.Aria("label", "Cart"),
			Icon(GlyphShoppingCart, "h-5 w-5 text-slate-600 hover:text-slate-900"),
			CartBadge(p.State.ItemCount),
		),
		ui.Button(
			ui.Variant(ui.ButtonVariantGhost),
			ui.Size(ui.ButtonSizeIcon),
			ui.Class[*ui.ButtonConfig]("text-slate-600 hover:text-slate-900"),
			ui.Attr[*ui.ButtonConfig](h.Aria("label", "Account")),
			ui.Child[*ui.ButtonConfig](Icon(GlyphUser, "h-4 w-4")),
		),
	)
}

// CartBadge renders the desktop badge slot for count. The wrapper is
// always present so it can be swapped in place; the badge itself only
// when count > 0.
func CartBadge(count int) g.Node {
	label, show := BadgeLabel(count)
	return h.Span(h.ID(CartBadgeID),
		g.If(show, ui.Badge(label,
			ui.Class[*ui.BadgeConfig]("absolute -top-1 -right-1 h-5 w-5 flex items-center justify-center p-0 text-xs bg-orange-500"),
			ui.Attr[*ui.BadgeConfig](g.Attr("data-cart-count", label)),
		)),
	)
}

func overflowPanel(p LayoutProps) g.Node {
	return ui.Sheet(
		ui.Class[*ui.SheetConfig]("md:hidden"),
		ui.SheetSideOf(ui.SheetSideRight),
		ui.SheetLabel("Open menu"),
		ui.SheetTrigger(Icon(GlyphMenu, "h-5 w-5")),
		ui.SheetContent(
			h.Div(h.Class("flex flex-col space-y-6 mt-8"),
				searchForm("", "Search products...", "pl-10", p.State.Query),
				h.Nav(h.Class("flex flex-col space-y-3"),
					g.Map(Navigation(), func(item NavItem) g.Node {
						return navLink(p.CurrentPath, item, "space-x-3 px-4 py-3", "h-5 w-5", "font-medium", ui.SheetClose())
					}),
					h.A(h.Href(routes.PageURL(routes.Cart)),
						h.Class(ui.CN("flex items-center space-x-3 px-4 py-3 rounded-lg transition-colors", DefaultLinkClass)),
						ui.SheetClose(),
						g.Attr("data-panel-cart"),
						Icon(GlyphShoppingCart, "h-5 w-5"),
						h.Span(h.Class("font-medium"), g.Text(PanelCartLabel(p.State.ItemCount))),
					),
				),
			),
		),
	)
}

func navLink(currentPath string, item NavItem, spacing, iconSize, labelClass string, extra ...g.Node) g.Node {
	active := IsActive(currentPath, item)
	return h.A(
		h.Href(item.Route),
		h.Class(ui.CN("flex items-center rounded-lg transition-colors", spacing, LinkClass(currentPath, item))),
		g.Attr("data-nav", item.Label),
		g.If(active, h.Aria("current", "page")),
		g.Group(extra),
		Icon(item.Icon, iconSize),
		h.Span(h.Class(labelClass), g.Text(item.Label)),
	)
}

func footer(brand string) g.Node {
	return h.Footer(h.Class("border-t border-slate-200 bg-slate-50/50 mt-16"),
		h.Div(h.Class("container mx-auto px-4 sm:px-6 lg:px-8 py-8"),
			h.Div(h.Class("text-center text-sm text-slate-600"),
				h.P(g.Textf("© 2024 %s. Fast delivery from our fulfillment centers.", brand)),
			),
		),
	)
}
