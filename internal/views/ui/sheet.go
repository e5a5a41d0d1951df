package ui

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Data attributes read by static/js/shell.js.
const (
	SheetAttr      = "data-sheet"
	SheetCloseAttr = "data-sheet-close"
)

type SheetSide string

const (
	SheetSideLeft  SheetSide = "left"
	SheetSideRight SheetSide = "right"
)

type SheetConfig struct {
	BaseConfig
	Side      SheetSide
	Trigger   []g.Node
	Label     string
	Width     string
	PanelOpts []g.Node
}

func (c *SheetConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type SheetOption = Option[*SheetConfig]

func SheetSideOf(s SheetSide) SheetOption {
	return func(c *SheetConfig) { c.Side = s }
}

// SheetTrigger sets the content of the element that opens the sheet.
func SheetTrigger(nodes ...g.Node) SheetOption {
	return func(c *SheetConfig) { c.Trigger = append(c.Trigger, nodes...) }
}

// SheetLabel sets the accessible name of the trigger.
func SheetLabel(label string) SheetOption {
	return func(c *SheetConfig) { c.Label = label }
}

func SheetWidth(class string) SheetOption {
	return func(c *SheetConfig) { c.Width = class }
}

// SheetContent appends nodes to the sliding panel.
func SheetContent(nodes ...g.Node) SheetOption {
	return func(c *SheetConfig) { c.PanelOpts = append(c.PanelOpts, nodes...) }
}

// Sheet renders a slide-in panel built on <details>, so it opens and closes
// without script. The script only adds closing on outside click, Escape and
// activation of any element carrying SheetClose.
func Sheet(opts ...SheetOption) g.Node {
	c := &SheetConfig{
		Side:  SheetSideRight,
		Width: "w-80",
		Label: "Open menu",
	}
	for _, opt := range opts {
		opt(c)
	}

	edge := "right-0"
	if c.Side == SheetSideLeft {
		edge = "left-0"
	}

	return g.El("details",
		h.Class(CN("group relative", strings.Join(c.Classes, " "))),
		g.Attr(SheetAttr, string(c.Side)),
		g.Group(c.Nodes),
		g.El("summary",
			h.Class(CN("list-none cursor-pointer", buttonVariants(ButtonVariantGhost, ButtonSizeIcon), "inline-flex items-center justify-center rounded-md")),
			h.Aria("label", c.Label),
			g.Group(c.Trigger),
		),
		h.Div(
			h.Class(CN("fixed top-0 z-50 h-full overflow-y-auto border-l bg-white p-6 shadow-lg", edge, c.Width)),
			g.Attr("role", "dialog"),
			h.Aria("modal", "true"),
			g.Group(c.PanelOpts),
		),
	)
}

// SheetClose marks an element inside a sheet as closing it when activated.
func SheetClose() g.Node {
	return g.Attr(SheetCloseAttr)
}
