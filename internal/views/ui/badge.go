package ui

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type BadgeConfig struct {
	BaseConfig
}

func (c *BadgeConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type BadgeOption = Option[*BadgeConfig]

// Badge renders a small pill around label.
func Badge(label string, opts ...BadgeOption) g.Node {
	c := &BadgeConfig{}
	for _, opt := range opts {
		opt(c)
	}

	finalClass := CN(
		"inline-flex items-center rounded-full border border-transparent px-2.5 py-0.5 text-xs font-semibold text-white",
		strings.Join(c.Classes, " "),
	)

	return h.Span(h.Class(finalClass), g.Group(c.Nodes), g.Text(label))
}
