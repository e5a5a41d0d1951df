package ui

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type InputConfig struct {
	BaseConfig
	Type        string
	Name        string
	Placeholder string
	Value       string
}

func (c *InputConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type InputOption = Option[*InputConfig]

func InputType(t string) InputOption {
	return func(c *InputConfig) { c.Type = t }
}

func InputName(n string) InputOption {
	return func(c *InputConfig) { c.Name = n }
}

func InputPlaceholder(s string) InputOption {
	return func(c *InputConfig) { c.Placeholder = s }
}

func InputValue(s string) InputOption {
	return func(c *InputConfig) { c.Value = s }
}

func Input(opts ...InputOption) g.Node {
	c := &InputConfig{
		Type: "text",
	}
	for _, opt := range opts {
		opt(c)
	}

	finalClass := CN(
		"flex h-10 w-full rounded-md border border-input bg-background px-3 py-2 text-base placeholder:text-muted-foreground focus-visible:outline-none focus-visible:ring-2 disabled:cursor-not-allowed disabled:opacity-50 md:text-sm",
		strings.Join(c.Classes, " "),
	)

	return h.Input(
		h.Class(finalClass),
		g.If(c.Type != "", h.Type(c.Type)),
		g.If(c.Name != "", h.Name(c.Name)),
		g.If(c.Placeholder != "", h.Placeholder(c.Placeholder)),
		g.If(c.Value != "", h.Value(c.Value)),
		g.Group(c.Nodes),
	)
}
