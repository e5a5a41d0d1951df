package ui

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type ButtonVariant string

const (
	ButtonVariantDefault ButtonVariant = "default"
	ButtonVariantOutline ButtonVariant = "outline"
	ButtonVariantGhost   ButtonVariant = "ghost"
	ButtonVariantLink    ButtonVariant = "link"
)

type ButtonSize string

const (
	ButtonSizeDefault ButtonSize = "default"
	ButtonSizeSm      ButtonSize = "sm"
	ButtonSizeIcon    ButtonSize = "icon"
)

type ButtonConfig struct {
	BaseConfig
	Variant ButtonVariant
	Size    ButtonSize
	Type    string
}

func (c *ButtonConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type ButtonOption = Option[*ButtonConfig]

func Variant(v ButtonVariant) ButtonOption {
	return func(c *ButtonConfig) { c.Variant = v }
}

func Size(s ButtonSize) ButtonOption {
	return func(c *ButtonConfig) { c.Size = s }
}

// ButtonType sets the type attribute. Buttons default to "button" so they
// never submit an enclosing form by accident.
func ButtonType(t string) ButtonOption {
	return func(c *ButtonConfig) { c.Type = t }
}

func Button(opts ...ButtonOption) g.Node {
	c := &ButtonConfig{
		Variant: ButtonVariantDefault,
		Size:    ButtonSizeDefault,
		Type:    "button",
	}
	for _, opt := range opts {
		opt(c)
	}

	finalClass := CN(
		"inline-flex items-center justify-center whitespace-nowrap rounded-md text-sm font-medium transition-colors focus-visible:outline-none focus-visible:ring-2 disabled:pointer-events-none disabled:opacity-50",
		buttonVariants(c.Variant, c.Size),
		strings.Join(c.Classes, " "),
	)

	return h.Button(h.Class(finalClass), h.Type(c.Type), g.Group(c.Nodes))
}

func buttonVariants(v ButtonVariant, s ButtonSize) string {
	var classes []string

	switch v {
	case ButtonVariantDefault:
		classes = append(classes, "bg-primary text-primary-foreground hover:bg-primary/90")
	case ButtonVariantOutline:
		classes = append(classes, "border border-input bg-background hover:bg-accent hover:text-accent-foreground")
	case ButtonVariantGhost:
		classes = append(classes, "hover:bg-accent hover:text-accent-foreground")
	case ButtonVariantLink:
		classes = append(classes, "text-primary underline-offset-4 hover:underline")
	}

	switch s {
	case ButtonSizeDefault:
		classes = append(classes, "h-10 px-4 py-2")
	case ButtonSizeSm:
		classes = append(classes, "h-9 rounded-md px-3")
	case ButtonSizeIcon:
		classes = append(classes, "h-10 w-10")
	}

	return strings.Join(classes, " ")
}
