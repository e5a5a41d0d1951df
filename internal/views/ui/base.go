// Package ui provides the small set of styled primitives the storefront
// shell is built from. Every primitive takes typed options and renders a
// gomponents node.
package ui

import g "maragu.dev/gomponents"

// BaseConfig is embedded in every component config.
type BaseConfig struct {
	Classes []string
	Nodes   []g.Node // attributes and children, in order
}

// ConfigProvider lets generic options work on any config.
type ConfigProvider interface {
	GetBase() *BaseConfig
}

// Option modifies a component config.
type Option[T ConfigProvider] func(T)

// Class adds utility classes, merged via CN.
func Class[T ConfigProvider](c string) Option[T] {
	return func(cfg T) {
		base := cfg.GetBase()
		base.Classes = append(base.Classes, c)
	}
}

// Attr passes raw attributes through.
func Attr[T ConfigProvider](attrs ...g.Node) Option[T] {
	return func(cfg T) {
		base := cfg.GetBase()
		base.Nodes = append(base.Nodes, attrs...)
	}
}

// Child appends children.
func Child[T ConfigProvider](nodes ...g.Node) Option[T] {
	return func(cfg T) {
		base := cfg.GetBase()
		base.Nodes = append(base.Nodes, nodes...)
	}
}
