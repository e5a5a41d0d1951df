// Package static embeds the stylesheet and script the layout references.
package static

import "embed"

// Files holds css/ and js/.
//
//go:embed css js
var Files embed.FS
