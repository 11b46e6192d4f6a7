// Package templates embeds the client template and the platform wrappers.
package templates

import "embed"

// Asset names inside FS.
const (
	Core = "res.core.js.tmpl"
	Web  = "res.web.js"
	Node = "res.node.js"
)

// Placeholder appears exactly once in each wrapper and is replaced by the rendered core.
const Placeholder = `"#res.core.js#"`

//go:embed res.core.js.tmpl res.web.js res.node.js
var FS embed.FS
