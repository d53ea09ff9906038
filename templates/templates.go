// Package templates embeds the TypeScript output templates.
package templates

import "embed"

//go:embed *.tmpl
var FS embed.FS
