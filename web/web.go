// Package web embeds the HTML templates and static assets served by
// the storefront, so the binary is self-contained and tests can render
// pages from any working directory.
package web

import "embed"

//go:embed templates static
var FS embed.FS
