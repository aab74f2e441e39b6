// Package web carries the embedded static frontend.
package web

import "embed"

//go:embed static
var StaticFS embed.FS
