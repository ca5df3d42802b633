// Package appfs embeds files the binary needs at runtime.
package appfs

import "embed"

//go:embed migrations
var FS embed.FS
