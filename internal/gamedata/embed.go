// Package gamedata loads the fight card and equipment catalog.
package gamedata

import "embed"

// dataFS embeds the default catalog at build time.
//
//go:embed catalog.json
var dataFS embed.FS
