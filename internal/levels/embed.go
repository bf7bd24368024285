// Package levels embeds the built-in level definitions.
package levels

import "embed"

// FS holds every *.yaml level shipped with the binary
//
//go:embed *.yaml
var FS embed.FS
