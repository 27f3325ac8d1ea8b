// Package data bundles the default building catalog
package data

import "embed"

// BuildingsFile is the bundled catalog's path inside FS
const BuildingsFile = "buildings.json"

//go:embed buildings.json
var FS embed.FS
