package mapdata

import "embed"

// mapFS embeds the bundled maps at build time.
//
//go:embed maps/*.json
var mapFS embed.FS

// SampleMap is the name of the bundled map used when none is configured
const SampleMap = "sample.json"
