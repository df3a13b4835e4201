package toggler

import _ "embed"

// Version is the release of the toggler module, read from the VERSION file.
//
//go:embed VERSION
var Version string
