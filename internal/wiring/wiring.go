// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/sectx/internal/adapters/cachefile"
	_ "go.trai.ch/sectx/internal/adapters/config"
	_ "go.trai.ch/sectx/internal/adapters/fs"
	_ "go.trai.ch/sectx/internal/adapters/logger"
	_ "go.trai.ch/sectx/internal/adapters/orgdoc"
	_ "go.trai.ch/sectx/internal/adapters/summarizer"
	_ "go.trai.ch/sectx/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/sectx/internal/app"
)
