// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/tfroot/internal/adapters/config"
	_ "go.trai.ch/tfroot/internal/adapters/fs"
	_ "go.trai.ch/tfroot/internal/adapters/logger"
	_ "go.trai.ch/tfroot/internal/adapters/shell"
	_ "go.trai.ch/tfroot/internal/adapters/telemetry"
	_ "go.trai.ch/tfroot/internal/adapters/workspace"
	// Register app and engine nodes.
	_ "go.trai.ch/tfroot/internal/app"
	_ "go.trai.ch/tfroot/internal/engine/rootcheck"
)
