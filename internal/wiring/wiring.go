// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/depscope/internal/adapters/config"
	_ "go.trai.ch/depscope/internal/adapters/fs"
	_ "go.trai.ch/depscope/internal/adapters/logger"
	_ "go.trai.ch/depscope/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/depscope/internal/app"
)
