// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/loadstone/loadstone/internal/adapters/logger"
	_ "github.com/loadstone/loadstone/internal/adapters/loot"
	_ "github.com/loadstone/loadstone/internal/adapters/snapshot"
	// Register app and engine nodes.
	_ "github.com/loadstone/loadstone/internal/app"
	_ "github.com/loadstone/loadstone/internal/engine/catalog"
)
