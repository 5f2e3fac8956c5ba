// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/Global19-atlassian-net/kapsel/internal/adapters/config"
	_ "github.com/Global19-atlassian-net/kapsel/internal/adapters/envfile"
	_ "github.com/Global19-atlassian-net/kapsel/internal/adapters/logger"
	// Register app nodes.
	_ "github.com/Global19-atlassian-net/kapsel/internal/app"
)
