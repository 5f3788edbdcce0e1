// Package modkit wires modules together from shared deps and options
package modkit

import (
	"mathgate/internal/modkit/repokit"
	"mathgate/internal/platform/config"
	"mathgate/internal/platform/logger"
)

// Deps carries the shared dependencies every module receives
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
}

// ZeroOK reports whether zero value deps are usable in tests;
// optional stores still need nil checks
func (d Deps) ZeroOK() bool { return true }
