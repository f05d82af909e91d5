package modkit

import (
	"pairmatch/internal/modkit/repokit"
	"pairmatch/internal/platform/config"
	"pairmatch/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
}
