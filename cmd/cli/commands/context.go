package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/brightfold/agency-ops/internal/config"
	"github.com/brightfold/agency-ops/pkg/db"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg      *config.Config
	Database db.Store
	Logger   *zap.Logger
	Ctx      context.Context
}
