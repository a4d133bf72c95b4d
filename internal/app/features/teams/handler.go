// internal/app/features/teams/handler.go
package teams

import (
	"context"

	uierrors "github.com/dalemusser/octofit/internal/app/features/errors"
	"github.com/dalemusser/octofit/internal/domain/models"
	"go.uber.org/zap"
)

// Lister loads the team collection.
type Lister interface {
	List(ctx context.Context) ([]models.Team, error)
}

// Handler serves the teams view.
type Handler struct {
	Store  Lister
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(store Lister, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Store: store, ErrLog: errLog, Log: logger}
}
