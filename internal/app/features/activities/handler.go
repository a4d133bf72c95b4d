// internal/app/features/activities/handler.go
package activities

import (
	"context"

	uierrors "github.com/dalemusser/octofit/internal/app/features/errors"
	"github.com/dalemusser/octofit/internal/domain/models"
	"go.uber.org/zap"
)

// Lister loads the activity collection.
type Lister interface {
	List(ctx context.Context) ([]models.Activity, error)
}

// Handler serves the activities view.
type Handler struct {
	Store  Lister
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(store Lister, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Store: store, ErrLog: errLog, Log: logger}
}
