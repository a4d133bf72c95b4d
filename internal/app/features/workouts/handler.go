// internal/app/features/workouts/handler.go
package workouts

import (
	"context"

	uierrors "github.com/dalemusser/octofit/internal/app/features/errors"
	"github.com/dalemusser/octofit/internal/domain/models"
	"go.uber.org/zap"
)

// Lister loads the workout collection.
type Lister interface {
	List(ctx context.Context) ([]models.Workout, error)
}

// Handler serves the workouts view.
type Handler struct {
	Store  Lister
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(store Lister, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Store: store, ErrLog: errLog, Log: logger}
}
