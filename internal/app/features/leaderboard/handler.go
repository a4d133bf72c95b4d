// internal/app/features/leaderboard/handler.go
package leaderboard

import (
	"context"

	uierrors "github.com/dalemusser/octofit/internal/app/features/errors"
	"github.com/dalemusser/octofit/internal/domain/models"
	"go.uber.org/zap"
)

// Lister loads the leaderboard, in server order.
type Lister interface {
	List(ctx context.Context) ([]models.LeaderboardEntry, error)
}

// Handler serves the leaderboard view.
type Handler struct {
	Store  Lister
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(store Lister, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Store: store, ErrLog: errLog, Log: logger}
}
