// internal/app/features/users/handler.go
package users

import (
	"context"

	uierrors "github.com/dalemusser/octofit/internal/app/features/errors"
	"github.com/dalemusser/octofit/internal/app/system/auditlog"
	"github.com/dalemusser/octofit/internal/app/system/flash"
	"github.com/dalemusser/octofit/internal/domain/models"
	"go.uber.org/zap"
)

// UserStore reads and mutates the user collection.
type UserStore interface {
	List(ctx context.Context) ([]models.User, error)
	Find(ctx context.Context, id string) (models.User, error)
	Create(ctx context.Context, d models.UserDraft) error
	Update(ctx context.Context, d models.UserDraft) error
	Delete(ctx context.Context, id string) error
}

// TeamLister loads the teams shown in the selector and used to name teams
// in the table.
type TeamLister interface {
	List(ctx context.Context) ([]models.Team, error)
}

// Handler serves the users view and its add/edit/delete forms.
type Handler struct {
	Users  UserStore
	Teams  TeamLister
	Flash  *flash.Manager
	Audit  *auditlog.Logger
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(users UserStore, teams TeamLister, fm *flash.Manager, audit *auditlog.Logger, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Users:  users,
		Teams:  teams,
		Flash:  fm,
		Audit:  audit,
		ErrLog: errLog,
		Log:    logger,
	}
}
