package teams

import (
	"github.com/dalemusser/octofit/internal/app/system/resourceview"
	"github.com/dalemusser/octofit/internal/app/system/viewdata"
	"github.com/dalemusser/octofit/internal/domain/models"
)

const viewName = "teams"

type teamRow struct {
	ID          string
	Name        string
	Description string
	Created     string
}

type listData struct {
	viewdata.BaseVM
	Table resourceview.Table[teamRow]
}

func toRow(_ int, t models.Team) teamRow {
	return teamRow{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Created:     t.CreatedAt.String(),
	}
}
