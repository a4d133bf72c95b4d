package activities

import (
	"github.com/dalemusser/octofit/internal/app/system/resourceview"
	"github.com/dalemusser/octofit/internal/app/system/viewdata"
	"github.com/dalemusser/octofit/internal/domain/models"
)

// viewName is the resource view's name; it also fixes the fragment URL.
const viewName = "activities"

type activityRow struct {
	ID           string
	User         string
	ActivityType string
	Duration     string
	Distance     string
	Calories     string
	Date         string
}

type listData struct {
	viewdata.BaseVM
	Table resourceview.Table[activityRow]
}

func toRow(_ int, a models.Activity) activityRow {
	return activityRow{
		ID:           a.ID,
		User:         a.User,
		ActivityType: a.ActivityType,
		Duration:     a.Duration.String(),
		Distance:     a.Distance.String(),
		Calories:     a.Calories.String(),
		Date:         a.Date.String(),
	}
}
