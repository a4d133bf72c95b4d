package workouts

import (
	"github.com/dalemusser/octofit/internal/app/system/resourceview"
	"github.com/dalemusser/octofit/internal/app/system/viewdata"
	"github.com/dalemusser/octofit/internal/domain/models"
)

const viewName = "workouts"

type workoutRow struct {
	ID          string
	Name        string
	Description string
	Difficulty  string
	BadgeClass  string
	Duration    string
	Category    string
}

type listData struct {
	viewdata.BaseVM
	Table resourceview.Table[workoutRow]
}

func toRow(_ int, wo models.Workout) workoutRow {
	return workoutRow{
		ID:          wo.ID,
		Name:        wo.Name,
		Description: wo.Description,
		Difficulty:  wo.Difficulty,
		BadgeClass:  models.DifficultyBadge(wo.Difficulty),
		Duration:    wo.Duration.String(),
		Category:    wo.Category,
	}
}
