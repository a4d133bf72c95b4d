package leaderboard

import (
	"github.com/dalemusser/octofit/internal/app/system/resourceview"
	"github.com/dalemusser/octofit/internal/app/system/viewdata"
	"github.com/dalemusser/octofit/internal/domain/models"
)

const viewName = "leaderboard"

// podium styles the first three places.
var podium = [...]struct{ Medal, RowClass string }{
	{"🥇", "table-warning"},
	{"🥈", "table-secondary"},
	{"🥉", "table-danger"},
}

type entryRow struct {
	Key             string
	Rank            int // 1-based position in the API response
	Medal           string
	RowClass        string
	Username        string
	TotalPoints     string
	ActivitiesCount string
}

type listData struct {
	viewdata.BaseVM
	Table resourceview.Table[entryRow]
}

// toRow ranks by position only; the API decides the order.
func toRow(i int, e models.LeaderboardEntry) entryRow {
	row := entryRow{
		Key:             e.Key,
		Rank:            i + 1,
		Username:        e.Username,
		TotalPoints:     e.TotalPoints.String(),
		ActivitiesCount: e.ActivitiesCount.String(),
	}
	if i < len(podium) {
		row.Medal = podium[i].Medal
		row.RowClass = podium[i].RowClass
	}
	return row
}
