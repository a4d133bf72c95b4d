// internal/domain/models/leaderboard.go
package models

// LeaderboardEntry is one competitor row. The server decides the order;
// rank is derived from position when rendering and is not stored here.
type LeaderboardEntry struct {
	Key             string // id, or the positional index when the API sends none
	Username        string
	TotalPoints     Number
	ActivitiesCount Number
}
