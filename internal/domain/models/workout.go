// internal/domain/models/workout.go
package models

// Workout is a suggested workout from /api/workouts/.
type Workout struct {
	ID          string
	Name        string
	Description string
	Difficulty  string // Easy, Medium, Hard, Beginner, Intermediate, Advanced (not enforced)
	Duration    Number
	Category    string
}

// difficultyBadges maps known difficulty labels to badge classes.
var difficultyBadges = map[string]string{
	"Easy":         "bg-success",
	"Medium":       "bg-warning text-dark",
	"Hard":         "bg-danger",
	"Beginner":     "bg-success",
	"Intermediate": "bg-warning text-dark",
	"Advanced":     "bg-danger",
}

// DifficultyBadge returns the badge class for a difficulty label.
func DifficultyBadge(difficulty string) string {
	if c, ok := difficultyBadges[difficulty]; ok {
		return c
	}
	return "bg-secondary"
}
