// internal/domain/models/activity.go
package models

// Activity is one logged workout session as returned by /api/activities/.
type Activity struct {
	ID           string
	User         string // user_name, falling back to user, then user_id
	ActivityType string
	Duration     Number // minutes
	Distance     Number // kilometers
	Calories     Number
	Date         Date
}
