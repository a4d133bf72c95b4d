// internal/domain/models/team.go
package models

// Team is a group of users competing together.
type Team struct {
	ID          string
	Name        string
	Description string
	CreatedAt   Date
}
