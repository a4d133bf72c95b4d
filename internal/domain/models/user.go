// internal/domain/models/user.go
package models

// User is a member of the OctoFit community as returned by /api/users/.
type User struct {
	ID        string
	Username  string
	Email     string
	FirstName string
	LastName  string
	Team      string // team reference (usually the team id)
	TeamName  string // display name; empty when the user has no team
}

// UserDraft is the locally edited copy of a user that is submitted back to
// the API. The JSON shape is exactly what the API expects for create/update.
type UserDraft struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Team      string `json:"team"`
}

// Draft returns an edit-mode draft pre-populated from u.
func (u User) Draft() UserDraft {
	return UserDraft{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Team:      u.Team,
	}
}

// IsNew reports whether the draft has not been persisted yet.
func (d UserDraft) IsNew() bool { return d.ID == "" }
