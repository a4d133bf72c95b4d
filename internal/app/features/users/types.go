package users

import (
	"net/url"

	"github.com/dalemusser/octofit/internal/app/system/formutil"
	"github.com/dalemusser/octofit/internal/app/system/normalize"
	"github.com/dalemusser/octofit/internal/app/system/resourceview"
	"github.com/dalemusser/octofit/internal/app/system/viewdata"
	"github.com/dalemusser/octofit/internal/domain/models"
)

// viewName is the resource view's name; it also fixes the fragment URL.
const viewName = "users"

const (
	msgCreated = "User added successfully!"
	msgUpdated = "User updated successfully!"
	msgDeleted = "User deleted successfully!"

	emptyText = `No users found. Click "Add User" to create one.`
)

// userInput defines validation rules for the add/edit form.
type userInput struct {
	Username  string `validate:"required,max=150" label:"Username"`
	Email     string `validate:"required,email,max=254" label:"Email"`
	FirstName string `validate:"max=150" label:"First Name"`
	LastName  string `validate:"max=150" label:"Last Name"`
}

func inputFrom(d models.UserDraft) userInput {
	return userInput{
		Username:  normalize.Username(d.Username),
		Email:     normalize.Email(d.Email),
		FirstName: normalize.Name(d.FirstName),
		LastName:  normalize.Name(d.LastName),
	}
}

type userRow struct {
	ID        string
	Username  string
	Email     string
	MailTo    string
	FirstName string
	LastName  string
	TeamName  string
	HasTeam   bool
	EditURL   string
	DeleteURL string
}

type listData struct {
	viewdata.BaseVM
	Table resourceview.Table[userRow]
}

// teamOption is one entry of the form's team selector.
type teamOption struct {
	ID       string
	Name     string
	Selected bool
}

// formData drives both the modal snippet and the full-page form.
type formData struct {
	formutil.Base
	Draft  models.UserDraft
	Teams  []teamOption
	IsEdit bool
	Action string
}

func (f formData) Heading() string {
	if f.IsEdit {
		return "Edit User"
	}
	return "Add New User"
}

func (f formData) SubmitLabel() string {
	if f.IsEdit {
		return "Update User"
	}
	return "Add User"
}

// deleteData drives the delete confirmation.
type deleteData struct {
	formutil.Base
	ID       string
	Username string
	Action   string
}

func (d deleteData) Prompt() string {
	return `Are you sure you want to delete user "` + d.Username + `"?`
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func editURL(id string) string   { return "/users/" + url.PathEscape(id) + "/edit" }
func deleteURL(id string) string { return "/users/" + url.PathEscape(id) + "/delete" }

func toRow(_ int, u models.User) userRow {
	return userRow{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		MailTo:    "mailto:" + u.Email,
		FirstName: orDash(u.FirstName),
		LastName:  orDash(u.LastName),
		TeamName:  u.TeamName,
		HasTeam:   u.TeamName != "",
		EditURL:   editURL(u.ID),
		DeleteURL: deleteURL(u.ID),
	}
}

func teamOptions(teams []models.Team, selected string) []teamOption {
	out := make([]teamOption, 0, len(teams))
	for _, t := range teams {
		out = append(out, teamOption{ID: t.ID, Name: t.Name, Selected: t.ID != "" && t.ID == selected})
	}
	return out
}
