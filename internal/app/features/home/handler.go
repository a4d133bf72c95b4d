package home

import (
	"net/http"

	"github.com/dalemusser/octofit/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Handler serves the landing page.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// card is one feature tile on the landing page.
type card struct {
	Title   string
	Text    string
	Href    string
	Button  string
	Variant string // bootstrap contextual color
	Wide    bool
}

// cards lists the landing tiles in display order.
var cards = []card{
	{"Track Activities", "Log your daily fitness activities and monitor your progress over time.", "/activities", "View Activities", "primary", false},
	{"Join Teams", "Create or join teams and collaborate with others to reach fitness goals.", "/teams", "View Teams", "success", false},
	{"Compete", "Check the leaderboard and see how you rank against other users.", "/leaderboard", "View Leaderboard", "warning", false},
	{"Personalized Workouts", "Get workout suggestions tailored to your fitness level and goals.", "/workouts", "Browse Workouts", "info", true},
	{"User Profiles", "View and manage user profiles and track individual achievements.", "/users", "View Users", "secondary", true},
}

type homeData struct {
	viewdata.BaseVM
	Cards []card
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – landing                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	data := homeData{
		BaseVM: viewdata.NewBaseVM(w, r, "Welcome", "/"),
		Cards:  cards,
	}
	templates.Render(w, r, "home", data)
}
